package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

const sidecarSuffix = ".target"

// ErrNoSymlinks is returned when the filesystem cannot read links and no
// sidecar exists.
var ErrNoSymlinks = errors.New("filesystem does not support symlinks")

// CreateSymlink creates a symbolic link from link pointing to target.
// When fsys supports links its error is returned unchanged, except on
// Windows where a refused link (no developer mode) falls back to copying
// the target and writing a .target sidecar. Filesystems without link
// support always take the copy path. An existing link path is never
// overwritten.
func CreateSymlink(fsys afero.Fs, target, link string) error {
	if l, ok := fsys.(afero.Linker); ok {
		err := l.SymlinkIfPossible(target, link)
		if err == nil {
			return nil
		}
		if runtime.GOOS != "windows" || errors.Is(err, fs.ErrExist) {
			return err
		}
	}

	if err := copyFileForSymlink(fsys, target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// The copy is usable without the sidecar; only ReadSymlinkTarget needs it.
	_ = afero.WriteFile(fsys, link+sidecarSuffix, []byte(target), 0644)
	return nil
}

// RemoveSymlink removes a symlink (or its fallback copy and sidecar).
func RemoveSymlink(fsys afero.Fs, path string) error {
	err := fsys.Remove(path)
	fsys.Remove(path + sidecarSuffix) // best-effort
	return err
}

// ReadSymlinkTarget returns the target of a symlink, falling back to the
// .target sidecar written by CreateSymlink.
func ReadSymlinkTarget(fsys afero.Fs, path string) (string, error) {
	var linkErr error = ErrNoSymlinks
	if r, ok := fsys.(afero.LinkReader); ok {
		target, err := r.ReadlinkIfPossible(path)
		if err == nil {
			return target, nil
		}
		linkErr = err
	}

	data, err := afero.ReadFile(fsys, path+sidecarSuffix)
	if err != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", linkErr)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsSymlinkSupported reports whether native links can be created in dir.
func IsSymlinkSupported(fsys afero.Fs, dir string) bool {
	l, ok := fsys.(afero.Linker)
	if !ok {
		return false
	}
	link := filepath.Join(dir, ".pfio-symlink-test")
	defer fsys.Remove(link)
	return l.SymlinkIfPossible(dir, link) == nil
}

// copyFileForSymlink copies src to a new file dst. A relative src is
// resolved against the directory containing dst, the way a relative link
// would be. An existing dst fails with fs.ErrExist.
func copyFileForSymlink(fsys afero.Fs, src, dst string) error {
	resolvedSrc := src
	if !filepath.IsAbs(src) && !strings.HasPrefix(src, "/") {
		resolvedSrc = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := fsys.Open(resolvedSrc)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
