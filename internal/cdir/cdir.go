// Package cdir exposes dirent-style directory streams (opendir, readdir,
// telldir, seekdir, rewinddir, closedir) over an afero.Fs. Entries are the
// filesystem's own os.FileInfo records, returned one at a time and in the
// order the filesystem produces them.
package cdir

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// ErrNotDir is returned by Open when the path is not a directory.
var ErrNotDir = errors.New("not a directory")

// Dir is an open directory stream. It is not safe for concurrent use.
type Dir struct {
	fsys afero.Fs
	name string
	f    afero.File
	pos  int64
}

// Open opens the directory name on fsys.
func Open(fsys afero.Fs, name string) (*Dir, error) {
	f, err := openDir(fsys, name)
	if err != nil {
		return nil, err
	}
	return &Dir{fsys: fsys, name: name, f: f}, nil
}

func openDir(fsys afero.Fs, name string) (afero.File, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		f.Close()
		return nil, &os.PathError{Op: "opendir", Path: name, Err: ErrNotDir}
	}
	return f, nil
}

// With opens name, calls fn with the stream and closes it on every exit
// path. A close error is joined with fn's error.
func With(fsys afero.Fs, name string, fn func(*Dir) error) (err error) {
	d, err := Open(fsys, name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, d.Close())
	}()
	return fn(d)
}

// Name returns the path the stream was opened with.
func (d *Dir) Name() string { return d.name }

// Read returns the next entry. After the last entry it returns io.EOF.
func (d *Dir) Read() (os.FileInfo, error) {
	infos, err := d.f.Readdir(1)
	if len(infos) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	d.pos++
	return infos[0], nil
}

// Tell returns the stream position: the number of entries read since the
// stream was opened or last rewound.
func (d *Dir) Tell() int64 {
	return d.pos
}

// Seek moves the stream to pos, a value previously returned by Tell.
// Seeking to the current position does nothing. Any other position
// reopens the directory and skips pos entries, so the result is only
// meaningful while the directory is unchanged.
func (d *Dir) Seek(pos int64) error {
	if pos < 0 {
		return fmt.Errorf("seekdir %s: negative position %d", d.name, pos)
	}
	if pos == d.pos {
		return nil
	}
	if err := d.Rewind(); err != nil {
		return err
	}
	if pos == 0 {
		return nil
	}
	infos, err := d.f.Readdir(int(pos))
	d.pos = int64(len(infos))
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Rewind resets the stream to the first entry.
func (d *Dir) Rewind() error {
	f, err := openDir(d.fsys, d.name)
	if err != nil {
		return err
	}
	old := d.f
	d.f, d.pos = f, 0
	return old.Close()
}

// Close releases the stream.
func (d *Dir) Close() error {
	return d.f.Close()
}
