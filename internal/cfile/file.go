package cfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// DefaultPerm is the permission used when a mode creates a file. The
// process umask still applies, as it does for fopen.
const DefaultPerm os.FileMode = 0666

// Whence values for Seek. They match io.SeekStart, io.SeekCurrent and
// io.SeekEnd.
const (
	SeekSet = io.SeekStart
	SeekCur = io.SeekCurrent
	SeekEnd = io.SeekEnd
)

var (
	// ErrNoBuffer is returned when a read is given a nil or empty destination.
	ErrNoBuffer = errors.New("destination buffer is nil or empty")
	// ErrElementSize is returned when an element size is not positive.
	ErrElementSize = errors.New("element size must be positive")
)

// File is an open file handle. It is not safe for concurrent use.
type File struct {
	f    afero.File
	mode Mode
}

// Open opens name on fsys with a stdio mode string. On failure the returned
// *File is nil and err is the filesystem's own error.
func Open(fsys afero.Fs, name string, mode Mode) (*File, error) {
	return OpenFile(fsys, name, mode, DefaultPerm)
}

// OpenFile is Open with an explicit permission for newly created files.
func OpenFile(fsys afero.Fs, name string, mode Mode, perm os.FileMode) (*File, error) {
	flag, err := mode.Flags()
	if err != nil {
		return nil, err
	}
	f, err := fsys.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{f: f, mode: mode}, nil
}

// Temp creates a new temporary file in dir, opened for reading and writing.
// An empty dir means the system temporary directory. The file is not
// removed on Close.
func Temp(fsys afero.Fs, dir, pattern string) (*File, error) {
	f, err := afero.TempFile(fsys, dir, pattern)
	if err != nil {
		return nil, err
	}
	return &File{f: f, mode: ModeReadWriteCreateBinary}, nil
}

// With opens name, calls fn with the handle and closes it on every exit
// path. A close error is joined with fn's error.
func With(fsys afero.Fs, name string, mode Mode, fn func(*File) error) (err error) {
	f, err := Open(fsys, name, mode)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn(f)
}

// Name returns the name the file was opened with.
func (f *File) Name() string { return f.f.Name() }

// Mode returns the mode the file was opened with.
func (f *File) Mode() Mode { return f.mode }

// Close releases the handle.
func (f *File) Close() error {
	return f.f.Close()
}

// Getc reads a single byte. At end of file it returns io.EOF.
func (f *File) Getc() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(f.f, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Gets reads bytes into buf until buf is full, a newline has been stored,
// or the file ends. buf must be allocated by the caller; a nil or empty buf
// fails with ErrNoBuffer before any read. It returns the number of bytes
// stored, or 0 and io.EOF when the file was already at its end.
func (f *File) Gets(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrNoBuffer
	}
	n := 0
	for n < len(buf) {
		c, err := f.Getc()
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
		buf[n] = c
		n++
		if c == '\n' {
			break
		}
	}
	return n, nil
}

// Putc writes a single byte.
func (f *File) Putc(c byte) error {
	_, err := f.f.Write([]byte{c})
	return err
}

// Printf writes formatted text and returns the number of bytes written.
func (f *File) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(f.f, format, args...)
}

// Puts writes s verbatim. Unlike puts(3) no newline is appended.
func (f *File) Puts(s string) (int, error) {
	return f.f.WriteString(s)
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.f.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// ReadElements reads up to len(p)/size elements of size bytes each and
// returns the number of complete elements read. p must hold at least one
// element. A trailing partial element is left in p but not counted.
func (f *File) ReadElements(p []byte, size int) (int, error) {
	if size <= 0 {
		return 0, ErrElementSize
	}
	if len(p) < size {
		return 0, ErrNoBuffer
	}
	n, err := io.ReadFull(f.f, p[:len(p)/size*size])
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n / size, err
}

// WriteElements writes len(p)/size elements of size bytes each and returns
// the number of complete elements written.
func (f *File) WriteElements(p []byte, size int) (int, error) {
	if size <= 0 {
		return 0, ErrElementSize
	}
	n, err := f.f.Write(p[:len(p)/size*size])
	return n / size, err
}

// Flush commits written data to stable storage. The handle stays open.
func (f *File) Flush() error {
	return f.f.Sync()
}

// Seek implements io.Seeker. whence is one of SeekSet, SeekCur or SeekEnd.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}

// Rewind moves the cursor to the beginning of the file.
func (f *File) Rewind() error {
	_, err := f.f.Seek(0, SeekSet)
	return err
}

// Tell returns the current cursor position.
func (f *File) Tell() (int64, error) {
	return f.f.Seek(0, SeekCur)
}

// Stat returns the file's native info record.
func (f *File) Stat() (os.FileInfo, error) {
	return f.f.Stat()
}

// Remove deletes the named file.
func Remove(fsys afero.Fs, name string) error {
	return fsys.Remove(name)
}

// Rename renames oldname to newname.
func Rename(fsys afero.Fs, oldname, newname string) error {
	return fsys.Rename(oldname, newname)
}
