package cfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Mode is a stdio open-mode string.
type Mode string

// Standard open modes. The binary variants behave exactly like their text
// counterparts; the distinction only exists for source compatibility.
const (
	ModeRead                        Mode = "r"
	ModeReadBinary                  Mode = "rb"
	ModeWrite                       Mode = "w"
	ModeWriteBinary                 Mode = "wb"
	ModeAppend                      Mode = "a"
	ModeAppendBinary                Mode = "ab"
	ModeReadWrite                   Mode = "r+"
	ModeReadWriteBinary             Mode = "r+b"
	ModeReadWriteCreate             Mode = "w+"
	ModeReadWriteCreateBinary       Mode = "w+b"
	ModeReadWriteCreateAppend       Mode = "a+"
	ModeReadWriteCreateAppendBinary Mode = "a+b"
)

// ErrInvalidMode is returned for a mode string stdio would reject.
var ErrInvalidMode = errors.New("invalid file mode")

// Modes returns the twelve standard mode strings in declaration order.
func Modes() []Mode {
	return []Mode{
		ModeRead, ModeReadBinary,
		ModeWrite, ModeWriteBinary,
		ModeAppend, ModeAppendBinary,
		ModeReadWrite, ModeReadWriteBinary,
		ModeReadWriteCreate, ModeReadWriteCreateBinary,
		ModeReadWriteCreateAppend, ModeReadWriteCreateAppendBinary,
	}
}

// Flags translates the mode into os.OpenFile flags.
//
// The first character selects the access kind (r, w, a). The remaining
// characters may contain at most one '+', one 'b' or 't', and, for the w
// family only, one 'x' which adds O_EXCL.
func (m Mode) Flags() (int, error) {
	s := string(m)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMode)
	}

	var plus, kind, excl bool
	for _, c := range s[1:] {
		switch c {
		case '+':
			if plus {
				return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
			}
			plus = true
		case 'b', 't':
			if kind {
				return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
			}
			kind = true
		case 'x':
			if excl || s[0] != 'w' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
			}
			excl = true
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
		}
	}

	var flag int
	switch s[0] {
	case 'r':
		flag = os.O_RDONLY
		if plus {
			flag = os.O_RDWR
		}
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
		}
		if excl {
			flag |= os.O_EXCL
		}
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_APPEND
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return flag, nil
}

// Binary reports whether the mode carries the 'b' marker.
func (m Mode) Binary() bool {
	return strings.ContainsRune(string(m), 'b')
}

// Readable reports whether a handle opened with m permits reads.
func (m Mode) Readable() bool {
	return strings.HasPrefix(string(m), "r") || strings.ContainsRune(string(m), '+')
}

// Writable reports whether a handle opened with m permits writes.
func (m Mode) Writable() bool {
	return !strings.HasPrefix(string(m), "r") || strings.ContainsRune(string(m), '+')
}

// Describe returns a short human-readable summary of the mode.
func (m Mode) Describe() string {
	flag, err := m.Flags()
	if err != nil {
		return "invalid"
	}

	var parts []string
	switch {
	case flag&os.O_RDWR != 0:
		parts = append(parts, "read/write")
	case flag&os.O_WRONLY != 0:
		parts = append(parts, "write")
	default:
		parts = append(parts, "read")
	}
	if flag&os.O_CREATE != 0 {
		parts = append(parts, "create")
	}
	if flag&os.O_TRUNC != 0 {
		parts = append(parts, "truncate")
	}
	if flag&os.O_APPEND != 0 {
		parts = append(parts, "append")
	}
	if flag&os.O_EXCL != 0 {
		parts = append(parts, "exclusive")
	}
	if m.Binary() {
		parts = append(parts, "binary")
	}
	return strings.Join(parts, ", ")
}
