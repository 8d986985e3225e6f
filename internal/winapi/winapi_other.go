//go:build !windows

package winapi

import "errors"

// NewInstance is not available outside Windows.
func NewInstance() (Instance, error) {
	return Instance{}, errors.ErrUnsupported
}

// MessageBox is not available outside Windows.
func MessageBox(owner Handle, text, caption string, flags uint32) (int, error) {
	return 0, errors.ErrUnsupported
}

// RegisterClass is not available outside Windows.
func RegisterClass(wc WindowClass) (uint16, error) {
	return 0, errors.ErrUnsupported
}

// CreateWindow is not available outside Windows.
func CreateWindow(spec WindowSpec) (Handle, error) {
	return 0, errors.ErrUnsupported
}

// ShowWindow is not available outside Windows and always reports false.
func ShowWindow(hwnd Handle, cmdShow int32) bool {
	return false
}

// DestroyWindow is not available outside Windows.
func DestroyWindow(hwnd Handle) error {
	return errors.ErrUnsupported
}

// DefWindowProc is not available outside Windows and returns 0.
func DefWindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) uintptr {
	return 0
}

// Supported reports whether the windowing calls are available.
func Supported() bool {
	return false
}
