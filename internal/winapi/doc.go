// Package winapi forwards a small set of Win32 calls: startup parameters,
// MessageBox, window-class registration, CreateWindowEx, ShowWindow and
// DestroyWindow. Handles, style flags and callbacks are passed through to
// user32.dll unmodified.
//
// The types, flag constants and NewWindowClass are portable so window
// descriptors can be built and checked on any OS. On non-Windows builds
// every call that would reach the OS returns errors.ErrUnsupported.
package winapi
