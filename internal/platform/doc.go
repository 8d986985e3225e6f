// Package platform forwards path-level operations that sit beside the file
// and directory streams: permission changes and symbolic links. On Unix
// systems they map straight onto the filesystem. On Windows Chmod is a
// no-op and symlinks fall back to a copy plus a .target sidecar when
// developer mode is off.
package platform
