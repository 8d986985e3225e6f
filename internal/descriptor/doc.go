// Package descriptor reads window descriptor files: YAML documents naming a
// window class, a window and an optional message box by their Win32 flag
// names. Files are checked against an embedded JSON Schema and resolved
// into winapi values.
package descriptor
