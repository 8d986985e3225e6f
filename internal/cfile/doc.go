// Package cfile exposes stdio-style file operations (open, getc, gets, putc,
// printf, puts, fread, fwrite, flush, seek, rewind, tell, close) as thin
// forwarders over an afero.Fs. Nothing is buffered, retried or translated:
// every method performs one call on the underlying afero.File and returns its
// result. Pass afero.NewOsFs() to reach the operating system directly.
package cfile
