// Package libcat provides a single-user book catalog backed by one JSON
// file. A Library keeps every Book in memory, in insertion order, and
// rewrites the whole file after each mutation so that the file on disk
// always reflects the last successful operation.
//
// The file is a plain JSON array of objects keyed book_id, title, author,
// year and status. It is written to a temporary sibling and renamed over
// the target, so an interrupted save leaves the previous version intact.
// Loads take a shared advisory lock and saves an exclusive one on a
// sidecar .lock file; the lock is only held for the duration of the call.
package libcat

import "errors"

// Sentinel errors for programmatic handling. ErrNotFound and
// ErrInvalidStatus are recoverable: the operation that returned them made no
// change. ErrCorrupt and ErrWrite wrap the underlying cause and indicate the
// file could not be read or written.
var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrCorrupt       = errors.New("corrupt library file")
	ErrWrite         = errors.New("library write failed")
	ErrNoBackup      = errors.New("no backup available")
	ErrDecompress    = errors.New("decompression failed")
)
