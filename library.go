// Core library type and lifecycle.
//
// A Library is bound to one file path for its whole life. Open loads the
// file once and every mutating call writes it back in full before
// returning. Between calls the Library holds nothing but the path, the
// in-memory books and the fingerprint of the bytes it last saw on disk, so
// there is no Close.
package libcat

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath is the file used when no path is configured.
const DefaultPath = "library.json"

// Config holds library configuration options.
type Config struct {
	HashAlgorithm int          // Fingerprint hash: 1=xxHash3, 2=FNV1a, 3=Blake2b
	SyncWrites    bool         // Call fsync on the temporary file before rename
	Backup        bool         // Keep a zstd copy of the previous save in <path>.bak.zst
	Logger        *slog.Logger // Defaults to slog.Default()
}

// Library is an in-memory book catalog persisted to a single JSON file.
// It is not safe for concurrent use.
type Library struct {
	path   string
	config Config
	books  []Book
	print  string // fingerprint of the file bytes last read or written
}

// Open binds a Library to path and loads it. A missing file yields an
// empty library; a malformed one returns an error wrapping ErrCorrupt.
func Open(path string, config Config) (*Library, error) {
	if path == "" {
		path = DefaultPath
	}
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if fingerprint(nil, config.HashAlgorithm) == "" {
		return nil, fmt.Errorf("open: unknown hash algorithm %d", config.HashAlgorithm)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	lib := &Library{
		path:   path,
		config: config,
	}
	if err := lib.load(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Path returns the file the library is bound to.
func (l *Library) Path() string {
	return l.path
}

// root opens the directory holding the library file. All file access goes
// through the returned root so that the tmp, lock and backup siblings can
// never escape it.
func (l *Library) root() (*os.Root, string, error) {
	root, err := os.OpenRoot(filepath.Dir(l.path))
	if err != nil {
		return nil, "", err
	}
	return root, filepath.Base(l.path), nil
}

// index returns the position of the first book with id, or -1.
func (l *Library) index(id int) int {
	for i := range l.books {
		if l.books[i].ID == id {
			return i
		}
	}
	return -1
}
