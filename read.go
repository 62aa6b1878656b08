// Loading the library file.
//
// The file is read in one piece under a shared lock. A leftover .tmp from
// a save that was interrupted before its rename is discarded first: the
// target still holds the previous complete version, which is what gets
// loaded.
package libcat

import (
	"errors"
	"fmt"
	"io/fs"
)

// load replaces the in-memory books with the contents of the file.
func (l *Library) load() error {
	root, name, err := l.root()
	if errors.Is(err, fs.ErrNotExist) {
		l.books = []Book{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer root.Close()

	if err := root.Remove(name + ".tmp"); err == nil {
		l.config.Logger.Warn("removed temporary file left by an interrupted save", "path", l.path+".tmp")
	}

	if _, err := root.Stat(name); errors.Is(err, fs.ErrNotExist) {
		l.books = []Book{}
		l.print = ""
		l.config.Logger.Debug("library file does not exist yet", "path", l.path)
		return nil
	}

	lock, err := acquire(root, name, LockShared)
	if err != nil {
		return fmt.Errorf("load: lock: %w", err)
	}
	defer lock.release()

	data, err := root.ReadFile(name)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	books, err := decodeBooks(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", l.path, err)
	}

	l.books = books
	l.print = fingerprint(data, l.config.HashAlgorithm)
	l.config.Logger.Debug("library loaded", "path", l.path, "books", len(books))
	return nil
}
