// Write-through persistence.
//
// Save always rewrites the whole file. The new content goes to <name>.tmp,
// is optionally synced, then renamed over <name>. If the process dies
// before the rename the previous file is untouched and the orphaned .tmp is
// removed on the next Open.
//
// Before overwriting, Save re-reads the current file and compares its
// fingerprint with the one recorded at the last load or save. A mismatch
// means something else wrote the file; it is logged and then overwritten,
// since the library is single-user and the last write wins.
package libcat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Save writes every book to the bound file. Failures wrap ErrWrite. The
// in-memory state is left as it was, so after a failed Save memory and
// disk may disagree until the next successful one.
func (l *Library) Save() error {
	data, err := encodeBooks(l.books)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWrite, err)
	}

	root, name, err := l.root()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer root.Close()

	lock, err := acquire(root, name, LockExclusive)
	if err != nil {
		return fmt.Errorf("%w: lock: %w", ErrWrite, err)
	}
	defer lock.release()

	prev, err := root.ReadFile(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: read previous: %w", ErrWrite, err)
	}
	if prev != nil {
		if fingerprint(prev, l.config.HashAlgorithm) != l.print {
			l.config.Logger.Warn("library file changed on disk since it was last read; overwriting", "path", l.path)
		}
		if l.config.Backup {
			if err := backup(root, name, prev); err != nil {
				return fmt.Errorf("%w: %w", ErrWrite, err)
			}
		}
	}

	if err := replace(root, name, data, l.config.SyncWrites); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	l.print = fingerprint(data, l.config.HashAlgorithm)
	l.config.Logger.Debug("library saved", "path", l.path, "books", len(l.books), "bytes", len(data))
	return nil
}

// replace atomically swaps name for a file holding data.
func replace(root *os.Root, name string, data []byte, sync bool) error {
	tmpName := name + ".tmp"
	tmp, err := root.Create(tmpName)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		root.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if sync {
		if err := tmp.Sync(); err != nil {
			tmp.Close()
			root.Remove(tmpName)
			return fmt.Errorf("sync temp: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		root.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}

	if err := root.Rename(tmpName, name); err != nil {
		root.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
