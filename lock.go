// OS-level advisory locking around each load and save.
//
// The lock lives on a sidecar <name>.lock rather than on the library file
// itself because Save replaces the library file by rename, and a lock held
// on the old inode would not be seen by the next opener. The sidecar is
// opened, locked, unlocked and closed within a single call; nothing is held
// between calls.
//
// If the sidecar cannot be created (for instance in a read-only directory)
// acquire returns an inert lock so that loading still works. Saving in such
// a directory fails later, on the temporary file.
package libcat

import "os"

// LockMode selects shared (read) or exclusive (write) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

// fileLock wraps flock(2) / LockFileEx on an open sidecar handle. A nil
// handle makes every method a no-op.
type fileLock struct {
	f *os.File
}

// acquire opens the sidecar for name and blocks until the lock is held.
func acquire(root *os.Root, name string, mode LockMode) (*fileLock, error) {
	f, err := root.OpenFile(name+".lock", os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return &fileLock{}, nil
	}
	l := &fileLock{f: f}
	if err := l.Lock(mode); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// Lock acquires a shared or exclusive lock.
func (l *fileLock) Lock(mode LockMode) error {
	if l.f == nil {
		return nil
	}
	return l.lock(mode)
}

// release unlocks and closes the sidecar handle.
func (l *fileLock) release() error {
	if l.f == nil {
		return nil
	}
	err := l.unlock()
	if cerr := l.f.Close(); err == nil {
		err = cerr
	}
	l.f = nil
	return err
}
