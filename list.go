// Enumeration in store order.
package libcat

import (
	"iter"
	"slices"
)

// List returns a copy of every book in insertion order. An empty library
// returns an empty, non-nil slice.
func (l *Library) List() []Book {
	out := make([]Book, len(l.books))
	copy(out, l.books)
	return out
}

// All yields every book in insertion order. The library must not be
// mutated while ranging.
func (l *Library) All() iter.Seq[Book] {
	return slices.Values(l.books)
}
