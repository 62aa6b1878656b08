// Book removal.
package libcat

import (
	"fmt"
	"slices"
)

// Remove deletes the first book with id and saves. If no book has that id
// it returns ErrNotFound and leaves the library unchanged.
func (l *Library) Remove(id int) error {
	i := l.index(id)
	if i < 0 {
		return ErrNotFound
	}
	l.books = slices.Delete(l.books, i, i+1)

	if err := l.Save(); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
