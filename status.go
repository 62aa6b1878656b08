// Lending status changes.
//
// A book moves between Available and CheckedOut only through ChangeStatus.
// The id is resolved before the status is validated, so an unknown id
// always reports ErrNotFound whatever status was asked for.
package libcat

import "fmt"

// ChangeStatus sets the status of the first book with id and saves.
// Returns ErrNotFound if no book has that id, or ErrInvalidStatus if the
// status is not recognised. Neither error changes the library.
func (l *Library) ChangeStatus(id int, status Status) error {
	i := l.index(id)
	if i < 0 {
		return ErrNotFound
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	l.books[i].Status = status

	if err := l.Save(); err != nil {
		return fmt.Errorf("change status: %w", err)
	}
	return nil
}
