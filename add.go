// Book creation.
//
// Ids are assigned as one more than the highest id currently in the
// library. For a library built only by Add this is the sequence 1..N, the
// same as counting the books. Unlike counting, it cannot mint an id that a
// surviving book already holds after an earlier Remove. Removing the book
// with the highest id frees that id for the next Add.
package libcat

import "fmt"

// Add appends a new available book and saves. The returned Book is valid
// even when the save fails; in that case the book is kept in memory and
// the error wraps ErrWrite. No duplicate detection is performed.
func (l *Library) Add(title, author string, year Year) (Book, error) {
	b := Book{
		ID:     l.nextID(),
		Title:  title,
		Author: author,
		Year:   year,
		Status: Available,
	}
	l.books = append(l.books, b)

	if err := l.Save(); err != nil {
		return b, fmt.Errorf("add: %w", err)
	}
	return b, nil
}

func (l *Library) nextID() int {
	id := 0
	for _, b := range l.books {
		id = max(id, b.ID)
	}
	return id + 1
}
