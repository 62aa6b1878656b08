// Linear search over title, author and year.
//
// Title and author match on a case-folded substring. Folding is Unicode
// aware, so "ORWELL", "orwell" and "Orwell" are equivalent and so are
// non-Latin titles in any case. Year matches only on exact equality with
// its text form: "1949" matches both YearString("1949") and YearInt(1949),
// "194" matches neither. An empty query matches every book.
package libcat

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the books matching query in store order. No match yields
// an empty, non-nil slice.
func (l *Library) Search(query string) []Book {
	// A Caser is stateful; one per call.
	fold := cases.Fold()
	q := fold.String(query)

	out := []Book{}
	for _, b := range l.books {
		if strings.Contains(fold.String(b.Title), q) ||
			strings.Contains(fold.String(b.Author), q) ||
			query == b.Year.String() {
			out = append(out, b)
		}
	}
	return out
}
