// Book retrieval.
package libcat

// Get returns the first book with id, or ErrNotFound.
func (l *Library) Get(id int) (Book, error) {
	i := l.index(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return l.books[i], nil
}

// Len returns the number of books.
func (l *Library) Len() int {
	return len(l.books)
}
