// Record types and their on-disk schema.
//
// A Book is a plain value with no behaviour beyond serialisation. Its JSON
// form is fixed: keys book_id, title, author, year and status, in that
// order. Decoding is strict. Unknown keys, missing keys, nulls and
// mismatched types are all rejected as ErrCorrupt rather than silently
// producing a zero-valued Book.
package libcat

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
)

// Status is the lending state of a Book.
type Status string

// Recognised status values.
const (
	Available  Status = "available"
	CheckedOut Status = "checked_out"
)

// Statuses lists the recognised values in display order.
var Statuses = []Status{Available, CheckedOut}

// Valid reports whether s is one of the recognised values.
func (s Status) Valid() bool {
	return s == Available || s == CheckedOut
}

// Year is a publication year kept exactly as supplied. A year given as a
// string stays a JSON string and a year given as an integer stays a JSON
// number. No range or format check is applied.
type Year struct {
	text    string
	numeric bool
}

// YearString returns a Year persisted as a JSON string.
func YearString(s string) Year {
	return Year{text: s}
}

// YearInt returns a Year persisted as a JSON number.
func YearInt(n int) Year {
	return Year{text: strconv.Itoa(n), numeric: true}
}

// String returns the year as text. An integer year renders in base 10.
func (y Year) String() string {
	return y.text
}

// IsInt reports whether the year was supplied as an integer.
func (y Year) IsInt() bool {
	return y.numeric
}

func (y Year) MarshalJSON() ([]byte, error) {
	if y.numeric {
		return []byte(y.text), nil
	}
	return marshalText(y.text)
}

func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = YearString(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("year: want string or integer, got %s", data)
	}
	*y = Year{text: strconv.FormatInt(n, 10), numeric: true}
	return nil
}

// Book is one catalog entry.
type Book struct {
	ID     int    `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   Year   `json:"year"`
	Status Status `json:"status"`
}

// fields is the complete key set of a persisted Book, in write order.
var fields = []string{"book_id", "title", "author", "year", "status"}

// decodeBooks parses a whole library file. The top level must be an array
// and every element must carry exactly the keys in fields.
func decodeBooks(data []byte) ([]Book, error) {
	var objs []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if objs == nil {
		return nil, fmt.Errorf("%w: top level is not an array", ErrCorrupt)
	}

	books := make([]Book, 0, len(objs))
	for i, obj := range objs {
		b, err := decodeBook(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorrupt, i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

func decodeBook(obj map[string]json.RawMessage) (Book, error) {
	if obj == nil {
		return Book{}, errors.New("record is null")
	}
	for k := range obj {
		if !slices.Contains(fields, k) {
			return Book{}, fmt.Errorf("unknown field %q", k)
		}
	}

	var b Book
	targets := []any{&b.ID, &b.Title, &b.Author, &b.Year, &b.Status}
	for i, k := range fields {
		raw, ok := obj[k]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return Book{}, fmt.Errorf("missing field %q", k)
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return Book{}, fmt.Errorf("field %q: %w", k, err)
		}
	}
	return b, nil
}

// encodeBooks renders the library file: an indented array with non-ASCII
// and HTML characters written verbatim. A nil slice encodes as [].
func encodeBooks(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(books); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalText encodes a string without HTML escaping.
func marshalText(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
