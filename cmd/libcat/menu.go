// Interactive menu loop.
//
// The loop only dispatches: every decision about books is made by
// libcat.Library. Not-found and invalid-status outcomes are printed and
// the menu is shown again. Any other error, in practice a failed save, is
// returned and ends the program. End of input behaves like choosing Exit.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/libcat"
)

const menuText = `
Menu:
1. Add book
2. Remove book
3. Search books
4. List books
5. Change book status
6. Exit
`

type menu struct {
	lib *libcat.Library
	in  *bufio.Scanner
	out io.Writer
}

// run drives the menu until the user exits, input ends, or a library
// operation fails.
func run(lib *libcat.Library, in io.Reader, out io.Writer) error {
	m := &menu{lib: lib, in: bufio.NewScanner(in), out: out}
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt("Choose an action (1-6): ")
		if err != nil {
			return m.exit(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.add()
		case "2":
			err = m.remove()
		case "3":
			err = m.search()
		case "4":
			m.list()
		case "5":
			err = m.changeStatus()
		case "6":
			return m.exit(nil)
		default:
			fmt.Fprintln(m.out, "Invalid choice, try again.")
		}
		if err != nil {
			return m.exit(err)
		}
	}
}

// exit prints the farewell line unless err is a real failure.
func (m *menu) exit(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(m.out, "Exiting.")
	return nil
}

// prompt prints label and reads one line. It returns io.EOF when input
// ends, or the scanner's error.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), nil
}

// promptID reads an id. ok is false when the input is not an integer; the
// message has already been printed.
func (m *menu) promptID(label string) (id int, ok bool, err error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil {
		fmt.Fprintf(m.out, "Invalid ID %q: must be an integer.\n", s)
		return 0, false, nil
	}
	return id, true, nil
}

func (m *menu) add() error {
	title, err := m.prompt("Enter title: ")
	if err != nil {
		return err
	}
	author, err := m.prompt("Enter author: ")
	if err != nil {
		return err
	}
	year, err := m.prompt("Enter publication year: ")
	if err != nil {
		return err
	}

	b, err := m.lib.Add(title, author, libcat.YearString(year))
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Book %q added with ID %d.\n", b.Title, b.ID)
	return nil
}

func (m *menu) remove() error {
	id, ok, err := m.promptID("Enter the ID of the book to remove: ")
	if err != nil || !ok {
		return err
	}

	switch err := m.lib.Remove(id); {
	case errors.Is(err, libcat.ErrNotFound):
		fmt.Fprintf(m.out, "Book with ID %d not found!\n", id)
	case err != nil:
		return err
	default:
		fmt.Fprintf(m.out, "Book with ID %d removed.\n", id)
	}
	return nil
}

func (m *menu) search() error {
	query, err := m.prompt("Enter title, author or year to search for: ")
	if err != nil {
		return err
	}

	results := m.lib.Search(query)
	for _, b := range results {
		m.printBook(b)
	}
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No books match your query.")
	}
	return nil
}

func (m *menu) list() {
	if m.lib.Len() == 0 {
		fmt.Fprintln(m.out, "The library has no books.")
		return
	}
	for b := range m.lib.All() {
		m.printBook(b)
	}
}

func (m *menu) changeStatus() error {
	id, ok, err := m.promptID("Enter the ID of the book to update: ")
	if err != nil || !ok {
		return err
	}
	status, err := m.prompt(fmt.Sprintf("Enter new status (%s): ", joinStatuses("/")))
	if err != nil {
		return err
	}

	switch err := m.lib.ChangeStatus(id, libcat.Status(strings.TrimSpace(status))); {
	case errors.Is(err, libcat.ErrNotFound):
		fmt.Fprintf(m.out, "Book with ID %d not found!\n", id)
	case errors.Is(err, libcat.ErrInvalidStatus):
		fmt.Fprintf(m.out, "Invalid status. Valid statuses: %s.\n", joinStatuses(", "))
	case err != nil:
		return err
	default:
		b, _ := m.lib.Get(id)
		fmt.Fprintf(m.out, "Status of book with ID %d changed to %q.\n", id, b.Status)
	}
	return nil
}

func (m *menu) printBook(b libcat.Book) {
	fmt.Fprintf(m.out, "ID: %d, Title: %s, Author: %s, Year: %s, Status: %s\n",
		b.ID, b.Title, b.Author, b.Year, b.Status)
}

// joinStatuses renders the recognised statuses, quoted, separated by sep.
func joinStatuses(sep string) string {
	parts := make([]string, len(libcat.Statuses))
	for i, s := range libcat.Statuses {
		parts[i] = strconv.Quote(string(s))
	}
	return strings.Join(parts, sep)
}
