package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/libcat"
)

func openTestLibrary(t *testing.T) *libcat.Library {
	t.Helper()
	lib, err := libcat.Open(filepath.Join(t.TempDir(), "library.json"), libcat.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return lib
}

// session feeds lines to the menu and returns everything it printed.
func session(t *testing.T, lib *libcat.Library, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := run(lib, in, &out); err != nil {
		t.Fatalf("run: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestMenuAddAndList(t *testing.T) {
	lib := openTestLibrary(t)

	out := session(t, lib,
		"1", "1984", "George Orwell", "1949",
		"4",
		"6",
	)

	assertContains(t, out,
		`Book "1984" added with ID 1.`,
		"ID: 1, Title: 1984, Author: George Orwell, Year: 1949, Status: available",
		"Exiting.",
	)
	b, err := lib.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Year != libcat.YearString("1949") {
		t.Errorf("Year = %+v, want string 1949", b.Year)
	}
}

func TestMenuListEmpty(t *testing.T) {
	out := session(t, openTestLibrary(t), "4", "6")
	assertContains(t, out, "The library has no books.")
}

func TestMenuRemove(t *testing.T) {
	lib := openTestLibrary(t)
	lib.Add("1984", "George Orwell", libcat.YearString("1949"))

	out := session(t, lib, "2", "1", "2", "1", "6")

	assertContains(t, out, "Book with ID 1 removed.", "Book with ID 1 not found!")
	if lib.Len() != 0 {
		t.Errorf("Len = %d, want 0", lib.Len())
	}
}

func TestMenuRemoveBadID(t *testing.T) {
	lib := openTestLibrary(t)
	lib.Add("1984", "George Orwell", libcat.YearString("1949"))

	out := session(t, lib, "2", "one", "6")

	assertContains(t, out, `Invalid ID "one": must be an integer.`)
	if lib.Len() != 1 {
		t.Errorf("Len = %d, want 1", lib.Len())
	}
}

func TestMenuSearch(t *testing.T) {
	lib := openTestLibrary(t)
	lib.Add("1984", "George Orwell", libcat.YearString("1949"))

	out := session(t, lib, "3", "orwell", "3", "xyz", "6")

	assertContains(t, out,
		"ID: 1, Title: 1984, Author: George Orwell, Year: 1949, Status: available",
		"No books match your query.",
	)
}

func TestMenuChangeStatus(t *testing.T) {
	lib := openTestLibrary(t)
	lib.Add("1984", "George Orwell", libcat.YearString("1949"))

	out := session(t, lib,
		"5", "1", "checked_out",
		"5", "1", "bogus",
		"5", "99", "available",
		"6",
	)

	assertContains(t, out,
		`Status of book with ID 1 changed to "checked_out".`,
		`Invalid status. Valid statuses: "available", "checked_out".`,
		"Book with ID 99 not found!",
	)
	b, _ := lib.Get(1)
	if b.Status != libcat.CheckedOut {
		t.Errorf("Status = %q, want %q", b.Status, libcat.CheckedOut)
	}
}

func TestMenuInvalidChoice(t *testing.T) {
	out := session(t, openTestLibrary(t), "7", "", "6")
	if n := strings.Count(out, "Invalid choice, try again."); n != 2 {
		t.Errorf("invalid choice printed %d times, want 2:\n%s", n, out)
	}
}

func TestMenuEOFExits(t *testing.T) {
	lib := openTestLibrary(t)

	var out bytes.Buffer
	if err := run(lib, strings.NewReader("1\n1984\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Exiting.\n") {
		t.Errorf("output does not end with Exiting.:\n%s", out.String())
	}
	if lib.Len() != 0 {
		t.Errorf("half-entered book was added")
	}
}

func TestMenuCRLF(t *testing.T) {
	lib := openTestLibrary(t)

	var out bytes.Buffer
	in := strings.NewReader("1\r\n1984\r\nGeorge Orwell\r\n1949\r\n6\r\n")
	if err := run(lib, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := lib.Get(1)
	if b.Title != "1984" || b.Year.String() != "1949" {
		t.Errorf("book = %+v, want carriage returns stripped", b)
	}
}

// TestMenuWriteErrorFatal removes the library directory mid-session. The
// failed save ends the loop with an error wrapping ErrWrite.
func TestMenuWriteErrorFatal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	os.Mkdir(dir, 0o755)
	lib, err := libcat.Open(filepath.Join(dir, "library.json"), libcat.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	os.RemoveAll(dir)

	var out bytes.Buffer
	err = run(lib, strings.NewReader("1\n1984\nGeorge Orwell\n1949\n6\n"), &out)
	if !errors.Is(err, libcat.ErrWrite) {
		t.Fatalf("run: got %v, want ErrWrite", err)
	}
	if strings.Contains(out.String(), "Exiting.") {
		t.Errorf("fatal error printed the normal farewell:\n%s", out.String())
	}
}

func TestJoinStatuses(t *testing.T) {
	if got, want := joinStatuses("/"), `"available"/"checked_out"`; got != want {
		t.Errorf("joinStatuses = %q, want %q", got, want)
	}
}
