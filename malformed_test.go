// Malformed library file tests.
//
// A library file that exists but cannot be decoded is fatal at startup:
// Open must fail with an error wrapping ErrCorrupt and never fall back to
// an empty library, which the next save would then write over the
// user's data. Each case below is a file a user could plausibly end up
// with from a hand edit, a truncated copy or another tool.
package libcat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ``},
		{"whitespace", "  \n"},
		{"not json", `not json`},
		{"truncated", `[{"book_id": 1, "title": "1984"`},
		{"null", `null`},
		{"object", `{"book_id": 1}`},
		{"array of strings", `["1984"]`},
		{"null element", `[null]`},
		{"trailing data", `[] []`},
		{"missing field", `[{"book_id":1,"title":"t","author":"a","year":"1"}]`},
		{"extra field", `[{"book_id":1,"title":"t","author":"a","year":"1","status":"available","isbn":"x"}]`},
		{"null field", `[{"book_id":1,"title":null,"author":"a","year":"1","status":"available"}]`},
		{"string id", `[{"book_id":"1","title":"t","author":"a","year":"1","status":"available"}]`},
		{"float id", `[{"book_id":1.5,"title":"t","author":"a","year":"1","status":"available"}]`},
		{"numeric title", `[{"book_id":1,"title":1984,"author":"a","year":"1","status":"available"}]`},
		{"bool year", `[{"book_id":1,"title":"t","author":"a","year":true,"status":"available"}]`},
		{"numeric status", `[{"book_id":1,"title":"t","author":"a","year":"1","status":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}

			lib, err := Open(path, Config{Logger: quietLogger})
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("Open: got %v, want ErrCorrupt", err)
			}
			if lib != nil {
				t.Error("Open returned a library alongside the error")
			}

			// The file must be left exactly as it was.
			got, _ := os.ReadFile(path)
			if string(got) != tt.data {
				t.Errorf("file modified: %q", got)
			}
		})
	}
}
