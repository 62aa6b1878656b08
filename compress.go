// Compressed backups of the previous save.
//
// With Config.Backup set, Save writes the file content it is about to
// replace to <name>.bak.zst, Zstd-compressed. Only one generation is kept.
// ReadBackup decodes it and Restore swaps it back in, which itself saves
// and therefore backs up the state being replaced: two Restores in a row
// return to where they started.
package libcat

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/klauspost/compress/zstd"
)

// BackupSuffix is appended to the library path to name its backup.
const BackupSuffix = ".bak.zst"

// Shared encoder/decoder, both safe for concurrent use. Construction is
// expensive, so they are allocated once.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}

// backup stores prev as the compressed backup of name.
func backup(root *os.Root, name string, prev []byte) error {
	if err := root.WriteFile(name+BackupSuffix, compress(prev), 0o644); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	return nil
}

// ReadBackup returns the books held in the backup of the library at path.
// A missing backup returns ErrNoBackup.
func ReadBackup(path string) ([]Book, error) {
	data, err := os.ReadFile(path + BackupSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoBackup
	}
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	raw, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	books, err := decodeBooks(raw)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return books, nil
}

// Restore replaces the books with the backup and saves.
func (l *Library) Restore() error {
	books, err := ReadBackup(l.path)
	if err != nil {
		return err
	}
	l.books = books
	if err := l.Save(); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return nil
}
