// Package storage persists address books.
//
// A store holds the durable book. A slot holds at most one book, the state to
// restore on undo.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/clientbook"
)

// File stores an address book in a JSONL file.
type File struct {
	Path string
}

// NewFile returns a File store at path.
func NewFile(path string) *File { return &File{Path: path} }

// Load reads the book. If the file does not exist the error wraps fs.ErrNotExist.
func (f *File) Load(ctx context.Context) (*clientbook.AddressBook, error) {
	return readBook(f.Path)
}

// Save writes b to the file, replacing it atomically.
func (f *File) Save(ctx context.Context, b *clientbook.AddressBook) error {
	return writeBook(f.Path, b)
}

func (f *File) String() string { return f.Path }

func readBook(path string) (*clientbook.AddressBook, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open address book %q: %w", path, err)
	}
	defer r.Close()

	b, err := clientbook.DecodeAddressBook(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode address book %q: %w", path, err)
	}
	return b, nil
}

// writeBook writes to a temporary file in the same directory, then renames it.
func writeBook(path string, b *clientbook.AddressBook) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := clientbook.EncodeAddressBook(tmp, b); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing %q: %w", path, err)
	}
	return nil
}
