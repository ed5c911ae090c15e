package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/clientbook"
)

// MemorySlot keeps the undo state in memory. It lasts as long as the process.
type MemorySlot struct {
	book *clientbook.AddressBook
}

// Put stores b, replacing any previous state.
func (s *MemorySlot) Put(_ context.Context, b *clientbook.AddressBook) error {
	s.book = b
	return nil
}

// Take returns the stored state and empties the slot. ok is false if the
// slot was empty.
func (s *MemorySlot) Take(context.Context) (b *clientbook.AddressBook, ok bool, err error) {
	b, s.book = s.book, nil
	return b, b != nil, nil
}

// FileSlot keeps the undo state in a JSONL file, so that it survives between
// invocations of the CLI.
type FileSlot struct {
	Path string
}

// UndoPath returns the conventional path of the undo file of a book:
// ".<book>.undo" in the same directory.
func UndoPath(book string) string {
	return filepath.Join(filepath.Dir(book), "."+filepath.Base(book)+".undo")
}

// NewFileSlot returns the FileSlot associated with the book at path.
func NewFileSlot(book string) *FileSlot { return &FileSlot{Path: UndoPath(book)} }

func (s *FileSlot) Put(_ context.Context, b *clientbook.AddressBook) error {
	return writeBook(s.Path, b)
}

// Take reads the stored state and removes the file.
func (s *FileSlot) Take(context.Context) (*clientbook.AddressBook, bool, error) {
	b, err := readBook(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if err := os.Remove(s.Path); err != nil {
		return nil, false, fmt.Errorf("could not clear undo slot: %w", err)
	}
	return b, true, nil
}
