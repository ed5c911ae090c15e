// Package logic runs commands against an address book and keeps it saved.
//
// The Coordinator parses a command line, executes the resulting command on its
// Model, and saves the book after each modification. Before a modification it
// keeps a copy of the book in an undo slot, so that the last change can be
// reverted once.
package logic

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/command"
	"github.com/etnz/clientbook/parser"
)

// ErrNothingToUndo is returned by Undo when there is no previous state.
var ErrNothingToUndo = errors.New("no previous modification to undo")

// StorageError reports a failure to read or write the book or its undo state.
// The Model may already contain the change that could not be saved.
type StorageError struct {
	Op  string // "load", "save", "snapshot" or "restore"
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// Store persists the address book.
type Store interface {
	Load(ctx context.Context) (*clientbook.AddressBook, error)
	Save(ctx context.Context, b *clientbook.AddressBook) error
}

// Slot holds at most one address book.
type Slot interface {
	// Put stores b, replacing the previous one.
	Put(ctx context.Context, b *clientbook.AddressBook) error
	// Take returns the stored book and empties the slot.
	Take(ctx context.Context) (b *clientbook.AddressBook, ok bool, err error)
}

// Coordinator executes command lines against a Model.
type Coordinator struct {
	model  *clientbook.Model
	store  Store
	slot   Slot
	parser parser.Parser
}

// New returns a Coordinator over an existing Model.
func New(model *clientbook.Model, store Store, slot Slot, p parser.Parser) *Coordinator {
	return &Coordinator{model: model, store: store, slot: slot, parser: p}
}

// Open loads the book from store. A missing book is replaced by an empty one.
func Open(ctx context.Context, store Store, slot Slot, p parser.Parser) (*Coordinator, error) {
	b, err := store.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		slog.WarnContext(ctx, "address book does not exist, starting with an empty one", "store", store)
		b, err = clientbook.NewAddressBook(), nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return New(clientbook.NewModel(b), store, slot, p), nil
}

// Model returns the model, for display.
func (c *Coordinator) Model() *clientbook.Model { return c.model }

// Execute parses and runs a command line.
//
// Errors from parsing and execution leave the Model and the undo slot
// unchanged. A *StorageError means the Model has changed but could not be saved.
func (c *Coordinator) Execute(ctx context.Context, line string) (command.Result, error) {
	cmd, err := c.parser.Parse(line)
	if err != nil {
		return command.Result{}, err
	}
	slog.DebugContext(ctx, "parsed command", "line", line, "command", fmt.Sprintf("%T", cmd))

	if _, ok := cmd.(command.Undo); ok {
		return c.Undo(ctx)
	}
	if !cmd.Mutating() {
		return cmd.Execute(c.model)
	}

	snapshot := c.model.Book().Clone()
	res, err := cmd.Execute(c.model)
	if err != nil {
		return command.Result{}, err
	}

	if snapshot.Equal(c.model.Book()) {
		slog.DebugContext(ctx, "book unchanged, undo state kept")
	} else {
		if err := c.slot.Put(ctx, snapshot); err != nil {
			return res, &StorageError{Op: "snapshot", Err: err}
		}
		slog.DebugContext(ctx, "undo state saved")
	}
	if err := c.save(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// Undo restores the book as it was before the last modification.
// Undo can only be called once per modification.
func (c *Coordinator) Undo(ctx context.Context) (command.Result, error) {
	b, ok, err := c.slot.Take(ctx)
	if err != nil {
		return command.Result{}, &StorageError{Op: "restore", Err: err}
	}
	if !ok {
		return command.Result{}, ErrNothingToUndo
	}
	c.model.SetBook(b)
	slog.DebugContext(ctx, "undo state restored")
	if err := c.save(ctx); err != nil {
		return command.Result{}, err
	}
	return command.Result{Feedback: "Undid previous modification"}, nil
}

func (c *Coordinator) save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.model.Book()); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	slog.DebugContext(ctx, "address book saved", "store", c.store)
	return nil
}
