// Package command implements the commands that act on a clientbook.Model.
//
// Each command is a small value built by the parser. Executing it mutates the
// model (or only its views) and returns a Result carrying the feedback for the
// user.
package command

import (
	"errors"
	"fmt"

	"github.com/etnz/clientbook"
)

// ErrInvalidIndex is returned when an index does not designate an element of
// the current filtered view.
var ErrInvalidIndex = errors.New("invalid index")

// Result is the outcome of a successful command.
type Result struct {
	Feedback string // message for the user
	ShowHelp bool   // the user asked for help
	Exit     bool   // the user asked to quit
}

// Command is a unit of execution against a Model.
type Command interface {
	// Execute runs the command. On error the model is left unchanged.
	Execute(m *clientbook.Model) (Result, error)
	// Mutating reports whether the command may change the content of the
	// address book, as opposed to its views.
	Mutating() bool
}

// Index is a 1-based position in a filtered view, as displayed to the user.
type Index int

// person resolves i in the filtered person view of m.
func (i Index) person(m *clientbook.Model) (*clientbook.Person, error) {
	persons := m.FilteredPersons()
	if i < 1 || int(i) > len(persons) {
		return nil, fmt.Errorf("%w: no person at index %d in the displayed list of %d", ErrInvalidIndex, i, len(persons))
	}
	return persons[i-1], nil
}

// transaction resolves i in the filtered transaction view of m.
func (i Index) transaction(m *clientbook.Model) (*clientbook.Transaction, error) {
	txs := m.FilteredTransactions()
	if i < 1 || int(i) > len(txs) {
		return nil, fmt.Errorf("%w: no transaction at index %d in the displayed list of %d", ErrInvalidIndex, i, len(txs))
	}
	return txs[i-1], nil
}
