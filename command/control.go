package command

import (
	"errors"

	"github.com/etnz/clientbook"
)

// Undo restores the book as it was before the last modification.
//
// Undo needs the saved state held by the logic coordinator, which handles it
// instead of calling Execute.
type Undo struct{}

func (Undo) Mutating() bool { return false }

func (Undo) Execute(*clientbook.Model) (Result, error) {
	return Result{}, errors.New("undo must be run by the coordinator")
}

// Help asks for the command reference.
type Help struct{}

func (Help) Mutating() bool { return false }

func (Help) Execute(*clientbook.Model) (Result, error) {
	return Result{Feedback: "Opened help.", ShowHelp: true}, nil
}

// Exit ends the session.
type Exit struct{}

func (Exit) Mutating() bool { return false }

func (Exit) Execute(*clientbook.Model) (Result, error) {
	return Result{Feedback: "Exiting as requested ...", Exit: true}, nil
}
