package command

import (
	"fmt"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/date"
)

// AddTransaction records a new unpaid transaction for the person at Index.
type AddTransaction struct {
	Index       Index
	Description string
	Amount      clientbook.Money
	Date        date.Date // zero means today
}

func (AddTransaction) Mutating() bool { return true }

func (c AddTransaction) Execute(m *clientbook.Model) (Result, error) {
	owner, err := c.Index.person(m)
	if err != nil {
		return Result{}, err
	}
	day := c.Date
	if day.IsZero() {
		day = date.Today()
	}
	tx := clientbook.NewTransaction(owner.Name, c.Description, c.Amount, day)
	if err := m.AddTransaction(tx); err != nil {
		return Result{}, err
	}
	m.FilterTransactions(nil)
	return Result{Feedback: "New transaction added: " + tx.String()}, nil
}

// DeleteTransaction removes the transaction at Index.
type DeleteTransaction struct {
	Index Index
}

func (DeleteTransaction) Mutating() bool { return true }

func (c DeleteTransaction) Execute(m *clientbook.Model) (Result, error) {
	tx, err := c.Index.transaction(m)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTransaction(tx); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Deleted transaction: " + tx.String()}, nil
}

// setStatus replaces the transaction at i with a copy having the given status.
// The replacement happens even if the status does not change.
func setStatus(m *clientbook.Model, i Index, paid bool) (*clientbook.Transaction, error) {
	tx, err := i.transaction(m)
	if err != nil {
		return nil, err
	}
	edited := tx.WithStatus(paid)
	if err := m.SetTransaction(tx, edited); err != nil {
		return nil, err
	}
	return edited, nil
}

// Pay marks the transaction at Index as paid.
type Pay struct {
	Index Index
}

func (Pay) Mutating() bool { return true }

func (c Pay) Execute(m *clientbook.Model) (Result, error) {
	tx, err := setStatus(m, c.Index, true)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Transaction marked as paid: " + tx.String()}, nil
}

// Unpay marks the transaction at Index as unpaid.
type Unpay struct {
	Index Index
}

func (Unpay) Mutating() bool { return true }

func (c Unpay) Execute(m *clientbook.Model) (Result, error) {
	tx, err := setStatus(m, c.Index, false)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Transaction marked as unpaid: " + tx.String()}, nil
}

// ShowTransactions restricts the transactions shown to those of the person at Index.
type ShowTransactions struct {
	Index Index
}

func (ShowTransactions) Mutating() bool { return false }

func (c ShowTransactions) Execute(m *clientbook.Model) (Result, error) {
	owner, err := c.Index.person(m)
	if err != nil {
		return Result{}, err
	}
	m.FilterTransactions(clientbook.OwnedBy(owner.Name))
	n := len(m.FilteredTransactions())
	return Result{Feedback: fmt.Sprintf("%d transactions listed for %s!", n, owner.Name)}, nil
}
