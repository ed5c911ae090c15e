package clientbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/clientbook/date"
	"github.com/google/uuid"
)

// Transaction is an amount owed by a person.
//
// A transaction refers to its owner by name. Like persons, transactions are
// replaced rather than mutated: changing the status builds a new Transaction
// with the same ID.
type Transaction struct {
	ID          string
	Owner       string // name of the owning person
	Description string
	Amount      Money
	Date        date.Date
	Paid        bool
}

// NewTransaction returns an unpaid transaction with a fresh ID.
func NewTransaction(owner, description string, amount Money, day date.Date) *Transaction {
	return &Transaction{
		ID:          uuid.NewString(),
		Owner:       owner,
		Description: description,
		Amount:      amount,
		Date:        day,
	}
}

// WithStatus returns a copy of t with the paid status set to paid.
// The copy is always a new object, even when the status is unchanged.
func (t *Transaction) WithStatus(paid bool) *Transaction {
	c := *t
	c.Paid = paid
	return &c
}

// WithOwner returns a copy of t owned by owner.
func (t *Transaction) WithOwner(owner string) *Transaction {
	c := *t
	c.Owner = owner
	return &c
}

// Status returns "paid" or "unpaid".
func (t *Transaction) Status() string {
	if t.Paid {
		return "paid"
	}
	return "unpaid"
}

// Clone returns a copy of t.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// Equal reports whether t and o have the same values in all fields.
func (t *Transaction) Equal(o *Transaction) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.ID == o.ID &&
		t.Owner == o.Owner &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Date == o.Date &&
		t.Paid == o.Paid
}

// Validate checks the fields a stored transaction must have.
func (t *Transaction) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if strings.TrimSpace(t.Description) == "" {
		errs = append(errs, errors.New("missing description"))
	}
	if t.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if !ValidCurrency(t.Amount.Currency()) {
		errs = append(errs, fmt.Errorf("unknown currency %q", t.Amount.Currency()))
	}
	if !t.Amount.Value().IsPositive() {
		errs = append(errs, fmt.Errorf("amount must be positive, got %s", t.Amount.Value()))
	}
	if t.Amount.Value().GreaterThan(MaxAmount) {
		errs = append(errs, fmt.Errorf("amount %s is larger than %s", t.Amount.Value(), MaxAmount))
	}
	return errors.Join(errs...)
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s: %s %s on %s (%s)", t.Owner, t.Description, t.Amount, t.Date, t.Status())
}
