package clientbook

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicatePerson is returned when a person with the same identity already exists.
	ErrDuplicatePerson = errors.New("this person already exists in the address book")
	// ErrPersonNotFound is returned when a person is not in the address book.
	ErrPersonNotFound = errors.New("person not found")
	// ErrTransactionNotFound is returned when a transaction is not in the address book.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// AddressBook holds persons and their transactions.
//
// Both lists keep their insertion order. Person identities are unique and
// every transaction is owned by a person of the book.
type AddressBook struct {
	persons      []*Person
	transactions []*Transaction
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		persons:      make([]*Person, 0),
		transactions: make([]*Transaction, 0),
	}
}

// Persons returns the persons in insertion order.
func (b *AddressBook) Persons() []*Person { return slices.Clone(b.persons) }

// Transactions returns the transactions in insertion order.
func (b *AddressBook) Transactions() []*Transaction { return slices.Clone(b.transactions) }

// Person returns the person with the same identity as name, or nil if unknown.
func (b *AddressBook) Person(name string) *Person {
	key := Identity(name)
	for _, p := range b.persons {
		if Identity(p.Name) == key {
			return p
		}
	}
	return nil
}

// HasPerson reports whether a person with the same identity as p exists.
func (b *AddressBook) HasPerson(p *Person) bool {
	return b.Person(p.Name) != nil
}

// AddPerson appends p to the book.
func (b *AddressBook) AddPerson(p *Person) error {
	if b.HasPerson(p) {
		return fmt.Errorf("cannot add %q: %w", p.Name, ErrDuplicatePerson)
	}
	b.persons = append(b.persons, p)
	return nil
}

// SetPerson replaces target with edited at the same position.
// If the name changes, the transactions of target are moved to edited.
func (b *AddressBook) SetPerson(target, edited *Person) error {
	i := slices.Index(b.persons, target)
	if i < 0 {
		return fmt.Errorf("cannot edit %q: %w", target.Name, ErrPersonNotFound)
	}
	if !target.IsSame(edited) && b.HasPerson(edited) {
		return fmt.Errorf("cannot rename %q to %q: %w", target.Name, edited.Name, ErrDuplicatePerson)
	}
	b.persons[i] = edited
	if target.Name != edited.Name {
		key := Identity(target.Name)
		for j, tx := range b.transactions {
			if Identity(tx.Owner) == key {
				b.transactions[j] = tx.WithOwner(edited.Name)
			}
		}
	}
	return nil
}

// RemovePerson removes p and all its transactions.
func (b *AddressBook) RemovePerson(p *Person) error {
	i := slices.Index(b.persons, p)
	if i < 0 {
		return fmt.Errorf("cannot delete %q: %w", p.Name, ErrPersonNotFound)
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	key := Identity(p.Name)
	b.transactions = slices.DeleteFunc(b.transactions, func(tx *Transaction) bool {
		return Identity(tx.Owner) == key
	})
	return nil
}

// AddTransaction appends tx to the book. Its owner must exist.
func (b *AddressBook) AddTransaction(tx *Transaction) error {
	if b.Person(tx.Owner) == nil {
		return fmt.Errorf("cannot add transaction for %q: %w", tx.Owner, ErrPersonNotFound)
	}
	b.transactions = append(b.transactions, tx)
	return nil
}

// SetTransaction replaces target with edited at the same position.
func (b *AddressBook) SetTransaction(target, edited *Transaction) error {
	i := slices.Index(b.transactions, target)
	if i < 0 {
		return fmt.Errorf("cannot edit transaction %s: %w", target.ID, ErrTransactionNotFound)
	}
	if b.Person(edited.Owner) == nil {
		return fmt.Errorf("cannot move transaction to %q: %w", edited.Owner, ErrPersonNotFound)
	}
	b.transactions[i] = edited
	return nil
}

// RemoveTransaction removes tx.
func (b *AddressBook) RemoveTransaction(tx *Transaction) error {
	i := slices.Index(b.transactions, tx)
	if i < 0 {
		return fmt.Errorf("cannot delete transaction %s: %w", tx.ID, ErrTransactionNotFound)
	}
	b.transactions = slices.Delete(b.transactions, i, i+1)
	return nil
}

// TransactionsOf returns the transactions owned by the person named name.
func (b *AddressBook) TransactionsOf(name string) []*Transaction {
	var txs []*Transaction
	for _, tx := range b.transactions {
		if Identity(tx.Owner) == Identity(name) {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Clone returns a deep copy of b. The copy shares no object with b.
func (b *AddressBook) Clone() *AddressBook {
	c := &AddressBook{
		persons:      make([]*Person, 0, len(b.persons)),
		transactions: make([]*Transaction, 0, len(b.transactions)),
	}
	for _, p := range b.persons {
		c.persons = append(c.persons, p.Clone())
	}
	for _, tx := range b.transactions {
		c.transactions = append(c.transactions, tx.Clone())
	}
	return c
}

// Equal reports whether b and o hold equal persons and transactions in the same order.
func (b *AddressBook) Equal(o *AddressBook) bool {
	if b == nil || o == nil {
		return b == o
	}
	return slices.EqualFunc(b.persons, o.persons, (*Person).Equal) &&
		slices.EqualFunc(b.transactions, o.transactions, (*Transaction).Equal)
}
