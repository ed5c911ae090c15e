package command

import (
	"fmt"
	"strings"

	"github.com/etnz/clientbook"
)

// Add adds a person to the book.
type Add struct {
	Person *clientbook.Person
}

func (Add) Mutating() bool { return true }

func (c Add) Execute(m *clientbook.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, fmt.Errorf("cannot add %q: %w", c.Person.Name, clientbook.ErrDuplicatePerson)
	}
	p := c.Person.Clone()
	if err := m.AddPerson(p); err != nil {
		return Result{}, err
	}
	m.FilterPersons(nil)
	return Result{Feedback: "New person added: " + p.String()}, nil
}

// PersonEdit lists the fields to change on a person. Nil fields are left
// untouched. A non-nil empty Tags removes all tags.
type PersonEdit struct {
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
	Remark     *string
	Membership *clientbook.Tier
	Tags       []string
}

// IsEmpty reports whether the edit changes nothing.
func (e PersonEdit) IsEmpty() bool {
	return e.Name == nil && e.Phone == nil && e.Email == nil && e.Address == nil &&
		e.Remark == nil && e.Membership == nil && e.Tags == nil
}

// apply returns a copy of p with the edit applied.
func (e PersonEdit) apply(p *clientbook.Person) *clientbook.Person {
	edited := p.Clone()
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&edited.Name, e.Name)
	set(&edited.Phone, e.Phone)
	set(&edited.Email, e.Email)
	set(&edited.Address, e.Address)
	set(&edited.Remark, e.Remark)
	if e.Membership != nil {
		edited.Membership = *e.Membership
	}
	if e.Tags != nil {
		edited.Tags = clientbook.NormalizeTags(e.Tags)
	}
	return edited
}

// Edit changes the person at Index. Views are reset to show every person,
// and every transaction if the person was renamed: filters hold the old name.
type Edit struct {
	Index Index
	Edit  PersonEdit
}

func (Edit) Mutating() bool { return true }

func (c Edit) Execute(m *clientbook.Model) (Result, error) {
	target, err := c.Index.person(m)
	if err != nil {
		return Result{}, err
	}
	edited := c.Edit.apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	m.FilterPersons(nil)
	if !target.IsSame(edited) {
		m.FilterTransactions(nil)
	}
	return Result{Feedback: "Edited person: " + edited.String()}, nil
}

// Delete removes the person at Index and all its transactions.
type Delete struct {
	Index Index
}

func (Delete) Mutating() bool { return true }

func (c Delete) Execute(m *clientbook.Model) (Result, error) {
	target, err := c.Index.person(m)
	if err != nil {
		return Result{}, err
	}
	n := len(m.Book().TransactionsOf(target.Name))
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	msg := "Deleted person: " + target.String()
	if n > 0 {
		msg += fmt.Sprintf(" (and %d transactions)", n)
	}
	return Result{Feedback: msg}, nil
}

// Clear empties the book.
type Clear struct{}

func (Clear) Mutating() bool { return true }

func (Clear) Execute(m *clientbook.Model) (Result, error) {
	m.SetBook(clientbook.NewAddressBook())
	return Result{Feedback: "Address book has been cleared!"}, nil
}

// List shows all persons and all transactions.
type List struct{}

func (List) Mutating() bool { return false }

func (List) Execute(m *clientbook.Model) (Result, error) {
	m.FilterPersons(nil)
	m.FilterTransactions(nil)
	return Result{Feedback: "Listed all persons"}, nil
}

// Find filters the persons shown.
//
// Persons are selected by name keywords, or by membership: either a given
// Tier, or any tier when AnyTier is set.
type Find struct {
	Keywords []string
	Tier     clientbook.Tier
	AnyTier  bool
}

// AllTiers is the membership argument of find selecting persons with any tier.
const AllTiers = "ALL"

func (Find) Mutating() bool { return false }

func (c Find) predicate() clientbook.PersonPredicate {
	switch {
	case c.AnyTier:
		return clientbook.AnyMembership
	case c.Tier != clientbook.NoTier:
		return clientbook.HasTier(c.Tier)
	default:
		return clientbook.NameContainsKeywords(c.Keywords...)
	}
}

func (c Find) Execute(m *clientbook.Model) (Result, error) {
	m.FilterPersons(c.predicate())
	n := len(m.FilteredPersons())
	return Result{Feedback: fmt.Sprintf("%d persons listed!", n)}, nil
}

func (c Find) String() string {
	switch {
	case c.AnyTier:
		return "m/" + AllTiers
	case c.Tier != clientbook.NoTier:
		return "m/" + string(c.Tier)
	default:
		return strings.Join(c.Keywords, " ")
	}
}
