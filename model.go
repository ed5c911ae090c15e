package clientbook

import (
	"slices"
	"strings"
)

// PersonPredicate selects persons in a filtered view.
type PersonPredicate func(*Person) bool

// TransactionPredicate selects transactions in a filtered view.
type TransactionPredicate func(*Transaction) bool

// AllPersons accepts every person.
func AllPersons(*Person) bool { return true }

// AllTransactions accepts every transaction.
func AllTransactions(*Transaction) bool { return true }

// AnyMembership accepts persons with a membership tier.
func AnyMembership(p *Person) bool { return p.HasMembership() }

// HasTier returns a predicate accepting persons with membership tier.
func HasTier(tier Tier) PersonPredicate {
	return func(p *Person) bool { return p.HasMembership() && p.Membership == tier }
}

// NameContainsKeywords returns a predicate accepting persons whose name
// contains any of the keywords as a whole word, ignoring case.
func NameContainsKeywords(keywords ...string) PersonPredicate {
	keys := make([]string, 0, len(keywords))
	for _, k := range keywords {
		keys = append(keys, Identity(k))
	}
	return func(p *Person) bool {
		for _, word := range strings.Fields(p.Name) {
			if slices.Contains(keys, Identity(word)) {
				return true
			}
		}
		return false
	}
}

// OwnedBy returns a predicate accepting transactions owned by the person named name.
func OwnedBy(name string) TransactionPredicate {
	key := Identity(name)
	return func(tx *Transaction) bool { return Identity(tx.Owner) == key }
}

// Model is an AddressBook with the predicates of the current person and
// transaction views.
//
// Filtered views are derived on each read, so they always reflect the latest
// content of the book and the latest predicates.
type Model struct {
	book         *AddressBook
	personPred   PersonPredicate
	transactPred TransactionPredicate
}

// NewModel creates a model over book showing everything.
func NewModel(book *AddressBook) *Model {
	if book == nil {
		book = NewAddressBook()
	}
	return &Model{book: book, personPred: AllPersons, transactPred: AllTransactions}
}

// Book returns the underlying address book.
func (m *Model) Book() *AddressBook { return m.book }

// SetBook replaces the whole address book and resets both views.
func (m *Model) SetBook(book *AddressBook) {
	m.book = book
	m.personPred = AllPersons
	m.transactPred = AllTransactions
}

// FilterPersons installs pred as the person view predicate. A nil pred shows all persons.
func (m *Model) FilterPersons(pred PersonPredicate) {
	if pred == nil {
		pred = AllPersons
	}
	m.personPred = pred
}

// FilterTransactions installs pred as the transaction view predicate. A nil pred shows all transactions.
func (m *Model) FilterTransactions(pred TransactionPredicate) {
	if pred == nil {
		pred = AllTransactions
	}
	m.transactPred = pred
}

// FilteredPersons returns the persons accepted by the current predicate, in book order.
func (m *Model) FilteredPersons() []*Person {
	var persons []*Person
	for _, p := range m.book.persons {
		if m.personPred(p) {
			persons = append(persons, p)
		}
	}
	return persons
}

// FilteredTransactions returns the transactions accepted by the current predicate, in book order.
func (m *Model) FilteredTransactions() []*Transaction {
	var txs []*Transaction
	for _, tx := range m.book.transactions {
		if m.transactPred(tx) {
			txs = append(txs, tx)
		}
	}
	return txs
}

func (m *Model) HasPerson(p *Person) bool { return m.book.HasPerson(p) }

func (m *Model) AddPerson(p *Person) error { return m.book.AddPerson(p) }

func (m *Model) SetPerson(target, edited *Person) error { return m.book.SetPerson(target, edited) }

func (m *Model) DeletePerson(p *Person) error { return m.book.RemovePerson(p) }

func (m *Model) AddTransaction(tx *Transaction) error { return m.book.AddTransaction(tx) }

func (m *Model) SetTransaction(target, edited *Transaction) error {
	return m.book.SetTransaction(target, edited)
}

func (m *Model) DeleteTransaction(tx *Transaction) error { return m.book.RemoveTransaction(tx) }
