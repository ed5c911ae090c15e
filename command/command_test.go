package command

import (
	"errors"
	"testing"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/date"
	"github.com/google/go-cmp/cmp"
)

func eur(v float64) clientbook.Money { return clientbook.M(v, "EUR") }

// newModel returns a model with four persons (three with a tier) and
// two transactions for Amy.
func newModel(t *testing.T) *clientbook.Model {
	t.Helper()
	b := clientbook.NewAddressBook()
	persons := []*clientbook.Person{
		clientbook.NewPerson("Amy Bee", "11111111", "amy@example.com", "Amy Street 1", "", clientbook.Gold),
		clientbook.NewPerson("Bob Choo", "22222222", "bob@example.com", "Bob Street 3", "", clientbook.Silver, "friend"),
		clientbook.NewPerson("Carl Kurz", "95352563", "carl@example.com", "wall street", "", clientbook.NoTier),
		clientbook.NewPerson("Daniel Meier", "87652533", "cornelia@example.com", "10th street", "", clientbook.Bronze),
	}
	for _, p := range persons {
		if err := b.AddPerson(p); err != nil {
			t.Fatalf("AddPerson(%v) failed: %v", p.Name, err)
		}
	}
	txs := []*clientbook.Transaction{
		clientbook.NewTransaction("Amy Bee", "haircut", eur(25), date.MustParse("2025-01-10")),
		clientbook.NewTransaction("Amy Bee", "manicure", eur(30), date.MustParse("2025-02-01")),
	}
	for _, tx := range txs {
		if err := b.AddTransaction(tx); err != nil {
			t.Fatalf("AddTransaction(%v) failed: %v", tx.Description, err)
		}
	}
	return clientbook.NewModel(b)
}

func names(persons []*clientbook.Person) []string {
	var out []string
	for _, p := range persons {
		out = append(out, p.Name)
	}
	return out
}

func TestAdd(t *testing.T) {
	m := newModel(t)
	eve := clientbook.NewPerson("Eve", "12345678", "eve@example.com", "Street", "", clientbook.NoTier)
	res, err := Add{eve}.Execute(m)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if res.Feedback == "" {
		t.Error("Add returned no feedback")
	}
	if got := len(m.Book().Persons()); got != 5 {
		t.Errorf("Add: got %d persons, want 5", got)
	}
	if got := m.Book().Person("eve"); !got.Equal(eve) {
		t.Errorf("Add: Person(eve) = %v, want %v", got, eve)
	}
}

func TestAddDuplicate(t *testing.T) {
	m := newModel(t)
	before := m.Book().Clone()
	dup := clientbook.NewPerson("amy   BEE", "33333333", "other@example.com", "Elsewhere", "", clientbook.NoTier)
	_, err := Add{dup}.Execute(m)
	if !errors.Is(err, clientbook.ErrDuplicatePerson) {
		t.Fatalf("Add(duplicate) error = %v, want ErrDuplicatePerson", err)
	}
	if !m.Book().Equal(before) {
		t.Error("Add(duplicate) changed the book")
	}
}

func TestDelete(t *testing.T) {
	m := newModel(t)
	if _, err := (Delete{1}).Execute(m); err != nil {
		t.Fatalf("Delete(1) failed: %v", err)
	}
	want := []string{"Bob Choo", "Carl Kurz", "Daniel Meier"}
	if diff := cmp.Diff(want, names(m.FilteredPersons())); diff != "" {
		t.Errorf("Delete(1) persons mismatch (-want +got):\n%s", diff)
	}
	if got := len(m.Book().Transactions()); got != 0 {
		t.Errorf("Delete(1) left %d transactions, want 0", got)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"delete zero", Delete{0}},
		{"delete past end", Delete{5}},
		{"edit past end", Edit{Index: 9, Edit: PersonEdit{Phone: ptr("123")}}},
		{"pay past end", Pay{3}},
		{"unpay negative", Unpay{-1}},
		{"deletetx past end", DeleteTransaction{3}},
		{"addtx past end", AddTransaction{Index: 5, Description: "x", Amount: eur(1)}},
		{"showtx zero", ShowTransactions{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			before := m.Book().Clone()
			_, err := tt.cmd.Execute(m)
			if !errors.Is(err, ErrInvalidIndex) {
				t.Fatalf("Execute() error = %v, want ErrInvalidIndex", err)
			}
			if !m.Book().Equal(before) {
				t.Error("Execute() changed the book on error")
			}
		})
	}
}

func TestIndexIsRelativeToFilteredView(t *testing.T) {
	m := newModel(t)
	if _, err := (Find{Keywords: []string{"carl"}}).Execute(m); err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if _, err := (Delete{2}).Execute(m); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Delete(2) on a view of 1 error = %v, want ErrInvalidIndex", err)
	}
	if _, err := (Delete{1}).Execute(m); err != nil {
		t.Fatalf("Delete(1) failed: %v", err)
	}
	if m.Book().Person("Carl Kurz") != nil {
		t.Error("Delete(1) did not delete the first person of the filtered view")
	}
}

func ptr[T any](v T) *T { return &v }

func TestEdit(t *testing.T) {
	m := newModel(t)
	edit := PersonEdit{Name: ptr("Amy Wong"), Tags: []string{"vip", "friend"}}
	if _, err := (Edit{Index: 1, Edit: edit}).Execute(m); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	got := m.Book().Person("Amy Wong")
	if got == nil {
		t.Fatal("Edit did not rename the person")
	}
	if diff := cmp.Diff([]string{"friend", "vip"}, got.Tags); diff != "" {
		t.Errorf("Edit tags mismatch (-want +got):\n%s", diff)
	}
	if got.Phone != "11111111" {
		t.Errorf("Edit changed phone to %q", got.Phone)
	}
	if n := len(m.Book().TransactionsOf("Amy Wong")); n != 2 {
		t.Errorf("Edit: renamed person owns %d transactions, want 2", n)
	}
}

func TestEditResetsViews(t *testing.T) {
	m := newModel(t)
	m.FilterPersons(clientbook.NameContainsKeywords("amy"))
	m.FilterTransactions(clientbook.OwnedBy("Amy Bee"))

	if _, err := (Edit{Index: 1, Edit: PersonEdit{Name: ptr("Amelia")}}).Execute(m); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if got := names(m.FilteredPersons()); len(got) != 4 || got[0] != "Amelia" {
		t.Errorf("after rename, persons shown = %v, want all four with Amelia first", got)
	}
	if got := len(m.FilteredTransactions()); got != 2 {
		t.Errorf("after rename, %d transactions shown, want 2", got)
	}
}

func TestEditClearTags(t *testing.T) {
	m := newModel(t)
	if _, err := (Edit{Index: 2, Edit: PersonEdit{Tags: []string{}}}).Execute(m); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if got := m.Book().Person("Bob Choo").Tags; len(got) != 0 {
		t.Errorf("Edit with empty tags left %v", got)
	}
}

func TestEditDuplicate(t *testing.T) {
	m := newModel(t)
	_, err := (Edit{Index: 1, Edit: PersonEdit{Name: ptr("bob choo")}}).Execute(m)
	if !errors.Is(err, clientbook.ErrDuplicatePerson) {
		t.Errorf("Edit to an existing name error = %v, want ErrDuplicatePerson", err)
	}
}

func TestPayUnpay(t *testing.T) {
	m := newModel(t)
	original := m.FilteredTransactions()[0]

	if _, err := (Pay{1}).Execute(m); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	paid := m.FilteredTransactions()[0]
	if !paid.Paid {
		t.Error("Pay did not mark the transaction as paid")
	}
	if paid.ID != original.ID {
		t.Errorf("Pay changed the ID from %q to %q", original.ID, paid.ID)
	}

	if _, err := (Unpay{1}).Execute(m); err != nil {
		t.Fatalf("Unpay failed: %v", err)
	}
	got := m.FilteredTransactions()[0]
	if got == original {
		t.Error("Pay then Unpay kept the same transaction object")
	}
	if !got.Equal(original) {
		t.Errorf("Pay then Unpay = %v, want %v", got, original)
	}
}

func TestPayTwiceReplacesObject(t *testing.T) {
	m := newModel(t)
	if _, err := (Pay{1}).Execute(m); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	first := m.FilteredTransactions()[0]
	if _, err := (Pay{1}).Execute(m); err != nil {
		t.Fatalf("second Pay failed: %v", err)
	}
	second := m.FilteredTransactions()[0]
	if first == second {
		t.Error("second Pay kept the same transaction object")
	}
	if !first.Equal(second) {
		t.Errorf("second Pay changed the value: %v != %v", second, first)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		find Find
		want []string
	}{
		{"all tiers", Find{AnyTier: true}, []string{"Amy Bee", "Bob Choo", "Daniel Meier"}},
		{"silver", Find{Tier: clientbook.Silver}, []string{"Bob Choo"}},
		{"platinum", Find{Tier: clientbook.Platinum}, nil},
		{"keywords", Find{Keywords: []string{"KURZ", "amy"}}, []string{"Amy Bee", "Carl Kurz"}},
		{"partial word", Find{Keywords: []string{"Dan"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			if _, err := tt.find.Execute(m); err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, names(m.FilteredPersons())); diff != "" {
				t.Errorf("Find mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListResetsFilters(t *testing.T) {
	m := newModel(t)
	m.FilterPersons(clientbook.HasTier(clientbook.Gold))
	m.FilterTransactions(func(*clientbook.Transaction) bool { return false })
	if _, err := (List{}).Execute(m); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got := len(m.FilteredPersons()); got != 4 {
		t.Errorf("List shows %d persons, want 4", got)
	}
	if got := len(m.FilteredTransactions()); got != 2 {
		t.Errorf("List shows %d transactions, want 2", got)
	}
}

func TestAddTransactionAndShow(t *testing.T) {
	m := newModel(t)
	c := AddTransaction{Index: 2, Description: "massage", Amount: eur(80.5), Date: date.MustParse("2025-03-01")}
	if _, err := c.Execute(m); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	if _, err := (ShowTransactions{2}).Execute(m); err != nil {
		t.Fatalf("ShowTransactions failed: %v", err)
	}
	txs := m.FilteredTransactions()
	if len(txs) != 1 {
		t.Fatalf("ShowTransactions(2) shows %d transactions, want 1", len(txs))
	}
	got := txs[0]
	if got.Owner != "Bob Choo" || got.Description != "massage" || !got.Amount.Equal(eur(80.5)) || got.Paid {
		t.Errorf("AddTransaction added %v", got)
	}
	if got.Date != date.MustParse("2025-03-01") {
		t.Errorf("AddTransaction date = %v, want 2025-03-01", got.Date)
	}
}

func TestClear(t *testing.T) {
	m := newModel(t)
	if _, err := (Clear{}).Execute(m); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if !m.Book().Equal(clientbook.NewAddressBook()) {
		t.Error("Clear left a non empty book")
	}
}

func TestMutating(t *testing.T) {
	mutating := []Command{Add{}, Edit{}, Delete{}, Clear{}, AddTransaction{}, DeleteTransaction{}, Pay{}, Unpay{}}
	for _, c := range mutating {
		if !c.Mutating() {
			t.Errorf("%T.Mutating() = false, want true", c)
		}
	}
	readOnly := []Command{List{}, Find{}, ShowTransactions{}, Undo{}, Help{}, Exit{}}
	for _, c := range readOnly {
		if c.Mutating() {
			t.Errorf("%T.Mutating() = true, want false", c)
		}
	}
}

func TestHelpAndExit(t *testing.T) {
	m := newModel(t)
	if res, _ := (Help{}).Execute(m); !res.ShowHelp {
		t.Error("Help did not set ShowHelp")
	}
	if res, _ := (Exit{}).Execute(m); !res.Exit {
		t.Error("Exit did not set Exit")
	}
}
