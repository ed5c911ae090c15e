package renderer

import (
	"slices"
	"strings"

	"github.com/etnz/clientbook"
)

// PersonRow is a person as displayed in the persons list.
type PersonRow struct {
	Index      int
	Name       string
	Phone      string
	Email      string
	Address    string
	Membership string
	Tags       string
	Remark     string
}

// TransactionRow is a transaction as displayed in the transactions list.
type TransactionRow struct {
	Index       int
	Owner       string
	Description string
	Date        string
	Amount      string
	Status      string
}

// View is what the user sees after a command.
type View struct {
	Feedback         string
	ShowPersons      bool
	ShowTransactions bool
	Persons          []PersonRow
	Transactions     []TransactionRow
	Unpaid           []string // total of the unpaid transactions listed, per currency
}

// NewView builds the view of the filtered lists of m. Indexes start at 1, as
// expected by the commands.
func NewView(feedback string, m *clientbook.Model) *View {
	v := &View{Feedback: feedback, ShowPersons: true, ShowTransactions: true}
	for i, p := range m.FilteredPersons() {
		v.Persons = append(v.Persons, PersonRow{
			Index:      i + 1,
			Name:       p.Name,
			Phone:      p.Phone,
			Email:      p.Email,
			Address:    p.Address,
			Membership: string(p.Membership),
			Tags:       strings.Join(p.Tags, ", "),
			Remark:     p.Remark,
		})
	}

	unpaid := make(map[string]clientbook.Money)
	for i, tx := range m.FilteredTransactions() {
		v.Transactions = append(v.Transactions, TransactionRow{
			Index:       i + 1,
			Owner:       tx.Owner,
			Description: tx.Description,
			Date:        tx.Date.String(),
			Amount:      tx.Amount.String(),
			Status:      tx.Status(),
		})
		if !tx.Paid {
			cur := tx.Amount.Currency()
			unpaid[cur] = unpaid[cur].Add(tx.Amount)
		}
	}
	currencies := make([]string, 0, len(unpaid))
	for cur := range unpaid {
		currencies = append(currencies, cur)
	}
	slices.Sort(currencies)
	for _, cur := range currencies {
		v.Unpaid = append(v.Unpaid, unpaid[cur].String())
	}
	return v
}

// FeedbackLines splits the feedback in lines, for quoting.
func (v *View) FeedbackLines() []string {
	return strings.Split(strings.TrimRight(v.Feedback, "\n"), "\n")
}
