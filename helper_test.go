package clientbook

import "github.com/etnz/clientbook/date"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

func amy() *Person {
	return NewPerson("Amy Bee", "11111111", "amy@example.com", "Block 312, Amy Street 1", "", NoTier, "friend")
}

func bob() *Person {
	return NewPerson("Bob Choo", "22222222", "bob@example.com", "Block 123, Bobby Street 3", "likes tea", Gold, "husband", "friend")
}

func carl() *Person {
	return NewPerson("Carl Kurz", "95352563", "heinz@example.com", "wall street", "", Silver)
}

// typicalBook returns a book with three persons and three transactions.
func typicalBook() *AddressBook {
	b := NewAddressBook()
	for _, p := range []*Person{amy(), bob(), carl()} {
		if err := b.AddPerson(p); err != nil {
			panic(err)
		}
	}
	txs := []*Transaction{
		{ID: "tx-1", Owner: "Amy Bee", Description: "haircut", Amount: EUR(25), Date: date.MustParse("2025-01-10")},
		{ID: "tx-2", Owner: "Bob Choo", Description: "massage", Amount: EUR(80.5), Date: date.MustParse("2025-01-12"), Paid: true},
		{ID: "tx-3", Owner: "Amy Bee", Description: "manicure", Amount: EUR(30), Date: date.MustParse("2025-02-01")},
	}
	for _, tx := range txs {
		if err := b.AddTransaction(tx); err != nil {
			panic(err)
		}
	}
	return b
}
