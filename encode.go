package clientbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/clientbook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist an address book in a way that is still human-readable and git-friendly.
//
// The book is a JSONL stream: one object per line, with a "kind" property telling what it is.
// All persons come first, in book order, then all transactions, in book order.
// Keys are written in a fixed order and optional fields are omitted when empty.

// recordKind identifies the type of object on a JSONL line.
type recordKind string

const (
	kindPerson      recordKind = "person"
	kindTransaction recordKind = "transaction"
)

// MarshalJSON implements the json.Marshaler interface for Person.
func (p *Person) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.Field("name", p.Name)
	w.Field("phone", p.Phone)
	w.Field("email", p.Email)
	w.Field("address", p.Address)
	w.OmitEmpty("remark", p.Remark)
	w.OmitEmpty("membership", p.Membership)
	w.OmitEmpty("tags", p.Tags)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Person.
func (p *Person) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name       string   `json:"name"`
		Phone      string   `json:"phone"`
		Email      string   `json:"email"`
		Address    string   `json:"address"`
		Remark     string   `json:"remark"`
		Membership Tier     `json:"membership"`
		Tags       []string `json:"tags"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = *NewPerson(temp.Name, temp.Phone, temp.Email, temp.Address, temp.Remark, temp.Membership, temp.Tags...)
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.Field("id", t.ID)
	w.Field("person", t.Owner)
	w.Field("description", t.Description)
	w.Field("date", t.Date)
	w.Field("paid", t.Paid)
	w.Inline(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the custom structure where amount and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		amountField
		ID          string    `json:"id"`
		Owner       string    `json:"person"`
		Description string    `json:"description"`
		Date        date.Date `json:"date"`
		Paid        bool      `json:"paid"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:          temp.ID,
		Owner:       temp.Owner,
		Description: temp.Description,
		Amount:      temp.Money(),
		Date:        temp.Date,
		Paid:        temp.Paid,
	}
	return nil
}

// encodeRecord writes v as a single JSONL line prefixed by its kind.
func encodeRecord(w io.Writer, kind recordKind, v any) error {
	var obj recordWriter
	obj.Field("kind", kind)
	obj.Inline(v)
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s: %w", kind, err)
	}
	return nil
}

// EncodeAddressBook persists the book to an io.Writer in JSONL format.
func EncodeAddressBook(w io.Writer, b *AddressBook) error {
	for _, p := range b.persons {
		if err := encodeRecord(w, kindPerson, p); err != nil {
			return err
		}
	}
	for _, tx := range b.transactions {
		if err := encodeRecord(w, kindTransaction, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeAddressBook decodes an address book from a stream of JSONL data.
// Each record is added through the AddressBook methods, so a stream that
// breaks the book invariants is rejected.
func DecodeAddressBook(r io.Reader) (*AddressBook, error) {
	book := NewAddressBook()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if strings.TrimSpace(string(lineBytes)) == "" {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind recordKind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindPerson:
			p := new(Person)
			if err := json.Unmarshal(lineBytes, p); err != nil {
				return nil, fmt.Errorf("line %d: invalid person: %w", line, err)
			}
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: invalid person %q: %w", line, p.Name, err)
			}
			if err := book.AddPerson(p); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case kindTransaction:
			tx := new(Transaction)
			if err := json.Unmarshal(lineBytes, tx); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction: %w", line, err)
			}
			if err := tx.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction %q: %w", line, tx.ID, err)
			}
			if err := book.AddTransaction(tx); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", line, identifier.Kind)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return book, nil
}
