// Package sqlite stores address books in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/clientbook"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go driver, no cgo
)

// Store keeps an address book in the persons and transactions tables.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at dbPath, creating it and its schema if needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) String() string { return s.path }

// Load reads the whole book, in position order.
func (s *Store) Load(ctx context.Context) (*clientbook.AddressBook, error) {
	b := clientbook.NewAddressBook()

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, phone, email, address, remark, membership, tags FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name, phone, email, address, remark, membership, tags string
		if err := rows.Scan(&name, &phone, &email, &address, &remark, &membership, &tags); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p := clientbook.NewPerson(name, phone, email, address, remark, clientbook.Tier(membership), splitTags(tags)...)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid person %q: %w", name, err)
		}
		if err := b.AddPerson(p); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}

	txRows, err := s.db.QueryContext(ctx,
		`SELECT id, owner, description, date, paid, currency, amount FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer txRows.Close()
	for txRows.Next() {
		var (
			tx               clientbook.Transaction
			day, cur, amount string
		)
		if err := txRows.Scan(&tx.ID, &tx.Owner, &tx.Description, &day, &tx.Paid, &cur, &amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if err := tx.Date.UnmarshalText([]byte(day)); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: invalid amount %q: %w", tx.ID, amount, err)
		}
		tx.Amount = clientbook.M(value, cur)
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction %q: %w", tx.ID, err)
		}
		if err := b.AddTransaction(&tx); err != nil {
			return nil, err
		}
	}
	if err := txRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return b, nil
}

// Save replaces the content of the database with b in a single transaction.
func (s *Store) Save(ctx context.Context, b *clientbook.AddressBook) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			sqlTx.Rollback()
		}
	}()

	for _, table := range []string{"transactions", "persons"} {
		if _, err := sqlTx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, p := range b.Persons() {
		_, err := sqlTx.ExecContext(ctx,
			`INSERT INTO persons (position, name, phone, email, address, remark, membership, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.Name, p.Phone, p.Email, p.Address, p.Remark, string(p.Membership), strings.Join(p.Tags, ","))
		if err != nil {
			return fmt.Errorf("insert person %q: %w", p.Name, err)
		}
	}
	for i, tx := range b.Transactions() {
		_, err := sqlTx.ExecContext(ctx,
			`INSERT INTO transactions (position, id, owner, description, date, paid, currency, amount)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, tx.ID, tx.Owner, tx.Description, tx.Date.String(), tx.Paid, tx.Amount.Currency(), tx.Amount.Value().String())
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", tx.ID, err)
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	slog.DebugContext(ctx, "address book saved to SQLite",
		"path", s.path,
		"persons", len(b.Persons()),
		"transactions", len(b.Transactions()))
	return nil
}

// splitTags is the inverse of strings.Join(tags, ",").
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
