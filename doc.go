// Package clientbook provides the types to manage a local book of clients and
// the financial transactions attached to them.
//
// The core functionalities include:
//   - Persons: clients identified by their name, with contact details, an
//     optional remark, an optional membership tier and a set of tags.
//   - Transactions: amounts owed by a person, with a description, a date and a
//     paid/unpaid status.
//   - AddressBook: the aggregate holding persons and transactions in insertion
//     order, enforcing unique person identities and transaction ownership.
//   - Model: an AddressBook plus the predicates selecting what is currently
//     displayed. Commands address persons and transactions by their 1-based
//     position in these filtered views.
//   - Data Persistence: encoding and decoding an AddressBook to and from a
//     human-readable JSONL stream.
//
// This package serves as the foundational logic for the `cb` command-line
// tool. Parsing, command execution and undo live in the parser, command and
// logic packages.
package clientbook
