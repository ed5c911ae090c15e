// Package parser turns command lines into commands.
//
// A command line starts with a command word followed by its arguments. Most
// arguments are introduced by a prefix like "n/" for the name:
//
//	add n/Amy Bee p/12345678 e/amy@example.com a/Amy Street 1 t/friend
//
// Parsing has no side effect: the resulting command.Command is executed later.
package parser

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/command"
	"github.com/etnz/clientbook/date"
)

var (
	// ErrParse is the root of all parsing errors.
	ErrParse = errors.New("invalid command format")
	// ErrUnknownCommand is returned for an unrecognized command word.
	ErrUnknownCommand = errors.New("unknown command")
)

// Error is a parsing error for a given command word.
type Error struct {
	Word  string // the command word, possibly unknown
	Usage string // how to use the command, empty for unknown commands
	Err   error
}

func (e *Error) Error() string {
	if e.Usage == "" {
		return fmt.Sprintf("%v: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%v: %v\n%s", ErrParse, e.Err, e.Usage)
}

// Unwrap makes both ErrParse and the underlying error reachable with errors.Is.
func (e *Error) Unwrap() []error { return []error{ErrParse, e.Err} }

// Parser parses command lines.
type Parser struct {
	// Currency of the amounts in addtx. Defaults to clientbook.DefaultCurrency.
	Currency string
}

type subParser func(p Parser, args string) (command.Command, error)

type commandSpec struct {
	usage string
	parse subParser
}

var commands = map[string]commandSpec{
	"add": {
		usage: "add: Adds a person to the address book.\n" +
			"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [r/REMARK] [m/MEMBERSHIP] [t/TAG]...\n" +
			"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 m/gold t/friends t/owesMoney",
		parse: Parser.parseAdd,
	},
	"edit": {
		usage: "edit: Edits the person identified by the index number used in the displayed person list.\n" +
			"Existing values will be overwritten by the input values. Empty r/, m/ or t/ clear the field.\n" +
			"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [r/REMARK] [m/MEMBERSHIP] [t/TAG]...\n" +
			"Example: edit 1 p/91234567 e/johndoe@example.com",
		parse: Parser.parseEdit,
	},
	"delete": {
		usage: "delete: Deletes the person identified by the index number used in the displayed person list, and its transactions.\n" +
			"Parameters: INDEX\n" +
			"Example: delete 1",
		parse: indexCommand(func(i command.Index) command.Command { return command.Delete{Index: i} }),
	},
	"addtx": {
		usage: "addtx: Adds a transaction to the person identified by the index number used in the displayed person list.\n" +
			"Parameters: INDEX d/DESCRIPTION amt/AMOUNT [dt/DATE]\n" +
			"Example: addtx 1 d/haircut amt/25.50 dt/2025-01-10",
		parse: Parser.parseAddTransaction,
	},
	"deletetx": {
		usage: "deletetx: Deletes the transaction identified by the index number used in the displayed transaction list.\n" +
			"Parameters: INDEX\n" +
			"Example: deletetx 1",
		parse: indexCommand(func(i command.Index) command.Command { return command.DeleteTransaction{Index: i} }),
	},
	"pay": {
		usage: "pay: Marks as paid the transaction identified by the index number used in the displayed transaction list.\n" +
			"Parameters: INDEX\n" +
			"Example: pay 1",
		parse: indexCommand(func(i command.Index) command.Command { return command.Pay{Index: i} }),
	},
	"unpay": {
		usage: "unpay: Marks as unpaid the transaction identified by the index number used in the displayed transaction list.\n" +
			"Parameters: INDEX\n" +
			"Example: unpay 1",
		parse: indexCommand(func(i command.Index) command.Command { return command.Unpay{Index: i} }),
	},
	"showtx": {
		usage: "showtx: Lists the transactions of the person identified by the index number used in the displayed person list.\n" +
			"Parameters: INDEX\n" +
			"Example: showtx 1",
		parse: indexCommand(func(i command.Index) command.Command { return command.ShowTransactions{Index: i} }),
	},
	"find": {
		usage: "find: Finds all persons whose names contain any of the keywords (case-insensitive), or with a given membership.\n" +
			"Parameters: KEYWORD [MORE_KEYWORDS]... or m/MEMBERSHIP or m/ALL\n" +
			"Example: find alice bob charlie",
		parse: Parser.parseFind,
	},
	"clear": {usage: "clear: Clears the address book.", parse: noArgs(command.Clear{})},
	"list":  {usage: "list: Lists all persons and transactions.", parse: noArgs(command.List{})},
	"undo":  {usage: "undo: Undoes the last modification of the address book.", parse: noArgs(command.Undo{})},
	"help":  {usage: "help: Shows program usage instructions.", parse: noArgs(command.Help{})},
	"exit":  {usage: "exit: Exits the program.", parse: noArgs(command.Exit{})},
}

// Words returns the known command words, sorted.
func Words() []string {
	words := make([]string, 0, len(commands))
	for w := range commands {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Usage returns the usage of the command word, or "" if it is unknown.
func Usage(word string) string { return commands[word].usage }

// Parse parses a command line into a command.
func (p Parser) Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	word, args := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		word, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	spec, ok := commands[word]
	if !ok {
		return nil, &Error{Word: word, Err: fmt.Errorf("%w %q", ErrUnknownCommand, word)}
	}
	cmd, err := spec.parse(p, args)
	if err != nil {
		return nil, &Error{Word: word, Usage: spec.usage, Err: err}
	}
	return cmd, nil
}

func (p Parser) currency() string {
	if p.Currency == "" {
		return clientbook.DefaultCurrency
	}
	return p.Currency
}

// parseIndex parses a 1-based index.
func parseIndex(s string) (command.Index, error) {
	if s == "" {
		return 0, errors.New("missing index")
	}
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return 0, fmt.Errorf("index %q should be a positive integer", s)
	}
	return command.Index(i), nil
}

func indexCommand(build func(command.Index) command.Command) subParser {
	return func(_ Parser, args string) (command.Command, error) {
		i, err := parseIndex(args)
		if err != nil {
			return nil, err
		}
		return build(i), nil
	}
}

// noArgs parses commands without arguments. Trailing text is ignored.
func noArgs(c command.Command) subParser {
	return func(Parser, string) (command.Command, error) { return c, nil }
}

// required returns the value of a mandatory prefix.
func required(a arguments, p Prefix) (string, error) {
	v, ok := a.value(p)
	if !ok {
		return "", fmt.Errorf("missing %s argument", p)
	}
	return v, nil
}

func (Parser) parseAdd(args string) (command.Command, error) {
	a := tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRemark, PrefixMembership, PrefixTag)
	if a.preamble != "" {
		return nil, fmt.Errorf("unexpected text %q before the first argument", a.preamble)
	}
	var fields [4]string
	for i, prefix := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress} {
		v, err := required(a, prefix)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	remark, _ := a.value(PrefixRemark)
	tier := clientbook.NoTier
	if v, _ := a.value(PrefixMembership); v != "" {
		t, err := clientbook.ParseTier(v)
		if err != nil {
			return nil, err
		}
		tier = t
	}
	var tags []string
	for _, tag := range a.all(PrefixTag) {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	person := clientbook.NewPerson(fields[0], fields[1], fields[2], fields[3], remark, tier, tags...)
	if err := person.Validate(); err != nil {
		return nil, err
	}
	return command.Add{Person: person}, nil
}

func (Parser) parseEdit(args string) (command.Command, error) {
	a := tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixRemark, PrefixMembership, PrefixTag)
	index, err := parseIndex(a.preamble)
	if err != nil {
		return nil, err
	}
	if !a.any() {
		return nil, errors.New("at least one field to edit must be provided")
	}

	var edit command.PersonEdit
	validated := []struct {
		prefix   Prefix
		dst      **string
		validate func(string) error
	}{
		{PrefixName, &edit.Name, clientbook.ValidateName},
		{PrefixPhone, &edit.Phone, clientbook.ValidatePhone},
		{PrefixEmail, &edit.Email, clientbook.ValidateEmail},
		{PrefixAddress, &edit.Address, clientbook.ValidateAddress},
	}
	for _, f := range validated {
		v, ok := a.value(f.prefix)
		if !ok {
			continue
		}
		if err := f.validate(v); err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	if v, ok := a.value(PrefixRemark); ok {
		edit.Remark = &v
	}
	if v, ok := a.value(PrefixMembership); ok {
		tier := clientbook.NoTier
		if v != "" {
			if tier, err = clientbook.ParseTier(v); err != nil {
				return nil, err
			}
		}
		edit.Membership = &tier
	}
	if a.has(PrefixTag) {
		tags := a.all(PrefixTag)
		switch {
		case len(tags) == 1 && tags[0] == "":
			edit.Tags = []string{}
		case slices.Contains(tags, ""):
			return nil, errors.New("an empty t/ clears all tags and cannot be combined with other tags")
		default:
			for _, tag := range tags {
				if err := clientbook.ValidateTag(tag); err != nil {
					return nil, err
				}
			}
			edit.Tags = tags
		}
	}
	return command.Edit{Index: index, Edit: edit}, nil
}

func (p Parser) parseAddTransaction(args string) (command.Command, error) {
	a := tokenize(args, PrefixDescription, PrefixAmount, PrefixDate)
	index, err := parseIndex(a.preamble)
	if err != nil {
		return nil, err
	}
	desc, err := required(a, PrefixDescription)
	if err != nil {
		return nil, err
	}
	if desc == "" {
		return nil, errors.New("description should not be blank")
	}
	amt, err := required(a, PrefixAmount)
	if err != nil {
		return nil, err
	}
	amount, err := clientbook.ParseMoney(amt, p.currency())
	if err != nil {
		return nil, err
	}
	var day date.Date
	if v, _ := a.value(PrefixDate); v != "" {
		if day, err = date.Parse(v); err != nil {
			return nil, err
		}
	}
	return command.AddTransaction{Index: index, Description: desc, Amount: amount, Date: day}, nil
}

func (Parser) parseFind(args string) (command.Command, error) {
	a := tokenize(args, PrefixMembership)
	if !a.has(PrefixMembership) {
		keywords := strings.Fields(a.preamble)
		if len(keywords) == 0 {
			return nil, errors.New("missing keywords")
		}
		return command.Find{Keywords: keywords}, nil
	}
	if a.preamble != "" {
		return nil, errors.New("keywords and membership cannot be combined")
	}
	v, _ := a.value(PrefixMembership)
	if v == command.AllTiers {
		return command.Find{AnyTier: true}, nil
	}
	tier, err := clientbook.ParseTier(v)
	if err != nil {
		return nil, fmt.Errorf("%w, or %s", err, command.AllTiers)
	}
	return command.Find{Tier: tier}, nil
}
