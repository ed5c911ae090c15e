package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/command"
	"github.com/etnz/clientbook/date"
	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestTokenize(t *testing.T) {
	tests := []struct {
		args     string
		preamble string
		values   map[Prefix][]string
	}{
		{
			args:   "n/Amy Bee p/123 t/a t/b",
			values: map[Prefix][]string{PrefixName: {"Amy Bee"}, PrefixPhone: {"123"}, PrefixTag: {"a", "b"}},
		},
		{
			args:     "  1   p/ 999 ",
			preamble: "1",
			values:   map[Prefix][]string{PrefixPhone: {"999"}},
		},
		{
			args:   "a/Block n/a e/x@y.com",
			values: map[Prefix][]string{PrefixAddress: {"Block"}, PrefixName: {"a"}, PrefixEmail: {"x@y.com"}},
		},
		{
			// prefixes glued to a word are part of the value
			args:   "a/Main St/n/Road",
			values: map[Prefix][]string{PrefixAddress: {"Main St/n/Road"}},
		},
		{
			args:     "just text",
			preamble: "just text",
			values:   map[Prefix][]string{},
		},
	}
	for _, tt := range tests {
		got := tokenize(tt.args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
		if got.preamble != tt.preamble {
			t.Errorf("tokenize(%q).preamble = %q, want %q", tt.args, got.preamble, tt.preamble)
		}
		if diff := cmp.Diff(tt.values, got.values); diff != "" {
			t.Errorf("tokenize(%q).values mismatch (-want +got):\n%s", tt.args, diff)
		}
	}
}

func TestParse(t *testing.T) {
	gold := clientbook.Gold
	noTier := clientbook.NoTier
	tests := []struct {
		line string
		want command.Command
	}{
		{
			"add n/Amy Bee p/11111111 e/amy@example.com a/Amy Street 1",
			command.Add{Person: clientbook.NewPerson("Amy Bee", "11111111", "amy@example.com", "Amy Street 1", "", clientbook.NoTier)},
		},
		{
			"add n/Bob p/222 e/bob@example.com a/Bob Street r/likes tea m/GOLD t/friend t/husband t/friend",
			command.Add{Person: clientbook.NewPerson("Bob", "222", "bob@example.com", "Bob Street", "likes tea", clientbook.Gold, "friend", "husband")},
		},
		{
			// last occurrence wins
			"add n/Alice n/Bob p/222 e/bob@example.com a/Street p/333",
			command.Add{Person: clientbook.NewPerson("Bob", "333", "bob@example.com", "Street", "", clientbook.NoTier)},
		},
		{
			// empty optional values are absent
			"add n/Bob p/222 e/bob@example.com a/Street r/ m/ t/",
			command.Add{Person: clientbook.NewPerson("Bob", "222", "bob@example.com", "Street", "", clientbook.NoTier)},
		},
		{"edit 2 p/91234567", command.Edit{Index: 2, Edit: command.PersonEdit{Phone: ptr("91234567")}}},
		{"edit 1 m/gold r/ t/", command.Edit{Index: 1, Edit: command.PersonEdit{Membership: &gold, Remark: ptr(""), Tags: []string{}}}},
		{"edit 1 m/", command.Edit{Index: 1, Edit: command.PersonEdit{Membership: &noTier}}},
		{"edit 3 n/Carl t/a t/b", command.Edit{Index: 3, Edit: command.PersonEdit{Name: ptr("Carl"), Tags: []string{"a", "b"}}}},
		{"delete 3", command.Delete{Index: 3}},
		{"  delete   12  ", command.Delete{Index: 12}},
		{"deletetx 1", command.DeleteTransaction{Index: 1}},
		{"pay 2", command.Pay{Index: 2}},
		{"unpay 2", command.Unpay{Index: 2}},
		{"showtx 4", command.ShowTransactions{Index: 4}},
		{
			"addtx 1 d/haircut amt/25.50 dt/2025-01-10",
			command.AddTransaction{Index: 1, Description: "haircut", Amount: clientbook.M(25.5, "EUR"), Date: date.MustParse("2025-01-10")},
		},
		{
			"addtx 2 amt/3 d/tip",
			command.AddTransaction{Index: 2, Description: "tip", Amount: clientbook.M(3, "EUR")},
		},
		{"find alice  bob", command.Find{Keywords: []string{"alice", "bob"}}},
		{"find m/ALL", command.Find{AnyTier: true}},
		{"find m/Silver", command.Find{Tier: clientbook.Silver}},
		{"list", command.List{}},
		{"list whatever", command.List{}},
		{"clear", command.Clear{}},
		{"undo", command.Undo{}},
		{"help", command.Help{}},
		{"exit", command.Exit{}},
	}
	var p Parser
	for _, tt := range tests {
		got, err := p.Parse(tt.line)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	p := Parser{Currency: "JPY"}
	got, err := p.Parse("addtx 1 d/sushi amt/1200")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if amt := got.(command.AddTransaction).Amount; amt.Currency() != "JPY" {
		t.Errorf("Parse() currency = %q, want JPY", amt.Currency())
	}
	if _, err := p.Parse("addtx 1 d/sushi amt/1200.5"); !errors.Is(err, ErrParse) {
		t.Errorf("Parse() with decimals in JPY error = %v, want ErrParse", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want string // substring of the error
	}{
		{"", "unknown command"},
		{"ADD n/Amy", "unknown command"},
		{"remove 1", "unknown command"},
		{"add p/123 e/a@b.com a/Street", "missing n/"},
		{"add n/Amy e/a@b.com a/Street", "missing p/"},
		{"add n/Amy p/123 a/Street", "missing e/"},
		{"add n/Amy p/123 e/a@b.com", "missing a/"},
		{"add hello n/Amy p/123 e/a@b.com a/Street", "unexpected text"},
		{"add n/ p/123 e/a@b.com a/Street", "names should only contain"},
		{"add n/Amy p/12 e/a@b.com a/Street", "phone numbers"},
		{"add n/Amy p/12a45 e/a@b.com a/Street", "phone numbers"},
		{"add n/Amy p/123 e/a@b a/Street", "at least 2 characters"},
		{"add n/Amy p/123 e/-a@b.com a/Street", "local-part"},
		{"add n/Amy p/123 e/ab.com a/Street", "local-part@domain"},
		{"add n/Amy p/123 e/a@b.com a/", "addresses"},
		{"add n/Amy p/123 e/a@b.com a/Street m/diamond", "unknown membership"},
		{"add n/Amy p/123 e/a@b.com a/Street t/best-friend", "alphanumeric"},
		{"edit 1", "at least one field"},
		{"edit n/Amy", "missing index"},
		{"edit 0 n/Amy", "positive integer"},
		{"edit 1 p/", "phone numbers"},
		{"edit 1 t/a t/", "cannot be combined"},
		{"delete", "missing index"},
		{"delete -1", "positive integer"},
		{"delete one", "positive integer"},
		{"delete 1 2", "positive integer"},
		{"pay x", "positive integer"},
		{"addtx d/x amt/1", "missing index"},
		{"addtx 1 amt/1", "missing d/"},
		{"addtx 1 d/ amt/1", "description"},
		{"addtx 1 d/x", "missing amt/"},
		{"addtx 1 d/x amt/-5", "positive"},
		{"addtx 1 d/x amt/0", "positive"},
		{"addtx 1 d/x amt/ten", "invalid amount"},
		{"addtx 1 d/x amt/1.234", "decimals"},
		{"addtx 1 d/x amt/1 dt/2025-13-01", "invalid date"},
		{"find", "missing keywords"},
		{"find m/", "unknown membership"},
		{"find m/all", "unknown membership"},
		{"find amy m/gold", "cannot be combined"},
	}
	var p Parser
	for _, tt := range tests {
		_, err := p.Parse(tt.line)
		if err == nil {
			t.Errorf("Parse(%q) want error, got nil", tt.line)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error %v does not wrap ErrParse", tt.line, err)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error is %T, want *Error", tt.line, err)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Parse(%q) error = %q, want it to contain %q", tt.line, err, tt.want)
		}
	}
}

func TestParseErrorUsage(t *testing.T) {
	var p Parser
	_, err := p.Parse("delete")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error is %T, want *Error", err)
	}
	if perr.Word != "delete" || perr.Usage != Usage("delete") {
		t.Errorf("Parse() error = %+v, want usage of delete", perr)
	}

	_, err = p.Parse("frobnicate now")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Parse(unknown) error = %v, want ErrUnknownCommand", err)
	}
}

func TestWords(t *testing.T) {
	want := []string{"add", "addtx", "clear", "delete", "deletetx", "edit", "exit", "find", "help", "list", "pay", "showtx", "undo", "unpay"}
	if diff := cmp.Diff(want, Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}
