package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the address book in canonical form"
}
func (*fmtCmd) Usage() string {
	return `cb fmt [-o <book>]

  Reads the address book, validates it and writes it back in canonical form.
  With -o, the book is written to another file instead, which converts
  between the JSONL and SQLite formats.

Usage Examples:
# Rewrites the default address book in place.
$ cb fmt

# Copies a JSONL book into a SQLite database.
$ cb -book clientbook.jsonl fmt -o clientbook.db
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "write the book to this file instead of in place")
}

func (p *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, err := openStore(BookFile())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer src.Close()

	b, err := src.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load address book: %v\n", err)
		return subcommands.ExitFailure
	}

	dst := src
	if p.outputFile != "" && p.outputFile != BookFile() {
		dst, err = openStore(p.outputFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer dst.Close()
	}

	if err := dst.Save(ctx, b); err != nil {
		fmt.Fprintf(stderr, "Error: could not save address book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Formatted %d persons and %d transactions into %v.\n", len(b.Persons()), len(b.Transactions()), dst)
	return subcommands.ExitSuccess
}
