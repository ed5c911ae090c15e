package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/clientbook/renderer"
	"github.com/etnz/clientbook/storage"
	"github.com/google/subcommands"
)

type listCmd struct {
	transactions bool
	find         string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the persons or transactions of the address book" }
func (*listCmd) Usage() string {
	return `cb list [-tx] [-find <keywords>]

  Prints the persons of the address book, or all the transactions with -tx.
  The book is not modified.

Usage Examples:
$ cb list
$ cb list -find "amy m/Gold"
$ cb list -tx
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.transactions, "tx", false, "list the transactions instead of the persons")
	f.StringVar(&p.find, "find", "", "only list persons matching the arguments of the find command")
}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, closeStore, err := openCoordinator(ctx, &storage.MemorySlot{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if p.find != "" {
		if _, err := c.Execute(ctx, "find "+p.find); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	v := renderer.NewView("", c.Model())
	if p.transactions {
		printMarkdown(renderer.RenderTransactions(v))
	} else {
		printMarkdown(renderer.RenderPersons(v))
	}
	return subcommands.ExitSuccess
}
