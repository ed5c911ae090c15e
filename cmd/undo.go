package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/clientbook/renderer"
	"github.com/etnz/clientbook/storage"
	"github.com/google/subcommands"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "restore the address book before the last modification" }
func (*undoCmd) Usage() string {
	return `cb undo

  Restores the address book as it was before the last 'cb do' that modified it.
  Only one level of undo is kept: a second 'cb undo' fails.
`
}

func (*undoCmd) SetFlags(f *flag.FlagSet) {}

func (*undoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, closeStore, err := openCoordinator(ctx, storage.NewFileSlot(BookFile()))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	res, err := c.Undo(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderView(renderer.NewView(res.Feedback, c.Model())))
	return subcommands.ExitSuccess
}
