package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/clientbook/storage"
	"github.com/google/subcommands"
)

type doCmd struct{}

func (*doCmd) Name() string     { return "do" }
func (*doCmd) Synopsis() string { return "execute one command on the address book" }
func (*doCmd) Usage() string {
	return `cb do <command> [arguments...]

  Executes a single command, saves the address book and prints it.
  The previous state is kept next to the book so that 'cb undo' can restore it.

  Run 'cb topic commands' for the list of commands.

Usage Examples:
$ cb do add n/Jane Roe p/91234567 e/jane@example.com a/5 Main Road m/Gold
$ cb do addtx 1 d/Haircut amt/25.50 dt/2024-03-01
$ cb do pay 1
`
}

func (*doCmd) SetFlags(f *flag.FlagSet) {}

func (*doCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: missing command, run 'cb topic commands' for the list")
		return subcommands.ExitUsageError
	}
	line := strings.Join(f.Args(), " ")

	c, closeStore, err := openCoordinator(ctx, storage.NewFileSlot(BookFile()))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if _, err := execute(ctx, c, line); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
