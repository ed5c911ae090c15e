package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/clientbook/renderer"
	"github.com/etnz/clientbook/storage"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run commands interactively" }
func (*shellCmd) Usage() string {
	return `cb shell

  Reads commands from the standard input, one per line, until 'exit' or the
  end of the input. The address book is saved after each modification.

  Filters set by 'find' and 'showtx' stay active until 'list', so indexes
  always refer to the last displayed list.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

const shellPrompt = "cb> "

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, closeStore, err := openCoordinator(ctx, &storage.MemorySlot{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	printMarkdown(renderer.RenderView(renderer.NewView("Welcome! Type 'help' for the list of commands.", c.Model())))

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// errors are printed by execute, the session goes on.
		exit, _ := execute(ctx, c, line)
		if exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
