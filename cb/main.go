// Command cb manages an address book of clients and their transactions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/clientbook/cmd"
	"github.com/etnz/clientbook/logging"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("cb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	level, err := cmd.LogLevel()
	logging.Setup(os.Stderr, level)
	if err != nil {
		slog.Warn("ignoring log level", "error", err)
	}

	if name := flag.Arg(0); name != "" && !isCommand(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isCommand(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
