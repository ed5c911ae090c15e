// Package cmd implements the CLI application to manage an address book.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/clientbook/logging"
	"github.com/etnz/clientbook/logic"
	"github.com/etnz/clientbook/parser"
	"github.com/etnz/clientbook/renderer"
	"github.com/etnz/clientbook/storage"
	"github.com/etnz/clientbook/storage/sqlite"
	"github.com/google/subcommands"
)

// Environment variables used as default values for the global flags.
const (
	EnvBook     = "CB_BOOK"
	EnvCurrency = "CB_CURRENCY"
	EnvLogLevel = "CB_LOG_LEVEL"
	EnvVerbose  = "CB_VERBOSE"
	EnvPlain    = "CB_PLAIN"
)

// DefaultBook is the address book used when neither -book nor CB_BOOK is set.
const DefaultBook = "clientbook.jsonl"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&doCmd{}, "address book")
	c.Register(&shellCmd{}, "address book")
	c.Register(&listCmd{}, "address book")
	c.Register(&undoCmd{}, "address book")
	c.Register(&fmtCmd{}, "address book")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bookFile = flag.String("book", "", "Path to the address book: a .jsonl file, or a .db/.sqlite SQLite database. Defaults to $"+EnvBook+" or "+DefaultBook)
	currency = flag.String("currency", "", "Currency of the transaction amounts. Defaults to $"+EnvCurrency+" or EUR")
	Verbose  = flag.Bool("v", false, "Log debug messages. Defaults to $"+EnvVerbose)
	plain    = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal. Defaults to $"+EnvPlain)
)

// where commands read and write, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// BookFile returns the path to the address book.
func BookFile() string {
	switch {
	case *bookFile != "":
		return *bookFile
	case os.Getenv(EnvBook) != "":
		return os.Getenv(EnvBook)
	default:
		return DefaultBook
	}
}

// Currency returns the currency of new transactions.
func Currency() string {
	if *currency != "" {
		return strings.ToUpper(*currency)
	}
	return strings.ToUpper(os.Getenv(EnvCurrency))
}

// LogLevel returns the log level from -v or the environment.
func LogLevel() (slog.Level, error) {
	if *Verbose || envBool(EnvVerbose) {
		return slog.LevelDebug, nil
	}
	return logging.ParseLevel(os.Getenv(EnvLogLevel))
}

func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// store is a logic.Store that can be closed.
type store interface {
	logic.Store
	Close() error
}

// fileStore adapts storage.File, which holds no resource.
type fileStore struct{ *storage.File }

func (fileStore) Close() error { return nil }

// openStore opens the store at path, choosing SQLite or JSONL from the extension.
func openStore(path string) (store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return fileStore{storage.NewFile(path)}, nil
	}
}

// openCoordinator opens the address book with the given undo slot. The
// returned function closes the underlying store.
func openCoordinator(ctx context.Context, slot logic.Slot) (*logic.Coordinator, func() error, error) {
	s, err := openStore(BookFile())
	if err != nil {
		return nil, nil, err
	}
	p := parser.Parser{Currency: Currency()}
	c, err := logic.Open(ctx, s, slot, p)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return c, s.Close, nil
}

// execute runs a command line on c and prints the result. It reports whether
// the user asked to exit.
func execute(ctx context.Context, c *logic.Coordinator, line string) (exit bool, err error) {
	res, err := c.Execute(ctx, line)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return false, err
	}
	if res.ShowHelp {
		printTopic("commands")
	}
	printMarkdown(renderer.RenderView(renderer.NewView(res.Feedback, c.Model())))
	return res.Exit, nil
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *plain || envBool(EnvPlain) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		slog.Warn("cannot render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("cannot render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
