package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/clientbook/agent"
	"github.com/etnz/clientbook/logic"
	"github.com/etnz/clientbook/renderer"
	"github.com/etnz/clientbook/storage"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// EnvGeminiKey holds the API key of the Gemini client.
const EnvGeminiKey = "GEMINI_API_KEY"

type assistCmd struct {
	run   bool
	model string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "turn a request in plain words into a command"
}
func (*assistCmd) Usage() string {
	return `cb assist [-run] [-model <name>] [<request>...]

  Asks Gemini to translate a request into a cb command, and prints it.
  With -run, the command is also executed like 'cb do' would.
  Without a request, starts an interactive session; type 'bye' to leave.

  The Gemini API key is read from $` + EnvGeminiKey + `, possibly set in a .env file.

Usage Examples:
$ cb assist add Jane Roe, 91234567, jane@example.com, living at 5 Main Road
$ cb assist -run mark the first transaction of Amy as paid
`
}

func (p *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.run, "run", false, "execute the proposed commands")
	f.StringVar(&p.model, "model", agent.DefaultModel, "Gemini model used to translate the requests")
}

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if os.Getenv(EnvGeminiKey) == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		fmt.Fprintf(stderr, "Error: $%s is not set\n", EnvGeminiKey)
		return subcommands.ExitFailure
	}

	c, closeStore, err := openCoordinator(ctx, storage.NewFileSlot(BookFile()))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	translator, err := agent.NewTranslator(c.Model(), p.model)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		request := strings.Join(f.Args(), " ")
		line, err := agent.Translate(ctx, client, translator, request)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, line)
		if !p.run {
			return subcommands.ExitSuccess
		}
		if _, err := execute(ctx, c, line); err != nil {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var executor agent.Executor
	if p.run {
		executor = viewExecutor(c)
	}
	a := agent.New(stdout, stdin, translator, executor)
	if err := a.Run(ctx, client); err != nil {
		fmt.Fprintln(stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// viewExecutor executes command lines on c and returns the rendered view.
func viewExecutor(c *logic.Coordinator) agent.Executor {
	return func(ctx context.Context, line string) (string, error) {
		res, err := c.Execute(ctx, line)
		if err != nil {
			return "", err
		}
		return renderer.RenderView(renderer.NewView(res.Feedback, c.Model())), nil
	}
}
