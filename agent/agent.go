// Package agent translates requests in plain words into clientbook commands,
// using Gemini.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Executor runs a command line and returns what to show the user.
type Executor func(ctx context.Context, line string) (string, error)

// Agent is an interactive session translating each request into a command.
type Agent struct {
	w          io.Writer
	r          *bufio.Reader
	Translator *Expert
	// Execute runs the proposed commands. If nil, commands are only printed.
	Execute Executor
}

// New creates a new Agent reading requests from r and writing to w.
func New(w io.Writer, r io.Reader, translator *Expert, execute Executor) *Agent {
	return &Agent{
		w:          w,
		r:          bufio.NewReader(r),
		Translator: translator,
		Execute:    execute,
	}
}

const prompt = "assist> "

// Run handles prompts first, then requests read from the input until "bye"
// or the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				fmt.Fprintln(a.w)
				return nil
			}
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(input)
		}

		switch input {
		case "":
			continue
		case "bye":
			return nil
		}
		if err := a.handle(ctx, client, input); err != nil {
			return err
		}
	}
}

// handle translates and runs one request. Only failures to talk to the model
// are returned: a command error is reported and the session goes on.
func (a *Agent) handle(ctx context.Context, client *genai.Client, request string) error {
	line, err := Translate(ctx, client, a.Translator, request)
	if errors.Is(err, ErrNoCommand) {
		fmt.Fprintln(a.w, "Sorry, I could not turn that into a command.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.w, line)
	if a.Execute == nil {
		return nil
	}
	out, err := a.Execute(ctx, line)
	if err != nil {
		fmt.Fprintf(a.w, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.w, out)
	return nil
}
