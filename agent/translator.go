package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/docs"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is given.
const DefaultModel = "gemini-2.5-flash"

// ErrNoCommand is returned when the model answer contains no command.
var ErrNoCommand = errors.New("the assistant did not propose a command")

const instructions = `You translate requests about an address book of clients into exactly one command line.

Answer with the command line only, on a single line, without quotes, markdown or explanation.
If the request is ambiguous or cannot be expressed as one command, answer with the single word NONE.

Commands refer to persons and transactions by their index in the lists currently displayed.
Call show_address_book to read these lists before using an index.

The commands are documented below.

`

// NewTranslator returns an Expert translating requests into command lines for
// the book in m.
func NewTranslator(m *clientbook.Model, modelName string) (*Expert, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	reference, err := docs.GetTopic("commands")
	if err != nil {
		return nil, err
	}
	tools := NewTools(BookTool{Model: m})
	var temperature float32
	return &Expert{
		Name:      "Translator",
		ModelName: modelName,
		Config: &genai.GenerateContentConfig{
			Temperature:       &temperature,
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instructions + reference}}},
			Tools:             []*genai.Tool{{FunctionDeclarations: tools.Declarations()}},
		},
		Tools: tools,
	}, nil
}

// Translate asks e for the command line fulfilling request.
func Translate(ctx context.Context, client *genai.Client, e *Expert, request string) (string, error) {
	if !e.Started() {
		if err := e.Start(ctx, client); err != nil {
			return "", err
		}
	}
	content, err := e.Ask(ctx, &genai.Part{Text: request})
	if err != nil {
		return "", fmt.Errorf("assistant failed: %w", err)
	}
	var answer strings.Builder
	for _, p := range content.Parts {
		answer.WriteString(p.Text)
	}
	return ExtractCommand(answer.String())
}

// ExtractCommand returns the command line in a model answer. Code fences,
// quotes and a leading "cb do" are removed.
func ExtractCommand(answer string) (string, error) {
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.Trim(line, "`\"'")
		line = strings.TrimPrefix(line, "$ ")
		line = strings.TrimPrefix(line, "cb do ")
		line = strings.TrimSpace(line)
		if line == "" || line == "NONE" {
			break
		}
		return line, nil
	}
	return "", ErrNoCommand
}
