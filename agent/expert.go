package agent

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Expert represent a chat with a Gemini model, configured for a given job.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Tools     Tools // answer the function calls of the model
	chat      *genai.Chat
}

// Start creates the chat session. Ask calls it if needed.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("could not start chat with %s: %w", e.ModelName, err)
	}
	e.chat = chat
	return nil
}

// Started reports whether the chat session exists.
func (e *Expert) Started() bool { return e.chat != nil }

// Ask sends parts to the expert and returns its answer.
//
// Function calls made by the model are answered by the Tools, until the
// model replies with content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if len(e.Tools) == 0 {
			return nil, fmt.Errorf("%s doesn't know how to make function calls", e.Name)
		}
		slog.DebugContext(ctx, "function call", "expert", e.Name, "function", part0.FunctionCall.Name)
		fresp := e.Tools.Answer(ctx, part0.FunctionCall)
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}
