package agent

import (
	"context"
	"maps"
	"slices"

	"github.com/etnz/clientbook"
	"github.com/etnz/clientbook/renderer"
	"google.golang.org/genai"
)

// Tool is a function the model can call.
type Tool interface {
	Declaration() *genai.FunctionDeclaration
	// Call returns the response fields sent back to the model.
	Call(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Tools are the tools of an Expert, by function name.
type Tools map[string]Tool

// NewTools indexes tools by the name they declare.
func NewTools(tools ...Tool) Tools {
	ts := make(Tools, len(tools))
	for _, t := range tools {
		ts[t.Declaration().Name] = t
	}
	return ts
}

// Declarations returns the function declarations, sorted by name.
func (ts Tools) Declarations() []*genai.FunctionDeclaration {
	var decls []*genai.FunctionDeclaration
	for _, name := range slices.Sorted(maps.Keys(ts)) {
		decls = append(decls, ts[name].Declaration())
	}
	return decls
}

// Answer runs the tool called by the model. Unknown functions and failures
// are reported to the model as an "error" field.
func (ts Tools) Answer(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
	t, ok := ts[call.Name]
	if !ok {
		resp.Response = map[string]any{"error": "unknown function " + call.Name}
		return resp
	}
	out, err := t.Call(ctx, call.Args)
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = out
	return resp
}

// BookTool shows the lists currently displayed to the user, so that the model
// can resolve indexes.
type BookTool struct {
	Model *clientbook.Model
}

func (BookTool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: "show_address_book",
		Description: "Returns the persons and transactions lists as displayed to the user, in markdown. " +
			"Commands refer to persons and transactions by their index (#) in these lists.",
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
	}
}

func (t BookTool) Call(context.Context, map[string]any) (map[string]any, error) {
	return map[string]any{"output": renderer.RenderView(renderer.NewView("", t.Model))}, nil
}
