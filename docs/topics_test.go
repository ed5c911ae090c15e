package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/clientbook/parser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error(`GetTopic("nope") want error, got nil`)
	}
	all, err := GetTopic(All)
	if err != nil {
		t.Fatal(err)
	}
	undo, err := GetTopic("undo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(all, undo) {
		t.Error("GetTopic(All) does not contain the undo topic")
	}
}

// headings returns the text of the headings of level in a markdown file.
func headings(t *testing.T, file string, level int) []string {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var titles []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == level {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(content))
			}
			titles = append(titles, strings.TrimSpace(b.String()))
		}
		return ast.WalkContinue, nil
	})
	return titles
}

func TestTitles(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		if titles := headings(t, file, 1); len(titles) != 1 {
			t.Errorf("%s has %d titles, want exactly 1", file, len(titles))
		}
	}
}

func TestCommandsDocumented(t *testing.T) {
	documented := headings(t, "commands.md", 2)
	for _, word := range parser.Words() {
		if !slices.Contains(documented, word) {
			t.Errorf("command %q is not documented in commands.md", word)
		}
	}
	for _, word := range documented {
		if parser.Usage(word) == "" {
			t.Errorf("commands.md documents %q which is not a command", word)
		}
	}
}
