package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/clientbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

Show documentation for the given topics, or the list of topics.
Use '*' to show all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// printTopic prints a single topic, logging a missing one.
func printTopic(topic string) {
	doc, err := docs.GetTopic(topic)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return
	}
	printMarkdown(doc)
}
