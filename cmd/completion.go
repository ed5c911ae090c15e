package cmd

import (
	"github.com/etnz/clientbook/docs"
	"github.com/etnz/clientbook/parser"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var books = predict.Files("*")

// Completion describes the command line of cb for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"book":     books,
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "SGD", "JPY"},
			"v":        predict.Nothing,
			"plain":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"do":    {Args: predict.Set(parser.Words())},
			"shell": {},
			"list": {Flags: map[string]complete.Predictor{
				"tx":   predict.Nothing,
				"find": predict.Something,
			}},
			"undo": {},
			"fmt": {Flags: map[string]complete.Predictor{
				"o": books,
			}},
			"assist": {Flags: map[string]complete.Predictor{
				"run":   predict.Nothing,
				"model": predict.Something,
			}},
			"topic":    {Args: predict.Set(append(topics, "readme"))},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
