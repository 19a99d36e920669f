package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/costbasis/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete() exits the
// process when invoked by the shell, and is a no-op otherwise.
func completion() {
	files := predict.Files("*.jsonl")
	tx := map[string]complete.Predictor{
		"a": predict.Nothing,
		"q": predict.Nothing,
		"p": predict.Nothing,
		"c": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		"d": predict.Nothing,
		"m": predict.Nothing,
	}
	cbs := &complete.Command{
		Sub: map[string]*complete.Command{
			"acquire":  {Flags: tx},
			"dispose":  {Flags: tx},
			"holdings": {Flags: map[string]complete.Predictor{"a": predict.Nothing, "json": predict.Nothing}},
			"gains":    {Flags: map[string]complete.Predictor{"s": predict.Nothing, "d": predict.Nothing}},
			"fmt":      {},
			"topic":    {Args: predict.Set{"readme", "lifo", "transactions", "*"}},
			"assist":   {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
		},
	}
	cbs.Complete("cbs")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
