package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	start string
	end   string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains analysis" }
func (*gainsCmd) Usage() string {
	return `cbs gains [-s <date>] [-d <date>]

  Replays the transaction history and displays the realized gains per asset:
  disposed quantity, consumed cost basis, proceeds and gain. Disposals are
  filtered to the [-s, -d] date range when given.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Only report disposals on or after this date.")
	f.StringVar(&c.end, "d", "", "Only report disposals on or before this date.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	disposals, err := costbasis.NewBook().Replay(txs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying history: %v\n", err)
		return subcommands.ExitFailure
	}

	disposals, status := filterRange(disposals, c.start, c.end)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.GainsMarkdown(costbasis.NewGainsReport(disposals)))
	return subcommands.ExitSuccess
}

// filterRange keeps the disposals within the [start, end] date range. Empty
// bounds are open.
func filterRange(disposals []costbasis.Disposal, start, end string) ([]costbasis.Disposal, subcommands.ExitStatus) {
	if start == "" && end == "" {
		return disposals, subcommands.ExitSuccess
	}
	var from, to costbasis.Time
	var err error
	if start != "" {
		if from, err = costbasis.ParseTime(start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
	}
	if end != "" {
		if to, err = costbasis.ParseTime(end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
	}
	var kept []costbasis.Disposal
	for _, d := range disposals {
		if !from.IsZero() && d.Tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && d.Tx.Date.After(to) {
			continue
		}
		kept = append(kept, d)
	}
	return kept, subcommands.ExitSuccess
}
