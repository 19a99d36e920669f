package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/costbasis"
	"github.com/etnz/costbasis/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	asset    string
	jsonLots bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display open lots and positions" }
func (*holdingsCmd) Usage() string {
	return `cbs holdings [-a <asset>] [-json]

  Replays the transaction history and displays the open lots of every asset,
  with their acquisition date, remaining quantity, exact unit cost and cost
  basis.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Only display the lots of this asset.")
	f.BoolVar(&c.jsonLots, "json", false, "Emit the open lots as JSONL instead of markdown.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	book := costbasis.NewBook()
	if _, err := book.Replay(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying history: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asset != "" {
		if !slices.Contains(slices.Collect(book.Assets()), c.asset) {
			fmt.Fprintf(os.Stderr, "Error: no transactions for asset %q\n", c.asset)
			return subcommands.ExitFailure
		}
		filtered := costbasis.NewBook()
		l := filtered.Ledger(c.asset)
		for lot := range book.Ledger(c.asset).Lots() {
			acq := costbasis.NewAcquisition(lot.Date, "", c.asset, lot.Amount, lot.UnitCost)
			if err := l.Acquire(acq); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		book = filtered
	}

	if c.jsonLots {
		enc := json.NewEncoder(os.Stdout)
		for asset := range book.Assets() {
			for lot := range book.Ledger(asset).Lots() {
				if err := enc.Encode(lot); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return subcommands.ExitFailure
				}
			}
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HoldingsMarkdown(book))
	return subcommands.ExitSuccess
}
