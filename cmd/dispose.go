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

// disposeCmd holds the flags for the 'dispose' subcommand.
type disposeCmd struct {
	date     string
	asset    string
	amount   string
	price    string
	currency string
	memo     string
}

func (*disposeCmd) Name() string     { return "dispose" }
func (*disposeCmd) Synopsis() string { return "record a disposal, consuming lots newest first" }
func (*disposeCmd) Usage() string {
	return `cbs dispose -a <asset> -q <quantity> [-p <unit-proceeds> -c <currency>] [-d <date>] [-m <memo>]

  Records the disposal of a quantity of an asset. The quantity is matched
  against the open lots, most recent acquisition first, and the consumed
  lots are displayed with their cost basis.

  A disposal larger than the held quantity is refused: nothing is written
  to the transaction file.

Usage Examples:
# Sell a quarter bitcoin at $65,000 per unit.
$ cbs dispose -a BTC -q 0.25 -p 65000 -c USD

`
}

func (c *disposeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the disposal. Defaults to now.")
	f.StringVar(&c.asset, "a", "", "Asset identifier, e.g. BTC.")
	f.StringVar(&c.amount, "q", "", "Quantity disposed of, a positive decimal.")
	f.StringVar(&c.price, "p", "", "Exact unit proceeds, a decimal.")
	f.StringVar(&c.currency, "c", "", "ISO 4217 currency of the unit proceeds.")
	f.StringVar(&c.memo, "m", "", "Optional memo.")
}

func (c *disposeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := parseTransaction(c.date, c.asset, c.amount, c.price, c.currency, c.memo, true)
	if status != subcommands.ExitSuccess {
		return status
	}

	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// replay the whole history with the new disposal: it is appended to the
	// file only if every lot it needs exists.
	disposals, err := costbasis.NewBook().Replay(append(txs, tx))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: disposal is not applicable: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := appendTransaction(tx); status != subcommands.ExitSuccess {
		return status
	}

	// display the matching of the recorded disposal.
	for i := range disposals {
		if disposals[i].Tx.Equal(tx) {
			printMarkdown(renderer.DisposalMarkdown(&disposals[i]))
			break
		}
	}
	return subcommands.ExitSuccess
}
