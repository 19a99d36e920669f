package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

// acquireCmd holds the flags for the 'acquire' subcommand.
type acquireCmd struct {
	date     string
	asset    string
	amount   string
	price    string
	currency string
	memo     string
}

func (*acquireCmd) Name() string     { return "acquire" }
func (*acquireCmd) Synopsis() string { return "record an acquisition, opening a new lot" }
func (*acquireCmd) Usage() string {
	return `cbs acquire -a <asset> -q <quantity> [-p <unit-price> -c <currency>] [-d <date>] [-m <memo>]

  Records the acquisition of a quantity of an asset at an exact unit price.
  The acquisition opens a new lot that later disposals consume last-in
  first-out.

Usage Examples:
# Buy half a bitcoin at $60,000 per unit.
$ cbs acquire -a BTC -q 0.5 -p 60000 -c USD

`
}

func (c *acquireCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the acquisition. Defaults to now.")
	f.StringVar(&c.asset, "a", "", "Asset identifier, e.g. BTC.")
	f.StringVar(&c.amount, "q", "", "Quantity acquired, a positive decimal.")
	f.StringVar(&c.price, "p", "", "Exact unit price paid, a decimal.")
	f.StringVar(&c.currency, "c", "", "ISO 4217 currency of the unit price.")
	f.StringVar(&c.memo, "m", "", "Optional memo.")
}

func (c *acquireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := parseTransaction(c.date, c.asset, c.amount, c.price, c.currency, c.memo, false)
	if status != subcommands.ExitSuccess {
		return status
	}

	// replay the whole history with the new transaction to catch errors
	// before they reach the file.
	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := costbasis.NewBook().Replay(append(txs, tx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: transaction is not applicable: %v\n", err)
		return subcommands.ExitFailure
	}

	return appendTransaction(tx)
}

// parseTransaction builds and validates a transaction from the common
// acquire/dispose flag values.
func parseTransaction(date, asset, amount, price, currency, memo string, disposal bool) (costbasis.Transaction, subcommands.ExitStatus) {
	var zero costbasis.Transaction

	if asset == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <asset> is required")
		return zero, subcommands.ExitUsageError
	}
	if amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -q <quantity> is required")
		return zero, subcommands.ExitUsageError
	}
	q, err := costbasis.ParseAmount(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return zero, subcommands.ExitUsageError
	}

	var p costbasis.Price
	if price != "" {
		p, err = costbasis.ParsePrice(price, currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return zero, subcommands.ExitUsageError
		}
	}

	var on costbasis.Time
	if date != "" {
		on, err = costbasis.ParseTime(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return zero, subcommands.ExitUsageError
		}
	}

	var tx costbasis.Transaction
	if disposal {
		tx = costbasis.NewDisposal(on, memo, asset, q, p)
	} else {
		tx = costbasis.NewAcquisition(on, memo, asset, q, p)
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return zero, subcommands.ExitUsageError
	}
	return tx, subcommands.ExitSuccess
}
