package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the transaction file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `cbs fmt

  Validates and formats the transaction file. This command reads all
  transactions, replays them to validate the history, sorts them by date,
  and writes them back in canonical JSONL form.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(txs) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no transactions to format.")
		return subcommands.ExitSuccess
	}

	// a history that does not replay is not rewritten.
	if _, err := costbasis.NewBook().Replay(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: history is not valid: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeCanonical(*ledgerFile, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transaction file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully formatted %d transactions.\n", len(txs))
	return subcommands.ExitSuccess
}

// writeCanonical writes the transactions to a temporary file next to the
// target and renames it over the original, so a failed write never
// truncates the user's only copy of the history.
func writeCanonical(filename string, txs []costbasis.Transaction) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := costbasis.EncodeTransactions(tmp, txs); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
