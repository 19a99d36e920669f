// Package cmd implements the CLI application to track cost basis lots.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/costbasis"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&acquireCmd{}, "transactions")
	c.Register(&disposeCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the transaction history file (JSONL format)")

// DecodeTransactionsFile reads the app transaction history file. A missing
// file is an empty history.
func DecodeTransactionsFile() ([]costbasis.Transaction, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("warning, transaction file does not exist, starting from an empty history")
			return nil, nil
		}
		return nil, fmt.Errorf("could not open transaction file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	txs, err := costbasis.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction file %q: %w", *ledgerFile, err)
	}
	return txs, nil
}

// appendTransaction appends a single transaction to the app transaction file.
func appendTransaction(tx costbasis.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transaction file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := costbasis.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to transaction file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}
