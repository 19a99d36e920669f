package costbasis

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts and prices are numbers in the data file, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTransactions reads a transaction history in JSONL format: one
// transaction object per line, blank lines ignored.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var tx Transaction
		if err := tx.UnmarshalJSON([]byte(text)); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransaction writes a single transaction as one canonical JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := tx.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeTransactions writes a transaction history in canonical JSONL form:
// sorted by date (ties keep input order), one line per transaction.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })
	for _, tx := range ordered {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
