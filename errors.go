package costbasis

import (
	"errors"
	"fmt"
)

// The matching engine fails in exactly four ways. The first three are pure
// validation failures, detected before any mutation. InsufficientLots is
// different: it can surface after the disposal loop has already consumed
// lots, see [Ledger.Dispose].
var (
	// ErrAssetMismatch reports a transaction routed to a ledger bound to a
	// different asset identifier.
	ErrAssetMismatch = errors.New("asset mismatch")

	// ErrInvalidAcquisitionAmount reports an acquisition with a negative amount.
	ErrInvalidAcquisitionAmount = errors.New("invalid acquisition amount")

	// ErrInvalidDisposalAmount reports a disposal with a positive amount.
	ErrInvalidDisposalAmount = errors.New("invalid disposal amount")

	// ErrInsufficientLots reports a disposal larger than the tracked basis.
	ErrInsufficientLots = errors.New("insufficient lots")
)

// InsufficientLotsError is returned by [Ledger.Dispose] when the lot stack
// runs out before the disposal is fully matched. It carries the offending
// transaction, rendered canonically, and the quantity left unmatched.
//
// It matches ErrInsufficientLots with errors.Is.
type InsufficientLotsError struct {
	Tx        Transaction // the disposal that could not be fully matched
	Unmatched Amount      // quantity still unmatched when the lots ran out
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("insufficient lots: %s of %s unmatched for transaction %s",
		e.Unmatched, e.Tx.Asset, e.Tx)
}

func (e *InsufficientLotsError) Is(target error) bool {
	return target == ErrInsufficientLots
}
