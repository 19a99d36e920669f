package costbasis

import (
	"fmt"
	"iter"
)

// Lot is a tranche of an asset acquired at one date and one unit cost.
// Lots are the unit of cost basis tracking: a disposal consumes whole or
// partial lots, never averages across them.
type Lot struct {
	Date     Time   // acquisition date
	Amount   Amount // remaining quantity, shrinks as disposals consume it
	UnitCost Price  // exact per-unit acquisition cost
}

// MarshalJSON implements the json.Marshaler interface for Lot.
func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", l.Amount)
	w.EmbedFrom(l.UnitCost)
	w.Append("date", l.Date)
	return w.MarshalJSON()
}

// MatchedLot is the slice of a lot consumed by one disposal. Amount is the
// consumed quantity, which is the whole lot or the part of it the disposal
// needed.
type MatchedLot struct {
	Date     Time   // acquisition date of the consumed lot
	Amount   Amount // quantity consumed from that lot
	UnitCost Price  // the lot's exact per-unit acquisition cost
}

// CostBasis returns the matched quantity priced at the lot's unit cost.
func (m MatchedLot) CostBasis() Price { return m.UnitCost.Mul(m.Amount) }

// Ledger tracks the open lots of a single asset. Lots are kept in
// acquisition order; disposals consume them last-in first-out.
//
// The zero Ledger is not usable, create one with NewLedger.
type Ledger struct {
	asset string
	lots  []Lot
}

// NewLedger returns an empty ledger bound to the given asset identifier.
func NewLedger(asset string) *Ledger {
	return &Ledger{asset: asset}
}

// Asset returns the asset identifier this ledger is bound to.
func (l *Ledger) Asset() string { return l.asset }

// Len returns the number of open lots.
func (l *Ledger) Len() int { return len(l.lots) }

// Position returns the total quantity currently held, the sum of all open
// lot amounts.
func (l *Ledger) Position() Amount {
	var total Amount
	for _, lot := range l.lots {
		total = total.Add(lot.Amount)
	}
	return total
}

// CostBasis returns the total acquisition cost of the open lots.
func (l *Ledger) CostBasis() Price {
	var total Price
	for _, lot := range l.lots {
		total = total.Add(lot.UnitCost.Mul(lot.Amount))
	}
	return total
}

// Lots iterates over the open lots in acquisition order, oldest first.
func (l *Ledger) Lots() iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for _, lot := range l.lots {
			if !yield(lot) {
				return
			}
		}
	}
}

// checkAsset rejects a transaction routed to the wrong ledger.
func (l *Ledger) checkAsset(tx Transaction) error {
	if tx.Asset != l.asset {
		return fmt.Errorf("%w: ledger holds %q, transaction moves %q", ErrAssetMismatch, l.asset, tx.Asset)
	}
	return nil
}

// Acquire appends a new lot for the given acquisition.
//
// The transaction amount must not be negative. A zero amount is accepted and
// records an empty lot: it carries a date and a unit cost but no quantity,
// and the next disposal removes it without producing a matched lot.
func (l *Ledger) Acquire(tx Transaction) error {
	if err := l.checkAsset(tx); err != nil {
		return err
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("%w: got %s in transaction %s", ErrInvalidAcquisitionAmount, tx.Amount, tx)
	}
	l.lots = append(l.lots, Lot{Date: tx.Date, Amount: tx.Amount, UnitCost: tx.Price})
	return nil
}

// Dispose consumes lots for the given disposal, newest acquisition first.
//
// The transaction amount must not be positive; its magnitude is the
// quantity to dispose of. A zero amount succeeds with no matched lots and
// leaves the ledger untouched. The newest lot is consumed first: if it is
// larger than what remains to match, it is shrunk in place, otherwise it is
// removed and the next newest lot is consumed, until the full magnitude is
// matched. An empty lot on top of the stack is removed silently, it never
// appears in the matched lots.
//
// The returned matched lots are ordered newest acquisition first, and their
// amounts sum exactly to the disposal magnitude.
//
// If the lots run out first, Dispose returns an [InsufficientLotsError]
// along with the lots matched so far. The consumed lots stay consumed: the
// caller that wants all-or-nothing behavior must check the position first,
// or replay from a clean ledger.
func (l *Ledger) Dispose(tx Transaction) ([]MatchedLot, error) {
	if err := l.checkAsset(tx); err != nil {
		return nil, err
	}
	if tx.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s in transaction %s", ErrInvalidDisposalAmount, tx.Amount, tx)
	}

	remaining := tx.Amount.Neg()
	var matched []MatchedLot
	for remaining.IsPositive() {
		if len(l.lots) == 0 {
			return matched, &InsufficientLotsError{Tx: tx, Unmatched: remaining}
		}
		newest := &l.lots[len(l.lots)-1]
		if newest.Amount.GreaterThan(remaining) {
			// partial consumption: shrink the newest lot in place, its
			// date and unit cost are untouched.
			matched = append(matched, MatchedLot{Date: newest.Date, Amount: remaining, UnitCost: newest.UnitCost})
			newest.Amount = newest.Amount.Sub(remaining)
			remaining = A(0)
		} else {
			// full consumption: the lot is removed, empty lots vanish
			// here without producing a matched lot.
			if newest.Amount.IsPositive() {
				matched = append(matched, MatchedLot{Date: newest.Date, Amount: newest.Amount, UnitCost: newest.UnitCost})
			}
			remaining = remaining.Sub(newest.Amount)
			l.lots = l.lots[:len(l.lots)-1]
		}
	}
	return matched, nil
}
