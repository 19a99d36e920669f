package costbasis

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Book routes transactions to one ledger per asset and replays histories in
// chronological order.
type Book struct {
	ledgers map[string]*Ledger
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{ledgers: make(map[string]*Ledger)}
}

// Ledger returns the ledger for the given asset, creating an empty one on
// first use.
func (b *Book) Ledger(asset string) *Ledger {
	l, ok := b.ledgers[asset]
	if !ok {
		l = NewLedger(asset)
		b.ledgers[asset] = l
	}
	return l
}

// Assets iterates over the asset identifiers in the book, sorted.
func (b *Book) Assets() iter.Seq[string] {
	assets := make([]string, 0, len(b.ledgers))
	for asset := range b.ledgers {
		assets = append(assets, asset)
	}
	slices.Sort(assets)
	return slices.Values(assets)
}

// Disposal is the outcome of one disposal transaction: the lots it consumed
// and the money figures derived from them.
type Disposal struct {
	Tx      Transaction  // the disposal transaction
	Matched []MatchedLot // consumed lots, newest acquisition first
	Basis   Price        // sum of matched cost bases
	Net     Price        // proceeds: disposed quantity at the transaction's unit price
	Gain    Price        // Net minus Basis
}

// Apply routes a single transaction to its asset's ledger. For a disposal it
// returns the resulting [Disposal] report, for an acquisition it returns nil.
func (b *Book) Apply(tx Transaction) (*Disposal, error) {
	l := b.Ledger(tx.Asset)
	if !tx.IsDisposal() {
		return nil, l.Acquire(tx)
	}
	matched, err := l.Dispose(tx)
	if err != nil {
		return nil, err
	}
	var basis Price
	for _, m := range matched {
		basis = basis.Add(m.CostBasis())
	}
	net := tx.Price.Mul(tx.Magnitude())
	return &Disposal{
		Tx:      tx,
		Matched: matched,
		Basis:   basis,
		Net:     net,
		Gain:    net.Sub(basis),
	}, nil
}

// Replay applies a full transaction history in chronological order and
// returns the disposal reports in that order.
//
// The input slice is not modified; ties on the date keep their relative
// input order. Replay halts on the first failing transaction and returns
// the disposals completed before it.
func (b *Book) Replay(txs []Transaction) ([]Disposal, error) {
	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	var disposals []Disposal
	for _, tx := range ordered {
		d, err := b.Apply(tx)
		if err != nil {
			return disposals, fmt.Errorf("replay failed on %s: %w", tx.Date, err)
		}
		if d != nil {
			disposals = append(disposals, *d)
		}
	}
	return disposals, nil
}
