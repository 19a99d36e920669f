package costbasis

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is a single movement of one asset: an acquisition when the
// amount is positive, a disposal (sale, gift, spend) when it is negative.
//
// The price is the exact unit cost at acquisition time. For disposals the
// matching engine ignores it; the reporting layer reads it as the unit
// proceeds when present.
type Transaction struct {
	Asset  string // asset identifier, e.g. "BTC"
	Amount Amount // signed quantity: positive acquisition, negative disposal
	Price  Price  // unit cost (acquisition) or unit proceeds (disposal)
	Date   Time   // when the movement happened
	Memo   string // optional rationale or note
}

// NewAcquisition creates a transaction that adds quantity to the asset's lots.
func NewAcquisition(on Time, memo, asset string, quantity Amount, unitCost Price) Transaction {
	return Transaction{Asset: asset, Amount: quantity, Price: unitCost, Date: on, Memo: memo}
}

// NewDisposal creates a transaction that removes quantity from the asset's
// lots. The quantity is given as a positive magnitude and stored negated.
func NewDisposal(on Time, memo, asset string, quantity Amount, unitProceeds Price) Transaction {
	return Transaction{Asset: asset, Amount: quantity.Abs().Neg(), Price: unitProceeds, Date: on, Memo: memo}
}

// IsDisposal reports whether the transaction reduces the held quantity.
func (t Transaction) IsDisposal() bool { return t.Amount.IsNegative() }

// Magnitude returns the unsigned quantity moved by the transaction.
func (t Transaction) Magnitude() Amount { return t.Amount.Abs() }

// Equal reports whether two transactions denote the same movement.
func (t Transaction) Equal(o Transaction) bool {
	return t.Asset == o.Asset &&
		t.Amount.Equal(o.Amount) &&
		t.Price.Equal(o.Price) &&
		t.Date.Equal(o.Date) &&
		t.Memo == o.Memo
}

// Validate checks the transaction fields common to acquisitions and
// disposals. It sets the date to now if it is zero.
func (t *Transaction) Validate() error {
	if t.Asset == "" {
		return fmt.Errorf("transaction asset identifier is missing")
	}
	if err := ValidateCurrency(t.Price.Currency()); err != nil {
		return fmt.Errorf("invalid transaction currency: %w", err)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price must not be negative, got %s", t.Price)
	}
	if t.Date.IsZero() {
		t.Date = Now()
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Fields are written in canonical (sorted) order so the rendering of a given
// transaction is stable across runs.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", t.Amount)
	w.Append("asset", t.Asset)
	w.Optional("currency", t.Price.Currency())
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	if !t.Price.IsZero() {
		w.Append("price", t.Price.value)
	}
	return w.MarshalJSON()
}

// txCmd is a specialized struct to decode a transaction's flat JSON form.
type txCmd struct {
	Asset    string          `json:"asset"`
	Amount   Amount          `json:"amount"`
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
	Date     Time            `json:"date"`
	Memo     string          `json:"memo,omitempty"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the flat structure where price and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp txCmd
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.Asset = temp.Asset
	t.Amount = temp.Amount
	t.Price = P(temp.Price, temp.Currency)
	t.Date = temp.Date
	t.Memo = temp.Memo
	return nil
}

// String returns the canonical single-line JSON rendering of the transaction.
// It is the form used in error messages and diagnostics.
func (t Transaction) String() string {
	b, err := json.Marshal(t)
	if err != nil {
		// unreachable in practice, all fields have infallible marshalers.
		return fmt.Sprintf("{%q:%q}", "asset", t.Asset)
	}
	return string(b)
}
