package costbasis

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price represents an exact unit cost or monetary value with its currency.
type Price struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// P creates a Price from any numeric value and an ISO 4217 currency code.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Price {
	return Price{value: newDecimal(value), cur: currency}
}

// ParsePrice parses a Price from its decimal string representation.
func ParsePrice(s, currency string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{value: d, cur: currency}, nil
}

// currency returns the price's full currency definition.
func (p Price) currency() money.Currency {
	// the Money constructor guarantees a never-nil currency.
	return *money.New(0, p.cur).Currency()
}

// String returns the price formatted in its currency.
func (p Price) String() string {
	cur := p.currency()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted price with an explicit sign, or "-" for zero.
func (p Price) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Price) Currency() string       { return p.cur }
func (p Price) Equal(q Price) bool     { return p.value.Equal(q.value) && p.cur == q.cur }
func (p Price) IsZero() bool           { return p.value.IsZero() }
func (p Price) IsPositive() bool       { return p.value.IsPositive() }
func (p Price) IsNegative() bool       { return p.value.IsNegative() }
func (p Price) LessThan(q Price) bool  { return p.value.LessThan(q.value) }
func (p Price) Neg() Price             { return Price{value: p.value.Neg(), cur: p.cur} }
func (p Price) Mul(n Amount) Price     { return Price{value: p.value.Mul(n.value), cur: p.cur} }
func (p Price) Div(n Amount) Price     { return Price{value: p.value.Div(n.value), cur: p.cur} }

// binary operators.
func (p Price) Add(q Price) Price { return Price{value: p.value.Add(q.value), cur: cur(p, q)} }
func (p Price) Sub(q Price) Price { return Price{value: p.value.Sub(q.value), cur: cur(p, q)} }

// makes the "" currency totally weak.
func cur(a, b Price) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// ValidateCurrency checks that a currency code is a known ISO 4217 code.
// The empty code is accepted: it stands for "currency not set yet".
func ValidateCurrency(code string) error {
	if code == "" {
		return nil
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Price.
// Prices are persisted with all their digits, the unit cost of a lot can be
// fractional well below the currency's minor unit.
func (p Price) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", p.cur)
	w.Append("price", p.value)
	return w.MarshalJSON()
}
