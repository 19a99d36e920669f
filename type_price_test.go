package costbasis

import "testing"

func TestPriceString(t *testing.T) {
	tests := []struct {
		p    Price
		want string
	}{
		{usd(1234.5), "$1,234.50"},
		{eur(-2.5), "-€2.50"},
		{P(0.00012345, "USD"), "$0.00"}, // display rounds, arithmetic does not
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("String(%v) = %q, want %q", tc.p.value, got, tc.want)
		}
	}
}

func TestPriceSignedString(t *testing.T) {
	if got := usd(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := usd(10).SignedString(); got != "+$10.00" {
		t.Errorf("SignedString(10) = %q, want %q", got, "+$10.00")
	}
	if got := usd(-10).SignedString(); got != "-$10.00" {
		t.Errorf("SignedString(-10) = %q, want %q", got, "-$10.00")
	}
}

func TestPriceArithmeticIsExact(t *testing.T) {
	// sub-cent unit costs must survive multiplication untouched.
	unit := P(0.1, "USD")
	total := unit.Mul(amt(3))
	if want := usd(0.3); !total.Equal(want) {
		t.Errorf("0.1 * 3 = %v, want %v", total.value, want.value)
	}
}

func TestCurrencyMerge(t *testing.T) {
	got := Price{}.Add(usd(10))
	if got.Currency() != "USD" {
		t.Errorf("empty + USD currency = %q, want USD", got.Currency())
	}
	defer func() {
		if recover() == nil {
			t.Error("adding USD and EUR did not panic")
		}
	}()
	usd(1).Add(eur(1))
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"", "USD", "EUR", "JPY"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) = %v, want nil", code, err)
		}
	}
	if err := ValidateCurrency("NOPE"); err == nil {
		t.Error("ValidateCurrency(NOPE) = nil, want error")
	}
}
