package costbasis

// test helpers to keep the fixtures terse.

// eur returns a Price in euro.
func eur(v float64) Price { return P(v, "EUR") }

// usd returns a Price in US dollar.
func usd(v float64) Price { return P(v, "USD") }

// amt returns an Amount.
func amt(v float64) Amount { return A(v) }

// on returns the Time for a lenient date string, panicking on bad fixtures.
func on(s string) Time { return MustParseTime(s) }
