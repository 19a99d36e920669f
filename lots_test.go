package costbasis

import (
	"errors"
	"testing"
)

// TestLedgerDispose_ConsumesNewestFirst walks the canonical two-lot example:
// two acquisitions, then a disposal that spans both lots, then one that
// drains the remainder, then one that must fail.
func TestLedgerDispose_ConsumesNewestFirst(t *testing.T) {
	d1, d2, d3 := on("2025-01-01"), on("2025-02-01"), on("2025-03-01")
	l := NewLedger("BTC")
	if err := l.Acquire(NewAcquisition(d1, "", "BTC", amt(50), usd(10))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := l.Acquire(NewAcquisition(d2, "", "BTC", amt(50), usd(20))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	matched, err := l.Dispose(NewDisposal(d3, "", "BTC", amt(75), usd(30)))
	if err != nil {
		t.Fatalf("Dispose(75) error = %v", err)
	}
	want := []MatchedLot{
		{Date: d2, Amount: amt(50), UnitCost: usd(20)},
		{Date: d1, Amount: amt(25), UnitCost: usd(10)},
	}
	assertMatched(t, matched, want)
	if got := l.Position(); !got.Equal(amt(25)) {
		t.Errorf("Position() = %s, want 25", got)
	}

	matched, err = l.Dispose(NewDisposal(d3, "", "BTC", amt(25), usd(30)))
	if err != nil {
		t.Fatalf("Dispose(25) error = %v", err)
	}
	assertMatched(t, matched, []MatchedLot{{Date: d1, Amount: amt(25), UnitCost: usd(10)}})
	if got := l.Position(); !got.IsZero() {
		t.Errorf("Position() = %s, want 0", got)
	}

	if _, err := l.Dispose(NewDisposal(d3, "", "BTC", amt(1), usd(30))); !errors.Is(err, ErrInsufficientLots) {
		t.Errorf("Dispose(1) on empty ledger error = %v, want ErrInsufficientLots", err)
	}
}

func assertMatched(t *testing.T, got, want []MatchedLot) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("matched %d lots, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) || !got[i].Amount.Equal(want[i].Amount) || !got[i].UnitCost.Equal(want[i].UnitCost) {
			t.Errorf("matched[%d] = {%s %s %s}, want {%s %s %s}",
				i, got[i].Date, got[i].Amount, got[i].UnitCost,
				want[i].Date, want[i].Amount, want[i].UnitCost)
		}
	}
}

// TestLedgerDispose_Conservation checks that whatever the disposal pattern,
// the matched amounts always sum exactly to the disposal magnitude.
func TestLedgerDispose_Conservation(t *testing.T) {
	tests := []struct {
		name      string
		acquire   []float64
		dispose   float64
		wantLots  int
		remaining float64
	}{
		{"partial newest lot", []float64{10, 10}, 3, 1, 17},
		{"exact newest lot", []float64{10, 10}, 10, 1, 10},
		{"spans two lots", []float64{10, 10}, 13, 2, 7},
		{"drains everything", []float64{10, 10}, 20, 2, 0},
		{"fractional split", []float64{0.3, 0.7}, 0.9, 2, 0.1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger("ETH")
			day := on("2025-01-01")
			for _, q := range tc.acquire {
				if err := l.Acquire(NewAcquisition(day, "", "ETH", amt(q), eur(100))); err != nil {
					t.Fatalf("Acquire(%v) error = %v", q, err)
				}
			}
			matched, err := l.Dispose(NewDisposal(day, "", "ETH", amt(tc.dispose), eur(110)))
			if err != nil {
				t.Fatalf("Dispose(%v) error = %v", tc.dispose, err)
			}
			if len(matched) != tc.wantLots {
				t.Errorf("matched %d lots, want %d", len(matched), tc.wantLots)
			}
			var sum Amount
			for _, m := range matched {
				sum = sum.Add(m.Amount)
			}
			if !sum.Equal(amt(tc.dispose)) {
				t.Errorf("matched sum = %s, want %v", sum, tc.dispose)
			}
			if got := l.Position(); !got.Equal(amt(tc.remaining)) {
				t.Errorf("Position() = %s, want %v", got, tc.remaining)
			}
		})
	}
}

func TestLedgerDispose_PartialShrinkKeepsLotIdentity(t *testing.T) {
	d1 := on("2025-01-01")
	l := NewLedger("BTC")
	if err := l.Acquire(NewAcquisition(d1, "", "BTC", amt(10), usd(50))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if _, err := l.Dispose(NewDisposal(on("2025-01-02"), "", "BTC", amt(4), usd(60))); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	for lot := range l.Lots() {
		if !lot.Amount.Equal(amt(6)) {
			t.Errorf("lot amount = %s, want 6", lot.Amount)
		}
		if !lot.Date.Equal(d1) {
			t.Errorf("lot date = %s, want %s", lot.Date, d1)
		}
		if !lot.UnitCost.Equal(usd(50)) {
			t.Errorf("lot unit cost = %s, want %s", lot.UnitCost, usd(50))
		}
	}
}

func TestLedgerValidation(t *testing.T) {
	day := on("2025-01-01")
	t.Run("acquire wrong asset", func(t *testing.T) {
		l := NewLedger("BTC")
		err := l.Acquire(NewAcquisition(day, "", "ETH", amt(1), usd(10)))
		if !errors.Is(err, ErrAssetMismatch) {
			t.Errorf("Acquire() error = %v, want ErrAssetMismatch", err)
		}
	})
	t.Run("dispose wrong asset", func(t *testing.T) {
		l := NewLedger("BTC")
		_, err := l.Dispose(NewDisposal(day, "", "ETH", amt(1), usd(10)))
		if !errors.Is(err, ErrAssetMismatch) {
			t.Errorf("Dispose() error = %v, want ErrAssetMismatch", err)
		}
	})
	t.Run("negative acquisition", func(t *testing.T) {
		l := NewLedger("BTC")
		err := l.Acquire(Transaction{Asset: "BTC", Amount: amt(-1), Price: usd(10), Date: day})
		if !errors.Is(err, ErrInvalidAcquisitionAmount) {
			t.Errorf("Acquire() error = %v, want ErrInvalidAcquisitionAmount", err)
		}
		if l.Len() != 0 {
			t.Errorf("Len() = %d after rejected acquisition, want 0", l.Len())
		}
	})
	t.Run("positive disposal", func(t *testing.T) {
		l := NewLedger("BTC")
		if err := l.Acquire(NewAcquisition(day, "", "BTC", amt(5), usd(10))); err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
		_, err := l.Dispose(Transaction{Asset: "BTC", Amount: amt(1), Price: usd(10), Date: day})
		if !errors.Is(err, ErrInvalidDisposalAmount) {
			t.Errorf("Dispose(1) error = %v, want ErrInvalidDisposalAmount", err)
		}
		if got := l.Position(); !got.Equal(amt(5)) {
			t.Errorf("Position() = %s after rejected disposal, want 5", got)
		}
	})
}

// TestLedgerDispose_ZeroAmount checks that a zero disposal is a no-op: no
// matched lots, no error, the ledger untouched.
func TestLedgerDispose_ZeroAmount(t *testing.T) {
	l := NewLedger("BTC")
	if err := l.Acquire(NewAcquisition(on("2025-01-01"), "", "BTC", amt(5), usd(10))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	matched, err := l.Dispose(Transaction{Asset: "BTC", Amount: amt(0), Price: usd(10), Date: on("2025-01-02")})
	if err != nil {
		t.Fatalf("Dispose(0) error = %v, want nil", err)
	}
	if len(matched) != 0 {
		t.Errorf("Dispose(0) matched %d lots, want none", len(matched))
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after zero disposal, want 1", l.Len())
	}
	if got := l.Position(); !got.Equal(amt(5)) {
		t.Errorf("Position() = %s after zero disposal, want 5", got)
	}
}

// TestLedgerDispose_InsufficientLeavesPartialEffect pins down the failure
// semantics: lots consumed before the stack ran out stay consumed, and the
// error reports exactly the unmatched remainder.
func TestLedgerDispose_InsufficientLeavesPartialEffect(t *testing.T) {
	l := NewLedger("BTC")
	if err := l.Acquire(NewAcquisition(on("2025-01-01"), "", "BTC", amt(10), usd(10))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	matched, err := l.Dispose(NewDisposal(on("2025-01-02"), "", "BTC", amt(15), usd(20)))

	var insufficient *InsufficientLotsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Dispose() error = %v, want *InsufficientLotsError", err)
	}
	if !insufficient.Unmatched.Equal(amt(5)) {
		t.Errorf("Unmatched = %s, want 5", insufficient.Unmatched)
	}
	if len(matched) != 1 || !matched[0].Amount.Equal(amt(10)) {
		t.Errorf("partial matched = %v, want the whole 10 lot", matched)
	}
	if got := l.Position(); !got.IsZero() {
		t.Errorf("Position() = %s after failed disposal, want 0 (consumed lots stay consumed)", got)
	}
}

func TestInsufficientLotsError_RendersTransaction(t *testing.T) {
	tx := NewDisposal(on("2025-01-02"), "cold wallet", "BTC", amt(15), usd(20))
	err := &InsufficientLotsError{Tx: tx, Unmatched: amt(5)}
	want := `insufficient lots: 5 of BTC unmatched for transaction {"amount":-15,"asset":"BTC","currency":"USD","date":"2025-01-02T00:00:00Z","memo":"cold wallet","price":20}`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLedgerAcquire_ZeroAmountLot(t *testing.T) {
	l := NewLedger("BTC")
	if err := l.Acquire(NewAcquisition(on("2025-01-01"), "", "BTC", amt(5), usd(10))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := l.Acquire(NewAcquisition(on("2025-01-02"), "airdrop dust", "BTC", amt(0), usd(99))); err != nil {
		t.Fatalf("Acquire(0) error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	// the empty lot is on top of the stack; the disposal removes it without
	// producing a matched lot and consumes from the real lot below.
	matched, err := l.Dispose(NewDisposal(on("2025-01-03"), "", "BTC", amt(2), usd(20)))
	if err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if len(matched) != 1 || !matched[0].UnitCost.Equal(usd(10)) {
		t.Errorf("matched = %v, want a single lot at unit cost $10.00", matched)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (empty lot removed)", l.Len())
	}
}

func TestLedgerCostBasis(t *testing.T) {
	l := NewLedger("ETH")
	day := on("2025-01-01")
	if err := l.Acquire(NewAcquisition(day, "", "ETH", amt(2), eur(1000))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := l.Acquire(NewAcquisition(day, "", "ETH", amt(0.5), eur(1200))); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if got, want := l.CostBasis(), eur(2600); !got.Equal(want) {
		t.Errorf("CostBasis() = %s, want %s", got, want)
	}
	if _, err := l.Dispose(NewDisposal(day, "", "ETH", amt(0.5), eur(0))); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if got, want := l.CostBasis(), eur(2000); !got.Equal(want) {
		t.Errorf("CostBasis() after disposal = %s, want %s", got, want)
	}
}

func TestMatchedLotCostBasis(t *testing.T) {
	m := MatchedLot{Date: on("2025-01-01"), Amount: amt(0.3), UnitCost: usd(10)}
	if got, want := m.CostBasis(), usd(3); !got.Equal(want) {
		t.Errorf("CostBasis() = %s, want %s", got, want)
	}
}
