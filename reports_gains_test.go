package costbasis

import "testing"

func TestNewGainsReport(t *testing.T) {
	txs := []Transaction{
		NewAcquisition(on("2025-01-01"), "", "BTC", amt(50), usd(10)),
		NewAcquisition(on("2025-02-01"), "", "BTC", amt(50), usd(20)),
		NewAcquisition(on("2025-01-15"), "", "ETH", amt(10), usd(100)),
		NewDisposal(on("2025-03-01"), "", "BTC", amt(75), usd(30)),
		NewDisposal(on("2025-03-02"), "", "BTC", amt(10), usd(40)),
		NewDisposal(on("2025-03-03"), "", "ETH", amt(4), usd(90)),
	}
	disposals, err := NewBook().Replay(txs)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	r := NewGainsReport(disposals)
	if len(r.Assets) != 2 {
		t.Fatalf("report covers %d assets, want 2", len(r.Assets))
	}

	btc := r.Assets[0]
	if btc.Asset != "BTC" {
		t.Fatalf("Assets[0] = %s, want BTC (sorted)", btc.Asset)
	}
	if !btc.Disposed.Equal(amt(85)) {
		t.Errorf("BTC disposed = %s, want 85", btc.Disposed)
	}
	// first disposal: basis 50*20+25*10 = 1250, net 2250.
	// second: basis 10*10 = 100, net 400.
	if want := usd(1350); !btc.Basis.Equal(want) {
		t.Errorf("BTC basis = %s, want %s", btc.Basis, want)
	}
	if want := usd(2650); !btc.Net.Equal(want) {
		t.Errorf("BTC net = %s, want %s", btc.Net, want)
	}
	if want := usd(1300); !btc.Gain.Equal(want) {
		t.Errorf("BTC gain = %s, want %s", btc.Gain, want)
	}

	eth := r.Assets[1]
	if want := usd(-40); !eth.Gain.Equal(want) {
		t.Errorf("ETH gain = %s, want %s", eth.Gain, want)
	}

	if want := usd(1260); !r.Gain.Equal(want) {
		t.Errorf("total gain = %s, want %s", r.Gain, want)
	}
}

func TestNewGainsReport_Empty(t *testing.T) {
	r := NewGainsReport(nil)
	if len(r.Assets) != 0 {
		t.Errorf("empty report covers %d assets, want 0", len(r.Assets))
	}
	if !r.Gain.IsZero() {
		t.Errorf("empty report gain = %s, want zero", r.Gain)
	}
}
