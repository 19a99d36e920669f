package costbasis

import "sort"

// AssetGains aggregates the realized outcome of one asset's disposals.
type AssetGains struct {
	Asset     string
	Disposals []Disposal
	Disposed  Amount // total quantity disposed of
	Basis     Price  // total cost basis consumed
	Net       Price  // total proceeds
	Gain      Price  // Net minus Basis
}

// GainsReport is the realized gains of a replayed history, one entry per
// asset that had at least one disposal.
type GainsReport struct {
	Assets []AssetGains
	Basis  Price // grand total cost basis
	Net    Price // grand total proceeds
	Gain   Price // grand total gain
}

// NewGainsReport aggregates disposal reports per asset, sorted by asset
// identifier.
func NewGainsReport(disposals []Disposal) *GainsReport {
	byAsset := make(map[string]*AssetGains)
	for _, d := range disposals {
		ag, ok := byAsset[d.Tx.Asset]
		if !ok {
			ag = &AssetGains{Asset: d.Tx.Asset}
			byAsset[d.Tx.Asset] = ag
		}
		ag.Disposals = append(ag.Disposals, d)
		ag.Disposed = ag.Disposed.Add(d.Tx.Magnitude())
		ag.Basis = ag.Basis.Add(d.Basis)
		ag.Net = ag.Net.Add(d.Net)
		ag.Gain = ag.Gain.Add(d.Gain)
	}

	r := &GainsReport{}
	for _, ag := range byAsset {
		r.Assets = append(r.Assets, *ag)
		r.Basis = r.Basis.Add(ag.Basis)
		r.Net = r.Net.Add(ag.Net)
		r.Gain = r.Gain.Add(ag.Gain)
	}
	sort.Slice(r.Assets, func(i, j int) bool { return r.Assets[i].Asset < r.Assets[j].Asset })
	return r
}
