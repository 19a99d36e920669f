package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
)

// DisposalMarkdown renders the lot matching of a single disposal, the
// consumed lots listed newest acquisition first.
func DisposalMarkdown(d *costbasis.Disposal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Disposal of %s %s on %s\n\n",
		d.Tx.Magnitude(), d.Tx.Asset, d.Tx.Date.Format("2006-01-02"))

	fmt.Fprintln(&b, "| Acquired | Matched | Unit Cost | Cost Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, m := range d.Matched {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			m.Date.Format("2006-01-02"),
			m.Amount,
			m.UnitCost,
			m.CostBasis(),
		)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Cost basis: %s\n\n", d.Basis)
	if !d.Net.IsZero() {
		fmt.Fprintf(&b, "Proceeds: %s\n\n", d.Net)
		fmt.Fprintf(&b, "Gain: %s\n", d.Gain.SignedString())
	}

	return b.String()
}
