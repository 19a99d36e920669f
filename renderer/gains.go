// Package renderer turns cost basis reports into markdown, ready for the
// terminal or a document.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
)

// GainsMarkdown renders a realized gains report, one row per asset.
func GainsMarkdown(r *costbasis.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains Report\n\n")
	fmt.Fprint(&b, "Method: LIFO\n\n")

	if len(r.Assets) == 0 {
		fmt.Fprint(&b, "No disposals.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Disposed | Cost Basis | Proceeds | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, ag := range r.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			ag.Asset,
			ag.Disposed,
			ag.Basis,
			ag.Net,
			ag.Gain.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** | **%s** | **%s** |\n",
		"Total",
		r.Basis,
		r.Net,
		r.Gain.SignedString(),
	)

	return b.String()
}
