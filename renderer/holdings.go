package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/costbasis"
)

// HoldingsMarkdown renders the open lots of every asset in the book.
func HoldingsMarkdown(b *costbasis.Book) string {
	var sb strings.Builder

	fmt.Fprint(&sb, "# Holdings\n\n")

	empty := true
	for asset := range b.Assets() {
		l := b.Ledger(asset)
		if l.Position().IsZero() && l.Len() == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(&sb, "## %s\n\n", asset)
		fmt.Fprintf(&sb, "Position: %s, cost basis %s\n\n", l.Position(), l.CostBasis())
		fmt.Fprintln(&sb, "| Acquired | Amount | Unit Cost | Cost Basis |")
		fmt.Fprintln(&sb, "|:---|---:|---:|---:|")
		for lot := range l.Lots() {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				lot.Date.Format("2006-01-02"),
				lot.Amount,
				lot.UnitCost,
				lot.UnitCost.Mul(lot.Amount),
			)
		}
		fmt.Fprintln(&sb)
	}
	if empty {
		fmt.Fprint(&sb, "No open lots.\n")
	}

	return sb.String()
}
