package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/taxlot"
)

// HoldingMarkdown renders the open lots grouped per account.
func HoldingMarkdown(report *taxlot.HoldingReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings on %s\n\n", report.Date)

	for _, a := range report.Accounts {
		name := a.Account
		if name == "" {
			name = "(unassigned)"
		}
		fmt.Fprintf(&b, "## %s\n\n", name)
		fmt.Fprintln(&b, "| Lot | Acquired | Remaining | Unit Cost | Remaining Basis |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, lot := range a.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				lot.ID,
				lot.AcquiredDate,
				lot.RemainingAmount,
				lot.UnitCost,
				lot.TotalCost.Mul(lot.RemainingAmount).Div(lot.OriginalAmount),
			)
		}
		fmt.Fprintf(&b, "\nTotal: %s (basis %s)\n\n", a.Amount, a.RemainingBasis)
	}

	fmt.Fprintf(&b, "**Total holdings: %s**\n", report.Total)

	return b.String()
}
