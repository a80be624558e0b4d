package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/taxlot"
)

// GainsMarkdown renders the per-year realized gains report.
func GainsMarkdown(report *taxlot.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains Report\n\n")
	fmt.Fprintf(&b, "Method: %s\n\n", report.Method)

	fmt.Fprintln(&b, "| Year | Proceeds | Cost Basis | Short-Term | Long-Term | Donated Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	for _, y := range report.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			y.Year,
			y.Proceeds,
			y.CostBasis,
			y.ShortTerm.SignedString(),
			y.LongTerm.SignedString(),
			y.DonatedBasis,
		)
	}

	return b.String()
}
