package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/taxlot"
)

// term renders the holding-period classification of a disposition.
func term(d *taxlot.Disposition) string {
	switch {
	case d.MixedTerm:
		return "mixed"
	case d.LongTerm:
		return "long"
	default:
		return "short"
	}
}

// DispositionsMarkdown renders every computed disposition as one table row.
func DispositionsMarkdown(dispositions []*taxlot.Disposition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dispositions\n\n")
	fmt.Fprintln(&b, "| Date | Kind | Amount | Proceeds | Cost Basis | Gain/Loss | Term | Method |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|:---|")

	for _, d := range dispositions {
		kind := "sell"
		if d.Donation {
			kind = "donation"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			d.Date,
			kind,
			d.Amount,
			d.Proceeds,
			d.CostBasis,
			d.GainLoss.SignedString(),
			term(d),
			d.Method,
		)
	}

	return b.String()
}

// DispositionMarkdown renders one disposition with its lot-level detail. Used
// by the simulation preview and when inspecting a single sale.
func DispositionMarkdown(d *taxlot.Disposition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Disposition on %s\n\n", d.Date)
	fmt.Fprintf(&b, "- Amount: %s\n", d.Amount)
	fmt.Fprintf(&b, "- Method: %s\n", d.Method)
	if d.Donation {
		fmt.Fprintf(&b, "- Donated basis: %s\n", d.CostBasis)
		fmt.Fprintf(&b, "- Fair-market value: %s\n", d.FMVTotal)
	} else {
		fmt.Fprintf(&b, "- Proceeds: %s\n", d.Proceeds)
		fmt.Fprintf(&b, "- Cost basis: %s\n", d.CostBasis)
		fmt.Fprintf(&b, "- Gain/Loss: %s\n", d.GainLoss.SignedString())
	}
	fmt.Fprintf(&b, "- Term: %s (avg %.0f days held)\n\n", term(d), d.AvgHoldingDays)

	fmt.Fprintln(&b, "| Lot | Acquired | Amount | Unit Cost | Basis | Days Held | Term |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|")
	for _, c := range d.Consumptions {
		t := "short"
		if c.LongTerm {
			t = "long"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d | %s |\n",
			c.LotID,
			c.AcquiredDate,
			c.Amount,
			c.CostPerUnit,
			c.TotalCost,
			c.DaysHeld,
			t,
		)
	}

	return b.String()
}
