package taxlot

import "sort"

// YearGains aggregates realized results for one calendar year. Gains are
// split per consumption, not per disposition, so a mixed-term sale
// contributes to both buckets.
type YearGains struct {
	Year         int
	ShortTerm    Money // realized short-term gain or loss
	LongTerm     Money // realized long-term gain or loss
	Proceeds     Money
	CostBasis    Money
	DonatedBasis Money // basis consumed by donations (deduction reporting)
}

// GainsReport summarizes the realized side of a calculation result per year.
type GainsReport struct {
	Method Method
	Years  []YearGains
}

// NewGainsReport derives a realized-gains report from a calculation result.
// Each consumption carries its prorated share of the disposition proceeds, so
// the short/long split stays exact on mixed-term sales.
func NewGainsReport(result CalculationResult, method Method) *GainsReport {
	byYear := make(map[int]*YearGains)
	slot := func(year int) *YearGains {
		if g, ok := byYear[year]; ok {
			return g
		}
		g := &YearGains{Year: year}
		byYear[year] = g
		return g
	}

	for _, d := range result.Dispositions {
		g := slot(d.Date.Year())
		if d.Donation {
			g.DonatedBasis = g.DonatedBasis.Add(d.CostBasis)
			continue
		}
		g.Proceeds = g.Proceeds.Add(d.Proceeds)
		g.CostBasis = g.CostBasis.Add(d.CostBasis)
		for _, c := range d.Consumptions {
			proceeds := d.Proceeds.Mul(c.Amount).Div(d.Amount)
			gain := proceeds.Sub(c.TotalCost)
			if c.LongTerm {
				g.LongTerm = g.LongTerm.Add(gain)
			} else {
				g.ShortTerm = g.ShortTerm.Add(gain)
			}
		}
	}

	report := &GainsReport{Method: method}
	for _, g := range byYear {
		report.Years = append(report.Years, *g)
	}
	sort.Slice(report.Years, func(i, j int) bool { return report.Years[i].Year < report.Years[j].Year })
	return report
}
