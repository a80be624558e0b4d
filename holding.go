package taxlot

import (
	"sort"
	"strings"
)

// HoldingReport is a view of the open lots grouped per account.
type HoldingReport struct {
	Date     Date
	Accounts []AccountHolding
	Total    Quantity
}

// AccountHolding lists the open lots of a single account with their
// aggregated remaining amount and remaining fee-inclusive basis.
type AccountHolding struct {
	Account        string
	Lots           []*Lot
	Amount         Quantity
	RemainingBasis Money
}

// NewHoldingReport groups the lots that still have a remaining balance by
// account. The remaining basis of a partially drained lot is prorated from
// its fee-inclusive total.
func NewHoldingReport(on Date, lots []*Lot) *HoldingReport {
	byAccount := make(map[string]*AccountHolding)
	report := &HoldingReport{Date: on}

	for _, lot := range lots {
		if !lot.RemainingAmount.IsPositive() {
			continue
		}
		key := strings.ToLower(lot.Account)
		h, ok := byAccount[key]
		if !ok {
			h = &AccountHolding{Account: lot.Account}
			byAccount[key] = h
		}
		h.Lots = append(h.Lots, lot)
		h.Amount = h.Amount.Add(lot.RemainingAmount)
		h.RemainingBasis = h.RemainingBasis.Add(lot.TotalCost.Mul(lot.RemainingAmount).Div(lot.OriginalAmount))
		report.Total = report.Total.Add(lot.RemainingAmount)
	}

	for _, h := range byAccount {
		report.Accounts = append(report.Accounts, *h)
	}
	sort.Slice(report.Accounts, func(i, j int) bool {
		return report.Accounts[i].Account < report.Accounts[j].Account
	})
	return report
}
