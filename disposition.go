package taxlot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// LotConsumption records how much of one lot a disposition consumed, with the
// basis and holding-period classification of that slice. Callers that need a
// short/long split (e.g. tax-form partitioning) must use the per-consumption
// LongTerm flags: the aggregate flag on the disposition alone is insufficient
// for mixed-term events.
type LotConsumption struct {
	LotID        string   `json:"lotId"`
	AcquiredDate Date     `json:"acquiredDate"`
	Amount       Quantity `json:"amount"`
	CostPerUnit  Money    `json:"costPerUnit"`
	TotalCost    Money    `json:"totalCost"`
	DaysHeld     int      `json:"daysHeld"`
	Account      string   `json:"account,omitempty"`
	LongTerm     bool     `json:"longTerm"`
}

// Disposition is the computed outcome of one sell or donation event. Once a
// caller persists a disposition computed under SpecificID, it becomes an
// election that constrains every future replay until the caller clears it.
//
// The ID is regenerated on every replay and is ephemeral until recorded as an
// election; all other fields are deterministic for identical inputs.
// AvgHoldingDays is the amount-weighted mean of the consumption holding
// periods.
type Disposition struct {
	ID             string           `json:"id"`
	TransactionID  string           `json:"transactionId,omitempty"`
	Date           Date             `json:"date"`
	Amount         Quantity         `json:"amount"`
	UnitPrice      Money            `json:"unitPrice"`
	Proceeds       Money            `json:"proceeds"`
	CostBasis      Money            `json:"costBasis"`
	GainLoss       Money            `json:"gainLoss"`
	Consumptions   []LotConsumption `json:"consumptions"`
	AvgHoldingDays float64          `json:"avgHoldingDays"`
	LongTerm       bool             `json:"longTerm"`
	MixedTerm      bool             `json:"mixedTerm"`
	Method         Method           `json:"method"`
	Donation       bool             `json:"donation,omitempty"`
	// Fair-market value the caller supplied for a donation, prorated to the
	// amount actually filled. Informational: donation proceeds stay zero.
	FMVPerUnit Money `json:"fmvPerUnit,omitempty"`
	FMVTotal   Money `json:"fmvTotal,omitempty"`
}

// processDisposition consumes lots for exactly one sell or donation
// transaction, mutating lot balances, and returns the resulting disposition
// plus any non-fatal warnings. It returns nil when the requested amount is
// not positive or when no lot with a remaining balance exists anywhere; that
// is a routine outcome the replay driver converts to a warning.
func processDisposition(tx Transaction, lots []*Lot, method Method, selections []LotSelection) (*Disposition, []string) {
	var warnings []string

	if !tx.Amount.IsPositive() {
		return nil, warnings
	}

	unitPrice := tx.UnitPrice
	totalValue := tx.TotalValue
	donation := tx.Kind == TxDonation
	var fmvPerUnit Money
	if donation {
		// A donation is non-taxable: it drains lots and keeps their true
		// basis, but carries zero proceeds and zero gain. The caller's
		// fair-market value is retained separately.
		fmvPerUnit = tx.UnitPrice
		unitPrice = M(0, tx.UnitPrice.Currency())
		totalValue = M(0, tx.TotalValue.Currency())
	}

	// Account segregation: a disposition draws basis only from lots held in
	// the same account. When none match, broaden to the whole pool rather
	// than silently failing while basis exists somewhere. An empty account
	// on the transaction means the whole pool from the start (simulations).
	var candidates, anyOpen []int
	for i, lot := range lots {
		if !lot.RemainingAmount.IsPositive() {
			continue
		}
		anyOpen = append(anyOpen, i)
		if tx.Account == "" || strings.EqualFold(lot.Account, tx.Account) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		if len(anyOpen) == 0 {
			return nil, warnings
		}
		warnings = append(warnings, fmt.Sprintf("%s: no open lots in account %q, drawing basis from all accounts", tx.Date, tx.Account))
		candidates = anyOpen
	}

	toFill := tx.Amount
	var consumptions []LotConsumption
	consume := func(lot *Lot, requested Quantity) {
		use := requested.Min(lot.RemainingAmount).Min(toFill)
		if !use.IsPositive() {
			return
		}
		// Basis always derives from the fee-inclusive lot total, never from a
		// possibly stale per-unit price.
		cost := lot.TotalCost.Mul(use).Div(lot.OriginalAmount)
		consumptions = append(consumptions, LotConsumption{
			LotID:        lot.ID,
			AcquiredDate: lot.AcquiredDate,
			Amount:       use,
			CostPerUnit:  lot.TotalCost.Div(lot.OriginalAmount),
			TotalCost:    cost,
			DaysHeld:     lot.AcquiredDate.DaysUntil(tx.Date),
			Account:      lot.Account,
			LongTerm:     LongTerm(lot.AcquiredDate, tx.Date),
		})
		lot.RemainingAmount = lot.RemainingAmount.Sub(use).Snap()
		toFill = toFill.Sub(use).Snap()
	}

	if method == SpecificID && len(selections) > 0 {
		byID := make(map[string]*Lot, len(lots))
		for _, lot := range lots {
			byID[lot.ID] = lot
		}
		for _, sel := range selections {
			if !toFill.IsPositive() {
				break
			}
			lot, ok := byID[sel.LotID]
			if !ok || !lot.RemainingAmount.IsPositive() {
				continue
			}
			consume(lot, sel.Amount)
		}
	} else {
		for _, i := range orderCandidates(lots, candidates, method) {
			if !toFill.IsPositive() {
				break
			}
			consume(lots[i], lots[i].RemainingAmount)
		}
	}

	if len(consumptions) == 0 {
		return nil, warnings
	}

	filled := tx.Amount.Sub(toFill).Snap()

	// Partial fills prorate proceeds to the quantity actually consumed, so
	// proceeds and basis always describe the same amount. A full fill keeps
	// the fee-inclusive transaction total.
	proceeds := totalValue
	if toFill.IsPositive() {
		proceeds = unitPrice.Mul(filled)
	}

	var costBasis Money
	allLong, anyLong, anyShort := true, false, false
	weightedDays := Q(0)
	for _, c := range consumptions {
		costBasis = costBasis.Add(c.TotalCost)
		weightedDays = weightedDays.Add(Q(int64(c.DaysHeld)).Mul(c.Amount))
		if c.LongTerm {
			anyLong = true
		} else {
			allLong = false
			anyShort = true
		}
	}

	gainLoss := proceeds.Sub(costBasis)
	var fmvTotal Money
	if donation {
		gainLoss = M(0, costBasis.Currency())
		fmvTotal = fmvPerUnit.Mul(filled)
	}

	return &Disposition{
		ID:             uuid.NewString(),
		TransactionID:  tx.ID,
		Date:           tx.Date,
		Amount:         filled,
		UnitPrice:      unitPrice,
		Proceeds:       proceeds,
		CostBasis:      costBasis,
		GainLoss:       gainLoss,
		Consumptions:   consumptions,
		AvgHoldingDays: weightedDays.Div(filled).InexactFloat64(),
		LongTerm:       allLong,
		MixedTerm:      anyLong && anyShort,
		Method:         method,
		Donation:       donation,
		FMVPerUnit:     fmvPerUnit,
		FMVTotal:       fmvTotal,
	}, warnings
}
