package taxlot

import "strings"

// costTolerance is the absolute unit-cost tolerance used when matching a
// legacy election consumption against a rebuilt lot.
var costTolerance = M(0.005, "")

// resolveElection maps a disposition previously recorded under SpecificID
// back onto the current lot set. Lot ids are deterministic, so the normal
// path is a direct id lookup. Consumptions recorded before ids were made
// deterministic carry no resolvable id; those fall back to a heuristic match
// against a not-yet-claimed lot with the same acquisition date, a unit cost
// within an absolute 0.005, and the same account. A lot claimed by the
// heuristic cannot be claimed twice within one resolution pass.
//
// The policy is all-or-nothing: if any consumption fails to resolve, the
// whole election is unresolvable and ok is false. A best-effort partial
// selection would under-fill the disposition and understate consumed basis,
// which is worse than an obvious fallback to an automatic method.
func resolveElection(recorded *Disposition, lots []*Lot) (selections []LotSelection, ok bool) {
	byID := make(map[string]*Lot, len(lots))
	for _, lot := range lots {
		byID[lot.ID] = lot
	}

	claimed := make(map[string]bool)
	for _, c := range recorded.Consumptions {
		if c.LotID != "" {
			if _, exists := byID[c.LotID]; exists {
				selections = append(selections, LotSelection{LotID: c.LotID, Amount: c.Amount})
				continue
			}
		}
		lot := matchLegacy(c, lots, claimed)
		if lot == nil {
			return nil, false
		}
		claimed[lot.ID] = true
		selections = append(selections, LotSelection{LotID: lot.ID, Amount: c.Amount})
	}
	return selections, true
}

// matchLegacy finds an unclaimed lot equivalent to a consumption recorded
// without a resolvable lot id.
func matchLegacy(c LotConsumption, lots []*Lot, claimed map[string]bool) *Lot {
	for _, lot := range lots {
		if claimed[lot.ID] {
			continue
		}
		if lot.AcquiredDate != c.AcquiredDate {
			continue
		}
		if !strings.EqualFold(lot.Account, c.Account) {
			continue
		}
		if lot.UnitCost.Sub(c.CostPerUnit).Abs().GreaterThan(costTolerance) {
			continue
		}
		return lot
	}
	return nil
}
