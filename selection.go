package taxlot

import "sort"

// LotSelection designates an amount to consume from a specific lot. Used by
// the SpecificID method, either directly by the caller or produced by
// resolving a recorded election.
type LotSelection struct {
	LotID  string   `json:"lotId"`
	Amount Quantity `json:"amount"`
}

// orderCandidates returns the candidate lot indices in the consumption order
// of an automatic method. Sorts are stable: lots that tie on the ordering key
// keep their input order, which keeps results deterministic across replays.
// SpecificID bypasses ordering entirely and is handled by the processor.
func orderCandidates(lots []*Lot, candidates []int, method Method) []int {
	ordered := make([]int, len(candidates))
	copy(ordered, candidates)
	switch method {
	case FIFO:
		sort.SliceStable(ordered, func(i, j int) bool {
			return lots[ordered[i]].AcquiredDate.Before(lots[ordered[j]].AcquiredDate)
		})
	case LIFO:
		sort.SliceStable(ordered, func(i, j int) bool {
			return lots[ordered[i]].AcquiredDate.After(lots[ordered[j]].AcquiredDate)
		})
	case HIFO:
		sort.SliceStable(ordered, func(i, j int) bool {
			return lots[ordered[i]].UnitCost.GreaterThan(lots[ordered[j]].UnitCost)
		})
	}
	return ordered
}
