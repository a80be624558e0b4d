package taxlot

import "github.com/google/uuid"

// Simulation describes a what-if sale to preview against the current lot set.
type Simulation struct {
	Amount     Quantity
	UnitPrice  Money
	Method     Method
	Selections []LotSelection // required when Method is SpecificID
	Account    string         // empty draws from all accounts
	Date       Date           // zero value means today
}

// Simulate runs the disposition processor against a deep copy of the given
// lots, so the caller's committed state is never mutated. The result is
// identical to what Calculate would produce if the same sale were the next
// recorded transaction. Returns nil when no lots could be consumed.
func Simulate(sim Simulation, lots []*Lot) (*Disposition, []string) {
	if sim.Date.IsZero() {
		sim.Date = Today()
	}
	tx := Transaction{
		ID:         "preview-" + uuid.NewString(),
		Date:       sim.Date,
		Kind:       TxSell,
		Amount:     sim.Amount,
		UnitPrice:  sim.UnitPrice,
		TotalValue: sim.UnitPrice.Mul(sim.Amount),
		Account:    sim.Account,
	}
	return processDisposition(tx, CopyLots(lots), sim.Method, sim.Selections)
}
