package taxlot

import (
	"crypto/sha256"
	"encoding/hex"
)

// Lot represents a single purchase of an asset with its fee-inclusive cost
// basis and a remaining balance. A lot is born from a buy transaction during
// replay and is only ever drained, never destroyed: once RemainingAmount
// reaches zero the lot stays in the result for audit purposes.
type Lot struct {
	ID              string   `json:"id"`
	AcquiredDate    Date     `json:"acquiredDate"`
	OriginalAmount  Quantity `json:"originalAmount"`
	UnitCost        Money    `json:"unitCost"`
	TotalCost       Money    `json:"totalCost"` // fee-inclusive basis
	RemainingAmount Quantity `json:"remainingAmount"`
	Account         string   `json:"account,omitempty"`
}

// LotID derives the identity of the lot created by the buy transaction with
// the given id. The derivation is pure, so independently rebuilt lot sets
// assign the same id to the same lot and recorded elections stay resolvable
// across replays.
func LotID(txID string) string {
	sum := sha256.Sum256([]byte("lot:" + txID))
	return hex.EncodeToString(sum[:])[:16]
}

// newLot creates the lot acquired by a buy transaction. The unit cost is
// derived from the fee-inclusive total, not from the quoted unit price.
func newLot(tx Transaction) *Lot {
	return &Lot{
		ID:              LotID(tx.ID),
		AcquiredDate:    tx.Date,
		OriginalAmount:  tx.Amount,
		UnitCost:        tx.TotalValue.Div(tx.Amount),
		TotalCost:       tx.TotalValue,
		RemainingAmount: tx.Amount,
		Account:         tx.Account,
	}
}

// CopyLots returns a deep copy of the given lots. Simulations mutate the copy
// so the caller's committed lot state is never touched.
func CopyLots(lots []*Lot) []*Lot {
	copied := make([]*Lot, len(lots))
	for i, lot := range lots {
		l := *lot
		copied[i] = &l
	}
	return copied
}
