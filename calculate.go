package taxlot

import "fmt"

// CalculationResult is the sole output of a full replay. It is purely
// derived from the inputs and safe to discard and recompute at any time.
type CalculationResult struct {
	Lots         []*Lot         `json:"lots"`
	Dispositions []*Disposition `json:"dispositions"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// electionKey is the legacy lookup key for elections recorded before
// originating transaction ids were stored.
func electionKey(on Date, amount Quantity) string {
	return on.String() + "|" + amount.String()
}

// electionIndex resolves a recorded election for a transaction, primarily by
// the originating transaction id, falling back to a date+amount key for
// legacy records. Only dispositions recorded under SpecificID are elections.
type electionIndex struct {
	byTxID  map[string]*Disposition
	byEvent map[string]*Disposition
}

func indexElections(elections []*Disposition) electionIndex {
	idx := electionIndex{
		byTxID:  make(map[string]*Disposition),
		byEvent: make(map[string]*Disposition),
	}
	for _, e := range elections {
		if e == nil || e.Method != SpecificID {
			continue
		}
		if e.TransactionID != "" {
			idx.byTxID[e.TransactionID] = e
		} else {
			idx.byEvent[electionKey(e.Date, e.Amount)] = e
		}
	}
	return idx
}

func (idx electionIndex) lookup(tx Transaction) *Disposition {
	if e, ok := idx.byTxID[tx.ID]; ok {
		return e
	}
	return idx.byEvent[electionKey(tx.Date, tx.Amount)]
}

// Calculate replays the full transaction history in chronological order and
// returns the resulting lot set, dispositions and warnings.
//
// Buys create lots; sells and donations consume them under the given method,
// unless a recorded election designates specific lots for that event;
// transfers move nothing at this layer and are ignored. The replay is
// idempotent: identical transactions and elections yield identical lot ids
// and disposition values (disposition ids excepted, they are regenerated per
// replay).
func Calculate(transactions []Transaction, method Method, elections []*Disposition) CalculationResult {
	var result CalculationResult
	elected := indexElections(elections)

	for _, tx := range sortedByDate(transactions) {
		switch tx.Kind {
		case TxBuy:
			result.Lots = append(result.Lots, newLot(tx))

		case TxSell, TxDonation:
			effective := method
			var selections []LotSelection
			if recorded := elected.lookup(tx); recorded != nil {
				if sel, ok := resolveElection(recorded, result.Lots); ok {
					effective = SpecificID
					selections = sel
				} else {
					result.Warnings = append(result.Warnings,
						fmt.Sprintf("%s: recorded lot election no longer resolves, falling back to %s", tx.Date, method))
				}
			}
			d, warnings := processDisposition(tx, result.Lots, effective, selections)
			result.Warnings = append(result.Warnings, warnings...)
			if d == nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: no lots available to dispose %s %s", tx.Date, tx.Amount, tx.Kind))
				continue
			}
			result.Dispositions = append(result.Dispositions, d)

		case TxTransferIn, TxTransferOut:
			// Non-taxable movements between accounts: no lot effect here.
		}
	}
	return result
}
