package taxlot

import "sort"

// TxKind is a typed string identifying the kind of a transaction record.
type TxKind string

// Transaction kinds produced by the ingestion layer.
const (
	TxBuy         TxKind = "buy"
	TxSell        TxKind = "sell"
	TxTransferIn  TxKind = "transfer-in"
	TxTransferOut TxKind = "transfer-out"
	TxDonation    TxKind = "donation"
)

// Transaction is one immutable record of the asset history, produced upstream
// by the ingestion layer. The engine trusts it: Amount is positive, the date
// is well formed, and TotalValue already folds in any fee (increased on buys,
// decreased on sells). The engine never mutates a Transaction.
type Transaction struct {
	ID         string   `json:"id"`
	Date       Date     `json:"date"`
	Kind       TxKind   `json:"kind"`
	Amount     Quantity `json:"amount"`
	UnitPrice  Money    `json:"unitPrice"`
	TotalValue Money    `json:"totalValue"`
	Account    string   `json:"account,omitempty"`
	SourceFee  Money    `json:"sourceFee,omitempty"` // informational only at this layer
}

// sortedByDate returns a copy of the transactions sorted ascending by date.
// The sort is stable: transactions on the same day keep their input order,
// which is part of the engine's determinism contract.
func sortedByDate(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
