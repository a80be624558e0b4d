package taxlot

// USD is a helper for tests to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// buyTx creates a buy transaction; total is the fee-inclusive cost.
func buyTx(id, on string, amount, total float64, account string) Transaction {
	return Transaction{
		ID:         id,
		Date:       MustParse(on),
		Kind:       TxBuy,
		Amount:     Q(amount),
		UnitPrice:  USD(total / amount),
		TotalValue: USD(total),
		Account:    account,
	}
}

// sellTx creates a sell transaction; the fee-inclusive total is price*amount.
func sellTx(id, on string, amount, unitPrice float64, account string) Transaction {
	return Transaction{
		ID:         id,
		Date:       MustParse(on),
		Kind:       TxSell,
		Amount:     Q(amount),
		UnitPrice:  USD(unitPrice),
		TotalValue: USD(unitPrice * amount),
		Account:    account,
	}
}

// donationTx creates a donation transaction where unitPrice is the fair
// market value per unit at the time of the gift.
func donationTx(id, on string, amount, fmv float64, account string) Transaction {
	tx := sellTx(id, on, amount, fmv, account)
	tx.Kind = TxDonation
	return tx
}
