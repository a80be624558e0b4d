package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	id       string
	kind     string
	date     string
	amount   float64
	price    float64
	total    float64
	currency string
	account  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "appends a transaction to the history" }
func (*addCmd) Usage() string {
	return `tlc add -kind <kind> -id <id> -amount <amount> [-price <price>] [-total <total>] [-account <account>] [-d <date>]

  Appends a buy, sell, donation or transfer to the transactions file.
  The total defaults to amount*price; pass it explicitly to include fees
  in the cost basis of a buy.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique transaction id")
	f.StringVar(&c.kind, "kind", "", "Transaction kind (buy, sell, donation, transfer-in, transfer-out)")
	f.StringVar(&c.date, "d", taxlot.Today().String(), "Date of the transaction.")
	f.Float64Var(&c.amount, "amount", 0, "Asset amount")
	f.Float64Var(&c.price, "price", 0, "Unit price")
	f.Float64Var(&c.total, "total", 0, "Fee-inclusive total value. Defaults to amount*price.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of price and total")
	f.StringVar(&c.account, "account", "", "Account (wallet or exchange) holding the asset")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required: lot identities derive from it")
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "-amount must be positive")
		return subcommands.ExitUsageError
	}
	kind := taxlot.TxKind(c.kind)
	switch kind {
	case taxlot.TxBuy, taxlot.TxSell, taxlot.TxDonation, taxlot.TxTransferIn, taxlot.TxTransferOut:
	default:
		fmt.Fprintf(os.Stderr, "unknown transaction kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	on, err := taxlot.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	total := c.total
	if total == 0 {
		total = c.amount * c.price
	}

	return appendTransaction(taxlot.Transaction{
		ID:         c.id,
		Date:       on,
		Kind:       kind,
		Amount:     taxlot.Q(c.amount),
		UnitPrice:  taxlot.M(c.price, c.currency),
		TotalValue: taxlot.M(total, c.currency),
		Account:    c.account,
	})
}
