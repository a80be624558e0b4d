package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxlot"
	"github.com/etnz/taxlot/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	amount   float64
	price    float64
	currency string
	method   string
	account  string
	date     string
	lots     string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "previews the tax impact of a sale" }
func (*simulateCmd) Usage() string {
	return `tlc simulate -amount <amount> -price <price> [-method <method>] [-lots <lotid:amount,...>] [-account <account>] [-d <date>]

  Previews the disposition a sale would produce against the current lots,
  without modifying any file.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to sell")
	f.Float64Var(&c.price, "price", 0, "Unit price of the sale")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the unit price")
	f.StringVar(&c.method, "method", taxlot.FIFO.String(), "Cost basis method (fifo, lifo, hifo, specific)")
	f.StringVar(&c.account, "account", "", "Account to sell from. Empty draws from all accounts.")
	f.StringVar(&c.date, "d", taxlot.Today().String(), "Date of the simulated sale.")
	f.StringVar(&c.lots, "lots", "", "Manual lot designation as lotid:amount,lotid:amount. Implies -method specific.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "-amount must be positive")
		return subcommands.ExitUsageError
	}

	method, err := taxlot.ParseMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := taxlot.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	selections, err := parseSelections(c.lots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(selections) > 0 {
		method = taxlot.SpecificID
	}

	result, err := replay(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	d, warnings := taxlot.Simulate(taxlot.Simulation{
		Amount:     taxlot.Q(c.amount),
		UnitPrice:  taxlot.M(c.price, c.currency),
		Method:     method,
		Selections: selections,
		Account:    c.account,
		Date:       on,
	}, result.Lots)
	logWarnings(warnings)
	if d == nil {
		fmt.Fprintln(os.Stderr, "No open lots: nothing to sell.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DispositionMarkdown(d))
	return subcommands.ExitSuccess
}
