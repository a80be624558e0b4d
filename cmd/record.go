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

// recordCmd holds the flags for the 'record' subcommand.
type recordCmd struct {
	txID string
	lots string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "records a specific lot election for a sale" }
func (*recordCmd) Usage() string {
	return `tlc record -tx <transaction-id> -lots <lotid:amount,...>

  Designates the exact lots a recorded sale or donation must consume, and
  persists that election so every future replay honors it.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txID, "tx", "", "Id of the sell or donation transaction")
	f.StringVar(&c.lots, "lots", "", "Lot designation as lotid:amount,lotid:amount")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.txID == "" || c.lots == "" {
		fmt.Fprintln(os.Stderr, "-tx and -lots are both required")
		return subcommands.ExitUsageError
	}
	selections, err := parseSelections(c.lots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := DecodeTransactionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	elections, err := DecodeElectionsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading elections: %v\n", err)
		return subcommands.ExitFailure
	}

	// The election is validated by replaying the history with it: the
	// designated lots must exist and cover the sale at its place in time.
	election := &taxlot.Disposition{TransactionID: c.txID, Method: taxlot.SpecificID}
	for _, sel := range selections {
		election.Consumptions = append(election.Consumptions, taxlot.LotConsumption{
			LotID:  sel.LotID,
			Amount: sel.Amount,
		})
	}
	result := taxlot.Calculate(txs, taxlot.FIFO, append(elections, election))
	logWarnings(result.Warnings)

	var recorded *taxlot.Disposition
	for _, d := range result.Dispositions {
		if d.TransactionID == c.txID {
			recorded = d
			break
		}
	}
	if recorded == nil {
		fmt.Fprintf(os.Stderr, "Error: no disposition found for transaction %q\n", c.txID)
		return subcommands.ExitFailure
	}
	if recorded.Method != taxlot.SpecificID {
		fmt.Fprintln(os.Stderr, "Error: the designated lots do not resolve against the current history")
		return subcommands.ExitFailure
	}

	// Persist the fully computed disposition, not the bare designation: the
	// stored consumptions double as a legacy match if lot ids ever change.
	if status := appendElection(recorded); status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.DispositionMarkdown(recorded))
	return subcommands.ExitSuccess
}
