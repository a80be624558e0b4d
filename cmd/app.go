// Package cmd implements the CLI application to manage a tax-lot ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&calcCmd{},
	&gainsCmd{},
	&holdingCmd{},
	&simulateCmd{},
	&recordCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var transactionsFile = flag.String("transactions-file", "transactions.jsonl", "Path to the transactions file (JSONL format)")
var electionsFile = flag.String("elections-file", "elections.jsonl", "Path to the recorded lot elections file (JSONL format)")

// DecodeTransactionsFile loads the app transactions file. A missing file is
// an empty history, not an error.
func DecodeTransactionsFile() ([]taxlot.Transaction, error) {
	f, err := os.Open(*transactionsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, transactions file does not exist, starting from an empty history")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return taxlot.DecodeTransactions(f)
}

// DecodeElectionsFile loads the recorded lot elections. A missing file simply
// means no elections were ever recorded.
func DecodeElectionsFile() ([]*taxlot.Disposition, error) {
	f, err := os.Open(*electionsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return taxlot.DecodeDispositions(f)
}

// replay loads the full history and replays it under the given method.
func replay(method taxlot.Method) (taxlot.CalculationResult, error) {
	txs, err := DecodeTransactionsFile()
	if err != nil {
		return taxlot.CalculationResult{}, fmt.Errorf("could not load transactions: %w", err)
	}
	elections, err := DecodeElectionsFile()
	if err != nil {
		return taxlot.CalculationResult{}, fmt.Errorf("could not load elections: %w", err)
	}
	result := taxlot.Calculate(txs, method, elections)
	logWarnings(result.Warnings)
	return result, nil
}

// logWarnings reports non-fatal replay warnings on stderr.
func logWarnings(warnings []string) {
	for _, w := range warnings {
		log.Println("warning:", w)
	}
}

// appendTransaction appends a single transaction to the app transactions file.
func appendTransaction(tx taxlot.Transaction) subcommands.ExitStatus {
	filename := *transactionsFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transactions file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := taxlot.EncodeTransactions(f, []taxlot.Transaction{tx}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to transactions file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// appendElection appends a recorded disposition to the app elections file.
func appendElection(d *taxlot.Disposition) subcommands.ExitStatus {
	filename := *electionsFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening elections file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := taxlot.EncodeDispositions(f, []*taxlot.Disposition{d}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to elections file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully recorded election in %s\n", filename)
	return subcommands.ExitSuccess
}
