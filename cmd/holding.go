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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	method string
	date   string
	json   bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "open lots per account" }
func (*holdingCmd) Usage() string {
	return `tlc holding [-method <method>] [-d <date>] [-json]

  Displays the open lots grouped per account, with their remaining
  amounts and remaining cost basis.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", taxlot.FIFO.String(), "Cost basis method (fifo, lifo, hifo, specific)")
	f.StringVar(&c.date, "d", taxlot.Today().String(), "Report date.")
	f.BoolVar(&c.json, "json", false, "Emit open lots as JSONL instead of a report")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result, err := replay(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := taxlot.EncodeLots(os.Stdout, result.Lots); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HoldingMarkdown(taxlot.NewHoldingReport(on, result.Lots)))
	return subcommands.ExitSuccess
}
