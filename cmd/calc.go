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

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	method string
	json   bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "replays the full history and lists all dispositions" }
func (*calcCmd) Usage() string {
	return `tlc calc [-method <method>] [-json]

  Replays every transaction in chronological order and displays the
  resulting dispositions with their cost basis and gains.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", taxlot.FIFO.String(), "Cost basis method (fifo, lifo, hifo, specific)")
	f.BoolVar(&c.json, "json", false, "Emit dispositions as JSONL instead of a report")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := taxlot.ParseMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := replay(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := taxlot.EncodeDispositions(os.Stdout, result.Dispositions); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.DispositionsMarkdown(result.Dispositions))
	return subcommands.ExitSuccess
}
