package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetexpl"
	"github.com/etnz/assetexpl/renderer"
	"github.com/google/subcommands"
)

// exposureCmd holds the flags for the 'exposure' subcommand.
type exposureCmd struct {
	amount    string
	currency  string
	breakdown string
}

func (*exposureCmd) Name() string { return "exposure" }
func (*exposureCmd) Synopsis() string {
	return "split an amount invested in an index across its composition"
}
func (*exposureCmd) Usage() string {
	return `assetexpl exposure -a <amount> [-c <currency>] [-b geographic|sectors] [<index>]

  Shows how an amount invested in an index would be spread across its
  countries or sectors. This illustrates the composition, it is not advice.
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "10000", "Amount invested.")
	f.StringVar(&c.currency, "c", "EUR", "Currency of the amount, an ISO 4217 code.")
	f.StringVar(&c.breakdown, "b", string(assetexpl.Geographic), "Composition: geographic or sectors.")
}

func (c *exposureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := assetexpl.ParseMoney(c.amount, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := assetexpl.ParseBreakdown(c.breakdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, status := resolve(f.Args())
	if status != subcommands.ExitSuccess {
		return status
	}

	comp, err := v.Profile.Composition.Get(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	allocs, err := assetexpl.Exposure(comp, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ExposureMarkdown(v.Profile.Name+", "+v.Labels.Charts.Get(b), amount, allocs))
	return subcommands.ExitSuccess
}
