package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/assetexpl"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// validateCmd holds the flags for the 'validate' subcommand.
type validateCmd struct {
	tolerance string
	watch     bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the catalog content" }
func (*validateCmd) Usage() string {
	return `assetexpl [-catalog <dir>] validate [-tolerance <points>]

  Loads and validates the catalog: labels, index profiles, markdown text
  blocks, compositions and index keys across languages.

  With -tolerance, every composition must also sum to 100 within the given
  number of percentage points.

  With -watch, the content files of the -catalog directory are validated
  again each time they change, until interrupted.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tolerance, "tolerance", "", "Maximum distance of composition sums to 100, in percentage points. No sum check if empty.")
	f.BoolVar(&c.watch, "watch", false, "Validate again each time a content file of the -catalog directory changes.")
}

func (c *validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var tolerance decimal.Decimal
	if c.tolerance != "" {
		var err error
		tolerance, err = decimal.NewFromString(c.tolerance)
		if err != nil || tolerance.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: invalid tolerance %q\n", c.tolerance)
			return subcommands.ExitUsageError
		}
	}

	if !c.watch {
		return c.validate(tolerance)
	}
	if *catalogDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -watch needs a -catalog directory")
		return subcommands.ExitUsageError
	}
	c.validate(tolerance)
	err := watchContent(ctx, *catalogDir, 300*time.Millisecond, func() {
		fmt.Fprintf(out, "\n%s\n", time.Now().Format(time.TimeOnly))
		c.validate(tolerance)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// validate loads the catalog and checks the composition sums within
// tolerance, reporting every failure.
func (c *validateCmd) validate(tolerance decimal.Decimal) subcommands.ExitStatus {
	cat, err := OpenCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	failures := 0
	for _, lang := range assetexpl.Languages() {
		profiles, err := cat.Profiles(lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(out, "%s: %d indices\n", lang, len(profiles))
		if c.tolerance == "" {
			continue
		}
		for _, p := range profiles {
			for _, b := range assetexpl.Breakdowns() {
				comp, err := p.Composition.Get(b)
				if err == nil {
					err = assetexpl.CheckSum(comp, tolerance)
				}
				if err != nil {
					fmt.Fprintf(out, "  %s %s: %v\n", p.Key, b, err)
					failures++
				}
			}
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d compositions do not sum to 100 within %s points\n", failures, tolerance)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, "Catalog is valid.")
	return subcommands.ExitSuccess
}
