package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetexpl/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	keys bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the indices of the catalog" }
func (*listCmd) Usage() string {
	return `assetexpl list [-keys]

  Lists the indices in selection menu order, with their risk level and horizon.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.keys, "keys", false, "Print only the index keys, one per line.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := OpenCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	lang, err := Language(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	profiles, err := cat.Profiles(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.keys {
		for _, p := range profiles {
			fmt.Fprintln(out, p.Key)
		}
		return subcommands.ExitSuccess
	}

	labels, err := cat.Labels(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IndexListMarkdown(labels, profiles))
	return subcommands.ExitSuccess
}
