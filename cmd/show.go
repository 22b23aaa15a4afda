package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetexpl"
	"github.com/etnz/assetexpl/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	tab       string
	skipTitle bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the page of an index" }
func (*showCmd) Usage() string {
	return `assetexpl show [-tab <tab>] [<index>]

  Displays the description, statistics and strategy of an index in the
  selected language. Without <index>, the first index of the menu is shown.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tab, "tab", "all", "Section to display: description, statistics, strategy or all.")
	f.BoolVar(&c.skipTitle, "no-title", false, "Do not display the application title.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tabs, err := renderer.ParseTab(c.tab)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, status := resolve(f.Args())
	if status != subcommands.ExitSuccess {
		return status
	}

	md, err := renderer.RenderView(v, renderer.ViewRenderOptions{Tabs: tabs, SkipTitle: c.skipTitle})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %q: %v\n", v.Selection.Index, err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// resolve opens the catalog and resolves the view for the optional index
// argument. Errors are reported on stderr.
func resolve(args []string) (assetexpl.View, subcommands.ExitStatus) {
	cat, err := OpenCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return assetexpl.View{}, subcommands.ExitFailure
	}
	sel, err := selection(cat, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return assetexpl.View{}, subcommands.ExitUsageError
	}
	v, err := cat.Resolve(sel)
	if errors.Is(err, assetexpl.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v. Use 'assetexpl list -keys' to see the available indices.\n", err)
		return assetexpl.View{}, subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return assetexpl.View{}, subcommands.ExitFailure
	}
	return v, subcommands.ExitSuccess
}
