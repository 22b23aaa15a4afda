package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetexpl"
	"github.com/etnz/assetexpl/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	breakdown string
	kind      string
	format    string
	output    string
	width     int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "output the composition chart of an index" }
func (*chartCmd) Usage() string {
	return `assetexpl chart [-b geographic|sectors] [-kind proportional|ranked] [-format md|json|svg] [-o <file>] [<index>]

  Outputs a composition of an index as a chart.

  By default the geographic composition is proportional (a pie) and the sector
  composition is ranked (a bar chart), as on the index page.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.breakdown, "b", string(assetexpl.Geographic), "Composition to chart: geographic or sectors.")
	f.StringVar(&c.kind, "kind", "", "Series kind: proportional (pie) or ranked (bar). Defaults to the page layout.")
	f.StringVar(&c.format, "format", "md", "Output format: md, json or svg.")
	f.StringVar(&c.output, "o", "", "Write the chart to this file instead of stdout.")
	f.IntVar(&c.width, "w", 30, "Width of the text bars in md format.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := assetexpl.ParseBreakdown(c.breakdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.format != "md" && c.format != "json" && c.format != "svg" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want md, json or svg\n", c.format)
		return subcommands.ExitUsageError
	}

	v, status := resolve(f.Args())
	if status != subcommands.ExitSuccess {
		return status
	}

	chart, err := c.chart(v, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var content string
	switch c.format {
	case "json":
		data, err := json.MarshalIndent(chart.Series, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding series: %v\n", err)
			return subcommands.ExitFailure
		}
		content = string(data) + "\n"
	case "svg":
		content = renderer.ChartSVG(chart, renderer.DefaultChartConfig()) + "\n"
	default:
		content = renderer.ChartMarkdown(chart, c.width)
	}

	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart to %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(out, "Chart written to %s\n", c.output)
		return subcommands.ExitSuccess
	}
	if c.format == "md" {
		printMarkdown(content)
	} else {
		fmt.Fprint(out, content)
	}
	return subcommands.ExitSuccess
}

// chart returns the chart of breakdown b, in the page layout unless a kind is
// set.
func (c *chartCmd) chart(v assetexpl.View, b assetexpl.Breakdown) (assetexpl.Chart, error) {
	if c.kind == "" {
		charts, err := v.Charts()
		if err != nil {
			return assetexpl.Chart{}, err
		}
		for _, ch := range charts {
			if ch.Breakdown == b {
				return ch, nil
			}
		}
	}
	kind, err := assetexpl.ParseSeriesKind(c.kind)
	if err != nil {
		return assetexpl.Chart{}, err
	}
	s, err := v.Series(b, kind)
	if err != nil {
		return assetexpl.Chart{}, err
	}
	return assetexpl.Chart{Breakdown: b, Title: v.Labels.Charts.Get(b), Series: s}, nil
}
