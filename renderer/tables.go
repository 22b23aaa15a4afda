package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/assetexpl"
)

// IndexListMarkdown renders the selection menu: every index of a language in
// menu order, with its risk level and horizon.
func IndexListMarkdown(labels assetexpl.Labels, profiles []assetexpl.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", labels.SelectIndex)
	fmt.Fprintf(&b, "| Key | %s | %s | %s |\n", labels.SidebarTitle, labels.Metrics.Risk, labels.Metrics.Horizon)
	fmt.Fprintln(&b, "|:---|:---|:---|:---|")
	for _, p := range profiles {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			p.Key,
			p.Name,
			p.Risk.Level,
			p.Risk.Horizon,
		)
	}
	return b.String()
}

// ChartMarkdown renders c as a table with text bars, rows in reading order.
func ChartMarkdown(c assetexpl.Chart, width int) string {
	top := c.Series.Max()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintln(&b, "| | % | |")
	fmt.Fprintln(&b, "|:---|---:|:---|")
	for _, p := range rows(c.Series) {
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", p.Category, p.Label, textBar(p.Percent, top, width))
	}
	return b.String()
}

// ExposureMarkdown renders how amount splits across the categories of a
// breakdown.
func ExposureMarkdown(title string, amount assetexpl.Money, allocs []assetexpl.Allocation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", title, amount)
	fmt.Fprintln(&b, "| | % | Amount |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, a := range allocs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Category, a.Percent.Label(), a.Amount)
	}
	return b.String()
}
