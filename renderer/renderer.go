// Package renderer turns resolved catalog views into markdown and SVG for
// display. It owns every visual choice; the data and its order come from the
// assetexpl package.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/assetexpl"
)

//go:embed templates/*.md
var templates embed.FS

// Tab is one section of the index page.
type Tab string

const (
	DescriptionTab Tab = "description"
	StatisticsTab  Tab = "statistics"
	StrategyTab    Tab = "strategy"
)

// ParseTab parses a tab name. "all" and "" select every tab and return nil.
func ParseTab(s string) ([]Tab, error) {
	switch s {
	case "", "all":
		return nil, nil
	case string(DescriptionTab), string(StatisticsTab), string(StrategyTab):
		return []Tab{Tab(s)}, nil
	}
	return nil, fmt.Errorf("unknown tab %q, want description, statistics, strategy or all", s)
}

// ViewRenderOptions holds configuration for rendering a view.
type ViewRenderOptions struct {
	Tabs       []Tab // Sections to render, all of them if empty.
	SkipTitle  bool  // Do not render the application title and subtitle.
	SkipFooter bool  // Do not render the disclaimer.
	BarWidth   int   // Width of the text bars in charts, 20 if zero.
}

// viewData is what the view templates receive.
type viewData struct {
	assetexpl.View
	Metrics []assetexpl.Metric
	Charts  []assetexpl.Chart
	Show    map[string]bool // tab name to visibility
}

// RenderView renders the index page of v to a markdown string: title,
// description, statistics (risk/return metrics and composition charts),
// strategy and disclaimer.
func RenderView(v assetexpl.View, opts ViewRenderOptions) (string, error) {
	charts, err := v.Charts()
	if err != nil {
		return "", err
	}
	show := map[string]bool{}
	if len(opts.Tabs) == 0 {
		opts.Tabs = []Tab{DescriptionTab, StatisticsTab, StrategyTab}
	}
	for _, t := range opts.Tabs {
		show[string(t)] = true
	}

	partials := map[string]string{
		"view_title":       "view_title.md",
		"view_description": "view_description.md",
		"view_statistics":  "view_statistics.md",
		"view_strategy":    "view_strategy.md",
		"view_footer":      "view_footer.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipTitle {
		partials["view_title"] = ""
	}
	if opts.SkipFooter {
		partials["view_footer"] = ""
	}

	width := opts.BarWidth
	if width <= 0 {
		width = 20
	}
	funcs := template.FuncMap{
		"bar":  func(p, top assetexpl.Percent) string { return textBar(p, top, width) },
		"rows": rows,
	}

	data := viewData{View: v, Metrics: v.Metrics(), Charts: charts, Show: show}
	return renderTemplate("view", "view.md", partials, funcs, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return "", fmt.Errorf("error reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return "", fmt.Errorf("error reading partial template %q: %w", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
