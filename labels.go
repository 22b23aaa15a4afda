package assetexpl

import "fmt"

// TabLabels are the titles of the three page sections.
type TabLabels struct {
	Description string `yaml:"description"`
	Statistics  string `yaml:"statistics"`
	Strategy    string `yaml:"strategy"`
}

// MetricLabels are the titles of the four risk/return metrics.
type MetricLabels struct {
	Risk       string `yaml:"risk"`
	Volatility string `yaml:"volatility"`
	Horizon    string `yaml:"horizon"`
	Returns    string `yaml:"returns"`
}

// ChartLabels are the titles of the composition charts.
type ChartLabels struct {
	Geographic string `yaml:"geographic"`
	Sectors    string `yaml:"sectors"`
}

// Get returns the chart title for b.
func (c ChartLabels) Get(b Breakdown) string {
	if b == Sectors {
		return c.Sectors
	}
	return c.Geographic
}

// Labels holds the UI strings of one language.
type Labels struct {
	LanguageName  string       `yaml:"language_name"` // how the language presents itself in a selector
	AppTitle      string       `yaml:"app_title"`
	AppSubtitle   string       `yaml:"app_subtitle"`
	SidebarTitle  string       `yaml:"sidebar_title"`
	LanguageLabel string       `yaml:"language_label"`
	SelectIndex   string       `yaml:"select_index"`
	RiskReturn    string       `yaml:"risk_return"`
	Disclaimer    string       `yaml:"disclaimer"`
	Tabs          TabLabels    `yaml:"tabs"`
	Metrics       MetricLabels `yaml:"metrics_labels"`
	Charts        ChartLabels  `yaml:"chart_titles"`
}

// entries lists every label with its dotted lookup key.
func (l Labels) entries() []struct{ key, value string } {
	return []struct{ key, value string }{
		{"language_name", l.LanguageName},
		{"app_title", l.AppTitle},
		{"app_subtitle", l.AppSubtitle},
		{"sidebar_title", l.SidebarTitle},
		{"language_label", l.LanguageLabel},
		{"select_index", l.SelectIndex},
		{"risk_return", l.RiskReturn},
		{"disclaimer", l.Disclaimer},
		{"tabs.description", l.Tabs.Description},
		{"tabs.statistics", l.Tabs.Statistics},
		{"tabs.strategy", l.Tabs.Strategy},
		{"metrics.risk", l.Metrics.Risk},
		{"metrics.volatility", l.Metrics.Volatility},
		{"metrics.horizon", l.Metrics.Horizon},
		{"metrics.returns", l.Metrics.Returns},
		{"charts.geographic", l.Charts.Geographic},
		{"charts.sectors", l.Charts.Sectors},
	}
}

// Lookup returns the label for a dotted key such as "metrics.risk" or
// "tabs.strategy".
func (l Labels) Lookup(key string) (string, error) {
	for _, e := range l.entries() {
		if e.key == key {
			return e.value, nil
		}
	}
	return "", &NotFoundError{Kind: "label", Value: key}
}

// validate fails on the first empty label.
func (l Labels) validate() error {
	for _, e := range l.entries() {
		if e.value == "" {
			return fmt.Errorf("empty label %q", e.key)
		}
	}
	return nil
}
