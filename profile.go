package assetexpl

import (
	"fmt"
	"slices"
)

// Breakdown names one of the two composition maps of a profile.
type Breakdown string

const (
	Geographic Breakdown = "geographic"
	Sectors    Breakdown = "sectors"
)

// Breakdowns returns the composition kinds in display order.
func Breakdowns() []Breakdown { return []Breakdown{Geographic, Sectors} }

// ParseBreakdown parses "geographic" or "sectors".
func ParseBreakdown(s string) (Breakdown, error) {
	switch b := Breakdown(s); b {
	case Geographic, Sectors:
		return b, nil
	}
	return "", &NotFoundError{Kind: "breakdown", Value: s}
}

// Compositions holds the geographic and sector breakdowns of an index.
type Compositions struct {
	Geographic Composition `yaml:"geographic"`
	Sectors    Composition `yaml:"sectors"`
}

// Get returns the composition for b.
func (c Compositions) Get(b Breakdown) (Composition, error) {
	switch b {
	case Geographic:
		return c.Geographic, nil
	case Sectors:
		return c.Sectors, nil
	}
	return nil, &NotFoundError{Kind: "breakdown", Value: string(b)}
}

// RiskProfile is the authored risk/return summary. Values are display text,
// not computed figures.
type RiskProfile struct {
	Level      string `yaml:"risk_level"`
	Volatility string `yaml:"volatility"`
	Horizon    string `yaml:"time_horizon"`
	Returns    string `yaml:"return_potential"`
}

// Metric is a label/value pair for the metrics display.
type Metric struct {
	Label string
	Value string
}

// Metrics pairs the risk profile with the metric labels, in the fixed order
// risk level, volatility, time horizon, return potential.
func (r RiskProfile) Metrics(l MetricLabels) []Metric {
	return []Metric{
		{l.Risk, r.Level},
		{l.Volatility, r.Volatility},
		{l.Horizon, r.Horizon},
		{l.Returns, r.Returns},
	}
}

// Profile is the authored record of one index in one language.
type Profile struct {
	Key         string       `yaml:"key"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"` // markdown
	Risk        RiskProfile  `yaml:"risk_profile"`
	Composition Compositions `yaml:"composition"`
	Strategy    string       `yaml:"strategy"` // markdown
}

// clone returns a copy of p that shares no slice with p.
func (p Profile) clone() Profile {
	p.Composition.Geographic = slices.Clone(p.Composition.Geographic)
	p.Composition.Sectors = slices.Clone(p.Composition.Sectors)
	return p
}

// validate checks the profile content. Errors name the offending field.
func (p Profile) validate() error {
	if p.Key == "" {
		return fmt.Errorf("empty index key")
	}
	if p.Name == "" {
		return fmt.Errorf("index %q: empty name", p.Key)
	}
	for _, f := range []struct{ name, value string }{
		{"risk_level", p.Risk.Level},
		{"volatility", p.Risk.Volatility},
		{"time_horizon", p.Risk.Horizon},
		{"return_potential", p.Risk.Returns},
	} {
		if f.value == "" {
			return fmt.Errorf("index %q: empty risk_profile.%s", p.Key, f.name)
		}
	}
	if _, err := Outline(p.Description); err != nil {
		return fmt.Errorf("index %q: description: %w", p.Key, err)
	}
	if _, err := Outline(p.Strategy); err != nil {
		return fmt.Errorf("index %q: strategy: %w", p.Key, err)
	}
	for _, b := range Breakdowns() {
		c, err := p.Composition.Get(b)
		if err != nil {
			return fmt.Errorf("index %q: %w", p.Key, err)
		}
		if len(c) == 0 {
			return fmt.Errorf("index %q: empty %s composition", p.Key, b)
		}
		if _, err := Normalize(c); err != nil {
			if ice, ok := err.(*InvalidCompositionError); ok {
				ice.Breakdown = string(b)
			}
			return fmt.Errorf("index %q: %w", p.Key, err)
		}
	}
	return nil
}
