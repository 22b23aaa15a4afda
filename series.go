package assetexpl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// SeriesKind selects how a composition is laid out for a chart.
type SeriesKind string

const (
	// Proportional keeps the authoring order, for area based charts (pie).
	Proportional SeriesKind = "proportional"
	// Ranked sorts by ascending percentage, for length based charts (bar).
	Ranked SeriesKind = "ranked"
)

// ParseSeriesKind parses "proportional" (alias "pie") or "ranked" (alias "bar").
func ParseSeriesKind(s string) (SeriesKind, error) {
	switch s {
	case "proportional", "pie":
		return Proportional, nil
	case "ranked", "bar":
		return Ranked, nil
	}
	return "", fmt.Errorf("unknown series kind %q, want proportional or ranked", s)
}

// Point is one category of a chart series.
type Point struct {
	Category string
	Percent  Percent
	Label    string // Percent rounded to one decimal, e.g. "23.5%"
}

// Series is chart-ready data. The renderer owns every visual aspect; a series
// only fixes the categories, their values and their order.
type Series struct {
	Kind   SeriesKind
	Points []Point
}

func newPoint(s Share) Point {
	return Point{Category: s.Category, Percent: s.Percent, Label: s.Percent.Label()}
}

// Proportional returns the shares in composition order.
func (n Normalized) Proportional() Series {
	points := make([]Point, 0, len(n.shares))
	for _, s := range n.shares {
		points = append(points, newPoint(s))
	}
	return Series{Kind: Proportional, Points: points}
}

// Ranked returns the shares sorted by ascending percentage. Equal percentages
// keep their composition order.
func (n Normalized) Ranked() Series {
	shares := slices.Clone(n.shares)
	slices.SortStableFunc(shares, func(a, b Share) int {
		return cmp.Compare(a.Percent, b.Percent)
	})
	points := make([]Point, 0, len(shares))
	for _, s := range shares {
		points = append(points, newPoint(s))
	}
	return Series{Kind: Ranked, Points: points}
}

// Series returns the series of the given kind.
func (n Normalized) Series(kind SeriesKind) (Series, error) {
	switch kind {
	case Proportional:
		return n.Proportional(), nil
	case Ranked:
		return n.Ranked(), nil
	}
	return Series{}, fmt.Errorf("unknown series kind %q", kind)
}

// BuildProportionalSeries normalizes c and returns its proportional series.
// Normalization errors are returned unchanged.
func BuildProportionalSeries(c Composition) (Series, error) {
	n, err := Normalize(c)
	if err != nil {
		return Series{}, err
	}
	return n.Proportional(), nil
}

// BuildRankedSeries normalizes c and returns its ranked series.
// Normalization errors are returned unchanged.
func BuildRankedSeries(c Composition) (Series, error) {
	n, err := Normalize(c)
	if err != nil {
		return Series{}, err
	}
	return n.Ranked(), nil
}

// Max returns the largest percentage of the series, 0 if empty.
func (s Series) Max() Percent {
	var m Percent
	for _, p := range s.Points {
		m = max(m, p.Percent)
	}
	return m
}

// MarshalJSON encodes the series as {"kind":..., "points":[{"category":..., "percent":..., "label":...}]}.
func (s Series) MarshalJSON() ([]byte, error) {
	type point struct {
		Category string  `json:"category"`
		Percent  float64 `json:"percent"`
		Label    string  `json:"label"`
	}
	points := make([]point, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, point{p.Category, float64(p.Percent), p.Label})
	}
	var w jsonObjectWriter
	w.Append("kind", s.Kind)
	w.Append("points", points)
	return w.MarshalJSON()
}

var _ json.Marshaler = Series{}
