package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/assetexpl"
)

func series(kind assetexpl.SeriesKind, pairs ...any) assetexpl.Series {
	s := assetexpl.Series{Kind: kind}
	for i := 0; i+1 < len(pairs); i += 2 {
		p := assetexpl.Percent(pairs[i+1].(float64))
		s.Points = append(s.Points, assetexpl.Point{Category: pairs[i].(string), Percent: p, Label: p.Label()})
	}
	return s
}

func TestPieSVG(t *testing.T) {
	s := series(assetexpl.Proportional, "USA", 70.5, "Japan", 6.2, "Others", 23.3)
	got := PieSVG(s, ChartConfig{Title: "Geo & co"})

	if !strings.HasPrefix(got, "<svg ") || !strings.HasSuffix(got, "</svg>") {
		t.Fatalf("PieSVG() is not an svg document: %s", got)
	}
	if n := strings.Count(got, "<path "); n != 3 {
		t.Errorf("PieSVG() has %d slices, want 3", n)
	}
	for _, want := range []string{"Geo &amp; co", "USA 70.5%", "Japan 6.2%", "Others 23.3%"} {
		if !strings.Contains(got, want) {
			t.Errorf("PieSVG() does not contain %q", want)
		}
	}
	// slices follow the series order
	if strings.Index(got, "USA") > strings.Index(got, "Japan") {
		t.Errorf("PieSVG() does not keep the series order")
	}
}

func TestPieSVG_SingleSlice(t *testing.T) {
	got := PieSVG(series(assetexpl.Proportional, "USA", 100.0), ChartConfig{})
	if strings.Contains(got, "<path ") {
		t.Errorf("PieSVG() draws a full turn as an arc: %s", got)
	}
	if !strings.Contains(got, "<circle ") {
		t.Errorf("PieSVG() does not draw a full turn as a ring: %s", got)
	}
}

func TestPieSVG_Empty(t *testing.T) {
	for _, s := range []assetexpl.Series{
		{Kind: assetexpl.Proportional},
		series(assetexpl.Proportional, "USA", 0.0),
	} {
		if got := PieSVG(s, ChartConfig{}); !strings.Contains(got, "No data") {
			t.Errorf("PieSVG(%v) = %s, want the empty chart", s, got)
		}
	}
}

func TestBarSVG(t *testing.T) {
	s := series(assetexpl.Ranked, "Energy", 4.9, "Finance", 14.8, "Technology", 23.5)
	got := BarSVG(s, ChartConfig{})

	if n := strings.Count(got, `rx="2"`); n != 3 {
		t.Errorf("BarSVG() has %d bars, want 3", n)
	}
	// the largest value gets the top color of the scale
	if !strings.Contains(got, barColors[len(barColors)-1]) {
		t.Errorf("BarSVG() does not use the top color for the largest bar")
	}
	for _, want := range []string{"Energy", "4.9%", "Technology", "23.5%"} {
		if !strings.Contains(got, want) {
			t.Errorf("BarSVG() does not contain %q", want)
		}
	}
}

func TestChartSVG(t *testing.T) {
	pie := assetexpl.Chart{Title: "pie", Series: series(assetexpl.Proportional, "A", 60.0, "B", 40.0)}
	if got := ChartSVG(pie, ChartConfig{}); !strings.Contains(got, "<path ") {
		t.Errorf("ChartSVG(proportional) is not a donut: %s", got)
	}
	bar := assetexpl.Chart{Title: "bar", Series: series(assetexpl.Ranked, "B", 40.0, "A", 60.0)}
	if got := ChartSVG(bar, ChartConfig{}); strings.Contains(got, "<path ") || !strings.Contains(got, `rx="2"`) {
		t.Errorf("ChartSVG(ranked) is not a bar chart: %s", got)
	}
}
