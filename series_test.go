package assetexpl

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"
)

var msciWorldGeographic = comp(
	"USA", 70.5,
	"Japan", 6.2,
	"UK", 4.1,
	"France", 3.4,
	"Canada", 3.2,
	"Switzerland", 2.8,
	"Germany", 2.5,
	"Australia", 2.1,
	"Others", 5.2,
)

func TestRankedSeriesMSCIWorld(t *testing.T) {
	s, err := BuildRankedSeries(msciWorldGeographic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Kind != Ranked {
		t.Errorf("Kind = %q, want %q", s.Kind, Ranked)
	}
	want := []string{"Australia", "Germany", "Switzerland", "Canada", "France", "UK", "Others", "Japan", "USA"}
	if got := categories(s); !slices.Equal(got, want) {
		t.Fatalf("ranked order = %v, want %v", got, want)
	}
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if first.Category != "Australia" || first.Label != "2.1%" {
		t.Errorf("first point = %+v, want Australia (2.1%%)", first)
	}
	if last.Category != "USA" || last.Label != "70.5%" {
		t.Errorf("last point = %+v, want USA (70.5%%)", last)
	}
}

func TestProportionalSeriesKeepsOrder(t *testing.T) {
	s, err := BuildProportionalSeries(msciWorldGeographic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := categories(s), msciWorldGeographic.Categories(); !slices.Equal(got, want) {
		t.Errorf("proportional order = %v, want %v", got, want)
	}
	for i, p := range s.Points {
		if p.Percent != msciWorldGeographic[i].Percent {
			t.Errorf("point %d percent = %v, want %v", i, p.Percent, msciWorldGeographic[i].Percent)
		}
	}
}

func TestSeriesSP500(t *testing.T) {
	input := comp("USA", 100.0)
	want := []Point{{Category: "USA", Percent: 100, Label: "100.0%"}}

	prop, err := BuildProportionalSeries(input)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(prop.Points, want) {
		t.Errorf("proportional = %v, want %v", prop.Points, want)
	}
	ranked, err := BuildRankedSeries(input)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ranked.Points, want) {
		t.Errorf("ranked = %v, want %v", ranked.Points, want)
	}
}

func TestRankedSeriesIsStable(t *testing.T) {
	input := comp("B", 3.0, "A", 1.0, "C", 3.0, "D", 1.0, "E", 2.0)
	s, err := BuildRankedSeries(input)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "D", "E", "B", "C"}
	if got := categories(s); !slices.Equal(got, want) {
		t.Errorf("ranked order = %v, want %v", got, want)
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i-1].Percent > s.Points[i].Percent {
			t.Errorf("points %d and %d are not ascending", i-1, i)
		}
	}
}

func TestSeriesAreIdempotent(t *testing.T) {
	n, err := Normalize(msciWorldGeographic)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := n.Ranked(), n.Ranked(); !reflect.DeepEqual(a, b) {
		t.Errorf("Ranked() is not idempotent: %v != %v", a, b)
	}
	if a, b := n.Proportional(), n.Proportional(); !reflect.DeepEqual(a, b) {
		t.Errorf("Proportional() is not idempotent: %v != %v", a, b)
	}
	// ranking must not reorder the normalized composition
	n.Ranked()
	if got := categories(n.Proportional()); !slices.Equal(got, msciWorldGeographic.Categories()) {
		t.Errorf("Ranked() changed the composition order: %v", got)
	}
}

func TestSeriesPropagateNormalizeError(t *testing.T) {
	bad := comp("USA", 70.0, "Japan", math.NaN())
	_, want := Normalize(bad)

	for name, build := range map[string]func(Composition) (Series, error){
		"proportional": BuildProportionalSeries,
		"ranked":       BuildRankedSeries,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := build(bad)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalidComposition) || err.Error() != want.Error() {
				t.Errorf("got error %v, want %v", err, want)
			}
		})
	}
}

func TestParseSeriesKind(t *testing.T) {
	testCases := []struct {
		input     string
		want      SeriesKind
		expectErr bool
	}{
		{"proportional", Proportional, false},
		{"pie", Proportional, false},
		{"ranked", Ranked, false},
		{"bar", Ranked, false},
		{"line", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseSeriesKind(tc.input)
		if (err != nil) != tc.expectErr || got != tc.want {
			t.Errorf("ParseSeriesKind(%q) = %q, %v", tc.input, got, err)
		}
	}
}

func TestSeriesMarshalJSON(t *testing.T) {
	s, err := BuildRankedSeries(comp("USA", 70.5, "Japan", 6.2))
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"kind":"ranked","points":[{"category":"Japan","percent":6.2,"label":"6.2%"},{"category":"USA","percent":70.5,"label":"70.5%"}]}`
	if string(got) != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if m := s.Max(); m != 70.5 {
		t.Errorf("Max() = %v, want 70.5", m)
	}
}
