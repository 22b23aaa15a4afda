package renderer

import (
	"math"
	"slices"
	"strings"

	"github.com/etnz/assetexpl"
)

// textBar draws p as a bar of full blocks, scaled so that top fills width.
// Partial cells use eighth blocks.
func textBar(p, top assetexpl.Percent, width int) string {
	if top <= 0 || !p.IsFinite() || p <= 0 {
		return strings.Repeat(" ", width)
	}
	eighths := int(math.Round(float64(p/top) * float64(width*8)))
	eighths = min(eighths, width*8)
	full, rest := eighths/8, eighths%8
	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	n := full
	if rest > 0 {
		b.WriteRune([]rune("▏▎▍▌▋▊▉")[rest-1])
		n++
	}
	b.WriteString(strings.Repeat(" ", width-n))
	return b.String()
}

// rows returns the points of s in reading order, top to bottom. A ranked
// series is drawn bottom-up, its largest bar on top.
func rows(s assetexpl.Series) []assetexpl.Point {
	points := slices.Clone(s.Points)
	if s.Kind == assetexpl.Ranked {
		slices.Reverse(points)
	}
	return points
}
