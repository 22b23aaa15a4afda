package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/assetexpl"
)

// ChartConfig holds rendering parameters for SVG charts.
type ChartConfig struct {
	Width      int     // SVG width in pixels (default: 640)
	Height     int     // SVG height in pixels (default: 400)
	MarginTop  int     // room for the title (default: 40)
	MarginLeft int     // room for bar labels (default: 160)
	Hole       float64 // donut hole as a fraction of the radius (default: 0.4)
	BgColor    string  // background color (default: "#ffffff")
	TextColor  string  // label color (default: "#333333")
	FontSize   int     // label font size (default: 12)
	Title      string
}

// DefaultChartConfig returns the configuration used by the command line.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:      640,
		Height:     400,
		MarginTop:  40,
		MarginLeft: 160,
		Hole:       0.4,
		BgColor:    "#ffffff",
		TextColor:  "#333333",
		FontSize:   12,
	}
}

// pieColors is the qualitative palette of proportional charts.
var pieColors = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// barColors is a sequential scale, low to high, for ranked charts.
var barColors = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// ChartSVG draws c as a donut when its series is proportional and as
// horizontal bars when it is ranked.
func ChartSVG(c assetexpl.Chart, cfg ChartConfig) string {
	if cfg.Title == "" {
		cfg.Title = c.Title
	}
	if c.Series.Kind == assetexpl.Ranked {
		return BarSVG(c.Series, cfg)
	}
	return PieSVG(c.Series, cfg)
}

// PieSVG draws s as a donut with a legend. Slices follow the series order
// clockwise from the top, sized relative to the series total.
func PieSVG(s assetexpl.Series, cfg ChartConfig) string {
	if cfg.Width == 0 {
		cfg = withTitle(DefaultChartConfig(), cfg.Title)
	}
	var total float64
	for _, p := range s.Points {
		total += float64(p.Percent)
	}
	if len(s.Points) == 0 || total <= 0 {
		return emptySVG(cfg, "No data")
	}

	plotH := float64(cfg.Height - cfg.MarginTop)
	radius := plotH/2 - 10
	inner := radius * cfg.Hole
	cx := radius + 20
	cy := float64(cfg.MarginTop) + plotH/2

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" font-size="16" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	angle := -math.Pi / 2
	for i, p := range s.Points {
		color := pieColors[i%len(pieColors)]
		sweep := float64(p.Percent) / total * 2 * math.Pi
		switch {
		case sweep <= 0:
		case sweep >= 2*math.Pi-1e-9:
			// A full turn has no distinct arc end points.
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"><title>%s</title></circle>`,
				cx, cy, (radius+inner)/2, color, radius-inner, escapeXML(p.Category+" "+p.Label)))
		default:
			sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="1"><title>%s</title></path>`,
				donutSlice(cx, cy, radius, inner, angle, angle+sweep), color, cfg.BgColor, escapeXML(p.Category+" "+p.Label)))
		}
		angle += sweep

		// Legend
		lx := int(cx+radius) + 40
		ly := cfg.MarginTop + 10 + i*(cfg.FontSize+8)
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			lx, ly, cfg.FontSize, cfg.FontSize, color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s">%s %s</text>`,
			lx+cfg.FontSize+6, ly+cfg.FontSize-1, cfg.FontSize, cfg.TextColor, escapeXML(p.Category), p.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// donutSlice returns the path of the ring sector between angles a0 and a1.
func donutSlice(cx, cy, outer, inner, a0, a1 float64) string {
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	at := func(r, a float64) (float64, float64) { return cx + r*math.Cos(a), cy + r*math.Sin(a) }
	x0, y0 := at(outer, a0)
	x1, y1 := at(outer, a1)
	x2, y2 := at(inner, a1)
	x3, y3 := at(inner, a0)
	return fmt.Sprintf("M%.1f,%.1f A%.1f,%.1f 0 %d,1 %.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d,0 %.1f,%.1f Z",
		x0, y0, outer, outer, large, x1, y1, x2, y2, inner, inner, large, x3, y3)
}

// BarSVG draws s as horizontal bars. The first point is the bottom bar, so a
// ranked series shows its largest category on top. Bars are colored on a
// sequential scale by value.
func BarSVG(s assetexpl.Series, cfg ChartConfig) string {
	if cfg.Width == 0 {
		cfg = withTitle(DefaultChartConfig(), cfg.Title)
	}
	top := float64(s.Max())
	if len(s.Points) == 0 || top <= 0 {
		return emptySVG(cfg, "No data")
	}

	px, py := cfg.MarginLeft, cfg.MarginTop
	pw := cfg.Width - cfg.MarginLeft - 70
	ph := cfg.Height - cfg.MarginTop - 20
	n := len(s.Points)
	barH := min(float64(ph)/float64(n)*0.7, 30)
	gap := (float64(ph) - barH*float64(n)) / float64(n+1)

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" font-size="16" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	for i, p := range s.Points {
		by := float64(py+ph) - float64(i+1)*(barH+gap)
		value := max(float64(p.Percent), 0)
		bw := value / top * float64(pw)
		color := barColors[int(math.Round(value/top*float64(len(barColors)-1)))]

		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="2"/>`,
			px, by, bw, barH, color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%s</text>`,
			px-5, by+barH/2+4, cfg.FontSize, cfg.TextColor, escapeXML(p.Category)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s">%s</text>`,
			float64(px)+bw+5, by+barH/2+4, cfg.FontSize, cfg.TextColor, p.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func withTitle(cfg ChartConfig, title string) ChartConfig {
	cfg.Title = title
	return cfg
}

func svgHeader(cfg ChartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg ChartConfig, msg string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#f5f5f5"/><text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
