package assetexpl

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

// mustCatalog loads the bundled catalog or stops the test.
func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("bundled catalog is invalid: %v", err)
	}
	return c
}

// comp is a helper for test to create a composition from category/percent pairs.
func comp(pairs ...any) Composition {
	c := make(Composition, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c = append(c, Share{Category: pairs[i].(string), Percent: Percent(pairs[i+1].(float64))})
	}
	return c
}

// categories returns the category names of a series in order.
func categories(s Series) []string {
	names := make([]string, 0, len(s.Points))
	for _, p := range s.Points {
		names = append(names, p.Category)
	}
	return names
}

const testLabels = `labels:
  language_name: "Test"
  app_title: "title"
  app_subtitle: "subtitle"
  sidebar_title: "settings"
  language_label: "language"
  select_index: "select"
  risk_return: "risk/return"
  disclaimer: "educational only"
  tabs:
    description: "description"
    statistics: "statistics"
    strategy: "strategy"
  metrics_labels:
    risk: "risk"
    volatility: "volatility"
    horizon: "horizon"
    returns: "returns"
  chart_titles:
    geographic: "geographic"
    sectors: "sectors"
`

// testIndex returns the YAML of a minimal valid index, sectors can be overridden.
func testIndex(key, sectors string) string {
	if sectors == "" {
		sectors = "{Technology: 60.0, Finance: 40.0}"
	}
	return fmt.Sprintf(`  - key: %s
    name: "Index %s"
    description: |
      ### About %s

      Some **text**.
    risk_profile:
      risk_level: "High"
      volatility: "20%%"
      time_horizon: "10 years"
      return_potential: "8%%"
    composition:
      geographic: {USA: 100.0}
      sectors: %s
    strategy: |
      ### Strategy

      - buy
`, key, key, key, sectors)
}

// testContent builds a content file for lang with the given indices.
func testContent(lang string, indices ...string) string {
	return "language: " + lang + "\n" + testLabels + "indices:\n" + strings.Join(indices, "")
}

// testFS builds a catalog file system with the same indices in every language.
func testFS(indices ...string) fstest.MapFS {
	return fstest.MapFS{
		"it.yaml": {Data: []byte(testContent("it", indices...))},
		"en.yaml": {Data: []byte(testContent("en", indices...))},
	}
}
