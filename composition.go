package assetexpl

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Share is the weight of one category in a composition.
type Share struct {
	Category string
	Percent  Percent
}

// Composition is an ordered category to percentage breakdown.
//
// The order is the authoring order, largest category first and "Others" last
// in the bundled content. Percentages are display values: they are not
// required to sum to 100.
type Composition []Share

// Sum returns the exact sum of the percentages.
func (c Composition) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range c {
		if s.Percent.IsFinite() {
			sum = sum.Add(s.Percent.Decimal())
		}
	}
	return sum
}

// Get returns the percentage of category.
func (c Composition) Get(category string) (Percent, bool) {
	for _, s := range c {
		if s.Category == category {
			return s.Percent, true
		}
	}
	return 0, false
}

// Categories returns the category names in order.
func (c Composition) Categories() []string {
	names := make([]string, 0, len(c))
	for _, s := range c {
		names = append(names, s.Category)
	}
	return names
}

// UnmarshalYAML decodes a YAML mapping while keeping the order of its keys.
// Repeated keys are kept so that Normalize can report them.
func (c *Composition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: composition must be a mapping of category to percentage", value.Line)
	}
	shares := make(Composition, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		var pct float64
		if err := v.Decode(&pct); err != nil {
			return fmt.Errorf("line %d: percentage of %q: %w", v.Line, k.Value, err)
		}
		shares = append(shares, Share{Category: k.Value, Percent: Percent(pct)})
	}
	*c = shares
	return nil
}

// MarshalJSON encodes the composition as a JSON object in composition order.
func (c Composition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, s := range c {
		w.Append(s.Category, float64(s.Percent))
	}
	return w.MarshalJSON()
}

// Normalized is a composition that went through Normalize. Series can only be
// built from a Normalized value.
type Normalized struct {
	shares []Share
}

// Normalize validates c and returns it ready for chart construction.
//
// It fails with an *InvalidCompositionError if a category is empty or
// repeated, or if a percentage is negative, NaN or infinite. The order of c
// is preserved and the sum of percentages is not checked (see CheckSum).
func Normalize(c Composition) (Normalized, error) {
	seen := make(map[string]bool, len(c))
	for _, s := range c {
		switch {
		case s.Category == "":
			return Normalized{}, &InvalidCompositionError{Reason: "empty category name"}
		case seen[s.Category]:
			return Normalized{}, &InvalidCompositionError{Category: s.Category, Reason: "duplicate category"}
		case !s.Percent.IsFinite():
			return Normalized{}, &InvalidCompositionError{Category: s.Category, Reason: fmt.Sprintf("percentage %v is not finite", float64(s.Percent))}
		case s.Percent < 0:
			return Normalized{}, &InvalidCompositionError{Category: s.Category, Reason: fmt.Sprintf("negative percentage %v", float64(s.Percent))}
		}
		seen[s.Category] = true
	}
	return Normalized{shares: slices.Clone(c)}, nil
}

// Shares returns a copy of the normalized shares in composition order.
func (n Normalized) Shares() []Share { return slices.Clone(n.shares) }

// CheckSum fails if the percentages of c do not add up to 100 within
// tolerance percentage points. It is a stricter content rule that callers may
// opt into; the catalog itself does not require it.
func CheckSum(c Composition, tolerance decimal.Decimal) error {
	sum := c.Sum()
	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(tolerance) {
		return &InvalidCompositionError{Reason: fmt.Sprintf("percentages sum to %s, want 100 ± %s", sum.String(), tolerance.String())}
	}
	return nil
}
