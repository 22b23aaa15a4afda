package assetexpl

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Allocation is the part of an invested amount that falls in one category.
type Allocation struct {
	Category string
	Percent  Percent
	Amount   Money
}

// Exposure splits amount across the categories of c in composition order.
//
// Weights are taken relative to their sum, so a composition that does not add
// up to exactly 100 still distributes the whole amount. The amount is rounded
// to the minor unit of its currency, and rounding remainders go to the first
// categories, so the allocated amounts add up to that rounded amount. This is
// an illustration of the composition, not a computed figure.
func Exposure(c Composition, amount Money) ([]Allocation, error) {
	n, err := Normalize(c)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}

	shares := n.Shares()
	ratios := make([]int, 0, len(shares))
	total := 0
	for _, s := range shares {
		// one decimal of precision, as authored
		r := int(s.Percent.Decimal().Shift(1).Round(0).IntPart())
		ratios = append(ratios, r)
		total += r
	}
	if total == 0 {
		return nil, errors.New("composition has no weight to allocate")
	}

	// Allocate multiplies the minor units by each ratio in an int64.
	limit := decimal.NewFromInt(math.MaxInt64).Div(decimal.NewFromInt(int64(total))).Floor()
	if amount.minorUnits().GreaterThan(limit) {
		return nil, fmt.Errorf("amount %s %s is too large to allocate", amount.Decimal(), amount.Currency())
	}

	parts, err := amount.minor().Allocate(ratios...)
	if err != nil {
		return nil, fmt.Errorf("could not allocate %s: %w", amount, err)
	}

	allocations := make([]Allocation, 0, len(shares))
	for i, s := range shares {
		allocations = append(allocations, Allocation{Category: s.Category, Percent: s.Percent, Amount: fromMinor(parts[i])})
	}
	return allocations, nil
}
