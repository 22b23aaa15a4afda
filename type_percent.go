package assetexpl

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage expressed in points, 23.5 means 23.5%.
type Percent float64

// IsFinite reports whether p is neither NaN nor infinite.
func (p Percent) IsFinite() bool {
	return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0)
}

// Decimal returns p as a decimal, exact to the authored digits.
func (p Percent) Decimal() decimal.Decimal { return decimal.NewFromFloat(float64(p)) }

// Label returns p rounded to one decimal place with a percent sign, e.g. "23.5%".
func (p Percent) Label() string {
	if !p.IsFinite() {
		// decimal cannot represent them
		return fmt.Sprintf("%v%%", float64(p))
	}
	return p.Decimal().StringFixed(1) + "%"
}

func (p Percent) String() string { return p.Label() }
