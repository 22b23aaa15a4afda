package assetexpl

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	var d decimal.Decimal
	switch v := any(value).(type) {
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case decimal.Decimal:
		d = v
	}
	return Money{value: d, cur: currency}
}

// ParseMoney parses an amount like "10000" or "2500.50" in currency.
func ParseMoney(amount, currency string) (Money, error) {
	if money.GetCurrency(currency) == nil {
		return Money{}, fmt.Errorf("unknown currency %q", currency)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	m := Money{value: d, cur: currency}
	if fraction := int32(m.currency().Fraction); !d.Equal(d.Round(fraction)) {
		return Money{}, fmt.Errorf("amount %q has more than %d decimals for %s", amount, fraction, currency)
	}
	return m, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// minorUnits returns m in minor units, rounded to the currency fraction.
func (m Money) minorUnits() decimal.Decimal {
	return m.value.Shift(int32(m.currency().Fraction)).Round(0)
}

// minor returns m as a go-money value in minor units. The caller checks that
// minorUnits fits an int64.
func (m Money) minor() *money.Money {
	return money.New(m.minorUnits().IntPart(), m.cur)
}

func fromMinor(mm *money.Money) Money {
	cur := mm.Currency()
	return Money{value: decimal.New(mm.Amount(), -int32(cur.Fraction)), cur: cur.Code}
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
