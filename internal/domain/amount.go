package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const amountScale = 2

// Amount is a monetary value with exactly two fractional digits.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(amountScale)}
}

// ParseAmount parses s as a fixed point decimal. Values carrying more than two
// fractional digits are rejected rather than rounded.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}

	if d.Exponent() < -amountScale && !d.Equal(d.Truncate(amountScale)) {
		return Amount{}, fmt.Errorf("amount %q has more than %d fractional digits", s, amountScale)
	}

	return NewAmount(d), nil
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string {
	return a.StringFixed(amountScale)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
