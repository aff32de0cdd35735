package fundcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display percentage, 100 meaning the whole.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

var hundred = decimal.NewFromInt(100)

// Rate is an exact fraction, 0.001 meaning 0.1%.
//
// Charge percentages are entered as percents in forms and stored as
// fractions by the backend; Rate keeps the stored form.
type Rate struct {
	value decimal.Decimal
}

// R creates a rate from a fraction.
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](fraction T) Rate {
	return Rate{value: newDecimal(fraction)}
}

// RateFromPercent converts a percent input (0.1 for 0.1%) into a Rate.
func RateFromPercent[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](percent T) Rate {
	return Rate{value: newDecimal(percent).Div(hundred)}
}

// ParsePercent parses a percent input string, "0.1" being 0.1%.
func ParsePercent(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Rate{value: d.Div(hundred)}, nil
}

func (r Rate) Equal(s Rate) bool { return r.value.Equal(s.value) }
func (r Rate) IsPositive() bool  { return r.value.IsPositive() }

// Fraction returns the stored fraction.
func (r Rate) Fraction() decimal.Decimal { return r.value }

// Percent returns the rate as an exact percent value, 0.001 giving 0.1.
func (r Rate) Percent() decimal.Decimal { return r.value.Mul(hundred) }

// String renders the rate as the percent the user typed, like "0.1%".
func (r Rate) String() string { return r.Percent().String() + "%" }

func (r Rate) MarshalJSON() ([]byte, error)     { return jsonNumber(r.value), nil }
func (r *Rate) UnmarshalJSON(data []byte) error { return r.value.UnmarshalJSON(data) }
