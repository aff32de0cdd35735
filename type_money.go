package fundcalc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// Money with no currency is "weak": it adopts the currency of whatever it is
// combined with. Backend records usually carry bare numbers, so decoded
// amounts start weak and pick up the portfolio currency on first use.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates money from any supported numeric type.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal string into a money value.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the currency formatted value, rounded to the currency
// fraction.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the exact amount without currency decoration.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) MulRate(r Rate) Money            { return Money{value: m.value.Mul(r.value), cur: m.cur} }
func (m Money) MulDays(days int) Money          { return Money{value: m.value.Mul(decimal.NewFromInt(int64(days))), cur: m.cur} }
func (m Money) DivCount(n int) Money            { return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity       { return Quantity{value: m.value.Div(n.value)} }

// WithCurrency returns a copy of m in currency cur, if m has none yet.
func (m Money) WithCurrency(cur string) Money {
	if m.cur == "" {
		m.cur = cur
	}
	return m
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Max returns the greater of m and n.
func (m Money) Max(n Money) Money {
	if n.value.GreaterThan(m.value) {
		return Money{value: n.value, cur: cur(m, n)}
	}
	return Money{value: m.value, cur: cur(m, n)}
}

// Min returns the lesser of m and n.
func (m Money) Min(n Money) Money {
	if n.value.LessThan(m.value) {
		return Money{value: n.value, cur: cur(m, n)}
	}
	return Money{value: m.value, cur: cur(m, n)}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat is for display and tolerance checks only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes weak money as a bare number, and currency money as an
// object, so that backend records round trip unchanged.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.cur == "" {
		return jsonNumber(m.value), nil
	}
	var w jsonObjectWriter
	w.Append("currency", m.cur)
	w.Append("amount", json.RawMessage(jsonNumber(m.value)))
	return w.MarshalJSON()
}

// UnmarshalJSON accepts a bare number, a quoted number, or a
// {"currency","amount"} object.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Currency string          `json:"currency"`
			Amount   decimal.Decimal `json:"amount"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("invalid money object: %w", err)
		}
		m.value, m.cur = obj.Amount, obj.Currency
		return nil
	}
	m.cur = ""
	return m.value.UnmarshalJSON(data)
}
