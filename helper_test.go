package fundcalc

import (
	"testing"

	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

var epsilon = decimal.New(1, -9)

// assertNear fails the test if got and want differ by more than epsilon.
func assertNear(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(epsilon) {
		t.Errorf("%s = %s, want %s (±%s)", name, got, want, epsilon)
	}
}
