package fundcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinWithdrawalUnits is the smallest number of units a withdrawal form accepts.
var MinWithdrawalUnits = Q(decimal.New(1, -4))

// Investment is a user's current position in a portfolio.
type Investment struct {
	UnitsHeld        Quantity `json:"unitsHeld"`
	TotalInvested    Money    `json:"totalInvested"`
	AverageNav       Money    `json:"averageNav"`
	CurrentValue     Money    `json:"currentValue"`
	TotalChargesPaid Money    `json:"totalChargesPaid"`
	TotalReturns     Money    `json:"totalReturns"`
	ReturnPercentage Percent  `json:"returnPercentage"`
	AumPercentage    Percent  `json:"aumPercentage"`
}

// NAV returns the current NAV of the position, CurrentValue / UnitsHeld.
// It fails with ErrUndefinedNAV when the position holds no units.
func (inv Investment) NAV() (Money, error) {
	if !inv.UnitsHeld.IsPositive() {
		return Money{}, fmt.Errorf("%s %s: %w", FieldUnitsHeld, inv.UnitsHeld, ErrUndefinedNAV)
	}
	return inv.CurrentValue.Div(inv.UnitsHeld), nil
}

// WithdrawalImpact is the advisory outcome of a withdrawal.
type WithdrawalImpact struct {
	UnitsToWithdraw      Quantity `json:"unitsToWithdraw"`
	NavValue             Money    `json:"navValue"`
	WithdrawalAmount     Money    `json:"withdrawalAmount"`
	RemainingUnits       Quantity `json:"remainingUnits"`
	RemainingValue       Money    `json:"remainingValue"`
	WithdrawalPercentage Percent  `json:"withdrawalPercentage"`
}

// PreviewWithdrawal computes the effect of redeeming units from inv.
//
// The computation is literal: units outside [MinWithdrawalUnits, UnitsHeld]
// are not clamped, so over-withdrawing yields negative remaining units. Use
// ValidateWithdrawalUnits to enforce the range first.
func PreviewWithdrawal(units Quantity, inv Investment) (*WithdrawalImpact, error) {
	nav, err := inv.NAV()
	if err != nil {
		return nil, err
	}
	remaining := inv.UnitsHeld.Sub(units)
	share := units.Div(inv.UnitsHeld).value.Mul(hundred)
	return &WithdrawalImpact{
		UnitsToWithdraw:      units,
		NavValue:             nav,
		WithdrawalAmount:     nav.Mul(units),
		RemainingUnits:       remaining,
		RemainingValue:       nav.Mul(remaining),
		WithdrawalPercentage: Percent(share.InexactFloat64()),
	}, nil
}

// IsFull reports whether the withdrawal redeems the whole position.
func (w *WithdrawalImpact) IsFull() bool { return w.RemainingUnits.IsZero() }

// ValidateWithdrawalUnits checks that units is within
// [MinWithdrawalUnits, UnitsHeld].
func ValidateWithdrawalUnits(units Quantity, inv Investment) error {
	var errs ValidationErrors
	if units.LessThan(MinWithdrawalUnits) {
		errs.add(FieldUnitsToWithdraw, "must be at least "+MinWithdrawalUnits.String())
	}
	if units.GreaterThan(inv.UnitsHeld) {
		errs.add(FieldUnitsToWithdraw, "must not exceed units held "+inv.UnitsHeld.String())
	}
	return errs.err()
}

// UnitsForPercentage converts a share of the position, 100 being all of it,
// into a number of units.
func UnitsForPercentage(inv Investment, pct Percent) Quantity {
	if pct.Equal(100) {
		return inv.UnitsHeld
	}
	share := decimal.NewFromFloat(float64(pct)).Div(hundred)
	return Quantity{value: inv.UnitsHeld.value.Mul(share)}
}
