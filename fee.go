package fundcalc

import (
	"fmt"

	"github.com/etnz/fundcalc/date"
)

// PortfolioFee is an active, time-boxed management fee allocation of a
// portfolio. It is created and amortized by the backend; the calculators
// only read it.
type PortfolioFee struct {
	TotalFeeAmount     Money     `json:"totalFeeAmount"`
	RemainingFeeAmount Money     `json:"remainingFeeAmount"`
	FromDate           date.Date `json:"fromDate"`
	ToDate             date.Date `json:"toDate"`
	TotalDays          int       `json:"totalDays"`
	RemainingDays      int       `json:"remainingDays"`
	// DailyFeeAmount is TotalFeeAmount / TotalDays as amortized by the
	// backend. It is authoritative and never recomputed here.
	DailyFeeAmount Money `json:"dailyFeeAmount"`
	IsActive       bool  `json:"isActive"`
}

// NewPortfolioFee derives the fee record of a total fee amortized daily over
// [from, to), as seen on asOf.
//
// TotalDays is the number of days from from to to, RemainingDays the number
// of days left from asOf, floored at 0 and capped at TotalDays.
func NewPortfolioFee(total Money, from, to, asOf date.Date) (PortfolioFee, error) {
	totalDays := from.DaysUntil(to)
	if totalDays <= 0 {
		return PortfolioFee{}, fmt.Errorf("fee window %s to %s is empty", from, to)
	}
	if total.IsNegative() {
		return PortfolioFee{}, fmt.Errorf("fee amount %s is negative", total.Plain())
	}
	remaining := max(0, min(totalDays, asOf.DaysUntil(to)))
	daily := total.DivCount(totalDays)
	return PortfolioFee{
		TotalFeeAmount:     total,
		RemainingFeeAmount: daily.MulDays(remaining),
		FromDate:           from,
		ToDate:             to,
		TotalDays:          totalDays,
		RemainingDays:      remaining,
		DailyFeeAmount:     daily,
		IsActive:           remaining > 0,
	}, nil
}

// Cancel returns an inactive copy of the fee.
func (f PortfolioFee) Cancel() PortfolioFee {
	f.IsActive = false
	return f
}

// Charges reports whether the fee is something an investor can be charged
// for. Absent fees and fees with a non-positive total never charge.
func (f *PortfolioFee) Charges() bool {
	return f != nil && f.TotalFeeAmount.IsPositive()
}

// PeriodTotal is what all investors pay together for the remaining days,
// DailyFeeAmount × RemainingDays, whatever the number of investors.
func (f PortfolioFee) PeriodTotal() Money {
	return f.DailyFeeAmount.MulDays(f.RemainingDays)
}
