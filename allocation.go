package fundcalc

import (
	"fmt"
)

// Investors describes the investors already in a portfolio. Count is
// authoritative; IDs, when provided, tag the credit records and must have
// Count entries.
type Investors struct {
	Count int
	IDs   []string
}

// NewInvestors returns Investors identified by ids.
func NewInvestors(ids ...string) Investors {
	return Investors{Count: len(ids), IDs: ids}
}

// Anonymous returns count investors with no known identity.
func Anonymous(count int) Investors { return Investors{Count: count} }

// id returns the identifier of the i-th investor, or "" when unknown.
func (in Investors) id(i int) string {
	if i < len(in.IDs) {
		return in.IDs[i]
	}
	return ""
}

// UserFeeImpact is the credit owed to an existing investor when a newcomer
// joins during an active fee period.
type UserFeeImpact struct {
	UserID       string
	CreditAmount Money
	CreditUnits  Quantity
}

// MarshalJSON writes the impact with the backend's field names.
func (u UserFeeImpact) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("userId", u.UserID)
	w.Append("creditAmount", u.CreditAmount)
	w.Append("creditUnits", u.CreditUnits)
	return w.MarshalJSON()
}

// FeeImpactPreview is the advisory outcome of an investment.
type FeeImpactPreview struct {
	InvestmentAmount    Money
	NavValue            Money
	FeeAmount           Money
	NetInvestment       Money
	UnitsAllocated      Quantity
	ActiveFee           *PortfolioFee
	CurrentUserCount    int
	ExistingUsersImpact []UserFeeImpact
	// Warnings flags upstream invariant violations that are reported rather
	// than corrected, like a fee larger than the investment.
	Warnings ValidationErrors
}

// RequiresConfirmation reports whether the investor must explicitly confirm
// before submitting: whenever a fee is charged or existing investors are
// credited.
func (p *FeeImpactPreview) RequiresConfirmation() bool {
	return p.FeeAmount.IsPositive() || len(p.ExistingUsersImpact) > 0
}

// TotalCredits sums the credits issued to existing investors.
func (p *FeeImpactPreview) TotalCredits() Money {
	total := Money{cur: p.FeeAmount.cur}
	for _, u := range p.ExistingUsersImpact {
		total = total.Add(u.CreditAmount)
	}
	return total
}

// MarshalJSON writes the preview with the backend's field names.
func (p *FeeImpactPreview) MarshalJSON() ([]byte, error) {
	impacts := p.ExistingUsersImpact
	if impacts == nil {
		impacts = []UserFeeImpact{}
	}
	var w jsonObjectWriter
	w.Append("feeAmount", p.FeeAmount)
	w.Append("netInvestment", p.NetInvestment)
	w.Append("unitsAllocated", p.UnitsAllocated)
	w.Append("activeFee", p.ActiveFee)
	w.Append("currentUserCount", p.CurrentUserCount)
	w.Append("existingUsersImpact", impacts)
	w.Optional("warnings", p.Warnings)
	w.Append("requiresConfirmation", p.RequiresConfirmation())
	return w.MarshalJSON()
}

// PreviewInvestment computes the fee impact of investing amount at nav in a
// portfolio that already has existing investors and, maybe, an active fee.
//
// When fee is active, the newcomer pays the per-head daily fee after joining
// for the remaining days, and every existing investor is credited the
// difference between their per-head share before and after the join. The
// total collected over the remaining days stays DailyFeeAmount ×
// RemainingDays. Credits assume every existing investor pays the same
// per-head share, investors who joined mid-period at another rate are not
// told apart.
//
// A non-positive amount returns no preview and ValidationErrors. A
// non-positive nav returns no preview and an error matching ErrUndefinedNAV.
func PreviewInvestment(amount, nav Money, fee *PortfolioFee, existing Investors) (*FeeImpactPreview, error) {
	var errs ValidationErrors
	if !amount.IsPositive() {
		errs.add(FieldInvestmentAmount, ReasonPositive)
	}
	if existing.Count < 0 {
		errs.add(FieldExistingInvestorCount, "must not be negative")
	}
	if len(existing.IDs) > 0 && len(existing.IDs) != existing.Count {
		errs.add(FieldExistingInvestorCount, fmt.Sprintf("%d investor IDs given for %d investors", len(existing.IDs), existing.Count))
	}
	if fee.Charges() {
		if c := fee.DailyFeeAmount.cur; c != "" && amount.cur != "" && c != amount.cur {
			errs.add(FieldActiveFee, fmt.Sprintf("currency %s does not match investment currency %s", c, amount.cur))
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if !nav.IsPositive() {
		return nil, fmt.Errorf("%s %s: %w", FieldNavValue, nav.Plain(), ErrUndefinedNAV)
	}

	p := &FeeImpactPreview{
		InvestmentAmount: amount,
		NavValue:         nav,
		FeeAmount:        Money{cur: amount.cur},
		ActiveFee:        fee,
		CurrentUserCount: existing.Count,
	}

	if fee.Charges() {
		usersAfter := existing.Count + 1
		dailyAfter := fee.DailyFeeAmount.DivCount(usersAfter)
		p.FeeAmount = dailyAfter.MulDays(fee.RemainingDays).WithCurrency(amount.cur)

		if existing.Count > 0 {
			dailyBefore := fee.DailyFeeAmount.DivCount(existing.Count)
			credit := dailyBefore.Sub(dailyAfter).MulDays(fee.RemainingDays).WithCurrency(amount.cur)
			if credit.IsPositive() {
				units := credit.DivPrice(nav)
				p.ExistingUsersImpact = make([]UserFeeImpact, existing.Count)
				for i := range p.ExistingUsersImpact {
					p.ExistingUsersImpact[i] = UserFeeImpact{
						UserID:       existing.id(i),
						CreditAmount: credit,
						CreditUnits:  units,
					}
				}
			}
		}
	}

	p.NetInvestment = amount.Sub(p.FeeAmount)
	if p.NetInvestment.IsNegative() {
		p.Warnings.add(FieldNetInvestment, fmt.Sprintf("fee %s exceeds investment %s", p.FeeAmount.Plain(), amount.Plain()))
	}
	p.UnitsAllocated = p.NetInvestment.DivPrice(nav)
	return p, nil
}
