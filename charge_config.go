package fundcalc

import "fmt"

// ChargeConfig is a named rule for computing one kind of transaction charge,
// in the shape the backend stores it.
//
// Exactly the parameters implied by CalculationMethod are populated, the
// others are blank.
type ChargeConfig struct {
	ChargeType              ChargeType        `json:"chargeType"`
	CalculationMethod       CalculationMethod `json:"calculationMethod"`
	ChargePercentage        Optional[Rate]    `json:"chargePercentage"`
	MinChargePerTransaction Optional[Money]   `json:"minChargePerTransaction"`
	MaxChargePerTransaction Optional[Money]   `json:"maxChargePerTransaction"`
	FixedChargeAmount       Optional[Money]   `json:"fixedChargeAmount"`
	AppliesToBuy            bool              `json:"appliesToBuy"`
	AppliesToSell           bool              `json:"appliesToSell"`
}

// Params returns the config parameters.
func (c ChargeConfig) Params() ChargeParams {
	return ChargeParams{
		Percentage: c.ChargePercentage,
		Min:        c.MinChargePerTransaction,
		Max:        c.MaxChargePerTransaction,
		Fixed:      c.FixedChargeAmount,
	}
}

// Method builds the fully specified calculation method of the config.
func (c ChargeConfig) Method() (ChargeMethod, error) {
	return c.Params().Build(c.CalculationMethod)
}

// Validate checks that the config carries exactly the parameter set implied
// by its method, with valid values.
func (c ChargeConfig) Validate() error {
	p := c.Params()
	errs := p.validate(c.CalculationMethod)
	if errs.Has(FieldCalculationMethod) {
		return errs
	}
	for _, f := range []Field{FieldChargePercentage, FieldMinChargePerTransaction, FieldMaxChargePerTransaction, FieldFixedChargeAmount} {
		if p.isSet(f) && !IsRequired(c.CalculationMethod, f) {
			errs.add(f, fmt.Sprintf("must be blank for %s", c.CalculationMethod))
		}
	}
	return errs.err()
}

// AppliesTo reports whether the charge applies to transactions on side.
func (c ChargeConfig) AppliesTo(side Side) bool {
	switch side {
	case Buy:
		return c.AppliesToBuy
	case Sell:
		return c.AppliesToSell
	}
	return false
}

// Preview computes the charge for a transaction of the given turnover.
func (c ChargeConfig) Preview(turnover Money) (Optional[Money], string, error) {
	return ComputeCharge(c.CalculationMethod, turnover, c.Params())
}

// NewChargeConfig creates a config from a fully specified method.
func NewChargeConfig(t ChargeType, m ChargeMethod, buy, sell bool) ChargeConfig {
	p := m.params()
	return ChargeConfig{
		ChargeType:              t,
		CalculationMethod:       m.Method(),
		ChargePercentage:        p.Percentage,
		MinChargePerTransaction: p.Min,
		MaxChargePerTransaction: p.Max,
		FixedChargeAmount:       p.Fixed,
		AppliesToBuy:            buy,
		AppliesToSell:           sell,
	}
}
