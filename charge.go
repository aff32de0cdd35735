package fundcalc

import "fmt"

// ChargeMethod is a fully specified charge calculation. Each implementation
// carries exactly the parameters its method needs, so a ChargeMethod value
// cannot miss a required field.
type ChargeMethod interface {
	// Method returns the calculation method implemented.
	Method() CalculationMethod
	// Charge computes the charge for a transaction of the given turnover.
	Charge(turnover Money) Money
	// Formula describes the computation for display.
	Formula() string
	params() ChargeParams
}

// ZeroBrokerage never charges.
type ZeroBrokerage struct{}

// PercentageOnly charges Rate × turnover.
type PercentageOnly struct {
	Rate Rate
}

// PercentageWithMin charges Rate × turnover, but at least Min.
type PercentageWithMin struct {
	Rate Rate
	Min  Money
}

// PercentageWithMax charges Rate × turnover, but at most Max.
type PercentageWithMax struct {
	Rate Rate
	Max  Money
}

// PercentageWithMinMax charges Rate × turnover clamped to [Min, Max].
type PercentageWithMinMax struct {
	Rate     Rate
	Min, Max Money
}

// FixedPerTransaction charges Amount once per transaction.
type FixedPerTransaction struct {
	Amount Money
}

// FixedPerScrip charges Amount per scrip. Charge returns the amount for a
// single scrip, the caller multiplies by the scrip count.
type FixedPerScrip struct {
	Amount Money
}

func (ZeroBrokerage) Method() CalculationMethod        { return ZeroBrokerageMethod }
func (PercentageOnly) Method() CalculationMethod       { return PercentageOnlyMethod }
func (PercentageWithMin) Method() CalculationMethod    { return PercentageWithMinMethod }
func (PercentageWithMax) Method() CalculationMethod    { return PercentageWithMaxMethod }
func (PercentageWithMinMax) Method() CalculationMethod { return PercentageWithMinMaxMethod }
func (FixedPerTransaction) Method() CalculationMethod  { return FixedPerTransactionMethod }
func (FixedPerScrip) Method() CalculationMethod        { return FixedPerScripMethod }

func (ZeroBrokerage) Charge(turnover Money) Money { return Money{cur: turnover.cur} }

func (c PercentageOnly) Charge(turnover Money) Money { return turnover.MulRate(c.Rate) }

func (c PercentageWithMin) Charge(turnover Money) Money {
	return turnover.MulRate(c.Rate).Max(c.Min)
}

func (c PercentageWithMax) Charge(turnover Money) Money {
	return turnover.MulRate(c.Rate).Min(c.Max)
}

func (c PercentageWithMinMax) Charge(turnover Money) Money {
	return turnover.MulRate(c.Rate).Max(c.Min).Min(c.Max)
}

func (c FixedPerTransaction) Charge(turnover Money) Money {
	return c.Amount.WithCurrency(turnover.cur)
}

func (c FixedPerScrip) Charge(turnover Money) Money {
	return c.Amount.WithCurrency(turnover.cur)
}

func (ZeroBrokerage) params() ChargeParams { return ChargeParams{} }
func (c PercentageOnly) params() ChargeParams {
	return ChargeParams{Percentage: Some(c.Rate)}
}
func (c PercentageWithMin) params() ChargeParams {
	return ChargeParams{Percentage: Some(c.Rate), Min: Some(c.Min)}
}
func (c PercentageWithMax) params() ChargeParams {
	return ChargeParams{Percentage: Some(c.Rate), Max: Some(c.Max)}
}
func (c PercentageWithMinMax) params() ChargeParams {
	return ChargeParams{Percentage: Some(c.Rate), Min: Some(c.Min), Max: Some(c.Max)}
}
func (c FixedPerTransaction) params() ChargeParams { return ChargeParams{Fixed: Some(c.Amount)} }
func (c FixedPerScrip) params() ChargeParams       { return ChargeParams{Fixed: Some(c.Amount)} }

func (c ZeroBrokerage) Formula() string        { return formula(c.Method(), c.params()) }
func (c PercentageOnly) Formula() string       { return formula(c.Method(), c.params()) }
func (c PercentageWithMin) Formula() string    { return formula(c.Method(), c.params()) }
func (c PercentageWithMax) Formula() string    { return formula(c.Method(), c.params()) }
func (c PercentageWithMinMax) Formula() string { return formula(c.Method(), c.params()) }
func (c FixedPerTransaction) Formula() string  { return formula(c.Method(), c.params()) }
func (c FixedPerScrip) Formula() string        { return formula(c.Method(), c.params()) }

// Placeholder is rendered in formulas for parameters not yet entered.
const Placeholder = "?"

// ChargeParams holds the, possibly partial, parameters of a charge.
type ChargeParams struct {
	Percentage Optional[Rate]
	Min        Optional[Money]
	Max        Optional[Money]
	Fixed      Optional[Money]
}

// RequiredFields returns the parameters a method needs. A field is mandatory
// if and only if it is listed here.
func RequiredFields(method CalculationMethod) []Field {
	switch method {
	case PercentageOnlyMethod:
		return []Field{FieldChargePercentage}
	case PercentageWithMinMethod:
		return []Field{FieldChargePercentage, FieldMinChargePerTransaction}
	case PercentageWithMaxMethod:
		return []Field{FieldChargePercentage, FieldMaxChargePerTransaction}
	case PercentageWithMinMaxMethod:
		return []Field{FieldChargePercentage, FieldMinChargePerTransaction, FieldMaxChargePerTransaction}
	case FixedPerTransactionMethod, FixedPerScripMethod:
		return []Field{FieldFixedChargeAmount}
	default:
		return nil
	}
}

// IsRequired reports whether field is mandatory for method.
func IsRequired(method CalculationMethod, field Field) bool {
	for _, f := range RequiredFields(method) {
		if f == field {
			return true
		}
	}
	return false
}

// isSet reports whether the parameter behind field is populated.
func (p ChargeParams) isSet(field Field) bool {
	switch field {
	case FieldChargePercentage:
		return p.Percentage.IsSet()
	case FieldMinChargePerTransaction:
		return p.Min.IsSet()
	case FieldMaxChargePerTransaction:
		return p.Max.IsSet()
	case FieldFixedChargeAmount:
		return p.Fixed.IsSet()
	}
	return false
}

// validate reports missing and out of range parameters for method. Fields
// that method does not use are ignored.
func (p ChargeParams) validate(method CalculationMethod) ValidationErrors {
	var errs ValidationErrors
	if method < ZeroBrokerageMethod || method > FixedPerScripMethod {
		errs.add(FieldCalculationMethod, fmt.Sprintf("unknown method %d", int(method)))
		return errs
	}
	for _, f := range RequiredFields(method) {
		if !p.isSet(f) {
			errs.add(f, ReasonRequired)
		}
	}
	if IsRequired(method, FieldChargePercentage) {
		if r, ok := p.Percentage.Get(); ok && (!r.IsPositive() || r.value.GreaterThan(newDecimal(1))) {
			errs.add(FieldChargePercentage, "must be greater than 0% and at most 100%")
		}
	}
	for _, f := range []Field{FieldMinChargePerTransaction, FieldMaxChargePerTransaction, FieldFixedChargeAmount} {
		if !IsRequired(method, f) {
			continue
		}
		if m, ok := p.money(f).Get(); ok && m.IsNegative() {
			errs.add(f, "must not be negative")
		}
	}
	if method == PercentageWithMinMaxMethod {
		min, minOK := p.Min.Get()
		max, maxOK := p.Max.Get()
		if minOK && maxOK && min.GreaterThan(max) {
			errs.add(FieldMinChargePerTransaction, "must not exceed "+string(FieldMaxChargePerTransaction))
		}
	}
	return errs
}

func (p ChargeParams) money(field Field) Optional[Money] {
	switch field {
	case FieldMinChargePerTransaction:
		return p.Min
	case FieldMaxChargePerTransaction:
		return p.Max
	case FieldFixedChargeAmount:
		return p.Fixed
	}
	return None[Money]()
}

// Build returns the fully specified method, or the ValidationErrors
// explaining why it cannot be built.
func (p ChargeParams) Build(method CalculationMethod) (ChargeMethod, error) {
	if errs := p.validate(method); len(errs) > 0 {
		return nil, errs
	}
	rate, _ := p.Percentage.Get()
	min, _ := p.Min.Get()
	max, _ := p.Max.Get()
	fixed, _ := p.Fixed.Get()
	switch method {
	case PercentageOnlyMethod:
		return PercentageOnly{Rate: rate}, nil
	case PercentageWithMinMethod:
		return PercentageWithMin{Rate: rate, Min: min}, nil
	case PercentageWithMaxMethod:
		return PercentageWithMax{Rate: rate, Max: max}, nil
	case PercentageWithMinMaxMethod:
		return PercentageWithMinMax{Rate: rate, Min: min, Max: max}, nil
	case FixedPerTransactionMethod:
		return FixedPerTransaction{Amount: fixed}, nil
	case FixedPerScripMethod:
		return FixedPerScrip{Amount: fixed}, nil
	default:
		return ZeroBrokerage{}, nil
	}
}

// ComputeCharge previews the charge of a transaction. It tolerates partial
// input: the formula is always returned, with Placeholder for unset
// parameters, while the amount is only set when every required parameter is
// present and valid. The error, if any, is a ValidationErrors.
func ComputeCharge(method CalculationMethod, turnover Money, p ChargeParams) (Optional[Money], string, error) {
	text := formula(method, p)

	errs := p.validate(method)
	if turnover.IsNegative() {
		errs.add(FieldTurnoverAmount, "must not be negative")
	}
	for _, f := range RequiredFields(method) {
		m, ok := p.money(f).Get()
		if ok && m.cur != "" && turnover.cur != "" && m.cur != turnover.cur {
			errs.add(f, fmt.Sprintf("currency %s does not match turnover currency %s", m.cur, turnover.cur))
		}
	}
	if len(errs) > 0 {
		return None[Money](), text, errs
	}

	cm, err := p.Build(method)
	if err != nil {
		return None[Money](), text, err
	}
	return Some(cm.Charge(turnover)), text, nil
}

// formula renders the computation of method with the parameters at hand.
func formula(method CalculationMethod, p ChargeParams) string {
	pct := p.Percentage.Render(Rate.String, Placeholder)
	min := p.Min.Render(Money.Plain, Placeholder)
	max := p.Max.Render(Money.Plain, Placeholder)
	fixed := p.Fixed.Render(Money.Plain, Placeholder)

	switch method {
	case ZeroBrokerageMethod:
		return "no charge"
	case PercentageOnlyMethod:
		return fmt.Sprintf("turnover × %s", pct)
	case PercentageWithMinMethod:
		return fmt.Sprintf("max(turnover × %s, %s)", pct, min)
	case PercentageWithMaxMethod:
		return fmt.Sprintf("min(turnover × %s, %s)", pct, max)
	case PercentageWithMinMaxMethod:
		return fmt.Sprintf("clamp(turnover × %s, %s, %s)", pct, min, max)
	case FixedPerTransactionMethod:
		return fmt.Sprintf("%s per transaction", fixed)
	case FixedPerScripMethod:
		return fmt.Sprintf("%s per scrip", fixed)
	default:
		return Placeholder
	}
}
