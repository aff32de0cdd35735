package fundcalc

// ChargeForm is the state a charge configuration form owns while the user
// edits it. The calculators stay pure; the form only stores inputs and
// recomputes previews on demand.
type ChargeForm struct {
	Method CalculationMethod
	ChargeParams
}

// SelectMethod switches the calculation method. Values already entered are
// kept, only the required-field constraints change.
func (f *ChargeForm) SelectMethod(m CalculationMethod) {
	f.Method = m
}

// Required lists the fields that are mandatory for the selected method.
func (f ChargeForm) Required() []Field { return RequiredFields(f.Method) }

// IsRequired reports whether field is mandatory for the selected method.
func (f ChargeForm) IsRequired(field Field) bool { return IsRequired(f.Method, field) }

// Validate reports the failures of required fields only.
func (f ChargeForm) Validate() error {
	return f.ChargeParams.validate(f.Method).err()
}

// Preview computes the charge preview for the given turnover.
func (f ChargeForm) Preview(turnover Money) (Optional[Money], string, error) {
	return ComputeCharge(f.Method, turnover, f.ChargeParams)
}

// Config returns the config to submit, populated with exactly the parameters
// of the selected method.
func (f ChargeForm) Config(t ChargeType, buy, sell bool) (ChargeConfig, error) {
	m, err := f.ChargeParams.Build(f.Method)
	if err != nil {
		return ChargeConfig{}, err
	}
	return NewChargeConfig(t, m, buy, sell), nil
}
