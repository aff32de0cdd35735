package fundcalc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUndefinedNAV is returned when a NAV cannot be computed or used, because
// it is zero or negative, or because a position holds no units.
var ErrUndefinedNAV = errors.New("undefined NAV")

// Field names an input of the calculators, as the backend spells it.
type Field string

const (
	FieldChargePercentage        Field = "chargePercentage"
	FieldMinChargePerTransaction Field = "minChargePerTransaction"
	FieldMaxChargePerTransaction Field = "maxChargePerTransaction"
	FieldFixedChargeAmount       Field = "fixedChargeAmount"
	FieldTurnoverAmount          Field = "turnoverAmount"
	FieldCalculationMethod       Field = "calculationMethod"
	FieldChargeType              Field = "chargeType"
	FieldInvestmentAmount        Field = "investmentAmount"
	FieldNavValue                Field = "navValue"
	FieldExistingInvestorCount   Field = "existingInvestorCount"
	FieldNetInvestment           Field = "netInvestment"
	FieldActiveFee               Field = "activeFee"
	FieldUnitsToWithdraw         Field = "unitsToWithdraw"
	FieldUnitsHeld               Field = "unitsHeld"
	FieldScripCount              Field = "scripCount"
)

// Common validation reasons.
const (
	ReasonRequired = "required"
	ReasonPositive = "must be greater than zero"
)

// ValidationError reports one invalid input.
type ValidationError struct {
	Field  Field  `json:"field"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

// ValidationErrors collects every validation failure of a single call.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (v ValidationErrors) Has(field Field) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Reason returns the first reason reported for field, or "".
func (v ValidationErrors) Reason(field Field) string {
	for _, e := range v {
		if e.Field == field {
			return e.Reason
		}
	}
	return ""
}

// add appends a failure, it is convenient in validation chains.
func (v *ValidationErrors) add(field Field, reason string) {
	*v = append(*v, ValidationError{Field: field, Reason: reason})
}

// err returns nil when there is no failure, so that callers never see a
// non-nil error holding an empty list.
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts the validation failures from err, if any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
