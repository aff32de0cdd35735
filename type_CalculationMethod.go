package fundcalc

import (
	"encoding/json"
	"fmt"
)

// CalculationMethod defines how a charge amount is derived from a turnover.
type CalculationMethod int

const (
	// ZeroBrokerageMethod charges nothing.
	ZeroBrokerageMethod CalculationMethod = iota
	// PercentageOnlyMethod charges a fraction of the turnover.
	PercentageOnlyMethod
	// PercentageWithMinMethod charges a fraction of the turnover, at least a minimum.
	PercentageWithMinMethod
	// PercentageWithMaxMethod charges a fraction of the turnover, at most a maximum.
	PercentageWithMaxMethod
	// PercentageWithMinMaxMethod charges a fraction of the turnover clamped to [min, max].
	PercentageWithMinMaxMethod
	// FixedPerTransactionMethod charges a fixed amount per transaction.
	FixedPerTransactionMethod
	// FixedPerScripMethod charges a fixed amount per scrip traded.
	FixedPerScripMethod
)

// CalculationMethods lists every method, in display order.
var CalculationMethods = []CalculationMethod{
	ZeroBrokerageMethod,
	PercentageOnlyMethod,
	PercentageWithMinMethod,
	PercentageWithMaxMethod,
	PercentageWithMinMaxMethod,
	FixedPerTransactionMethod,
	FixedPerScripMethod,
}

func (m CalculationMethod) String() string {
	switch m {
	case ZeroBrokerageMethod:
		return "ZERO_BROKERAGE"
	case PercentageOnlyMethod:
		return "PERCENTAGE_ONLY"
	case PercentageWithMinMethod:
		return "PERCENTAGE_WITH_MIN"
	case PercentageWithMaxMethod:
		return "PERCENTAGE_WITH_MAX"
	case PercentageWithMinMaxMethod:
		return "PERCENTAGE_WITH_MIN_MAX"
	case FixedPerTransactionMethod:
		return "FIXED_PER_TRANSACTION"
	case FixedPerScripMethod:
		return "FIXED_PER_SCRIP"
	default:
		return "unknown"
	}
}

// Label is a human friendly name of the method.
func (m CalculationMethod) Label() string {
	switch m {
	case ZeroBrokerageMethod:
		return "Zero brokerage"
	case PercentageOnlyMethod:
		return "Percentage only"
	case PercentageWithMinMethod:
		return "Percentage with minimum"
	case PercentageWithMaxMethod:
		return "Percentage with maximum"
	case PercentageWithMinMaxMethod:
		return "Percentage with minimum and maximum"
	case FixedPerTransactionMethod:
		return "Fixed per transaction"
	case FixedPerScripMethod:
		return "Fixed per scrip"
	default:
		return "Unknown"
	}
}

// ParseCalculationMethod parses a string into a CalculationMethod.
func ParseCalculationMethod(s string) (CalculationMethod, error) {
	for _, m := range CalculationMethods {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown calculation method: %q", s)
}

func (m CalculationMethod) MarshalJSON() ([]byte, error) {
	if m < ZeroBrokerageMethod || m > FixedPerScripMethod {
		return nil, fmt.Errorf("unknown calculation method: %d", int(m))
	}
	return json.Marshal(m.String())
}

func (m *CalculationMethod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCalculationMethod(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
