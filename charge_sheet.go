package fundcalc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of a transaction.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// MarshalJSON writes the side as "buy" or "sell".
func (s Side) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// ParseSide parses "buy" or "sell".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown side: %q", s)
	}
}

// ChargeLine is one applied charge of a sheet.
type ChargeLine struct {
	ChargeType ChargeType        `json:"chargeType"`
	Method     CalculationMethod `json:"calculationMethod"`
	Formula    string            `json:"formula"`
	Amount     Money             `json:"amount"`
}

// ChargeSheet totals every charge applicable to one transaction.
type ChargeSheet struct {
	Side     Side         `json:"side"`
	Turnover Money        `json:"turnoverAmount"`
	Scrips   int          `json:"scripCount"`
	Lines    []ChargeLine `json:"charges"`
	Total    Money        `json:"totalCharges"`
}

// NewChargeSheet applies configs to a transaction. Configs that do not apply
// to side are skipped. Fixed per scrip charges are multiplied by scrips.
func NewChargeSheet(configs []ChargeConfig, side Side, turnover Money, scrips int) (*ChargeSheet, error) {
	if scrips < 1 {
		return nil, ValidationErrors{{Field: FieldScripCount, Reason: "must be at least 1"}}
	}
	sheet := &ChargeSheet{
		Side:     side,
		Turnover: turnover,
		Scrips:   scrips,
		Total:    Money{cur: turnover.cur},
	}
	for i, c := range configs {
		if !c.AppliesTo(side) {
			continue
		}
		amount, text, err := c.Preview(turnover)
		if err != nil {
			return nil, fmt.Errorf("charge #%d (%s): %w", i, c.ChargeType, err)
		}
		value, _ := amount.Get()
		if c.CalculationMethod == FixedPerScripMethod {
			value = value.Mul(Quantity{value: decimal.NewFromInt(int64(scrips))})
			text = fmt.Sprintf("%s × %d", text, scrips)
		}
		sheet.Lines = append(sheet.Lines, ChargeLine{
			ChargeType: c.ChargeType,
			Method:     c.CalculationMethod,
			Formula:    text,
			Amount:     value,
		})
		sheet.Total = sheet.Total.Add(value)
	}
	return sheet, nil
}
