package fundcalc

import (
	"encoding/json"
	"testing"
)

func TestChargeConfig_DecodeAndPreview(t *testing.T) {
	const record = `{
		"chargeType": "BROKERAGE",
		"calculationMethod": "PERCENTAGE_WITH_MIN_MAX",
		"chargePercentage": 0.001,
		"minChargePerTransaction": 20,
		"maxChargePerTransaction": "50",
		"fixedChargeAmount": null,
		"appliesToBuy": true,
		"appliesToSell": false
	}`

	var c ChargeConfig
	if err := json.Unmarshal([]byte(record), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if c.ChargeType != Brokerage {
		t.Errorf("ChargeType = %v, want %v", c.ChargeType, Brokerage)
	}
	if c.CalculationMethod != PercentageWithMinMaxMethod {
		t.Errorf("CalculationMethod = %v, want %v", c.CalculationMethod, PercentageWithMinMaxMethod)
	}
	if c.FixedChargeAmount.IsSet() {
		t.Errorf("FixedChargeAmount is set, want unset")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if !c.AppliesTo(Buy) || c.AppliesTo(Sell) {
		t.Errorf("AppliesTo(Buy, Sell) = %v, %v, want true, false", c.AppliesTo(Buy), c.AppliesTo(Sell))
	}

	amount, text, err := c.Preview(NO(100000))
	if err != nil {
		t.Fatalf("Preview() unexpected error: %v", err)
	}
	if got := amount.OrElse(Money{}); !got.Equal(NO(50)) {
		t.Errorf("Preview() = %v, want 50", got.Plain())
	}
	if want := "clamp(turnover × 0.1%, 20, 50)"; text != want {
		t.Errorf("Preview() formula = %q, want %q", text, want)
	}
}

func TestChargeConfig_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		config    ChargeConfig
		wantField Field
		wantOK    bool
	}{
		{
			name:   "zero brokerage with nothing",
			config: ChargeConfig{ChargeType: Brokerage, CalculationMethod: ZeroBrokerageMethod},
			wantOK: true,
		},
		{
			name:      "zero brokerage with a stray percentage",
			config:    ChargeConfig{ChargeType: Brokerage, CalculationMethod: ZeroBrokerageMethod, ChargePercentage: Some(R(0.001))},
			wantField: FieldChargePercentage,
		},
		{
			name:      "fixed with a stray max",
			config:    ChargeConfig{ChargeType: DPCharges, CalculationMethod: FixedPerScripMethod, FixedChargeAmount: Some(NO(15)), MaxChargePerTransaction: Some(NO(10))},
			wantField: FieldMaxChargePerTransaction,
		},
		{
			name:      "percentage missing",
			config:    ChargeConfig{ChargeType: STT, CalculationMethod: PercentageOnlyMethod},
			wantField: FieldChargePercentage,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantOK {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			errs, ok := AsValidationErrors(err)
			if !ok || !errs.Has(tc.wantField) {
				t.Errorf("Validate() = %v, want a failure on %s", err, tc.wantField)
			}
		})
	}
}

func TestNewChargeConfig(t *testing.T) {
	c := NewChargeConfig(GST, PercentageOnly{Rate: R(0.18)}, true, true)
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	got, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"chargeType":"GST","calculationMethod":"PERCENTAGE_ONLY","chargePercentage":0.18,"minChargePerTransaction":null,"maxChargePerTransaction":null,"fixedChargeAmount":null,"appliesToBuy":true,"appliesToSell":true}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestParseEnums(t *testing.T) {
	for _, m := range CalculationMethods {
		got, err := ParseCalculationMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseCalculationMethod(%q) = %v, %v, want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseCalculationMethod("PERCENTAGE"); err == nil {
		t.Errorf("ParseCalculationMethod(%q) expected an error", "PERCENTAGE")
	}
	for i := range chargeTypeNames {
		ct := ChargeType(i)
		got, err := ParseChargeType(ct.String())
		if err != nil || got != ct {
			t.Errorf("ParseChargeType(%q) = %v, %v, want %v", ct.String(), got, err, ct)
		}
	}
	if _, err := ParseChargeType("VAT"); err == nil {
		t.Errorf("ParseChargeType(%q) expected an error", "VAT")
	}
}
