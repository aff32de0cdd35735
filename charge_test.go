package fundcalc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeCharge(t *testing.T) {
	pct := Some(R(0.001)) // 0.1%

	testCases := []struct {
		name     string
		method   CalculationMethod
		turnover Money
		params   ChargeParams
		want     Money
	}{
		{
			name:     "zero brokerage",
			method:   ZeroBrokerageMethod,
			turnover: INR(100000),
			want:     INR(0),
		},
		{
			name:     "percentage only",
			method:   PercentageOnlyMethod,
			turnover: INR(100000),
			params:   ChargeParams{Percentage: pct},
			want:     INR(100),
		},
		{
			name:     "percentage with min above min",
			method:   PercentageWithMinMethod,
			turnover: INR(100000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20))},
			want:     INR(100),
		},
		{
			name:     "percentage with min below min",
			method:   PercentageWithMinMethod,
			turnover: INR(10000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20))},
			want:     INR(20),
		},
		{
			name:     "percentage with min at min",
			method:   PercentageWithMinMethod,
			turnover: INR(20000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20))},
			want:     INR(20),
		},
		{
			name:     "percentage with max above max",
			method:   PercentageWithMaxMethod,
			turnover: INR(100000),
			params:   ChargeParams{Percentage: pct, Max: Some(INR(50))},
			want:     INR(50),
		},
		{
			name:     "percentage with max below max",
			method:   PercentageWithMaxMethod,
			turnover: INR(10000),
			params:   ChargeParams{Percentage: pct, Max: Some(INR(50))},
			want:     INR(10),
		},
		{
			name:     "percentage with min max clamped to max",
			method:   PercentageWithMinMaxMethod,
			turnover: INR(100000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20)), Max: Some(INR(50))},
			want:     INR(50),
		},
		{
			name:     "percentage with min max clamped to min",
			method:   PercentageWithMinMaxMethod,
			turnover: INR(10000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20)), Max: Some(INR(50))},
			want:     INR(20),
		},
		{
			name:     "percentage with min max in range",
			method:   PercentageWithMinMaxMethod,
			turnover: INR(30000),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20)), Max: Some(INR(50))},
			want:     INR(30),
		},
		{
			name:     "fixed per transaction",
			method:   FixedPerTransactionMethod,
			turnover: INR(100000),
			params:   ChargeParams{Fixed: Some(INR(15))},
			want:     INR(15),
		},
		{
			name:     "fixed per scrip",
			method:   FixedPerScripMethod,
			turnover: INR(100000),
			params:   ChargeParams{Fixed: Some(INR(5.5))},
			want:     INR(5.5),
		},
		{
			name:     "fixed amount without currency takes the turnover one",
			method:   FixedPerTransactionMethod,
			turnover: INR(100),
			params:   ChargeParams{Fixed: Some(NO(15))},
			want:     INR(15),
		},
		{
			name:     "zero fixed amount is a valid amount",
			method:   FixedPerTransactionMethod,
			turnover: INR(100),
			params:   ChargeParams{Fixed: Some(INR(0))},
			want:     INR(0),
		},
		{
			name:     "zero turnover",
			method:   PercentageWithMinMethod,
			turnover: INR(0),
			params:   ChargeParams{Percentage: pct, Min: Some(INR(20))},
			want:     INR(20),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := ComputeCharge(tc.method, tc.turnover, tc.params)
			if err != nil {
				t.Fatalf("ComputeCharge() unexpected error: %v", err)
			}
			amount, ok := got.Get()
			if !ok {
				t.Fatalf("ComputeCharge() amount is unset")
			}
			if !amount.Equal(tc.want) {
				t.Errorf("ComputeCharge() = %v, want %v", amount.Plain(), tc.want.Plain())
			}
		})
	}
}

func TestComputeCharge_Formula(t *testing.T) {
	testCases := []struct {
		name   string
		method CalculationMethod
		params ChargeParams
		want   string
	}{
		{"zero", ZeroBrokerageMethod, ChargeParams{}, "no charge"},
		{"percentage", PercentageOnlyMethod, ChargeParams{Percentage: Some(R(0.0005))}, "turnover × 0.05%"},
		{"percentage unset", PercentageOnlyMethod, ChargeParams{}, "turnover × ?"},
		{"min", PercentageWithMinMethod, ChargeParams{Percentage: Some(R(0.001)), Min: Some(INR(20))}, "max(turnover × 0.1%, 20)"},
		{"min unset", PercentageWithMinMethod, ChargeParams{Percentage: Some(R(0.001))}, "max(turnover × 0.1%, ?)"},
		{"max", PercentageWithMaxMethod, ChargeParams{Percentage: Some(R(0.001)), Max: Some(INR(50))}, "min(turnover × 0.1%, 50)"},
		{"min max", PercentageWithMinMaxMethod, ChargeParams{Percentage: Some(R(0.001)), Min: Some(INR(20)), Max: Some(INR(50))}, "clamp(turnover × 0.1%, 20, 50)"},
		{"min max partial", PercentageWithMinMaxMethod, ChargeParams{Max: Some(INR(50))}, "clamp(turnover × ?, ?, 50)"},
		{"fixed", FixedPerTransactionMethod, ChargeParams{Fixed: Some(INR(15.75))}, "15.75 per transaction"},
		{"fixed zero is not unset", FixedPerTransactionMethod, ChargeParams{Fixed: Some(INR(0))}, "0 per transaction"},
		{"fixed unset", FixedPerTransactionMethod, ChargeParams{}, "? per transaction"},
		{"scrip", FixedPerScripMethod, ChargeParams{Fixed: Some(INR(5))}, "5 per scrip"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, got, _ := ComputeCharge(tc.method, INR(1000), tc.params)
			if got != tc.want {
				t.Errorf("ComputeCharge() formula = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestComputeCharge_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		method    CalculationMethod
		turnover  Money
		params    ChargeParams
		wantField []Field
	}{
		{
			name:      "missing every parameter",
			method:    PercentageWithMinMaxMethod,
			turnover:  INR(1000),
			wantField: []Field{FieldChargePercentage, FieldMinChargePerTransaction, FieldMaxChargePerTransaction},
		},
		{
			name:      "zero percentage",
			method:    PercentageOnlyMethod,
			turnover:  INR(1000),
			params:    ChargeParams{Percentage: Some(R(0))},
			wantField: []Field{FieldChargePercentage},
		},
		{
			name:      "percentage above 100%",
			method:    PercentageOnlyMethod,
			turnover:  INR(1000),
			params:    ChargeParams{Percentage: Some(RateFromPercent(100.5))},
			wantField: []Field{FieldChargePercentage},
		},
		{
			name:      "min above max",
			method:    PercentageWithMinMaxMethod,
			turnover:  INR(1000),
			params:    ChargeParams{Percentage: Some(R(0.001)), Min: Some(INR(60)), Max: Some(INR(50))},
			wantField: []Field{FieldMinChargePerTransaction},
		},
		{
			name:      "negative fixed amount",
			method:    FixedPerScripMethod,
			turnover:  INR(1000),
			params:    ChargeParams{Fixed: Some(INR(-1))},
			wantField: []Field{FieldFixedChargeAmount},
		},
		{
			name:      "negative turnover",
			method:    ZeroBrokerageMethod,
			turnover:  INR(-1),
			wantField: []Field{FieldTurnoverAmount},
		},
		{
			name:      "currency mismatch",
			method:    PercentageWithMinMethod,
			turnover:  INR(1000),
			params:    ChargeParams{Percentage: Some(R(0.001)), Min: Some(USD(1))},
			wantField: []Field{FieldMinChargePerTransaction},
		},
		{
			name:      "unknown method",
			method:    CalculationMethod(42),
			turnover:  INR(1000),
			wantField: []Field{FieldCalculationMethod},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, _, err := ComputeCharge(tc.method, tc.turnover, tc.params)
			if amount.IsSet() {
				t.Errorf("ComputeCharge() amount = %v, want unset", amount)
			}
			errs, ok := AsValidationErrors(err)
			if !ok {
				t.Fatalf("ComputeCharge() error = %v, want ValidationErrors", err)
			}
			var got []Field
			for _, e := range errs {
				got = append(got, e.Field)
			}
			if diff := cmp.Diff(tc.wantField, got); diff != "" {
				t.Errorf("ComputeCharge() failed fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeCharge_FullPercentageIsValid(t *testing.T) {
	amount, _, err := ComputeCharge(PercentageOnlyMethod, INR(250), ChargeParams{Percentage: Some(RateFromPercent(100))})
	if err != nil {
		t.Fatalf("ComputeCharge() unexpected error: %v", err)
	}
	if got := amount.OrElse(Money{}); !got.Equal(INR(250)) {
		t.Errorf("ComputeCharge() = %v, want 250", got.Plain())
	}
}

func TestComputeCharge_IgnoresUnusedParameters(t *testing.T) {
	// a fixed amount left over from a previous method must not fail validation.
	amount, text, err := ComputeCharge(PercentageOnlyMethod, INR(1000), ChargeParams{
		Percentage: Some(R(0.01)),
		Fixed:      Some(INR(-3)),
	})
	if err != nil {
		t.Fatalf("ComputeCharge() unexpected error: %v", err)
	}
	if got := amount.OrElse(Money{}); !got.Equal(INR(10)) {
		t.Errorf("ComputeCharge() = %v, want 10", got.Plain())
	}
	if text != "turnover × 1%" {
		t.Errorf("ComputeCharge() formula = %q, want %q", text, "turnover × 1%")
	}
}

func TestRequiredFields(t *testing.T) {
	testCases := []struct {
		method CalculationMethod
		want   []Field
	}{
		{ZeroBrokerageMethod, nil},
		{PercentageOnlyMethod, []Field{FieldChargePercentage}},
		{PercentageWithMinMethod, []Field{FieldChargePercentage, FieldMinChargePerTransaction}},
		{PercentageWithMaxMethod, []Field{FieldChargePercentage, FieldMaxChargePerTransaction}},
		{PercentageWithMinMaxMethod, []Field{FieldChargePercentage, FieldMinChargePerTransaction, FieldMaxChargePerTransaction}},
		{FixedPerTransactionMethod, []Field{FieldFixedChargeAmount}},
		{FixedPerScripMethod, []Field{FieldFixedChargeAmount}},
	}
	for _, tc := range testCases {
		t.Run(tc.method.String(), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, RequiredFields(tc.method)); diff != "" {
				t.Errorf("RequiredFields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChargeMethod_Build(t *testing.T) {
	p := ChargeParams{Percentage: Some(R(0.001)), Min: Some(INR(20)), Max: Some(INR(50)), Fixed: Some(INR(7))}
	for _, method := range CalculationMethods {
		t.Run(method.String(), func(t *testing.T) {
			m, err := p.Build(method)
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if m.Method() != method {
				t.Errorf("Build().Method() = %v, want %v", m.Method(), method)
			}
			// the built method only carries its own parameters.
			for _, f := range []Field{FieldChargePercentage, FieldMinChargePerTransaction, FieldMaxChargePerTransaction, FieldFixedChargeAmount} {
				if got, want := m.params().isSet(f), IsRequired(method, f); got != want {
					t.Errorf("Build() carries %s = %v, want %v", f, got, want)
				}
			}
		})
	}
}
