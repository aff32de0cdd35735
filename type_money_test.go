package fundcalc

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{m: USD(1234.5), want: "$1,234.50"},
		{m: USD(0.005), want: "$0.01"},
		{m: NO(12.3456), want: "12.35"},
		{m: NO(-3), want: "-3.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%s.String() = %q, want %q", tc.m.Plain(), got, tc.want)
		}
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	sum := NO(10).Add(INR(5))
	if !sum.Equal(INR(15)) {
		t.Errorf("NO(10) + INR(5) = %v %v, want INR 15", sum.Currency(), sum.Plain())
	}
	if got := NO(20).Max(INR(5)); !got.Equal(INR(20)) {
		t.Errorf("NO(20).Max(INR(5)) = %v %v, want INR 20", got.Currency(), got.Plain())
	}
	if got := USD(1).WithCurrency("INR"); got.Currency() != "USD" {
		t.Errorf("WithCurrency() changed a strong currency to %s", got.Currency())
	}
}

func TestMoney_JSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Money
	}{
		{name: "number", in: `1500.25`, want: NO(1500.25)},
		{name: "quoted", in: `"1500.25"`, want: NO(1500.25)},
		{name: "object", in: `{"currency":"INR","amount":1500.25}`, want: INR(1500.25)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Money
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Unmarshal() = %s %s, want %s %s", got.Currency(), got.Plain(), tc.want.Currency(), tc.want.Plain())
			}
		})
	}

	got, err := json.Marshal(NO(0.1))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `0.1`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestRate(t *testing.T) {
	r, err := ParsePercent("0.1")
	if err != nil {
		t.Fatalf("ParsePercent() error = %v", err)
	}
	if !r.Equal(R(0.001)) {
		t.Errorf("ParsePercent(0.1) = %v, want 0.001", r.Fraction())
	}
	if got := r.String(); got != "0.1%" {
		t.Errorf("String() = %q, want %q", got, "0.1%")
	}
	if got := INR(100000).MulRate(r); !got.Equal(INR(100)) {
		t.Errorf("MulRate() = %v, want 100", got.Plain())
	}
	if _, err := ParsePercent("ten"); err == nil {
		t.Errorf("ParsePercent(%q) expected an error", "ten")
	}
}
