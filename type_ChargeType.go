package fundcalc

import (
	"encoding/json"
	"fmt"
)

// ChargeType names the kind of transaction charge a config computes.
type ChargeType int

const (
	ManagementFee ChargeType = iota
	EntryLoad
	ExitLoad
	Brokerage
	STT
	ExchangeCharges
	GST
	SEBICharges
	StampDuty
	DPCharges
	IPFTCharges
	OtherCharge
)

var chargeTypeNames = [...]string{
	ManagementFee:   "MANAGEMENT_FEE",
	EntryLoad:       "ENTRY_LOAD",
	ExitLoad:        "EXIT_LOAD",
	Brokerage:       "BROKERAGE",
	STT:             "STT",
	ExchangeCharges: "EXCHANGE_CHARGES",
	GST:             "GST",
	SEBICharges:     "SEBI_CHARGES",
	StampDuty:       "STAMP_DUTY",
	DPCharges:       "DP_CHARGES",
	IPFTCharges:     "IPFT_CHARGES",
	OtherCharge:     "OTHER",
}

func (t ChargeType) String() string {
	if t < 0 || int(t) >= len(chargeTypeNames) {
		return "unknown"
	}
	return chargeTypeNames[t]
}

// ParseChargeType parses a string into a ChargeType.
func ParseChargeType(s string) (ChargeType, error) {
	for i, name := range chargeTypeNames {
		if name == s {
			return ChargeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown charge type: %q", s)
}

func (t ChargeType) MarshalJSON() ([]byte, error) {
	if t < 0 || int(t) >= len(chargeTypeNames) {
		return nil, fmt.Errorf("unknown charge type: %d", int(t))
	}
	return json.Marshal(t.String())
}

func (t *ChargeType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseChargeType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
