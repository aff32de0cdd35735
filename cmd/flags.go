package cmd

import (
	"fmt"
	"strconv"

	"github.com/etnz/fundcalc"
)

// optionalFlag is a flag.Value that remembers whether it was given, so that
// an explicit 0 differs from a missing value.
type optionalFlag[T any] struct {
	fundcalc.Optional[T]
	parse func(string) (T, error)
}

func (f *optionalFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	f.Optional = fundcalc.Some(v)
	return nil
}

func (f *optionalFlag[T]) String() string {
	if f == nil {
		return ""
	}
	v, ok := f.Get()
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// moneyFlag reads an amount without currency, see currency().
func moneyFlag() *optionalFlag[fundcalc.Money] {
	return &optionalFlag[fundcalc.Money]{parse: func(s string) (fundcalc.Money, error) {
		return fundcalc.ParseMoney(s, "")
	}}
}

// percentFlag reads a charge percentage, "0.1" being 0.1%.
func percentFlag() *optionalFlag[fundcalc.Rate] {
	return &optionalFlag[fundcalc.Rate]{parse: fundcalc.ParsePercent}
}

func quantityFlag() *optionalFlag[fundcalc.Quantity] {
	return &optionalFlag[fundcalc.Quantity]{parse: fundcalc.ParseQuantity}
}

// shareFlag reads a share of a position, "100" being all of it.
func shareFlag() *optionalFlag[fundcalc.Percent] {
	return &optionalFlag[fundcalc.Percent]{parse: func(s string) (fundcalc.Percent, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percentage %q", s)
		}
		return fundcalc.Percent(f), nil
	}}
}

// withCurrency gives amounts read from the command line their currency.
func withCurrency(o fundcalc.Optional[fundcalc.Money]) fundcalc.Optional[fundcalc.Money] {
	m, ok := o.Get()
	if !ok {
		return o
	}
	return fundcalc.Some(m.WithCurrency(currency()))
}
