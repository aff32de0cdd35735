package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundcalc"
	"github.com/etnz/fundcalc/renderer"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	units *optionalFlag[fundcalc.Quantity]
	share *optionalFlag[fundcalc.Percent]
	held  *optionalFlag[fundcalc.Quantity]
	value *optionalFlag[fundcalc.Money]
	file  string
	path  string
	json  bool
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "preview the impact of a withdrawal" }
func (*withdrawCmd) Usage() string {
	return `fundcalc withdraw (-units <units> | -share <percent>) -held <units> -value <amount>
fundcalc withdraw (-units <units> | -share <percent>) -file <investment.json> [-path <jsonpath>]

  Computes the amount redeemed, and what remains of the position, when
  withdrawing units at the current NAV.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.units, c.held = quantityFlag(), quantityFlag()
	c.share = shareFlag()
	c.value = moneyFlag()
	f.Var(c.units, "units", "Units to withdraw.")
	f.Var(c.share, "share", "Share of the position to withdraw, 100 meaning all of it. Replaces -units.")
	f.Var(c.held, "held", "Units held in the position.")
	f.Var(c.value, "value", "Current value of the position.")
	f.StringVar(&c.file, "file", "", "JSON file holding the investment, '-' for stdin. Replaces -held and -value.")
	f.StringVar(&c.path, "path", "", "JSONPath of the investment in -file, like '$.data'.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var inv fundcalc.Investment
	if c.file != "" {
		if err := decodeFile(c.file, c.path, &inv); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading investment %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
	} else {
		inv.UnitsHeld = c.held.OrElse(fundcalc.Quantity{})
		inv.CurrentValue = c.value.OrElse(fundcalc.Money{})
	}
	inv.CurrentValue = inv.CurrentValue.WithCurrency(currency())

	units, ok := c.units.Get()
	if share, set := c.share.Get(); set {
		if ok {
			fmt.Fprintln(os.Stderr, "Error: -units and -share are exclusive")
			return subcommands.ExitUsageError
		}
		units, ok = fundcalc.UnitsForPercentage(inv, share), true
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -units or -share is required")
		return subcommands.ExitUsageError
	}

	w, err := fundcalc.PreviewWithdrawal(units, inv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot value the position: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := fundcalc.ValidateWithdrawalUnits(units, inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid withdrawal: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.json {
		if err := printJSON(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.WithdrawalMarkdown(w))
	return subcommands.ExitSuccess
}
