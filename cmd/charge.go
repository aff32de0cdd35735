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

type chargeCmd struct {
	chargeType string
	method     string
	turnover   *optionalFlag[fundcalc.Money]
	pct        *optionalFlag[fundcalc.Rate]
	min        *optionalFlag[fundcalc.Money]
	max        *optionalFlag[fundcalc.Money]
	fixed      *optionalFlag[fundcalc.Money]
	file       string
	path       string
	json       bool
}

func (*chargeCmd) Name() string     { return "charge" }
func (*chargeCmd) Synopsis() string { return "preview the charge of a transaction" }
func (*chargeCmd) Usage() string {
	return `fundcalc charge -method <method> -turnover <amount> [-type <type>] [-pct <percent>] [-min <amount>] [-max <amount>] [-fixed <amount>]
fundcalc charge -file <config.json> [-path <jsonpath>] -turnover <amount>

  Computes one charge of a transaction. Parameters the method requires but
  that are missing are reported, and shown as '?' in the formula.
`
}

func (c *chargeCmd) SetFlags(f *flag.FlagSet) {
	c.turnover = moneyFlag()
	c.pct = percentFlag()
	c.min, c.max, c.fixed = moneyFlag(), moneyFlag(), moneyFlag()

	f.StringVar(&c.chargeType, "type", "BROKERAGE", "Charge type (BROKERAGE, STT, GST, STAMP_DUTY, DP_CHARGES, ...).")
	f.StringVar(&c.method, "method", "", "Calculation method, see 'fundcalc methods'.")
	f.Var(c.turnover, "turnover", "Turnover of the transaction.")
	f.Var(c.pct, "pct", "Charge percentage, 0.1 meaning 0.1%.")
	f.Var(c.min, "min", "Minimum charge per transaction.")
	f.Var(c.max, "max", "Maximum charge per transaction.")
	f.Var(c.fixed, "fixed", "Fixed charge amount.")
	f.StringVar(&c.file, "file", "", "JSON file holding a charge config, '-' for stdin. Replaces the method flags.")
	f.StringVar(&c.path, "path", "", "JSONPath of the charge config in -file, like '$.data'.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
}

// chargeResult is the JSON output of the charge command.
type chargeResult struct {
	ChargeType        fundcalc.ChargeType               `json:"chargeType"`
	CalculationMethod fundcalc.CalculationMethod        `json:"calculationMethod"`
	Turnover          fundcalc.Money                    `json:"turnoverAmount"`
	Formula           string                            `json:"formula"`
	Amount            fundcalc.Optional[fundcalc.Money] `json:"chargeAmount"`
	Errors            fundcalc.ValidationErrors         `json:"errors,omitempty"`
}

func (c *chargeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	turnover, ok := withCurrency(c.turnover.Optional).Get()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -turnover is required")
		return subcommands.ExitUsageError
	}

	p := renderer.ChargePreview{Turnover: turnover}
	if c.file != "" {
		var config fundcalc.ChargeConfig
		if err := decodeFile(c.file, c.path, &config); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading charge config %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		if err := config.Validate(); err != nil {
			logger.Warn().Err(err).Msg("charge config does not match its calculation method")
		}
		p.ChargeType, p.Method = config.ChargeType, config.CalculationMethod
		p.Amount, p.Formula, p.Err = config.Preview(turnover)
	} else {
		t, err := fundcalc.ParseChargeType(c.chargeType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		m, err := fundcalc.ParseCalculationMethod(c.method)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		var form fundcalc.ChargeForm
		form.SelectMethod(m)
		form.Percentage = c.pct.Optional
		form.Min, form.Max, form.Fixed = c.min.Optional, c.max.Optional, c.fixed.Optional
		p.ChargeType, p.Method = t, m
		p.Amount, p.Formula, p.Err = form.Preview(turnover)
	}
	logger.Debug().Str("method", p.Method.String()).Str("formula", p.Formula).Msg("charge computed")

	if c.json {
		errs, _ := fundcalc.AsValidationErrors(p.Err)
		if err := printJSON(chargeResult{
			ChargeType:        p.ChargeType,
			CalculationMethod: p.Method,
			Turnover:          p.Turnover,
			Formula:           p.Formula,
			Amount:            p.Amount,
			Errors:            errs,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderer.ChargeMarkdown(&p))
	}

	if p.Err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
