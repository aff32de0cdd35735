package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundcalc"
	"github.com/etnz/fundcalc/date"
	"github.com/etnz/fundcalc/renderer"
	"github.com/google/subcommands"
)

type investCmd struct {
	amount    *optionalFlag[fundcalc.Money]
	nav       *optionalFlag[fundcalc.Money]
	investors int
	ids       string
	fee       *optionalFlag[fundcalc.Money]
	from      string
	to        string
	on        string
	feeFile   string
	feePath   string
	json      bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "preview the fee impact of an investment" }
func (*investCmd) Usage() string {
	return `fundcalc invest -amount <amount> -nav <nav> [-investors <n> | -ids <id,...>] [-fee <total> -from <date> -to <date> [-on <date>]]
fundcalc invest -amount <amount> -nav <nav> [-investors <n>] -fee-file <fee.json> [-fee-path <jsonpath>]

  Computes the management fee a newcomer pays when joining the portfolio
  during an active fee period, the units allocated, and the credits owed to
  the existing investors.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	c.amount, c.nav, c.fee = moneyFlag(), moneyFlag(), moneyFlag()
	f.Var(c.amount, "amount", "Amount invested.")
	f.Var(c.nav, "nav", "Current NAV of the portfolio.")
	f.IntVar(&c.investors, "investors", 0, "Number of existing investors.")
	f.StringVar(&c.ids, "ids", "", "Comma separated IDs of the existing investors, to tag their credits.")
	f.Var(c.fee, "fee", "Total management fee amortized over the fee period.")
	f.StringVar(&c.from, "from", "", "First day of the fee period.")
	f.StringVar(&c.to, "to", "", "End of the fee period.")
	f.StringVar(&c.on, "on", "", "Day of the investment. Defaults to today.")
	f.StringVar(&c.feeFile, "fee-file", "", "JSON file holding the active portfolio fee, '-' for stdin. Replaces -fee.")
	f.StringVar(&c.feePath, "fee-path", "", "JSONPath of the fee in -fee-file, like '$.data'.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
}

// activeFee returns the fee given on the command line, or nil.
func (c *investCmd) activeFee() (*fundcalc.PortfolioFee, error) {
	if c.feeFile != "" {
		var fee fundcalc.PortfolioFee
		if err := decodeFile(c.feeFile, c.feePath, &fee); err != nil {
			return nil, fmt.Errorf("error reading fee %q: %w", c.feeFile, err)
		}
		return &fee, nil
	}
	total, ok := withCurrency(c.fee.Optional).Get()
	if !ok {
		return nil, nil
	}
	from, err := date.Parse(c.from)
	if err != nil {
		return nil, fmt.Errorf("invalid -from: %w", err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return nil, fmt.Errorf("invalid -to: %w", err)
	}
	on := date.Today()
	if c.on != "" {
		if on, err = date.Parse(c.on); err != nil {
			return nil, fmt.Errorf("invalid -on: %w", err)
		}
	}
	fee, err := fundcalc.NewPortfolioFee(total, from, to, on)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// existing returns the existing investors given on the command line.
func (c *investCmd) existing() fundcalc.Investors {
	if c.ids == "" {
		return fundcalc.Anonymous(c.investors)
	}
	ids := strings.Split(c.ids, ",")
	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}
	if c.investors == 0 {
		return fundcalc.NewInvestors(ids...)
	}
	return fundcalc.Investors{Count: c.investors, IDs: ids}
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fee, err := c.activeFee()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if fee != nil {
		logger.Debug().
			Str("daily", fee.DailyFeeAmount.Plain()).
			Int("remainingDays", fee.RemainingDays).
			Bool("active", fee.IsActive).
			Msg("portfolio fee")
	}

	amount := c.amount.OrElse(fundcalc.Money{}).WithCurrency(currency())
	nav := c.nav.OrElse(fundcalc.Money{}).WithCurrency(currency())

	p, err := fundcalc.PreviewInvestment(amount, nav, fee, c.existing())
	if errors.Is(err, fundcalc.ErrUndefinedNAV) {
		fmt.Fprintf(os.Stderr, "Error: cannot allocate units: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid investment: %v\n", err)
		return subcommands.ExitUsageError
	}
	for _, w := range p.Warnings {
		logger.Warn().Str("field", string(w.Field)).Msg(w.Reason)
	}

	if c.json {
		if err := printJSON(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.InvestmentMarkdown(p))
	return subcommands.ExitSuccess
}
