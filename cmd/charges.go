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

type chargesCmd struct {
	file     string
	path     string
	side     string
	turnover *optionalFlag[fundcalc.Money]
	scrips   int
	json     bool
}

func (*chargesCmd) Name() string     { return "charges" }
func (*chargesCmd) Synopsis() string { return "total every charge applicable to a buy or a sell" }
func (*chargesCmd) Usage() string {
	return `fundcalc charges -file <configs.json> [-path <jsonpath>] -side <buy|sell> -turnover <amount> [-scrips <n>]

  Applies every charge config of the file that applies to the side of the
  transaction, and totals them. Fixed per scrip charges are multiplied by the
  number of scrips.
`
}

func (c *chargesCmd) SetFlags(f *flag.FlagSet) {
	c.turnover = moneyFlag()
	f.StringVar(&c.file, "file", "", "JSON file holding the list of charge configs, '-' for stdin.")
	f.StringVar(&c.path, "path", "", "JSONPath of the list in -file, like '$.data'.")
	f.StringVar(&c.side, "side", "buy", "Side of the transaction: buy or sell.")
	f.Var(c.turnover, "turnover", "Turnover of the transaction.")
	f.IntVar(&c.scrips, "scrips", 1, "Number of scrips traded.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
}

func (c *chargesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	turnover, ok := withCurrency(c.turnover.Optional).Get()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -turnover is required")
		return subcommands.ExitUsageError
	}
	side, err := fundcalc.ParseSide(c.side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var configs []fundcalc.ChargeConfig
	if err := decodeFile(c.file, c.path, &configs); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading charge configs %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	logger.Debug().Int("configs", len(configs)).Str("side", side.String()).Msg("charge configs loaded")

	sheet, err := fundcalc.NewChargeSheet(configs, side, turnover, c.scrips)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing charges: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := printJSON(sheet); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ChargeSheetMarkdown(sheet))
	return subcommands.ExitSuccess
}
