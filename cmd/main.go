// Package cmd implements the CLI application previewing fund charges,
// investments and withdrawals.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyFlag = flag.String("currency", "", "Currency of the amounts given on the command line. Defaults to $FUNDCALC_CURRENCY, then the config file, then INR.")
var configFile = flag.String("config", "fundcalc.toml", "Path to the TOML configuration file. A missing file is ignored.")
var Verbose = flag.Bool("v", false, "Log diagnostics to stderr.")

// stdout is where commands print their reports.
var stdout io.Writer = os.Stdout

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&methodsCmd{}, "charges")
	c.Register(&chargeCmd{}, "charges")
	c.Register(&chargesCmd{}, "charges")

	c.Register(&investCmd{}, "portfolio")
	c.Register(&withdrawCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// Setup loads the .env file of the working directory, if any, then the
// configuration file and the logger. It must be called once the global flags
// are parsed, and before any command is executed.
func Setup() error {
	// variables already set in the environment win.
	_ = godotenv.Load()

	c, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	config = c
	logger = newLogger(config.LogLevel, *Verbose)
	logger.Debug().
		Str("config", *configFile).
		Str("currency", currency()).
		Str("style", config.Style).
		Msg("configuration loaded")
	return nil
}
