package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// EnvCurrency overrides the currency of the configuration file.
const EnvCurrency = "FUNDCALC_CURRENCY"

// DefaultCurrency is used when no currency is configured at all.
const DefaultCurrency = "INR"

// Config holds the settings of the configuration file.
//
//	currency  = "INR"
//	log_level = "info"
//	style     = "auto" # glamour style, or "plain" to print raw markdown
type Config struct {
	Currency string `toml:"currency"`
	LogLevel string `toml:"log_level"`
	Style    string `toml:"style"`
}

// config is the configuration loaded by Setup.
var config = NewDefaultConfig()

// NewDefaultConfig returns the configuration used without a file.
func NewDefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Style:    "auto",
	}
}

// LoadConfig reads the TOML file at path over the default configuration.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	c := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("error reading config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("error parsing config %q: %w", path, err)
	}
	return c, nil
}

// currency returns the currency of amounts read from the command line: the
// -currency flag, $FUNDCALC_CURRENCY, the config file, or DefaultCurrency,
// whichever is set first.
func currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if env := os.Getenv(EnvCurrency); env != "" {
		return env
	}
	if config.Currency != "" {
		return config.Currency
	}
	return DefaultCurrency
}
