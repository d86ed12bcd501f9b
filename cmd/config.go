package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/splitter/agent"
)

// Environment variables read at startup. They are also passed to extensions.
const (
	EnvLedgerFile = "SPLIT_LEDGER_FILE"
	EnvCurrency   = "SPLIT_CURRENCY"
	EnvVerbose    = "SPLIT_VERBOSE"
	EnvPlain      = "SPLIT_PLAIN"
	EnvModel      = "SPLIT_MODEL"
)

// Config is the configuration read from the environment. Its values are the
// defaults of the global flags.
type Config struct {
	LedgerFile string `env:"SPLIT_LEDGER_FILE" envDefault:"expenses.jsonl"`
	Currency   string `env:"SPLIT_CURRENCY" envDefault:"USD"`
	Verbose    bool   `env:"SPLIT_VERBOSE"`
	Plain      bool   `env:"SPLIT_PLAIN"`
	Model      string `env:"SPLIT_MODEL"`
}

// ParseEnv loads the configuration from environment variables.
func ParseEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = agent.DefaultModel
	}
	return cfg, nil
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "expenses.jsonl", "Path to the ledger file (JSONL format)")
	currency   = flag.String("currency", "USD", "Currency of new ledgers (ISO 4217 code)")
	Verbose    = flag.Bool("v", false, "Print logs to stderr")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
	model      = flag.String("model", agent.DefaultModel, "Gemini model used by the assistant")
)

// ApplyConfig sets the global flags to the configuration values. Flags parsed
// afterwards still take precedence.
func ApplyConfig(fs *flag.FlagSet, cfg Config) error {
	values := map[string]string{
		"ledger-file": cfg.LedgerFile,
		"currency":    cfg.Currency,
		"v":           strconv.FormatBool(cfg.Verbose),
		"plain":       strconv.FormatBool(cfg.Plain),
		"model":       cfg.Model,
	}
	for name, value := range values {
		if fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
