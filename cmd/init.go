package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/splitter"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new ledger and register its participants" }
func (*initCmd) Usage() string {
	return `split init [-force] <name>...

  Creates the ledger file and registers the participants sharing expenses.
  Between 2 and 20 participants, with unique names, are required. The currency
  of the ledger is set by the global -currency flag.

Usage Examples:
$ split init Alice Bob Carol
$ split -currency EUR -ledger-file trip.jsonl init Ann Ben

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Replace an existing ledger file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	participants, err := splitter.RegisterParticipants(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := splitter.NewLedger(participants, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(*ledgerFile); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: ledger file %q already exists, use -force to replace it\n", *ledgerFile)
		return subcommands.ExitFailure
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Registered %s sharing expenses in %s.\n", participants, ledger.Currency())
	return subcommands.ExitSuccess
}
