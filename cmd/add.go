package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/splitter"
	"github.com/google/subcommands"
)

type addCmd struct {
	payer       string
	amount      string
	description string
	sharedBy    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expense paid by one participant" }
func (*addCmd) Usage() string {
	return `split add -payer <name> -a <amount> [-m <description>] [-s <name>,<name>...]

  Records an expense. The expense is validated against the ledger before it is
  appended: the payer and the sharers must be registered and the amount must be
  positive with no more digits than the currency allows.

  By default the expense is shared by every participant, payer included.

Usage Examples:
$ split add -payer Alice -a 90 -m Pizza
$ split add -payer Bob -a 12.50 -m Taxi -s Carol

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.payer, "payer", "", "Participant who paid.")
	f.StringVar(&c.amount, "a", "", "Amount paid, e.g. 12.50.")
	f.StringVar(&c.description, "m", "", "What the expense is for.")
	f.StringVar(&c.sharedBy, "s", "", "Comma separated participants sharing the expense. Everyone by default.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.payer == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -payer and -a are required")
		return subcommands.ExitUsageError
	}
	amount, err := splitter.ParseMoney(c.amount, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sharedBy := ledger.Participants().Names()
	if c.sharedBy != "" {
		sharedBy = strings.Split(c.sharedBy, ",")
	}

	session := splitter.ResumeSession(ledger)
	expense, err := session.AddExpense(c.payer, amount, c.description, sharedBy...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := AppendExpense(expense); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added: %v\n", expense)
	return subcommands.ExitSuccess
}
