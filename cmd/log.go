package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/splitter"
	"github.com/etnz/splitter/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	payer  string
	sharer string
}

func newLogCmd() *logCmd { return &logCmd{} }

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display every expense in the order it was added" }
func (*logCmd) Usage() string {
	return `split log [-payer <name>] [-s <name>]

  Displays the expense log: who paid, how much, what for and who shares it.

  -payer keeps the expenses paid by a participant, -s the expenses shared by
  one. Both together keep the expenses matching both.

Usage Examples:
$ split log -payer Alice
$ split log -s Carol

`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.payer, "payer", "", "Only the expenses paid by this participant.")
	f.StringVar(&c.sharer, "s", "", "Only the expenses shared by this participant.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	byPayer, err := participantFilter(ledger, c.payer, splitter.ByPayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -payer: %v\n", err)
		return subcommands.ExitUsageError
	}
	bySharer, err := participantFilter(ledger, c.sharer, splitter.BySharer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -s: %v\n", err)
		return subcommands.ExitUsageError
	}
	filter := func(e splitter.Expense) bool { return byPayer(e) && bySharer(e) }

	printMarkdown(renderer.RenderExpenses(renderer.NewReport(reportTitle(), ledger, filter)))
	return subcommands.ExitSuccess
}

// participantFilter returns the filter built by newFilter for the participant
// named name, or a filter accepting everything when name is empty.
func participantFilter(l *splitter.Ledger, name string, newFilter func(splitter.Participant) func(splitter.Expense) bool) (func(splitter.Expense) bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return splitter.AcceptAll, nil
	}
	p := splitter.Participant(name)
	if !l.Participants().Has(p) {
		return nil, fmt.Errorf("%q is not a registered participant (%s)", name, l.Participants())
	}
	return newFilter(p), nil
}
