package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/splitter/renderer"
	"github.com/google/subcommands"
)

// renderCmd is a report command without flags: it renders the ledger's report with render.
type renderCmd struct {
	name, synopsis, usage string
	render                func(*renderer.Report) string
}

func (c *renderCmd) Name() string           { return c.name }
func (c *renderCmd) Synopsis() string       { return c.synopsis }
func (c *renderCmd) Usage() string          { return c.usage }
func (*renderCmd) SetFlags(f *flag.FlagSet) {}

func (c *renderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(c.render(renderer.NewReport(reportTitle(), ledger)))
	return subcommands.ExitSuccess
}

func newBalancesCmd() *renderCmd {
	return &renderCmd{
		name:     "balances",
		synopsis: "display what each participant paid, owes and is owed",
		usage: `split balances

  Displays the balance of every participant: the total they paid, their share
  of the expenses and the difference. A positive balance means the group owes
  them money.

`,
		render: renderer.RenderBalances,
	}
}

func newSummaryCmd() *renderCmd {
	return &renderCmd{
		name:     "summary",
		synopsis: "display balances and who owes whom in a short form",
		usage: `split summary

  Displays the net balance of every participant followed by the transfers
  that settle every debt.

`,
		render: renderer.SummaryMarkdown,
	}
}
