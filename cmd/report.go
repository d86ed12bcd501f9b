package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/splitter"
	"github.com/etnz/splitter/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	json bool
	path string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display expenses, balances and who owes whom" }
func (*reportCmd) Usage() string {
	return `split report [-json] [-path <jsonpath>]

  Displays the full report: the expense log, the balance of every participant
  and the transfers that settle every debt.

  With -json the report is printed as JSON instead. -path selects a value in
  the JSON report using a JSONPath expression.

Usage Examples:
$ split report
$ split report -json
$ split report -path '$.transfers[*].amount'

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting a value of the JSON report. Implies -json.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.json && c.path == "" {
		printMarkdown(renderer.RenderReport(renderer.NewReport(reportTitle(), ledger)))
		return subcommands.ExitSuccess
	}

	out, err := c.marshal(splitter.GetReport(ledger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// marshal returns the report as JSON, or the part of it selected by the path.
func (c *reportCmd) marshal(r splitter.Report) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("could not marshal report: %w", err)
	}
	if c.path == "" {
		return data, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("could not read report: %w", err)
	}
	selected, err := jsonpath.Get(c.path, v)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", c.path, err)
	}
	return json.Marshal(selected)
}
