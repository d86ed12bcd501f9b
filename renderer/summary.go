package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a short view of the report: one line per
// participant and what remains to be paid.
func SummaryMarkdown(r *Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)
	doc.PlainText(fmt.Sprintf("Total spent: %s in %d expense(s).", r.Total, len(r.Expenses)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Participant", "Balance"},
		Rows:      [][]string{},
	}
	for _, b := range r.Balances {
		table.Rows = append(table.Rows, []string{b.Participant, md.Bold(b.Net)})
	}
	doc.Table(table)

	if r.Settled {
		doc.PlainText("All settled up! No debts at the moment.")
		return doc.String()
	}
	transfers := make([]string, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		transfers = append(transfers, fmt.Sprintf("%s owes %s %s", t.From, t.To, t.Amount))
	}
	doc.OrderedList(transfers...)
	return doc.String()
}
