package renderer

import (
	"strings"

	"github.com/etnz/splitter"
)

// Report is the report data ready for rendering: every amount is already
// formatted in the ledger's currency.
type Report struct {
	Title     string     `json:"title"`
	Currency  string     `json:"currency"`
	Total     string     `json:"total"`
	Expenses  []Expense  `json:"expenses"`
	Balances  []Balance  `json:"balances"`
	Transfers []Transfer `json:"transfers"`
	Settled   bool       `json:"settled"`
}

// Expense is one row of the expense log.
type Expense struct {
	Spender     string `json:"spender"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	SharedWith  string `json:"sharedWith"`
}

// Balance is one row of the balances table.
type Balance struct {
	Participant string `json:"participant"`
	Paid        string `json:"paid"`
	Owed        string `json:"owed"`
	Net         string `json:"net"`
}

// Transfer is one settlement instruction.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// NewReport computes the report of the ledger and prepares it for rendering.
//
// Filters only select the rows of the expense log, balances and transfers
// always cover the whole ledger.
func NewReport(title string, l *splitter.Ledger, filters ...func(splitter.Expense) bool) *Report {
	r := splitter.GetReport(l)
	out := &Report{
		Title:     title,
		Currency:  r.Currency,
		Total:     r.Total.String(),
		Expenses:  []Expense{},
		Balances:  []Balance{},
		Transfers: []Transfer{},
		Settled:   r.Settled,
	}
	for _, e := range l.Expenses(filters...) {
		out.Expenses = append(out.Expenses, Expense{
			Spender:     cell(string(e.Payer)),
			Amount:      e.Amount.String(),
			Description: cell(e.Description),
			SharedWith:  cell(e.SharedWith()),
		})
	}
	for _, b := range r.Balances.Rows() {
		out.Balances = append(out.Balances, Balance{
			Participant: cell(string(b.Participant)),
			Paid:        b.Paid.String(),
			Owed:        b.Owed.String(),
			Net:         b.Net.SignedString(),
		})
	}
	for _, t := range r.Transfers {
		out.Transfers = append(out.Transfers, Transfer{
			From:   string(t.From),
			To:     string(t.To),
			Amount: t.Amount.String(),
		})
	}
	return out
}

// cell escapes text so that it stays inside a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
