package splitter

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Report is everything there is to know about a ledger: who paid what, the
// resulting balances and how to settle them.
type Report struct {
	Currency  string
	Total     Money // Total is the sum of all expenses.
	Expenses  int   // Expenses is the number of expenses in the ledger.
	Balances  Balances
	Transfers []Transfer
	Settled   bool // Settled is true when nobody owes anything.
}

// GetReport computes balances and settlement transfers for the whole ledger.
//
// It is a pure function of the ledger: calling it twice on an unchanged
// ledger returns identical reports.
//
// It panics if the balances do not sum to zero, which would mean the ledger
// holds an expense that escaped validation.
func GetReport(l *Ledger) Report {
	balances := ComputeBalances(l.participants, l)
	if sum := balances.Sum(); !sum.IsNegligible() {
		panic(fmt.Sprintf("balances do not sum to zero: %s", sum.Decimal()))
	}
	transfers := Plan(balances)
	return Report{
		Currency:  l.currency,
		Total:     l.Total(),
		Expenses:  l.Len(),
		Balances:  balances,
		Transfers: transfers,
		Settled:   len(transfers) == 0,
	}
}

// MarshalJSON implements the json.Marshaler interface for Report.
func (r Report) MarshalJSON() ([]byte, error) {
	type balance struct {
		Participant Participant     `json:"participant"`
		Paid        decimal.Decimal `json:"paid"`
		Owed        decimal.Decimal `json:"owed"`
		Net         decimal.Decimal `json:"net"`
	}
	balances := make([]balance, 0, r.Balances.Len())
	for _, b := range r.Balances.rows {
		balances = append(balances, balance{
			Participant: b.Participant,
			Paid:        b.Paid.Decimal(),
			Owed:        b.Owed.Round().Decimal(),
			Net:         b.Net.Decimal(),
		})
	}
	transfers := r.Transfers
	if transfers == nil {
		transfers = []Transfer{}
	}

	var w jsonObjectWriter
	w.Append("currency", r.Currency)
	w.Append("total", r.Total.Decimal())
	w.Append("expenses", r.Expenses)
	w.Append("settled", r.Settled)
	w.Append("balances", balances)
	w.Append("transfers", transfers)
	return w.MarshalJSON()
}
