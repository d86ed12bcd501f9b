package splitter

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger is the append-only list of expenses shared by a set of participants.
//
// In a Ledger expenses are kept in insertion order. It is the single source
// of truth: balances and settlements are always recomputed from it.
type Ledger struct {
	participants *Participants
	currency     string
	expenses     []Expense
}

// NewLedger creates an empty ledger for the participants, in the given currency.
func NewLedger(participants *Participants, currency string) (*Ledger, error) {
	if participants == nil {
		return nil, invalid("ledger", ErrNotRegistered)
	}
	if !KnownCurrency(currency) {
		return nil, invalid("ledger", fmt.Errorf("%w: %q", ErrUnknownCurrency, currency))
	}
	return &Ledger{
		participants: participants,
		currency:     currency,
		expenses:     make([]Expense, 0),
	}, nil
}

// Participants returns the participants of this ledger.
func (l *Ledger) Participants() *Participants { return l.participants }

// Currency returns the currency of every amount in this ledger.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of expenses.
func (l *Ledger) Len() int { return len(l.expenses) }

// Append validates the expense and appends it to the ledger.
//
// It returns the validated expense, with quick fixes applied. If the expense
// is invalid the ledger is left unchanged and the error is a *ValidationError.
func (l *Ledger) Append(e Expense) (Expense, error) {
	e, err := e.Validate(l)
	if err != nil {
		return e, err
	}
	l.expenses = append(l.expenses, e)
	return e, nil
}

// Expenses returns an iterator over expenses, in insertion order, accepted by
// any of the filters. Without filters every expense is yielded.
func (l *Ledger) Expenses(filters ...func(Expense) bool) iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range l.expenses {
			if len(filters) > 0 && !slices.ContainsFunc(filters, func(f func(Expense) bool) bool { return f(e) }) {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// All returns a copy of all the expenses, in insertion order.
func (l *Ledger) All() []Expense {
	return slices.Clone(l.expenses)
}

// Total returns the sum of every expense amount.
func (l *Ledger) Total() Money {
	total := M(0, l.currency)
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// clone returns a ledger sharing participants but not the expense list.
func (l *Ledger) clone() *Ledger {
	c := *l
	c.expenses = slices.Clone(l.expenses)
	return &c
}

// AcceptAll is a filter that accepts every expense.
func AcceptAll(Expense) bool { return true }

// ByPayer returns a filter accepting expenses paid by p.
func ByPayer(p Participant) func(Expense) bool {
	return func(e Expense) bool { return e.Payer == p }
}

// BySharer returns a filter accepting expenses shared by p.
func BySharer(p Participant) func(Expense) bool {
	return func(e Expense) bool { return e.Shares(p) }
}
