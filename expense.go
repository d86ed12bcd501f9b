package splitter

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// CommandType identifies the kind of a line in a ledger file.
type CommandType string

// Command types used in ledger files.
const (
	CmdInit    CommandType = "init"
	CmdExpense CommandType = "expense"
)

// Expense records that Payer paid Amount for something shared by SharedBy.
//
// The payer does not need to be one of the sharers. Once appended to a
// Ledger an expense is never modified.
type Expense struct {
	Payer       Participant
	Amount      Money
	Description string
	SharedBy    []Participant
}

// NewExpense creates a new Expense. It is not validated until appended to a Ledger.
func NewExpense(payer string, amount Money, description string, sharedBy ...string) Expense {
	e := Expense{
		Payer:       Participant(payer),
		Amount:      amount,
		Description: description,
		SharedBy:    make([]Participant, len(sharedBy)),
	}
	for i, s := range sharedBy {
		e.SharedBy[i] = Participant(s)
	}
	return e
}

// Share returns the part of the amount owed by each sharer, unrounded.
func (e Expense) Share() Money {
	return e.Amount.Div(len(e.SharedBy))
}

// Shares reports whether p is one of the sharers.
func (e Expense) Shares(p Participant) bool {
	return slices.Contains(e.SharedBy, p)
}

// SharedWith returns the sharers as a comma separated list.
func (e Expense) SharedWith() string {
	names := make([]string, len(e.SharedBy))
	for i, p := range e.SharedBy {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Equal reports whether both expenses are identical, sharers order included.
func (e Expense) Equal(o Expense) bool {
	return e.Payer == o.Payer &&
		e.Amount.Equal(o.Amount) &&
		e.Description == o.Description &&
		slices.Equal(e.SharedBy, o.SharedBy)
}

// String describes the expense the way it is confirmed to the user.
func (e Expense) String() string {
	return fmt.Sprintf("%s paid %s for '%s' shared with %d people.", e.Payer, e.Amount, e.Description, len(e.SharedBy))
}

// Validate checks the expense against the ledger it is about to be appended to.
//
// It returns a copy with quick fixes applied: names are trimmed, repeated
// sharers are dropped and a missing currency is set to the ledger's one.
// Otherwise it returns a *ValidationError listing every failure.
func (e Expense) Validate(l *Ledger) (Expense, error) {
	var errs []error

	e.Payer = normalizeName(string(e.Payer))
	if !l.participants.Has(e.Payer) {
		errs = append(errs, fmt.Errorf("payer %q: %w", e.Payer, ErrUnknownParticipant))
	}

	if e.Amount.Currency() == "" {
		e.Amount = e.Amount.withCurrency(l.currency)
	}
	switch {
	case e.Amount.Currency() != l.currency:
		errs = append(errs, fmt.Errorf("%w: got %s, want %s", ErrCurrencyMismatch, e.Amount.Currency(), l.currency))
	case !e.Amount.IsPositive():
		errs = append(errs, fmt.Errorf("%w, got %s", ErrNonPositiveAmount, e.Amount.Decimal()))
	case !e.Amount.isWholeUnits():
		errs = append(errs, fmt.Errorf("%w: %s", ErrAmountPrecision, e.Amount.Decimal()))
	}

	sharers := make([]Participant, 0, len(e.SharedBy))
	for _, s := range e.SharedBy {
		s = normalizeName(string(s))
		if slices.Contains(sharers, s) {
			continue
		}
		if !l.participants.Has(s) {
			errs = append(errs, fmt.Errorf("sharer %q: %w", s, ErrUnknownParticipant))
		}
		sharers = append(sharers, s)
	}
	if len(sharers) == 0 {
		errs = append(errs, ErrEmptyShare)
	}
	e.SharedBy = sharers

	return e, invalid("expense", errs...)
}

// MarshalJSON writes the expense as a ledger line.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdExpense)
	w.Append("payer", e.Payer)
	w.Optional("description", e.Description)
	w.Append("sharedBy", e.sharedByOrEmpty())
	w.EmbedFrom(e.Amount)
	return w.MarshalJSON()
}

func (e Expense) sharedByOrEmpty() []Participant {
	if e.SharedBy == nil {
		return []Participant{}
	}
	return e.SharedBy
}

// UnmarshalJSON reads an expense ledger line.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		Command CommandType `json:"command"`
		amountCmd
		Payer       Participant   `json:"payer"`
		Description string        `json:"description"`
		SharedBy    []Participant `json:"sharedBy"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Command != "" && temp.Command != CmdExpense {
		return fmt.Errorf("not an expense command: %q", temp.Command)
	}
	e.Payer = temp.Payer
	e.Amount = temp.Money()
	e.Description = temp.Description
	e.SharedBy = temp.SharedBy
	return nil
}
