package splitter

import (
	"fmt"
)

// Transfer is a payment instruction: From pays Amount to To.
type Transfer struct {
	From   Participant
	To     Participant
	Amount Money
}

// String returns the transfer as "B owes A $30.00".
func (t Transfer) String() string {
	return fmt.Sprintf("%s owes %s %s", t.From, t.To, t.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("from", t.From)
	w.Append("to", t.To)
	w.Append("amount", t.Amount.Decimal())
	return w.MarshalJSON()
}

// position is the remaining amount a participant has to pay or receive.
type position struct {
	who       Participant
	remaining Money
}

// Plan returns the transfers that bring every balance to zero.
//
// Debtors are matched with creditors greedily, both in registration order:
// each debtor pays the first creditors still owed something until the debt
// is cleared. This is deterministic and emits at most
// debtors + creditors - 1 transfers, but it does not search for the smallest
// possible number of transfers.
//
// Amounts below half a minor unit are treated as zero. Plan returns nil when
// the balances are already settled.
func Plan(b Balances) []Transfer {
	var creditors, debtors []position
	for p, net := range b.All() {
		switch {
		case net.IsNegligible():
		case net.IsPositive():
			creditors = append(creditors, position{who: p, remaining: net})
		default:
			debtors = append(debtors, position{who: p, remaining: net.Neg()})
		}
	}

	var transfers []Transfer
	for _, debtor := range debtors {
		for i := range creditors {
			if debtor.remaining.IsNegligible() {
				break
			}
			creditor := &creditors[i]
			if creditor.remaining.IsNegligible() {
				continue
			}
			amount := debtor.remaining.Min(creditor.remaining)
			debtor.remaining = debtor.remaining.Sub(amount)
			creditor.remaining = creditor.remaining.Sub(amount)
			transfers = append(transfers, Transfer{From: debtor.who, To: creditor.who, Amount: amount})
		}
	}
	return transfers
}
