package splitter

import (
	"iter"
	"slices"
)

// Balance is the position of one participant.
type Balance struct {
	Participant Participant
	Paid        Money // Paid is the total amount paid by the participant.
	Owed        Money // Owed is the participant's total share, unrounded.
	Net         Money // Net is Paid - Owed rounded to the minor unit. Positive means the participant is owed money.
}

// Balances holds the balance of every participant, in registration order.
//
// Net balances always sum to exactly zero: what has been paid is what is owed.
type Balances struct {
	currency string
	rows     []Balance
	index    map[Participant]int
}

// ComputeBalances computes the balance of every participant over the whole ledger.
//
// Participants without any activity are included with a zero balance. Shares
// are accumulated unrounded and each net balance is rounded once, at the end.
// Minor units lost or created by rounding are then handed back so that the
// net balances still sum to zero.
func ComputeBalances(participants *Participants, l *Ledger) Balances {
	b := Balances{
		currency: l.currency,
		rows:     make([]Balance, 0, participants.Len()),
		index:    make(map[Participant]int, participants.Len()),
	}
	zero := M(0, l.currency)
	for p := range participants.All() {
		b.index[p] = len(b.rows)
		b.rows = append(b.rows, Balance{Participant: p, Paid: zero, Owed: zero, Net: zero})
	}

	for _, e := range l.Expenses() {
		if i, ok := b.index[e.Payer]; ok {
			b.rows[i].Paid = b.rows[i].Paid.Add(e.Amount)
		}
		share := e.Share()
		for _, s := range e.SharedBy {
			if i, ok := b.index[s]; ok {
				b.rows[i].Owed = b.rows[i].Owed.Add(share)
			}
		}
	}

	exact := make([]Money, len(b.rows))
	for i, r := range b.rows {
		exact[i] = r.Paid.Sub(r.Owed)
	}
	for i, net := range roundConserving(exact) {
		b.rows[i].Net = net
	}
	return b
}

// roundConserving rounds every amount to the minor unit and then moves single
// minor units, largest remainder first, until the rounded amounts sum like the
// exact ones. Ties keep the original order.
func roundConserving(exact []Money) []Money {
	rounded := make([]Money, len(exact))
	if len(exact) == 0 {
		return rounded
	}
	exactSum, roundedSum := M(0, exact[0].cur), M(0, exact[0].cur)
	for i, x := range exact {
		rounded[i] = x.Round()
		exactSum = exactSum.Add(x)
		roundedSum = roundedSum.Add(rounded[i])
	}

	unit := exact[0].unit()
	// number of minor units to hand back, can be negative.
	residual := exactSum.Round().Sub(roundedSum).Cents()
	if residual == 0 {
		return rounded
	}

	// order candidates by how much rounding took from them.
	order := make([]int, len(exact))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		di := exact[i].Sub(rounded[i])
		dj := exact[j].Sub(rounded[j])
		if residual > 0 {
			return dj.Decimal().Cmp(di.Decimal()) // largest remainder first
		}
		return di.Decimal().Cmp(dj.Decimal()) // most negative remainder first
	})

	step := unit
	if residual < 0 {
		step = unit.Neg()
		residual = -residual
	}
	for k := 0; k < int(residual) && k < len(order); k++ {
		i := order[k]
		rounded[i] = rounded[i].Add(step)
	}
	return rounded
}

// Currency returns the currency of the balances.
func (b Balances) Currency() string { return b.currency }

// Len returns the number of participants.
func (b Balances) Len() int { return len(b.rows) }

// All iterates over participants and their net balance in registration order.
func (b Balances) All() iter.Seq2[Participant, Money] {
	return func(yield func(Participant, Money) bool) {
		for _, r := range b.rows {
			if !yield(r.Participant, r.Net) {
				return
			}
		}
	}
}

// Rows returns a copy of every balance in registration order.
func (b Balances) Rows() []Balance {
	return slices.Clone(b.rows)
}

// Get returns the net balance of p, zero if p is unknown.
func (b Balances) Get(p Participant) Money {
	i, ok := b.index[p]
	if !ok {
		return M(0, b.currency)
	}
	return b.rows[i].Net
}

// Paid returns the total paid by p.
func (b Balances) Paid(p Participant) Money {
	i, ok := b.index[p]
	if !ok {
		return M(0, b.currency)
	}
	return b.rows[i].Paid
}

// Owed returns the unrounded total share of p.
func (b Balances) Owed(p Participant) Money {
	i, ok := b.index[p]
	if !ok {
		return M(0, b.currency)
	}
	return b.rows[i].Owed
}

// Sum returns the sum of every net balance. It is zero for balances computed
// from a ledger.
func (b Balances) Sum() Money {
	sum := M(0, b.currency)
	for _, r := range b.rows {
		sum = sum.Add(r.Net)
	}
	return sum
}

// IsSettled reports whether every net balance is zero.
func (b Balances) IsSettled() bool {
	for _, r := range b.rows {
		if !r.Net.IsNegligible() {
			return false
		}
	}
	return true
}

// Apply returns the balances once every transfer has been paid: the payer's
// balance goes up and the receiver's goes down by the transferred amount.
func (b Balances) Apply(transfers []Transfer) Balances {
	c := Balances{
		currency: b.currency,
		rows:     slices.Clone(b.rows),
		index:    b.index,
	}
	for _, t := range transfers {
		if i, ok := c.index[t.From]; ok {
			c.rows[i].Net = c.rows[i].Net.Add(t.Amount)
		}
		if i, ok := c.index[t.To]; ok {
			c.rows[i].Net = c.rows[i].Net.Sub(t.Amount)
		}
	}
	return c
}

// NewBalances builds balances directly from net amounts, in the given order.
// It is meant for planning settlements of balances computed elsewhere.
func NewBalances(currency string, nets ...Balance) Balances {
	b := Balances{
		currency: currency,
		rows:     make([]Balance, 0, len(nets)),
		index:    make(map[Participant]int, len(nets)),
	}
	zero := M(0, currency)
	for _, n := range nets {
		if n.Paid.cur == "" && n.Paid.IsZero() {
			n.Paid = zero
		}
		if n.Owed.cur == "" && n.Owed.IsZero() {
			n.Owed = zero
		}
		b.index[n.Participant] = len(b.rows)
		b.rows = append(b.rows, n)
	}
	return b
}
