package splitter

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeBalances(t *testing.T) {
	testCases := []struct {
		name     string
		expenses []Expense
		want     map[Participant]Money
	}{
		{
			name:     "no expense",
			expenses: nil,
			want:     map[Participant]Money{"A": USD(0), "B": USD(0), "C": USD(0)},
		},
		{
			name:     "equal split",
			expenses: []Expense{NewExpense("A", USD(90), "Dinner", "A", "B", "C")},
			want:     map[Participant]Money{"A": USD(60), "B": USD(-30), "C": USD(-30)},
		},
		{
			name:     "self only expense",
			expenses: []Expense{NewExpense("B", USD(42), "Book", "B")},
			want:     map[Participant]Money{"A": USD(0), "B": USD(0), "C": USD(0)},
		},
		{
			name:     "payer is not a sharer",
			expenses: []Expense{NewExpense("C", USD(20), "Gift", "A", "B")},
			want:     map[Participant]Money{"A": USD(-10), "B": USD(-10), "C": USD(20)},
		},
		{
			name: "several expenses",
			expenses: []Expense{
				NewExpense("A", USD(60), "Groceries", "A", "B", "C"),
				NewExpense("B", USD(30), "Taxi", "B", "C"),
			},
			want: map[Participant]Money{"A": USD(40), "B": USD(-5), "C": USD(-35)},
		},
		{
			name:     "even split without the payer",
			expenses: []Expense{NewExpense("A", USD(10), "Snacks", "B", "C")},
			want:     map[Participant]Money{"A": USD(10), "B": USD(-5), "C": USD(-5)},
		},
		{
			name:     "thirds are rounded once",
			expenses: []Expense{NewExpense("A", USD(10), "Snacks", "A", "B", "C")},
			// exact: 6.666.., -3.333.., -3.333..
			want: map[Participant]Money{"A": USD(6.66), "B": USD(-3.33), "C": USD(-3.33)},
		},
		{
			name: "shares are not rounded while they accumulate",
			expenses: []Expense{
				NewExpense("A", USD(1), "", "A", "B", "C"),
				NewExpense("A", USD(1), "", "A", "B", "C"),
				NewExpense("A", USD(1), "", "A", "B", "C"),
			},
			want: map[Participant]Money{"A": USD(2), "B": USD(-1), "C": USD(-1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "A", "B", "C")
			mustAppend(t, l, tc.expenses...)

			b := ComputeBalances(l.Participants(), l)
			if diff := cmp.Diff(tc.want, nets(b), cmpMoney); diff != "" {
				t.Errorf("ComputeBalances() mismatch (-want +got):\n%s", diff)
			}
			if sum := b.Sum(); !sum.IsZero() {
				t.Errorf("Sum() = %v, want 0", sum.Decimal())
			}
		})
	}
}

func TestComputeBalances_UnevenThirdsToFirstInRegistrationOrder(t *testing.T) {
	l := newTestLedger(t, "A", "B", "C", "D")
	mustAppend(t, l, NewExpense("A", USD(10), "Snacks", "D", "C", "B"))

	want := map[Participant]Money{"A": USD(10), "B": USD(-3.34), "C": USD(-3.33), "D": USD(-3.33)}
	if diff := cmp.Diff(want, nets(ComputeBalances(l.Participants(), l)), cmpMoney); diff != "" {
		t.Errorf("ComputeBalances() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBalances_PayerAmongSharersGivesBackTheCent(t *testing.T) {
	l := newTestLedger(t, "A", "B", "C")
	mustAppend(t, l, NewExpense("A", USD(10), "Snacks", "A", "B", "C"))

	// rounding each net alone would give A +6.67 and a sum of +0.01.
	want := map[Participant]Money{"A": USD(6.66), "B": USD(-3.33), "C": USD(-3.33)}
	if diff := cmp.Diff(want, nets(ComputeBalances(l.Participants(), l)), cmpMoney); diff != "" {
		t.Errorf("ComputeBalances() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBalances_PaidAndOwed(t *testing.T) {
	l := newTestLedger(t, "A", "B")
	mustAppend(t, l,
		NewExpense("A", USD(30), "", "A", "B"),
		NewExpense("B", USD(10), "", "A", "B"),
	)
	b := ComputeBalances(l.Participants(), l)

	if got := b.Paid("A"); !got.Equal(USD(30)) {
		t.Errorf("Paid(A) = %v, want 30", got.Decimal())
	}
	if got := b.Owed("A"); !got.Equal(USD(20)) {
		t.Errorf("Owed(A) = %v, want 20", got.Decimal())
	}
	if got := b.Get("A"); !got.Equal(USD(10)) {
		t.Errorf("Get(A) = %v, want 10", got.Decimal())
	}
	if got := b.Get("nobody"); !got.IsZero() {
		t.Errorf("Get(nobody) = %v, want 0", got.Decimal())
	}
	if rows := b.Rows(); len(rows) != 2 || rows[0].Participant != "A" || rows[1].Participant != "B" {
		t.Errorf("Rows() = %+v, want registration order", rows)
	}
}

// Balances of two expenses are the sum of the balances of each expense.
func TestComputeBalances_Superposition(t *testing.T) {
	first := NewExpense("A", USD(60), "Groceries", "A", "B", "C")
	second := NewExpense("C", USD(45), "Cinema", "B", "C")

	balancesOf := func(expenses ...Expense) Balances {
		l := newTestLedger(t, "A", "B", "C")
		mustAppend(t, l, expenses...)
		return ComputeBalances(l.Participants(), l)
	}

	both := balancesOf(first, second)
	one, two := balancesOf(first), balancesOf(second)
	for p, got := range both.All() {
		if want := one.Get(p).Add(two.Get(p)); !got.Equal(want) {
			t.Errorf("balance of %s = %v, want %v", p, got.Decimal(), want.Decimal())
		}
	}
}

// randomLedger builds a ledger with random participants and expenses.
func randomLedger(t *testing.T, r *rand.Rand) *Ledger {
	t.Helper()
	names := []string{"Ann", "Ben", "Cid", "Dee", "Eva", "Fox", "Gus", "Hal"}
	l := newTestLedger(t, names[:2+r.IntN(len(names)-1)]...)
	all := l.Participants().Names()

	for range 1 + r.IntN(15) {
		var sharers []string
		for _, name := range all {
			if r.IntN(2) == 0 {
				sharers = append(sharers, name)
			}
		}
		if len(sharers) == 0 {
			sharers = append(sharers, all[r.IntN(len(all))])
		}
		amount := M(int64(1+r.IntN(100000)), "USD").Div(100)
		mustAppend(t, l, NewExpense(all[r.IntN(len(all))], amount, "", sharers...))
	}
	return l
}

func TestComputeBalances_Conservation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		l := randomLedger(t, r)
		b := ComputeBalances(l.Participants(), l)

		if sum := b.Sum(); !sum.IsZero() {
			t.Fatalf("ledger %d: Sum() = %v, want exactly 0", i, sum.Decimal())
		}
		for _, row := range b.Rows() {
			exact := row.Paid.Sub(row.Owed)
			if diff := exact.Sub(row.Net).Abs(); !diff.LessThan(USD(0.01)) {
				t.Errorf("ledger %d: %s net %v is %v away from %v", i, row.Participant, row.Net.Decimal(), diff.Decimal(), exact.Decimal())
			}
			if !row.Net.isWholeUnits() {
				t.Errorf("ledger %d: %s net %v is not rounded", i, row.Participant, row.Net.Decimal())
			}
		}
	}
}

func TestBalances_Apply(t *testing.T) {
	b := NewBalances("USD",
		Balance{Participant: "A", Net: USD(60)},
		Balance{Participant: "B", Net: USD(-30)},
		Balance{Participant: "C", Net: USD(-30)},
	)
	after := b.Apply([]Transfer{{From: "B", To: "A", Amount: USD(30)}})

	want := map[Participant]Money{"A": USD(30), "B": USD(0), "C": USD(-30)}
	if diff := cmp.Diff(want, nets(after), cmpMoney); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
	if !b.Get("A").Equal(USD(60)) {
		t.Error("Apply() must not modify the receiver")
	}
	if after.IsSettled() {
		t.Error("IsSettled() = true, want false")
	}
}
