package splitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// cmpMoney compares Money by value and currency in cmp.Diff.
var cmpMoney = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// newTestLedger creates an empty USD ledger for the named participants.
func newTestLedger(t *testing.T, names ...string) *Ledger {
	t.Helper()
	p, err := RegisterParticipants(names...)
	if err != nil {
		t.Fatalf("RegisterParticipants(%q) failed: %v", names, err)
	}
	l, err := NewLedger(p, "USD")
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	return l
}

// mustAppend appends expenses to the ledger, failing the test on error.
func mustAppend(t *testing.T, l *Ledger, expenses ...Expense) {
	t.Helper()
	for _, e := range expenses {
		if _, err := l.Append(e); err != nil {
			t.Fatalf("Append(%v) failed: %v", e, err)
		}
	}
}

// nets returns the net balances in registration order.
func nets(b Balances) map[Participant]Money {
	m := make(map[Participant]Money)
	for p, net := range b.All() {
		m[p] = net
	}
	return m
}
