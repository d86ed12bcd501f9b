package splitter

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetReport(t *testing.T) {
	l := newTestLedger(t, "A", "B", "C")
	mustAppend(t, l, NewExpense("A", USD(90), "Dinner", "A", "B", "C"))

	r := GetReport(l)
	if r.Settled {
		t.Error("Settled = true, want false")
	}
	if !r.Total.Equal(USD(90)) || r.Expenses != 1 || r.Currency != "USD" {
		t.Errorf("GetReport() = %+v", r)
	}
	want := []Transfer{
		{From: "B", To: "A", Amount: USD(30)},
		{From: "C", To: "A", Amount: USD(30)},
	}
	if diff := cmp.Diff(want, r.Transfers, cmpMoney); diff != "" {
		t.Errorf("Transfers mismatch (-want +got):\n%s", diff)
	}
}

func TestGetReport_Idempotent(t *testing.T) {
	l := newTestLedger(t, "A", "B", "C", "D")
	mustAppend(t, l,
		NewExpense("A", USD(100), "Rent", "A", "B", "C", "D"),
		NewExpense("C", USD(33.33), "Gas", "A", "C"),
		NewExpense("D", USD(10), "Snacks", "A", "B", "C"),
	)

	first, err := json.Marshal(GetReport(l))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(GetReport(l))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("GetReport() is not idempotent:\n%s\n%s", first, second)
	}
}

func TestGetReport_SettledUp(t *testing.T) {
	testCases := []struct {
		name     string
		expenses []Expense
	}{
		{"empty ledger", nil},
		{"self only expenses", []Expense{
			NewExpense("A", USD(12), "Lunch", "A"),
			NewExpense("B", USD(7), "Coffee", "B"),
		}},
		{"debts cancel out", []Expense{
			NewExpense("A", USD(20), "Cinema", "B"),
			NewExpense("B", USD(20), "Dinner", "A"),
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, "A", "B")
			mustAppend(t, l, tc.expenses...)
			r := GetReport(l)
			if !r.Settled || len(r.Transfers) != 0 {
				t.Errorf("GetReport() = %+v, want settled without transfers", r)
			}
		})
	}
}

func TestGetReport_PanicsOnBrokenConservation(t *testing.T) {
	l := newTestLedger(t, "A", "B")
	// bypass validation: nobody shares this expense.
	l.expenses = append(l.expenses, Expense{Payer: "A", Amount: USD(10), SharedBy: []Participant{"Z"}})

	defer func() {
		if recover() == nil {
			t.Error("GetReport() should panic when balances do not sum to zero")
		}
	}()
	GetReport(l)
}

func TestReport_MarshalJSON(t *testing.T) {
	l := newTestLedger(t, "A", "B", "C")
	mustAppend(t, l, NewExpense("A", USD(90), "Dinner", "A", "B", "C"))

	got, err := json.Marshal(GetReport(l))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"currency":"USD","total":90,"expenses":1,"settled":false,` +
		`"balances":[{"participant":"A","paid":90,"owed":30,"net":60},{"participant":"B","paid":0,"owed":30,"net":-30},{"participant":"C","paid":0,"owed":30,"net":-30}],` +
		`"transfers":[{"from":"B","to":"A","amount":30},{"from":"C","to":"A","amount":30}]}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}
