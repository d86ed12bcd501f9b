package splitter

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{USD(30), "$30.00"},
		{USD(-30), "-$30.00"},
		{USD(1234.5), "$1,234.50"},
		{USD(0.005), "$0.00"}, // banker's rounding
		{USD(0.015), "$0.02"},
		{M(12.5, "XXX-unknown"), "12.50"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.money.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{USD(60), "+$60.00"},
		{USD(-30), "-$30.00"},
		{USD(0), "-"},
		{USD(0.001), "-"},
	}
	for _, tc := range testCases {
		if got := tc.money.SignedString(); got != tc.want {
			t.Errorf("%v.SignedString() = %q, want %q", tc.money.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	testCases := []struct {
		in, want float64
	}{
		{2.675, 2.68},
		{2.665, 2.66},
		{-33.333, -33.33},
		{66.6666, 66.67},
	}
	for _, tc := range testCases {
		if got := USD(tc.in).Round(); !got.Equal(USD(tc.want)) {
			t.Errorf("USD(%v).Round() = %v, want %v", tc.in, got.Decimal(), tc.want)
		}
	}
}

func TestMoney_IsNegligible(t *testing.T) {
	testCases := []struct {
		in   float64
		want bool
	}{
		{0, true},
		{0.004, true},
		{-0.004, true},
		{1e-12, true},
		{0.005, false},
		{-0.01, false},
	}
	for _, tc := range testCases {
		if got := USD(tc.in).IsNegligible(); got != tc.want {
			t.Errorf("USD(%v).IsNegligible() = %v, want %v", tc.in, got, tc.want)
		}
	}
	// JPY has no minor unit.
	if !M(0.4, "JPY").IsNegligible() || M(0.5, "JPY").IsNegligible() {
		t.Error("JPY negligible threshold should be half a yen")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	third := USD(100).Div(3)
	if got := third.Add(third).Add(third); !got.Round().Equal(USD(100)) {
		t.Errorf("100/3*3 = %v, want 100 once rounded", got.Decimal())
	}
	if got := USD(12.34).Cents(); got != 1234 {
		t.Errorf("Cents() = %d, want 1234", got)
	}
	if got := USD(5).Min(USD(3)); !got.Equal(USD(3)) {
		t.Errorf("Min() = %v, want 3", got.Decimal())
	}
	if USD(12.345).isWholeUnits() {
		t.Error("12.345 USD should not be whole units")
	}
	if !USD(12.34).isWholeUnits() {
		t.Error("12.34 USD should be whole units")
	}
	if got := M(0, "").Add(USD(2)); got.Currency() != "USD" {
		t.Errorf("empty currency should be weak, got %q", got.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR should panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("12.50", "USD")
	if err != nil {
		t.Fatalf("ParseMoney() failed: %v", err)
	}
	if !m.Equal(USD(12.5)) {
		t.Errorf("ParseMoney() = %v, want 12.5", m.Decimal())
	}
	if _, err := ParseMoney("twelve", "USD"); err == nil {
		t.Error("ParseMoney(\"twelve\") should fail")
	}
}
