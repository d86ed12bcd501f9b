package splitter

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
//
// The value is kept as an exact decimal in major units. Amounts are only
// rounded to the currency minor unit when explicitly asked to (Round), which
// is how balances avoid compounding rounding errors.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any supported numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal string like "12.50" into Money.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// KnownCurrency reports whether code is an ISO currency known to go-money.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// fraction returns the number of digits of the currency minor unit.
// Unknown currencies behave like most currencies: two digits.
func (m Money) fraction() int32 {
	if c := money.GetCurrency(m.cur); c != nil {
		return int32(c.Fraction)
	}
	return 2
}

// String returns the string representation of the money value, rounded to the
// currency minor unit, e.g. "$30.00".
func (m Money) String() string {
	if money.GetCurrency(m.cur) == nil {
		return m.value.StringFixedBank(m.fraction())
	}
	cur := m.currency()
	return cur.Formatter().Format(m.Cents())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.IsNegligible() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Simple wrappers around decimal.Decimal

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }

// Div divides the amount in n equal parts without truncation.
func (m Money) Div(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Min returns the smallest of m and n.
func (m Money) Min(n Money) Money {
	if n.value.LessThan(m.value) {
		return Money{value: n.value, cur: cur(m, n)}
	}
	return Money{value: m.value, cur: cur(m, n)}
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Round returns m rounded to the currency minor unit using banker's rounding.
func (m Money) Round() Money {
	return Money{value: m.value.RoundBank(m.fraction()), cur: m.cur}
}

// unit returns the smallest representable amount in m's currency (0.01 for USD).
func (m Money) unit() Money {
	return Money{value: decimal.New(1, -m.fraction()), cur: m.cur}
}

// IsNegligible reports whether m is below half of the currency minor unit.
// It is the zero test used by every balance comparison.
func (m Money) IsNegligible() bool {
	half := decimal.New(5, -m.fraction()-1)
	return m.value.Abs().LessThan(half)
}

// Cents returns the amount expressed in minor units, rounded with banker's rounding.
func (m Money) Cents() int64 {
	return m.value.Shift(m.fraction()).RoundBank(0).IntPart()
}

// isWholeUnits reports whether m has no digits below the currency minor unit.
func (m Money) isWholeUnits() bool {
	shifted := m.value.Shift(m.fraction())
	return shifted.Equal(shifted.Truncate(0))
}

// withCurrency returns a copy of m in currency c.
func (m Money) withCurrency(c string) Money {
	m.cur = c
	return m
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", m.value)
	w.Optional("currency", m.cur)
	return w.MarshalJSON()
}
