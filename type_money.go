package clientbook

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "EUR"

// Money is an amount in the major unit of an ISO-4217 currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M returns a Money of value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported type %T", value))
	}
}

// MaxAmount is the largest amount, in major units, a transaction can carry.
var MaxAmount = decimal.New(1, 12)

// ValidCurrency reports whether code is a known ISO-4217 currency code.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// ParseMoney parses a strictly positive amount expressed in the major unit
// of currency. The amount cannot carry more decimals than the currency allows.
func ParseMoney(s, currency string) (Money, error) {
	if !ValidCurrency(currency) {
		return Money{}, fmt.Errorf("unknown currency %q", currency)
	}
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !v.IsPositive() {
		return Money{}, fmt.Errorf("amount must be positive, got %s", v)
	}
	if v.GreaterThan(MaxAmount) {
		return Money{}, fmt.Errorf("amount %s is larger than %s", v, MaxAmount)
	}
	m := M(v, currency)
	if fraction := int32(m.currency().Fraction); !v.Equal(v.Round(fraction)) {
		return Money{}, fmt.Errorf("amount %s has more than %d decimals", v, fraction)
	}
	return m, nil
}

// currency never returns nil: unknown codes get a default format.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats m with its currency symbol, like €25.50.
func (m Money) String() string {
	c := m.currency()
	minor := m.value.Shift(int32(c.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinor) {
		// beyond int64: no symbol nor grouping.
		return m.value.StringFixed(int32(c.Fraction)) + " " + c.Code
	}
	return c.Formatter().Format(minor.IntPart())
}

var maxMinor = decimal.NewFromInt(math.MaxInt64)

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: sum(m.cur, n.cur)} }

// sum returns the currency of a sum. The zero Money has no currency and adds
// to any other.
func sum(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "", a == b:
		return a
	}
	panic(fmt.Sprintf("cannot add %s to %s", b, a))
}

// MarshalJSON writes the currency and the amount rounded to the currency
// fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.OmitEmpty("currency", m.cur)
	w.Field("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

// amountField reads the fields written by Money.MarshalJSON.
type amountField struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountField) Money() Money {
	return M(a.Amount, a.Currency)
}
