package fintrack

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used to format amounts for display.
// Amounts themselves are plain decimals; the currency only affects String.
var displayCurrency = "SGD"

// SetDisplayCurrency changes the currency used by Money.String.
func SetDisplayCurrency(code string) { displayCurrency = code }

// Money represents a monetary value as an exact decimal.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseMoney parses a user-provided amount. It rejects malformed values,
// negative values and more than 2 fraction digits.
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", ErrInvalidArgument, s)
	}
	if v.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %q must not be negative", ErrInvalidArgument, s)
	}
	if v.Exponent() < -2 {
		return Money{}, fmt.Errorf("%w: amount %q has more than 2 decimal places", ErrInvalidArgument, s)
	}
	return Money{value: v}, nil
}

// currency returns the display currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, displayCurrency).Currency()
}

// String returns the amount formatted in the display currency, e.g. "S$50.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the amount as a plain decimal string with exactly 2
// fraction digits, the form persisted in CSV files.
func (m Money) Plain() string { return m.value.StringFixed(2) }

// Simple wrappers around decimal.Decimal.

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Rate represents a percentage rate (interest or rebate), e.g. 2.01 for 2.01%.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate parses a user-provided percentage. Negative rates are rejected.
func ParseRate(s string) (Rate, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: invalid rate %q", ErrInvalidArgument, s)
	}
	if v.IsNegative() {
		return Rate{}, fmt.Errorf("%w: rate %q must not be negative", ErrInvalidArgument, s)
	}
	return Rate{value: v}, nil
}

// ApplyTo returns m × rate / 100.
func (r Rate) ApplyTo(m Money) Money {
	return Money{value: m.value.Mul(r.value).Div(decimal.NewFromInt(100))}
}

// Halve returns half the rate, the per-credit fraction of a semi-annual schedule.
func (r Rate) Halve() Rate { return Rate{value: r.value.Div(decimal.NewFromInt(2))} }

func (r Rate) IsZero() bool      { return r.value.IsZero() }
func (r Rate) Equal(s Rate) bool { return r.value.Equal(s.value) }
func (r Rate) String() string    { return r.value.String() + "%" }
func (r Rate) Plain() string     { return r.value.String() }
