package financeai

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the single currency this tracker operates in.
// Multi-currency is out of scope.
const CurrencyCode = "BRL"

// Money represents a monetary value in the tracker's fixed currency.
//
// Amounts are always non-negative at rest; direction is carried by the
// transaction type or by subtraction at the point of use.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromInt(int64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	default:
		panic("unsupported money value type")
	}
}

// currency returns the full currency definition for formatting.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, CurrencyCode).Currency()
}

// String returns the locale formatted representation of the money value (e.g. "R$1.234,50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                    { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// AsFloat converts the exact value for serialization boundaries (AI request
// payloads). Internal arithmetic must stay on the decimal value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// PercentOf returns m as a percentage of whole, or 0 when whole is zero.
// It never divides by zero.
func (m Money) PercentOf(whole Money) Percent {
	if whole.value.IsZero() {
		return 0
	}
	p, _ := m.value.Div(whole.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(p)
}

// Money persists as a plain JSON number so that the durable records match
// the original dashboard blobs.

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
