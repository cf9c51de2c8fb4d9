package stockfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single display currency of the engine. Currency
// conversion is out of scope.
const ReportingCurrency = "USD"

// Money is a monetary value in the reporting currency, held as a decimal of
// major units.
type Money struct {
	value decimal.Decimal
}

// USD builds a Money from a float64 of major units.
func USD(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// MoneyFromDecimal builds a Money from an exact decimal of major units.
func MoneyFromDecimal(value decimal.Decimal) Money { return Money{value: value} }

func (m Money) Add(n Money) Money             { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money             { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money          { return Money{value: m.value.Mul(q.value)} }
func (m Money) DivPrice(price Money) Quantity { return Quantity{value: m.value.Div(price.value)} }
func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }

// Decimal returns the exact decimal value in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// InexactFloat64 returns the nearest float64, for chart scaling only.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

// String formats the value with the reporting currency's formatter,
// e.g. "$1,234.50".
func (m Money) String() string {
	cur := money.GetCurrency(ReportingCurrency)
	minor := m.value.Shift(int32(cur.Fraction))
	return money.New(minor.Round(0).IntPart(), ReportingCurrency).Display()
}
