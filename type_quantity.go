package stockfolio

import "github.com/shopspring/decimal"

// Quantity is a share count. It wraps a decimal so that fractional share
// quantities produced by rebalancing stay exact.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a float64.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// QInt builds a Quantity from an integer share count.
func QInt(value int64) Quantity { return Quantity{value: decimal.NewFromInt(value)} }

// ParseQuantity parses the decimal text form of a quantity.
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }

// InexactFloat64 returns the nearest float64, for chart scaling and display
// ratios only.
func (q Quantity) InexactFloat64() float64 { return q.value.InexactFloat64() }
