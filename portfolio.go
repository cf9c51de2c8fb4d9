package stockfolio

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// weightTolerance is how far a rebalance weight sum may drift from 1.
const weightTolerance = 1e-9

// Portfolio is a named collection of holdings, reconstructed on demand from
// its transaction ledger. All operations validate before they mutate: a
// failed call leaves the ledger untouched.
type Portfolio struct {
	name   string
	ledger *Ledger
}

// NewPortfolio creates an empty portfolio with the given name. Name
// uniqueness is enforced by the enclosing Model, not here.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{name: name, ledger: NewLedger()}
}

// Name returns the portfolio's name.
func (p *Portfolio) Name() string { return p.name }

// Buy records a purchase of shares on a date.
func (p *Portfolio) Buy(symbol string, shares Quantity, day Date) error {
	if !shares.IsPositive() {
		return fmt.Errorf("%w: buy %s of %s", ErrInvalidQuantity, shares, symbol)
	}
	p.ledger.RecordBuy(symbol, shares, day)
	return nil
}

// Sell records a sale of shares on a date. A sale of at least the quantity
// held on that date is rejected: the guard is strict, so selling exactly
// the held amount fails too.
func (p *Portfolio) Sell(symbol string, shares Quantity, day Date) error {
	if !shares.IsPositive() {
		return fmt.Errorf("%w: sell %s of %s", ErrInvalidQuantity, shares, symbol)
	}
	held := p.ledger.PositionAsOf(symbol, day)
	if !shares.LessThan(held) {
		return fmt.Errorf("%w: %s of %s on %s, position is %s", ErrCannotSell, shares, symbol, day, held)
	}
	p.ledger.RecordSell(symbol, shares, day)
	return nil
}

// CompositionAsOf returns symbol to held share count on a date. The map is
// owned by the caller.
func (p *Portfolio) CompositionAsOf(day Date) map[string]Quantity {
	return p.ledger.CompositionAsOf(day)
}

// ValueAsOf computes the total market value of the portfolio on a date.
// A held symbol with no price on that exact date contributes zero: no price
// means skip, not an error.
func (p *Portfolio) ValueAsOf(day Date, market *Market) Money {
	var total Money
	for symbol, quantity := range p.ledger.CompositionAsOf(day) {
		price, ok := market.Close(symbol, day)
		if !ok {
			continue
		}
		total = total.Add(MoneyFromDecimal(price).Mul(quantity))
	}
	return total
}

// DistributionAsOf returns symbol to market value on a date. Every held
// symbol appears; one with no price on that date carries a zero value,
// following the same skip policy as ValueAsOf.
func (p *Portfolio) DistributionAsOf(day Date, market *Market) map[string]Money {
	distribution := make(map[string]Money)
	for symbol, quantity := range p.ledger.CompositionAsOf(day) {
		price, ok := market.Close(symbol, day)
		if !ok {
			distribution[symbol] = Money{}
			continue
		}
		distribution[symbol] = MoneyFromDecimal(price).Mul(quantity)
	}
	return distribution
}

// Rebalance adjusts holdings toward the target weights by appending
// synthetic transactions dated on the rebalance date. Only symbols named in
// the weights are acted on; other holdings are untouched. Synthetic sells
// bypass the user sell guard, this is an engine-internal act.
//
// All validation happens before any ledger mutation: a weight sum off by
// more than 1e-9 fails with ErrInvalidWeight, a weighted symbol without a
// strictly positive close price on the date fails with ErrUnknownSymbol,
// and in both cases the ledger is left unchanged.
func (p *Portfolio) Rebalance(day Date, weights map[string]float64, market *Market) error {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, must sum to 1", ErrInvalidWeight, sum)
	}

	totalValue := p.ValueAsOf(day, market)
	composition := p.ledger.CompositionAsOf(day)

	// Resolve every close price first so a missing or unusable one fails
	// the whole operation without touching the ledger. A close must be
	// strictly positive: target shares divide by it.
	closes := make(map[string]decimal.Decimal, len(weights))
	for symbol := range weights {
		price, ok := market.Close(symbol, day)
		if !ok || !price.IsPositive() {
			return fmt.Errorf("%w: no usable price for %s on %s", ErrUnknownSymbol, symbol, day)
		}
		closes[symbol] = price
	}

	for symbol, weight := range weights {
		targetValue := totalValue.Mul(Q(weight))
		target := targetValue.DivPrice(MoneyFromDecimal(closes[symbol]))
		current := composition[symbol] // zero when not held

		switch {
		case target.GreaterThan(current):
			p.ledger.RecordBuy(symbol, target.Sub(current), day)
		case target.LessThan(current):
			p.ledger.RecordSell(symbol, current.Sub(target), day)
		}
		// Exactly on target: no transaction.
	}
	return nil
}

// Ledger exposes the portfolio's ledger for read-only iteration by the
// persistence and reporting layers.
func (p *Portfolio) Ledger() *Ledger { return p.ledger }
