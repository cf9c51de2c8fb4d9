package stockfolio

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Model is the registry tying portfolios, the shared market and the symbol
// reference list together. The command layer talks to the model; the model
// delegates to the portfolio engine. Operations are synchronous and
// single-user: each one runs to completion before the next is accepted.
type Model struct {
	portfolios map[string]*Portfolio
	market     *Market
	symbols    SymbolChecker
}

// NewModel creates an empty model. The symbol checker may be nil, in which
// case every symbol the provider knows is accepted.
func NewModel(market *Market, symbols SymbolChecker) *Model {
	return &Model{
		portfolios: make(map[string]*Portfolio),
		market:     market,
		symbols:    symbols,
	}
}

// Market returns the shared market.
func (m *Model) Market() *Market { return m.market }

// CreatePortfolio creates and registers an empty portfolio. The name must
// be unique within the model.
func (m *Model) CreatePortfolio(name string) (*Portfolio, error) {
	if _, exists := m.portfolios[name]; exists {
		return nil, fmt.Errorf("%w: name %q already exists", ErrInvalidPortfolio, name)
	}
	p := NewPortfolio(name)
	m.portfolios[name] = p
	return p, nil
}

// Portfolio looks up a registered portfolio by name.
func (m *Model) Portfolio(name string) (*Portfolio, error) {
	p, ok := m.portfolios[name]
	if !ok {
		return nil, fmt.Errorf("%w: not found: %q", ErrInvalidPortfolio, name)
	}
	return p, nil
}

// Register adds an already-built portfolio, typically a loaded one. The
// portfolio keeps the name declared in its file; a collision is rejected
// and nothing is registered.
func (m *Model) Register(p *Portfolio) error {
	if _, exists := m.portfolios[p.Name()]; exists {
		return fmt.Errorf("%w: name %q already exists", ErrInvalidPortfolio, p.Name())
	}
	m.portfolios[p.Name()] = p
	return nil
}

// PortfolioNames iterates registered names, sorted.
func (m *Model) PortfolioNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(m.portfolios))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Buy validates the symbol against the reference list, ensures its price
// history is cached, then records the purchase.
func (m *Model) Buy(ctx context.Context, portfolio, symbol string, shares Quantity, day Date) error {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return err
	}
	if m.symbols != nil && !m.symbols.IsValidSymbol(symbol) {
		return fmt.Errorf("%w: %s is not in the reference list", ErrUnknownSymbol, symbol)
	}
	if err := m.market.Ensure(ctx, symbol); err != nil {
		return err
	}
	return p.Buy(symbol, shares, day)
}

// Sell records a sale, subject to the portfolio's sell guard.
func (m *Model) Sell(ctx context.Context, portfolio, symbol string, shares Quantity, day Date) error {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return err
	}
	if err := m.market.Ensure(ctx, symbol); err != nil {
		return err
	}
	return p.Sell(symbol, shares, day)
}

// ensureHeld fetches price history for every symbol held on the date, so
// valuation reads hit the cache. Provider misses degrade to a zero
// contribution, matching the valuation skip policy.
func (m *Model) ensureHeld(ctx context.Context, p *Portfolio, day Date) {
	for symbol := range p.CompositionAsOf(day) {
		// A fetch error here surfaces later as a missing price.
		_ = m.market.Ensure(ctx, symbol)
	}
}

// Value computes the portfolio's total value on a date.
func (m *Model) Value(ctx context.Context, portfolio string, day Date) (Money, error) {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return Money{}, err
	}
	m.ensureHeld(ctx, p, day)
	return p.ValueAsOf(day, m.market), nil
}

// Composition returns symbol to held shares on a date.
func (m *Model) Composition(portfolio string, day Date) (map[string]Quantity, error) {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return nil, err
	}
	return p.CompositionAsOf(day), nil
}

// Distribution returns symbol to market value on a date.
func (m *Model) Distribution(ctx context.Context, portfolio string, day Date) (map[string]Money, error) {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return nil, err
	}
	m.ensureHeld(ctx, p, day)
	return p.DistributionAsOf(day, m.market), nil
}

// Rebalance adjusts a portfolio toward target weights on a date.
func (m *Model) Rebalance(ctx context.Context, portfolio string, day Date, weights map[string]float64) error {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return err
	}
	m.ensureHeld(ctx, p, day)
	for symbol := range weights {
		if err := m.market.Ensure(ctx, symbol); err != nil {
			return err
		}
	}
	return p.Rebalance(day, weights, m.market)
}

// Chart samples the portfolio value over a range for the text chart.
func (m *Model) Chart(ctx context.Context, portfolio string, r Range) (ChartSeries, error) {
	p, err := m.Portfolio(portfolio)
	if err != nil {
		return ChartSeries{}, err
	}
	m.ensureHeld(ctx, p, r.To)
	return BuildChartSeries(p, m.market, r), nil
}
