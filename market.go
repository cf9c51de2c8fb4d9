package stockfolio

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Market holds the per-symbol price series, populated lazily from the
// injected provider. Once fetched, a series is immutable for readers:
// a refetch merges append-or-replace by date and never clears.
type Market struct {
	provider QuoteProvider

	mu     sync.Mutex
	series map[string]*PriceSeries
}

// NewMarket returns an empty market backed by the given provider.
func NewMarket(provider QuoteProvider) *Market {
	return &Market{
		provider: provider,
		series:   make(map[string]*PriceSeries),
	}
}

// Has reports whether the symbol's history is already cached.
func (m *Market) Has(symbol string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.series[symbol]
	return ok
}

// Ensure fetches the symbol's full history on first use. The provider call
// runs without the lock: rows land in a staging series first, then merge.
func (m *Market) Ensure(ctx context.Context, symbol string) error {
	if m.Has(symbol) {
		return nil
	}

	points, err := m.provider.FetchDailyHistory(ctx, symbol)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", symbol, err)
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	staging := NewPriceSeries()
	for _, p := range points {
		staging.Add(p)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.series[symbol]; ok {
		existing.merge(staging)
		return nil
	}
	m.series[symbol] = staging
	return nil
}

// Price returns the price point of a symbol on an exact date. False when the
// symbol is not cached or the date is not a trading day.
func (m *Market) Price(symbol string, day Date) (PricePoint, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.series[symbol]
	if !ok {
		return PricePoint{}, false
	}
	return s.At(day)
}

// Close returns the closing price of a symbol on an exact date.
func (m *Market) Close(symbol string, day Date) (decimal.Decimal, bool) {
	p, ok := m.Price(symbol, day)
	if !ok {
		return decimal.Decimal{}, false
	}
	return p.Close, true
}

// AddPrice inserts or overwrites one price point for a symbol, creating the
// series if needed. Manual entry path; values are not range-checked.
func (m *Market) AddPrice(symbol string, p PricePoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.series[symbol]
	if !ok {
		s = NewPriceSeries()
		m.series[symbol] = s
	}
	s.Add(p)
}

// Series returns the cached series of a symbol, or nil when never fetched.
func (m *Market) Series(symbol string) *PriceSeries {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.series[symbol]
}
