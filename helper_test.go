package stockfolio

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// stubProvider serves canned price histories, counting fetches so tests can
// assert the once-per-symbol caching discipline.
type stubProvider struct {
	histories map[string][]PricePoint
	fetches   map[string]int
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		histories: make(map[string][]PricePoint),
		fetches:   make(map[string]int),
	}
}

// add appends one close-only price point for a symbol.
func (s *stubProvider) add(symbol, day string, closePrice float64) *stubProvider {
	s.histories[symbol] = append(s.histories[symbol], PricePoint{
		Date:  MustParseDate(day),
		Close: decimal.NewFromFloat(closePrice),
	})
	return s
}

func (s *stubProvider) FetchDailyHistory(_ context.Context, symbol string) ([]PricePoint, error) {
	s.fetches[symbol]++
	history, ok := s.histories[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return history, nil
}

// stubMarket builds a market preloaded straight into the cache, bypassing
// the provider, for engine tests that don't care about fetching.
func stubMarket(prices map[string]map[string]float64) *Market {
	m := NewMarket(newStubProvider())
	for symbol, days := range prices {
		for day, closePrice := range days {
			m.AddPrice(symbol, PricePoint{
				Date:  MustParseDate(day),
				Close: decimal.NewFromFloat(closePrice),
			})
		}
	}
	return m
}
