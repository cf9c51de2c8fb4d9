package stockfolio

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// PricePoint is one day of OHLCV data for a symbol. Immutable once created.
// Values are deliberately not range-checked: the data model trusts the
// upstream feed for values, not for presence.
type PricePoint struct {
	Date   Date
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// PriceSeries holds the historical daily prices of one symbol. It grows only
// by insertion and a later insert for the same date overwrites the earlier
// one (last-write-wins).
type PriceSeries struct {
	points map[Date]PricePoint
}

// NewPriceSeries returns an empty series.
func NewPriceSeries() *PriceSeries {
	return &PriceSeries{points: make(map[Date]PricePoint)}
}

// Add inserts or overwrites the price point for its date.
func (s *PriceSeries) Add(p PricePoint) { s.points[p.Date] = p }

// At returns the price point for an exact date. A false means the date is
// not a trading day in the cached dataset, which callers interpret
// contextually (skip the day, contribute zero, or report missing data).
// There is no calendar-gap interpolation.
func (s *PriceSeries) At(day Date) (PricePoint, bool) {
	p, ok := s.points[day]
	return p, ok
}

// Len returns the number of cached days.
func (s *PriceSeries) Len() int { return len(s.points) }

// All iterates price points in chronological order.
func (s *PriceSeries) All() iter.Seq[PricePoint] {
	return func(yield func(PricePoint) bool) {
		days := slices.Collect(maps.Keys(s.points))
		slices.SortFunc(days, func(a, b Date) int {
			switch {
			case a.Before(b):
				return -1
			case a.After(b):
				return 1
			default:
				return 0
			}
		})
		for _, day := range days {
			if !yield(s.points[day]) {
				return
			}
		}
	}
}

// merge copies every point of other into s, append-or-replace by date.
func (s *PriceSeries) merge(other *PriceSeries) {
	for day, p := range other.points {
		s.points[day] = p
	}
}
