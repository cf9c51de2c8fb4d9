package stockfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MovingAverage computes the average close over the windowDays calendar days
// ending at day inclusive. Only days with price data count, and the
// denominator is the count of available days, not windowDays: market
// holidays and weekends simply don't weigh in. A window with no data at all
// fails with ErrInsufficientData.
func MovingAverage(market *Market, symbol string, day Date, windowDays int) (decimal.Decimal, error) {
	if windowDays <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: window of %d days", ErrInvalidQuantity, windowDays)
	}
	var total decimal.Decimal
	var count int64
	for i := 0; i < windowDays; i++ {
		if p, ok := market.Price(symbol, day.Add(-i)); ok {
			total = total.Add(p.Close)
			count++
		}
	}
	if count == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: no prices for %s in the %d days ending %s",
			ErrInsufficientData, symbol, windowDays, day)
	}
	return total.Div(decimal.NewFromInt(count)), nil
}

// IsCrossover reports whether the close on the given day exists and is above
// the moving average of the same window.
func IsCrossover(market *Market, symbol string, day Date, windowDays int) (bool, error) {
	avg, err := MovingAverage(market, symbol, day, windowDays)
	if err != nil {
		return false, err
	}
	p, ok := market.Price(symbol, day)
	return ok && p.Close.GreaterThan(avg), nil
}

// GainOrLoss computes close(end) minus close(start) for a symbol. Either
// date without price data fails with ErrInvalidDate.
func GainOrLoss(market *Market, symbol string, start, end Date) (decimal.Decimal, error) {
	startPrice, ok := market.Price(symbol, start)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no price for %s on %s", ErrInvalidDate, symbol, start)
	}
	endPrice, ok := market.Price(symbol, end)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no price for %s on %s", ErrInvalidDate, symbol, end)
	}
	return endPrice.Close.Sub(startPrice.Close), nil
}
