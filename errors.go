package stockfolio

import "errors"

// Sentinel errors for every failure the engine can report. Operations wrap
// them with detail, so callers test with errors.Is.
var (
	// ErrUnknownSymbol reports that the quote provider has no data at all
	// for a symbol, or that a required price is missing for rebalancing.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidPortfolio reports a portfolio name collision on create or a
	// lookup miss.
	ErrInvalidPortfolio = errors.New("invalid portfolio")
	// ErrCannotSell reports a sell of at least the currently held quantity.
	ErrCannotSell = errors.New("cannot sell")
	// ErrInvalidWeight reports rebalance target weights not summing to 1.
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrInvalidQuantity reports a non-positive share count or window.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidDate reports an unparseable date or a date without the
	// price data an operation requires.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInsufficientData reports a moving-average window with no price data.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrMalformedFile reports a structural deviation in a portfolio file.
	ErrMalformedFile = errors.New("malformed portfolio file")
)
