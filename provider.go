package stockfolio

import "context"

// QuoteProvider supplies the full daily price history of a symbol. The
// engine consumes it once per symbol on first use and caches the result in
// the Market for the process lifetime.
//
// Implementations return ErrUnknownSymbol (wrapped) when they have no data
// at all for the symbol; a missing single date is not an error, it simply
// does not appear in the rows.
type QuoteProvider interface {
	FetchDailyHistory(ctx context.Context, symbol string) ([]PricePoint, error)
}

// SymbolChecker reports whether a ticker symbol exists in a reference list.
// The model consults it before allowing a buy.
type SymbolChecker interface {
	IsValidSymbol(symbol string) bool
}
