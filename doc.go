// Package stockfolio tracks stock portfolios: an append-only transaction
// ledger per portfolio, composition and valuation at any date, rebalancing
// toward target weights, and simple textual performance charting backed by
// daily historical prices from a quote provider with a local CSV cache.
//
// The package is organized around a few value types:
//
//   - [Date], [Range] and [Granularity] provide day-level dates, inclusive
//     date ranges and the bucketing used by charts.
//   - [Quantity] and [Money] wrap decimal arithmetic for share counts and
//     monetary values.
//   - [PriceSeries] and [Market] cache per-symbol daily prices, populated by
//     an injected [QuoteProvider].
//   - [Portfolio] reconstructs composition, value and distribution from its
//     ledger and emits synthetic transactions on rebalancing.
//   - [Model] is the registry tying portfolios, the market and the symbol
//     reference list together for the command layer.
package stockfolio
