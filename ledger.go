package stockfolio

import (
	"iter"
	"maps"
	"slices"
)

// Ledger records ownership changes over time, one append-only transaction
// list per symbol. It is the source of truth for holdings: composition at
// any date is the signed sum of deltas, never a stored counter. Entries are
// never deleted; selling appends a SELL entry.
type Ledger struct {
	entries map[string][]Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string][]Transaction)}
}

// RecordBuy appends a BUY entry. Share validation happens one layer up.
func (l *Ledger) RecordBuy(symbol string, shares Quantity, day Date) {
	l.append(Transaction{Security: symbol, Shares: shares, Date: day, Type: TxBuy})
}

// RecordSell appends a SELL entry. The sell guard happens one layer up,
// before this call.
func (l *Ledger) RecordSell(symbol string, shares Quantity, day Date) {
	l.append(Transaction{Security: symbol, Shares: shares, Date: day, Type: TxSell})
}

func (l *Ledger) append(tx Transaction) {
	l.entries[tx.Security] = append(l.entries[tx.Security], tx)
}

// CompositionAsOf sums signed deltas over transactions dated on or before
// the given date, per symbol. Symbols netting to zero or negative are
// omitted (negative never occurs while the sell guard holds).
func (l *Ledger) CompositionAsOf(day Date) map[string]Quantity {
	composition := make(map[string]Quantity)
	for symbol, txs := range l.entries {
		var total Quantity
		for _, tx := range txs {
			if !tx.Date.After(day) {
				total = total.Add(tx.Delta())
			}
		}
		if total.IsPositive() {
			composition[symbol] = total
		}
	}
	return composition
}

// PositionAsOf returns the net shares of one symbol on a date, zero when
// never traded or fully sold.
func (l *Ledger) PositionAsOf(symbol string, day Date) Quantity {
	var total Quantity
	for _, tx := range l.entries[symbol] {
		if !tx.Date.After(day) {
			total = total.Add(tx.Delta())
		}
	}
	return total
}

// Symbols iterates the symbols ever traded, sorted.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(l.entries))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// Transactions iterates one symbol's entries in insertion order. The
// returned values are copies; callers cannot mutate ledger state.
func (l *Ledger) Transactions(symbol string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.entries[symbol] {
			if !yield(tx) {
				return
			}
		}
	}
}

// Len returns the number of entries for a symbol.
func (l *Ledger) Len(symbol string) int { return len(l.entries[symbol]) }
