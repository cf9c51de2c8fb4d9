package stockfolio

import (
	"errors"
	"math"
	"testing"
)

func TestPortfolio_SellGuard(t *testing.T) {
	day := MustParseDate("2023-02-01")

	testCases := []struct {
		name    string
		held    int64
		sell    int64
		wantErr error
	}{
		{"partial sale allowed", 10, 4, nil},
		{"selling everything rejected", 10, 10, ErrCannotSell},
		{"selling more than held rejected", 10, 11, ErrCannotSell},
		{"never held rejected", 0, 1, ErrCannotSell},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio("test")
			if tc.held > 0 {
				if err := p.Buy("AAPL", QInt(tc.held), MustParseDate("2023-01-01")); err != nil {
					t.Fatal(err)
				}
			}

			err := p.Sell("AAPL", QInt(tc.sell), day)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Sell = %v, want %v", err, tc.wantErr)
				}
				// A rejected sale leaves the position untouched.
				if got := p.Ledger().PositionAsOf("AAPL", day); !got.Equal(QInt(tc.held)) {
					t.Errorf("position after rejected sale = %s, want %d", got, tc.held)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sell: %v", err)
			}
			if got := p.Ledger().PositionAsOf("AAPL", day); !got.Equal(QInt(tc.held - tc.sell)) {
				t.Errorf("position = %s, want %d", got, tc.held-tc.sell)
			}
		})
	}
}

func TestPortfolio_SellGuardUsesDateOfSale(t *testing.T) {
	p := NewPortfolio("test")
	if err := p.Buy("AAPL", QInt(10), MustParseDate("2023-06-01")); err != nil {
		t.Fatal(err)
	}
	// On a date before the buy, nothing is held yet.
	if err := p.Sell("AAPL", QInt(1), MustParseDate("2023-01-01")); !errors.Is(err, ErrCannotSell) {
		t.Errorf("backdated sale = %v, want ErrCannotSell", err)
	}
}

func TestPortfolio_BuyRejectsNonPositive(t *testing.T) {
	p := NewPortfolio("test")
	for _, shares := range []Quantity{QInt(0), QInt(-3)} {
		if err := p.Buy("AAPL", shares, MustParseDate("2023-01-01")); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Buy(%s) = %v, want ErrInvalidQuantity", shares, err)
		}
	}
	if got := p.Ledger().Len("AAPL"); got != 0 {
		t.Errorf("rejected buys left %d ledger entries", got)
	}
}

func TestPortfolio_ValueAsOf(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 150},
		"GOOG": {"2023-03-01": 100},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")
	mustBuy(t, p, "GOOG", QInt(5), "2023-01-01")

	got := p.ValueAsOf(MustParseDate("2023-03-01"), market)
	if want := 10*150.0 + 5*100.0; got.InexactFloat64() != want {
		t.Errorf("value = %s, want %v", got, want)
	}
}

func TestPortfolio_ValueSkipsMissingPrice(t *testing.T) {
	// GOOG has no price on the valuation date: it contributes zero, the
	// valuation itself succeeds.
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 150},
		"GOOG": {"2023-02-28": 100},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")
	mustBuy(t, p, "GOOG", QInt(5), "2023-01-01")

	day := MustParseDate("2023-03-01")
	if got := p.ValueAsOf(day, market); got.InexactFloat64() != 1500 {
		t.Errorf("value = %s, want 1500", got)
	}

	dist := p.DistributionAsOf(day, market)
	if len(dist) != 2 {
		t.Fatalf("distribution has %d entries %v, want 2", len(dist), dist)
	}
	if !dist["GOOG"].IsZero() {
		t.Errorf("GOOG without a price = %s, want zero", dist["GOOG"])
	}
	if dist["AAPL"].InexactFloat64() != 1500 {
		t.Errorf("AAPL = %s, want 1500", dist["AAPL"])
	}
}

func TestPortfolio_Rebalance(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 100},
		"GOOG": {"2023-03-01": 50},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01") // 1000
	mustBuy(t, p, "GOOG", QInt(4), "2023-01-01")  // 200

	day := MustParseDate("2023-03-01")
	weights := map[string]float64{"AAPL": 0.5, "GOOG": 0.5}
	if err := p.Rebalance(day, weights, market); err != nil {
		t.Fatalf("Rebalance: %v", err)
	}

	total := p.ValueAsOf(day, market).InexactFloat64()
	dist := p.DistributionAsOf(day, market)
	for symbol, weight := range weights {
		got := dist[symbol].InexactFloat64() / total
		if math.Abs(got-weight) > 1e-3 {
			t.Errorf("%s weight after rebalance = %v, want %v", symbol, got, weight)
		}
	}
	// Total value is conserved: rebalancing trades, it doesn't create money.
	if math.Abs(total-1200) > 1e-6 {
		t.Errorf("total after rebalance = %v, want 1200", total)
	}
}

func TestPortfolio_RebalanceBuysUnheldSymbol(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 100},
		"MSFT": {"2023-03-01": 200},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")

	day := MustParseDate("2023-03-01")
	if err := p.Rebalance(day, map[string]float64{"AAPL": 0.5, "MSFT": 0.5}, market); err != nil {
		t.Fatalf("Rebalance: %v", err)
	}
	comp := p.CompositionAsOf(day)
	if !comp["MSFT"].IsPositive() {
		t.Errorf("MSFT not bought in: composition %v", comp)
	}
}

func TestPortfolio_RebalanceInvalidWeights(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 100},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")

	day := MustParseDate("2023-03-01")
	for _, weights := range []map[string]float64{
		{"AAPL": 0.9},
		{"AAPL": 0.7, "GOOG": 0.4},
		{},
	} {
		err := p.Rebalance(day, weights, market)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Rebalance(%v) = %v, want ErrInvalidWeight", weights, err)
		}
	}
	if got := p.Ledger().Len("AAPL"); got != 1 {
		t.Errorf("rejected rebalances mutated the ledger: %d entries", got)
	}
}

func TestPortfolio_RebalanceMissingPriceLeavesLedgerUntouched(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 100},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")

	day := MustParseDate("2023-03-01")
	err := p.Rebalance(day, map[string]float64{"AAPL": 0.5, "GOOG": 0.5}, market)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Rebalance = %v, want ErrUnknownSymbol", err)
	}
	if got := p.Ledger().Len("AAPL"); got != 1 {
		t.Errorf("failed rebalance mutated the ledger: %d AAPL entries", got)
	}
	if got := p.Ledger().Len("GOOG"); got != 0 {
		t.Errorf("failed rebalance created %d GOOG entries", got)
	}
}

func TestPortfolio_RebalanceZeroPriceLeavesLedgerUntouched(t *testing.T) {
	// A zero close is unusable: target shares divide by the price. The
	// rebalance must fail up front, not mid-mutation.
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-03-01": 100},
		"ZERO": {"2023-03-01": 0},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")

	day := MustParseDate("2023-03-01")
	err := p.Rebalance(day, map[string]float64{"AAPL": 0.5, "ZERO": 0.5}, market)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Rebalance = %v, want ErrUnknownSymbol", err)
	}
	if got := p.Ledger().Len("AAPL"); got != 1 {
		t.Errorf("failed rebalance mutated the ledger: %d AAPL entries", got)
	}
	if got := p.Ledger().Len("ZERO"); got != 0 {
		t.Errorf("failed rebalance created %d ZERO entries", got)
	}
}

func mustBuy(t *testing.T, p *Portfolio, symbol string, shares Quantity, day string) {
	t.Helper()
	if err := p.Buy(symbol, shares, MustParseDate(day)); err != nil {
		t.Fatalf("Buy %s: %v", symbol, err)
	}
}
