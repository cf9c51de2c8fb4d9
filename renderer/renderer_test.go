package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stockfolio"
)

func TestHoldingMarkdown(t *testing.T) {
	got := HoldingMarkdown("retirement", stockfolio.MustParseDate("2023-03-01"), map[string]stockfolio.Quantity{
		"GOOG": stockfolio.QInt(5),
		"AAPL": stockfolio.QInt(10),
	})

	mustContain(t, got, "# Composition of retirement on 2023-03-01")
	mustContain(t, got, "AAPL")
	mustContain(t, got, "GOOG")
	// Symbols are listed sorted.
	if strings.Index(got, "AAPL") > strings.Index(got, "GOOG") {
		t.Errorf("symbols not sorted:\n%s", got)
	}
}

func TestHoldingMarkdown_Empty(t *testing.T) {
	got := HoldingMarkdown("empty", stockfolio.MustParseDate("2023-03-01"), nil)
	mustContain(t, got, "No holdings.")
}

func TestDistributionMarkdown(t *testing.T) {
	aapl := stockfolio.USD(1500)
	goog := stockfolio.USD(500)
	got := DistributionMarkdown("retirement", stockfolio.MustParseDate("2023-03-01"), map[string]stockfolio.Money{
		"AAPL": aapl,
		"GOOG": goog,
	})

	mustContain(t, got, "# Distribution of retirement on 2023-03-01")
	mustContain(t, got, "75.0%")
	mustContain(t, got, "25.0%")
	mustContain(t, got, "Total: "+aapl.Add(goog).String())
}

func TestDistributionMarkdown_ZeroTotal(t *testing.T) {
	// A holding without any price data renders with a blank weight, not a
	// division by zero.
	got := DistributionMarkdown("stale", stockfolio.MustParseDate("2023-03-01"), map[string]stockfolio.Money{
		"AAPL": {},
	})
	mustContain(t, got, "AAPL")
	if strings.Contains(got, "NaN") || strings.Contains(got, "Inf") {
		t.Errorf("zero total leaked into weights:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	p := stockfolio.NewPortfolio("retirement")
	if err := p.Buy("AAPL", stockfolio.QInt(10), stockfolio.MustParseDate("2023-01-10")); err != nil {
		t.Fatal(err)
	}
	if err := p.Sell("AAPL", stockfolio.QInt(4), stockfolio.MustParseDate("2023-03-01")); err != nil {
		t.Fatal(err)
	}

	got := TransactionsMarkdown(p)
	mustContain(t, got, "## AAPL")
	mustContain(t, got, "BUY")
	mustContain(t, got, "SELL")
	mustContain(t, got, "2023-01-10")
}

func TestChartText(t *testing.T) {
	s := stockfolio.ChartSeries{
		Portfolio:   "retirement",
		Range:       stockfolio.NewRange(stockfolio.MustParseDate("2023-01-01"), stockfolio.MustParseDate("2023-01-03")),
		Granularity: stockfolio.Daily,
		Points: []stockfolio.ChartPoint{
			{Date: stockfolio.MustParseDate("2023-01-01"), Value: stockfolio.USD(1000)},
			{Date: stockfolio.MustParseDate("2023-01-02"), Value: stockfolio.USD(1500)},
			{Date: stockfolio.MustParseDate("2023-01-03"), Value: stockfolio.USD(250)},
		},
		Scale: 500,
	}

	want := strings.Join([]string{
		"01 Jan 2023: **",
		"02 Jan 2023: ***",
		"03 Jan 2023: ",
		"Scale: * = 500.00 USD",
		"",
	}, "\n")
	if got := ChartText(s); got != want {
		t.Errorf("chart:\n%s\nwant:\n%s", got, want)
	}
}

func mustContain(t *testing.T, doc, want string) {
	t.Helper()
	if !strings.Contains(doc, want) {
		t.Errorf("missing %q in:\n%s", want, doc)
	}
}
