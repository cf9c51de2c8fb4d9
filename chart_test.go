package stockfolio

import "testing"

func TestChartScale(t *testing.T) {
	testCases := []struct {
		max  float64
		want float64
	}{
		{0, 500},
		{400, 500},
		{25000, 500},  // 25000/500 = 50 bars, still fits
		{25500, 1000}, // 51 bars at 500
		{50000, 1000},
		{100000, 2000},
		{250000, 5000}, // beyond the round scales: exactly max/50
	}

	for _, tc := range testCases {
		if got := chartScale(tc.max); got != tc.want {
			t.Errorf("chartScale(%v) = %v, want %v", tc.max, got, tc.want)
		}
	}
}

func TestBuildChartSeries(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {
			"2023-01-01": 100,
			"2023-01-02": 110,
			// 03 has no price: carry-forward day
			"2023-01-04": 120,
			"2023-01-05": 90,
		},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(10), "2023-01-01")

	r := NewRange(MustParseDate("2023-01-01"), MustParseDate("2023-01-05"))
	s := BuildChartSeries(p, market, r)

	if s.Portfolio != "test" {
		t.Errorf("series portfolio = %q, want %q", s.Portfolio, "test")
	}
	if s.Granularity != Daily {
		t.Errorf("granularity = %s, want %s", s.Granularity, Daily)
	}
	if len(s.Points) != 5 {
		t.Fatalf("got %d points, want 5", len(s.Points))
	}

	wantValues := []float64{1000, 1100, 1100, 1200, 900} // 03 carries 02 forward
	for i, want := range wantValues {
		if got := s.Points[i].Value.InexactFloat64(); got != want {
			t.Errorf("point %d (%s) = %v, want %v", i, s.Points[i].Date, got, want)
		}
	}

	if s.Scale != 500 {
		t.Errorf("scale = %v, want 500", s.Scale)
	}
	if got := s.Bars(s.Points[3]); got != 2 { // 1200 at scale 500
		t.Errorf("Bars(1200) = %d, want 2", got)
	}
}

func TestBuildChartSeries_LeadingGapStaysZero(t *testing.T) {
	// No value yet at the start of the range: there is nothing to carry
	// forward, the early points are zero.
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-01-03": 100},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(1), "2023-01-03")

	r := NewRange(MustParseDate("2023-01-01"), MustParseDate("2023-01-04"))
	s := BuildChartSeries(p, market, r)

	if len(s.Points) != 4 {
		t.Fatalf("got %d points, want 4", len(s.Points))
	}
	for i := 0; i < 2; i++ {
		if !s.Points[i].Value.IsZero() {
			t.Errorf("point %d = %s, want zero", i, s.Points[i].Value)
		}
	}
	if got := s.Points[2].Value.InexactFloat64(); got != 100 {
		t.Errorf("point 2 = %v, want 100", got)
	}
}

func TestChartSeries_BarsClampsNegativeValues(t *testing.T) {
	// Negative prices are accepted by the data model, so a sampled value can
	// be negative. Such a row renders empty rather than underflowing.
	s := ChartSeries{Scale: 500}
	testCases := []struct {
		value float64
		want  int
	}{
		{-1200, 0},
		{0, 0},
		{499, 0},
		{1200, 2},
	}
	for _, tc := range testCases {
		pt := ChartPoint{Value: USD(tc.value)}
		if got := s.Bars(pt); got != tc.want {
			t.Errorf("Bars(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestBuildChartSeries_RowsNeverExceedMaxBars(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-01-02": 123456},
	})
	p := NewPortfolio("test")
	mustBuy(t, p, "AAPL", QInt(1), "2023-01-01")

	r := NewRange(MustParseDate("2023-01-01"), MustParseDate("2023-01-03"))
	s := BuildChartSeries(p, market, r)
	for _, pt := range s.Points {
		if got := s.Bars(pt); got > maxBars {
			t.Errorf("Bars(%s) = %d, exceeds %d", pt.Date, got, maxBars)
		}
	}
}
