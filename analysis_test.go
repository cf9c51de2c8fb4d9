package stockfolio

import (
	"errors"
	"testing"
)

func TestMovingAverage(t *testing.T) {
	// Mon-Fri prices, then a weekend gap: averages divide by the number of
	// days that actually have data.
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {
			"2023-05-01": 100,
			"2023-05-02": 110,
			"2023-05-03": 120,
			"2023-05-04": 130,
			"2023-05-05": 140,
			// 06 and 07 are the weekend
			"2023-05-08": 150,
		},
	})

	testCases := []struct {
		name   string
		day    string
		window int
		want   float64
	}{
		{"full window", "2023-05-05", 5, 120},
		{"window crosses the weekend", "2023-05-08", 4, 145}, // only 05 and 08 have data
		{"window larger than history", "2023-05-05", 30, 120},
		{"single day", "2023-05-03", 1, 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MovingAverage(market, "AAPL", MustParseDate(tc.day), tc.window)
			if err != nil {
				t.Fatalf("MovingAverage: %v", err)
			}
			if v, _ := got.Float64(); v != tc.want {
				t.Errorf("MovingAverage = %v, want %v", v, tc.want)
			}
		})
	}
}

func TestMovingAverage_Errors(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {"2023-05-01": 100},
	})

	if _, err := MovingAverage(market, "AAPL", MustParseDate("2023-05-01"), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero window = %v, want ErrInvalidQuantity", err)
	}
	if _, err := MovingAverage(market, "AAPL", MustParseDate("2024-05-01"), 10); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty window = %v, want ErrInsufficientData", err)
	}
	if _, err := MovingAverage(market, "ZZZZ", MustParseDate("2023-05-01"), 10); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("unknown symbol = %v, want ErrInsufficientData", err)
	}
}

func TestIsCrossover(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {
			"2023-05-01": 100,
			"2023-05-02": 100,
			"2023-05-03": 130, // above the 3-day average of 110
		},
		"FLAT": {
			"2023-05-01": 100,
			"2023-05-02": 100,
			"2023-05-03": 100,
		},
	})

	up, err := IsCrossover(market, "AAPL", MustParseDate("2023-05-03"), 3)
	if err != nil {
		t.Fatalf("IsCrossover: %v", err)
	}
	if !up {
		t.Error("rising close not reported as a crossover")
	}

	flat, err := IsCrossover(market, "FLAT", MustParseDate("2023-05-03"), 3)
	if err != nil {
		t.Fatalf("IsCrossover: %v", err)
	}
	if flat {
		t.Error("close equal to its average reported as a crossover")
	}
}

func TestGainOrLoss(t *testing.T) {
	market := stubMarket(map[string]map[string]float64{
		"AAPL": {
			"2023-01-02": 120,
			"2023-06-01": 180,
		},
	})

	gain, err := GainOrLoss(market, "AAPL", MustParseDate("2023-01-02"), MustParseDate("2023-06-01"))
	if err != nil {
		t.Fatalf("GainOrLoss: %v", err)
	}
	if v, _ := gain.Float64(); v != 60 {
		t.Errorf("gain = %v, want 60", v)
	}

	loss, err := GainOrLoss(market, "AAPL", MustParseDate("2023-06-01"), MustParseDate("2023-01-02"))
	if err != nil {
		t.Fatalf("GainOrLoss: %v", err)
	}
	if v, _ := loss.Float64(); v != -60 {
		t.Errorf("loss = %v, want -60", v)
	}

	if _, err := GainOrLoss(market, "AAPL", MustParseDate("2023-01-01"), MustParseDate("2023-06-01")); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("missing start price = %v, want ErrInvalidDate", err)
	}
}
