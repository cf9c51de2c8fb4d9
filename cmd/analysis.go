package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// The analysis commands work on a single symbol's price history; no
// portfolio is involved. They share the symbol/date flag handling.

type movingAverageCmd struct {
	symbol string
	date   string
	window int
}

func (*movingAverageCmd) Name() string     { return "moving-average" }
func (*movingAverageCmd) Synopsis() string { return "average closing price over a trailing window" }
func (*movingAverageCmd) Usage() string {
	return `stockfolio moving-average -symbol <ticker> -window <days> [-date <YYYY-MM-DD>]

  Averages the closing prices over the window of calendar days ending at
  the date. Days without data (weekends, holidays) are left out of the
  average rather than counted as zero.
`
}

func (c *movingAverageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze.")
	f.StringVar(&c.date, "date", "", "End of the window, defaults to today.")
	f.IntVar(&c.window, "window", 30, "Window length in calendar days.")
}

func (c *movingAverageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, day, status := analysisSetup(ctx, c.symbol, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	avg, err := stockfolio.MovingAverage(market, c.symbol, day, c.window)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%d-day moving average of %s on %s: %s\n", c.window, c.symbol, day, avg.StringFixed(2))
	return subcommands.ExitSuccess
}

type crossoverCmd struct {
	symbol string
	date   string
	window int
}

func (*crossoverCmd) Name() string     { return "crossover" }
func (*crossoverCmd) Synopsis() string { return "check whether the close is above its moving average" }
func (*crossoverCmd) Usage() string {
	return `stockfolio crossover -symbol <ticker> -window <days> [-date <YYYY-MM-DD>]

  Reports whether the closing price on the date is above the moving
  average of the same window, a common buy signal.
`
}

func (c *crossoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze.")
	f.StringVar(&c.date, "date", "", "Date to check, defaults to today.")
	f.IntVar(&c.window, "window", 30, "Window length in calendar days.")
}

func (c *crossoverCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, day, status := analysisSetup(ctx, c.symbol, c.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	above, err := stockfolio.IsCrossover(market, c.symbol, day, c.window)
	if err != nil {
		return fail(err)
	}
	if above {
		fmt.Printf("%s closed above its %d-day moving average on %s\n", c.symbol, c.window, day)
	} else {
		fmt.Printf("%s closed at or below its %d-day moving average on %s\n", c.symbol, c.window, day)
	}
	return subcommands.ExitSuccess
}

type gainCmd struct {
	symbol string
	from   string
	to     string
}

func (*gainCmd) Name() string     { return "gain" }
func (*gainCmd) Synopsis() string { return "price change of a symbol between two dates" }
func (*gainCmd) Usage() string {
	return `stockfolio gain -symbol <ticker> -from <YYYY-MM-DD> [-to <YYYY-MM-DD>]

  Prints close(to) minus close(from). Both dates must be trading days
  with price data.
`
}

func (c *gainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze.")
	f.StringVar(&c.from, "from", "", "Start date.")
	f.StringVar(&c.to, "to", "", "End date, defaults to today.")
}

func (c *gainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol and -from are required.")
		return subcommands.ExitUsageError
	}
	from, err := stockfolio.ParseDate(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := parseDateFlag(c.to)
	if err != nil {
		return fail(err)
	}

	market := newMarket()
	if err := market.Ensure(ctx, c.symbol); err != nil {
		return fail(err)
	}
	delta, err := stockfolio.GainOrLoss(market, c.symbol, from, to)
	if err != nil {
		return fail(err)
	}
	sign := ""
	if delta.IsPositive() {
		sign = "+"
	}
	fmt.Printf("%s from %s to %s: %s%s %s\n", c.symbol, from, to, sign, delta.StringFixed(2), stockfolio.ReportingCurrency)
	return subcommands.ExitSuccess
}

// analysisSetup validates the shared flags and warms the price cache.
func analysisSetup(ctx context.Context, symbol, date string) (*stockfolio.Market, stockfolio.Date, subcommands.ExitStatus) {
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return nil, stockfolio.Date{}, subcommands.ExitUsageError
	}
	day, err := parseDateFlag(date)
	if err != nil {
		return nil, stockfolio.Date{}, fail(err)
	}
	market := newMarket()
	if err := market.Ensure(ctx, symbol); err != nil {
		return nil, stockfolio.Date{}, fail(err)
	}
	return market, day, subcommands.ExitSuccess
}
