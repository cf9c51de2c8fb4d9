package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type buyCmd struct {
	name   string
	symbol string
	shares string
	date   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a stock purchase" }
func (*buyCmd) Usage() string {
	return `stockfolio buy -name <portfolio> -symbol <ticker> -shares <n> [-date <YYYY-MM-DD>]

  Appends a BUY transaction to the portfolio. The date defaults to today
  and may be in the past. The symbol is checked against the reference list
  when -symbols is set, and its price history is fetched into the cache.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to buy into.")
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to buy.")
	f.StringVar(&c.shares, "shares", "", "Number of shares, fractional allowed.")
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.symbol == "" || c.shares == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -symbol and -shares are required.")
		return subcommands.ExitUsageError
	}
	shares, err := stockfolio.ParseQuantity(c.shares)
	if err != nil {
		return fail(err)
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		if err := m.Buy(ctx, p.Name(), c.symbol, shares, day); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %s %s on %s\n", shares, c.symbol, day)
	return subcommands.ExitSuccess
}
