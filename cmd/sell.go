package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type sellCmd struct {
	name   string
	symbol string
	shares string
	date   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a stock sale" }
func (*sellCmd) Usage() string {
	return `stockfolio sell -name <portfolio> -symbol <ticker> -shares <n> [-date <YYYY-MM-DD>]

  Appends a SELL transaction to the portfolio. The sale must leave a
  strictly positive position on its date: selling the whole position is
  rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to sell from.")
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to sell.")
	f.StringVar(&c.shares, "shares", "", "Number of shares, fractional allowed.")
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if err := m.Sell(ctx, p.Name(), c.symbol, shares, day); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %s %s on %s\n", shares, c.symbol, day)
	return subcommands.ExitSuccess
}
