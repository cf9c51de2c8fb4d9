package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type valueCmd struct {
	name string
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "total market value of a portfolio on a date" }
func (*valueCmd) Usage() string {
	return `stockfolio value -name <portfolio> [-date <YYYY-MM-DD>]

  Prints the total market value: shares times closing price, summed over
  the holdings. Held symbols without a price on the date contribute zero.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to value.")
	f.StringVar(&c.date, "date", "", "Valuation date, defaults to today.")
}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		value, err := m.Value(ctx, p.Name(), day)
		if err != nil {
			return false, err
		}
		fmt.Printf("Value of %s on %s: %s\n", p.Name(), day, value)
		return false, nil
	})
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
