package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type distributionCmd struct {
	name string
	date string
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "market value and weight of each holding on a date" }
func (*distributionCmd) Usage() string {
	return `stockfolio distribution -name <portfolio> [-date <YYYY-MM-DD>]

  Lists each held symbol with its market value on the date and its weight
  in the total. Symbols without a price on the date show a zero value.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to report on.")
	f.StringVar(&c.date, "date", "", "Report date, defaults to today.")
}

func (c *distributionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		dist, err := m.Distribution(ctx, p.Name(), day)
		if err != nil {
			return false, err
		}
		printMarkdown(renderer.DistributionMarkdown(p.Name(), day, dist))
		return false, nil
	})
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
