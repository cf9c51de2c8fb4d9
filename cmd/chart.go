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

type chartCmd struct {
	name string
	from string
	to   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "text chart of portfolio value over a date range" }
func (*chartCmd) Usage() string {
	return `stockfolio chart -name <portfolio> -from <YYYY-MM-DD> [-to <YYYY-MM-DD>]

  Prints the portfolio value over the range as rows of asterisks, one row
  per day, week, month, half-year or year depending on the range length.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to chart.")
	f.StringVar(&c.from, "from", "", "Start of the range.")
	f.StringVar(&c.to, "to", "", "End of the range, defaults to today.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -from are required.")
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

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		series, err := m.Chart(ctx, p.Name(), stockfolio.NewRange(from, to))
		if err != nil {
			return false, err
		}
		printMarkdown(renderer.ChartMarkdown(series))
		return false, nil
	})
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
