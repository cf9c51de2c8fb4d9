package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type compositionCmd struct {
	name string
	date string
}

func (*compositionCmd) Name() string     { return "composition" }
func (*compositionCmd) Synopsis() string { return "list held symbols and share counts on a date" }
func (*compositionCmd) Usage() string {
	return `stockfolio composition -name <portfolio> [-date <YYYY-MM-DD>]

  Lists each held symbol with its share count on the date. No price data
  is involved; this works offline.
`
}

func (c *compositionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to report on.")
	f.StringVar(&c.date, "date", "", "Report date, defaults to today.")
}

func (c *compositionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	p, err := loadPortfolio(c.name)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HoldingMarkdown(p.Name(), day, p.CompositionAsOf(day)))
	return subcommands.ExitSuccess
}
