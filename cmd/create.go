package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type createCmd struct {
	name string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new empty portfolio" }
func (*createCmd) Usage() string {
	return `stockfolio create -name <name>

  Creates an empty portfolio and saves it to the store. Fails when a
  portfolio file with that name already exists.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the portfolio to create.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(portfolioPath(c.name)); err == nil {
		fmt.Fprintf(os.Stderr, "Error: portfolio %q already exists.\n", c.name)
		return subcommands.ExitFailure
	}

	if err := savePortfolio(stockfolio.NewPortfolio(c.name)); err != nil {
		return fail(err)
	}
	fmt.Printf("Created portfolio %q in %s\n", c.name, portfolioPath(c.name))
	return subcommands.ExitSuccess
}
