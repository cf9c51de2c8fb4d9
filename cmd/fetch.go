package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	symbol string
	search string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch price history or search for tickers" }
func (*fetchCmd) Usage() string {
	return `stockfolio fetch -symbol <ticker>
stockfolio fetch -search <keywords>

  With -symbol, fetches the full daily price history and writes it to the
  quote cache in the store, so later reports work offline. With -search,
  queries the provider for tickers matching the keywords.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to fetch.")
	f.StringVar(&c.search, "search", "", "Keywords to search tickers for.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.symbol == "") == (c.search == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -symbol or -search is required.")
		return subcommands.ExitUsageError
	}

	provider := stockfolio.NewAlphaVantage(os.Getenv(stockfolio.AlphaVantageAPIKeyEnv), *storeDir)

	if c.search != "" {
		symbols, err := provider.Search(ctx, c.search)
		if err != nil {
			return fail(err)
		}
		if len(symbols) == 0 {
			fmt.Println("No matches.")
			return subcommands.ExitSuccess
		}
		for _, s := range symbols {
			fmt.Println(s)
		}
		return subcommands.ExitSuccess
	}

	points, err := provider.FetchDailyHistory(ctx, c.symbol)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Fetched %d days of %s into %s\n", len(points), c.symbol, *storeDir)
	return subcommands.ExitSuccess
}
