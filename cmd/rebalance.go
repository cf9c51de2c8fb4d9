package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	name    string
	date    string
	weights string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "adjust a portfolio toward target weights" }
func (*rebalanceCmd) Usage() string {
	return `stockfolio rebalance -name <portfolio> -weights <SYM=w,SYM=w,...> [-date <YYYY-MM-DD>]

  Appends the buys and sells that move the portfolio toward the target
  weights on the date. The weights must sum to 1. The whole operation is
  validated first: nothing is traded when a weight or a price is wrong.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to rebalance.")
	f.StringVar(&c.date, "date", "", "Rebalance date, defaults to today.")
	f.StringVar(&c.weights, "weights", "", "Target weights, e.g. AAPL=0.6,GOOG=0.4.")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.weights == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -weights are required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	weights, err := parseWeights(c.weights)
	if err != nil {
		return fail(err)
	}

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		if err := m.Rebalance(ctx, p.Name(), day, weights); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Rebalanced %s on %s\n", c.name, day)
	return subcommands.ExitSuccess
}

// parseWeights parses "SYM=w,SYM=w" pairs. Weight arithmetic is validated
// by the engine; only the syntax is checked here.
func parseWeights(s string) (map[string]float64, error) {
	weights := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		symbol, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q, want SYMBOL=weight", pair)
		}
		symbol, value = strings.TrimSpace(symbol), strings.TrimSpace(value)
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value in %q: %w", pair, err)
		}
		if symbol == "" {
			return nil, fmt.Errorf("invalid weight %q, empty symbol", pair)
		}
		if _, dup := weights[symbol]; dup {
			return nil, fmt.Errorf("duplicate symbol %q in weights", symbol)
		}
		weights[symbol] = w
	}
	return weights, nil
}
