// Package cmd implements the stockfolio command-line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// Register wires every subcommand into the commander.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "portfolio")
	c.Register(&buyCmd{}, "portfolio")
	c.Register(&sellCmd{}, "portfolio")
	c.Register(&rebalanceCmd{}, "portfolio")

	c.Register(&valueCmd{}, "reports")
	c.Register(&compositionCmd{}, "reports")
	c.Register(&distributionCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&movingAverageCmd{}, "analysis")
	c.Register(&crossoverCmd{}, "analysis")
	c.Register(&gainCmd{}, "analysis")

	c.Register(&fetchCmd{}, "quotes")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// As a CLI application the process is short lived, so shared configuration
// lives in global flags.

var storeDir = flag.String("store", ".", "directory holding portfolio files and the quote cache")
var symbolsFile = flag.String("symbols", "", "CSV file of valid ticker symbols (first column); empty disables the check")

// newMarket builds the market over the Alpha Vantage provider, caching
// quotes in the store directory.
func newMarket() *stockfolio.Market {
	provider := stockfolio.NewAlphaVantage(os.Getenv(stockfolio.AlphaVantageAPIKeyEnv), *storeDir)
	return stockfolio.NewMarket(provider)
}

// newModel builds the model with the configured symbol list, if any.
func newModel() (*stockfolio.Model, error) {
	var symbols stockfolio.SymbolChecker
	if *symbolsFile != "" {
		list, err := stockfolio.LoadSymbolList(*symbolsFile)
		if err != nil {
			return nil, err
		}
		symbols = list
	}
	return stockfolio.NewModel(newMarket(), symbols), nil
}

// portfolioPath is the store file of a portfolio.
func portfolioPath(name string) string {
	return filepath.Join(*storeDir, name+".txt")
}

// loadPortfolio reads one portfolio file from the store. The portfolio
// keeps the name declared inside the file.
func loadPortfolio(name string) (*stockfolio.Portfolio, error) {
	f, err := os.Open(portfolioPath(name))
	if err != nil {
		return nil, fmt.Errorf("opening portfolio %q: %w", name, err)
	}
	defer f.Close()
	return stockfolio.DecodePortfolio(f)
}

// savePortfolio writes a portfolio back to the store, atomically: the file
// is complete or untouched.
func savePortfolio(p *stockfolio.Portfolio) error {
	path := portfolioPath(p.Name())
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("saving portfolio %q: %w", p.Name(), err)
	}
	defer os.Remove(tmp.Name())

	if err := stockfolio.EncodePortfolio(tmp, p); err != nil {
		tmp.Close()
		return fmt.Errorf("saving portfolio %q: %w", p.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// withPortfolio loads a portfolio into a fresh model, runs fn, and saves
// the portfolio back when fn reports a mutation.
func withPortfolio(name string, fn func(m *stockfolio.Model, p *stockfolio.Portfolio) (mutated bool, err error)) error {
	m, err := newModel()
	if err != nil {
		return err
	}
	p, err := loadPortfolio(name)
	if err != nil {
		return err
	}
	if err := m.Register(p); err != nil {
		return err
	}

	mutated, err := fn(m, p)
	if err != nil {
		return err
	}
	if mutated {
		return savePortfolio(p)
	}
	return nil
}

// fail prints the error and maps it to the exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// parseDateFlag parses a -date value, defaulting to today when empty.
func parseDateFlag(s string) (stockfolio.Date, error) {
	if s == "" {
		return stockfolio.Today(), nil
	}
	return stockfolio.ParseDate(s)
}
