package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/agent"
	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	name string
	date string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI assistant about a portfolio" }
func (*assistCmd) Usage() string {
	return `stockfolio assist -name <portfolio> [question...]

  Starts an interactive session with a Gemini-backed assistant seeded with
  the portfolio's current composition and distribution. Requires a Gemini
  API key in the environment (GEMINI_API_KEY). A question given on the
  command line is asked first.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Portfolio to discuss.")
	f.StringVar(&c.date, "date", "", "Date of the portfolio state, defaults to today.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}

	var questions []string
	if f.NArg() > 0 {
		questions = append(questions, strings.Join(f.Args(), " "))
	}

	err = withPortfolio(c.name, func(m *stockfolio.Model, p *stockfolio.Portfolio) (bool, error) {
		dist, err := m.Distribution(ctx, p.Name(), day)
		if err != nil {
			return false, err
		}
		state := renderer.HoldingMarkdown(p.Name(), day, p.CompositionAsOf(day)) +
			"\n" + renderer.DistributionMarkdown(p.Name(), day, dist)

		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return false, fmt.Errorf("initializing Gemini client: %w", err)
		}

		advisor := agent.New(state)
		return false, advisor.Run(ctx, client, os.Stdout, os.Stdin, renderMarkdown, questions...)
	})
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
