// Command stockfolio tracks stock portfolios from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockfolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before anything else; Complete exits the
	// process when invoked by the shell.
	completion().Complete("stockfolio")

	// API keys can live in a .env file next to the store instead of the
	// shell profile. A missing file is fine.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dateFlags := map[string]complete.Predictor{
		"name": predict.Nothing,
		"date": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":   predict.Dirs("*"),
			"symbols": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"create":         {Flags: map[string]complete.Predictor{"name": predict.Nothing}},
			"buy":            {Flags: dateFlags},
			"sell":           {Flags: dateFlags},
			"value":          {Flags: dateFlags},
			"composition":    {Flags: dateFlags},
			"distribution":   {Flags: dateFlags},
			"rebalance":      {Flags: dateFlags},
			"chart":          {Flags: map[string]complete.Predictor{"name": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing}},
			"moving-average": {Flags: map[string]complete.Predictor{"symbol": predict.Nothing, "window": predict.Nothing}},
			"crossover":      {Flags: map[string]complete.Predictor{"symbol": predict.Nothing, "window": predict.Nothing}},
			"gain":           {Flags: map[string]complete.Predictor{"symbol": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing}},
			"fetch":          {Flags: map[string]complete.Predictor{"symbol": predict.Nothing, "search": predict.Nothing}},
			"assist":         {Flags: dateFlags},
			"topic":          {},
		},
	}
}
