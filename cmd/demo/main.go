package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"breakout-backtest/internal/analysis"
	"breakout-backtest/internal/backtest"
	"breakout-backtest/internal/data"
	"breakout-backtest/internal/model"
	"breakout-backtest/internal/signal"
)

// Demo:
// - Generate a small seeded synthetic series
// - Derive breakout signals and simulate one configuration
// - Print the first few ledger rows to show how the pieces fit together
func main() {
	bars := flag.Int("bars", 500, "Synthetic series length")
	seed := flag.Int64("seed", 42, "Synthetic generator seed")
	n := flag.Int("n", 12, "Number of ledger rows to print")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	series, err := data.Generate(data.DefaultGeneratorParams(*bars, *seed))
	if err != nil {
		panic(err)
	}

	cfg, err := model.NewStrategyConfig(20, 0.002, 0.005, model.DefaultFeePerTrade)
	if err != nil {
		panic(err)
	}

	points, err := signal.Derive(series, cfg.LookbackWindow)
	if err != nil {
		panic(err)
	}
	res, err := backtest.New().Run(series, points, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-5s %-22s %-10s %-6s %-12s %-10s\n",
		"bar", "timestamp", "close", "pos", "return", "equity")
	for _, r := range res.Ledger {
		if r.Index >= *n {
			break
		}
		fmt.Printf("%-5d %-22s %-10.4f %-6s %-12.6f %-10.6f\n",
			r.Index,
			r.Timestamp.Format(time.RFC3339),
			r.Close,
			r.Action,
			r.StrategyReturn,
			r.Equity,
		)
	}

	sum := analysis.Reduce(res.Returns)
	fmt.Printf("\nTrades=%d WinRate=%.2f%% Expectancy=%.4f FinalEquity=%.4f\n",
		sum.TotalTrades, sum.WinRate, sum.Expectancy, res.FinalEquity)

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := backtest.WriteLedgerCSV(*outCSV, res.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote ledger to %s\n", *outCSV)
	}
}
