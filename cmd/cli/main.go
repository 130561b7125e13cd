package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"breakout-backtest/internal/analysis"
	"breakout-backtest/internal/backtest"
	"breakout-backtest/internal/config"
	"breakout-backtest/internal/data"
	"breakout-backtest/internal/model"
	"breakout-backtest/internal/optimize"
	"breakout-backtest/internal/signal"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "backtest":
		cmdBacktest(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --config examples/config.yaml")
	fmt.Println("  cli backtest --window 20 --sl 0.002 --tp 0.005 --out results/ledger.csv")
	fmt.Println("  cli stats --bars 20000 --seed 42")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - optimize sweeps the full parameter grid and prints a table ranked by win rate")
	fmt.Println("  - backtest runs a single configuration and writes a per-bar ledger CSV")
	fmt.Println("  - without --data, a seeded synthetic series stands in for a market feed")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional; omit for the stock sweep)")
	dataPath := fs.String("data", "", "Bars JSON path (overrides the config data source)")
	bars := fs.Int("bars", 0, "Synthetic series length (overrides config)")
	seed := fs.Int64("seed", 0, "Synthetic generator seed (overrides config)")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	if *dataPath != "" {
		cfg.Data.Source = "file"
		cfg.Data.Path = *dataPath
	}
	if *bars > 0 {
		cfg.Data.Bars = *bars
	}
	if *seed != 0 {
		cfg.Data.Seed = *seed
	}

	series := loadSeries(cfg.Data)
	grid := optimize.Grid{
		LookbackWindows: cfg.Grid.LookbackWindows,
		StopLosses:      cfg.Grid.StopLosses,
		TakeProfits:     cfg.Grid.TakeProfits,
		FeePerTrade:     cfg.Grid.FeePerTrade,
	}

	fmt.Printf("Loaded %d bars\n", len(series))
	fmt.Printf("Running optimization on %d unique configurations...\n\n", grid.Size())

	start := time.Now()
	rows, err := optimize.Optimize(series, grid)
	if err != nil {
		panic(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%-4s %-8s %-10s %-10s %-8s %-9s %-10s %-12s %-10s\n",
		"rank", "window", "stoploss", "takeprofit", "trades", "winrate", "drawdown", "expectancy", "netprofit")
	for i, r := range optimize.TopK(rows, cfg.Report.TopK) {
		fmt.Printf("%-4d %-8d %-10g %-10g %-8d %-9.2f %-10s %-12.4f %-10s\n",
			i+1,
			r.LookbackWindow,
			r.StopLossPct,
			r.ProfitTargetPct,
			r.TotalTrades,
			r.WinRate,
			fmtOpt(r.MaxDrawdownPct),
			r.Expectancy,
			fmtOpt(r.NetProfitPct),
		)
	}
	fmt.Printf("\nOptimization complete in %s\n", elapsed.Round(time.Millisecond))

	acceptable := optimize.AboveWinRate(rows, cfg.Report.WinRateThreshold)
	if len(acceptable) > 0 {
		best := acceptable[0]
		fmt.Printf("Found %d configurations with win rate >= %.0f%%\n",
			len(acceptable), cfg.Report.WinRateThreshold)
		fmt.Printf("Recommended: window=%d sl=%g tp=%g\n",
			best.LookbackWindow, best.StopLossPct, best.ProfitTargetPct)
	} else {
		fmt.Printf("No configuration reached %.0f%% win rate with this data.\n",
			cfg.Report.WinRateThreshold)
	}
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	window := fs.Int("window", 20, "Trailing box length in bars")
	sl := fs.Float64("sl", 0.002, "Stop-loss fraction")
	tp := fs.Float64("tp", 0.005, "Profit-target fraction")
	fee := fs.Float64("fee", model.DefaultFeePerTrade, "Flat fee per active bar")
	dataPath := fs.String("data", "", "Bars JSON path (omit for a synthetic series)")
	bars := fs.Int("bars", 20000, "Synthetic series length")
	seed := fs.Int64("seed", 42, "Synthetic generator seed")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	_ = fs.Parse(args)

	series := loadSeries(dataConfig(*dataPath, *bars, *seed))

	cfg, err := model.NewStrategyConfig(*window, *sl, *tp, *fee)
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

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := backtest.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	sum := analysis.Reduce(res.Returns)
	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Trades=%d WinRate=%.2f%% Expectancy=%.4f FinalEquity=%.4f\n",
		sum.TotalTrades, sum.WinRate, sum.Expectancy, res.FinalEquity)
	if sum.MaxDrawdownPct != nil && sum.NetProfitPct != nil {
		fmt.Printf("MaxDrawdown=%.2f%% NetProfit=%.2f%%\n", *sum.MaxDrawdownPct, *sum.NetProfitPct)
	}
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dataPath := fs.String("data", "", "Bars JSON path (omit for a synthetic series)")
	bars := fs.Int("bars", 20000, "Synthetic series length")
	seed := fs.Int64("seed", 42, "Synthetic generator seed")
	_ = fs.Parse(args)

	series := loadSeries(dataConfig(*dataPath, *bars, *seed))
	s := analysis.ComputeSeriesStats(series)

	fmt.Printf("%-8s %-12s %-12s %-12s %-12s %-12s %-10s\n",
		"count", "min", "max", "mean", "p05", "p95", "p95-p05")
	fmt.Printf("%-8d %-12.4f %-12.4f %-12.4f %-12.4f %-12.4f %-10.4f\n",
		s.Count, s.MinClose, s.MaxClose, s.MeanClose, s.P05Close, s.P95Close, s.SpreadP95P05)
	fmt.Printf("window: %s .. %s\n", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}

func dataConfig(path string, bars int, seed int64) config.DataConfig {
	if path != "" {
		return config.DataConfig{Source: "file", Path: path}
	}
	return config.DataConfig{Source: "synthetic", Bars: bars, Seed: seed}
}

func loadSeries(dc config.DataConfig) []model.Bar {
	var series []model.Bar
	switch dc.Source {
	case "file":
		resp, err := data.LoadBarsJSON(dc.Path)
		if err != nil {
			panic(err)
		}
		series = resp.Data
	default:
		var err error
		series, err = data.Generate(data.DefaultGeneratorParams(dc.Bars, dc.Seed))
		if err != nil {
			panic(err)
		}
	}
	if err := model.ValidateSeries(series); err != nil {
		panic(err)
	}
	return series
}

func fmtOpt(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
