package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"quant-utilities/internal/analysis"
	"quant-utilities/internal/config"
	"quant-utilities/internal/data"
	"quant-utilities/internal/filter"
	"quant-utilities/internal/model"
	"quant-utilities/internal/portfolio"
	"quant-utilities/internal/weights"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "portfolio":
		cmdPortfolio(os.Args[2:])
	case "split":
		cmdSplit(os.Args[2:])
	case "filter":
		cmdFilter(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli portfolio --config examples/config.yaml --out results/portfolio.csv")
	fmt.Println("  cli split --config examples/config.yaml --out results/folds.csv")
	fmt.Println("  cli filter --config examples/config.yaml --asset 0")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - portfolio writes one CSV row per period with weighted/cumulative returns")
	fmt.Println("  - split writes embargoed train/test fold assignments")
	fmt.Println("  - filter prints CUSUM events over one asset's log returns")
}

func cmdPortfolio(args []string) {
	fs := flag.NewFlagSet("portfolio", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/portfolio.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N rows of data (0=all)")
	_ = fs.Parse(args)

	cfg, frame := loadRun(*cfgPath)
	if *n > 0 && *n < len(frame.Values) {
		frame.Values = frame.Values[:*n]
	}

	res := buildPortfolio(cfg, frame)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := data.WritePortfolioCSV(*outPath, res); err != nil {
		panic(err)
	}

	stats := analysis.Compute(res.PortfolioReturns)
	fmt.Printf("Wrote %d rows to %s\n", res.Periods(), *outPath)
	fmt.Printf("Total return=%.4f Sharpe=%.2f MaxDD=%.4f\n", stats.TotalReturn, stats.Sharpe, stats.MaxDrawdown)

	fmt.Printf("%-4s %-12s %-8s %-10s %-8s\n", "rank", "asset", "sharpe", "total", "maxdd")
	for _, r := range analysis.RankBySharpe(res.Assets, res.WeightedReturns) {
		fmt.Printf("%-4d %-12s %-8.2f %-10.4f %-8.4f\n", r.Rank, r.Asset, r.Stats.Sharpe, r.Stats.TotalReturn, r.Stats.MaxDrawdown)
	}
}

func cmdSplit(args []string) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/folds.csv", "Output CSV path")
	nSamples := fs.Int("n", 0, "Sample count (0 = row count of data CSV)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	splitter, err := cfg.Splitter()
	if err != nil {
		panic(err)
	}

	n := *nSamples
	if n == 0 {
		frame, err := data.LoadPriceCSV(cfg.Data.Path)
		if err != nil {
			panic(err)
		}
		n = len(frame.Values)
	}

	folds, err := splitter.Split(n)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := data.WriteFoldsCSV(*outPath, folds); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d folds over %d samples to %s (embargo=%d)\n",
		len(folds), n, *outPath, splitter.EmbargoSamples(n))
	for i, f := range folds {
		fmt.Printf("fold %d: train=%d test=%d [%d..%d]\n",
			i, len(f.Train), len(f.Test), f.Test[0], f.Test[len(f.Test)-1])
	}
}

func cmdFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	asset := fs.Int("asset", 0, "Column index of the asset to filter")
	_ = fs.Parse(args)

	cfg, frame := loadRun(*cfgPath)
	_, m := frame.Values.Dims()
	if *asset < 0 || *asset >= m {
		panic(fmt.Errorf("asset index %d out of range [0,%d)", *asset, m))
	}

	logReturns, err := portfolio.LogReturns(frame.Values.Column(*asset))
	if err != nil {
		panic(err)
	}
	f, err := filter.NewCUSUM(logReturns, cfg.Filter.Threshold)
	if err != nil {
		panic(err)
	}
	events := f.Run()

	fmt.Printf("%d events over %d log returns (h=%.4f)\n", len(events), len(logReturns), cfg.Filter.Threshold)
	for _, ev := range events {
		fmt.Printf("index=%-6d direction=%-4s value=%.5f\n", ev.Index, ev.Direction, ev.Value)
	}
}

func loadRun(cfgPath string) (*config.Config, model.Frame) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	frame, err := data.LoadPriceCSV(cfg.Data.Path)
	if err != nil {
		panic(err)
	}
	return cfg, frame
}

func buildPortfolio(cfg *config.Config, frame model.Frame) *portfolio.Result {
	scheme, err := weights.Build(cfg.SchemeParams())
	if err != nil {
		panic(err)
	}

	opts := cfg.PortfolioOptions()
	returns := frame.Values
	if !opts.InputIsReturns {
		returns, err = portfolio.SimpleReturns(returns)
		if err != nil {
			panic(err)
		}
	}
	w, err := scheme.Weights(returns)
	if err != nil {
		panic(err)
	}

	retOpts := opts
	retOpts.InputIsReturns = true
	builder, err := portfolio.NewFromFrame(model.Frame{Assets: frame.Assets, Values: returns}, w, retOpts)
	if err != nil {
		panic(err)
	}
	return builder.Compute()
}
