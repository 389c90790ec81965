package main

import (
	"flag"
	"fmt"

	"quant-utilities/internal/analysis"
	"quant-utilities/internal/filter"
	"quant-utilities/internal/model"
	"quant-utilities/internal/portfolio"
	"quant-utilities/internal/split"
)

// Demo:
// - Build a synthetic portfolio from a small in-memory price matrix
// - Generate embargoed cross-validation folds over its return index
// - Run the CUSUM filter over one asset's log returns
func main() {
	nSplits := flag.Int("splits", 2, "Number of CV folds")
	embargo := flag.Float64("embargo", 1, "Embargo: samples (>=1) or fraction of N (<1)")
	h := flag.Float64("h", 0.05, "CUSUM threshold in log-return units")
	flag.Parse()

	frame := model.Frame{
		Assets: []string{"AAA", "BBB"},
		Values: model.Matrix{
			{100, 50},
			{110, 48},
			{105, 55},
			{112, 53},
			{108, 57},
			{115, 54},
			{111, 60},
			{118, 58},
			{114, 63},
			{122, 61},
			{119, 66},
		},
	}

	builder, err := portfolio.NewFromFrame(frame, model.Matrix{{0.5, 0.5}}, portfolio.DefaultOptions())
	if err != nil {
		panic(err)
	}
	res := builder.Compute()

	stats := analysis.Compute(res.PortfolioReturns)
	fmt.Printf("portfolio: %d periods, total=%.4f vol=%.4f maxdd=%.4f\n",
		res.Periods(), stats.TotalReturn, stats.Volatility, stats.MaxDrawdown)
	for t, r := range res.PortfolioReturns {
		fmt.Printf("  t=%-3d return=%+.5f cumulative=%+.5f\n", t, r, res.PortfolioCumulative[t])
	}

	splitter, err := split.NewEmbargo(*nSplits, *embargo)
	if err != nil {
		panic(err)
	}
	folds, err := splitter.Split(res.Periods())
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nfolds over %d samples (embargo=%d):\n", res.Periods(), splitter.EmbargoSamples(res.Periods()))
	for i, f := range folds {
		fmt.Printf("  fold %d: train=%v test=%v\n", i, f.Train, f.Test)
	}

	logReturns, err := portfolio.LogReturns(frame.Values.Column(0))
	if err != nil {
		panic(err)
	}
	cusum, err := filter.NewCUSUM(logReturns, *h)
	if err != nil {
		panic(err)
	}
	events := cusum.Run()
	fmt.Printf("\nCUSUM events on %s (h=%.3f): %d\n", frame.Assets[0], *h, len(events))
	for _, ev := range events {
		fmt.Printf("  index=%d direction=%s value=%+.5f\n", ev.Index, ev.Direction, ev.Value)
	}
}
