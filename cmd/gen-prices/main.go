package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"quant-utilities/internal/data"
	"quant-utilities/internal/model"
)

// gen-prices writes a synthetic geometric-random-walk price CSV in the
// shape the CLI and tests consume. Handy for local experimentation when
// no real price data is at hand.
func main() {
	var (
		outputPath = flag.String("output", "data/prices.csv", "Output CSV path")
		assets     = flag.Int("assets", 3, "Number of assets")
		periods    = flag.Int("periods", 252, "Number of price rows")
		drift      = flag.Float64("drift", 0.0002, "Per-period log drift")
		vol        = flag.Float64("vol", 0.01, "Per-period log volatility")
		seed       = flag.Int64("seed", 1, "RNG seed (deterministic output per seed)")
	)
	flag.Parse()

	if *assets < 1 || *periods < 2 {
		log.Fatal("need at least 1 asset and 2 periods")
	}

	rng := rand.New(rand.NewSource(*seed))

	names := make([]string, *assets)
	for j := range names {
		names[j] = fmt.Sprintf("asset_%d", j)
	}

	values := make(model.Matrix, *periods)
	prev := make([]float64, *assets)
	for j := range prev {
		prev[j] = 100
	}
	for t := 0; t < *periods; t++ {
		row := make([]float64, *assets)
		for j := 0; j < *assets; j++ {
			if t > 0 {
				prev[j] *= math.Exp(*drift + *vol*rng.NormFloat64())
			}
			row[j] = prev[j]
		}
		values[t] = row
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := data.WriteFrameCSV(*outputPath, model.Frame{Assets: names, Values: values}); err != nil {
		log.Fatalf("Failed to write prices: %v", err)
	}
	fmt.Printf("Wrote %d rows x %d assets to %s\n", *periods, *assets, *outputPath)
}
