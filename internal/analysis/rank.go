package analysis

import (
	"sort"

	"quant-utilities/internal/model"
)

// AssetRank pairs one asset's stats with its position after sorting.
type AssetRank struct {
	Rank  int
	Asset string
	Stats SeriesStats
}

// RankBySharpe computes stats per asset column and sorts descending by
// annualized Sharpe. Asset names may be nil; columns then get synthesized
// labels.
func RankBySharpe(assets []string, returns model.Matrix) []AssetRank {
	_, m := returns.Dims()
	names := model.Frame{Assets: assets, Values: returns}.AssetNames()

	out := make([]AssetRank, 0, m)
	for j := 0; j < m; j++ {
		out = append(out, AssetRank{
			Asset: names[j],
			Stats: Compute(returns.Column(j)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stats.Sharpe > out[j].Stats.Sharpe
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
