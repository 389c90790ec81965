package weights

import (
	"fmt"
	"math"

	"quant-utilities/internal/model"
)

// DefaultVolWindow is the trailing window used when a config leaves the
// inverse_vol window unset.
const DefaultVolWindow = 20

// InverseVol weights each asset proportionally to the inverse of its
// trailing return volatility, renormalized so every row sums to 1.
// Periods before the window has filled fall back to equal weights, as do
// periods where every asset shows zero volatility.
type InverseVol struct {
	Window int
}

func (InverseVol) Name() string { return "inverse_vol" }

func (s InverseVol) Weights(returns model.Matrix) (model.Matrix, error) {
	if s.Window < 2 {
		return nil, fmt.Errorf("%w: inverse_vol window must be >= 2, got %d", model.ErrConfiguration, s.Window)
	}
	if err := returns.Validate(); err != nil {
		return nil, err
	}
	t, m := returns.Dims()

	equal := 1.0 / float64(m)
	out := make(model.Matrix, t)
	for i := 0; i < t; i++ {
		row := make([]float64, m)
		if i+1 < s.Window {
			for j := range row {
				row[j] = equal
			}
			out[i] = row
			continue
		}
		sum := 0.0
		for j := 0; j < m; j++ {
			vol := trailingVol(returns, j, i, s.Window)
			if vol > 0 {
				row[j] = 1 / vol
				sum += row[j]
			}
		}
		if sum == 0 {
			for j := range row {
				row[j] = equal
			}
		} else {
			for j := range row {
				row[j] /= sum
			}
		}
		out[i] = row
	}
	return out, nil
}

// trailingVol is the sample standard deviation of returns[t-window+1 .. t]
// for one asset.
func trailingVol(returns model.Matrix, asset, t, window int) float64 {
	start := t - window + 1
	mean := 0.0
	for i := start; i <= t; i++ {
		mean += returns[i][asset]
	}
	mean /= float64(window)

	variance := 0.0
	for i := start; i <= t; i++ {
		d := returns[i][asset] - mean
		variance += d * d
	}
	variance /= float64(window - 1)
	return math.Sqrt(variance)
}
