package analysis

import (
	"math"
	"sort"
)

// PeriodsPerYear is the annualization factor for volatility and Sharpe;
// daily bars over a trading year.
const PeriodsPerYear = 252.0

// SeriesStats is a per-series summary you can use for reporting and
// ranking. It intentionally carries both raw distribution stats and the
// path-dependent ones (drawdown, total compounded return).
type SeriesStats struct {
	Count int

	Min  float64
	Max  float64
	Mean float64
	P05  float64
	P95  float64

	// Volatility is the sample standard deviation of per-period returns.
	Volatility float64

	// Sharpe is annualized mean/volatility with a zero risk-free rate.
	Sharpe float64

	// MaxDrawdown is the largest peak-to-trough loss of the compounded
	// wealth path, as a positive fraction.
	MaxDrawdown float64

	// TotalReturn is the fully compounded return over the series.
	TotalReturn float64
}

// Compute summarizes a return series. An empty series yields the zero
// value.
func Compute(returns []float64) SeriesStats {
	s := SeriesStats{}
	if len(returns) == 0 {
		return s
	}
	s.Count = len(returns)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(returns))
	for _, v := range returns {
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.Min = minv
	s.Max = maxv
	s.Mean = sum / float64(len(vals))
	s.P05 = percentileSorted(vals, 0.05)
	s.P95 = percentileSorted(vals, 0.95)

	if len(returns) > 1 {
		variance := 0.0
		for _, v := range returns {
			d := v - s.Mean
			variance += d * d
		}
		variance /= float64(len(returns) - 1)
		s.Volatility = math.Sqrt(variance)
	}
	if s.Volatility > 0 {
		s.Sharpe = s.Mean / s.Volatility * math.Sqrt(PeriodsPerYear)
	}

	s.MaxDrawdown, s.TotalReturn = drawdownAndTotal(returns)
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// drawdownAndTotal walks the compounded wealth path once.
func drawdownAndTotal(returns []float64) (maxDD, total float64) {
	wealth := 1.0
	peak := 1.0
	for _, v := range returns {
		wealth *= 1 + v
		if wealth > peak {
			peak = wealth
		}
		dd := 1 - wealth/peak
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD, wealth - 1
}
