// Package portfolio implements the "ETF trick": applying a time-varying
// weight matrix to per-asset return series to produce a single investable
// return series, as if the basket were one tradeable instrument.
package portfolio

import (
	"fmt"
	"math"

	"quant-utilities/internal/model"
)

// Options control how the builder interprets its inputs.
type Options struct {
	// InputIsReturns treats data as pre-computed simple returns instead
	// of price levels.
	InputIsReturns bool

	// NormalizeWeights rescales each weight row so the sum of absolute
	// values is 1, fixing gross exposure while preserving long/short
	// proportions. All-zero rows are left untouched and contribute a
	// zero return for that period.
	NormalizeWeights bool
}

// DefaultOptions interprets data as prices and normalizes weights.
func DefaultOptions() Options {
	return Options{NormalizeWeights: true}
}

// Result bundles the derived series. All outputs share one time index of
// length Periods (T for return input, T-1 for price input).
type Result struct {
	Assets []string

	WeightedReturns           model.Matrix
	CumulativeWeightedReturns model.Matrix
	PortfolioReturns          []float64
	PortfolioCumulative       []float64
}

// Periods is the length of the output time index.
func (r *Result) Periods() int { return len(r.PortfolioReturns) }

// Builder holds validated, canonical-shape inputs. All validation happens
// in New; Compute cannot fail. The builder holds no mutable state, so a
// single instance may compute from multiple goroutines.
type Builder struct {
	returns model.Matrix
	weights model.Matrix
	assets  []string
}

// New validates data and weights and resolves all shape polymorphism.
// data is T×M prices (strictly positive) or returns per opts. weights may
// be a single broadcast row, one row per return period, or — for price
// input — one row per price row, in which case the leading row is dropped
// alongside the price row the return conversion consumes.
func New(data, weights model.Matrix, opts Options) (*Builder, error) {
	return newBuilder(data, weights, nil, opts)
}

// NewFromFrame is New with asset names carried through to the result.
func NewFromFrame(frame model.Frame, weights model.Matrix, opts Options) (*Builder, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	return newBuilder(frame.Values, weights, frame.AssetNames(), opts)
}

func newBuilder(data, weights model.Matrix, assets []string, opts Options) (*Builder, error) {
	returns := data
	if opts.InputIsReturns {
		if err := data.Validate(); err != nil {
			return nil, err
		}
		if err := data.CheckFinite(); err != nil {
			return nil, err
		}
		returns = data.Clone()
	} else {
		var err error
		returns, err = SimpleReturns(data)
		if err != nil {
			return nil, err
		}
	}
	tOut, m := returns.Dims()

	// Weights aligned with the original price index lose their first row
	// together with the price row the conversion consumed.
	if !opts.InputIsReturns {
		if wr, _ := weights.Dims(); wr == tOut+1 && wr > 1 {
			weights = weights[1:]
		}
	}
	w, err := model.BroadcastRows(weights, tOut, m)
	if err != nil {
		return nil, err
	}
	if err := w.CheckFinite(); err != nil {
		return nil, err
	}
	if opts.NormalizeWeights {
		normalizeRows(w)
	}

	return &Builder{returns: returns, weights: w, assets: assets}, nil
}

// Compute derives the weighted-return matrix, its cumulative compounding,
// and the aggregate portfolio series. Pure: repeated calls return equal,
// independently-owned results.
func (b *Builder) Compute() *Result {
	tOut, m := b.returns.Dims()

	weighted := make(model.Matrix, tOut)
	port := make([]float64, tOut)
	for t := 0; t < tOut; t++ {
		row := make([]float64, m)
		sum := 0.0
		for j := 0; j < m; j++ {
			wr := b.returns[t][j] * b.weights[t][j]
			row[j] = wr
			sum += wr
		}
		weighted[t] = row
		port[t] = sum
	}

	cumWeighted := make(model.Matrix, tOut)
	for t := range cumWeighted {
		cumWeighted[t] = make([]float64, m)
	}
	for j := 0; j < m; j++ {
		acc := 1.0
		for t := 0; t < tOut; t++ {
			acc *= 1 + weighted[t][j]
			cumWeighted[t][j] = acc - 1
		}
	}

	return &Result{
		Assets:                    b.assets,
		WeightedReturns:           weighted,
		CumulativeWeightedReturns: cumWeighted,
		PortfolioReturns:          port,
		PortfolioCumulative:       Compound(port),
	}
}

// SimpleReturns converts a strictly positive price matrix into simple
// per-period returns r[t] = p[t]/p[t-1] - 1. Row 0 carries no return and
// is dropped: the output has one row fewer than the input.
func SimpleReturns(prices model.Matrix) (model.Matrix, error) {
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	if err := prices.CheckFinite(); err != nil {
		return nil, err
	}
	if err := prices.CheckPositive(); err != nil {
		return nil, err
	}
	t, m := prices.Dims()
	if t < 2 {
		return nil, fmt.Errorf("%w: need at least 2 price rows to compute returns, got %d", model.ErrInvalidInput, t)
	}
	out := make(model.Matrix, t-1)
	for i := 1; i < t; i++ {
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			row[j] = prices[i][j]/prices[i-1][j] - 1
		}
		out[i-1] = row
	}
	return out, nil
}

// LogReturns converts a strictly positive price series into log returns
// ln(p[t]/p[t-1]), the input form the CUSUM filter expects.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices to compute log returns, got %d", model.ErrInvalidInput, len(prices))
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: non-finite price %v at index %d", model.ErrInvalidInput, p, i)
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: non-positive price %v at index %d", model.ErrInvalidInput, p, i)
		}
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return out, nil
}

// Compound computes cumulative compounding: the running product of
// (1 + x) minus one, modeling reinvestment of gains.
func Compound(x []float64) []float64 {
	out := make([]float64, len(x))
	acc := 1.0
	for i, v := range x {
		acc *= 1 + v
		out[i] = acc - 1
	}
	return out
}

// normalizeRows rescales each row in place so the sum of absolute values
// is 1. All-zero rows stay zero; one degenerate period does not fail the
// whole computation.
func normalizeRows(w model.Matrix) {
	for _, row := range w {
		gross := 0.0
		for _, v := range row {
			gross += math.Abs(v)
		}
		if gross == 0 {
			continue
		}
		for j := range row {
			row[j] /= gross
		}
	}
}
