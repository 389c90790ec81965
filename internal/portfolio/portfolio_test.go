package portfolio

import (
	"math"
	"testing"

	"quant-utilities/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var specPrices = model.Matrix{
	{100, 50},
	{110, 48},
	{105, 55},
}

func TestComputeConcreteScenario(t *testing.T) {
	// 2 assets, 3 price rows, 50/50 broadcast weights.
	b, err := New(specPrices, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.NoError(t, err)
	res := b.Compute()

	require.Equal(t, 2, res.Periods())

	assert.InDelta(t, 0.10, res.WeightedReturns[0][0]*2, 1e-9)
	assert.InDelta(t, -0.04, res.WeightedReturns[0][1]*2, 1e-9)
	assert.InDelta(t, -0.045455, res.WeightedReturns[1][0]*2, 1e-5)
	assert.InDelta(t, 0.145833, res.WeightedReturns[1][1]*2, 1e-5)

	assert.InDelta(t, 0.03, res.PortfolioReturns[0], 1e-9)
	assert.InDelta(t, 0.0502, res.PortfolioReturns[1], 1e-4)

	// Portfolio cumulative compounds the per-period series.
	assert.InDelta(t, 0.03, res.PortfolioCumulative[0], 1e-9)
	assert.InDelta(t, (1+0.03)*(1+res.PortfolioReturns[1])-1, res.PortfolioCumulative[1], 1e-9)
}

func TestAllOnesWeightsSumReturns(t *testing.T) {
	// With all-ones weights and no normalization, the portfolio return
	// is the plain sum of per-asset returns.
	b, err := New(specPrices, model.Matrix{{1, 1}}, Options{NormalizeWeights: false})
	require.NoError(t, err)
	res := b.Compute()

	rets, err := SimpleReturns(specPrices)
	require.NoError(t, err)
	for tIdx := range res.PortfolioReturns {
		want := rets[tIdx][0] + rets[tIdx][1]
		assert.InDelta(t, want, res.PortfolioReturns[tIdx], 1e-12)
	}
}

func TestCompoundIdempotence(t *testing.T) {
	// Recomputing the cumulative series from its own implied returns
	// reproduces it.
	x := []float64{0.02, -0.01, 0.03, 0.0, -0.05}
	cum := Compound(x)

	implied := make([]float64, len(cum))
	prev := 0.0
	for i, c := range cum {
		implied[i] = (1+c)/(1+prev) - 1
		prev = c
	}
	again := Compound(implied)
	for i := range cum {
		assert.InDelta(t, cum[i], again[i], 1e-12)
	}
}

func TestReturnsInput(t *testing.T) {
	rets := model.Matrix{
		{0.10, -0.04},
		{-0.045455, 0.145833},
	}
	opts := DefaultOptions()
	opts.InputIsReturns = true
	b, err := New(rets, model.Matrix{{0.5, 0.5}}, opts)
	require.NoError(t, err)
	res := b.Compute()

	// No row is dropped for return input.
	require.Equal(t, 2, res.Periods())
	assert.InDelta(t, 0.03, res.PortfolioReturns[0], 1e-9)
}

func TestWeightNormalizationGrossExposure(t *testing.T) {
	// 2 long 1 short: |0.6|+|0.6|+|-0.3| = 1.5, rescaled to gross 1.
	prices := model.Matrix{
		{10, 20, 30},
		{11, 19, 33},
		{12, 21, 30},
	}
	b, err := New(prices, model.Matrix{{0.6, 0.6, -0.3}}, DefaultOptions())
	require.NoError(t, err)

	gross := 0.0
	for _, w := range b.weights[0] {
		gross += math.Abs(w)
	}
	assert.InDelta(t, 1.0, gross, 1e-12)
	// Relative proportions preserved.
	assert.InDelta(t, 0.4, b.weights[0][0], 1e-12)
	assert.InDelta(t, -0.2, b.weights[0][2], 1e-12)
}

func TestZeroWeightRowFallback(t *testing.T) {
	// An all-zero weight row is left unnormalized: that period simply
	// contributes a zero portfolio return.
	prices := model.Matrix{
		{100, 50},
		{110, 48},
		{105, 55},
	}
	w := model.Matrix{
		{0, 0},
		{0.5, 0.5},
	}
	b, err := New(prices, w, DefaultOptions())
	require.NoError(t, err)
	res := b.Compute()

	assert.Zero(t, res.PortfolioReturns[0])
	assert.InDelta(t, 0.0502, res.PortfolioReturns[1], 1e-4)
}

func TestPriceWeightsAlignment(t *testing.T) {
	// Weights given per price row lose their first row with the price
	// row the conversion consumes.
	w := model.Matrix{
		{9, 9}, // aligned with price row 0; must be ignored
		{0.5, 0.5},
		{0.5, 0.5},
	}
	b, err := New(specPrices, w, DefaultOptions())
	require.NoError(t, err)
	res := b.Compute()
	assert.InDelta(t, 0.03, res.PortfolioReturns[0], 1e-9)
}

func TestNonPositivePriceRejected(t *testing.T) {
	bad := model.Matrix{
		{100, 50},
		{0, 48},
	}
	_, err := New(bad, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.ErrorIs(t, err, model.ErrInvalidInput)

	neg := model.Matrix{
		{100, 50},
		{-3, 48},
	}
	_, err = New(neg, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestNaNRejected(t *testing.T) {
	bad := model.Matrix{
		{100, 50},
		{math.NaN(), 48},
	}
	_, err := New(bad, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.ErrorIs(t, err, model.ErrInvalidInput)

	badW := model.Matrix{{0.5, math.Inf(1)}}
	_, err = New(specPrices, badW, DefaultOptions())
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestShapeMismatchRejected(t *testing.T) {
	_, err := New(specPrices, model.Matrix{{0.5, 0.5, 0.5}}, DefaultOptions())
	require.ErrorIs(t, err, model.ErrShapeMismatch)

	// 4 weight rows cannot align with 3 price rows (2 return rows).
	w := model.Matrix{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	_, err = New(specPrices, w, DefaultOptions())
	require.ErrorIs(t, err, model.ErrShapeMismatch)
}

func TestComputeIsPure(t *testing.T) {
	b, err := New(specPrices, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.NoError(t, err)

	first := b.Compute()
	second := b.Compute()
	assert.Equal(t, first, second)

	// Mutating one result must not leak into the next.
	first.PortfolioReturns[0] = 99
	third := b.Compute()
	assert.Equal(t, second.PortfolioReturns, third.PortfolioReturns)
}

func TestLogReturns(t *testing.T) {
	out, err := LogReturns([]float64{100, 110, 105})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, math.Log(1.10), out[0], 1e-12)

	_, err = LogReturns([]float64{100, 0})
	require.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = LogReturns([]float64{100})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestNewFromFrameCarriesAssets(t *testing.T) {
	frame := model.Frame{Assets: []string{"AAA", "BBB"}, Values: specPrices}
	b, err := NewFromFrame(frame, model.Matrix{{0.5, 0.5}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB"}, b.Compute().Assets)
}
