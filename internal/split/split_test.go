package split

import (
	"testing"

	"quant-utilities/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbargoValidation(t *testing.T) {
	_, err := NewEmbargo(1, 0)
	require.ErrorIs(t, err, model.ErrConfiguration)

	_, err = NewEmbargo(2, -1)
	require.ErrorIs(t, err, model.ErrConfiguration)

	_, err = NewEmbargo(5, 0.01)
	require.NoError(t, err)
}

func TestNSplitsIgnoresSampleCount(t *testing.T) {
	s, err := NewEmbargo(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, s.NSplits())

	_, err = s.Split(100)
	require.NoError(t, err)
	assert.Equal(t, 7, s.NSplits())
}

func TestSplitConcreteScenario(t *testing.T) {
	// N=10, 2 folds, embargo 1: fold 0 tests [0..4] and trains on
	// [6..9] (5 is embargoed); fold 1 tests [5..9] and trains on [0..3]
	// (4 is embargoed).
	s, err := NewEmbargo(2, 1)
	require.NoError(t, err)

	folds, err := s.Split(10)
	require.NoError(t, err)
	require.Len(t, folds, 2)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, folds[0].Test)
	assert.Equal(t, []int{6, 7, 8, 9}, folds[0].Train)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, folds[1].Test)
	assert.Equal(t, []int{0, 1, 2, 3}, folds[1].Train)
}

func TestSplitTestBlocksPartitionSamples(t *testing.T) {
	for _, tc := range []struct {
		n, k    int
		embargo float64
	}{
		{10, 2, 1},
		{11, 3, 0},
		{100, 5, 0.02},
		{17, 4, 2},
	} {
		s, err := NewEmbargo(tc.k, tc.embargo)
		require.NoError(t, err)
		folds, err := s.Split(tc.n)
		require.NoError(t, err)
		require.Len(t, folds, tc.k)

		// Test blocks are contiguous, in time order, and cover [0, N)
		// exactly once.
		next := 0
		for _, f := range folds {
			require.NotEmpty(t, f.Test)
			for _, idx := range f.Test {
				assert.Equal(t, next, idx)
				next++
			}
		}
		assert.Equal(t, tc.n, next)
	}
}

func TestSplitTrainExcludesTestAndEmbargo(t *testing.T) {
	s, err := NewEmbargo(4, 2)
	require.NoError(t, err)
	folds, err := s.Split(40)
	require.NoError(t, err)

	for _, f := range folds {
		inTest := map[int]bool{}
		for _, idx := range f.Test {
			inTest[idx] = true
		}
		lo, hi := f.Test[0], f.Test[len(f.Test)-1]
		for _, idx := range f.Train {
			assert.False(t, inTest[idx], "train index %d also in test", idx)
			// Retained train indices sit strictly outside the embargo
			// band around the block.
			assert.True(t, idx < lo-2 || idx > hi+2, "train index %d inside embargo of [%d,%d]", idx, lo, hi)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 40)
		}
	}
}

func TestSplitDeterministicAndRestartable(t *testing.T) {
	s, err := NewEmbargo(5, 0.05)
	require.NoError(t, err)

	first, err := s.Split(53)
	require.NoError(t, err)
	second, err := s.Split(53)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplitFractionalEmbargo(t *testing.T) {
	s, err := NewEmbargo(2, 0.1)
	require.NoError(t, err)
	// 0.1 of 10 samples resolves to 1.
	assert.Equal(t, 1, s.EmbargoSamples(10))

	folds, err := s.Split(10)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8, 9}, folds[0].Train)
}

func TestSplitInfeasible(t *testing.T) {
	s, err := NewEmbargo(5, 0)
	require.NoError(t, err)

	_, err = s.Split(4)
	require.ErrorIs(t, err, model.ErrConfiguration)
}

func TestSplitEmptyTrainPolicy(t *testing.T) {
	// An embargo wider than the sample range leaves no training data.
	s, err := NewEmbargo(2, 10)
	require.NoError(t, err)

	folds, err := s.Split(4)
	require.NoError(t, err)
	for _, f := range folds {
		assert.Empty(t, f.Train)
		assert.NotEmpty(t, f.Test)
	}

	strict, err := NewEmbargo(2, 10, DisallowEmptyTrain())
	require.NoError(t, err)
	_, err = strict.Split(4)
	require.ErrorIs(t, err, model.ErrConfiguration)
}

func TestSplitterInterface(t *testing.T) {
	var s Splitter
	e, err := NewEmbargo(3, 0)
	require.NoError(t, err)
	s = e

	folds, err := s.Split(9)
	require.NoError(t, err)
	assert.Len(t, folds, s.NSplits())
}
