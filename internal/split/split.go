// Package split provides time-aware cross-validation splitting for
// ordered sample sequences. Test folds are contiguous blocks in index
// order (order is time, so shuffling would leak), and an embargo gap
// around each test block keeps adjacent samples out of the training set.
package split

import (
	"fmt"
	"math"

	"quant-utilities/internal/model"
)

// Fold is one train/test assignment over [0, N). Indices are ascending.
type Fold struct {
	Train []int
	Test  []int
}

// Splitter is the fold-generator capability. Anything that partitions N
// ordered samples into folds can stand in for the embargo splitter.
type Splitter interface {
	Split(nSamples int) ([]Fold, error)
	NSplits() int
}

// Embargo splits N time-ordered samples into sequential, non-overlapping
// test blocks. Every index within the embargo distance of a test block's
// boundaries is excluded from that fold's training set.
type Embargo struct {
	nSplits            int
	embargo            float64
	disallowEmptyTrain bool
}

var _ Splitter = (*Embargo)(nil)

type Option func(*Embargo)

// DisallowEmptyTrain makes Split fail fast when the embargo would leave a
// fold with no training samples, instead of yielding an empty train set.
func DisallowEmptyTrain() Option {
	return func(e *Embargo) { e.disallowEmptyTrain = true }
}

// NewEmbargo validates the fold count and embargo size. An embargo < 1 is
// interpreted as a fraction of N at split time; >= 1 as an absolute
// sample count.
func NewEmbargo(nSplits int, embargo float64, opts ...Option) (*Embargo, error) {
	if nSplits < 2 {
		return nil, fmt.Errorf("%w: n_splits must be >= 2, got %d", model.ErrConfiguration, nSplits)
	}
	if math.IsNaN(embargo) || math.IsInf(embargo, 0) || embargo < 0 {
		return nil, fmt.Errorf("%w: embargo must be a finite value >= 0, got %v", model.ErrConfiguration, embargo)
	}
	e := &Embargo{nSplits: nSplits, embargo: embargo}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NSplits returns the configured fold count, regardless of sample count.
func (e *Embargo) NSplits() int { return e.nSplits }

// EmbargoSamples resolves the embargo parameter against a concrete N.
func (e *Embargo) EmbargoSamples(nSamples int) int {
	if e.embargo < 1 {
		return int(math.Round(e.embargo * float64(nSamples)))
	}
	return int(e.embargo)
}

// Split partitions [0, nSamples) into NSplits contiguous, approximately
// equal test blocks in time order. The first nSamples%nSplits blocks take
// one extra sample. For each block, the training set is every index
// outside [start-embargo, end+embargo). The result is deterministic;
// calling Split again restarts from the first fold.
func (e *Embargo) Split(nSamples int) ([]Fold, error) {
	if nSamples < e.nSplits {
		return nil, fmt.Errorf("%w: cannot split %d samples into %d folds", model.ErrConfiguration, nSamples, e.nSplits)
	}
	emb := e.EmbargoSamples(nSamples)

	base := nSamples / e.nSplits
	extra := nSamples % e.nSplits

	folds := make([]Fold, 0, e.nSplits)
	start := 0
	for i := 0; i < e.nSplits; i++ {
		size := base
		if i < extra {
			size++
		}
		end := start + size

		test := make([]int, size)
		for j := range test {
			test[j] = start + j
		}

		train := make([]int, 0, nSamples-size)
		for j := 0; j < nSamples; j++ {
			if j >= start-emb && j < end+emb {
				continue
			}
			train = append(train, j)
		}
		if len(train) == 0 && e.disallowEmptyTrain {
			return nil, fmt.Errorf("%w: embargo of %d samples leaves fold %d with no training data", model.ErrConfiguration, emb, i)
		}

		folds = append(folds, Fold{Train: train, Test: test})
		start = end
	}
	return folds, nil
}
