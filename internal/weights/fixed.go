package weights

import (
	"fmt"

	"quant-utilities/internal/model"
)

// Equal assigns every asset the same weight in every period.
type Equal struct{}

func (Equal) Name() string { return "equal" }

func (Equal) Weights(returns model.Matrix) (model.Matrix, error) {
	if err := returns.Validate(); err != nil {
		return nil, err
	}
	_, m := returns.Dims()
	row := make([]float64, m)
	for j := range row {
		row[j] = 1.0 / float64(m)
	}
	return model.Matrix{row}, nil
}

// Fixed broadcasts one caller-supplied weight row across all periods.
// Negative entries are short positions.
type Fixed struct {
	Row []float64
}

func (Fixed) Name() string { return "fixed" }

func (s Fixed) Weights(returns model.Matrix) (model.Matrix, error) {
	if err := returns.Validate(); err != nil {
		return nil, err
	}
	_, m := returns.Dims()
	if len(s.Row) != m {
		return nil, fmt.Errorf("%w: fixed scheme has %d weights for %d assets", model.ErrShapeMismatch, len(s.Row), m)
	}
	row := make([]float64, m)
	copy(row, s.Row)
	return model.Matrix{row}, nil
}
