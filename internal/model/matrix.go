package model

import (
	"fmt"
	"math"
)

// Matrix is a T×M table of float64 values: one row per time step, one
// column per asset. Rows are expected to be rectangular; Validate checks
// that once at the boundary so the numeric code can index freely.
type Matrix [][]float64

// Dims returns (rows, cols). An empty matrix reports (0, 0).
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Validate checks the matrix is non-empty and rectangular.
func (m Matrix) Validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrInvalidInput)
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i, len(row), cols)
		}
	}
	return nil
}

// CheckFinite rejects NaN and Inf values anywhere in the matrix.
func (m Matrix) CheckFinite() error {
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite value %v at [%d,%d]", ErrInvalidInput, v, i, j)
			}
		}
	}
	return nil
}

// CheckPositive rejects zero and negative values. Price series must be
// strictly positive for the return conversion to be defined.
func (m Matrix) CheckPositive() error {
	for i, row := range m {
		for j, v := range row {
			if v <= 0 {
				return fmt.Errorf("%w: non-positive price %v at [%d,%d]", ErrInvalidInput, v, i, j)
			}
		}
	}
	return nil
}

// Clone returns a deep copy. Inputs are read-only to the numeric core;
// anything the core rescales is cloned first.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		r := make([]float64, len(row))
		copy(r, row)
		out[i] = r
	}
	return out
}

// Column extracts column j as a fresh slice.
func (m Matrix) Column(j int) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		out[i] = row[j]
	}
	return out
}

// BroadcastRows resolves a weight matrix against a target row count,
// producing a canonical rows×cols copy. A single row broadcasts to every
// time step; a full rows×cols matrix is copied as-is. Shape polymorphism
// is resolved here, once, so downstream code never branches on input shape.
func BroadcastRows(w Matrix, rows, cols int) (Matrix, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	wr, wc := w.Dims()
	if wc != cols {
		return nil, fmt.Errorf("%w: weights have %d columns, data has %d", ErrShapeMismatch, wc, cols)
	}
	switch wr {
	case 1:
		out := make(Matrix, rows)
		for i := range out {
			r := make([]float64, cols)
			copy(r, w[0])
			out[i] = r
		}
		return out, nil
	case rows:
		return w.Clone(), nil
	}
	return nil, fmt.Errorf("%w: weights have %d rows, want 1 or %d", ErrShapeMismatch, wr, rows)
}
