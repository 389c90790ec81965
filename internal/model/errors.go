package model

import "errors"

// Error kinds for the numeric core. Detection sites wrap these with
// fmt.Errorf("%w: ...") so callers can branch on errors.Is while still
// getting a precise message.
var (
	// ErrConfiguration reports invalid or infeasible parameters
	// (fold counts, embargo sizes, scheme settings).
	ErrConfiguration = errors.New("invalid configuration")

	// ErrShapeMismatch reports incompatible matrix shapes after
	// broadcasting has been attempted.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidInput reports malformed numeric input: NaN/Inf values,
	// or non-positive prices where a price series is expected.
	ErrInvalidInput = errors.New("invalid input")
)
