// Package weights provides weighting schemes that produce the weight
// matrix the portfolio builder consumes. Callers can always supply an
// explicit matrix instead; schemes cover the common cases.
package weights

import (
	"fmt"

	"quant-utilities/internal/model"
)

// Scheme produces a weight matrix for a T×M return matrix. The result
// may be a single broadcast row or one row per return period.
type Scheme interface {
	Name() string
	Weights(returns model.Matrix) (model.Matrix, error)
}

// Params configures a scheme by name. Zero value builds the equal-weight
// scheme.
type Params struct {
	Name   string
	Fixed  []float64 // fixed: the weight row to broadcast
	Window int       // inverse_vol: trailing window length
}

// Build constructs the named scheme. Unknown names are a configuration
// error, matching how callers discover typos.
func Build(p Params) (Scheme, error) {
	switch p.Name {
	case "", "equal":
		return Equal{}, nil
	case "fixed":
		if len(p.Fixed) == 0 {
			return nil, fmt.Errorf("%w: fixed scheme requires a weight row", model.ErrConfiguration)
		}
		return Fixed{Row: p.Fixed}, nil
	case "inverse_vol":
		w := p.Window
		if w == 0 {
			w = DefaultVolWindow
		}
		return InverseVol{Window: w}, nil
	}
	return nil, fmt.Errorf("%w: unknown weight scheme %q", model.ErrConfiguration, p.Name)
}
