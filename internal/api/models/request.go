package models

// PortfolioRequest is the request body for building a synthetic
// portfolio. Either an explicit weight matrix or a named scheme may be
// supplied; neither means equal weights.
type PortfolioRequest struct {
	Data   [][]float64 `json:"data" binding:"required"`
	Assets []string    `json:"assets,omitempty"`

	// Weights is a full T×M matrix, a (T−1)×M matrix aligned with the
	// return rows, or a single broadcast row.
	Weights [][]float64   `json:"weights,omitempty"`
	Scheme  *SchemeConfig `json:"scheme,omitempty"`

	InputIsReturns   bool  `json:"input_is_returns,omitempty"`
	NormalizeWeights *bool `json:"normalize_weights,omitempty"` // default true

	// IncludeMatrices adds the per-asset weighted and cumulative
	// matrices to the response. Off by default; they dominate payload
	// size for wide baskets.
	IncludeMatrices bool `json:"include_matrices,omitempty"`

	// IncludeRanking adds per-asset stats sorted by Sharpe.
	IncludeRanking bool `json:"include_ranking,omitempty"`
}

// SchemeConfig selects a weighting scheme by name.
type SchemeConfig struct {
	Name    string    `json:"name" binding:"required"`
	Weights []float64 `json:"weights,omitempty"` // fixed scheme row
	Window  int       `json:"window,omitempty"`  // inverse_vol window
}

// SplitRequest asks for embargoed cross-validation folds over n_samples
// ordered observations.
type SplitRequest struct {
	NSamples int `json:"n_samples" binding:"required"`
	NSplits  int `json:"n_splits" binding:"required"`

	// Embargo < 1 is a fraction of n_samples; >= 1 an absolute count.
	Embargo float64 `json:"embargo,omitempty"`

	DisallowEmptyTrain bool `json:"disallow_empty_train,omitempty"`
}

// FilterRequest runs the CUSUM event filter over a log-return series.
type FilterRequest struct {
	LogReturns []float64 `json:"log_returns" binding:"required"`
	Threshold  float64   `json:"threshold" binding:"required"`
}
