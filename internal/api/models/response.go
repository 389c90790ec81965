package models

// PortfolioResponse is the result of a portfolio build.
type PortfolioResponse struct {
	Status  string           `json:"status"`
	Summary PortfolioSummary `json:"summary"`

	Assets              []string  `json:"assets,omitempty"`
	PortfolioReturns    []float64 `json:"portfolio_returns"`
	PortfolioCumulative []float64 `json:"portfolio_cumulative_returns"`

	WeightedReturns    [][]float64 `json:"weighted_returns,omitempty"`
	WeightedCumulative [][]float64 `json:"weighted_cumulative_returns,omitempty"`

	Ranking []AssetRanking `json:"ranking,omitempty"`
}

// PortfolioSummary aggregates the portfolio series.
type PortfolioSummary struct {
	Periods     int     `json:"periods"`
	Assets      int     `json:"assets"`
	TotalReturn float64 `json:"total_return"`
	MeanReturn  float64 `json:"mean_return"`
	Volatility  float64 `json:"volatility"`
	Sharpe      float64 `json:"sharpe"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// AssetRanking is one asset's position when sorted by Sharpe.
type AssetRanking struct {
	Rank        int     `json:"rank"`
	Asset       string  `json:"asset"`
	Sharpe      float64 `json:"sharpe"`
	TotalReturn float64 `json:"total_return"`
	Volatility  float64 `json:"volatility"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// SplitResponse lists the generated folds.
type SplitResponse struct {
	Status         string       `json:"status"`
	NSplits        int          `json:"n_splits"`
	EmbargoSamples int          `json:"embargo_samples"`
	Folds          []FoldResult `json:"folds"`
}

// FoldResult is one train/test assignment.
type FoldResult struct {
	Fold  int   `json:"fold"`
	Train []int `json:"train"`
	Test  []int `json:"test"`
}

// FilterResponse lists the detected CUSUM events.
type FilterResponse struct {
	Status string        `json:"status"`
	Count  int           `json:"count"`
	Events []EventResult `json:"events"`
}

// EventResult is one threshold crossing.
type EventResult struct {
	Index     int     `json:"index"`
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

// SchemeInfo describes an available weighting scheme.
type SchemeInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes one scheme parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "array"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
