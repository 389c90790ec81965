package handlers

import (
	"errors"
	"net/http"

	"quant-utilities/internal/analysis"
	"quant-utilities/internal/api/models"
	"quant-utilities/internal/model"
	"quant-utilities/internal/portfolio"
	"quant-utilities/internal/weights"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler handles synthetic-portfolio requests.
type PortfolioHandler struct{}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

// Build handles POST /api/v1/portfolio.
func (h *PortfolioHandler) Build(c *gin.Context) {
	var req models.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}
	if len(req.Weights) > 0 && req.Scheme != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: "supply either weights or scheme, not both"},
		})
		return
	}

	opts := portfolio.DefaultOptions()
	opts.InputIsReturns = req.InputIsReturns
	if req.NormalizeWeights != nil {
		opts.NormalizeWeights = *req.NormalizeWeights
	}

	builder, err := h.buildBuilder(req, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	res := builder.Compute()

	stats := analysis.Compute(res.PortfolioReturns)
	resp := models.PortfolioResponse{
		Status: "ok",
		Summary: models.PortfolioSummary{
			Periods:     res.Periods(),
			Assets:      len(res.WeightedReturns[0]),
			TotalReturn: stats.TotalReturn,
			MeanReturn:  stats.Mean,
			Volatility:  stats.Volatility,
			Sharpe:      stats.Sharpe,
			MaxDrawdown: stats.MaxDrawdown,
		},
		Assets:              res.Assets,
		PortfolioReturns:    res.PortfolioReturns,
		PortfolioCumulative: res.PortfolioCumulative,
	}
	if req.IncludeMatrices {
		resp.WeightedReturns = res.WeightedReturns
		resp.WeightedCumulative = res.CumulativeWeightedReturns
	}
	if req.IncludeRanking {
		for _, r := range analysis.RankBySharpe(res.Assets, res.WeightedReturns) {
			resp.Ranking = append(resp.Ranking, models.AssetRanking{
				Rank:        r.Rank,
				Asset:       r.Asset,
				Sharpe:      r.Stats.Sharpe,
				TotalReturn: r.Stats.TotalReturn,
				Volatility:  r.Stats.Volatility,
				MaxDrawdown: r.Stats.MaxDrawdown,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) buildBuilder(req models.PortfolioRequest, opts portfolio.Options) (*portfolio.Builder, error) {
	frame := model.Frame{Assets: req.Assets, Values: model.Matrix(req.Data)}

	if req.Scheme == nil && len(req.Weights) > 0 {
		return portfolio.NewFromFrame(frame, model.Matrix(req.Weights), opts)
	}

	// Scheme path: derive returns first so the scheme sees the same
	// matrix the builder will weight.
	params := weights.Params{}
	if req.Scheme != nil {
		params = weights.Params{Name: req.Scheme.Name, Fixed: req.Scheme.Weights, Window: req.Scheme.Window}
	}
	scheme, err := weights.Build(params)
	if err != nil {
		return nil, err
	}

	returns := model.Matrix(req.Data)
	if !opts.InputIsReturns {
		returns, err = portfolio.SimpleReturns(returns)
		if err != nil {
			return nil, err
		}
	}
	w, err := scheme.Weights(returns)
	if err != nil {
		return nil, err
	}
	retOpts := opts
	retOpts.InputIsReturns = true
	return portfolio.NewFromFrame(model.Frame{Assets: req.Assets, Values: returns}, w, retOpts)
}

// respondError maps core error kinds onto HTTP status codes and the
// standard error body.
func respondError(c *gin.Context, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrConfiguration):
		code, status = "INVALID_CONFIG", http.StatusBadRequest
	case errors.Is(err, model.ErrShapeMismatch):
		code, status = "SHAPE_MISMATCH", http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidInput):
		code, status = "INVALID_INPUT", http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}
