package handlers

import (
	"net/http"

	"quant-utilities/internal/api/models"
	"quant-utilities/internal/split"

	"github.com/gin-gonic/gin"
)

// SplitHandler handles embargo cross-validation requests.
type SplitHandler struct{}

func NewSplitHandler() *SplitHandler {
	return &SplitHandler{}
}

// Split handles POST /api/v1/split.
func (h *SplitHandler) Split(c *gin.Context) {
	var req models.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	var opts []split.Option
	if req.DisallowEmptyTrain {
		opts = append(opts, split.DisallowEmptyTrain())
	}
	splitter, err := split.NewEmbargo(req.NSplits, req.Embargo, opts...)
	if err != nil {
		respondError(c, err)
		return
	}
	folds, err := splitter.Split(req.NSamples)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := models.SplitResponse{
		Status:         "ok",
		NSplits:        splitter.NSplits(),
		EmbargoSamples: splitter.EmbargoSamples(req.NSamples),
	}
	for i, f := range folds {
		resp.Folds = append(resp.Folds, models.FoldResult{Fold: i, Train: f.Train, Test: f.Test})
	}
	c.JSON(http.StatusOK, resp)
}
