package handlers

import (
	"net/http"

	"quant-utilities/internal/api/models"
	"quant-utilities/internal/filter"

	"github.com/gin-gonic/gin"
)

// FilterHandler handles CUSUM event-filter requests.
type FilterHandler struct{}

func NewFilterHandler() *FilterHandler {
	return &FilterHandler{}
}

// Filter handles POST /api/v1/filter.
func (h *FilterHandler) Filter(c *gin.Context) {
	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	f, err := filter.NewCUSUM(req.LogReturns, req.Threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	events := f.Run()

	resp := models.FilterResponse{Status: "ok", Count: len(events)}
	for _, ev := range events {
		resp.Events = append(resp.Events, models.EventResult{
			Index:     ev.Index,
			Value:     ev.Value,
			Direction: string(ev.Direction),
		})
	}
	c.JSON(http.StatusOK, resp)
}
