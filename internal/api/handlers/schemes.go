package handlers

import (
	"net/http"

	"quant-utilities/internal/api/models"
	"quant-utilities/internal/weights"

	"github.com/gin-gonic/gin"
)

// SchemeHandler lists the available weighting schemes.
type SchemeHandler struct{}

func NewSchemeHandler() *SchemeHandler {
	return &SchemeHandler{}
}

// ListSchemes handles GET /api/v1/schemes.
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	schemes := []models.SchemeInfo{
		{
			Name:        "equal",
			Description: "Equal weight per asset, every period. The default when no weights are supplied.",
		},
		{
			Name:        "fixed",
			Description: "One caller-supplied weight row broadcast across all periods. Negative entries are short positions.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "weights",
					Type:        "array",
					Description: "Weight per asset, in data column order.",
				},
			},
		},
		{
			Name:        "inverse_vol",
			Description: "Weights each asset by the inverse of its trailing return volatility, renormalized per period.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "window",
					Type:        "int",
					Description: "Trailing window length in periods.",
					Default:     weights.DefaultVolWindow,
				},
			},
		},
	}
	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}
