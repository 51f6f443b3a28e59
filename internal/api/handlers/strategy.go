package handlers

import (
	"net/http"

	"solar-proposal/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles sizing-strategy requests.
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "battery-anchored",
			Description: "Fixes the battery at a multiple of daily usage, then sizes the array per coverage tier. All tiers share the same storage.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "battery_usage_ratio",
					Type:        "float",
					Description: "Battery capacity as a multiple of daily usage (catalog sizing.battery_usage_ratio)",
					Default:     1.5,
				},
				{
					Name:        "coverage_tiers",
					Type:        "string",
					Description: "Array coverage tiers as fractions of daily usage (catalog sizing.coverage_tiers)",
					Default:     "1.0, 1.25, 1.5, 1.75",
				},
			},
		},
		{
			Name:        "solar-anchored",
			Description: "Sizes the array per coverage tier first, then sizes the battery to carry the low-solar hours with a buffer.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "evening_buffer",
					Type:        "float",
					Description: "Oversize factor on low-solar-hour load (catalog sizing.evening_buffer)",
					Default:     1.1,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
