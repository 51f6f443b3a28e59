package handlers

import (
	"net/http"

	"solar-proposal/internal/api/models"
	"solar-proposal/internal/catalog"
	"solar-proposal/internal/solar"

	"github.com/gin-gonic/gin"
)

// ZoneHandler handles solar-zone lookups.
type ZoneHandler struct {
	cat *catalog.Catalog
}

// NewZoneHandler creates a new zone handler.
func NewZoneHandler(cat *catalog.Catalog) *ZoneHandler {
	return &ZoneHandler{cat: cat}
}

// GetZone handles GET /api/v1/zones/:postcode
//
// An optional ?state= query refines the fallback when the postcode prefix
// is not in the table.
func (h *ZoneHandler) GetZone(c *gin.Context) {
	postcode := c.Param("postcode")
	state := c.Query("state")

	zone := solar.LookupZone(h.cat.Zones, postcode, state)
	c.JSON(http.StatusOK, models.ZoneResponse{
		Postcode:        postcode,
		Zone:            zone.Name,
		State:           zone.State,
		PeakSunHours:    zone.PSH,
		Estimated:       zone.Estimated,
		NetworkOperator: h.cat.Zones.NetworkOperator(postcode),
	})
}
