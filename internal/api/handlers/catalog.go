package handlers

import (
	"net/http"

	"solar-proposal/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the active equipment catalog.
type CatalogHandler struct {
	cat *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// GetCatalog handles GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	inverters := make([]gin.H, 0, len(h.cat.Inverters))
	for _, inv := range h.cat.Inverters {
		inverters = append(inverters, gin.H{
			"model":     inv.Model,
			"phase":     inv.Phase,
			"max_pv_kw": inv.MaxPvKw,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"panel": gin.H{
			"brand":              h.cat.Panel.Brand,
			"model":              h.cat.Panel.Model,
			"wattage_w":          h.cat.Panel.WattageW,
			"degradation_annual": h.cat.Panel.DegradationAnnual,
		},
		"battery": gin.H{
			"brand":                   h.cat.Battery.Brand,
			"model":                   h.cat.Battery.Model,
			"capacity_per_module_kwh": h.cat.Battery.CapacityPerModuleKwh,
			"depth_of_discharge":      h.cat.Battery.DepthOfDischarge,
			"round_trip_efficiency":   h.cat.Battery.RoundTripEfficiency,
		},
		"inverters": inverters,
		"rebates": gin.H{
			"stc_unit_price":    h.cat.Rebates.STCUnitPrice,
			"stc_deeming_years": h.cat.Rebates.STCDeemingYears,
			"battery_per_kwh":   h.cat.Rebates.BatteryPerKwh,
			"battery_cap_kwh":   h.cat.Rebates.BatteryCapKwh,
		},
		"tariff_defaults": gin.H{
			"daily_usage_kwh":  h.cat.Tariff.DailyUsageKwh,
			"tariff_rate":      h.cat.Tariff.TariffRate,
			"supply_charge":    h.cat.Tariff.SupplyCharge,
			"feed_in_tariff":   h.cat.Tariff.FeedInTariff,
			"escalation":       h.cat.Tariff.Escalation,
			"projection_years": h.cat.Tariff.ProjectionYears,
		},
	})
}
