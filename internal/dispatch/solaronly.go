package dispatch

import "math"

// SolarOnlyResult is the no-battery baseline used in scenario comparisons:
// solar either offsets load directly or exports, with no storage in between.
type SolarOnlyResult struct {
	SelfConsume [24]float64 `json:"self_consume"`
	GridImport  [24]float64 `json:"grid_import"`
	GridExport  [24]float64 `json:"grid_export"`

	TotalSelfConsume float64 `json:"total_self_consume"`
	TotalGridImport  float64 `json:"total_grid_import"`
	TotalGridExport  float64 `json:"total_grid_export"`

	// SelfConsumption is the fraction of solar production used on site, 0..1.
	SelfConsumption float64 `json:"self_consumption"`
	// SelfPowered is the fraction of load met by solar, 0..1.
	SelfPowered float64 `json:"self_powered"`
}

// SimulateSolarOnly computes the hourly flows for a solar-only system.
func SimulateSolarOnly(load, solar [24]float64) SolarOnlyResult {
	var r SolarOnlyResult
	totalLoad := 0.0
	totalSolar := 0.0

	for h := 0; h < 24; h++ {
		sc := math.Min(load[h], solar[h])
		r.SelfConsume[h] = sc
		r.GridExport[h] = math.Max(solar[h]-load[h], 0)
		r.GridImport[h] = math.Max(load[h]-solar[h], 0)

		r.TotalSelfConsume += sc
		r.TotalGridExport += r.GridExport[h]
		r.TotalGridImport += r.GridImport[h]
		totalLoad += load[h]
		totalSolar += solar[h]
	}

	if totalSolar > 0 {
		r.SelfConsumption = r.TotalSelfConsume / totalSolar
	}
	if totalLoad > 0 {
		r.SelfPowered = clamp(r.TotalSelfConsume/totalLoad, 0, 1)
	}
	return r
}
