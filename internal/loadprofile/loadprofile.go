package loadprofile

import "solar-proposal/internal/model"

// Template load curves, in kWh per hour for a reference household. The
// generator scales these to the customer's stated daily usage, so only the
// shape matters here.
var (
	templateBaseLoad = [24]float64{0.4, 0.3, 0.3, 0.3, 0.3, 0.4, 0.5, 0.6, 0.5, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.4, 0.4}
	templateHotWater = [24]float64{0, 0, 0, 0, 0, 0, 0.8, 0.6, 0.3, 0, 0, 0, 0, 0, 0, 0, 0, 0.3, 0.5, 0.3, 0, 0, 0, 0}
	templateCooking  = [24]float64{0, 0, 0, 0, 0, 0, 0, 0.2, 0, 0, 0, 0, 0.3, 0.2, 0, 0, 0, 0.8, 1.5, 1.2, 0.5, 0, 0, 0}
	templateEV       = [24]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1.5, 1.5, 1.5, 1.0}
	templateLighting = [24]float64{0.1, 0.1, 0, 0, 0, 0, 0.1, 0.1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.1, 0.3, 0.5, 0.5, 0.5, 0.4, 0.3}

	// Add-ons folded into the base load when the customer has them.
	templatePool = [24]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	templateAC   = [24]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.5, 1.0, 1.5, 1.5, 1.5, 1.0, 0.5, 0, 0, 0, 0, 0, 0}
)

// Profile is the derived 24-hour household demand, split by appliance
// category. All arrays are kWh per hour; category arrays sum to TotalLoad
// at every hour and DailyTotalKwh equals the customer's stated usage.
type Profile struct {
	BaseLoad   [24]float64 `json:"base_load"`
	HotWater   [24]float64 `json:"hot_water"`
	Cooking    [24]float64 `json:"cooking"`
	EVCharging [24]float64 `json:"ev_charging"`
	Lighting   [24]float64 `json:"lighting"`
	TotalLoad  [24]float64 `json:"total_load"`

	DailyTotalKwh float64 `json:"daily_total_kwh"`
	// Daytime covers hours 06..17, overnight the rest.
	DaytimeKwh   float64 `json:"daytime_kwh"`
	OvernightKwh float64 `json:"overnight_kwh"`
}

// Generate builds the customer's hourly demand curve: template shapes per
// appliance category, optional-appliance toggles applied, then one scale
// factor so the daily total matches the stated usage.
//
// The customer must already be normalized (positive DailyUsageKwh).
func Generate(c model.CustomerProfile) Profile {
	var p Profile

	p.BaseLoad = templateBaseLoad
	p.Cooking = templateCooking
	p.Lighting = templateLighting
	if c.HasElectricHotWater {
		p.HotWater = templateHotWater
	}
	if c.HasEV {
		p.EVCharging = templateEV
	}
	if c.HasPool {
		for h := 0; h < 24; h++ {
			p.BaseLoad[h] += templatePool[h]
		}
	}
	if c.HasDuctedAC {
		for h := 0; h < 24; h++ {
			p.BaseLoad[h] += templateAC[h]
		}
	}

	rawTotal := 0.0
	for h := 0; h < 24; h++ {
		rawTotal += p.BaseLoad[h] + p.HotWater[h] + p.Cooking[h] + p.EVCharging[h] + p.Lighting[h]
	}

	// The templates always contribute base load, so rawTotal can only be
	// zero if they are edited into a degenerate state. Guard anyway.
	scale := 1.0
	if rawTotal > 0 {
		scale = c.DailyUsageKwh / rawTotal
	}

	for h := 0; h < 24; h++ {
		p.BaseLoad[h] *= scale
		p.HotWater[h] *= scale
		p.Cooking[h] *= scale
		p.EVCharging[h] *= scale
		p.Lighting[h] *= scale
		p.TotalLoad[h] = p.BaseLoad[h] + p.HotWater[h] + p.Cooking[h] + p.EVCharging[h] + p.Lighting[h]
		p.DailyTotalKwh += p.TotalLoad[h]
		if h >= 6 && h <= 17 {
			p.DaytimeKwh += p.TotalLoad[h]
		} else {
			p.OvernightKwh += p.TotalLoad[h]
		}
	}

	return p
}
