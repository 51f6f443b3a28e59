package solar

import (
	"solar-proposal/internal/catalog"
	"solar-proposal/internal/model"
)

// Normalized hourly output of a 1 kW north-facing array at the reference
// location (Sydney, PSH 4.2). The values sum to ~3.95 kWh.
var referenceCurve = [24]float64{
	0, 0, 0, 0, 0, 0,
	0.008, 0.061, 0.167,
	0.318, 0.455, 0.545,
	0.591, 0.568, 0.492,
	0.379, 0.242, 0.106,
	0.015, 0, 0, 0, 0, 0,
}

const referencePSH = 4.2

// Zone is a resolved solar zone. Estimated is true when the postcode prefix
// missed the table and a state-level average was used.
type Zone struct {
	Name      string  `json:"name"`
	PSH       float64 `json:"psh"`
	State     string  `json:"state"`
	Estimated bool    `json:"estimated"`
}

// LookupZone resolves a postcode to its solar zone. It never fails: unknown
// prefixes fall back to the state average, unknown states to the baseline.
func LookupZone(zt catalog.ZoneTable, postcode, state string) Zone {
	info, exact := zt.Lookup(postcode, state)
	return Zone{Name: info.Name, PSH: info.PSH, State: info.State, Estimated: !exact}
}

// Curve returns the hourly production of a systemKw array at a location,
// derated for roof orientation and fixed system losses (inverter, wiring,
// soiling, temperature). Losses are applied here and nowhere else: daily
// and annual yield figures are derived by summing this curve, so the
// simulation and the financials always agree.
func Curve(systemKw, psh float64, orientation model.Orientation, systemLosses float64) [24]float64 {
	factor := systemKw * (psh / referencePSH) * orientation.Factor() * (1 - systemLosses)
	if factor < 0 {
		factor = 0
	}
	var out [24]float64
	for h := 0; h < 24; h++ {
		out[h] = referenceCurve[h] * factor
	}
	return out
}

// DailyProduction sums an hourly curve into kWh per day.
func DailyProduction(curve [24]float64) float64 {
	total := 0.0
	for _, v := range curve {
		total += v
	}
	return total
}

// EffectivePSH is the peak-sun-hours actually convertible into usable
// energy after orientation and system losses. Sizing uses this so a derated
// roof gets more panels, not a smaller yield estimate.
func EffectivePSH(psh float64, orientation model.Orientation, systemLosses float64) float64 {
	return psh * orientation.Factor() * (1 - systemLosses)
}
