package model

import (
	"strings"

	"solar-proposal/internal/catalog"
)

// Phase is the customer's electrical supply phase.
type Phase string

const (
	PhaseSingle Phase = "single"
	PhaseThree  Phase = "three"
)

// Orientation is the dominant roof orientation for the PV array.
type Orientation string

const (
	OrientationNorth Orientation = "north"
	OrientationEast  Orientation = "east"
	OrientationWest  Orientation = "west"
	OrientationSouth Orientation = "south"
)

// Factor returns the production efficiency of an orientation relative to
// north-facing. Unknown values are treated as north.
func (o Orientation) Factor() float64 {
	switch o {
	case OrientationEast, OrientationWest:
		return 0.90
	case OrientationSouth:
		return 0.80
	default:
		return 1.00
	}
}

// CustomerProfile is the engine's input record. The engine is a pure
// function of a normalized profile; it never mutates one.
//
// Units:
// - DailyUsageKwh: kWh/day
// - TariffRate, FeedInTariff: $/kWh
// - SupplyCharge: $/day
// - Escalation: fraction per year
//
// Zero-valued numeric fields mean "not provided" and are resolved by
// Normalized. FeedInTariff additionally falls back per state.
type CustomerProfile struct {
	Name     string `json:"name,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	Postcode string `json:"postcode"`
	State    string `json:"state"`

	DailyUsageKwh float64 `json:"daily_usage_kwh"`
	TariffRate    float64 `json:"tariff_rate"`
	SupplyCharge  float64 `json:"supply_charge"`
	FeedInTariff  float64 `json:"feed_in_tariff,omitempty"`
	Escalation    float64 `json:"escalation,omitempty"`

	HasEV               bool `json:"has_ev"`
	HasPool             bool `json:"has_pool"`
	HasDuctedAC         bool `json:"has_ducted_ac"`
	HasElectricHotWater bool `json:"has_electric_hot_water"`

	Phase       Phase       `json:"phase"`
	Orientation Orientation `json:"orientation"`
}

// Normalized returns a copy with every unset or non-positive numeric field
// resolved to its default. The result always has positive usage, tariff
// and supply charge, so downstream arithmetic cannot divide by zero.
func (c CustomerProfile) Normalized(d catalog.TariffDefaults) CustomerProfile {
	out := c
	out.State = strings.ToUpper(strings.TrimSpace(c.State))
	out.Postcode = strings.TrimSpace(c.Postcode)
	if out.DailyUsageKwh <= 0 {
		out.DailyUsageKwh = d.DailyUsageKwh
	}
	if out.TariffRate <= 0 {
		out.TariffRate = d.TariffRate
	}
	if out.SupplyCharge <= 0 {
		out.SupplyCharge = d.SupplyCharge
	}
	if out.FeedInTariff <= 0 {
		out.FeedInTariff = d.FeedInFor(out.State)
	}
	if out.Escalation <= 0 {
		out.Escalation = d.Escalation
	}
	if out.Phase != PhaseThree {
		out.Phase = PhaseSingle
	}
	switch out.Orientation {
	case OrientationEast, OrientationWest, OrientationSouth:
	default:
		out.Orientation = OrientationNorth
	}
	return out
}
