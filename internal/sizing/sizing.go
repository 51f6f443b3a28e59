package sizing

import (
	"fmt"
	"math"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/dispatch"
	"solar-proposal/internal/loadprofile"
	"solar-proposal/internal/model"
	"solar-proposal/internal/solar"
)

// SizeSpec is a concrete system configuration: how many panels, how many
// battery modules, and the resulting ratings.
type SizeSpec struct {
	CoverageTier float64 `json:"coverage_tier"`

	PanelCount int     `json:"panel_count"`
	ArrayKw    float64 `json:"array_kw"`

	BatteryModules   int     `json:"battery_modules"`
	BatteryTotalKwh  float64 `json:"battery_total_kwh"`
	BatteryUsableKwh float64 `json:"battery_usable_kwh"`
	MaxChargeKw      float64 `json:"max_charge_kw"`
	MaxDischargeKw   float64 `json:"max_discharge_kw"`
}

// Inputs bundles everything a sizing strategy may consult.
type Inputs struct {
	Customer model.CustomerProfile
	Profile  loadprofile.Profile
	Zone     solar.Zone
	Catalog  *catalog.Catalog
}

// Strategy sizes a system for one coverage tier. Implementations must be
// stateless so a single instance can serve concurrent proposals.
type Strategy interface {
	Name() string
	Size(in Inputs, tier float64) SizeSpec
}

// ForName returns the registered strategy for a config name.
func ForName(name string) (Strategy, error) {
	switch name {
	case "", BatteryAnchored{}.Name():
		return BatteryAnchored{}, nil
	case SolarAnchored{}.Name():
		return SolarAnchored{}, nil
	default:
		return nil, fmt.Errorf("unknown sizing strategy %q", name)
	}
}

// DispatchParams converts a spec into simulator parameters.
func (s SizeSpec) DispatchParams(bat catalog.BatterySpec, initialSOC float64) dispatch.Params {
	return dispatch.Params{
		UsableCapacityKwh:   s.BatteryUsableKwh,
		MaxChargeKw:         s.MaxChargeKw,
		MaxDischargeKw:      s.MaxDischargeKw,
		RoundTripEfficiency: bat.RoundTripEfficiency,
		InitialSOCFraction:  initialSOC,
	}
}

// withPanels returns a copy of the spec resized to a panel count, keeping
// the battery untouched.
func (s SizeSpec) withPanels(count int, panel catalog.PanelSpec) SizeSpec {
	out := s
	out.PanelCount = count
	out.ArrayKw = float64(count) * panel.WattageW / 1000
	return out
}

// panelsFor converts a required array size into a whole panel count,
// respecting the catalog minimum and the network export cap.
func panelsFor(requiredKw float64, cat *catalog.Catalog) int {
	count := int(math.Ceil(requiredKw * 1000 / cat.Panel.WattageW))
	if count < cat.Sizing.MinPanels {
		count = cat.Sizing.MinPanels
	}
	if cat.Sizing.MaxArrayKw > 0 {
		maxPanels := int(cat.Sizing.MaxArrayKw * 1000 / cat.Panel.WattageW)
		if maxPanels >= cat.Sizing.MinPanels && count > maxPanels {
			count = maxPanels
		}
	}
	return count
}

// batterySpecFor converts a module count into stack ratings. The aggregate
// charge/discharge rate is capped by the hybrid inverter.
func batterySpecFor(modules int, cat *catalog.Catalog) (totalKwh, usableKwh, chargeKw, dischargeKw float64) {
	bat := cat.Battery
	totalKwh = float64(modules) * bat.CapacityPerModuleKwh
	usableKwh = totalKwh * bat.DepthOfDischarge
	chargeKw = math.Min(float64(modules)*bat.MaxChargeKwPerModule, bat.InverterCapKw)
	dischargeKw = math.Min(float64(modules)*bat.MaxDischargeKwPerModule, bat.InverterCapKw)
	return
}
