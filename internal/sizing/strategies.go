package sizing

import (
	"math"

	"solar-proposal/internal/solar"
)

// BatteryAnchored is the default sizing philosophy: the battery is fixed at
// a multiple of daily usage (the same stack across every coverage tier) and
// solar is sized independently per tier. Tiers then differ only in array
// size, which keeps option comparisons easy to explain.
type BatteryAnchored struct{}

func (BatteryAnchored) Name() string { return "battery-anchored" }

func (BatteryAnchored) Size(in Inputs, tier float64) SizeSpec {
	cat := in.Catalog
	usage := in.Profile.DailyTotalKwh

	effPSH := solar.EffectivePSH(in.Zone.PSH, in.Customer.Orientation, cat.Sizing.SystemLosses)
	requiredKw := 0.0
	if effPSH > 0 {
		requiredKw = tier * usage / effPSH
	}

	modules := int(math.Ceil(usage * cat.Sizing.BatteryUsageRatio / cat.Battery.CapacityPerModuleKwh))
	if modules < cat.Sizing.MinBatteryModules {
		modules = cat.Sizing.MinBatteryModules
	}

	spec := SizeSpec{CoverageTier: tier, BatteryModules: modules}
	spec.BatteryTotalKwh, spec.BatteryUsableKwh, spec.MaxChargeKw, spec.MaxDischargeKw = batterySpecFor(modules, cat)
	return spec.withPanels(panelsFor(requiredKw, cat), cat.Panel)
}

// SolarAnchored sizes panels to produce tier x usage at the location's
// effective peak sun hours, then sizes the battery to carry the low-solar
// hours of the day with a buffer.
type SolarAnchored struct{}

func (SolarAnchored) Name() string { return "solar-anchored" }

func (s SolarAnchored) Size(in Inputs, tier float64) SizeSpec {
	cat := in.Catalog
	usage := in.Profile.DailyTotalKwh

	effPSH := solar.EffectivePSH(in.Zone.PSH, in.Customer.Orientation, cat.Sizing.SystemLosses)
	requiredKw := 0.0
	if effPSH > 0 {
		requiredKw = tier * usage / effPSH
	}

	spec := SizeSpec{CoverageTier: tier}
	spec = spec.withPanels(panelsFor(requiredKw, cat), cat.Panel)

	// Battery covers the load in hours where the array effectively
	// produces nothing (evening and overnight), with headroom.
	curve := solar.Curve(spec.ArrayKw, in.Zone.PSH, in.Customer.Orientation, cat.Sizing.SystemLosses)
	eveningLoad := 0.0
	for h := 0; h < 24; h++ {
		if curve[h] < 0.1 {
			eveningLoad += in.Profile.TotalLoad[h]
		}
	}
	requiredUsable := eveningLoad * cat.Sizing.EveningBuffer

	perModuleUsable := cat.Battery.CapacityPerModuleKwh * cat.Battery.DepthOfDischarge
	modules := 0
	if perModuleUsable > 0 {
		modules = int(math.Ceil(requiredUsable / perModuleUsable))
	}
	if modules < cat.Sizing.MinBatteryModules {
		modules = cat.Sizing.MinBatteryModules
	}

	spec.BatteryModules = modules
	spec.BatteryTotalKwh, spec.BatteryUsableKwh, spec.MaxChargeKw, spec.MaxDischargeKw = batterySpecFor(modules, cat)
	return spec
}
