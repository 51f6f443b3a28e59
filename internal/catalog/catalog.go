package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog bundles the versioned reference data the engine depends on:
// hardware specs, installed pricing, rebate schedules, tariff defaults and
// sizing rules. All of it can be overridden from YAML without touching
// simulation code.
//
// Units:
// - energy: kWh, power: kW
// - currency: whole dollars unless a field name says otherwise
// - rates, efficiencies, margins: fractions 0..1
type Catalog struct {
	Panel     PanelSpec      `yaml:"panel"`
	Battery   BatterySpec    `yaml:"battery"`
	Inverters []InverterSKU  `yaml:"inverters"`
	Pricing   PricingRules   `yaml:"pricing"`
	Rebates   RebateRules    `yaml:"rebates"`
	Sizing    SizingRules    `yaml:"sizing"`
	Tariff    TariffDefaults `yaml:"tariff"`
	Zones     ZoneTable      `yaml:"zones"`
}

// PanelSpec describes the catalog PV module.
type PanelSpec struct {
	Brand                    string  `yaml:"brand"`
	Model                    string  `yaml:"model"`
	WattageW                 float64 `yaml:"wattage_w"`
	Efficiency               float64 `yaml:"efficiency"`
	TempCoeffPerC            float64 `yaml:"temp_coeff_per_c"`
	DegradationAnnual        float64 `yaml:"degradation_annual"`
	WarrantyProductYears     int     `yaml:"warranty_product_years"`
	WarrantyPerformanceYears int     `yaml:"warranty_performance_years"`
}

// BatterySpec describes one storage module of the catalog battery stack.
type BatterySpec struct {
	Brand                   string  `yaml:"brand"`
	Model                   string  `yaml:"model"`
	CapacityPerModuleKwh    float64 `yaml:"capacity_per_module_kwh"`
	DepthOfDischarge        float64 `yaml:"depth_of_discharge"`
	MaxChargeKwPerModule    float64 `yaml:"max_charge_kw_per_module"`
	MaxDischargeKwPerModule float64 `yaml:"max_discharge_kw_per_module"`
	RoundTripEfficiency     float64 `yaml:"round_trip_efficiency"`
	// InverterCapKw caps the stack's aggregate charge/discharge rate
	// regardless of module count (hybrid inverter limit).
	InverterCapKw     float64 `yaml:"inverter_cap_kw"`
	DegradationAnnual float64 `yaml:"degradation_annual"`
	Chemistry         string  `yaml:"chemistry"`
	CycleLife         string  `yaml:"cycle_life"`
	WarrantyYears     int     `yaml:"warranty_years"`
	EVChargerKw       float64 `yaml:"ev_charger_kw"`
}

// InverterSKU is one orderable string inverter.
type InverterSKU struct {
	Model   string  `yaml:"model" json:"model"`
	Phase   string  `yaml:"phase" json:"phase"` // "single" or "three"
	MaxPvKw float64 `yaml:"max_pv_kw" json:"max_pv_kw"`
	Price   float64 `yaml:"price" json:"price"`
}

// PricingRules drives the cost-plus waterfall.
type PricingRules struct {
	PanelUnitPrice         float64 `yaml:"panel_unit_price"`
	BatteryModulePrice     float64 `yaml:"battery_module_price"`
	PVInstallPerKw         float64 `yaml:"pv_install_per_kw"`
	BatteryInstallPerStack float64 `yaml:"battery_install_per_stack"`
	GrossMargin            float64 `yaml:"gross_margin"`
	CommissionRate         float64 `yaml:"commission_rate"`
	TaxMultiplier          float64 `yaml:"tax_multiplier"`
	// RoundingStep is the step the customer price is rounded to, in dollars.
	// Zero disables rounding beyond whole dollars.
	RoundingStep float64 `yaml:"rounding_step"`
}

// RebateRules holds the STC and battery rebate schedules.
type RebateRules struct {
	STCUnitPrice    float64 `yaml:"stc_unit_price"`
	STCDeemingYears float64 `yaml:"stc_deeming_years"`
	// STCZoneRating is STC units per kW per deeming year, keyed by state.
	STCZoneRating map[string]float64 `yaml:"stc_zone_rating"`
	BatteryPerKwh float64            `yaml:"battery_per_kwh"`
	BatteryCapKwh float64            `yaml:"battery_cap_kwh"`
}

// SizingRules holds business constraints on system sizing.
type SizingRules struct {
	MinPanels         int     `yaml:"min_panels"`
	MinBatteryModules int     `yaml:"min_battery_modules"`
	// EveningBuffer oversizes battery capacity relative to low-solar-hour load.
	EveningBuffer float64 `yaml:"evening_buffer"`
	// BatteryUsageRatio fixes the stack at this multiple of daily usage
	// under the battery-anchored strategy.
	BatteryUsageRatio     float64   `yaml:"battery_usage_ratio"`
	CoverageTiers         []float64 `yaml:"coverage_tiers"`
	RecommendedTier       float64   `yaml:"recommended_tier"`
	MaxBillToZeroAttempts int       `yaml:"max_bill_to_zero_attempts"`
	SystemLosses          float64   `yaml:"system_losses"`
	MaxArrayKw            float64   `yaml:"max_array_kw"`
}

// TariffDefaults supplies fallbacks for customer fields left blank.
type TariffDefaults struct {
	DailyUsageKwh   float64            `yaml:"daily_usage_kwh"`
	TariffRate      float64            `yaml:"tariff_rate"`
	SupplyCharge    float64            `yaml:"supply_charge"`
	FeedInTariff    float64            `yaml:"feed_in_tariff"`
	FeedInByState   map[string]float64 `yaml:"feed_in_by_state"`
	Escalation      float64            `yaml:"escalation"`
	ProjectionYears int                `yaml:"projection_years"`
}

// FeedInFor resolves the feed-in tariff for a state, falling back to the
// scheme-wide default.
func (t TariffDefaults) FeedInFor(state string) float64 {
	if fit, ok := t.FeedInByState[strings.ToUpper(state)]; ok {
		return fit
	}
	return t.FeedInTariff
}

func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	if c.Panel.WattageW <= 0 {
		return errors.New("panel.wattage_w must be > 0")
	}
	if c.Battery.CapacityPerModuleKwh <= 0 {
		return errors.New("battery.capacity_per_module_kwh must be > 0")
	}
	if c.Battery.DepthOfDischarge <= 0 || c.Battery.DepthOfDischarge > 1 {
		return errors.New("battery.depth_of_discharge must be in (0, 1]")
	}
	if c.Battery.RoundTripEfficiency <= 0 || c.Battery.RoundTripEfficiency > 1 {
		return errors.New("battery.round_trip_efficiency must be in (0, 1]")
	}
	if len(c.Inverters) == 0 {
		return errors.New("at least one inverter SKU is required")
	}
	for i, inv := range c.Inverters {
		if inv.Phase != "single" && inv.Phase != "three" {
			return fmt.Errorf("inverters[%d]: phase must be single or three, got %q", i, inv.Phase)
		}
		if inv.MaxPvKw <= 0 {
			return fmt.Errorf("inverters[%d]: max_pv_kw must be > 0", i)
		}
	}
	if c.Pricing.TaxMultiplier < 1 {
		return errors.New("pricing.tax_multiplier must be >= 1")
	}
	if c.Pricing.CommissionRate*c.Pricing.TaxMultiplier >= 1 {
		return errors.New("pricing.commission_rate * tax_multiplier must be < 1")
	}
	if c.Sizing.MinPanels < 1 {
		return errors.New("sizing.min_panels must be >= 1")
	}
	if c.Sizing.MinBatteryModules < 0 {
		return errors.New("sizing.min_battery_modules must be >= 0")
	}
	if c.Sizing.SystemLosses < 0 || c.Sizing.SystemLosses >= 1 {
		return errors.New("sizing.system_losses must be in [0, 1)")
	}
	if len(c.Sizing.CoverageTiers) == 0 {
		return errors.New("sizing.coverage_tiers must not be empty")
	}
	if c.Tariff.DailyUsageKwh <= 0 || c.Tariff.TariffRate <= 0 || c.Tariff.SupplyCharge <= 0 {
		return errors.New("tariff defaults must be positive")
	}
	if c.Tariff.ProjectionYears < 1 {
		return errors.New("tariff.projection_years must be >= 1")
	}
	if len(c.Zones.Prefixes) == 0 {
		return errors.New("zones.prefixes must not be empty")
	}
	if c.Zones.BaselineState == "" {
		return errors.New("zones.baseline_state is required")
	}
	if _, ok := c.Zones.StateDefaults[c.Zones.BaselineState]; !ok {
		return fmt.Errorf("zones.state_defaults missing baseline state %q", c.Zones.BaselineState)
	}
	return nil
}
