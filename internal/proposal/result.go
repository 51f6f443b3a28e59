package proposal

import (
	"solar-proposal/internal/dispatch"
	"solar-proposal/internal/finance"
	"solar-proposal/internal/loadprofile"
	"solar-proposal/internal/model"
	"solar-proposal/internal/pricing"
	"solar-proposal/internal/sizing"
	"solar-proposal/internal/solar"
)

// SystemOption is one fully simulated and priced system at a coverage tier.
type SystemOption struct {
	CoverageTier float64        `json:"coverage_tier"`
	Spec         sizing.SizeSpec `json:"spec"`

	SolarCurve         [24]float64 `json:"solar_curve"`
	DailyProductionKwh float64     `json:"daily_production_kwh"`

	SolarOnly  dispatch.SolarOnlyResult `json:"solar_only"`
	Battery    dispatch.Result          `json:"battery"`
	BillToZero sizing.Outcome           `json:"bill_to_zero"`

	Pricing   pricing.Result     `json:"pricing"`
	Financial finance.Projection `json:"financial"`

	Recommended bool `json:"recommended"`
}

// Scenario is a cost/self-sufficiency summary for one supply arrangement.
type Scenario struct {
	DailyCost   float64 `json:"daily_cost"`
	AnnualCost  float64 `json:"annual_cost"`
	SelfPowered float64 `json:"self_powered"` // fraction 0..1
}

// Scenarios compares the recommended option against doing nothing and
// against solar without storage.
type Scenarios struct {
	NoSolar      Scenario `json:"no_solar"`
	SolarOnly    Scenario `json:"solar_only"`
	SolarBattery Scenario `json:"solar_battery"`
}

// BillOutlook summarizes the do-nothing cost trajectory.
type BillOutlook struct {
	YearlyBills     []float64 `json:"yearly_bills"`
	Year1           float64   `json:"year_1"`
	FinalYear       float64   `json:"final_year"`
	IncreaseFactor  float64   `json:"increase_factor"`
	CumulativeTotal float64   `json:"cumulative_total"`
}

// Assumptions records the inputs and reference data behind the numbers, so
// a proposal is auditable on its own.
type Assumptions struct {
	TariffRate   float64 `json:"tariff_rate"`
	SupplyCharge float64 `json:"supply_charge"`
	FeedInTariff float64 `json:"feed_in_tariff"`
	Escalation   float64 `json:"escalation"`

	Zone            solar.Zone `json:"zone"`
	NetworkOperator string     `json:"network_operator"`

	PanelDegradation   float64 `json:"panel_degradation"`
	BatteryDegradation float64 `json:"battery_degradation"`
	SystemLosses       float64 `json:"system_losses"`

	SizingStrategy string `json:"sizing_strategy"`
}

// Result is the complete proposal: load analysis, every system option, and
// the comparison blocks the sales document is built from. It contains only
// plain data and is fully JSON-serializable.
type Result struct {
	Customer    model.CustomerProfile `json:"customer"`
	LoadProfile loadprofile.Profile   `json:"load_profile"`

	Options     []SystemOption `json:"options"`
	Recommended int            `json:"recommended"` // index into Options

	Scenarios   Scenarios   `json:"scenarios"`
	BillOutlook BillOutlook `json:"bill_outlook"`
	Assumptions Assumptions `json:"assumptions"`
}

// RecommendedOption returns the flagged option.
func (r *Result) RecommendedOption() *SystemOption {
	if r.Recommended < 0 || r.Recommended >= len(r.Options) {
		return nil
	}
	return &r.Options[r.Recommended]
}
