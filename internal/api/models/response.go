package models

import (
	"math"

	"solar-proposal/internal/proposal"
)

// ProposalResponse is the response from a proposal run. Percentages in the
// summary are 0..100; the optional full proposal keeps the engine's
// internal 0..1 fractions.
type ProposalResponse struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Summary ProposalSummary  `json:"summary"`
	Options []OptionSummary  `json:"options"`
	Detail  *proposal.Result `json:"detail,omitempty"`
}

// ProposalSummary is the headline view of the recommended option.
type ProposalSummary struct {
	Zone            string  `json:"zone"`
	ZoneEstimated   bool    `json:"zone_estimated"`
	NetworkOperator string  `json:"network_operator"`
	DailyUsageKwh   float64 `json:"daily_usage_kwh"`

	Year1GridBill     float64 `json:"year_1_grid_bill"`
	FinalYearGridBill float64 `json:"final_year_grid_bill"`

	Recommended OptionSummary `json:"recommended"`
}

// OptionSummary is the per-tier comparison row.
type OptionSummary struct {
	CoveragePct int     `json:"coverage_pct"`
	PanelCount  int     `json:"panel_count"`
	ArrayKw     float64 `json:"array_kw"`

	BatteryModules  int     `json:"battery_modules"`
	BatteryTotalKwh float64 `json:"battery_total_kwh"`

	Inverter          string `json:"inverter"`
	InverterOversized bool   `json:"inverter_oversized,omitempty"`

	DailyProductionKwh float64 `json:"daily_production_kwh"`
	SelfPoweredPct     int     `json:"self_powered_pct"`

	CustomerPrice float64 `json:"customer_price"`
	STCRebate     float64 `json:"stc_rebate"`
	BatteryRebate float64 `json:"battery_rebate"`

	PaybackYear  int     `json:"payback_year,omitempty"`
	PaidBack     bool    `json:"paid_back"`
	ROIPct       int     `json:"roi_pct"`
	TotalSavings float64 `json:"total_savings"`

	BillToZero         bool `json:"bill_to_zero"`
	BillToZeroAttempts int  `json:"bill_to_zero_attempts"`

	Recommended bool `json:"recommended"`
}

// StrategyInfo describes one sizing strategy.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter.
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float", "int", "string"
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// ZoneResponse is the solar-zone lookup result.
type ZoneResponse struct {
	Postcode        string  `json:"postcode"`
	Zone            string  `json:"zone"`
	State           string  `json:"state"`
	PeakSunHours    float64 `json:"peak_sun_hours"`
	Estimated       bool    `json:"estimated"`
	NetworkOperator string  `json:"network_operator"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// FromResult flattens an engine result into the response shape, converting
// internal fractions to display percentages.
func FromResult(id string, res *proposal.Result, includeDetail bool) ProposalResponse {
	out := ProposalResponse{
		ID:     id,
		Status: "ok",
	}
	for _, opt := range res.Options {
		out.Options = append(out.Options, summarizeOption(opt))
	}

	rec := res.RecommendedOption()
	out.Summary = ProposalSummary{
		Zone:              res.Assumptions.Zone.Name,
		ZoneEstimated:     res.Assumptions.Zone.Estimated,
		NetworkOperator:   res.Assumptions.NetworkOperator,
		DailyUsageKwh:     res.LoadProfile.DailyTotalKwh,
		Year1GridBill:     res.BillOutlook.Year1,
		FinalYearGridBill: res.BillOutlook.FinalYear,
		Recommended:       summarizeOption(*rec),
	}
	if includeDetail {
		out.Detail = res
	}
	return out
}

func summarizeOption(opt proposal.SystemOption) OptionSummary {
	return OptionSummary{
		CoveragePct:        pct(opt.CoverageTier),
		PanelCount:         opt.Spec.PanelCount,
		ArrayKw:            opt.Spec.ArrayKw,
		BatteryModules:     opt.Spec.BatteryModules,
		BatteryTotalKwh:    opt.Spec.BatteryTotalKwh,
		Inverter:           opt.Pricing.Inverter.Model,
		InverterOversized:  opt.Pricing.InverterOversized,
		DailyProductionKwh: opt.DailyProductionKwh,
		SelfPoweredPct:     pct(opt.Battery.SelfPowered),
		CustomerPrice:      opt.Pricing.CustomerPrice,
		STCRebate:          opt.Pricing.STCRebate,
		BatteryRebate:      opt.Pricing.BatteryRebate,
		PaybackYear:        opt.Financial.PaybackYear,
		PaidBack:           opt.Financial.PaidBack,
		ROIPct:             pct(opt.Financial.ROI),
		TotalSavings:       opt.Financial.TotalSavings,
		BillToZero:         opt.BillToZero.Converged,
		BillToZeroAttempts: opt.BillToZero.Attempts,
		Recommended:        opt.Recommended,
	}
}

// pct converts an internal 0..1 fraction to a whole display percentage.
func pct(fraction float64) int {
	return int(math.Round(fraction * 100))
}
