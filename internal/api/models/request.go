package models

// ProposalRequest is the request body for generating a proposal.
type ProposalRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
	Options  ProposalOptions `json:"options,omitempty"`
}

// CustomerRequest mirrors model.CustomerProfile at the API boundary.
// Daily usage is the one hard requirement; every other numeric field is
// optional and defaults server-side.
type CustomerRequest struct {
	Name     string `json:"name,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	State    string `json:"state,omitempty"`

	DailyUsageKwh float64 `json:"daily_usage_kwh" binding:"required,gt=0"`
	TariffRate    float64 `json:"tariff_rate,omitempty" binding:"omitempty,gt=0"`
	SupplyCharge  float64 `json:"supply_charge,omitempty" binding:"omitempty,gt=0"`
	FeedInTariff  float64 `json:"feed_in_tariff,omitempty" binding:"omitempty,gte=0"`
	EscalationPct float64 `json:"escalation_pct,omitempty" binding:"omitempty,gte=0,lte=100"`

	HasEV               bool `json:"has_ev,omitempty"`
	HasPool             bool `json:"has_pool,omitempty"`
	HasDuctedAC         bool `json:"has_ducted_ac,omitempty"`
	HasElectricHotWater bool `json:"has_electric_hot_water,omitempty"`

	Phase       string `json:"phase,omitempty" binding:"omitempty,oneof=single three"`
	Orientation string `json:"orientation,omitempty" binding:"omitempty,oneof=north east west south"`
}

// ProposalOptions contains optional request parameters.
type ProposalOptions struct {
	// IncludeDetail returns the full per-option curves and simulations,
	// not just the summary. Default: false.
	IncludeDetail bool `json:"include_detail,omitempty"`
}
