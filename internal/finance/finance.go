package finance

import "math"

// Params drives one 20-year projection. Daily energy figures come from the
// year-1 battery simulation; the projection degrades exports by the panel
// degradation rate but keeps imports at year-1 levels. (Re-running the
// dispatch simulation against a degraded curve per year would be more
// accurate; the error is small over the horizon and documented.)
//
// Units: kWh, $, fractions 0..1.
type Params struct {
	DailyUsageKwh float64
	TariffRate    float64
	SupplyCharge  float64
	FeedInTariff  float64
	Escalation    float64
	Years         int

	SystemCost     float64
	DailyImportKwh float64
	DailyExportKwh float64

	PanelDegradation float64

	// AllowBillCredit lets the system's annual cost go negative when export
	// credits exceed the bill (a cash surplus). When false the annual cost
	// floors at zero. This is business policy, not arithmetic.
	AllowBillCredit bool
}

// Projection is the year-by-year outcome. All slices have length Years;
// cumulative slices are prefix sums of their annual counterparts.
// NetPosition[i] = system cost minus cumulative savings through year i+1.
type Projection struct {
	Years int `json:"years"`

	YearlyGridCost       []float64 `json:"yearly_grid_cost"`
	YearlySystemCost     []float64 `json:"yearly_system_cost"`
	CumulativeGridCost   []float64 `json:"cumulative_grid_cost"`
	CumulativeSystemCost []float64 `json:"cumulative_system_cost"`
	NetPosition          []float64 `json:"net_position"`

	// PaybackYear is 1-based; valid only when PaidBack is true. A system
	// that reaches zero net position exactly in the final year still
	// reports PaidBack.
	PaybackYear int  `json:"payback_year"`
	PaidBack    bool `json:"paid_back"`

	TotalSavings float64 `json:"total_savings"`
	// ROI is (total savings - system cost) / system cost, as a fraction.
	ROI float64 `json:"roi"`
}

// Project computes grid-only versus with-system annual costs under tariff
// escalation and hardware degradation.
func Project(p Params) Projection {
	years := p.Years
	if years < 1 {
		years = 1
	}

	out := Projection{
		Years:                years,
		YearlyGridCost:       make([]float64, years),
		YearlySystemCost:     make([]float64, years),
		CumulativeGridCost:   make([]float64, years),
		CumulativeSystemCost: make([]float64, years),
		NetPosition:          make([]float64, years),
	}

	gridCum := 0.0
	sysCum := 0.0
	savings := 0.0

	for i := 0; i < years; i++ {
		factor := math.Pow(1+p.Escalation, float64(i))
		escalatedRate := p.TariffRate * factor
		escalatedSupply := p.SupplyCharge * factor

		gridAnnual := p.DailyUsageKwh*escalatedRate*365 + escalatedSupply*365

		prodFactor := math.Pow(1-p.PanelDegradation, float64(i))
		exportCredit := p.DailyExportKwh * prodFactor * p.FeedInTariff * factor * 365
		importCost := p.DailyImportKwh * escalatedRate * 365
		supplyCost := escalatedSupply * 365

		sysAnnual := importCost + supplyCost - exportCredit
		if !p.AllowBillCredit && sysAnnual < 0 {
			sysAnnual = 0
		}

		gridCum += gridAnnual
		sysCum += sysAnnual
		savings += gridAnnual - sysAnnual

		out.YearlyGridCost[i] = gridAnnual
		out.YearlySystemCost[i] = sysAnnual
		out.CumulativeGridCost[i] = gridCum
		out.CumulativeSystemCost[i] = sysCum
		out.NetPosition[i] = p.SystemCost - savings

		if !out.PaidBack && out.NetPosition[i] <= 0 {
			out.PaidBack = true
			out.PaybackYear = i + 1
		}
	}

	out.TotalSavings = savings
	if p.SystemCost > 0 {
		out.ROI = (savings - p.SystemCost) / p.SystemCost
	}
	return out
}
