package proposal

import (
	"errors"
	"fmt"
	"math"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/dispatch"
	"solar-proposal/internal/finance"
	"solar-proposal/internal/loadprofile"
	"solar-proposal/internal/model"
	"solar-proposal/internal/pricing"
	"solar-proposal/internal/sizing"
	"solar-proposal/internal/solar"
)

// Policy holds the business choices the engine does not make on its own.
type Policy struct {
	Strategy sizing.Strategy
	// InitialSOCFraction is the battery's starting state of charge.
	// 1.0 models a steady-state system charged by yesterday's solar;
	// 0.10 models first-day cold-start behavior.
	InitialSOCFraction float64
	AllowBillCredit    bool
}

// DefaultPolicy is steady-state dispatch, battery-anchored sizing, and
// bills floored at zero.
func DefaultPolicy() Policy {
	return Policy{
		Strategy:           sizing.BatteryAnchored{},
		InitialSOCFraction: 1.0,
		AllowBillCredit:    false,
	}
}

// Engine turns a customer profile into a complete proposal. It holds only
// immutable reference data, so one engine can serve concurrent requests.
type Engine struct {
	cat    *catalog.Catalog
	policy Policy
}

func New(cat *catalog.Catalog, policy Policy) (*Engine, error) {
	if cat == nil {
		return nil, errors.New("catalog is nil")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog invalid: %w", err)
	}
	if policy.Strategy == nil {
		policy.Strategy = sizing.BatteryAnchored{}
	}
	if policy.InitialSOCFraction <= 0 {
		policy.InitialSOCFraction = 1.0
	}
	return &Engine{cat: cat, policy: policy}, nil
}

// Calculate runs the full pipeline for one customer. It is a pure function
// of the profile: identical input produces identical output.
func (e *Engine) Calculate(customer model.CustomerProfile) (*Result, error) {
	cust := customer.Normalized(e.cat.Tariff)
	profile := loadprofile.Generate(cust)
	zone := solar.LookupZone(e.cat.Zones, cust.Postcode, cust.State)

	in := sizing.Inputs{Customer: cust, Profile: profile, Zone: zone, Catalog: e.cat}

	res := &Result{
		Customer:    cust,
		LoadProfile: profile,
		Recommended: -1,
	}

	for _, tier := range e.cat.Sizing.CoverageTiers {
		opt, err := e.buildOption(in, tier)
		if err != nil {
			return nil, fmt.Errorf("coverage tier %.0f%%: %w", tier*100, err)
		}
		if tierMatches(tier, e.cat.Sizing.RecommendedTier) {
			opt.Recommended = true
			res.Recommended = len(res.Options)
		}
		res.Options = append(res.Options, opt)
	}
	if len(res.Options) == 0 {
		return nil, errors.New("no coverage tiers configured")
	}
	if res.Recommended < 0 {
		res.Recommended = len(res.Options) - 1
		res.Options[res.Recommended].Recommended = true
	}

	rec := res.RecommendedOption()
	res.Scenarios = e.buildScenarios(cust, rec)
	res.BillOutlook = buildBillOutlook(rec.Financial)
	res.Assumptions = Assumptions{
		TariffRate:         cust.TariffRate,
		SupplyCharge:       cust.SupplyCharge,
		FeedInTariff:       cust.FeedInTariff,
		Escalation:         cust.Escalation,
		Zone:               zone,
		NetworkOperator:    e.cat.Zones.NetworkOperator(cust.Postcode),
		PanelDegradation:   e.cat.Panel.DegradationAnnual,
		BatteryDegradation: e.cat.Battery.DegradationAnnual,
		SystemLosses:       e.cat.Sizing.SystemLosses,
		SizingStrategy:     e.policy.Strategy.Name(),
	}
	return res, nil
}

// buildOption sizes, simulates, verifies and prices one coverage tier.
func (e *Engine) buildOption(in sizing.Inputs, tier float64) (SystemOption, error) {
	spec := e.policy.Strategy.Size(in, tier)

	// The bill-to-zero search may grow the array, so simulate after it.
	btz := sizing.VerifyBillToZero(in, spec, e.policy.InitialSOCFraction)
	spec = btz.Spec

	curve := solar.Curve(spec.ArrayKw, in.Zone.PSH, in.Customer.Orientation, e.cat.Sizing.SystemLosses)
	solarOnly := dispatch.SimulateSolarOnly(in.Profile.TotalLoad, curve)
	batt := dispatch.Simulate(in.Profile.TotalLoad, curve, spec.DispatchParams(e.cat.Battery, e.policy.InitialSOCFraction))

	price, err := pricing.Price(spec, in.Customer.Phase, in.Zone.State, e.cat)
	if err != nil {
		return SystemOption{}, err
	}

	proj := finance.Project(finance.Params{
		DailyUsageKwh:    in.Profile.DailyTotalKwh,
		TariffRate:       in.Customer.TariffRate,
		SupplyCharge:     in.Customer.SupplyCharge,
		FeedInTariff:     in.Customer.FeedInTariff,
		Escalation:       in.Customer.Escalation,
		Years:            e.cat.Tariff.ProjectionYears,
		SystemCost:       price.CustomerPrice,
		DailyImportKwh:   batt.TotalGridImport,
		DailyExportKwh:   batt.TotalGridExport,
		PanelDegradation: e.cat.Panel.DegradationAnnual,
		AllowBillCredit:  e.policy.AllowBillCredit,
	})

	return SystemOption{
		CoverageTier:       tier,
		Spec:               spec,
		SolarCurve:         curve,
		DailyProductionKwh: solar.DailyProduction(curve),
		SolarOnly:          solarOnly,
		Battery:            batt,
		BillToZero:         btz,
		Pricing:            price,
		Financial:          proj,
	}, nil
}

func (e *Engine) buildScenarios(cust model.CustomerProfile, rec *SystemOption) Scenarios {
	noSolarDaily := cust.DailyUsageKwh*cust.TariffRate + cust.SupplyCharge

	solarOnlyDaily := rec.SolarOnly.TotalGridImport*cust.TariffRate +
		cust.SupplyCharge -
		rec.SolarOnly.TotalGridExport*cust.FeedInTariff

	battDaily := rec.Battery.TotalGridImport*cust.TariffRate +
		cust.SupplyCharge -
		rec.Battery.TotalGridExport*cust.FeedInTariff

	if !e.policy.AllowBillCredit {
		solarOnlyDaily = math.Max(0, solarOnlyDaily)
		battDaily = math.Max(0, battDaily)
	}

	return Scenarios{
		NoSolar: Scenario{
			DailyCost:  noSolarDaily,
			AnnualCost: noSolarDaily * 365,
		},
		SolarOnly: Scenario{
			DailyCost:   solarOnlyDaily,
			AnnualCost:  solarOnlyDaily * 365,
			SelfPowered: rec.SolarOnly.SelfPowered,
		},
		SolarBattery: Scenario{
			DailyCost:   battDaily,
			AnnualCost:  battDaily * 365,
			SelfPowered: rec.Battery.SelfPowered,
		},
	}
}

func buildBillOutlook(proj finance.Projection) BillOutlook {
	out := BillOutlook{
		YearlyBills: proj.YearlyGridCost,
		Year1:       proj.YearlyGridCost[0],
		FinalYear:   proj.YearlyGridCost[proj.Years-1],
	}
	if out.Year1 > 0 {
		out.IncreaseFactor = out.FinalYear / out.Year1
	}
	out.CumulativeTotal = proj.CumulativeGridCost[proj.Years-1]
	return out
}

// tierMatches compares coverage tiers with a tolerance so YAML-sourced
// floats line up with the recommended tier.
func tierMatches(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
