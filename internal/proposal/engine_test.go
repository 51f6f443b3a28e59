package proposal

import (
	"encoding/json"
	"math"
	"testing"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(catalog.Default(), DefaultPolicy())
	require.NoError(t, err)
	return e
}

func brisbaneCustomer() model.CustomerProfile {
	return model.CustomerProfile{
		Postcode:            "4051",
		State:               "QLD",
		DailyUsageKwh:       30,
		TariffRate:          0.32,
		SupplyCharge:        1.10,
		HasElectricHotWater: true,
	}
}

func TestCalculate_FullPipeline(t *testing.T) {
	res, err := testEngine(t).Calculate(brisbaneCustomer())
	require.NoError(t, err)

	require.Len(t, res.Options, 4, "one option per coverage tier")
	rec := res.RecommendedOption()
	require.NotNil(t, rec)
	assert.InDelta(t, 1.5, rec.CoverageTier, 1e-9)
	assert.True(t, rec.Recommended)

	assert.InDelta(t, 30, res.LoadProfile.DailyTotalKwh, 1e-6)
	assert.Equal(t, "Brisbane", res.Assumptions.Zone.Name)
	assert.Equal(t, "Energex", res.Assumptions.NetworkOperator)
	assert.Equal(t, "battery-anchored", res.Assumptions.SizingStrategy)

	for _, opt := range res.Options {
		assert.GreaterOrEqual(t, opt.Spec.PanelCount, 10)
		assert.GreaterOrEqual(t, opt.Spec.BatteryModules, 2)
		assert.Greater(t, opt.Pricing.CustomerPrice, 0.0)
		assert.Equal(t, 20, opt.Financial.Years)
		assert.InDelta(t, opt.DailyProductionKwh, opt.Battery.TotalSolar, 1e-6,
			"yield estimate and simulation use the same curve")
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	e := testEngine(t)
	a, err := e.Calculate(brisbaneCustomer())
	require.NoError(t, err)
	b, err := e.Calculate(brisbaneCustomer())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb), "engine is a pure function")
}

func TestCalculate_ZeroUsageFallsBackToDefault(t *testing.T) {
	c := brisbaneCustomer()
	c.DailyUsageKwh = 0

	res, err := testEngine(t).Calculate(c)
	require.NoError(t, err)
	assert.InDelta(t, 30, res.Customer.DailyUsageKwh, 1e-9, "default usage constant applies")
	assertNoNaN(t, res)
}

func TestCalculate_NoNaNAnywhere(t *testing.T) {
	cases := []model.CustomerProfile{
		{},
		{Postcode: "9999", State: "XX"},
		{DailyUsageKwh: 0.001, Postcode: "3000", State: "VIC"},
		{DailyUsageKwh: 95, Postcode: "0800", State: "NT", HasEV: true, HasPool: true, HasDuctedAC: true, HasElectricHotWater: true, Phase: model.PhaseThree},
	}
	e := testEngine(t)
	for i, c := range cases {
		res, err := e.Calculate(c)
		require.NoError(t, err, "case %d", i)
		assertNoNaN(t, res)
	}
}

func TestCalculate_PostcodeMissFallsBackToState(t *testing.T) {
	c := brisbaneCustomer()
	c.Postcode = "9901"
	c.State = "VIC"

	res, err := testEngine(t).Calculate(c)
	require.NoError(t, err)
	assert.True(t, res.Assumptions.Zone.Estimated)
	assert.Equal(t, 3.6, res.Assumptions.Zone.PSH)
	assert.Equal(t, "Unknown", res.Assumptions.NetworkOperator)
}

func TestCalculate_ScenariosOrdering(t *testing.T) {
	res, err := testEngine(t).Calculate(brisbaneCustomer())
	require.NoError(t, err)

	s := res.Scenarios
	assert.InDelta(t, 30*0.32+1.10, s.NoSolar.DailyCost, 1e-9)
	assert.Zero(t, s.NoSolar.SelfPowered)
	assert.LessOrEqual(t, s.SolarBattery.DailyCost, s.SolarOnly.DailyCost)
	assert.GreaterOrEqual(t, s.SolarBattery.SelfPowered, s.SolarOnly.SelfPowered)
}

func TestCalculate_BillToZeroSurfacedPerOption(t *testing.T) {
	c := brisbaneCustomer()
	c.FeedInTariff = -1 // forces state default lookup path

	res, err := testEngine(t).Calculate(c)
	require.NoError(t, err)
	for _, opt := range res.Options {
		if opt.BillToZero.Converged {
			assert.LessOrEqual(t, opt.BillToZero.NetDailyCost, 0.0)
		} else {
			assert.Greater(t, opt.BillToZero.NetDailyCost, 0.0)
		}
	}
}

func TestNew_RejectsBrokenCatalog(t *testing.T) {
	cat := catalog.Default()
	cat.Inverters = nil
	_, err := New(cat, DefaultPolicy())
	assert.Error(t, err)

	_, err = New(nil, DefaultPolicy())
	assert.Error(t, err)
}

// assertNoNaN walks the JSON rendering of a result and fails on any NaN or
// Inf. Marshal itself rejects those values, so a successful round-trip plus
// a numeric sweep covers every field.
func assertNoNaN(t *testing.T, res *Result) {
	t.Helper()
	raw, err := json.Marshal(res)
	require.NoError(t, err, "NaN/Inf is not JSON-serializable")

	var generic any
	require.NoError(t, json.Unmarshal(raw, &generic))
	sweep(t, generic)
}

func sweep(t *testing.T, v any) {
	switch x := v.(type) {
	case map[string]any:
		for _, vv := range x {
			sweep(t, vv)
		}
	case []any:
		for _, vv := range x {
			sweep(t, vv)
		}
	case float64:
		assert.False(t, math.IsNaN(x) || math.IsInf(x, 0))
	}
}
