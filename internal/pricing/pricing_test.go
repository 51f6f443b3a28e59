package pricing

import (
	"testing"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/model"
	"solar-proposal/internal/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterfall_KnownPairs(t *testing.T) {
	// Hand-derived: S = 10000*1.35 / (1 - 0.05*1.10) = 13500/0.945
	sell, commission, gross := waterfall(10000, 0.35, 0.05, 1.10)
	assert.InDelta(t, 14285.714286, sell, 1e-4)
	assert.InDelta(t, 15714.285714, gross, 1e-4)
	assert.InDelta(t, 785.714286, commission, 1e-4)

	// The defining property: ex-tax revenue covers COGS+margin plus the
	// full commission, with nothing eroded by tax.
	assert.InDelta(t, 10000*1.35, sell-commission, 1e-6)

	// No commission degenerates to plain margin-plus-tax.
	sell, commission, gross = waterfall(8000, 0.20, 0, 1.10)
	assert.InDelta(t, 9600, sell, 1e-9)
	assert.Zero(t, commission)
	assert.InDelta(t, 10560, gross, 1e-9)
}

func TestWaterfall_NaiveFormulaWouldUnderRecover(t *testing.T) {
	sell, commission, _ := waterfall(10000, 0.35, 0.05, 1.10)
	naive := 10000 * 1.35 * (1 + 0.05)
	assert.Greater(t, sell, naive, "gross-up must exceed the naive mark-up")
	assert.InDelta(t, 13500, sell-commission, 1e-6)
}

func TestSTCRebate_FloorsUnits(t *testing.T) {
	r := catalog.Default().Rebates

	// 10.925 kW * 1.382 * 5 = 75.49 => 75 units.
	units, rebate := stcRebateFor(10.925, "QLD", r)
	assert.Equal(t, 75, units)
	assert.InDelta(t, float64(75)*r.STCUnitPrice, rebate, 1e-9)

	units, rebate = stcRebateFor(10.925, "ZZ", r)
	assert.Zero(t, units, "unknown state earns no certificates")
	assert.Zero(t, rebate)
}

func TestBatteryRebate_Capped(t *testing.T) {
	r := catalog.Default().Rebates

	assert.InDelta(t, 30*r.BatteryPerKwh, batteryRebateFor(30, r), 1e-9)
	assert.InDelta(t, r.BatteryCapKwh*r.BatteryPerKwh, batteryRebateFor(80, r), 1e-9,
		"claims above the cap pay the cap")
}

func TestSelectInverter(t *testing.T) {
	skus := catalog.Default().Inverters

	inv, oversized, err := SelectInverter(9.5, model.PhaseSingle, skus)
	require.NoError(t, err)
	assert.Equal(t, "Sigen Hybrid 8.0 SP", inv.Model, "cheapest fitting SKU wins")
	assert.False(t, oversized)

	inv, oversized, err = SelectInverter(25, model.PhaseSingle, skus)
	require.NoError(t, err)
	assert.True(t, oversized, "array beyond the largest single-phase SKU")
	assert.Equal(t, 13.3, inv.MaxPvKw)

	inv, oversized, err = SelectInverter(25, model.PhaseThree, skus)
	require.NoError(t, err)
	assert.False(t, oversized)
	assert.Equal(t, "Sigen Hybrid 20.0 TP", inv.Model)

	_, _, err = SelectInverter(5, model.Phase("two"), skus)
	assert.Error(t, err)
}

func TestPrice_EndToEnd(t *testing.T) {
	cat := catalog.Default()
	spec := sizing.SizeSpec{
		CoverageTier:     1.5,
		PanelCount:       23,
		ArrayKw:          10.925,
		BatteryModules:   6,
		BatteryTotalKwh:  48,
		BatteryUsableKwh: 45.6,
	}

	res, err := Price(spec, model.PhaseSingle, "QLD", cat)
	require.NoError(t, err)

	wantCOGS := 23*cat.Pricing.PanelUnitPrice +
		res.Inverter.Price +
		6*cat.Pricing.BatteryModulePrice +
		10.925*cat.Pricing.PVInstallPerKw +
		cat.Pricing.BatteryInstallPerStack
	assert.InDelta(t, wantCOGS, res.CostOfGoods, 1e-9)

	assert.Equal(t, 75, res.STCUnits)
	assert.InDelta(t, 45.6*cat.Rebates.BatteryPerKwh, res.BatteryRebate, 1e-9)

	// Rounded to the catalog step and net of both rebates.
	assert.InDelta(t, 0, mod(res.CustomerPrice, cat.Pricing.RoundingStep), 1e-9)
	assert.Less(t, res.CustomerPrice, res.GrossPrice)
	assert.GreaterOrEqual(t, res.CustomerPrice, 0.0)
}

func TestPrice_Deterministic(t *testing.T) {
	cat := catalog.Default()
	spec := sizing.SizeSpec{PanelCount: 14, ArrayKw: 6.65, BatteryModules: 2, BatteryUsableKwh: 15.2}

	a, err := Price(spec, model.PhaseSingle, "VIC", cat)
	require.NoError(t, err)
	b, err := Price(spec, model.PhaseSingle, "VIC", cat)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func mod(x, step float64) float64 {
	if step <= 0 {
		return 0
	}
	q := x / step
	return x - float64(int64(q+0.5))*step
}
