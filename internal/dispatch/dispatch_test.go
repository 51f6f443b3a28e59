package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Flat 1 kWh/h load with a midday solar hump.
func dayCurves(solarPeak float64) (load, solar [24]float64) {
	for h := 0; h < 24; h++ {
		load[h] = 1.0
	}
	for h := 8; h <= 16; h++ {
		dist := float64(h - 12)
		solar[h] = solarPeak * math.Exp(-dist*dist/8)
	}
	return load, solar
}

func params() Params {
	return Params{
		UsableCapacityKwh:   15.2,
		MaxChargeKw:         5,
		MaxDischargeKw:      5,
		RoundTripEfficiency: 0.95,
		InitialSOCFraction:  1.0,
	}
}

func TestSimulate_EnergyBalancePerHour(t *testing.T) {
	load, solar := dayCurves(6)
	r := Simulate(load, solar, params())

	for h := 0; h < 24; h++ {
		assert.InDelta(t, load[h], r.SelfConsume[h]+r.Discharge[h]+r.GridImport[h], 1e-9,
			"load balance hour %d", h)
		assert.InDelta(t, solar[h], r.SelfConsume[h]+r.Charge[h]+r.GridExport[h], 1e-9,
			"solar balance hour %d", h)
		assert.GreaterOrEqual(t, r.GridImport[h], 0.0)
		assert.GreaterOrEqual(t, r.GridExport[h], 0.0)
	}
}

func TestSimulate_NeverChargesAndDischargesSameHour(t *testing.T) {
	load, solar := dayCurves(6)
	r := Simulate(load, solar, params())

	for h := 0; h < 24; h++ {
		assert.True(t, r.Charge[h] == 0 || r.Discharge[h] == 0, "hour %d", h)
		assert.InDelta(t, math.Min(load[h], solar[h]), r.SelfConsume[h], 1e-9)
	}
}

func TestSimulate_SOCBounds(t *testing.T) {
	load, solar := dayCurves(10)
	p := params()
	r := Simulate(load, solar, p)

	for h := 0; h < 24; h++ {
		assert.GreaterOrEqual(t, r.SOC[h], 0.0, "hour %d", h)
		assert.LessOrEqual(t, r.SOC[h], p.UsableCapacityKwh+1e-9, "hour %d", h)
	}
}

func TestSimulate_EfficiencyLossOnChargeOnly(t *testing.T) {
	// One surplus hour: 4 kWh net surplus, empty battery.
	var load, solar [24]float64
	solar[12] = 4
	p := Params{UsableCapacityKwh: 100, MaxChargeKw: 10, MaxDischargeKw: 10, RoundTripEfficiency: 0.9}

	r := Simulate(load, solar, p)
	assert.InDelta(t, 4.0, r.Charge[12], 1e-9, "full surplus goes in")
	assert.InDelta(t, 3.6, r.SOC[12], 1e-9, "stored energy is charge x efficiency")

	// One deficit hour: discharge comes out 1:1.
	load[20] = 2
	r = Simulate(load, solar, p)
	assert.InDelta(t, 2.0, r.Discharge[20], 1e-9)
	assert.InDelta(t, 1.6, r.SOC[20], 1e-9)
}

func TestSimulate_RateAndHeadroomCaps(t *testing.T) {
	var load, solar [24]float64
	solar[12] = 8
	p := Params{UsableCapacityKwh: 2, MaxChargeKw: 3, MaxDischargeKw: 3, RoundTripEfficiency: 1.0}

	r := Simulate(load, solar, p)
	assert.InDelta(t, 2.0, r.Charge[12], 1e-9, "headroom caps the charge")
	assert.InDelta(t, 6.0, r.GridExport[12], 1e-9)

	p.UsableCapacityKwh = 50
	r = Simulate(load, solar, p)
	assert.InDelta(t, 3.0, r.Charge[12], 1e-9, "charge rate caps the charge")
	assert.InDelta(t, 5.0, r.GridExport[12], 1e-9)
}

func TestSimulate_ZeroBatteryDegradesGracefully(t *testing.T) {
	load, solar := dayCurves(6)
	r := Simulate(load, solar, Params{})

	for h := 0; h < 24; h++ {
		assert.Zero(t, r.Charge[h])
		assert.Zero(t, r.Discharge[h])
		assert.Zero(t, r.SOC[h])
	}
	require.False(t, math.IsNaN(r.SelfPowered))

	// Matches the solar-only baseline exactly.
	so := SimulateSolarOnly(load, solar)
	assert.InDelta(t, so.TotalGridImport, r.TotalGridImport, 1e-9)
	assert.InDelta(t, so.TotalGridExport, r.TotalGridExport, 1e-9)
}

func TestSimulate_OversizedBatteryApproachesFullSelfPower(t *testing.T) {
	// Solar matches daily usage, battery far exceeds it, and yesterday's
	// charge is in the bank.
	load, solar := dayCurves(0)
	total := 0.0
	for h := 8; h <= 16; h++ {
		dist := float64(h - 12)
		solar[h] = math.Exp(-dist * dist / 8)
		total += solar[h]
	}
	scale := 24.0 / total
	for h := range solar {
		solar[h] *= scale
	}

	p := Params{
		UsableCapacityKwh:   500,
		MaxChargeKw:         50,
		MaxDischargeKw:      50,
		RoundTripEfficiency: 1.0,
		InitialSOCFraction:  1.0,
	}
	r := Simulate(load, solar, p)

	assert.InDelta(t, 0, r.TotalGridImport, 1e-9, "grid import trends to zero")
	assert.InDelta(t, 1.0, r.SelfPowered, 1e-9)
}

func TestSimulate_ColdStartImportsMore(t *testing.T) {
	load, solar := dayCurves(5)
	warm := params()
	cold := params()
	cold.InitialSOCFraction = 0.10

	rw := Simulate(load, solar, warm)
	rc := Simulate(load, solar, cold)
	assert.Greater(t, rc.TotalGridImport, rw.TotalGridImport)
}
