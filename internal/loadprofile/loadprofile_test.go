package loadprofile

import (
	"testing"

	"solar-proposal/internal/model"

	"github.com/stretchr/testify/assert"
)

func customer(usage float64) model.CustomerProfile {
	return model.CustomerProfile{
		DailyUsageKwh:       usage,
		HasElectricHotWater: true,
	}
}

func TestGenerate_DailyTotalMatchesUsage(t *testing.T) {
	for _, usage := range []float64{8, 18.5, 30, 62.4} {
		p := Generate(customer(usage))
		assert.InDelta(t, usage, p.DailyTotalKwh, 1e-6, "usage %.1f", usage)

		sum := 0.0
		for h := 0; h < 24; h++ {
			sum += p.TotalLoad[h]
		}
		assert.InDelta(t, usage, sum, 1e-6)
	}
}

func TestGenerate_CategoriesSumToTotal(t *testing.T) {
	c := customer(30)
	c.HasEV = true
	c.HasPool = true
	c.HasDuctedAC = true
	p := Generate(c)

	for h := 0; h < 24; h++ {
		cat := p.BaseLoad[h] + p.HotWater[h] + p.Cooking[h] + p.EVCharging[h] + p.Lighting[h]
		assert.InDelta(t, p.TotalLoad[h], cat, 1e-9, "hour %d", h)
	}
	assert.InDelta(t, 30, p.DaytimeKwh+p.OvernightKwh, 1e-6)
}

func TestGenerate_NoOptionalAppliances(t *testing.T) {
	p := Generate(model.CustomerProfile{DailyUsageKwh: 25})

	for h := 0; h < 24; h++ {
		assert.Zero(t, p.HotWater[h], "hot water hour %d", h)
		assert.Zero(t, p.EVCharging[h], "EV hour %d", h)
	}
	// Stated usage is still met through the remaining categories.
	assert.InDelta(t, 25, p.DailyTotalKwh, 1e-6)
}

func TestGenerate_AddOnsRaiseDaytimeShare(t *testing.T) {
	base := Generate(customer(30))

	withPool := customer(30)
	withPool.HasPool = true
	pool := Generate(withPool)

	// The pool pump runs midday, so scaling to the same daily total must
	// shift energy toward daytime hours.
	assert.Greater(t, pool.DaytimeKwh, base.DaytimeKwh)
	assert.InDelta(t, 30, pool.DailyTotalKwh, 1e-6)
}

func TestGenerate_EVShapeIsOvernight(t *testing.T) {
	c := customer(40)
	c.HasEV = true
	p := Generate(c)

	for h := 0; h < 20; h++ {
		assert.Zero(t, p.EVCharging[h], "EV should not charge at hour %d", h)
	}
	assert.Greater(t, p.EVCharging[21], 0.0)
}
