package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_RejectsBrokenCatalogs(t *testing.T) {
	breakers := map[string]func(*Catalog){
		"zero panel wattage":   func(c *Catalog) { c.Panel.WattageW = 0 },
		"no inverters":         func(c *Catalog) { c.Inverters = nil },
		"bad inverter phase":   func(c *Catalog) { c.Inverters[0].Phase = "dual" },
		"dod above one":        func(c *Catalog) { c.Battery.DepthOfDischarge = 1.5 },
		"commission eats sell": func(c *Catalog) { c.Pricing.CommissionRate = 0.95 },
		"no coverage tiers":    func(c *Catalog) { c.Sizing.CoverageTiers = nil },
		"missing baseline":     func(c *Catalog) { c.Zones.BaselineState = "ZZ" },
		"losses at one":        func(c *Catalog) { c.Sizing.SystemLosses = 1.0 },
	}
	for name, breaker := range breakers {
		t.Run(name, func(t *testing.T) {
			c := Default()
			breaker(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pricing:
  gross_margin: 0.40
rebates:
  stc_zone_rating:
    QLD: 1.4
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.40, c.Pricing.GrossMargin)
	assert.Equal(t, 1.4, c.Rebates.STCZoneRating["QLD"])
	assert.Equal(t, 1.185, c.Rebates.STCZoneRating["VIC"], "untouched map keys keep defaults")
	assert.NotEmpty(t, c.Zones.Prefixes, "zone table survives overlay")
}

func TestLoad_RejectsInvalidOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  wattage_w: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestZoneTable_LookupChain(t *testing.T) {
	z := Default().Zones

	info, exact := z.Lookup("4051", "")
	assert.True(t, exact)
	assert.Equal(t, "Brisbane", info.Name)
	assert.Equal(t, "QLD", info.State)

	info, exact = z.Lookup("9901", "vic")
	assert.False(t, exact)
	assert.Equal(t, "VIC", info.State)
	assert.Equal(t, z.StateDefaults["VIC"], info.PSH)

	info, exact = z.Lookup("9901", "XX")
	assert.False(t, exact)
	assert.Equal(t, z.BaselineState, info.State)
}

func TestNetworkOperator(t *testing.T) {
	z := Default().Zones
	assert.Equal(t, "Energex", z.NetworkOperator("4051"))
	assert.Equal(t, "Unknown", z.NetworkOperator("9901"))
}

func TestFeedInFor(t *testing.T) {
	d := Default().Tariff
	assert.Equal(t, d.FeedInByState["VIC"], d.FeedInFor("vic"))
	assert.Equal(t, d.FeedInTariff, d.FeedInFor("XX"))
}
