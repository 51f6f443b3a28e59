package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndPolicy(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
policy:
  sizing_strategy: solar-anchored
  initial_soc: cold
  allow_bill_credit: true
`)

	c, err := Load(path)
	require.NoError(t, err)

	pol, err := c.ToPolicy()
	require.NoError(t, err)
	assert.Equal(t, "solar-anchored", pol.Strategy.Name())
	assert.InDelta(t, 0.10, pol.InitialSOCFraction, 1e-9)
	assert.True(t, pol.AllowBillCredit)
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
policy:
  sizing_strategy: moon-phase
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadInitialSOC(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
policy:
  initial_soc: lukewarm
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestCatalog_OverlayRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "catalog.yaml", `
pricing:
  rounding_step: 100
rebates:
  stc_unit_price: 40
`)
	path := writeFile(t, dir, "config.yaml", `
catalog_file: catalog.yaml
`)

	c, err := Load(path)
	require.NoError(t, err)

	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 100.0, cat.Pricing.RoundingStep, "file overrides default")
	assert.Equal(t, 40.0, cat.Rebates.STCUnitPrice)
	assert.Equal(t, 475.0, cat.Panel.WattageW, "absent fields keep defaults")
	assert.NotEmpty(t, cat.Zones.Prefixes)
}

func TestDefault_BuildsEngine(t *testing.T) {
	eng, err := Default().Engine()
	require.NoError(t, err)
	assert.NotNil(t, eng)
}
