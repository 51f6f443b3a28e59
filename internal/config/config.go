package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-proposal/internal/catalog"
	"solar-proposal/internal/proposal"
	"solar-proposal/internal/sizing"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: overlay the compiled-in catalog from a separate YAML
	// (pricing and rebate rates change more often than code).
	CatalogFile string       `yaml:"catalog_file"`
	Policy      PolicyConfig `yaml:"policy"`

	// resolvedDir is the config file's directory, for relative paths.
	resolvedDir string
}

// PolicyConfig selects the engine's business-policy knobs.
type PolicyConfig struct {
	// SizingStrategy: "battery-anchored" (default) or "solar-anchored".
	SizingStrategy string `yaml:"sizing_strategy"`
	// InitialSOC: "steady" (default, battery full at midnight) or "cold"
	// (first-day behavior, 10% charge).
	InitialSOC string `yaml:"initial_soc"`
	// AllowBillCredit lets projected annual bills go negative instead of
	// flooring at zero.
	AllowBillCredit bool `yaml:"allow_bill_credit"`
}

// Default returns the zero-file configuration.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a YAML config.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.resolvedDir = filepath.Dir(path)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := sizing.ForName(c.Policy.SizingStrategy); err != nil {
		return err
	}
	switch c.Policy.InitialSOC {
	case "", "steady", "cold":
	default:
		return fmt.Errorf("policy.initial_soc must be steady or cold, got %q", c.Policy.InitialSOC)
	}
	return nil
}

// Catalog resolves the active catalog: the catalog file overlaid on the
// compiled-in defaults, or the defaults alone. Relative paths are
// interpreted against the config file's directory first, then the working
// directory.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogFile == "" {
		return catalog.Default(), nil
	}
	path := c.CatalogFile
	if !filepath.IsAbs(path) && c.resolvedDir != "" {
		cand := filepath.Join(c.resolvedDir, path)
		if _, err := os.Stat(cand); err == nil {
			path = cand
		}
	}
	return catalog.Load(path)
}

// ToPolicy converts the YAML knobs into an engine policy.
func (c *Config) ToPolicy() (proposal.Policy, error) {
	strat, err := sizing.ForName(c.Policy.SizingStrategy)
	if err != nil {
		return proposal.Policy{}, err
	}
	pol := proposal.DefaultPolicy()
	pol.Strategy = strat
	pol.AllowBillCredit = c.Policy.AllowBillCredit
	if c.Policy.InitialSOC == "cold" {
		pol.InitialSOCFraction = 0.10
	}
	return pol, nil
}

// Engine builds a ready-to-use proposal engine from the configuration.
func (c *Config) Engine() (*proposal.Engine, error) {
	cat, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	pol, err := c.ToPolicy()
	if err != nil {
		return nil, err
	}
	return proposal.New(cat, pol)
}
