package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog YAML and overlays it on the compiled-in defaults,
// so a file only needs to state what differs (e.g. a new STC unit price).
func Load(path string) (*Catalog, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s invalid: %w", path, err)
	}
	return c, nil
}

// LoadUnchecked loads and overlays a catalog without validating it.
func LoadUnchecked(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Unmarshalling onto the default catalog leaves absent fields at their
	// default values and merges map entries key by key.
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}
