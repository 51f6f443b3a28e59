package catalog

import "strings"

// ZoneInfo is one solar-zone table entry.
type ZoneInfo struct {
	Name  string  `yaml:"name" json:"name"`
	PSH   float64 `yaml:"psh" json:"psh"`
	State string  `yaml:"state" json:"state"`
}

// ZoneTable maps two-digit postcode prefixes to solar zones and network
// operators, with state-level fallbacks. Lookups never fail: an unknown
// prefix falls back to the state average, an unknown state to the baseline.
type ZoneTable struct {
	Prefixes      map[string]ZoneInfo `yaml:"prefixes"`
	StateDefaults map[string]float64  `yaml:"state_defaults"`
	BaselineState string              `yaml:"baseline_state"`
	Network       map[string]string   `yaml:"network"`
}

// Prefix extracts the two-digit lookup key from a postcode.
func Prefix(postcode string) string {
	p := strings.TrimSpace(postcode)
	if len(p) < 2 {
		return p
	}
	return p[:2]
}

// Lookup resolves a postcode to its solar zone. The second return is false
// when the table had no entry for the prefix and a state-level estimate was
// used instead.
func (z ZoneTable) Lookup(postcode, state string) (ZoneInfo, bool) {
	if info, ok := z.Prefixes[Prefix(postcode)]; ok {
		return info, true
	}
	st := strings.ToUpper(strings.TrimSpace(state))
	psh, ok := z.StateDefaults[st]
	if !ok {
		st = z.BaselineState
		psh = z.StateDefaults[st]
	}
	return ZoneInfo{Name: st, PSH: psh, State: st}, false
}

// NetworkOperator resolves the distribution network for a postcode, or
// "Unknown" when the prefix is not in the table.
func (z ZoneTable) NetworkOperator(postcode string) string {
	if op, ok := z.Network[Prefix(postcode)]; ok {
		return op
	}
	return "Unknown"
}
