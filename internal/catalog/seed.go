package catalog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// seedRow is the YAML shape of one operator-supplied catalog extension
// entry, mirroring row's seven string fields.
type seedRow struct {
	Index        string `yaml:"index"`
	Name         string `yaml:"name"`
	Availability string `yaml:"availability"`
	Quantity     string `yaml:"quantity"`
	BaseCost     string `yaml:"base_cost"`
	PurchaseDM   string `yaml:"purchase_dm"`
	SaleDM       string `yaml:"sale_dm"`
}

// LoadSeed reads an operator-supplied YAML file of extension rows (§2.2's
// CATALOG_SEED_FILE), parsing each through the same validation as the
// embedded table. The embedded catalog is always the ground truth; this
// only ever adds to or overrides individual indices.
func LoadSeed(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seedRows []seedRow
	if err := yaml.Unmarshal(data, &seedRows); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(seedRows))
	for i, sr := range seedRows {
		r := row{sr.Index, sr.Name, sr.Availability, sr.Quantity, sr.BaseCost, sr.PurchaseDM, sr.SaleDM}
		e, err := parseRow(r, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Extend returns a new Catalog containing base's entries overlaid with
// extra, keyed by index (a seed row with the same index as a standard
// entry replaces it).
func Extend(base *Catalog, extra []Entry) *Catalog {
	merged := make(map[int]Entry, len(base.entries)+len(extra))
	for idx, e := range base.entries {
		merged[idx] = e
	}
	for _, e := range extra {
		merged[e.Index] = e
	}
	return &Catalog{entries: merged}
}
