package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"renocost/pkg/core/workcfg"
)

// fileEntry is one override row in a catalog YAML file. Tier may be omitted to
// apply the same prices to every tier.
type fileEntry struct {
	Category string  `yaml:"category"`
	Item     string  `yaml:"item"`
	Tier     string  `yaml:"tier"`
	Labor    float64 `yaml:"labor"`
	Material float64 `yaml:"material"`
	Unit     string  `yaml:"unit"`
}

type catalogFile struct {
	Entries []fileEntry `yaml:"entries"`
}

// LoadFile merges price overrides from a YAML file onto the catalog.
// Unknown keys are accepted; the file is authoritative for the keys it names.
func (c *StaticCatalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	for _, e := range f.Entries {
		entry := Entry{Labor: e.Labor, Material: e.Material, Unit: e.Unit}
		if e.Tier == "" {
			for _, tier := range []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium} {
				c.Set(e.Category, e.Item, tier, entry)
			}
			continue
		}
		tier, ok := workcfg.ParseQuality(e.Tier)
		if !ok {
			return fmt.Errorf("catalog: unknown tier %q for %s/%s", e.Tier, e.Category, e.Item)
		}
		c.Set(e.Category, e.Item, tier, entry)
	}
	return nil
}
