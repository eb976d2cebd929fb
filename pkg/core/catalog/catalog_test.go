package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"renocost/pkg/core/geometry"
	"renocost/pkg/core/workcfg"
)

var allTiers = []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium}

// The catalog contract: every material enum value and every work unit must be
// priced at every tier.
func TestBuiltinCoverage(t *testing.T) {
	c := NewStatic()

	type key struct{ category, item string }
	var keys []key
	for _, m := range geometry.FloorMaterials {
		keys = append(keys, key{CategoryFlooring, string(m)})
	}
	for _, m := range geometry.WallMaterials {
		keys = append(keys, key{CategoryWalls, string(m)})
	}
	for _, m := range geometry.CeilingMaterials {
		keys = append(keys, key{CategoryCeiling, string(m)})
	}
	keys = append(keys,
		key{CategoryElectrical, ItemOutlet},
		key{CategoryElectrical, ItemSwitch},
		key{CategoryElectrical, ItemLightingPoint},
		key{CategoryElectrical, ItemACPoint},
		key{CategoryPlumbing, ItemToilet},
		key{CategoryPlumbing, ItemSink},
		key{CategoryPlumbing, ItemShower},
		key{CategoryPlumbing, ItemBathtub},
		key{CategoryHeating, ItemRadiator},
		key{CategoryHeating, ItemUnderfloorM2},
		key{CategoryHeating, ItemBoiler},
		key{CategoryDoorsWindows, ItemInteriorDoor},
		key{CategoryDoorsWindows, ItemEntranceDoor},
		key{CategoryDemolition, ItemDemolitionM2},
	)

	for _, k := range keys {
		for _, tier := range allTiers {
			entry, err := c.Price(k.category, k.item, tier)
			if err != nil {
				t.Errorf("missing price for %s/%s at %s", k.category, k.item, tier)
				continue
			}
			if entry.Labor < 0 || entry.Material < 0 {
				t.Errorf("negative price for %s/%s at %s", k.category, k.item, tier)
			}
			if entry.Unit == "" {
				t.Errorf("missing unit for %s/%s", k.category, k.item)
			}
		}
	}
}

func TestLaborTierIndependent(t *testing.T) {
	// The quality multiplier is applied by the cost engine; the catalog's
	// labor price must not vary by tier or labor would be scaled twice.
	c := NewStatic()
	for _, row := range builtinTable {
		economy, _ := c.Price(row.category, row.item, workcfg.QualityEconomy)
		premium, _ := c.Price(row.category, row.item, workcfg.QualityPremium)
		if economy.Labor != premium.Labor {
			t.Errorf("%s/%s: labor varies by tier (%v vs %v)", row.category, row.item, economy.Labor, premium.Labor)
		}
	}
}

func TestMaterialTierMonotonic(t *testing.T) {
	c := NewStatic()
	for _, row := range builtinTable {
		economy, _ := c.Price(row.category, row.item, workcfg.QualityEconomy)
		standard, _ := c.Price(row.category, row.item, workcfg.QualityStandard)
		premium, _ := c.Price(row.category, row.item, workcfg.QualityPremium)
		if economy.Material > standard.Material || standard.Material > premium.Material {
			t.Errorf("%s/%s: material prices not monotonic across tiers", row.category, row.item)
		}
	}
}

func TestUnknownKey(t *testing.T) {
	c := NewStatic()
	if _, err := c.Price(CategoryFlooring, "marble", workcfg.QualityStandard); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `entries:
  - category: flooring
    item: laminate
    tier: standard
    labor: 99
    material: 11
    unit: m2
  - category: electrical
    item: outlet
    labor: 33
    material: 3
    unit: pc
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewStatic()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	entry, err := c.Price(CategoryFlooring, "laminate", workcfg.QualityStandard)
	if err != nil || entry.Labor != 99 {
		t.Errorf("override not applied: %+v, %v", entry, err)
	}
	// A tier the file did not name keeps the built-in price
	economy, _ := c.Price(CategoryFlooring, "laminate", workcfg.QualityEconomy)
	if economy.Labor == 99 {
		t.Error("tier-scoped override leaked to other tiers")
	}
	// Tier-less entries apply everywhere
	for _, tier := range allTiers {
		e, _ := c.Price(CategoryElectrical, ItemOutlet, tier)
		if e.Labor != 33 {
			t.Errorf("tier-less override missing at %s: %+v", tier, e)
		}
	}
}

func TestLoadFileUnknownTier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "entries:\n  - category: flooring\n    item: laminate\n    tier: luxury\n    labor: 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewStatic().LoadFile(path); err == nil {
		t.Error("expected error for unknown tier")
	}
}
