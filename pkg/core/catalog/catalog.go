// Package catalog provides the price catalog consumed by the cost engine:
// a keyed lookup from (category, item, quality tier) to unit prices.
package catalog

import (
	"fmt"
	"sync"

	"renocost/pkg/core/workcfg"
)

// Categories used as breakdown tags. Surface categories are room-scoped;
// the rest are project-wide work categories.
const (
	CategoryFlooring     = "flooring"
	CategoryWalls        = "walls"
	CategoryCeiling      = "ceiling"
	CategoryElectrical   = "electrical"
	CategoryPlumbing     = "plumbing"
	CategoryHeating      = "heating"
	CategoryDoorsWindows = "doors_windows"
	CategoryDemolition   = "demolition"
)

// Work-unit item keys.
const (
	ItemOutlet        = "outlet"
	ItemSwitch        = "switch"
	ItemLightingPoint = "lighting_point"
	ItemACPoint       = "ac_point"
	ItemToilet        = "toilet"
	ItemSink          = "sink"
	ItemShower        = "shower"
	ItemBathtub       = "bathtub"
	ItemRadiator      = "radiator"
	ItemUnderfloorM2  = "underfloor_m2"
	ItemBoiler        = "boiler"
	ItemInteriorDoor  = "interior_door"
	ItemEntranceDoor  = "entrance_door"
	ItemDemolitionM2  = "demolition_m2"
)

// Entry is the unit price for one catalog key. Labor is the base labor price
// before the quality multiplier; Material is the tier-specific material price.
type Entry struct {
	Labor    float64 `yaml:"labor" json:"labor"`
	Material float64 `yaml:"material" json:"material"`
	Unit     string  `yaml:"unit" json:"unit"`
}

// Catalog resolves unit prices for the cost engine.
type Catalog interface {
	Price(category, item string, tier workcfg.QualityLevel) (Entry, error)
}

// StaticCatalog is an in-memory catalog seeded with the built-in price table
// and optionally overridden from a YAML file.
type StaticCatalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func key(category, item string, tier workcfg.QualityLevel) string {
	return category + "/" + item + "/" + string(tier)
}

// NewStatic returns a catalog populated with the built-in table.
func NewStatic() *StaticCatalog {
	c := &StaticCatalog{entries: make(map[string]Entry)}
	for _, row := range builtinTable {
		for i, tier := range []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium} {
			c.entries[key(row.category, row.item, tier)] = Entry{
				Labor:    row.labor,
				Material: row.material[i],
				Unit:     row.unit,
			}
		}
	}
	return c
}

// Price implements Catalog.
func (c *StaticCatalog) Price(category, item string, tier workcfg.QualityLevel) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[key(category, item, tier)]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("catalog: no price for %s/%s at tier %s", category, item, tier)
}

// Set inserts or replaces a single entry.
func (c *StaticCatalog) Set(category, item string, tier workcfg.QualityLevel, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(category, item, tier)] = e
}
