package cost

import (
	"fmt"
	"math"

	"renocost/pkg/core/catalog"
	"renocost/pkg/core/geometry"
	"renocost/pkg/core/workcfg"
)

// SharedWorkCategory tags the per-room slices of project-wide work in the
// byRoom view. It never appears in the byCategory view, which groups the
// underlying work items themselves.
const SharedWorkCategory = "shared_work"

// categoryOrder fixes the presentation order of the byCategory view.
var categoryOrder = []string{
	catalog.CategoryFlooring,
	catalog.CategoryWalls,
	catalog.CategoryCeiling,
	catalog.CategoryElectrical,
	catalog.CategoryPlumbing,
	catalog.CategoryHeating,
	catalog.CategoryDoorsWindows,
	catalog.CategoryDemolition,
}

// Calculate prices the project state against the catalog and returns a
// reconciled estimate. It is a pure function: inputs are never mutated, and it
// is safe to call concurrently.
func Calculate(rooms []geometry.Room, work workcfg.WorkCategories, quality workcfg.QualityLevel, includeMaterials bool, cat catalog.Catalog) (CalculationResult, error) {
	return CalculateWithOptions(rooms, work, quality, includeMaterials, cat, Options{})
}

// CalculateWithOptions is Calculate with explicit policy knobs.
func CalculateWithOptions(rooms []geometry.Room, work workcfg.WorkCategories, quality workcfg.QualityLevel, includeMaterials bool, cat catalog.Catalog, opts Options) (CalculationResult, error) {
	if len(rooms) == 0 {
		return CalculationResult{}, fmt.Errorf("cost: at least one room is required")
	}
	e := &engine{
		catalog:   cat,
		tier:      quality,
		laborMult: quality.LaborMultiplier(),
		matMult:   1.0,
		materials: includeMaterials,
		byCat:     make(map[string][]BreakdownItem),
	}
	if opts.ScaleMaterials {
		e.matMult = e.laborMult
	}

	result := CalculationResult{}

	// 1. Per-room surface items.
	roomItems := make([][]BreakdownItem, len(rooms))
	for i, r := range rooms {
		items, err := e.roomItems(r)
		if err != nil {
			return CalculationResult{}, err
		}
		roomItems[i] = items
	}

	// 2. Project-wide work items.
	totalFloor := geometry.TotalFloorArea(rooms)
	workItems, err := e.workItems(work, totalFloor)
	if err != nil {
		return CalculationResult{}, err
	}
	var workTotal float64
	for _, it := range workItems {
		workTotal += it.Total
	}

	// 3. Build the byRoom view: surface items plus a proportional slice of
	// the project-wide work. The last room absorbs the floating-point
	// remainder so the two views sum to the identical grand total.
	allocated := 0.0
	for i, r := range rooms {
		rb := RoomBreakdown{RoomID: r.ID, RoomName: r.Name, Items: roomItems[i]}
		if workTotal > 0 {
			share := workShare(r, i, rooms, totalFloor)
			slice := workTotal * share
			if i == len(rooms)-1 {
				slice = workTotal - allocated
			}
			allocated += slice
			rb.Items = append(rb.Items, BreakdownItem{
				ID:        r.ID + "-shared",
				Name:      "Shared project work",
				Category:  SharedWorkCategory,
				Quantity:  share,
				Unit:      "share",
				UnitPrice: workTotal,
				Total:     slice,
			})
		}
		for _, it := range rb.Items {
			rb.Subtotal += it.Total
		}
		result.ByRoom = append(result.ByRoom, rb)
	}

	// 4. Build the byCategory view from the same underlying items.
	for _, c := range categoryOrder {
		items := e.byCat[c]
		if len(items) == 0 {
			continue
		}
		cb := CategoryBreakdown{Category: c, Items: items}
		for _, it := range items {
			cb.Subtotal += it.Total
		}
		result.ByCategory = append(result.ByCategory, cb)
	}

	result.TotalLabor = e.totalLabor
	result.TotalMaterials = e.totalMaterials
	result.GrandTotal = e.totalLabor + e.totalMaterials
	result.LowEstimate = math.Round(result.GrandTotal * 0.90)
	result.HighEstimate = math.Round(result.GrandTotal * 1.15)
	return result, nil
}

// workShare returns the fraction of project-wide work attributed to a room.
// With no measurable floor area everything lands on the first room.
func workShare(r geometry.Room, i int, rooms []geometry.Room, totalFloor float64) float64 {
	if totalFloor <= 0 {
		if i == 0 {
			return 1
		}
		return 0
	}
	return r.Computed.FloorArea / totalFloor
}

type engine struct {
	catalog   catalog.Catalog
	tier      workcfg.QualityLevel
	laborMult float64
	matMult   float64
	materials bool

	byCat          map[string][]BreakdownItem
	totalLabor     float64
	totalMaterials float64
}

// priceItem resolves one catalog key, applies the quality multiplier to the
// labor portion, and records the item in the running totals and category view.
func (e *engine) priceItem(id, name, category, itemKey string, qty float64, unitOverride string) (BreakdownItem, error) {
	entry, err := e.catalog.Price(category, itemKey, e.tier)
	if err != nil {
		return BreakdownItem{}, err
	}
	laborUnit := entry.Labor * e.laborMult
	matUnit := 0.0
	if e.materials {
		matUnit = entry.Material * e.matMult
	}
	labor := qty * laborUnit
	material := qty * matUnit

	unit := entry.Unit
	if unitOverride != "" {
		unit = unitOverride
	}
	item := BreakdownItem{
		ID:        id,
		Name:      name,
		Category:  category,
		Quantity:  qty,
		Unit:      unit,
		UnitPrice: laborUnit + matUnit,
		Total:     labor + material,
	}
	e.totalLabor += labor
	e.totalMaterials += material
	e.byCat[category] = append(e.byCat[category], item)
	return item, nil
}

func (e *engine) roomItems(r geometry.Room) ([]BreakdownItem, error) {
	var items []BreakdownItem
	surfaces := []struct {
		id       string
		name     string
		category string
		itemKey  string
		area     float64
	}{
		{r.ID + "-flooring", fmt.Sprintf("%s: flooring (%s)", r.Name, r.Materials.Flooring), catalog.CategoryFlooring, string(r.Materials.Flooring), r.Computed.FloorArea},
		{r.ID + "-walls", fmt.Sprintf("%s: walls (%s)", r.Name, r.Materials.WallFinish), catalog.CategoryWalls, string(r.Materials.WallFinish), r.Computed.WallArea},
		{r.ID + "-ceiling", fmt.Sprintf("%s: ceiling (%s)", r.Name, r.Materials.CeilingFinish), catalog.CategoryCeiling, string(r.Materials.CeilingFinish), r.Computed.CeilingArea},
	}
	for _, s := range surfaces {
		if s.area <= 0 {
			continue
		}
		item, err := e.priceItem(s.id, s.name, s.category, s.itemKey, s.area, "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// workItems prices every enabled work sub-config. Zero counts contribute no
// items. Underfloor heating area is capped at the total floor area.
func (e *engine) workItems(w workcfg.WorkCategories, totalFloor float64) ([]BreakdownItem, error) {
	type unit struct {
		id      string
		name    string
		cat     string
		itemKey string
		qty     float64
	}
	var units []unit

	if w.Demolition && totalFloor > 0 {
		units = append(units, unit{"work-demolition", "Demolition", catalog.CategoryDemolition, catalog.ItemDemolitionM2, totalFloor})
	}
	if w.Electrical.Enabled {
		units = append(units,
			unit{"work-outlets", "Outlets", catalog.CategoryElectrical, catalog.ItemOutlet, float64(w.Electrical.Outlets)},
			unit{"work-switches", "Switches", catalog.CategoryElectrical, catalog.ItemSwitch, float64(w.Electrical.Switches)},
			unit{"work-lighting", "Lighting points", catalog.CategoryElectrical, catalog.ItemLightingPoint, float64(w.Electrical.LightingPoints)},
			unit{"work-ac", "AC points", catalog.CategoryElectrical, catalog.ItemACPoint, float64(w.Electrical.ACPoints)},
		)
	}
	if w.Plumbing.Enabled {
		units = append(units,
			unit{"work-toilets", "Toilets", catalog.CategoryPlumbing, catalog.ItemToilet, float64(w.Plumbing.Toilets)},
			unit{"work-sinks", "Sinks", catalog.CategoryPlumbing, catalog.ItemSink, float64(w.Plumbing.Sinks)},
			unit{"work-showers", "Showers", catalog.CategoryPlumbing, catalog.ItemShower, float64(w.Plumbing.Showers)},
			unit{"work-bathtubs", "Bathtubs", catalog.CategoryPlumbing, catalog.ItemBathtub, float64(w.Plumbing.Bathtubs)},
		)
	}
	if w.Heating.Enabled {
		underfloor := math.Min(w.Heating.UnderfloorArea, totalFloor)
		units = append(units,
			unit{"work-radiators", "Radiators", catalog.CategoryHeating, catalog.ItemRadiator, float64(w.Heating.Radiators)},
			unit{"work-underfloor", "Underfloor heating", catalog.CategoryHeating, catalog.ItemUnderfloorM2, underfloor},
		)
		if w.Heating.Boiler {
			units = append(units, unit{"work-boiler", "Boiler installation", catalog.CategoryHeating, catalog.ItemBoiler, 1})
		}
	}
	if w.DoorsWindows.Enabled {
		units = append(units, unit{"work-doors", "Interior doors", catalog.CategoryDoorsWindows, catalog.ItemInteriorDoor, float64(w.DoorsWindows.InteriorDoors)})
		if w.DoorsWindows.EntranceDoor {
			units = append(units, unit{"work-entrance", "Entrance door", catalog.CategoryDoorsWindows, catalog.ItemEntranceDoor, 1})
		}
	}

	var items []BreakdownItem
	for _, u := range units {
		if u.qty <= 0 {
			continue
		}
		item, err := e.priceItem(u.id, u.name, u.cat, u.itemKey, u.qty, "")
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
