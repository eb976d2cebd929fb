package cost

import (
	"math"
	"testing"

	"renocost/pkg/core/catalog"
	"renocost/pkg/core/geometry"
	"renocost/pkg/core/workcfg"
)

const reconcileTolerance = 1e-6

func f(v float64) *float64 { return &v }

func sampleRooms() []geometry.Room {
	kitchen := geometry.NewRoomWithParams(geometry.RoomParams{
		Type:       geometry.RoomKitchen,
		Dimensions: geometry.DimensionPatch{Length: f(5), Width: f(4)},
	})
	bathroom := geometry.NewRoom(geometry.RoomBathroom)
	living := geometry.NewRoom(geometry.RoomLiving)
	return []geometry.Room{kitchen, bathroom, living}
}

func fullWork() workcfg.WorkCategories {
	w := workcfg.Defaults()
	w.Demolition = true
	w.Heating.Enabled = true
	w.Heating.Boiler = true
	w.Heating.UnderfloorArea = 15
	w.DoorsWindows.EntranceDoor = true
	return w
}

func sumRooms(r CalculationResult) float64 {
	var total float64
	for _, rb := range r.ByRoom {
		total += rb.Subtotal
	}
	return total
}

func sumCategories(r CalculationResult) float64 {
	var total float64
	for _, cb := range r.ByCategory {
		total += cb.Subtotal
	}
	return total
}

// The central contract: both breakdown views and the grand total agree.
func TestReconciliation(t *testing.T) {
	cat := catalog.NewStatic()
	tiers := []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium}
	works := map[string]workcfg.WorkCategories{
		"defaults":  workcfg.Defaults(),
		"full":      fullWork(),
		"demo only": {Demolition: true},
		"none":      {},
	}

	for name, work := range works {
		for _, tier := range tiers {
			for _, includeMaterials := range []bool{true, false} {
				result, err := Calculate(sampleRooms(), work, tier, includeMaterials, cat)
				if err != nil {
					t.Fatalf("%s/%s: %v", name, tier, err)
				}

				byRoom := sumRooms(result)
				byCategory := sumCategories(result)
				if math.Abs(byRoom-result.GrandTotal) > reconcileTolerance {
					t.Errorf("%s/%s/materials=%v: byRoom %v != grand %v", name, tier, includeMaterials, byRoom, result.GrandTotal)
				}
				if math.Abs(byCategory-result.GrandTotal) > reconcileTolerance {
					t.Errorf("%s/%s/materials=%v: byCategory %v != grand %v", name, tier, includeMaterials, byCategory, result.GrandTotal)
				}
				if math.Abs(result.TotalLabor+result.TotalMaterials-result.GrandTotal) > reconcileTolerance {
					t.Errorf("%s/%s: labor+materials != grand", name, tier)
				}
			}
		}
	}
}

func TestSubtotalsMatchItems(t *testing.T) {
	result, err := Calculate(sampleRooms(), fullWork(), workcfg.QualityStandard, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}
	for _, rb := range result.ByRoom {
		var sum float64
		for _, it := range rb.Items {
			sum += it.Total
		}
		if math.Abs(sum-rb.Subtotal) > reconcileTolerance {
			t.Errorf("room %s: subtotal %v != item sum %v", rb.RoomName, rb.Subtotal, sum)
		}
	}
	for _, cb := range result.ByCategory {
		var sum float64
		for _, it := range cb.Items {
			sum += it.Total
		}
		if math.Abs(sum-cb.Subtotal) > reconcileTolerance {
			t.Errorf("category %s: subtotal %v != item sum %v", cb.Category, cb.Subtotal, sum)
		}
	}
}

func TestQualityMonotonicity(t *testing.T) {
	cat := catalog.NewStatic()
	rooms := sampleRooms()
	work := fullWork()

	labor := map[workcfg.QualityLevel]float64{}
	for _, tier := range []workcfg.QualityLevel{workcfg.QualityEconomy, workcfg.QualityStandard, workcfg.QualityPremium} {
		result, err := Calculate(rooms, work, tier, true, cat)
		if err != nil {
			t.Fatal(err)
		}
		labor[tier] = result.TotalLabor
	}

	if !(labor[workcfg.QualityPremium] > labor[workcfg.QualityStandard] && labor[workcfg.QualityStandard] > labor[workcfg.QualityEconomy]) {
		t.Fatalf("labor not monotonic: %v", labor)
	}
	// Ratios are exactly the tier multipliers
	if ratio := labor[workcfg.QualityPremium] / labor[workcfg.QualityStandard]; math.Abs(ratio-1.4) > 1e-9 {
		t.Errorf("premium/standard labor ratio = %v, want 1.4", ratio)
	}
	if ratio := labor[workcfg.QualityEconomy] / labor[workcfg.QualityStandard]; math.Abs(ratio-0.85) > 1e-9 {
		t.Errorf("economy/standard labor ratio = %v, want 0.85", ratio)
	}
}

func TestMaterialsToggle(t *testing.T) {
	cat := catalog.NewStatic()
	with, err := Calculate(sampleRooms(), fullWork(), workcfg.QualityStandard, true, cat)
	if err != nil {
		t.Fatal(err)
	}
	without, err := Calculate(sampleRooms(), fullWork(), workcfg.QualityStandard, false, cat)
	if err != nil {
		t.Fatal(err)
	}

	if without.GrandTotal >= with.GrandTotal {
		t.Errorf("labor-only total %v >= full total %v", without.GrandTotal, with.GrandTotal)
	}
	if without.TotalMaterials != 0 {
		t.Errorf("TotalMaterials = %v with materials excluded", without.TotalMaterials)
	}
	if with.TotalLabor != without.TotalLabor {
		t.Errorf("labor changed with the materials toggle: %v vs %v", with.TotalLabor, without.TotalLabor)
	}
}

func TestConfidenceBand(t *testing.T) {
	result, err := Calculate(sampleRooms(), fullWork(), workcfg.QualityPremium, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Round(result.GrandTotal * 0.90); result.LowEstimate != want {
		t.Errorf("LowEstimate = %v, want %v", result.LowEstimate, want)
	}
	if want := math.Round(result.GrandTotal * 1.15); result.HighEstimate != want {
		t.Errorf("HighEstimate = %v, want %v", result.HighEstimate, want)
	}
}

func TestZeroCountsProduceNoItems(t *testing.T) {
	work := workcfg.WorkCategories{
		Electrical: workcfg.Electrical{Enabled: true}, // all counts zero
		Plumbing:   workcfg.Plumbing{Enabled: true},
	}
	result, err := Calculate(sampleRooms(), work, workcfg.QualityStandard, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}
	for _, cb := range result.ByCategory {
		switch cb.Category {
		case catalog.CategoryElectrical, catalog.CategoryPlumbing:
			t.Errorf("zero counts produced %s items", cb.Category)
		}
	}
	for _, rb := range result.ByRoom {
		for _, it := range rb.Items {
			if it.Category == SharedWorkCategory {
				t.Error("shared work slice present with no work items")
			}
		}
	}
}

func TestDisabledSubConfigContributesNothing(t *testing.T) {
	work := workcfg.Defaults() // electrical enabled with counts
	disabled := work
	disabled.Electrical.Enabled = false

	cat := catalog.NewStatic()
	withElec, _ := Calculate(sampleRooms(), work, workcfg.QualityStandard, true, cat)
	withoutElec, _ := Calculate(sampleRooms(), disabled, workcfg.QualityStandard, true, cat)
	if withoutElec.GrandTotal >= withElec.GrandTotal {
		t.Errorf("disabling electrical did not reduce the total: %v vs %v", withoutElec.GrandTotal, withElec.GrandTotal)
	}
}

func TestUnderfloorAreaCapped(t *testing.T) {
	rooms := sampleRooms()
	totalFloor := geometry.TotalFloorArea(rooms)

	work := workcfg.WorkCategories{
		Heating: workcfg.Heating{Enabled: true, UnderfloorArea: totalFloor * 10},
	}
	result, err := Calculate(rooms, work, workcfg.QualityStandard, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}
	for _, cb := range result.ByCategory {
		if cb.Category != catalog.CategoryHeating {
			continue
		}
		for _, it := range cb.Items {
			if it.ID == "work-underfloor" && math.Abs(it.Quantity-totalFloor) > reconcileTolerance {
				t.Errorf("underfloor quantity = %v, want cap %v", it.Quantity, totalFloor)
			}
		}
	}
}

func TestDemolitionPricedPerTotalFloorArea(t *testing.T) {
	rooms := sampleRooms()
	work := workcfg.WorkCategories{Demolition: true}
	result, err := Calculate(rooms, work, workcfg.QualityStandard, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, cb := range result.ByCategory {
		if cb.Category != catalog.CategoryDemolition {
			continue
		}
		found = true
		if len(cb.Items) != 1 {
			t.Fatalf("demolition items = %d, want 1", len(cb.Items))
		}
		if got, want := cb.Items[0].Quantity, geometry.TotalFloorArea(rooms); math.Abs(got-want) > reconcileTolerance {
			t.Errorf("demolition quantity = %v, want %v", got, want)
		}
	}
	if !found {
		t.Error("no demolition category in result")
	}
}

func TestSharedWorkAllocationProportional(t *testing.T) {
	rooms := sampleRooms()
	totalFloor := geometry.TotalFloorArea(rooms)
	result, err := Calculate(rooms, fullWork(), workcfg.QualityStandard, true, catalog.NewStatic())
	if err != nil {
		t.Fatal(err)
	}

	// Collect the project-wide work total from the category view
	var workTotal float64
	for _, cb := range result.ByCategory {
		switch cb.Category {
		case catalog.CategoryFlooring, catalog.CategoryWalls, catalog.CategoryCeiling:
		default:
			workTotal += cb.Subtotal
		}
	}

	var allocated float64
	for i, rb := range result.ByRoom {
		var slice float64
		for _, it := range rb.Items {
			if it.Category == SharedWorkCategory {
				slice = it.Total
			}
		}
		allocated += slice
		if i < len(result.ByRoom)-1 {
			want := workTotal * rooms[i].Computed.FloorArea / totalFloor
			if math.Abs(slice-want) > reconcileTolerance {
				t.Errorf("room %d slice = %v, want %v", i, slice, want)
			}
		}
	}
	if math.Abs(allocated-workTotal) > reconcileTolerance {
		t.Errorf("allocated %v != work total %v", allocated, workTotal)
	}
}

func TestScaleMaterialsOption(t *testing.T) {
	cat := catalog.NewStatic()
	rooms := sampleRooms()
	work := workcfg.Defaults()

	plain, err := CalculateWithOptions(rooms, work, workcfg.QualityPremium, true, cat, Options{})
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := CalculateWithOptions(rooms, work, workcfg.QualityPremium, true, cat, Options{ScaleMaterials: true})
	if err != nil {
		t.Fatal(err)
	}
	if ratio := scaled.TotalMaterials / plain.TotalMaterials; math.Abs(ratio-1.4) > 1e-9 {
		t.Errorf("scaled materials ratio = %v, want 1.4", ratio)
	}
	if scaled.TotalLabor != plain.TotalLabor {
		t.Error("ScaleMaterials changed labor")
	}
}

func TestEmptyRoomsRejected(t *testing.T) {
	if _, err := Calculate(nil, workcfg.Defaults(), workcfg.QualityStandard, true, catalog.NewStatic()); err == nil {
		t.Error("expected error for empty room collection")
	}
}

func TestCalculateDoesNotMutateInputs(t *testing.T) {
	rooms := sampleRooms()
	before := make([]geometry.Room, len(rooms))
	copy(before, rooms)
	work := fullWork()

	if _, err := Calculate(rooms, work, workcfg.QualityStandard, true, catalog.NewStatic()); err != nil {
		t.Fatal(err)
	}
	for i := range rooms {
		if rooms[i] != before[i] {
			t.Errorf("room %d mutated", i)
		}
	}
}
