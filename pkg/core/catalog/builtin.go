package catalog

// builtinRow defines one priced item. Labor is tier-independent here because
// the cost engine applies the quality multiplier to labor; material prices
// step up with the tier (economy, standard, premium).
type builtinRow struct {
	category string
	item     string
	labor    float64
	material [3]float64
	unit     string
}

var builtinTable = []builtinRow{
	// Flooring, per m².
	{CategoryFlooring, "laminate", 12, [3]float64{14, 22, 38}, "m2"},
	{CategoryFlooring, "tile", 22, [3]float64{18, 30, 55}, "m2"},
	{CategoryFlooring, "hardwood", 25, [3]float64{35, 55, 95}, "m2"},
	{CategoryFlooring, "carpet", 8, [3]float64{10, 18, 32}, "m2"},

	// Wall finishes, per m².
	{CategoryWalls, "paint", 9, [3]float64{3, 6, 11}, "m2"},
	{CategoryWalls, "wallpaper", 11, [3]float64{5, 10, 24}, "m2"},
	{CategoryWalls, "wall_tile", 26, [3]float64{16, 28, 52}, "m2"},
	{CategoryWalls, "decorative_plaster", 18, [3]float64{8, 15, 34}, "m2"},

	// Ceiling finishes, per m².
	{CategoryCeiling, "ceiling_paint", 10, [3]float64{3, 5, 9}, "m2"},
	{CategoryCeiling, "stretch", 14, [3]float64{9, 15, 28}, "m2"},
	{CategoryCeiling, "drywall", 20, [3]float64{7, 12, 20}, "m2"},

	// Electrical, per point.
	{CategoryElectrical, ItemOutlet, 18, [3]float64{4, 7, 14}, "pc"},
	{CategoryElectrical, ItemSwitch, 16, [3]float64{4, 6, 13}, "pc"},
	{CategoryElectrical, ItemLightingPoint, 24, [3]float64{8, 16, 45}, "pc"},
	{CategoryElectrical, ItemACPoint, 55, [3]float64{20, 32, 60}, "pc"},

	// Plumbing, per fixture.
	{CategoryPlumbing, ItemToilet, 85, [3]float64{90, 160, 380}, "pc"},
	{CategoryPlumbing, ItemSink, 65, [3]float64{55, 110, 260}, "pc"},
	{CategoryPlumbing, ItemShower, 140, [3]float64{180, 340, 780}, "pc"},
	{CategoryPlumbing, ItemBathtub, 160, [3]float64{220, 420, 950}, "pc"},

	// Heating.
	{CategoryHeating, ItemRadiator, 75, [3]float64{95, 170, 340}, "pc"},
	{CategoryHeating, ItemUnderfloorM2, 28, [3]float64{18, 30, 48}, "m2"},
	{CategoryHeating, ItemBoiler, 320, [3]float64{750, 1400, 2900}, "pc"},

	// Doors and windows.
	{CategoryDoorsWindows, ItemInteriorDoor, 70, [3]float64{110, 220, 520}, "pc"},
	{CategoryDoorsWindows, ItemEntranceDoor, 120, [3]float64{260, 520, 1200}, "pc"},

	// Demolition, priced per m² of total floor area. No material component.
	{CategoryDemolition, ItemDemolitionM2, 15, [3]float64{0, 0, 0}, "m2"},
}
