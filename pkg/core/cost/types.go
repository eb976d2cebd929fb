// Package cost converts the project state into a reconciled, itemized
// estimate with per-room and per-category breakdown views.
package cost

// BreakdownItem is one priced line of the estimate.
// Total = Quantity × UnitPrice up to floating-point association.
type BreakdownItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// RoomBreakdown groups items attributed to one room, including that room's
// proportional slice of the project-wide work.
type RoomBreakdown struct {
	RoomID   string          `json:"room_id"`
	RoomName string          `json:"room_name"`
	Items    []BreakdownItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// CategoryBreakdown groups the same underlying items by category tag.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Items    []BreakdownItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// CalculationResult is the full estimate. The byRoom and byCategory views sum
// to the identical grand total.
type CalculationResult struct {
	ByRoom         []RoomBreakdown     `json:"by_room"`
	ByCategory     []CategoryBreakdown `json:"by_category"`
	TotalLabor     float64             `json:"total_labor"`
	TotalMaterials float64             `json:"total_materials"`
	GrandTotal     float64             `json:"grand_total"`
	LowEstimate    float64             `json:"low_estimate"`
	HighEstimate   float64             `json:"high_estimate"`
}

// Options tunes calculation policy knobs that are not part of the inputs.
type Options struct {
	// ScaleMaterials applies the quality multiplier to material prices as
	// well as labor. Off by default; labor-only scaling is the convention.
	ScaleMaterials bool
}
