// Package geometry provides the room entity and deterministic derivation of
// surface areas from raw dimensions.
package geometry

import (
	"math"

	"github.com/google/uuid"
)

// Reference opening areas used when subtracting doors and windows from wall area.
const (
	DoorArea   = 1.8 // m²
	WindowArea = 1.5 // m²
)

// Dimension bounds. Out-of-range inputs are clamped, never rejected, so every
// operation always yields a usable room.
const (
	MinSide   = 1.0
	MaxSide   = 20.0
	MinHeight = 2.0
	MaxHeight = 4.0
	MaxCount  = 6
)

// RoomType identifies the functional kind of a room.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomBedroom  RoomType = "bedroom"
	RoomBathroom RoomType = "bathroom"
	RoomKitchen  RoomType = "kitchen"
	RoomHallway  RoomType = "hallway"
	RoomBalcony  RoomType = "balcony"
)

// RoomTypes lists every supported room type.
var RoomTypes = []RoomType{RoomLiving, RoomBedroom, RoomBathroom, RoomKitchen, RoomHallway, RoomBalcony}

// ParseRoomType maps a free-form string to a RoomType. Unrecognized values
// fall back to living with ok=false so callers can surface the substitution.
func ParseRoomType(s string) (RoomType, bool) {
	for _, t := range RoomTypes {
		if string(t) == s {
			return t, true
		}
	}
	return RoomLiving, false
}

// FloorMaterial is a flooring finish choice.
type FloorMaterial string

const (
	FloorLaminate FloorMaterial = "laminate"
	FloorTile     FloorMaterial = "tile"
	FloorHardwood FloorMaterial = "hardwood"
	FloorCarpet   FloorMaterial = "carpet"
)

// WallMaterial is a wall finish choice.
type WallMaterial string

const (
	WallPaint     WallMaterial = "paint"
	WallWallpaper WallMaterial = "wallpaper"
	WallTile      WallMaterial = "wall_tile"
	WallPlaster   WallMaterial = "decorative_plaster"
)

// CeilingMaterial is a ceiling finish choice.
type CeilingMaterial string

const (
	CeilingPaint   CeilingMaterial = "ceiling_paint"
	CeilingStretch CeilingMaterial = "stretch"
	CeilingDrywall CeilingMaterial = "drywall"
)

// FloorMaterials, WallMaterials and CeilingMaterials enumerate the finish
// choices the price catalog must cover.
var (
	FloorMaterials   = []FloorMaterial{FloorLaminate, FloorTile, FloorHardwood, FloorCarpet}
	WallMaterials    = []WallMaterial{WallPaint, WallWallpaper, WallTile, WallPlaster}
	CeilingMaterials = []CeilingMaterial{CeilingPaint, CeilingStretch, CeilingDrywall}
)

// ParseFloorMaterial maps a string to a known flooring choice.
func ParseFloorMaterial(s string) (FloorMaterial, bool) {
	for _, m := range FloorMaterials {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ParseWallMaterial maps a string to a known wall finish.
func ParseWallMaterial(s string) (WallMaterial, bool) {
	for _, m := range WallMaterials {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ParseCeilingMaterial maps a string to a known ceiling finish.
func ParseCeilingMaterial(s string) (CeilingMaterial, bool) {
	for _, m := range CeilingMaterials {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Dimensions holds the raw measurements of a rectangular room.
type Dimensions struct {
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	DoorCount   int     `json:"door_count"`
	WindowCount int     `json:"window_count"`
}

// Materials holds the finish choices for each surface of a room.
type Materials struct {
	Flooring      FloorMaterial   `json:"flooring"`
	WallFinish    WallMaterial    `json:"wall_finish"`
	CeilingFinish CeilingMaterial `json:"ceiling_finish"`
}

// Surfaces holds derived areas. These are never set directly; every mutation
// recomputes them from the clamped dimensions.
type Surfaces struct {
	FloorArea   float64 `json:"floor_area"`
	WallArea    float64 `json:"wall_area"`
	CeilingArea float64 `json:"ceiling_area"`
	Perimeter   float64 `json:"perimeter"`
}

// Room is a rectangular space with dimensions, material choices and derived
// surface areas.
type Room struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       RoomType   `json:"type"`
	Dimensions Dimensions `json:"dimensions"`
	Materials  Materials  `json:"materials"`
	Computed   Surfaces   `json:"computed"`
}

// DimensionPatch is a partial dimension update. Nil fields keep the current value.
type DimensionPatch struct {
	Length      *float64 `json:"length,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	DoorCount   *int     `json:"door_count,omitempty"`
	WindowCount *int     `json:"window_count,omitempty"`
}

// MaterialPatch is a partial material update. Nil fields keep the current value.
type MaterialPatch struct {
	Flooring      *FloorMaterial   `json:"flooring,omitempty"`
	WallFinish    *WallMaterial    `json:"wall_finish,omitempty"`
	CeilingFinish *CeilingMaterial `json:"ceiling_finish,omitempty"`
}

// RoomParams seeds a room from arbitrary supplied fields; anything missing is
// filled from the type defaults. This is the entry point for the AI path.
type RoomParams struct {
	Type       RoomType
	Name       string
	Dimensions DimensionPatch
	Materials  MaterialPatch
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

func clampDimensions(d Dimensions) Dimensions {
	d.Length = clamp(d.Length, MinSide, MaxSide)
	d.Width = clamp(d.Width, MinSide, MaxSide)
	d.Height = clamp(d.Height, MinHeight, MaxHeight)
	d.DoorCount = clampCount(d.DoorCount)
	d.WindowCount = clampCount(d.WindowCount)
	return d
}

// derive computes every surface from already-clamped dimensions.
func derive(d Dimensions) Surfaces {
	floor := d.Length * d.Width
	perimeter := 2 * (d.Length + d.Width)
	wall := perimeter*d.Height - float64(d.DoorCount)*DoorArea - float64(d.WindowCount)*WindowArea
	return Surfaces{
		FloorArea:   floor,
		WallArea:    math.Max(0, wall),
		CeilingArea: floor,
		Perimeter:   perimeter,
	}
}

// NewRoom creates a room of the given type with type-specific default
// dimensions and materials.
func NewRoom(t RoomType) Room {
	def := defaultsFor(t)
	dims := clampDimensions(def.Dimensions)
	return Room{
		ID:         uuid.NewString(),
		Name:       def.Name,
		Type:       t,
		Dimensions: dims,
		Materials:  def.Materials,
		Computed:   derive(dims),
	}
}

// NewRoomWithParams creates a room seeded from the supplied fields, filling
// every gap from the type defaults and clamping out-of-range values.
func NewRoomWithParams(p RoomParams) Room {
	r := NewRoom(p.Type)
	if p.Name != "" {
		r.Name = p.Name
	}
	r = UpdateDimensions(r, p.Dimensions)
	return UpdateMaterials(r, p.Materials)
}

// UpdateDimensions merges the patch onto the room's dimensions and returns a
// new room with all derived surfaces recomputed. The input room is not mutated.
func UpdateDimensions(r Room, patch DimensionPatch) Room {
	d := r.Dimensions
	if patch.Length != nil {
		d.Length = *patch.Length
	}
	if patch.Width != nil {
		d.Width = *patch.Width
	}
	if patch.Height != nil {
		d.Height = *patch.Height
	}
	if patch.DoorCount != nil {
		d.DoorCount = *patch.DoorCount
	}
	if patch.WindowCount != nil {
		d.WindowCount = *patch.WindowCount
	}
	d = clampDimensions(d)
	r.Dimensions = d
	r.Computed = derive(d)
	return r
}

// UpdateMaterials merges the patch onto the room's materials and returns a new
// room. Surfaces are recomputed as well so the returned room is always fully
// consistent regardless of which update path produced it.
func UpdateMaterials(r Room, patch MaterialPatch) Room {
	m := r.Materials
	if patch.Flooring != nil {
		m.Flooring = *patch.Flooring
	}
	if patch.WallFinish != nil {
		m.WallFinish = *patch.WallFinish
	}
	if patch.CeilingFinish != nil {
		m.CeilingFinish = *patch.CeilingFinish
	}
	r.Materials = m
	r.Computed = derive(r.Dimensions)
	return r
}

// TotalFloorArea sums the floor area of every room.
func TotalFloorArea(rooms []Room) float64 {
	var total float64
	for _, r := range rooms {
		total += r.Computed.FloorArea
	}
	return total
}
