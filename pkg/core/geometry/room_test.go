package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestDerivedSurfaces(t *testing.T) {
	room := NewRoomWithParams(RoomParams{
		Type: RoomLiving,
		Dimensions: DimensionPatch{
			Length: f(4), Width: f(3), Height: f(2.7),
			DoorCount: i(1), WindowCount: i(1),
		},
	})

	if !approxEqual(room.Computed.FloorArea, 12) {
		t.Errorf("FloorArea = %v, want 12", room.Computed.FloorArea)
	}
	if !approxEqual(room.Computed.CeilingArea, 12) {
		t.Errorf("CeilingArea = %v, want 12", room.Computed.CeilingArea)
	}
	if !approxEqual(room.Computed.Perimeter, 14) {
		t.Errorf("Perimeter = %v, want 14", room.Computed.Perimeter)
	}
	// 14 × 2.7 − 1×1.8 − 1×1.5 = 34.5
	if !approxEqual(room.Computed.WallArea, 34.5) {
		t.Errorf("WallArea = %v, want 34.5", room.Computed.WallArea)
	}
}

func TestSurfaceIdentities(t *testing.T) {
	for _, roomType := range RoomTypes {
		room := NewRoom(roomType)
		d := room.Dimensions
		c := room.Computed

		if !approxEqual(c.FloorArea, d.Length*d.Width) {
			t.Errorf("%s: FloorArea = %v, want %v", roomType, c.FloorArea, d.Length*d.Width)
		}
		if !approxEqual(c.CeilingArea, c.FloorArea) {
			t.Errorf("%s: CeilingArea = %v, want %v", roomType, c.CeilingArea, c.FloorArea)
		}
		if !approxEqual(c.Perimeter, 2*(d.Length+d.Width)) {
			t.Errorf("%s: Perimeter = %v, want %v", roomType, c.Perimeter, 2*(d.Length+d.Width))
		}
		if c.WallArea < 0 {
			t.Errorf("%s: WallArea = %v, want >= 0", roomType, c.WallArea)
		}
	}
}

func TestClamping(t *testing.T) {
	tests := []struct {
		name  string
		patch DimensionPatch
		check func(t *testing.T, r Room)
	}{
		{
			name:  "length below minimum",
			patch: DimensionPatch{Length: f(0.2)},
			check: func(t *testing.T, r Room) {
				if r.Dimensions.Length != MinSide {
					t.Errorf("Length = %v, want %v", r.Dimensions.Length, MinSide)
				}
			},
		},
		{
			name:  "width above maximum",
			patch: DimensionPatch{Width: f(55)},
			check: func(t *testing.T, r Room) {
				if r.Dimensions.Width != MaxSide {
					t.Errorf("Width = %v, want %v", r.Dimensions.Width, MaxSide)
				}
			},
		},
		{
			name:  "height out of range",
			patch: DimensionPatch{Height: f(9)},
			check: func(t *testing.T, r Room) {
				if r.Dimensions.Height != MaxHeight {
					t.Errorf("Height = %v, want %v", r.Dimensions.Height, MaxHeight)
				}
			},
		},
		{
			name:  "negative door count",
			patch: DimensionPatch{DoorCount: i(-3)},
			check: func(t *testing.T, r Room) {
				if r.Dimensions.DoorCount != 0 {
					t.Errorf("DoorCount = %v, want 0", r.Dimensions.DoorCount)
				}
			},
		},
		{
			name:  "window count above maximum",
			patch: DimensionPatch{WindowCount: i(30)},
			check: func(t *testing.T, r Room) {
				if r.Dimensions.WindowCount != MaxCount {
					t.Errorf("WindowCount = %v, want %v", r.Dimensions.WindowCount, MaxCount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := UpdateDimensions(NewRoom(RoomBedroom), tt.patch)
			tt.check(t, room)
			// Clamping never leaves computed values stale
			if !approxEqual(room.Computed.FloorArea, room.Dimensions.Length*room.Dimensions.Width) {
				t.Errorf("stale FloorArea after clamp: %v", room.Computed.FloorArea)
			}
		})
	}
}

func TestUpdateDimensionsIdempotent(t *testing.T) {
	room := NewRoom(RoomKitchen)
	d := room.Dimensions
	again := UpdateDimensions(room, DimensionPatch{
		Length: &d.Length, Width: &d.Width, Height: &d.Height,
		DoorCount: &d.DoorCount, WindowCount: &d.WindowCount,
	})
	if again.Computed != room.Computed {
		t.Errorf("idempotent update changed surfaces: %+v vs %+v", again.Computed, room.Computed)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	room := NewRoom(RoomLiving)
	before := room
	UpdateDimensions(room, DimensionPatch{Length: f(10)})
	UpdateMaterials(room, MaterialPatch{})
	if room != before {
		t.Error("input room was mutated")
	}
}

func TestWallAreaNeverNegative(t *testing.T) {
	// Smallest legal box with the most openings
	room := NewRoomWithParams(RoomParams{
		Type: RoomBalcony,
		Dimensions: DimensionPatch{
			Length: f(1), Width: f(1), Height: f(2),
			DoorCount: i(6), WindowCount: i(6),
		},
	})
	// 8 − 6×1.8 − 6×1.5 would be negative; clamped to zero
	if room.Computed.WallArea != 0 {
		t.Errorf("WallArea = %v, want 0", room.Computed.WallArea)
	}
}

func TestNewRoomWithParamsFillsDefaults(t *testing.T) {
	room := NewRoomWithParams(RoomParams{
		Type:       RoomBathroom,
		Dimensions: DimensionPatch{Length: f(3)},
	})
	def := typeDefaults[RoomBathroom]

	if room.Dimensions.Length != 3 {
		t.Errorf("Length = %v, want 3", room.Dimensions.Length)
	}
	if room.Dimensions.Width != def.Dimensions.Width {
		t.Errorf("Width = %v, want default %v", room.Dimensions.Width, def.Dimensions.Width)
	}
	if room.Materials.Flooring != def.Materials.Flooring {
		t.Errorf("Flooring = %v, want default %v", room.Materials.Flooring, def.Materials.Flooring)
	}
	if room.Name != def.Name {
		t.Errorf("Name = %q, want %q", room.Name, def.Name)
	}
}

func TestRoomIDsUnique(t *testing.T) {
	a := NewRoom(RoomLiving)
	b := NewRoom(RoomLiving)
	if a.ID == b.ID {
		t.Error("two rooms share an ID")
	}
}

func TestParseRoomType(t *testing.T) {
	if got, ok := ParseRoomType("kitchen"); !ok || got != RoomKitchen {
		t.Errorf("ParseRoomType(kitchen) = %v, %v", got, ok)
	}
	if got, ok := ParseRoomType("garage"); ok || got != RoomLiving {
		t.Errorf("ParseRoomType(garage) = %v, %v, want living fallback and false", got, ok)
	}
}
