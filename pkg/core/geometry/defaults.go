package geometry

// roomDefaults carries the seed values applied when a room is created from a
// type alone, or when the AI path omits a field.
type roomDefaults struct {
	Name       string
	Dimensions Dimensions
	Materials  Materials
}

var typeDefaults = map[RoomType]roomDefaults{
	RoomLiving: {
		Name:       "Living room",
		Dimensions: Dimensions{Length: 5, Width: 4, Height: 2.7, DoorCount: 1, WindowCount: 2},
		Materials:  Materials{Flooring: FloorLaminate, WallFinish: WallPaint, CeilingFinish: CeilingPaint},
	},
	RoomBedroom: {
		Name:       "Bedroom",
		Dimensions: Dimensions{Length: 4, Width: 3.5, Height: 2.7, DoorCount: 1, WindowCount: 1},
		Materials:  Materials{Flooring: FloorLaminate, WallFinish: WallWallpaper, CeilingFinish: CeilingPaint},
	},
	RoomBathroom: {
		Name:       "Bathroom",
		Dimensions: Dimensions{Length: 2.5, Width: 2, Height: 2.7, DoorCount: 1, WindowCount: 0},
		Materials:  Materials{Flooring: FloorTile, WallFinish: WallTile, CeilingFinish: CeilingPaint},
	},
	RoomKitchen: {
		Name:       "Kitchen",
		Dimensions: Dimensions{Length: 4, Width: 3, Height: 2.7, DoorCount: 1, WindowCount: 1},
		Materials:  Materials{Flooring: FloorTile, WallFinish: WallPaint, CeilingFinish: CeilingPaint},
	},
	RoomHallway: {
		Name:       "Hallway",
		Dimensions: Dimensions{Length: 3, Width: 1.5, Height: 2.7, DoorCount: 2, WindowCount: 0},
		Materials:  Materials{Flooring: FloorLaminate, WallFinish: WallPaint, CeilingFinish: CeilingPaint},
	},
	RoomBalcony: {
		Name:       "Balcony",
		Dimensions: Dimensions{Length: 3, Width: 1.2, Height: 2.5, DoorCount: 1, WindowCount: 1},
		Materials:  Materials{Flooring: FloorTile, WallFinish: WallPaint, CeilingFinish: CeilingPaint},
	},
}

func defaultsFor(t RoomType) roomDefaults {
	if def, ok := typeDefaults[t]; ok {
		return def
	}
	return typeDefaults[RoomLiving]
}
