package wizard

import (
	"testing"

	"renocost/pkg/core/geometry"
)

func validController() *Controller {
	return NewController(func() bool { return true })
}

func TestLinearProgression(t *testing.T) {
	c := validController()
	want := []Step{StepRooms, StepMaterials, StepWork, StepSummary}
	for i, step := range want {
		if c.Step() != step {
			t.Fatalf("at position %d: step = %v, want %v", i, c.Step(), step)
		}
		c.Next()
	}
}

func TestNextAtSummaryIsNoOp(t *testing.T) {
	c := validController()
	for c.Step() != StepSummary {
		c.Next()
	}
	if c.Next() {
		t.Error("Next at summary reported movement")
	}
	if c.Step() != StepSummary {
		t.Errorf("step = %v after Next at summary", c.Step())
	}
}

func TestPrevAtRoomsIsNoOp(t *testing.T) {
	c := validController()
	if c.Prev() {
		t.Error("Prev at rooms reported movement")
	}
	if c.Step() != StepRooms {
		t.Errorf("step = %v after Prev at rooms", c.Step())
	}
}

func TestGatingBlocksInvalidRooms(t *testing.T) {
	valid := false
	c := NewController(func() bool { return valid })

	if c.CanAdvance() {
		t.Error("CanAdvance with invalid rooms")
	}
	if c.Next() {
		t.Error("Next advanced past an invalid step")
	}

	valid = true
	if !c.CanAdvance() {
		t.Error("CanAdvance still false after rooms became valid")
	}
	if !c.Next() {
		t.Error("Next refused a valid step")
	}
}

func TestJumpRules(t *testing.T) {
	tests := []struct {
		name    string
		from    Step
		to      Step
		valid   bool
		want    bool
		wantPos Step
	}{
		{"backward always allowed", StepWork, StepRooms, false, true, StepRooms},
		{"one forward when valid", StepRooms, StepMaterials, true, true, StepMaterials},
		{"one forward blocked when invalid", StepRooms, StepMaterials, false, false, StepRooms},
		{"two forward never allowed", StepRooms, StepWork, true, false, StepRooms},
		{"same step is a no-op", StepMaterials, StepMaterials, true, false, StepMaterials},
		{"out of range", StepMaterials, Step(9), true, false, StepMaterials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := tt.valid
			c := NewController(func() bool { return valid })
			c.step = tt.from
			if got := c.JumpTo(tt.to); got != tt.want {
				t.Errorf("JumpTo = %v, want %v", got, tt.want)
			}
			if c.Step() != tt.wantPos {
				t.Errorf("step = %v, want %v", c.Step(), tt.wantPos)
			}
		})
	}
}

func TestRoomsValid(t *testing.T) {
	if RoomsValid(nil) {
		t.Error("empty collection reported valid")
	}

	rooms := []geometry.Room{geometry.NewRoom(geometry.RoomLiving)}
	if !RoomsValid(rooms) {
		t.Error("factory-built room reported invalid")
	}

	// A draft room that bypassed the factory can carry zero dimensions
	draft := geometry.Room{Type: geometry.RoomLiving}
	if RoomsValid([]geometry.Room{draft}) {
		t.Error("zero-length room reported valid")
	}

	// Fixing the dimensions through the update path restores validity
	length, width := 4.0, 3.0
	fixed := geometry.UpdateDimensions(draft, geometry.DimensionPatch{Length: &length, Width: &width})
	if !RoomsValid([]geometry.Room{fixed}) {
		t.Error("repaired room reported invalid")
	}
}

func TestValidityIsLive(t *testing.T) {
	rooms := []geometry.Room{{Type: geometry.RoomLiving}}
	c := NewController(func() bool { return RoomsValid(rooms) })

	if c.CanAdvance() {
		t.Error("advanced with an invalid room")
	}
	length, width := 4.0, 3.0
	rooms[0] = geometry.UpdateDimensions(rooms[0], geometry.DimensionPatch{Length: &length, Width: &width})
	if !c.CanAdvance() {
		t.Error("controller did not observe the repaired room")
	}
}
