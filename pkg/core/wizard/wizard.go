// Package wizard implements the linear, validity-gated step sequence that
// drives the estimator: rooms, materials, work, summary.
package wizard

import "renocost/pkg/core/geometry"

// Step identifies one wizard step.
type Step int

const (
	StepRooms Step = iota + 1
	StepMaterials
	StepWork
	StepSummary
)

// String returns the step label.
func (s Step) String() string {
	switch s {
	case StepRooms:
		return "rooms"
	case StepMaterials:
		return "materials"
	case StepWork:
		return "work"
	case StepSummary:
		return "summary"
	}
	return "unknown"
}

// RoomsValid reports whether the room collection satisfies the step-1 gate:
// non-empty, and every room has positive length and width.
func RoomsValid(rooms []geometry.Room) bool {
	if len(rooms) == 0 {
		return false
	}
	for _, r := range rooms {
		if r.Dimensions.Length <= 0 || r.Dimensions.Width <= 0 {
			return false
		}
	}
	return true
}

// Controller owns the current step and nothing else. Quality level and the
// materials flag are cost-engine inputs, not navigation state.
type Controller struct {
	step       Step
	roomsValid func() bool
}

// NewController starts at the rooms step. roomsValid supplies the live step-1
// validity; a nil predicate treats the rooms step as always valid.
func NewController(roomsValid func() bool) *Controller {
	return &Controller{step: StepRooms, roomsValid: roomsValid}
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.step
}

// StepValid reports whether the given step's gate is satisfied. Materials and
// work selections have safe defaults, so only the rooms step can be invalid.
func (c *Controller) StepValid(s Step) bool {
	if s == StepRooms && c.roomsValid != nil {
		return c.roomsValid()
	}
	return true
}

// CanAdvance reports whether navigation past the current step is allowed.
func (c *Controller) CanAdvance() bool {
	return c.step < StepSummary && c.StepValid(c.step)
}

// Next advances one step if the current step is valid. At the summary step it
// is a no-op. Returns true if the step changed.
func (c *Controller) Next() bool {
	if !c.CanAdvance() {
		return false
	}
	c.step++
	return true
}

// Prev moves one step back; a no-op at the rooms step.
func (c *Controller) Prev() bool {
	if c.step <= StepRooms {
		return false
	}
	c.step--
	return true
}

// JumpTo moves directly to a step. Backward jumps are always allowed; forward
// jumps may go at most one step past the current one and only when the current
// step is valid. Returns true if the step changed.
func (c *Controller) JumpTo(s Step) bool {
	if s < StepRooms || s > StepSummary || s == c.step {
		return false
	}
	if s < c.step {
		c.step = s
		return true
	}
	if s == c.step+1 && c.StepValid(c.step) {
		c.step = s
		return true
	}
	return false
}
