// Package project owns the estimator's mutable state: the room collection,
// the work configuration, the quality selection and the wizard position.
// All state lives here explicitly; nothing is read from ambient scope.
package project

import (
	"errors"
	"sync"

	"renocost/pkg/core/catalog"
	"renocost/pkg/core/cost"
	"renocost/pkg/core/geometry"
	"renocost/pkg/core/workcfg"
	"renocost/pkg/core/wizard"
)

var (
	// ErrLastRoom is returned when removing the only remaining room.
	ErrLastRoom = errors.New("project: room collection cannot become empty")
	// ErrRoomNotFound is returned for an unknown room id.
	ErrRoomNotFound = errors.New("project: room not found")
	// ErrBusy is returned when an ingestion is already in flight.
	ErrBusy = errors.New("project: analysis already in progress")
)

// Project is the state owner. Mutations replace whole entities, never patch
// them in place, so invariants cannot be observed in a violated state.
type Project struct {
	mu sync.Mutex

	rooms            []geometry.Room
	work             workcfg.WorkCategories
	quality          workcfg.QualityLevel
	includeMaterials bool
	wiz              *wizard.Controller
	analyzing        bool
	notes            []string
}

// Snapshot is a read-only copy of the project state.
type Snapshot struct {
	Rooms            []geometry.Room        `json:"rooms"`
	Work             workcfg.WorkCategories `json:"work"`
	Quality          workcfg.QualityLevel   `json:"quality"`
	IncludeMaterials bool                   `json:"include_materials"`
	Step             wizard.Step            `json:"step"`
	Notes            []string               `json:"notes,omitempty"`
}

// New creates a project with one default living room, the standard work
// configuration and the standard quality tier.
func New() *Project {
	p := &Project{
		rooms:            []geometry.Room{geometry.NewRoom(geometry.RoomLiving)},
		work:             workcfg.Defaults(),
		quality:          workcfg.QualityStandard,
		includeMaterials: true,
	}
	// The callback reads p.rooms without locking; every controller entry
	// point below holds p.mu, and the controller is not exposed directly.
	p.wiz = wizard.NewController(func() bool {
		return wizard.RoomsValid(p.rooms)
	})
	return p
}

// WizardStep returns the current wizard step.
func (p *Project) WizardStep() wizard.Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wiz.Step()
}

// WizardCanAdvance reports whether navigation past the current step is allowed.
func (p *Project) WizardCanAdvance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wiz.CanAdvance()
}

// WizardNext advances one step if the current step is valid.
func (p *Project) WizardNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wiz.Next()
}

// WizardPrev moves one step back.
func (p *Project) WizardPrev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wiz.Prev()
}

// WizardJump moves directly to a step, subject to the forward-jump rule.
func (p *Project) WizardJump(s wizard.Step) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wiz.JumpTo(s)
}

// Snapshot returns a copy of the current state.
func (p *Project) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	rooms := make([]geometry.Room, len(p.rooms))
	copy(rooms, p.rooms)
	notes := make([]string, len(p.notes))
	copy(notes, p.notes)
	return Snapshot{
		Rooms:            rooms,
		Work:             p.work,
		Quality:          p.quality,
		IncludeMaterials: p.includeMaterials,
		Step:             p.wiz.Step(),
		Notes:            notes,
	}
}

// Rooms returns a copy of the room collection.
func (p *Project) Rooms() []geometry.Room {
	p.mu.Lock()
	defer p.mu.Unlock()
	rooms := make([]geometry.Room, len(p.rooms))
	copy(rooms, p.rooms)
	return rooms
}

// AddRoom appends a room of the given type and returns it.
func (p *Project) AddRoom(t geometry.RoomType) geometry.Room {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := geometry.NewRoom(t)
	p.rooms = append(p.rooms, r)
	return r
}

// RemoveRoom deletes a room; the collection may never become empty.
func (p *Project) RemoveRoom(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.indexOf(id)
	if idx < 0 {
		return ErrRoomNotFound
	}
	if len(p.rooms) == 1 {
		return ErrLastRoom
	}
	p.rooms = append(p.rooms[:idx], p.rooms[idx+1:]...)
	return nil
}

// UpdateRoomDimensions replaces a room with a recomputed copy.
func (p *Project) UpdateRoomDimensions(id string, patch geometry.DimensionPatch) (geometry.Room, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.indexOf(id)
	if idx < 0 {
		return geometry.Room{}, ErrRoomNotFound
	}
	p.rooms[idx] = geometry.UpdateDimensions(p.rooms[idx], patch)
	return p.rooms[idx], nil
}

// UpdateRoomMaterials replaces a room with a recomputed copy.
func (p *Project) UpdateRoomMaterials(id string, patch geometry.MaterialPatch) (geometry.Room, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.indexOf(id)
	if idx < 0 {
		return geometry.Room{}, ErrRoomNotFound
	}
	p.rooms[idx] = geometry.UpdateMaterials(p.rooms[idx], patch)
	return p.rooms[idx], nil
}

func (p *Project) indexOf(id string) int {
	for i, r := range p.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Work returns the current work configuration.
func (p *Project) Work() workcfg.WorkCategories {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.work
}

// SetDemolition toggles whole-project demolition.
func (p *Project) SetDemolition(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.work.Demolition = on
}

// MergeElectrical applies a partial electrical update.
func (p *Project) MergeElectrical(patch workcfg.ElectricalPatch) workcfg.WorkCategories {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.work = workcfg.MergeElectrical(p.work, patch)
	return p.work
}

// MergePlumbing applies a partial plumbing update.
func (p *Project) MergePlumbing(patch workcfg.PlumbingPatch) workcfg.WorkCategories {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.work = workcfg.MergePlumbing(p.work, patch)
	return p.work
}

// MergeHeating applies a partial heating update.
func (p *Project) MergeHeating(patch workcfg.HeatingPatch) workcfg.WorkCategories {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.work = workcfg.MergeHeating(p.work, patch)
	return p.work
}

// MergeDoorsWindows applies a partial openings update.
func (p *Project) MergeDoorsWindows(patch workcfg.DoorsWindowsPatch) workcfg.WorkCategories {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.work = workcfg.MergeDoorsWindows(p.work, patch)
	return p.work
}

// Quality returns the selected quality tier.
func (p *Project) Quality() workcfg.QualityLevel {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quality
}

// SetQuality selects a quality tier.
func (p *Project) SetQuality(q workcfg.QualityLevel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quality = q
}

// SetIncludeMaterials toggles material pricing.
func (p *Project) SetIncludeMaterials(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.includeMaterials = on
}

// TotalFloorArea sums floor areas across all rooms.
func (p *Project) TotalFloorArea() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return geometry.TotalFloorArea(p.rooms)
}

// BeginAnalysis claims the single ingestion slot. A second ingestion may not
// start while one is in flight.
func (p *Project) BeginAnalysis() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.analyzing {
		return ErrBusy
	}
	p.analyzing = true
	return nil
}

// EndAnalysis releases the ingestion slot.
func (p *Project) EndAnalysis() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.analyzing = false
}

// Analyzing reports whether an ingestion is in flight.
func (p *Project) Analyzing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.analyzing
}

// ApplyIngestion swaps in an externally derived model wholesale. Rooms must be
// non-empty; a nil quality keeps the current selection. Notes are advisory.
func (p *Project) ApplyIngestion(rooms []geometry.Room, work workcfg.WorkCategories, quality *workcfg.QualityLevel, notes []string) error {
	if len(rooms) == 0 {
		return ErrLastRoom
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rooms = rooms
	p.work = work
	if quality != nil {
		p.quality = *quality
	}
	p.notes = notes
	return nil
}

// Estimate runs the cost engine over the current state.
func (p *Project) Estimate(cat catalog.Catalog) (cost.CalculationResult, error) {
	s := p.Snapshot()
	return cost.Calculate(s.Rooms, s.Work, s.Quality, s.IncludeMaterials, cat)
}
