package ingest

import (
	"fmt"

	"renocost/pkg/core/geometry"
	"renocost/pkg/core/workcfg"
)

// Hint types mirror the AI service's loosely-structured response. Every field
// is optional; the mapping step is the only place defaults are injected.

// RoomHint is a best-effort room description extracted from a document.
type RoomHint struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Length        *float64 `json:"length"`
	Width         *float64 `json:"width"`
	Height        *float64 `json:"height"`
	Doors         *int     `json:"doors"`
	Windows       *int     `json:"windows"`
	Flooring      string   `json:"flooring"`
	WallFinish    string   `json:"wall_finish"`
	CeilingFinish string   `json:"ceiling_finish"`
}

// ElectricalHints mirrors workcfg.Electrical with all-optional fields.
type ElectricalHints struct {
	Enabled        *bool `json:"enabled"`
	Outlets        *int  `json:"outlets"`
	Switches       *int  `json:"switches"`
	LightingPoints *int  `json:"lighting_points"`
	ACPoints       *int  `json:"ac_points"`
}

// PlumbingHints mirrors workcfg.Plumbing with all-optional fields.
type PlumbingHints struct {
	Enabled  *bool `json:"enabled"`
	Toilets  *int  `json:"toilets"`
	Sinks    *int  `json:"sinks"`
	Showers  *int  `json:"showers"`
	Bathtubs *int  `json:"bathtubs"`
}

// HeatingHints mirrors workcfg.Heating with all-optional fields.
type HeatingHints struct {
	Enabled        *bool    `json:"enabled"`
	Radiators      *int     `json:"radiators"`
	UnderfloorArea *float64 `json:"underfloor_area"`
	Boiler         *bool    `json:"boiler"`
}

// DoorsWindowsHints mirrors workcfg.DoorsWindows with all-optional fields.
type DoorsWindowsHints struct {
	Enabled       *bool `json:"enabled"`
	InteriorDoors *int  `json:"interior_doors"`
	EntranceDoor  *bool `json:"entrance_door"`
}

// WorkHints is the work-suggestion portion of the AI response.
type WorkHints struct {
	Demolition   *bool              `json:"demolition"`
	Electrical   *ElectricalHints   `json:"electrical"`
	Plumbing     *PlumbingHints     `json:"plumbing"`
	Heating      *HeatingHints      `json:"heating"`
	DoorsWindows *DoorsWindowsHints `json:"doors_windows"`
}

// ProjectHints is the complete best-effort structure returned by the AI
// service's analyzeProject capability. Any field may be absent.
type ProjectHints struct {
	Rooms   []RoomHint `json:"rooms"`
	Work    *WorkHints `json:"work"`
	Quality string     `json:"quality"`
	Notes   []string   `json:"notes"`
}

// BuildRooms maps room hints onto fully-populated rooms. Missing fields are
// filled from the type defaults; out-of-range values are clamped by geometry.
// Substituted room types are reported as advisory notes so the guess is
// visible to the user.
func BuildRooms(hints []RoomHint) ([]geometry.Room, []string) {
	rooms := make([]geometry.Room, 0, len(hints))
	var notes []string
	for _, h := range hints {
		rt, known := geometry.ParseRoomType(h.Type)
		if !known && h.Type != "" {
			notes = append(notes, fmt.Sprintf("unrecognized room type %q treated as %s", h.Type, rt))
		}
		p := geometry.RoomParams{
			Type: rt,
			Name: h.Name,
			Dimensions: geometry.DimensionPatch{
				Length:      h.Length,
				Width:       h.Width,
				Height:      h.Height,
				DoorCount:   h.Doors,
				WindowCount: h.Windows,
			},
		}
		// Unknown material names are dropped so the type default applies
		// and every room stays priceable against the catalog.
		if m, ok := geometry.ParseFloorMaterial(h.Flooring); ok {
			p.Materials.Flooring = &m
		}
		if m, ok := geometry.ParseWallMaterial(h.WallFinish); ok {
			p.Materials.WallFinish = &m
		}
		if m, ok := geometry.ParseCeilingMaterial(h.CeilingFinish); ok {
			p.Materials.CeilingFinish = &m
		}
		rooms = append(rooms, geometry.NewRoomWithParams(p))
	}
	return rooms, notes
}

// BuildWork maps work hints onto a full configuration. Every missing count
// keeps the standard default rather than dropping to zero, so categories the
// document never mentioned stay sensibly configured.
func BuildWork(h *WorkHints) workcfg.WorkCategories {
	w := workcfg.Defaults()
	if h == nil {
		return w
	}
	if h.Demolition != nil {
		w.Demolition = *h.Demolition
	}
	if e := h.Electrical; e != nil {
		w = workcfg.MergeElectrical(w, workcfg.ElectricalPatch{
			Enabled:        e.Enabled,
			Outlets:        e.Outlets,
			Switches:       e.Switches,
			LightingPoints: e.LightingPoints,
			ACPoints:       e.ACPoints,
		})
	}
	if pl := h.Plumbing; pl != nil {
		w = workcfg.MergePlumbing(w, workcfg.PlumbingPatch{
			Enabled:  pl.Enabled,
			Toilets:  pl.Toilets,
			Sinks:    pl.Sinks,
			Showers:  pl.Showers,
			Bathtubs: pl.Bathtubs,
		})
	}
	if ht := h.Heating; ht != nil {
		w = workcfg.MergeHeating(w, workcfg.HeatingPatch{
			Enabled:        ht.Enabled,
			Radiators:      ht.Radiators,
			UnderfloorArea: ht.UnderfloorArea,
			Boiler:         ht.Boiler,
		})
	}
	if dw := h.DoorsWindows; dw != nil {
		w = workcfg.MergeDoorsWindows(w, workcfg.DoorsWindowsPatch{
			Enabled:       dw.Enabled,
			InteriorDoors: dw.InteriorDoors,
			EntranceDoor:  dw.EntranceDoor,
		})
	}
	return w
}
