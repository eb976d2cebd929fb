// Package projectapi exposes the project state and wizard navigation over HTTP.
package projectapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"renocost/pkg/core/geometry"
	"renocost/pkg/core/project"
	"renocost/pkg/core/wizard"
	"renocost/pkg/core/workcfg"
)

// Handler serves project state reads and mutations.
type Handler struct {
	proj *project.Project
}

// NewHandler creates a project handler.
func NewHandler(proj *project.Project) *Handler {
	return &Handler{proj: proj}
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func preflight(w http.ResponseWriter, r *http.Request) bool {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, project.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrLastRoom):
		return http.StatusConflict
	case errors.Is(err, project.ErrBusy):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// HandleState returns the full project snapshot.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	json.NewEncoder(w).Encode(h.proj.Snapshot())
}

type roomRequest struct {
	ID         string                  `json:"id,omitempty"`
	Type       string                  `json:"type,omitempty"`
	Dimensions geometry.DimensionPatch `json:"dimensions"`
	Materials  geometry.MaterialPatch  `json:"materials"`
}

// HandleRooms serves POST (add), PATCH-style POST with id (update) and DELETE.
func (h *Handler) HandleRooms(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(h.proj.Rooms())
	case http.MethodPost:
		var req roomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			rt, _ := geometry.ParseRoomType(req.Type)
			room := h.proj.AddRoom(rt)
			json.NewEncoder(w).Encode(room)
			return
		}
		room, err := h.proj.UpdateRoomDimensions(req.ID, req.Dimensions)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		room, err = h.proj.UpdateRoomMaterials(req.ID, req.Materials)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		json.NewEncoder(w).Encode(room)
	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if err := h.proj.RemoveRoom(id); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type workRequest struct {
	Demolition   *bool                      `json:"demolition,omitempty"`
	Electrical   *workcfg.ElectricalPatch   `json:"electrical,omitempty"`
	Plumbing     *workcfg.PlumbingPatch     `json:"plumbing,omitempty"`
	Heating      *workcfg.HeatingPatch      `json:"heating,omitempty"`
	DoorsWindows *workcfg.DoorsWindowsPatch `json:"doors_windows,omitempty"`
	Quality      *string                    `json:"quality,omitempty"`
	Materials    *bool                      `json:"include_materials,omitempty"`
}

// HandleWork applies partial work-configuration updates, one sub-config at a
// time, plus the quality and materials selections.
func (h *Handler) HandleWork(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	if r.Method == http.MethodGet {
		json.NewEncoder(w).Encode(h.proj.Work())
		return
	}
	var req workRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Demolition != nil {
		h.proj.SetDemolition(*req.Demolition)
	}
	if req.Electrical != nil {
		h.proj.MergeElectrical(*req.Electrical)
	}
	if req.Plumbing != nil {
		h.proj.MergePlumbing(*req.Plumbing)
	}
	if req.Heating != nil {
		h.proj.MergeHeating(*req.Heating)
	}
	if req.DoorsWindows != nil {
		h.proj.MergeDoorsWindows(*req.DoorsWindows)
	}
	if req.Quality != nil {
		if q, ok := workcfg.ParseQuality(*req.Quality); ok {
			h.proj.SetQuality(q)
		}
	}
	if req.Materials != nil {
		h.proj.SetIncludeMaterials(*req.Materials)
	}
	json.NewEncoder(w).Encode(h.proj.Work())
}

type navRequest struct {
	Action string `json:"action"` // "next", "prev" or "jump"
	Step   int    `json:"step,omitempty"`
}

type navResponse struct {
	Step       int    `json:"step"`
	Label      string `json:"label"`
	Moved      bool   `json:"moved"`
	CanAdvance bool   `json:"can_advance"`
}

// HandleWizard serves wizard navigation.
func (h *Handler) HandleWizard(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	moved := false
	if r.Method == http.MethodPost {
		var req navRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		switch req.Action {
		case "next":
			moved = h.proj.WizardNext()
		case "prev":
			moved = h.proj.WizardPrev()
		case "jump":
			moved = h.proj.WizardJump(wizard.Step(req.Step))
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}
	}

	step := h.proj.WizardStep()
	json.NewEncoder(w).Encode(navResponse{
		Step:       int(step),
		Label:      step.String(),
		Moved:      moved,
		CanAdvance: h.proj.WizardCanAdvance(),
	})
}
