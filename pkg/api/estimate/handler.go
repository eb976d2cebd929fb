// Package estimate exposes the cost engine over HTTP.
package estimate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"renocost/pkg/core/catalog"
	"renocost/pkg/core/project"
	"renocost/pkg/core/store"
)

// Handler serves estimate calculation and saved-estimate retrieval.
type Handler struct {
	proj    *project.Project
	catalog catalog.Catalog
	repo    *store.EstimateRepo // nil when persistence is off
}

// NewHandler creates an estimate handler. repo may be nil.
func NewHandler(proj *project.Project, cat catalog.Catalog, repo *store.EstimateRepo) *Handler {
	return &Handler{proj: proj, catalog: cat, repo: repo}
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleEstimate calculates the estimate for the current project state.
// With ?save=1 the snapshot and result are also persisted.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := h.proj.Estimate(h.catalog)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	response := map[string]interface{}{
		"result": result,
	}

	if r.URL.Query().Get("save") == "1" {
		if h.repo == nil {
			http.Error(w, "persistence not configured", http.StatusNotImplemented)
			return
		}
		id, err := h.repo.Save(r.Context(), h.proj.Snapshot(), result)
		if err != nil {
			fmt.Printf("[ESTIMATE] Save failed: %v\n", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Printf("[ESTIMATE] Saved estimate %s (total %.2f)\n", id, result.GrandTotal)
		response["saved_id"] = id
	}

	json.NewEncoder(w).Encode(response)
}

// HandleSaved serves GET /api/estimates (list) and GET /api/estimates/{id}.
func (h *Handler) HandleSaved(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if h.repo == nil {
		http.Error(w, "persistence not configured", http.StatusNotImplemented)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/estimates")
	id = strings.Trim(id, "/")
	if id == "" {
		list, err := h.repo.List(r.Context(), 20)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(list)
		return
	}

	saved, err := h.repo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(saved)
}
