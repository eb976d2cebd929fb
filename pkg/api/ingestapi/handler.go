// Package ingestapi exposes document ingestion over HTTP.
package ingestapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"renocost/pkg/core/ingest"
	"renocost/pkg/core/project"
)

// 20 MB upload cap, matching the external extractor's limit.
const maxUploadBytes = 20 << 20

// Handler serves document ingestion requests.
type Handler struct {
	proj     *project.Project
	analyzer *ingest.Analyzer
}

// NewHandler creates an ingestion handler.
func NewHandler(proj *project.Project, analyzer *ingest.Analyzer) *Handler {
	return &Handler{proj: proj, analyzer: analyzer}
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, project.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, ingest.ErrUnsupportedKind),
		errors.Is(err, ingest.ErrEmptyDocument),
		errors.Is(err, ingest.ErrNoRooms):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

type ingestResponse struct {
	Rooms int      `json:"rooms"`
	Notes []string `json:"notes,omitempty"`
}

// HandleUpload accepts a multipart file upload, runs the ingestion pipeline
// and on success returns the new room count and advisory notes. Failures leave
// the model untouched; a 409 means an analysis is already in flight.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("[INGEST] Analyzing %s (%d bytes)\n", header.Filename, len(data))
	notes, err := h.analyzer.IngestFile(r.Context(), h.proj, header.Filename, data)
	if err != nil {
		fmt.Printf("[INGEST] Failed: %v\n", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	rooms := h.proj.Rooms()
	fmt.Printf("[INGEST] Done: %d rooms\n", len(rooms))
	json.NewEncoder(w).Encode(ingestResponse{Rooms: len(rooms), Notes: notes})
}

type textRequest struct {
	Text string `json:"text"`
}

// HandleText ingests pre-extracted text, the path used when the external
// extractor has already reduced a PDF or spreadsheet.
func (h *Handler) HandleText(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, ingest.ErrEmptyDocument.Error(), http.StatusUnprocessableEntity)
		return
	}

	notes, err := h.analyzer.IngestText(r.Context(), h.proj, req.Text)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(ingestResponse{Rooms: len(h.proj.Rooms()), Notes: notes})
}
