// Package quote exposes the AI quick-quote capability over HTTP.
package quote

import (
	"encoding/json"
	"fmt"
	"net/http"

	"renocost/pkg/core/ingest"
)

// Handler serves quick-quote requests.
type Handler struct {
	analyzer *ingest.Analyzer
}

// NewHandler creates a quote handler.
func NewHandler(analyzer *ingest.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// HandleQuote asks the AI service for a ballpark estimate from high-level
// apartment parameters.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ingest.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Area <= 0 {
		http.Error(w, "area must be positive", http.StatusBadRequest)
		return
	}

	result, err := h.analyzer.QuickQuote(r.Context(), req)
	if err != nil {
		fmt.Printf("[QUOTE] AI call failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(result)
}
