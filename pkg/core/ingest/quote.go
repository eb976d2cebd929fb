package ingest

import (
	"context"
	"fmt"
	"strconv"

	"renocost/pkg/core/llm"
	"renocost/pkg/core/prompt"
)

// QuoteRequest holds the high-level parameters for a quick AI-backed quote,
// used before any rooms have been entered.
type QuoteRequest struct {
	Area             float64 `json:"area"`
	Rooms            int     `json:"rooms"`
	Bathrooms        int     `json:"bathrooms"`
	RenovationType   string  `json:"renovation_type"`
	IncludeKitchen   bool    `json:"include_kitchen"`
	IncludeFurniture bool    `json:"include_furniture"`
	PropertyType     string  `json:"property_type"`
}

// QuoteResult is the AI's ballpark answer.
type QuoteResult struct {
	TotalEstimate float64  `json:"total_estimate"`
	Timeline      string   `json:"timeline"`
	Tips          []string `json:"tips"`
}

// QuickQuote asks the AI service for a ballpark estimate from high-level
// parameters alone. It touches no project state.
func (a *Analyzer) QuickQuote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	tmpl, err := prompt.Get().GetPrompt(prompt.QuickQuoteID)
	if err != nil {
		return nil, err
	}
	body := tmpl.Render(map[string]string{
		"locale":            a.locale,
		"area":              strconv.FormatFloat(req.Area, 'f', -1, 64),
		"rooms":             strconv.Itoa(req.Rooms),
		"bathrooms":         strconv.Itoa(req.Bathrooms),
		"renovation_type":   req.RenovationType,
		"property_type":     req.PropertyType,
		"include_kitchen":   strconv.FormatBool(req.IncludeKitchen),
		"include_furniture": strconv.FormatBool(req.IncludeFurniture),
	})

	raw, err := a.provider.GenerateResponse(ctx, body, tmpl.SystemPrompt, llm.JSONOptions())
	if err != nil {
		return nil, fmt.Errorf("ingest: AI service: %w", err)
	}
	var result QuoteResult
	if err := smartParse(raw, &result); err != nil {
		return nil, err
	}
	if result.TotalEstimate < 0 {
		result.TotalEstimate = 0
	}
	return &result, nil
}
