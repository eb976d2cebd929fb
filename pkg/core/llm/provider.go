// Package llm wraps the AI classification service behind a provider interface
// so the ingestion adapter never depends on one vendor SDK.
package llm

import (
	"context"
	"fmt"
)

// Option keys understood by providers. Image options carry the vision payload
// for photo ingestion; response_format requests JSON output.
const (
	OptModel          = "model"
	OptResponseFormat = "response_format"
	OptImageBase64    = "image_base64"
	OptImageMIMEType  = "image_mime_type"
)

// Provider is the interface for all AI providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// JSONOptions returns an options map requesting a JSON object response.
func JSONOptions() map[string]interface{} {
	return map[string]interface{}{
		OptResponseFormat: map[string]interface{}{"type": "json_object"},
	}
}

// New selects a provider by name: "gemini" (default), "gemini-legacy" or "mock".
func New(name string) (Provider, error) {
	switch name {
	case "", "gemini":
		return &GeminiProvider{}, nil
	case "gemini-legacy":
		return &LegacyGeminiProvider{}, nil
	case "mock":
		return &MockProvider{}, nil
	}
	return nil, fmt.Errorf("llm: unknown provider %q", name)
}
