// Package prompt provides a centralized prompt library for AI interactions.
// Templates are registered in code and rendered with runtime values.
package prompt

import (
	"fmt"
	"strings"
)

// Template represents a reusable prompt with metadata.
type Template struct {
	ID           string `json:"id"`       // Unique identifier (e.g., "ingest.analyze_project")
	Name         string `json:"name"`     // Human-readable name
	Category     string `json:"category"` // Category (ingest, quote, ...)
	SystemPrompt string `json:"system_prompt"`
	UserTemplate string `json:"user_template"` // Body with {{var}} placeholders
}

// Render substitutes {{key}} placeholders in the user template.
// Unknown placeholders are left in place so a missing variable is visible.
func (t *Template) Render(vars map[string]string) string {
	out := t.UserTemplate
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}

// RenderStrict is Render but errors if any placeholder remains unresolved.
func (t *Template) RenderStrict(vars map[string]string) (string, error) {
	out := t.Render(vars)
	if i := strings.Index(out, "{{"); i >= 0 {
		end := strings.Index(out[i:], "}}")
		if end < 0 {
			end = len(out) - i - 2
		}
		return "", fmt.Errorf("prompt %s: unresolved placeholder %s", t.ID, out[i:i+end+2])
	}
	return out, nil
}
