package llm

import (
	"context"
	"fmt"
)

// MockProvider returns canned responses for tests. It records the prompts and
// options it was called with.
type MockProvider struct {
	Response  string
	Responses []string // consumed in order when set; falls back to Response
	Err       error

	Calls       int
	LastPrompt  string
	LastSystem  string
	LastOptions map[string]interface{}
}

var _ Provider = (*MockProvider)(nil)

func (m *MockProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.LastPrompt = prompt
	m.LastSystem = systemPrompt
	m.LastOptions = options
	if m.Err != nil {
		m.Calls++
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		if m.Calls >= len(m.Responses) {
			return "", fmt.Errorf("mock provider: no response configured for call %d", m.Calls+1)
		}
		resp := m.Responses[m.Calls]
		m.Calls++
		return resp, nil
	}
	m.Calls++
	return m.Response, nil
}
