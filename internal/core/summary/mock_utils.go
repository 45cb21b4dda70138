package summary

import (
	"context"
	"sync"

	"github.com/agenthands/resumegraph/internal/llm"
)

// MockLLMClient answers from Responses keyed by prompt, falling back to Response.
// Prompts listed in Errors fail with the given error.
type MockLLMClient struct {
	Response  string
	Responses map[string]string
	Errors    map[string]error
	Err       error

	mu       sync.Mutex
	Requests []llm.Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if err, ok := m.Errors[req.Prompt]; ok {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if r, ok := m.Responses[req.Prompt]; ok {
		return r, nil
	}
	return m.Response, nil
}
