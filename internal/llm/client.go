package llm

import (
	"context"
)

// Request is a single oracle call. JSON asks the provider for a JSON object response where
// the provider supports it; the caller still parses defensively.
type Request struct {
	System      string
	Prompt      string
	JSON        bool
	Temperature float32
}

type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}
