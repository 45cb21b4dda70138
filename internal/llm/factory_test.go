package llm

import (
	"context"
	"testing"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Providers(t *testing.T) {
	ctx := context.Background()

	c, err := NewClient(ctx, config.LLMConfig{Provider: "OpenAI", APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "groq", APIKey: "gsk-test", Model: "llama-3.1-8b-instant"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "ollama", Model: "llama3.1"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "claude", APIKey: "test", Model: "claude-3-5-haiku-latest"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)
}

func TestNewClient_GroqRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "groq"})
	assert.Error(t, err)
}

func TestNewClient_Unsupported(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "markov"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider: markov")
}
