package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core/model"
)

func testPrompts() config.SummaryPrompts {
	return config.SummaryPrompts{
		Enabled: true,
		System:  "recruiter",
		Resume:  "%s",
	}
}

func TestSummarize(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "  Ada is a Python engineer with SQL depth.\n"}
	summarizer := NewSummarizer(mockLLM, testPrompts(), 0.2, 1, nil)

	summary := summarizer.Summarize(context.Background(), "Ada resume")

	assert.Equal(t, "Ada is a Python engineer with SQL depth.", summary)
	require.Len(t, mockLLM.Requests, 1)
	assert.False(t, mockLLM.Requests[0].JSON)
	assert.Equal(t, "recruiter", mockLLM.Requests[0].System)
	assert.Equal(t, "Ada resume", mockLLM.Requests[0].Prompt)
}

func TestSummarize_ErrorBecomesPlaceholder(t *testing.T) {
	mockLLM := &MockLLMClient{Err: errors.New("rate limited")}
	summarizer := NewSummarizer(mockLLM, testPrompts(), 0.2, 1, nil)

	summary := summarizer.Summarize(context.Background(), "Ada resume")

	assert.Equal(t, "Error generating summary: rate limited", summary)
	assert.True(t, IsError(summary))
}

func TestSummarize_EmptyResponse(t *testing.T) {
	summarizer := NewSummarizer(&MockLLMClient{Response: "   "}, testPrompts(), 0.2, 1, nil)
	assert.True(t, IsError(summarizer.Summarize(context.Background(), "x")))
}

func TestSummarizeAll_IsolatesFailures(t *testing.T) {
	mockLLM := &MockLLMClient{
		Responses: map[string]string{
			"resume a": "summary a",
			"resume c": "summary c",
		},
		Errors: map[string]error{
			"resume b": errors.New("timeout"),
		},
	}

	for _, concurrency := range []int{0, 1, 3} {
		summarizer := NewSummarizer(mockLLM, testPrompts(), 0.2, concurrency, nil)
		candidates := []model.CandidateSummary{
			{ContentHash: "a", Name: "a", Content: "resume a"},
			{ContentHash: "b", Name: "b", Content: "resume b"},
			{ContentHash: "c", Name: "c", Content: "resume c"},
		}

		out := summarizer.SummarizeAll(context.Background(), candidates)

		require.Len(t, out, 3)
		assert.Equal(t, "summary a", out[0].Summary)
		assert.Equal(t, "Error generating summary: timeout", out[1].Summary)
		assert.Equal(t, "summary c", out[2].Summary)
		assert.Equal(t, "b", out[1].ContentHash)
		// input is not mutated
		assert.Empty(t, candidates[0].Summary)
	}
}
