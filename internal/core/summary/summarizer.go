package summary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/llm"
)

const errorPrefix = "Error generating summary: "

type Summarizer struct {
	LLM         llm.LLMClient
	Prompts     config.SummaryPrompts
	Temperature float32
	// Concurrency bounds parallel oracle calls in SummarizeAll. Values below 1 mean 1.
	Concurrency int
	Logger      *zap.Logger
}

func NewSummarizer(llmClient llm.LLMClient, prompts config.SummaryPrompts, temperature float32, concurrency int, logger *zap.Logger) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Summarizer{
		LLM:         llmClient,
		Prompts:     prompts,
		Temperature: temperature,
		Concurrency: concurrency,
		Logger:      logger,
	}
}

// Summarize asks the oracle for a short recruiter summary of a resume. It never fails:
// an oracle error comes back as an inline error description.
func (s *Summarizer) Summarize(ctx context.Context, content string) string {
	prompt := fmt.Sprintf(s.Prompts.Resume, content)

	response, err := s.LLM.Generate(ctx, llm.Request{
		System:      s.Prompts.System,
		Prompt:      prompt,
		Temperature: s.Temperature,
	})
	if err != nil {
		s.Logger.Warn("summary generation failed", zap.Error(err))
		return errorPrefix + err.Error()
	}

	summary := strings.TrimSpace(response)
	if summary == "" {
		return errorPrefix + "empty response"
	}
	return summary
}

// IsError reports whether a summary is the placeholder for a failed generation.
func IsError(summary string) bool {
	return strings.HasPrefix(summary, errorPrefix)
}

// SummarizeAll fills in Summary for every candidate, preserving order. Each candidate is
// isolated from the others' failures.
func (s *Summarizer) SummarizeAll(ctx context.Context, candidates []model.CandidateSummary) []model.CandidateSummary {
	out := make([]model.CandidateSummary, len(candidates))
	copy(out, candidates)

	limit := s.Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := range out {
		i := i
		g.Go(func() error {
			out[i].Summary = s.Summarize(ctx, out[i].Content)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
