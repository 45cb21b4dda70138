package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core/common"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/llm"
)

type Extractor struct {
	LLM         llm.LLMClient
	Prompts     config.ExtractionPrompts
	Temperature float32
	Logger      *zap.Logger

	validate *validator.Validate
}

func NewExtractor(llmClient llm.LLMClient, prompts config.ExtractionPrompts, temperature float32, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		LLM:         llmClient,
		Prompts:     prompts,
		Temperature: temperature,
		Logger:      logger,
		validate:    validator.New(),
	}
}

// FoldCase reports whether the extractor runs in word_search_only mode.
func (e *Extractor) FoldCase() bool {
	return e.Prompts.Mode == config.ModeWordSearchOnly
}

// Extract maps resume text to a Profile. Every failure is an *ExtractionError.
func (e *Extractor) Extract(ctx context.Context, content string) (model.Profile, error) {
	prompt := fmt.Sprintf(e.Prompts.Profile, content)

	response, err := e.LLM.Generate(ctx, llm.Request{
		System:      e.Prompts.System,
		Prompt:      prompt,
		JSON:        true,
		Temperature: e.Temperature,
	})
	if err != nil {
		return model.Profile{}, &ExtractionError{Reason: ReasonOracle, Cause: err}
	}

	raw, err := common.ParseJSON[model.RawProfile](response)
	if err != nil {
		e.Logger.Debug("unparseable oracle response", zap.String("response", truncate(response, 200)))
		return model.Profile{}, &ExtractionError{Reason: ReasonParse, Cause: err}
	}

	profile := e.normalize(raw)
	if err := e.validate.Struct(profile); err != nil {
		return model.Profile{}, &ExtractionError{Reason: ReasonParse, Cause: err}
	}

	return profile, nil
}

// NormalizeQuery prepares skill names typed by a user the same way extracted skills were
// stored, so that exact matching lines up.
func (e *Extractor) NormalizeQuery(skills []string) []string {
	return cleanItems(skills, e.FoldCase())
}

func (e *Extractor) normalize(raw model.RawProfile) model.Profile {
	fold := e.FoldCase()

	name := model.UnknownName
	if raw.Name != nil && strings.TrimSpace(*raw.Name) != "" {
		name = strings.TrimSpace(*raw.Name)
	}
	if fold {
		name = strings.ToLower(name)
	}

	return model.Profile{
		Name:           name,
		Skills:         cleanItems(raw.Skills, fold),
		Education:      cleanItems(raw.Education, fold),
		Projects:       cleanItems(raw.Projects, fold),
		Experience:     cleanItems(raw.Experience, fold),
		Certifications: cleanItems(raw.Certifications, fold),
	}
}

// cleanItems trims, optionally lower-cases, drops blanks and collapses duplicates.
// Never returns nil.
func cleanItems(items []string, fold bool) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if fold {
			item = strings.ToLower(item)
		}
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
