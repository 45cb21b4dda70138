package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/core/summary"
	"github.com/agenthands/resumegraph/internal/driver"
)

// MatchAll returns every candidate connected by HAS_SKILL to all of the given skills.
// Names are compared exactly; callers normalize them the way the extractor stored them.
func (e *Engine) MatchAll(ctx context.Context, skills []string) ([]model.CandidateSummary, error) {
	set := skillSet(skills)
	if len(set) == 0 {
		return nil, ErrEmptySkillSet
	}

	res, err := e.Driver.ExecuteQuery(ctx, driver.MatchAllSkillsQuery, map[string]interface{}{
		"skills": set,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to match skills: %w", err)
	}

	seen := make(map[string]struct{}, len(res.Records))
	candidates := make([]model.CandidateSummary, 0, len(res.Records))
	for _, rec := range res.Records {
		hash := recordString(rec, "content_hash")
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		candidates = append(candidates, model.CandidateSummary{
			ContentHash: hash,
			Name:        recordString(rec, "name"),
			Content:     recordString(rec, "content"),
		})
	}

	e.Logger.Debug("skill match",
		zap.Strings("skills", set),
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}

type SearchRequest struct {
	Skills []string
	// Summarize overrides the configured default when set.
	Summarize      *bool
	IncludeContent bool
}

// Search normalizes the query like the extractor does, matches, and optionally summarizes
// every match.
func (e *Engine) Search(ctx context.Context, req SearchRequest) ([]model.CandidateSummary, error) {
	skills := e.Extractor.NormalizeQuery(req.Skills)

	candidates, err := e.MatchAll(ctx, skills)
	if err != nil {
		return nil, err
	}

	summarize := e.SummariesEnabled
	if req.Summarize != nil {
		summarize = *req.Summarize
	}
	if summarize && len(candidates) > 0 {
		candidates = e.Summarizer.SummarizeAll(ctx, candidates)
		if failed := countFailedSummaries(candidates); failed > 0 {
			e.Logger.Warn("some summaries could not be generated",
				zap.Int("failed", failed),
				zap.Int("candidates", len(candidates)))
		}
	}

	if !req.IncludeContent {
		for i := range candidates {
			candidates[i].Content = ""
		}
	}
	return candidates, nil
}

func (e *Engine) ListCandidates(ctx context.Context) ([]model.CandidateSummary, error) {
	res, err := e.Driver.ExecuteQuery(ctx, driver.ListCandidatesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidates := make([]model.CandidateSummary, 0, len(res.Records))
	for _, rec := range res.Records {
		candidates = append(candidates, model.CandidateSummary{
			ContentHash: recordString(rec, "content_hash"),
			Name:        recordString(rec, "name"),
		})
	}
	return candidates, nil
}

// GetCandidate rebuilds a stored candidate's profile from its outgoing edges.
func (e *Engine) GetCandidate(ctx context.Context, contentHash string) (*model.CandidateDetail, error) {
	res, err := e.Driver.ExecuteQuery(ctx, driver.GetCandidateQuery, map[string]interface{}{
		"content_hash": contentHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %s: %w", contentHash, err)
	}
	if len(res.Records) == 0 {
		return nil, ErrCandidateNotFound
	}

	first := res.Records[0]
	detail := &model.CandidateDetail{
		CandidateNode: model.CandidateNode{
			ContentHash: recordString(first, "content_hash"),
			Name:        recordString(first, "name"),
			Content:     recordString(first, "content"),
			CreatedAt:   recordTime(first, "created_at"),
		},
	}

	profile := model.Profile{Name: detail.Name}
	for _, c := range model.Categories {
		profile.SetItems(c, []string{})
	}
	for _, rec := range res.Records {
		c, ok := model.CategoryByRelationship(recordString(rec, "relationship"))
		if !ok {
			continue
		}
		profile.SetItems(c, append(profile.Items(c), recordString(rec, "item")))
	}
	for _, c := range model.Categories {
		sort.Strings(profile.Items(c))
	}
	detail.Profile = profile

	return detail, nil
}

func countFailedSummaries(candidates []model.CandidateSummary) int {
	n := 0
	for _, c := range candidates {
		if summary.IsError(c.Summary) {
			n++
		}
	}
	return n
}

// skillSet drops blanks and duplicates, keeping first-seen order.
func skillSet(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
