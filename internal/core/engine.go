package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core/dedupe"
	"github.com/agenthands/resumegraph/internal/core/extraction"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/core/normalize"
	"github.com/agenthands/resumegraph/internal/core/summary"
	"github.com/agenthands/resumegraph/internal/driver"
	"github.com/agenthands/resumegraph/internal/llm"
)

// Engine owns every write to the candidate graph and answers skill queries against it.
type Engine struct {
	Driver     driver.GraphDriver
	Extractor  *extraction.Extractor
	Summarizer *summary.Summarizer
	Dedupe     *dedupe.Checker
	Normalizer normalize.Normalizer
	Logger     *zap.Logger

	SingleTransaction bool
	SummariesEnabled  bool
	Now               func() time.Time
}

func NewEngine(d driver.GraphDriver, llmClient llm.LLMClient, cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n, err := normalize.New(cfg.Ingest.Fingerprint)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Driver:     d,
		Extractor:  extraction.NewExtractor(llmClient, cfg.Extraction, cfg.LLM.Temperature, logger.Named("extractor")),
		Summarizer: summary.NewSummarizer(llmClient, cfg.Summary, cfg.LLM.Temperature, cfg.Concurrency.Summaries, logger.Named("summarizer")),
		Dedupe:     dedupe.NewChecker(d),
		Normalizer: n,
		Logger:     logger,

		SingleTransaction: cfg.Graph.SingleTransaction,
		SummariesEnabled:  cfg.Summary.Enabled,
		Now:               time.Now,
	}, nil
}

func (e *Engine) BuildIndices(ctx context.Context) error {
	return e.Driver.BuildIndices(ctx)
}

// Upsert merges a candidate and its attribute nodes and edges. Calling it again with the same
// arguments leaves the graph unchanged. The returned id is the content fingerprint.
func (e *Engine) Upsert(ctx context.Context, profile model.Profile, content string) (string, error) {
	hash := e.Normalizer.Fingerprint(content)

	statements := []driver.Statement{{
		Query: driver.MergeCandidateQuery,
		Params: map[string]interface{}{
			"content_hash": hash,
			"name":         profile.Name,
			"content":      content,
			"created_at":   e.Now().UTC(),
		},
	}}

	for _, c := range model.Categories {
		items := profile.Items(c)
		if len(items) == 0 {
			continue
		}
		q, err := driver.MergeAttributesQuery(c.Label, c.Relationship)
		if err != nil {
			return "", err
		}
		statements = append(statements, driver.Statement{
			Query: q,
			Params: map[string]interface{}{
				"content_hash": hash,
				"names":        items,
			},
		})
	}

	if e.SingleTransaction {
		if err := e.Driver.ExecuteBatch(ctx, statements); err != nil {
			return "", &StoreWriteError{Op: "upsert", Cause: err}
		}
	} else {
		for i, st := range statements {
			if _, err := e.Driver.ExecuteQuery(ctx, st.Query, st.Params); err != nil {
				return "", &StoreWriteError{Op: fmt.Sprintf("upsert statement %d", i), Cause: err}
			}
		}
	}

	e.Logger.Debug("candidate upserted",
		zap.String("content_hash", hash),
		zap.Int("statements", len(statements)))
	return hash, nil
}

// Clear removes every node and edge from the store.
func (e *Engine) Clear(ctx context.Context) error {
	if _, err := e.Driver.ExecuteQuery(ctx, driver.ClearGraphQuery, nil); err != nil {
		return &StoreWriteError{Op: "clear", Cause: err}
	}
	e.Logger.Info("graph cleared")
	return nil
}

func (e *Engine) Stats(ctx context.Context) (model.GraphStats, error) {
	res, err := e.Driver.ExecuteQuery(ctx, driver.StatsQuery, nil)
	if err != nil {
		return model.GraphStats{}, err
	}
	if len(res.Records) == 0 {
		return model.GraphStats{}, nil
	}
	rec := res.Records[0]
	return model.GraphStats{
		Nodes: recordInt(rec, "nodes"),
		Edges: recordInt(rec, "edges"),
	}, nil
}
