package core

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/core/extraction"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/document"
)

// Ingest runs one document through normalize, dedupe, extract and upsert. The result's
// Status always says what happened; the error is non-nil for every status except
// ingested and already_present.
func (e *Engine) Ingest(ctx context.Context, source string, pages []string) (model.IngestResult, error) {
	doc := e.Normalizer.Normalize(pages)
	result := model.IngestResult{Source: source, ContentHash: doc.Fingerprint}
	log := e.Logger.With(zap.String("source", source), zap.String("content_hash", doc.Fingerprint))

	if strings.TrimSpace(doc.Text) == "" {
		result.Status = model.StatusUnreadable
		result.Error = ErrEmptyDocument.Error()
		log.Warn("skipping empty document")
		return result, ErrEmptyDocument
	}

	existing, seen, err := e.Dedupe.Seen(ctx, doc.Fingerprint)
	if err != nil {
		result.Status = model.StatusStoreFailed
		result.Error = err.Error()
		return result, err
	}
	if seen {
		result.Status = model.StatusAlreadyPresent
		result.Name = existing.Name
		log.Info("document already ingested")
		return result, nil
	}

	profile, err := e.Extractor.Extract(ctx, doc.Text)
	if err != nil {
		result.Status = model.StatusExtractionFailed
		result.Error = err.Error()
		log.Warn("skipping document without profile", zap.Error(err))
		return result, err
	}

	if _, err := e.Upsert(ctx, profile, doc.Text); err != nil {
		result.Status = model.StatusStoreFailed
		result.Error = err.Error()
		log.Error("failed to store candidate", zap.Error(err))
		return result, err
	}

	result.Status = model.StatusIngested
	result.Name = profile.Name
	log.Info("candidate ingested",
		zap.String("name", profile.Name),
		zap.Int("skills", len(profile.Skills)))
	return result, nil
}

// IngestDocuments processes documents one at a time in the order given. A failure is recorded
// in that document's result and never stops the batch. Once ctx is done, the document in
// flight and every later one are reported as cancelled.
func (e *Engine) IngestDocuments(ctx context.Context, docs []document.Document) []model.IngestResult {
	results := make([]model.IngestResult, 0, len(docs))
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			results = append(results, model.IngestResult{
				Source: d.Name,
				Status: model.StatusCancelled,
				Error:  err.Error(),
			})
			continue
		}
		res, err := e.Ingest(ctx, d.Name, d.Pages)
		if err != nil && ctx.Err() != nil {
			res.Status = model.StatusCancelled
			res.Error = ctx.Err().Error()
		}
		results = append(results, res)
	}
	return results
}

// IsSkip reports whether an ingest error only means the document was skipped, as opposed to
// the store being unavailable.
func IsSkip(err error) bool {
	var extractionErr *extraction.ExtractionError
	return errors.As(err, &extractionErr) || errors.Is(err, ErrEmptyDocument)
}
