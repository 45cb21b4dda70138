package dedupe

import (
	"context"
	"fmt"

	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/driver"
)

// Checker answers "has this document been ingested before?" from the store itself, keyed by
// content fingerprint rather than by file name or session.
type Checker struct {
	Driver driver.GraphDriver
}

func NewChecker(d driver.GraphDriver) *Checker {
	return &Checker{Driver: d}
}

// Seen returns the stored candidate when one exists for the fingerprint.
func (c *Checker) Seen(ctx context.Context, fingerprint string) (*model.CandidateNode, bool, error) {
	res, err := c.Driver.ExecuteQuery(ctx, driver.FindCandidateQuery, map[string]interface{}{
		"content_hash": fingerprint,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up fingerprint %s: %w", fingerprint, err)
	}
	if len(res.Records) == 0 {
		return nil, false, nil
	}

	rec := res.Records[0]
	hash, _ := rec.Get("content_hash")
	name, _ := rec.Get("name")
	node := &model.CandidateNode{}
	node.ContentHash, _ = hash.(string)
	node.Name, _ = name.(string)
	return node, true, nil
}
