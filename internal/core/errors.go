package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySkillSet rejects a match query with no skills; no query is issued.
	ErrEmptySkillSet     = errors.New("at least one skill is required")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrEmptyDocument     = errors.New("document has no extractable text")
)

// StoreWriteError wraps a failed write against the graph store. Re-running the whole upsert
// is safe because every write is a merge.
type StoreWriteError struct {
	Op    string
	Cause error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write failed during %s: %v", e.Op, e.Cause)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Cause
}
