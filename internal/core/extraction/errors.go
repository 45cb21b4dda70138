package extraction

import "fmt"

type Reason string

const (
	// ReasonOracle means the oracle call itself failed.
	ReasonOracle Reason = "oracle"
	// ReasonParse means the oracle answered with something that is not a profile.
	ReasonParse Reason = "parse"
)

// ExtractionError marks a document that produced no profile. Callers skip persistence.
type ExtractionError struct {
	Reason Reason
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
