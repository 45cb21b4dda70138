package model

type IngestStatus string

const (
	StatusIngested         IngestStatus = "ingested"
	StatusAlreadyPresent   IngestStatus = "already_present"
	StatusExtractionFailed IngestStatus = "extraction_failed"
	StatusStoreFailed      IngestStatus = "store_failed"
	StatusUnreadable       IngestStatus = "unreadable"
	// StatusCancelled marks documents not processed because the caller gave up.
	StatusCancelled IngestStatus = "cancelled"
)

type IngestResult struct {
	Source      string       `json:"source"`
	Status      IngestStatus `json:"status"`
	ContentHash string       `json:"content_hash,omitempty"`
	Name        string       `json:"name,omitempty"`
	Error       string       `json:"error,omitempty"`
}
