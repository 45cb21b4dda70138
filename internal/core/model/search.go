package model

type CandidateSummary struct {
	ContentHash string `json:"content_hash"`
	Name        string `json:"name"`
	Content     string `json:"content,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// CandidateDetail is a candidate together with the profile rebuilt from its edges.
type CandidateDetail struct {
	CandidateNode
	Profile Profile `json:"profile"`
}

type GraphStats struct {
	Nodes int64 `json:"nodes"`
	Edges int64 `json:"edges"`
}
