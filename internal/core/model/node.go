package model

import "time"

type CandidateNode struct {
	ContentHash string    `json:"content_hash"`
	Name        string    `json:"name"`
	Content     string    `json:"content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
