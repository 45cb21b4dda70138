// Package normalize turns extracted document pages into the canonical text that is stored
// on a Candidate and the fingerprint that identifies it.
package normalize

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA256 Algorithm = "sha256"
)

type Document struct {
	Text        string `json:"text"`
	Fingerprint string `json:"fingerprint"`
}

// Normalizer fingerprints canonical text. The zero value uses MD5.
type Normalizer struct {
	Algorithm Algorithm
}

func New(algorithm string) (Normalizer, error) {
	switch a := Algorithm(algorithm); a {
	case "", MD5:
		return Normalizer{Algorithm: MD5}, nil
	case SHA256:
		return Normalizer{Algorithm: SHA256}, nil
	default:
		return Normalizer{}, fmt.Errorf("unsupported fingerprint algorithm %q", algorithm)
	}
}

// Normalize joins pages with "\n" in the order given. Page text is not otherwise altered.
func (n Normalizer) Normalize(pages []string) Document {
	return n.FromText(strings.Join(pages, "\n"))
}

func (n Normalizer) FromText(text string) Document {
	return Document{Text: text, Fingerprint: n.Fingerprint(text)}
}

// Fingerprint is the lowercase hex digest of the UTF-8 bytes of text.
func (n Normalizer) Fingerprint(text string) string {
	var h hash.Hash
	switch n.Algorithm {
	case SHA256:
		h = sha256.New()
	default:
		h = md5.New()
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
