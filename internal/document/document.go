// Package document turns uploaded resume files into ordered per-page plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrEmptyDocument   = errors.New("document is empty")
)

// Document is one uploaded file. Pages keep their original order.
type Document struct {
	Name  string
	Pages []string
}

// Extract detects the file type from its content, falling back to the extension, and
// returns its text.
func Extract(filename string, data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%s: %w", filename, ErrEmptyDocument)
	}

	var (
		pages []string
		err   error
	)
	switch kind := Detect(filename, data); kind {
	case MimePDF:
		pages, err = pdfPages(data)
	case MimeDOCX:
		pages, err = docxPages(data)
	case MimeText:
		pages = []string{string(data)}
	default:
		return Document{}, fmt.Errorf("%s (%s): %w", filename, kind, ErrUnsupportedType)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return Document{Name: filename, Pages: pages}, nil
}

// Detect returns one of the supported MIME types, or the sniffed type when unsupported.
func Detect(filename string, data []byte) string {
	m := mimetype.Detect(data)
	switch {
	case m.Is(MimePDF):
		return MimePDF
	case m.Is(MimeDOCX):
		return MimeDOCX
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md":
		return MimeText
	}
	for p := m; p != nil; p = p.Parent() {
		if p.Is(MimeText) {
			return MimeText
		}
	}
	return m.String()
}

// pdfPages returns one entry per page. Pages without a content stream yield "".
func pdfPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

// docxPages returns the body text as a single page; DOCX carries no page boundaries.
func docxPages(data []byte) ([]string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer r.Close()

	return []string{docxText(r.Editable().GetContent())}, nil
}

func docxText(xml string) string {
	text := docxParagraphEnd.ReplaceAllString(xml, "\n")
	text = docxTag.ReplaceAllString(text, "")
	text = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'").Replace(text)
	return strings.TrimSpace(text)
}
