package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/core"
	"github.com/agenthands/resumegraph/internal/core/model"
	"github.com/agenthands/resumegraph/internal/document"
)

// UploadResumes ingests every file in the multipart field "files" in the order sent.
func (s *Server) UploadResumes(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form with field 'files'"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	log := requestLog(s.Logger, c)
	status := http.StatusOK
	results := make([]model.IngestResult, 0, len(files))
	for _, fh := range files {
		doc, err := s.readUpload(fh)
		if err != nil {
			log.Warn("unreadable upload", zap.String("file", fh.Filename), zap.Error(err))
			results = append(results, model.IngestResult{
				Source: fh.Filename,
				Status: model.StatusUnreadable,
				Error:  err.Error(),
			})
			continue
		}

		res, err := s.Engine.Ingest(c.Request.Context(), doc.Name, doc.Pages)
		if err != nil && !core.IsSkip(err) {
			_ = c.Error(err)
			status = http.StatusBadGateway
		}
		results = append(results, res)
	}

	c.JSON(status, gin.H{"results": results})
}

func (s *Server) readUpload(fh *multipart.FileHeader) (document.Document, error) {
	if s.maxUploadBytes > 0 && fh.Size > s.maxUploadBytes {
		return document.Document{}, fmt.Errorf("file is %d bytes, limit is %d", fh.Size, s.maxUploadBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return document.Document{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return document.Extract(fh.Filename, data)
}

type SearchRequest struct {
	Skills         []string `json:"skills" binding:"required"`
	Summarize      *bool    `json:"summarize"`
	IncludeContent bool     `json:"include_content"`
}

func (s *Server) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	candidates, err := s.Engine.Search(c.Request.Context(), core.SearchRequest{
		Skills:         req.Skills,
		Summarize:      req.Summarize,
		IncludeContent: req.IncludeContent,
	})
	if err != nil {
		s.fail(c, "search failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (s *Server) ListCandidates(c *gin.Context) {
	candidates, err := s.Engine.ListCandidates(c.Request.Context())
	if err != nil {
		s.fail(c, "failed to list candidates", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (s *Server) GetCandidate(c *gin.Context) {
	detail, err := s.Engine.GetCandidate(c.Request.Context(), c.Param("hash"))
	if err != nil {
		s.fail(c, "failed to load candidate", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) Stats(c *gin.Context) {
	stats, err := s.Engine.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, "failed to read stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) ClearGraph(c *gin.Context) {
	if err := s.Engine.Clear(c.Request.Context()); err != nil {
		s.fail(c, "failed to clear graph", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// fail maps engine errors onto status codes. Server-side failures are logged; the client only
// sees the message.
func (s *Server) fail(c *gin.Context, msg string, err error) {
	var storeErr *core.StoreWriteError
	switch {
	case errors.Is(err, core.ErrEmptySkillSet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &storeErr):
		_ = c.Error(err)
		requestLog(s.Logger, c).Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	default:
		_ = c.Error(err)
		requestLog(s.Logger, c).Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
