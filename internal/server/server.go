package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core"
)

type Server struct {
	Engine *core.Engine
	Logger *zap.Logger

	allowOrigins   []string
	maxUploadBytes int64
}

func NewServer(engine *core.Engine, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Engine:         engine,
		Logger:         logger,
		allowOrigins:   cfg.Server.AllowOrigins,
		maxUploadBytes: int64(cfg.Ingest.MaxFileMB) << 20,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.Logger), gin.Recovery())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", s.Health)
	r.POST("/resumes", s.UploadResumes)
	r.POST("/search", s.Search)
	r.GET("/candidates", s.ListCandidates)
	r.GET("/candidates/:hash", s.GetCandidate)
	r.GET("/stats", s.Stats)
	r.DELETE("/graph", s.ClearGraph)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range s.allowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(s.allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.allowOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
