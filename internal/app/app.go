// Package app wires configuration into a running engine.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/resumegraph/internal/config"
	"github.com/agenthands/resumegraph/internal/core"
	"github.com/agenthands/resumegraph/internal/driver"
	"github.com/agenthands/resumegraph/internal/llm"
)

// NewLogger builds a JSON production logger, or a console logger in development mode.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// LoadConfig reads the config file named by CONFIG_PATH (or the default location) and applies
// environment overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(config.Path())
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type App struct {
	Config *config.Config
	Driver driver.GraphDriver
	LLM    llm.LLMClient
	Engine *core.Engine
	Logger *zap.Logger
}

// New connects to the graph store and the oracle. Close releases the store connection.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	d, err := driver.NewNeo4jDriver(ctx, driver.Options{
		URI:      cfg.Graph.URI,
		User:     cfg.Graph.User,
		Password: cfg.Graph.Password,
		Database: cfg.Graph.Database,
		Dialect:  cfg.Graph.Dialect,
	}, logger.Named("driver"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to graph store at %s: %w", cfg.Graph.URI, err)
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		_ = d.Close(ctx)
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	engine, err := core.NewEngine(d, llmClient, cfg, logger)
	if err != nil {
		_ = d.Close(ctx)
		closeLLM(llmClient)
		return nil, err
	}

	logger.Info("engine ready",
		zap.String("graph", cfg.Graph.URI),
		zap.String("dialect", cfg.Graph.Dialect),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.String("mode", cfg.Extraction.Mode))

	return &App{Config: cfg, Driver: d, LLM: llmClient, Engine: engine, Logger: logger}, nil
}

func (a *App) Close(ctx context.Context) error {
	_ = a.Logger.Sync()
	closeLLM(a.LLM)
	return a.Driver.Close(ctx)
}

// closeLLM releases clients that hold a connection, such as the Gemini one.
func closeLLM(c llm.LLMClient) {
	if closer, ok := c.(io.Closer); ok {
		_ = closer.Close()
	}
}
