// Package main is the resumegraph command: an HTTP server plus one-shot graph operations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/app"
)

var rootCmd = &cobra.Command{
	Use:          "resumegraph",
	Short:        "Resume ingestion and skill matching over a property graph",
	Long:         "resumegraph extracts candidate profiles from resumes with an LLM, stores them in Neo4j or Memgraph, and finds candidates holding every requested skill.",
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp loads configuration, connects, runs fn and closes the connections.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Warn("failed to close graph driver", zap.Error(err))
		}
	}()

	return fn(a)
}
