package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/resumegraph/internal/app"
	"github.com/agenthands/resumegraph/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(a *app.App) error {
		if !a.Config.Log.Development {
			gin.SetMode(gin.ReleaseMode)
		}
		if err := a.Engine.BuildIndices(ctx); err != nil {
			a.Logger.Warn("failed to build indices", zap.Error(err))
		}

		srv := &http.Server{
			Addr:              ":" + a.Config.Server.Port,
			Handler:           server.NewServer(a.Engine, a.Config, a.Logger.Named("http")).SetupRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.Logger.Info("starting server", zap.String("addr", srv.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		a.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
