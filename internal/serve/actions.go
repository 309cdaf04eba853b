// Package serve starts the HTTP API.
package serve

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/shopaudit/internal/audit"
	"github.com/dtnitsch/shopaudit/internal/server"
	"github.com/dtnitsch/shopaudit/models"
)

// ServeAction loads config, wires the audit service and serves the
// API until SIGINT/SIGTERM.
func ServeAction(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if addr := c.String("listen"); addr != "" {
		cfg.ListenAddr = addr
	}

	svc, cleanup, err := audit.NewService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(svc, logger).Routes(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
