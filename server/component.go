// Package server provides the Casebridge HTTP service: the two
// translation endpoints, file upload with tabular reshaping, the
// field-mapping reference, and operational endpoints (health, metrics,
// UI page).
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/c360studio/casebridge/config"
	"github.com/c360studio/casebridge/ingest"
)

// Component implements the HTTP service. Handlers hold no mutable
// state beyond the metrics registry: every request is an isolated
// translation call.
type Component struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
	ingest  *ingest.Registry
}

// New constructs the HTTP component. A nil logger falls back to
// slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Component {
	if logger == nil {
		logger = slog.Default()
	}
	return &Component{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
		ingest:  ingest.DefaultRegistry,
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (c *Component) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("", mux)

	srv := &http.Server{
		Addr:    c.cfg.Server.Listen,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("HTTP server listening", slog.String("addr", c.cfg.Server.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.Server.ShutdownTimeout)
		defer cancel()
		c.logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	}
}
