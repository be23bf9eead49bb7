package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/config"
	"github.com/c360studio/casebridge/server"
)

func serveCmd(logLevel *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translation HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*logLevel)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, logger).Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	return cmd
}

// loadConfig loads layered configuration and builds the process
// logger. A --log-level flag wins over config and environment.
func loadConfig(logLevel string) (*config.Config, *slog.Logger, error) {
	bootstrap := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.NewLoader(bootstrap).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
