package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "casebridge.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/casebridge"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/casebridge/config.yaml)
// 3. Project config (casebridge.yaml in the working directory)
// 4. Environment variables (CASEBRIDGE_LISTEN, CASEBRIDGE_MAX_UPLOAD_BYTES, CASEBRIDGE_LOG_LEVEL)
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfig, err := LoadFromFile(userConfigPath); err == nil {
		l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
		config.Merge(userConfig)
	} else if !errors.Is(err, os.ErrNotExist) {
		l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
	}

	if projectConfig, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("Loaded project config", slog.String("path", ProjectConfigFile))
		config.Merge(projectConfig)
	} else if errors.Is(err, os.ErrNotExist) {
		l.logger.Debug("No project config found")
	} else {
		l.logger.Warn("Failed to load project config", slog.String("path", ProjectConfigFile), slog.String("error", err.Error()))
	}

	l.applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) applyEnv(config *Config) {
	if listen := os.Getenv("CASEBRIDGE_LISTEN"); listen != "" {
		config.Server.Listen = listen
	}
	if raw := os.Getenv("CASEBRIDGE_MAX_UPLOAD_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			config.Server.MaxUploadBytes = n
		} else {
			l.logger.Warn("Ignoring invalid CASEBRIDGE_MAX_UPLOAD_BYTES", slog.String("value", raw))
		}
	}
	if level := os.Getenv("CASEBRIDGE_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
