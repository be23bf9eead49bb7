// Package config provides configuration loading and management for
// Casebridge.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Casebridge configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP service
type ServerConfig struct {
	// Listen is the address the HTTP server binds to
	Listen string `yaml:"listen"`
	// MaxUploadBytes caps the size of uploaded files
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// ShutdownTimeout is how long to wait for in-flight requests on shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// UIConfig configures the static UI page
type UIConfig struct {
	// Dir is the directory holding index.html (empty = embedded fallback page)
	Dir string `yaml:"dir"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `yaml:"level"`
	// Format is the handler format: text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          ":8000",
			MaxUploadBytes:  10 << 20, // 10 MB
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// Merge overlays non-zero fields from other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Server.Listen != "" {
		c.Server.Listen = other.Server.Listen
	}
	if other.Server.MaxUploadBytes > 0 {
		c.Server.MaxUploadBytes = other.Server.MaxUploadBytes
	}
	if other.Server.ShutdownTimeout > 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}
	if other.UI.Dir != "" {
		c.UI.Dir = other.UI.Dir
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
