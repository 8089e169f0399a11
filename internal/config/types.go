// Package config provides configuration loading for chatterd.
package config

import (
	"fmt"
	"time"

	"github.com/fyrsmithlabs/chatterd/internal/logging"
)

// Duration wraps time.Duration for text unmarshaling (YAML, env vars).
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("duration cannot be negative: %s", text)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration().String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config is the root chatterd configuration.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Logging logging.Config `koanf:"logging"`
	Dialog  DialogConfig   `koanf:"dialog"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
	// RateLimit is the per-client request rate (requests/second) on the
	// chat API. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit"`
}

// DialogConfig holds conversation engine settings.
type DialogConfig struct {
	// HistorySize is the number of turns retained per session.
	HistorySize int `koanf:"history_size"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server rate limit cannot be negative, got %g", c.Server.RateLimit)
	}
	if c.Dialog.HistorySize < 1 {
		return fmt.Errorf("dialog history size must be positive, got %d", c.Dialog.HistorySize)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
