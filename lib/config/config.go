// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServiceURL is the capability service address used when
// neither the config file nor the --service-url flag names one.
const DefaultServiceURL = "http://localhost:8000"

// Config is the roster client configuration.
type Config struct {
	// ServiceURL is the base URL of the capability service.
	ServiceURL string `yaml:"service_url"`

	// RequestTimeout bounds each service request, in time.ParseDuration
	// format. Default: "10s".
	RequestTimeout string `yaml:"request_timeout"`

	// RefreshInterval enables periodic background refresh of the
	// capability snapshot when positive, in time.ParseDuration format.
	// Default: "0s" (fetch once at startup, manual refresh thereafter).
	RefreshInterval string `yaml:"refresh_interval"`

	// LogFile receives JSON log records for post-mortem debugging.
	// Empty disables file logging.
	LogFile string `yaml:"log_file"`

	// LogLevel is the minimum level written to the log file:
	// debug, info, warn, or error. Default: "info".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration. Used as the base before
// a config file is merged over it, and as-is when no file is given.
func Default() *Config {
	return &Config{
		ServiceURL:      DefaultServiceURL,
		RequestTimeout:  "10s",
		RefreshInterval: "0s",
		LogFile:         "",
		LogLevel:        "info",
	}
}

// Load loads configuration from the ROSTER_CONFIG environment
// variable. Unlike flags, the variable is optional: when unset, the
// defaults apply (the client needs nothing beyond a reachable service
// URL, which has a development default).
func Load() (*Config, error) {
	path := os.Getenv("ROSTER_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit file path, merging it
// over the defaults. An explicitly named file must exist; a missing
// path is an error rather than a silent fallback to defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// fields where environment-dependent values are useful: the service
// URL (per-developer ports) and the log file path (${HOME}).
func (c *Config) expandVariables() {
	c.ServiceURL = expandVars(c.ServiceURL)
	c.LogFile = expandVars(c.LogFile)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported at once via errors.Join rather than one per run.
func (c *Config) Validate() error {
	var errs []error

	if c.ServiceURL == "" {
		errs = append(errs, fmt.Errorf("service_url is required"))
	} else if parsed, err := url.Parse(c.ServiceURL); err != nil {
		errs = append(errs, fmt.Errorf("service_url %q: %w", c.ServiceURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Errorf("service_url %q must be http or https", c.ServiceURL))
	}

	if timeout, err := time.ParseDuration(c.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("request_timeout %q: %w", c.RequestTimeout, err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout))
	}

	if interval, err := time.ParseDuration(c.RefreshInterval); err != nil {
		errs = append(errs, fmt.Errorf("refresh_interval %q: %w", c.RefreshInterval, err))
	} else if interval < 0 {
		errs = append(errs, fmt.Errorf("refresh_interval must not be negative, got %s", c.RefreshInterval))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeoutDuration returns the parsed request timeout. Call
// Validate first; an unparseable value falls back to the default.
func (c *Config) RequestTimeoutDuration() time.Duration {
	timeout, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return timeout
}

// RefreshIntervalDuration returns the parsed refresh interval, zero
// when auto-refresh is disabled.
func (c *Config) RefreshIntervalDuration() time.Duration {
	interval, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 0
	}
	return interval
}

// ParseLevel converts a config log level string to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be debug, info, warn, or error, got %q", level)
	}
}
