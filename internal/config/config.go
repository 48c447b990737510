// Package config defines the viewer configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and OLYMPIA_* env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIBaseURL is the root of the olympic-games API.
	APIBaseURL string `koanf:"api_base_url"`

	// RequestTimeoutMS bounds each upstream request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// UpstreamRPS and UpstreamBurst shape the upstream rate limiter.
	UpstreamRPS   float64 `koanf:"upstream_rps"`
	UpstreamBurst int     `koanf:"upstream_burst"`

	// UserAgent is sent on every upstream request.
	UserAgent string `koanf:"user_agent"`

	// PagerWindow is the number of page buttons under paginated lists. Must be odd.
	PagerWindow int `koanf:"pager_window"`

	// GamesStartPage is the page the games tab links to.
	GamesStartPage int `koanf:"games_start_page"`

	// VisitorTTLSeconds is how long an idle visitor keeps its view state.
	VisitorTTLSeconds int `koanf:"visitor_ttl_seconds"`

	// VisitorSweepSeconds is the eviction sweep interval.
	VisitorSweepSeconds int `koanf:"visitor_sweep_seconds"`

	// SentryDSN enables error reporting when set.
	SentryDSN string `koanf:"sentry_dsn"`

	// Environment tags error reports, e.g. "production".
	Environment string `koanf:"environment"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":8080",
		APIBaseURL:          "https://apis.codante.io/olympic-games",
		RequestTimeoutMS:    10_000,
		UpstreamRPS:         5,
		UpstreamBurst:       10,
		UserAgent:           "olympia/1.0",
		PagerWindow:         9,
		GamesStartPage:      1,
		VisitorTTLSeconds:   1800,
		VisitorSweepSeconds: 60,
		Environment:         "development",
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// VisitorTTL returns VisitorTTLSeconds as a duration.
func (c *Config) VisitorTTL() time.Duration {
	return time.Duration(c.VisitorTTLSeconds) * time.Second
}

// VisitorSweep returns VisitorSweepSeconds as a duration.
func (c *Config) VisitorSweep() time.Duration {
	return time.Duration(c.VisitorSweepSeconds) * time.Second
}
