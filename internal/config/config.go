package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"forexquote/internal/forex"
)

// Config holds all configuration for the forex quote client.
type Config struct {
	// Quote API endpoint (configurable for testing)
	YFinBaseURL string `mapstructure:"yfin_base_url"`

	// Optional session handle for the quote API
	YFinCrumb  string `mapstructure:"yfin_crumb"`
	YFinCookie string `mapstructure:"yfin_cookie"`

	// Currency pairs to quote, e.g. EURUSD=X
	Symbols []string `mapstructure:"forex_symbols"`

	BatchSize         int           `mapstructure:"batch_size"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`

	// Per-request HTTP settings for the quote backend
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RetryCount     int           `mapstructure:"retry_count"`

	LogLevel    string `mapstructure:"log_level"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Session returns the configured session handle, or nil when neither
// crumb nor cookie is set.
func (c *Config) Session() *forex.Session {
	if c.YFinCrumb == "" && c.YFinCookie == "" {
		return nil
	}
	return &forex.Session{Crumb: c.YFinCrumb, Cookie: c.YFinCookie}
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values. Non-empty
// symbols passed to Load take precedence over both.
//
// Expected environment variables:
//   - FOREX_SYMBOLS (comma separated)
//   - YFIN_BASE_URL (optional, defaults to production)
//   - YFIN_CRUMB, YFIN_COOKIE (optional)
//   - BATCH_SIZE (optional, defaults to 10)
//   - REQUESTS_PER_SECOND (optional, defaults to 2; 0 disables limiting)
//   - FETCH_TIMEOUT (optional, defaults to 30s)
//   - REQUEST_TIMEOUT (optional, defaults to 10s)
//   - RETRY_COUNT (optional, defaults to 3; 0 disables retries)
//   - LOG_LEVEL (optional, defaults to info)
//   - METRICS_ADDR (optional, e.g. :9090)
func Load(symbols ...string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("yfin_base_url", "https://query1.finance.yahoo.com")
	v.SetDefault("batch_size", 10)
	v.SetDefault("requests_per_second", 2.0)
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("retry_count", 3)
	v.SetDefault("log_level", "info")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.forexquote")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	for key, env := range map[string]string{
		"yfin_base_url":       "YFIN_BASE_URL",
		"yfin_crumb":          "YFIN_CRUMB",
		"yfin_cookie":         "YFIN_COOKIE",
		"forex_symbols":       "FOREX_SYMBOLS",
		"batch_size":          "BATCH_SIZE",
		"requests_per_second": "REQUESTS_PER_SECOND",
		"fetch_timeout":       "FETCH_TIMEOUT",
		"request_timeout":     "REQUEST_TIMEOUT",
		"retry_count":         "RETRY_COUNT",
		"log_level":           "LOG_LEVEL",
		"metrics_addr":        "METRICS_ADDR",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if len(symbols) > 0 {
		v.Set("forex_symbols", symbols)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Symbols = cleanSymbols(config.Symbols)

	var missing []string
	if len(config.Symbols) == 0 {
		missing = append(missing, "FOREX_SYMBOLS")
	}
	if config.YFinBaseURL == "" {
		missing = append(missing, "YFIN_BASE_URL")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if config.BatchSize <= 0 {
		return nil, fmt.Errorf("invalid BATCH_SIZE %d: must be positive", config.BatchSize)
	}
	if config.FetchTimeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT %s: must be positive", config.FetchTimeout)
	}
	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %s: must be positive", config.RequestTimeout)
	}
	if config.RetryCount < 0 {
		return nil, fmt.Errorf("invalid RETRY_COUNT %d: must not be negative", config.RetryCount)
	}

	return config, nil
}

// cleanSymbols trims whitespace and drops empty entries
func cleanSymbols(symbols []string) []string {
	var out []string
	for _, s := range symbols {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
