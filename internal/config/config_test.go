package config

import (
	"strings"
	"testing"
	"time"
)

var allEnvVars = []string{
	"FOREX_SYMBOLS",
	"YFIN_BASE_URL",
	"YFIN_CRUMB",
	"YFIN_COOKIE",
	"BATCH_SIZE",
	"REQUESTS_PER_SECOND",
	"FETCH_TIMEOUT",
	"REQUEST_TIMEOUT",
	"RETRY_COUNT",
	"LOG_LEVEL",
	"METRICS_ADDR",
}

// clearEnv blanks every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Success(t *testing.T) {
	clearEnv(t)

	envVars := map[string]string{
		"FOREX_SYMBOLS":       "EURUSD=X,GBPUSD=X,JPY=X",
		"YFIN_BASE_URL":       "https://test.yahoo.local",
		"YFIN_CRUMB":          "crumb123",
		"YFIN_COOKIE":         "A3=d=abc",
		"BATCH_SIZE":          "2",
		"REQUESTS_PER_SECOND": "5",
		"FETCH_TIMEOUT":       "10s",
		"REQUEST_TIMEOUT":     "2s",
		"RETRY_COUNT":         "0",
		"LOG_LEVEL":           "debug",
		"METRICS_ADDR":        ":9090",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"YFinBaseURL", cfg.YFinBaseURL, "https://test.yahoo.local"},
		{"YFinCrumb", cfg.YFinCrumb, "crumb123"},
		{"YFinCookie", cfg.YFinCookie, "A3=d=abc"},
		{"LogLevel", cfg.LogLevel, "debug"},
		{"MetricsAddr", cfg.MetricsAddr, ":9090"},
		{"Symbols", strings.Join(cfg.Symbols, "|"), "EURUSD=X|GBPUSD=X|JPY=X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.BatchSize != 2 {
		t.Errorf("BatchSize = %d, want 2", cfg.BatchSize)
	}
	if cfg.RequestsPerSecond != 5 {
		t.Errorf("RequestsPerSecond = %v, want 5", cfg.RequestsPerSecond)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
	if cfg.RetryCount != 0 {
		t.Errorf("RetryCount = %d, want 0", cfg.RetryCount)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOREX_SYMBOLS", "EURUSD=X")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.YFinBaseURL != "https://query1.finance.yahoo.com" {
		t.Errorf("YFinBaseURL = %q, want https://query1.finance.yahoo.com", cfg.YFinBaseURL)
	}
	if cfg.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.BatchSize)
	}
	if cfg.RequestsPerSecond != 2 {
		t.Errorf("RequestsPerSecond = %v, want 2", cfg.RequestsPerSecond)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, want 30s", cfg.FetchTimeout)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.RetryCount != 3 {
		t.Errorf("RetryCount = %d, want 3", cfg.RetryCount)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Session() != nil {
		t.Error("Session() should be nil without crumb or cookie")
	}
}

func TestLoad_TrimsSymbols(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOREX_SYMBOLS", " EURUSD=X , ,GBPUSD=X ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got := strings.Join(cfg.Symbols, "|"); got != "EURUSD=X|GBPUSD=X" {
		t.Errorf("Symbols = %q, want EURUSD=X|GBPUSD=X", got)
	}
}

func TestLoad_SymbolArgumentsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FOREX_SYMBOLS", "EURUSD=X")

	cfg, err := Load(" JPY=X", "GBPUSD=X", "")
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got := strings.Join(cfg.Symbols, "|"); got != "JPY=X|GBPUSD=X" {
		t.Errorf("Symbols = %q, want JPY=X|GBPUSD=X", got)
	}
}

func TestLoad_SymbolArgumentsWithoutEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("AUDUSD=X")
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got := strings.Join(cfg.Symbols, "|"); got != "AUDUSD=X" {
		t.Errorf("Symbols = %q, want AUDUSD=X", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    map[string]string
		wantErrText string
	}{
		{
			name:        "missing symbols",
			setupEnv:    map[string]string{},
			wantErrText: "missing required configuration: FOREX_SYMBOLS",
		},
		{
			name:        "blank symbols",
			setupEnv:    map[string]string{"FOREX_SYMBOLS": " , "},
			wantErrText: "FOREX_SYMBOLS",
		},
		{
			name:        "zero batch size",
			setupEnv:    map[string]string{"FOREX_SYMBOLS": "EURUSD=X", "BATCH_SIZE": "0"},
			wantErrText: "BATCH_SIZE",
		},
		{
			name:        "negative timeout",
			setupEnv:    map[string]string{"FOREX_SYMBOLS": "EURUSD=X", "FETCH_TIMEOUT": "-1s"},
			wantErrText: "FETCH_TIMEOUT",
		},
		{
			name:        "zero request timeout",
			setupEnv:    map[string]string{"FOREX_SYMBOLS": "EURUSD=X", "REQUEST_TIMEOUT": "0s"},
			wantErrText: "REQUEST_TIMEOUT",
		},
		{
			name:        "negative retry count",
			setupEnv:    map[string]string{"FOREX_SYMBOLS": "EURUSD=X", "RETRY_COUNT": "-1"},
			wantErrText: "RETRY_COUNT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.setupEnv {
				t.Setenv(key, value)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErrText) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrText)
			}
		})
	}
}

func TestConfig_Session(t *testing.T) {
	cfg := &Config{YFinCrumb: "crumb123"}

	session := cfg.Session()
	if session == nil {
		t.Fatal("Session() = nil, want a session")
	}
	if session.Crumb != "crumb123" || session.Cookie != "" {
		t.Errorf("Session() = %+v, want crumb only", session)
	}
}
