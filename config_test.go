package mimekit

import (
	"testing"
	"time"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				SniffLen:    12,
				HTTPTimeout: 30,
				UserAgent:   "mimekit/1.0",
				CacheTTL:    300,
			},
		},
		{
			name: "sniffing configuration",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_SNIFF_LEN":              "64",
				"BEAVER_MIMEKIT_DISABLE_RANGE_REQUESTS": "true",
				"BEAVER_MIMEKIT_LEGACY_EXTENSIONS":      "true",
			},
			want: Config{
				SniffLen:             64,
				HTTPTimeout:          30,
				UserAgent:            "mimekit/1.0",
				DisableRangeRequests: true,
				LegacyExtensions:     true,
				CacheTTL:             300,
			},
		},
		{
			name: "remote fetch configuration",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_HTTP_TIMEOUT": "5",
				"BEAVER_MIMEKIT_USER_AGENT":   "probe/2.1",
			},
			want: Config{
				SniffLen:    12,
				HTTPTimeout: 5,
				UserAgent:   "probe/2.1",
				CacheTTL:    300,
			},
		},
		{
			name: "cache and types file configuration",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_CACHE_ENABLED":    "true",
				"BEAVER_MIMEKIT_CACHE_TTL":        "60",
				"BEAVER_MIMEKIT_TYPES_FILE":       "/etc/mime.types",
				"BEAVER_MIMEKIT_WATCH_TYPES_FILE": "true",
			},
			want: Config{
				SniffLen:       12,
				HTTPTimeout:    30,
				UserAgent:      "mimekit/1.0",
				CacheEnabled:   true,
				CacheTTL:       60,
				TypesFile:      "/etc/mime.types",
				WatchTypesFile: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if cfg.SniffLen != tt.want.SniffLen {
				t.Errorf("SniffLen = %v, want %v", cfg.SniffLen, tt.want.SniffLen)
			}
			if cfg.HTTPTimeout != tt.want.HTTPTimeout {
				t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, tt.want.HTTPTimeout)
			}
			if cfg.UserAgent != tt.want.UserAgent {
				t.Errorf("UserAgent = %v, want %v", cfg.UserAgent, tt.want.UserAgent)
			}
			if cfg.DisableRangeRequests != tt.want.DisableRangeRequests {
				t.Errorf("DisableRangeRequests = %v, want %v", cfg.DisableRangeRequests, tt.want.DisableRangeRequests)
			}
			if cfg.LegacyExtensions != tt.want.LegacyExtensions {
				t.Errorf("LegacyExtensions = %v, want %v", cfg.LegacyExtensions, tt.want.LegacyExtensions)
			}
			if cfg.CacheEnabled != tt.want.CacheEnabled {
				t.Errorf("CacheEnabled = %v, want %v", cfg.CacheEnabled, tt.want.CacheEnabled)
			}
			if cfg.CacheTTL != tt.want.CacheTTL {
				t.Errorf("CacheTTL = %v, want %v", cfg.CacheTTL, tt.want.CacheTTL)
			}
			if cfg.TypesFile != tt.want.TypesFile {
				t.Errorf("TypesFile = %v, want %v", cfg.TypesFile, tt.want.TypesFile)
			}
			if cfg.WatchTypesFile != tt.want.WatchTypesFile {
				t.Errorf("WatchTypesFile = %v, want %v", cfg.WatchTypesFile, tt.want.WatchTypesFile)
			}
		})
	}
}

func TestConfigSniffLen(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero selects default", 0, 12},
		{"explicit value", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SniffLen: tt.value}
			if got := cfg.sniffLen(); got != tt.want {
				t.Errorf("sniffLen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfigHTTPTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  time.Duration
	}{
		{"zero selects default", 0, 30 * time.Second},
		{"explicit seconds", 5, 5 * time.Second},
		{"negative disables", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{HTTPTimeout: tt.value}
			if got := cfg.httpTimeout(); got != tt.want {
				t.Errorf("httpTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigCacheTTL(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  time.Duration
	}{
		{"zero means no expiry", 0, 0},
		{"explicit seconds", 60, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CacheTTL: tt.value}
			if got := cfg.cacheTTL(); got != tt.want {
				t.Errorf("cacheTTL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigUserAgent(t *testing.T) {
	if got := (&Config{}).userAgent(); got != "mimekit/1.0" {
		t.Errorf("userAgent() = %q, want %q", got, "mimekit/1.0")
	}
	if got := (&Config{UserAgent: "probe/2.1"}).userAgent(); got != "probe/2.1" {
		t.Errorf("userAgent() = %q, want %q", got, "probe/2.1")
	}
}
