package mimekit

import (
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Number of leading bytes to read for signature matching. Must be at
	// least the detector's longest signature span (12 for the built-in
	// table). Zero selects the default.
	SniffLen int `env:"MIMEKIT_SNIFF_LEN,default:12"`

	// Remote fetch configuration
	HTTPTimeout int    `env:"MIMEKIT_HTTP_TIMEOUT,default:30"` // seconds; negative disables
	UserAgent   string `env:"MIMEKIT_USER_AGENT,default:mimekit/1.0"`

	// DisableRangeRequests sends bare GET requests instead of asking the
	// server for the leading byte range. Only the sniff prefix is read
	// from the body either way.
	DisableRangeRequests bool `env:"MIMEKIT_DISABLE_RANGE_REQUESTS,default:false"`

	// LegacyExtensions keeps query strings and fragments when deriving
	// an extension from a URL, so "a.jpg?x=1" derives "jpg?x=1" and
	// fails lookup instead of deriving "jpg".
	LegacyExtensions bool `env:"MIMEKIT_LEGACY_EXTENSIONS,default:false"`

	// Detection cache
	CacheEnabled bool `env:"MIMEKIT_CACHE_ENABLED,default:false"`
	CacheTTL     int  `env:"MIMEKIT_CACHE_TTL,default:300"` // seconds; 0 means no expiry

	// Extra extension mappings in mime.types format. Loaded entries take
	// precedence over the built-in table.
	TypesFile      string `env:"MIMEKIT_TYPES_FILE"`
	WatchTypesFile bool   `env:"MIMEKIT_WATCH_TYPES_FILE,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sniffLen applies the default for a zero value.
func (c *Config) sniffLen() int {
	if c.SniffLen <= 0 {
		return defaultSniffLen
	}
	return c.SniffLen
}

// httpTimeout converts the configured seconds to a client timeout.
// Zero selects the default; negative means no timeout at all.
func (c *Config) httpTimeout() time.Duration {
	if c.HTTPTimeout < 0 {
		return 0
	}
	if c.HTTPTimeout == 0 {
		return defaultHTTPTimeout
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) userAgent() string {
	if c.UserAgent == "" {
		return defaultUserAgent
	}
	return c.UserAgent
}

func (c *Config) cacheTTL() time.Duration {
	if c.CacheTTL <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTL) * time.Second
}

const (
	defaultSniffLen    = 12
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "mimekit/1.0"
)
