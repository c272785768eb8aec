package mimekit

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create Resolver instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Resolver instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Resolver instance using the builder's prefix
func (b *Builder) New(opts ...Option) (*Resolver, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Init initializes the global resolver instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultResolver, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a new resolver instance with given config
func New(cfg *Config, opts ...Option) (*Resolver, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	// Validation
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	// Build the signature table
	detector := defaultDetector
	if len(options.Signatures) > 0 {
		var err error
		detector, err = NewDetector(options.Signatures...)
		if err != nil {
			return nil, err
		}
	}

	sniffLen := cfg.sniffLen()
	if sniffLen < detector.MaxSpan() {
		return nil, fmt.Errorf("%w: sniff length %d is shorter than the longest signature span %d",
			ErrInvalidConfig, sniffLen, detector.MaxSpan())
	}

	overrides, err := compileOverrides(options.Overrides)
	if err != nil {
		return nil, err
	}

	// Build the extension table. Types-file entries sit in front of the
	// base entries so an operator-managed file wins lookups, and reloads
	// re-layer onto the same base.
	baseEntries := make([]ExtensionMapping, 0, len(options.Extensions)+len(builtinExtensions))
	baseEntries = append(baseEntries, options.Extensions...)
	baseEntries = append(baseEntries, builtinExtensions...)

	entries := baseEntries
	if cfg.TypesFile != "" {
		loaded, err := LoadTypesFile(cfg.TypesFile)
		if err != nil {
			return nil, err
		}
		entries = append(loaded, baseEntries...)
	}

	// Create fetchers using the factory registry
	fetchers := make(map[string]Fetcher)
	for _, scheme := range RegisteredSchemes() {
		f, err := CreateFetcher(scheme, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher for %s: %w", scheme, err)
		}
		fetchers[scheme] = f
	}
	if options.HTTPClient != nil {
		for _, scheme := range []string{"http", "https"} {
			if hf, ok := fetchers[scheme].(*HTTPFetcher); ok {
				hf.client = options.HTTPClient
			}
		}
	}
	for scheme, f := range options.Fetchers {
		fetchers[scheme] = f
	}

	// Wire the cache if enabled
	cache := options.Cache
	if cache == nil && cfg.CacheEnabled {
		cache = NewMemoryCache()
	}

	r := &Resolver{
		detector:         detector,
		sniffLen:         sniffLen,
		fetchers:         fetchers,
		overrides:        overrides,
		exts:             newExtensionSet(entries),
		baseEntries:      baseEntries,
		cache:            cache,
		cacheTTL:         cfg.cacheTTL(),
		keyBase:          cacheKeyBase(cfg, detector, options.Overrides, entries),
		legacyExtensions: cfg.LegacyExtensions,
		typesFile:        cfg.TypesFile,
	}

	// Watch the types file if configured
	if cfg.TypesFile != "" && cfg.WatchTypesFile {
		w, err := newTypesWatcher(cfg.TypesFile, r.reloadTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to watch types file: %w", err)
		}
		r.watcher = w
	}

	return r, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.SniffLen < 0 {
		return fmt.Errorf("%w: sniff length cannot be negative", ErrInvalidConfig)
	}

	if cfg.CacheTTL < 0 {
		return fmt.Errorf("%w: cache TTL cannot be negative", ErrInvalidConfig)
	}

	if cfg.WatchTypesFile && cfg.TypesFile == "" {
		return fmt.Errorf("%w: watching requires a types file path", ErrInvalidConfig)
	}

	return nil
}

// cacheKeyBase derives a namespace for cache keys from everything that
// shapes a detection, so resolvers with different tables can share one
// cache without colliding.
func cacheKeyBase(cfg *Config, detector *Detector, rules []OverrideRule, entries []ExtensionMapping) string {
	h := xxhash.New()
	fmt.Fprintf(h, "sig:%016x;", detector.Fingerprint())
	for _, r := range rules {
		fmt.Fprintf(h, "ovr:%s>%s;", r.Pattern, r.MIME)
	}
	for _, e := range entries {
		fmt.Fprintf(h, "ext:%s=%s;", e.Ext, e.MIME)
	}
	fmt.Fprintf(h, "legacy:%t", cfg.LegacyExtensions)
	return fmt.Sprintf("mimekit:%016x:", h.Sum64())
}

// Default returns the global instance, initializing if needed with error handling
func Default() (*Resolver, error) {
	if defaultResolver == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultResolver, nil
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv() (*Resolver, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global instance (for testing)
func Reset() {
	if defaultResolver != nil {
		_ = defaultResolver.Close()
	}
	defaultResolver = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Fallback instance used by the package-level helpers when the
// environment configuration cannot be loaded. Built from the built-in
// tables only, so it cannot fail to construct.
var (
	fallbackResolver *Resolver
	fallbackOnce     sync.Once
)

func defaultOrFallback() *Resolver {
	if err := Init(); err == nil {
		return defaultResolver
	}

	fallbackOnce.Do(func() {
		if r, err := New(&Config{}); err == nil {
			fallbackResolver = r
			return
		}
		fallbackResolver = &Resolver{
			detector: defaultDetector,
			sniffLen: defaultSniffLen,
			fetchers: map[string]Fetcher{
				"file":  NewFileFetcher(),
				"http":  NewHTTPFetcher(nil),
				"https": NewHTTPFetcher(nil),
			},
			exts: builtinExtensionSet,
		}
	})
	return fallbackResolver
}

// GetMimeType resolves source with the global resolver and returns its
// MIME type. The global is initialized from the environment on first
// use; when that fails the built-in tables serve instead, so this
// function always returns a usable MIME type.
func GetMimeType(ctx context.Context, source string) string {
	return defaultOrFallback().GetMimeType(ctx, source)
}

// Resolve resolves source with the global resolver and reports how the
// answer was derived.
func Resolve(ctx context.Context, source string) Detection {
	return defaultOrFallback().Resolve(ctx, source)
}

// IsDocument resolves source with the global resolver and reports
// whether the result is a document type.
func IsDocument(ctx context.Context, source string) bool {
	return defaultOrFallback().IsDocument(ctx, source)
}

// IsImage resolves source with the global resolver and reports whether
// the result is an image type.
func IsImage(ctx context.Context, source string) bool {
	return defaultOrFallback().IsImage(ctx, source)
}

// IsAudio resolves source with the global resolver and reports whether
// the result is an audio type.
func IsAudio(ctx context.Context, source string) bool {
	return defaultOrFallback().IsAudio(ctx, source)
}

// IsVideo resolves source with the global resolver and reports whether
// the result is a video type.
func IsVideo(ctx context.Context, source string) bool {
	return defaultOrFallback().IsVideo(ctx, source)
}
