package mimekit

import "net/http"

// Option configures a Resolver at construction time
type Option func(*Options)

// Options contains all constructor options for New
type Options struct {
	// Signatures replaces the default signature table.
	Signatures []SignatureGroup

	// Extensions are extra extension mappings placed ahead of the
	// built-in table; earlier entries win in both lookup directions.
	Extensions []ExtensionMapping

	// Overrides force a MIME type for sources whose base name matches a
	// glob pattern, before any content is read.
	Overrides []OverrideRule

	// Fetchers routes "<scheme>://" sources to custom fetchers.
	Fetchers map[string]Fetcher

	// HTTPClient replaces the client used for http and https sources.
	HTTPClient *http.Client

	// Cache stores detections. Setting it implies caching even when the
	// config leaves CacheEnabled off.
	Cache Cache
}

// WithSignatures replaces the default signature table with the given
// groups, in the given order
func WithSignatures(groups ...SignatureGroup) Option {
	return func(o *Options) {
		o.Signatures = append(o.Signatures, groups...)
	}
}

// WithExtensions places extra extension mappings ahead of the built-in
// table
func WithExtensions(mappings ...ExtensionMapping) Option {
	return func(o *Options) {
		o.Extensions = append(o.Extensions, mappings...)
	}
}

// WithOverride forces mimeType for sources whose base name matches the
// glob pattern
func WithOverride(pattern, mimeType string) Option {
	return func(o *Options) {
		o.Overrides = append(o.Overrides, OverrideRule{Pattern: pattern, MIME: mimeType})
	}
}

// WithFetcher routes sources with a "<scheme>://" prefix to f
func WithFetcher(scheme string, f Fetcher) Option {
	return func(o *Options) {
		if o.Fetchers == nil {
			o.Fetchers = make(map[string]Fetcher)
		}
		o.Fetchers[scheme] = f
	}
}

// WithHTTPClient replaces the HTTP client used for remote sources
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithCache stores detections in the given cache
func WithCache(c Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}
