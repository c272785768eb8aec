package mimekit

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Resolver identifies the MIME type of local and remote sources. It
// consults override rules, then content signatures, then extension
// lookup, and terminates at DefaultMimeType. Resolution never fails:
// when a source cannot be read, the resolver degrades to the extension
// tier and reports the read error on the Detection instead.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	detector *Detector
	sniffLen int

	fetchers  map[string]Fetcher
	overrides []override

	mu   sync.RWMutex
	exts *extensionSet

	// baseEntries are the construction-time mappings (option entries
	// followed by built-ins) that a types-file reload is layered onto.
	baseEntries []ExtensionMapping

	cache    Cache
	cacheTTL time.Duration
	keyBase  string

	legacyExtensions bool

	typesFile string
	watcher   *typesWatcher
}

// Resolve identifies source and reports how the answer was derived.
func (r *Resolver) Resolve(ctx context.Context, source string) Detection {
	if mimeType, ok := matchOverride(r.overrides, baseName(source)); ok {
		return Detection{MIME: mimeType, Method: MethodOverride}
	}

	key := r.keyBase + source
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			if det, ok := v.(Detection); ok {
				return det
			}
		}
	}

	det := r.resolve(ctx, source)

	// Failed acquisitions are not cached so the next call retries the
	// read instead of pinning the fallback answer.
	if r.cache != nil && det.Err == nil {
		r.cache.Set(key, det, r.cacheTTL)
	}
	return det
}

// GetMimeType resolves source and returns its MIME type. Unreadable
// sources fall back to extension lookup and then to DefaultMimeType, so
// the result is always a usable MIME type.
func (r *Resolver) GetMimeType(ctx context.Context, source string) string {
	return r.Resolve(ctx, source).MIME
}

// GetMimeExtension returns the extension, with leading dot, for a MIME
// type using the resolver's effective table, loaded types files
// included. The first declared mapping for a type wins.
func (r *Resolver) GetMimeExtension(mimeType string) (string, bool) {
	return r.extensions().extensionByType(mimeType)
}

// TypeByExtension looks up a file extension, with or without the
// leading dot, in the resolver's effective table.
func (r *Resolver) TypeByExtension(ext string) (string, bool) {
	return r.extensions().typeByExtension(ext)
}

// Close stops the types-file watcher if one is running. It is safe to
// call on a resolver without a watcher, and safe to call twice.
func (r *Resolver) Close() error {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

func (r *Resolver) resolve(ctx context.Context, source string) Detection {
	buf, acqErr := r.fetcherFor(source).Fetch(ctx, source, r.sniffLen)
	if acqErr == nil {
		if mimeType, ok := r.detector.Detect(buf); ok {
			return Detection{MIME: mimeType, Method: MethodSignature}
		}
	}

	_, remote := sourceScheme(source)
	ext := deriveExtension(source, !r.legacyExtensions && remote)
	if mimeType, ok := r.extensions().typeByExtension(ext); ok {
		return Detection{MIME: mimeType, Method: MethodExtension, Err: acqErr}
	}
	return Detection{MIME: DefaultMimeType, Method: MethodDefault, Err: acqErr}
}

// fetcherFor routes a source to the fetcher registered for its scheme.
// Sources without a scheme, and sources whose scheme nothing claims,
// are treated as local paths.
func (r *Resolver) fetcherFor(source string) Fetcher {
	if scheme, ok := sourceScheme(source); ok {
		if f, ok := r.fetchers[scheme]; ok {
			return f
		}
	}
	return r.fetchers["file"]
}

func (r *Resolver) extensions() *extensionSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exts
}

// reloadTypes rebuilds the extension table from the types file. The
// previous table stays in place when the file is unreadable or
// malformed. Cached detections are dropped because extension fallbacks
// may now resolve differently.
func (r *Resolver) reloadTypes() {
	mappings, err := LoadTypesFile(r.typesFile)
	if err != nil {
		return
	}

	set := newExtensionSet(append(mappings, r.baseEntries...))
	r.mu.Lock()
	r.exts = set
	r.mu.Unlock()

	if r.cache != nil {
		r.cache.Clear()
	}
}

// sourceScheme extracts the "<scheme>://" prefix of source, lowercased.
func sourceScheme(source string) (string, bool) {
	idx := strings.Index(source, "://")
	if idx <= 0 {
		return "", false
	}
	scheme := source[:idx]
	for _, c := range scheme {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.':
		default:
			return "", false
		}
	}
	return strings.ToLower(scheme), true
}

// deriveExtension returns the lowercased substring after the last dot
// of source, or "" when there is none. With stripQuery set, a query
// string or fragment is removed first so that remote sources like
// photo.jpg?width=200 still derive "jpg".
func deriveExtension(source string, stripQuery bool) string {
	if stripQuery {
		if idx := strings.IndexAny(source, "?#"); idx >= 0 {
			source = source[:idx]
		}
	}
	idx := strings.LastIndexByte(source, '.')
	if idx < 0 || idx == len(source)-1 {
		return ""
	}
	return strings.ToLower(source[idx+1:])
}

// baseName returns the last path element of source for override
// matching, with any query or fragment removed.
func baseName(source string) string {
	if idx := strings.IndexAny(source, "?#"); idx >= 0 {
		source = source[:idx]
	}
	if idx := strings.LastIndexAny(source, `/\`); idx >= 0 {
		source = source[idx+1:]
	}
	return source
}
