package mimekit

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPFetcher acquires the leading bytes of http and https resources.
// By default it asks the server for the leading byte range so that
// classification does not transfer the whole body; servers that ignore
// Range still work because only the prefix is read from the stream.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	useRange  bool
}

// NewHTTPFetcher builds a fetcher from config. A nil config uses the
// defaults.
func NewHTTPFetcher(cfg *Config) *HTTPFetcher {
	if cfg == nil {
		cfg = &Config{}
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: cfg.httpTimeout()},
		userAgent: cfg.userAgent(),
		useRange:  !cfg.DisableRangeRequests,
	}
}

// Fetch issues a GET for url and reads up to n bytes of the body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, n int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Source: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.useRange && n > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", n-1))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		statusErr := fmt.Errorf("%w: %s", ErrRemoteStatus, resp.Status)
		switch resp.StatusCode {
		case http.StatusNotFound, http.StatusGone:
			statusErr = fmt.Errorf("%w: %s", ErrNotExist, resp.Status)
		case http.StatusUnauthorized, http.StatusForbidden:
			statusErr = fmt.Errorf("%w: %s", ErrPermission, resp.Status)
		}
		return nil, &SourceError{Op: "fetch", Source: url, Err: statusErr}
	}

	buf := make([]byte, n)
	read, err := io.ReadFull(io.LimitReader(resp.Body, int64(n)), buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, &SourceError{Op: "read", Source: url, Err: err}
	}
	return buf[:read], nil
}

func init() {
	RegisterFetcher("http", func(cfg *Config) (Fetcher, error) {
		return NewHTTPFetcher(cfg), nil
	})
	RegisterFetcher("https", func(cfg *Config) (Fetcher, error) {
		return NewHTTPFetcher(cfg), nil
	})
}

var _ Fetcher = (*HTTPFetcher)(nil)
