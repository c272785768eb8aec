package mimekit

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileFetcher reads the leading bytes of local files.
type FileFetcher struct{}

// NewFileFetcher returns a fetcher for local paths.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

// Fetch opens path and reads up to n bytes. The handle is closed on all
// exit paths. A file shorter than n yields a short buffer, not an error.
func (f *FileFetcher) Fetch(ctx context.Context, path string, n int) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, &SourceError{Op: "open", Source: path, Err: ctx.Err()}
	default:
	}

	path = strings.TrimPrefix(path, "file://")

	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Source: path, Err: mapOSError(err)}
	}
	defer file.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, &SourceError{Op: "read", Source: path, Err: mapOSError(err)}
	}
	return buf[:read], nil
}

// mapOSError translates os-level errors onto package sentinels so
// callers can test with IsNotExist and IsPermission.
func mapOSError(err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %v", ErrNotExist, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	default:
		return err
	}
}

func init() {
	RegisterFetcher("file", func(cfg *Config) (Fetcher, error) {
		return NewFileFetcher(), nil
	})
}

var _ Fetcher = (*FileFetcher)(nil)
