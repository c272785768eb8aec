package mimekit

import (
	"context"
	"fmt"
	"sync"
)

// MemoryFetcher serves sources from an in-memory map. Useful in tests
// and as a template for custom scheme fetchers.
type MemoryFetcher struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryFetcher returns an empty in-memory fetcher.
func NewMemoryFetcher() *MemoryFetcher {
	return &MemoryFetcher{objects: make(map[string][]byte)}
}

// Put stores data under source, replacing any previous content.
func (m *MemoryFetcher) Put(source string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[source] = append([]byte(nil), data...)
}

// Delete removes source.
func (m *MemoryFetcher) Delete(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, source)
}

// Fetch returns up to n leading bytes of source.
func (m *MemoryFetcher) Fetch(ctx context.Context, source string, n int) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, &SourceError{Op: "fetch", Source: source, Err: ctx.Err()}
	default:
	}

	m.mu.RLock()
	data, ok := m.objects[source]
	m.mu.RUnlock()

	if !ok {
		return nil, &SourceError{Op: "fetch", Source: source, Err: fmt.Errorf("%w: no such object", ErrNotExist)}
	}
	if n > len(data) {
		n = len(data)
	}
	if n < 0 {
		n = 0
	}
	return append([]byte(nil), data[:n]...), nil
}

var _ Fetcher = (*MemoryFetcher)(nil)
