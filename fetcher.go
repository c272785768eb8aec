package mimekit

import "context"

// Fetcher acquires the leading bytes of a source. Implementations return
// up to n bytes: a shorter buffer means the resource itself is shorter
// and is not an error. An error means the source was inaccessible; a
// fetch never partially succeeds silently.
//
// Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, source string, n int) ([]byte, error)
}
