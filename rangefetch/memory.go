package rangefetch

import (
	"context"

	"github.com/amitpendharkar/segy/errs"
)

// MemoryFetcher is a reference Fetcher backed by an in-memory byte slice,
// keyed by URL. It exists for tests that need a Fetcher without standing
// up a local file or HTTP range server; production callers supply their
// own Fetcher over their actual backend.
type MemoryFetcher struct {
	objects map[string][]byte
}

// NewMemoryFetcher returns a MemoryFetcher serving objects by URL.
func NewMemoryFetcher(objects map[string][]byte) *MemoryFetcher {
	return &MemoryFetcher{objects: objects}
}

func (m *MemoryFetcher) Size(_ context.Context, url string) (int64, error) {
	data, ok := m.objects[url]
	if !ok {
		return 0, &errs.TransportError{Kind: errs.TransportNotFound, Retriable: false, Cause: errNotFound(url)}
	}
	return int64(len(data)), nil
}

func (m *MemoryFetcher) RangeRead(_ context.Context, url string, start, end int64) ([]byte, error) {
	data, ok := m.objects[url]
	if !ok {
		return nil, &errs.TransportError{Kind: errs.TransportNotFound, Retriable: false, Cause: errNotFound(url)}
	}
	if start < 0 || end > int64(len(data)) || start > end {
		return nil, &errs.TruncatedBufferError{Expected: int(end - start), Actual: 0}
	}

	out := make([]byte, end-start)
	copy(out, data[start:end])
	return out, nil
}

type notFoundError struct{ url string }

func (e *notFoundError) Error() string { return "rangefetch: object not found: " + e.url }

func errNotFound(url string) error { return &notFoundError{url: url} }
