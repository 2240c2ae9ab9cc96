// Package rangefetch is the reader's one designated collaborator
// boundary: the byte-range transport itself (URL parsing, credentials,
// retries) belongs to the embedder, so Fetcher is the thin capability the
// embedder supplies. The indexers issue all of their I/O through Fetch;
// package file also calls Size and RangeRead directly to read the file
// headers when a file is opened.
package rangefetch

import "context"

// Fetcher is the byte-range transport collaborator. Implementations may
// back onto local disk, HTTP range requests, or object storage; this
// package does not care which, only that Size and RangeRead honor the
// contract below.
type Fetcher interface {
	// Size returns the total byte length of the object at url.
	Size(ctx context.Context, url string) (int64, error)

	// RangeRead returns exactly end-start bytes from url, the half-open
	// range [start, end). A short read must be reported as an error, not
	// a shorter-than-requested slice: callers never see a length
	// mismatch silently.
	RangeRead(ctx context.Context, url string, start, end int64) ([]byte, error)
}
