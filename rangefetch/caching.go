package rangefetch

import (
	"context"

	"github.com/amitpendharkar/segy/cache"
)

// CachingFetcher wraps a Fetcher with an in-process byte-range cache, so a
// reader that repeatedly touches overlapping trace windows (typical of
// interactive seismic gather/window workflows) does not re-fetch the same
// bytes from a remote backend on every access.
type CachingFetcher struct {
	next  Fetcher
	cache *cache.Cache
	url   string
}

// NewCachingFetcher wraps next with c. url records the object a single
// File (see package file) reads from; Size and RangeRead key on and
// forward the url they are called with.
func NewCachingFetcher(next Fetcher, c *cache.Cache, url string) *CachingFetcher {
	return &CachingFetcher{next: next, cache: c, url: url}
}

func (f *CachingFetcher) Size(ctx context.Context, url string) (int64, error) {
	return f.next.Size(ctx, url)
}

func (f *CachingFetcher) RangeRead(ctx context.Context, url string, start, end int64) ([]byte, error) {
	key := cache.Key{URL: url, Start: start, End: end}
	if data, ok := f.cache.Get(key); ok {
		// Get hands back caller-owned bytes (every Codec's Decompress
		// allocates), so no defensive copy is needed here.
		return data, nil
	}

	data, err := f.next.RangeRead(ctx, url, start, end)
	if err != nil {
		return nil, err
	}

	f.cache.Put(key, data)
	return data, nil
}
