package file

import (
	"github.com/amitpendharkar/segy/cache"
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/rangeplan"
	"github.com/amitpendharkar/segy/registry"
)

// Option configures Open.
type Option func(*config)

type config struct {
	standard descriptor.SegyStandard
	registry *registry.Registry
	cache    *cache.Cache
	maxBlock int64
}

// WithStandard forces the SEG-Y revision Open specializes against,
// bypassing auto-detection. Required for Rev0 files, which carry no
// revision field to detect from (see errs.ErrNoRevisionField).
func WithStandard(standard descriptor.SegyStandard) Option {
	return func(c *config) { c.standard = standard }
}

// WithRegistry supplies a pre-built *registry.Registry, e.g. one carrying
// a Customize-d descriptor for a non-standard layout. The default is a
// fresh registry.New().
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithCache wraps the supplied Fetcher with an in-process byte-range
// cache. The default is no caching.
func WithCache(c *cache.Cache) Option {
	return func(cfg *config) { cfg.cache = c }
}

// WithMaxBlock overrides the range planner's default 8 MiB coalesced-range
// bound for every indexer this File constructs.
func WithMaxBlock(n int64) Option {
	return func(c *config) { c.maxBlock = n }
}

func buildConfig(opts []Option) config {
	c := config{maxBlock: rangeplan.DefaultMaxBlock}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// wrapFetcher returns fetcher wrapped with an in-process cache if one was
// configured via WithCache, or fetcher unchanged otherwise.
func (c config) wrapFetcher(fetcher rangefetch.Fetcher, url string) rangefetch.Fetcher {
	if c.cache == nil {
		return fetcher
	}
	return rangefetch.NewCachingFetcher(fetcher, c.cache, url)
}
