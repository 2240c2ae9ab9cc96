// Package segy provides schema-driven, random-access reading of SEG-Y
// seismic data files: 3200-byte textual file headers, 400-byte binary
// file headers, optional extended text headers, and fixed-stride trace
// records (header plus sample data), without reading the whole file into
// memory.
//
// # Basic Usage
//
// Opening a local file and reading a handful of traces:
//
//	fetcher := rangefetch.NewLocalFileFetcher()
//	f, err := segy.Open(ctx, fetcher, "/data/line001.sgy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	trace, err := f.Traces().At(ctx, 0)
//	headers, err := f.Headers().List(ctx, []int{0, 1, 2})
//
// # Package Structure
//
// This package is a thin convenience wrapper around the file package.
// For registry customization, descriptor introspection, or building a
// Fetcher over a different transport, use the file/registry/descriptor/
// rangefetch packages directly.
package segy

import (
	"context"

	"github.com/amitpendharkar/segy/cache"
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/file"
	"github.com/amitpendharkar/segy/indexer"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/registry"
)

// File is the opened SEG-Y object: its decoded headers, specialized
// descriptor, and the trace/header/data indexers over its trace region.
type File = file.File

// Option configures Open. See the file package for the available options
// (file.WithStandard, file.WithRegistry, file.WithCache, file.WithMaxBlock).
type Option = file.Option

// Standard names a SEG-Y revision.
type Standard = descriptor.SegyStandard

// The SEG-Y revisions this module has built-in registry templates for.
const (
	Rev0  = descriptor.Rev0
	Rev1  = descriptor.Rev1
	Rev2  = descriptor.Rev2
	Rev21 = descriptor.Rev21
)

// Open reads url's file headers through fetcher and returns a File ready
// to serve random-access trace reads. See file.Open for the full contract,
// including revision auto-detection and the advisory warnings available
// via (*File).Warnings.
func Open(ctx context.Context, fetcher rangefetch.Fetcher, url string, opts ...Option) (*File, error) {
	return file.Open(ctx, fetcher, url, opts...)
}

// WithStandard forces the SEG-Y revision Open specializes against,
// bypassing auto-detection. Required for Rev0 files.
func WithStandard(standard Standard) Option {
	return file.WithStandard(standard)
}

// WithRegistry supplies a pre-built registry carrying customized
// descriptors.
func WithRegistry(r *registry.Registry) Option {
	return file.WithRegistry(r)
}

// WithCache wraps the transport with an in-process byte-range cache.
func WithCache(c *cache.Cache) Option {
	return file.WithCache(c)
}

// WithMaxBlock overrides the range planner's default 8 MiB coalesced
// -range bound.
func WithMaxBlock(n int64) Option {
	return file.WithMaxBlock(n)
}

// NewRegistry returns a Registry pre-populated with the built-in Rev0,
// Rev1, Rev2, and Rev2.1 descriptor templates, for callers that want to
// Customize a descriptor before passing it to Open via file.WithRegistry.
func NewRegistry() *registry.Registry {
	return registry.New()
}

// NewLocalFileFetcher returns a reference Fetcher reading byte ranges from
// local files on disk, keyed by filesystem path.
func NewLocalFileFetcher() *rangefetch.LocalFileFetcher {
	return rangefetch.NewLocalFileFetcher()
}

// NewCache returns an in-process LRU byte-range cache that can be attached
// to Open via file.WithCache to avoid re-fetching overlapping trace
// windows.
func NewCache(opts ...cache.Option) *cache.Cache {
	return cache.New(opts...)
}

// TraceRecord is one trace's full decode: header fields plus sample data.
type TraceRecord = indexer.TraceRecord

// Header is one trace's (or the binary file header's) decoded field set.
type Header = indexer.Header

// Samples is one trace's decoded sample vector.
type Samples = indexer.Samples
