package indexer

import (
	"context"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/rangeplan"
)

// HeaderIndexer reads only trace headers. Each requested range covers a
// header alone, but when the planner bridges the gap between nearby
// headers the merged fetch also reads the sample bytes in between; those
// are not decoded.
type HeaderIndexer struct {
	base
	post PostProcessConfig
}

// NewHeaderIndexer builds a HeaderIndexer over trace's header region.
func NewHeaderIndexer(trace *descriptor.TraceDescriptor, fetcher rangefetch.Fetcher, url string, traceCount int, opts ...Option) *HeaderIndexer {
	c := buildConfig(opts)
	return &HeaderIndexer{
		base: base{
			trace:      trace,
			region:     rangeplan.HeaderOnly,
			fetcher:    fetcher,
			url:        url,
			traceCount: traceCount,
			maxBlock:   c.maxBlock,
		},
		post: c.post,
	}
}

// At returns the single header at index i.
func (ix *HeaderIndexer) At(ctx context.Context, i int) (Header, error) {
	headers, err := ix.decodeList(ctx, []int{i})
	if err != nil {
		return nil, err
	}
	return headers[0], nil
}

// List returns the headers at the given indices, in request order, or a
// *table.Frame if PostProcessConfig.HeadersAsTable is set.
func (ix *HeaderIndexer) List(ctx context.Context, indices []int) (any, error) {
	headers, err := ix.decodeList(ctx, indices)
	if err != nil {
		return nil, err
	}
	if ix.post.HeadersAsTable {
		return headersToTable(headers, fieldNames(ix.trace.Header.Layout()))
	}
	return headers, nil
}

// Slice returns the headers selected by s, applying the same post-process
// contract as List.
func (ix *HeaderIndexer) Slice(ctx context.Context, s Slice) (any, error) {
	indices, err := ix.resolveSlice(s)
	if err != nil {
		return nil, err
	}
	return ix.List(ctx, indices)
}

func (ix *HeaderIndexer) decodeList(ctx context.Context, indices []int) ([]Header, error) {
	raw, err := ix.fetchRaw(ctx, indices)
	if err != nil {
		return nil, err
	}

	layout := ix.trace.Header.Layout()
	out := make([]Header, len(raw))
	for i, buf := range raw {
		out[i] = decodeHeader(buf, layout)
	}
	return out, nil
}
