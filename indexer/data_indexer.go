package indexer

import (
	"context"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/rangeplan"
)

// DataIndexer reads only trace sample data. Each requested range covers a
// sample block alone, but when the planner bridges the gap between nearby
// blocks the merged fetch also reads the header bytes in between; those
// are not decoded. PostProcessConfig.HeadersAsTable has no meaning here;
// there is no header to tabulate.
type DataIndexer struct {
	base
}

// NewDataIndexer builds a DataIndexer over trace's sample data region.
func NewDataIndexer(trace *descriptor.TraceDescriptor, fetcher rangefetch.Fetcher, url string, traceCount int, opts ...Option) *DataIndexer {
	c := buildConfig(opts)
	return &DataIndexer{
		base: base{
			trace:      trace,
			region:     rangeplan.DataOnly,
			fetcher:    fetcher,
			url:        url,
			traceCount: traceCount,
			maxBlock:   c.maxBlock,
		},
	}
}

// At returns the single trace's sample data at index i.
func (ix *DataIndexer) At(ctx context.Context, i int) (Samples, error) {
	samples, err := ix.List(ctx, []int{i})
	if err != nil {
		return Samples{}, err
	}
	return samples[0], nil
}

// List returns the sample data at the given indices, in request order.
func (ix *DataIndexer) List(ctx context.Context, indices []int) ([]Samples, error) {
	raw, err := ix.fetchRaw(ctx, indices)
	if err != nil {
		return nil, err
	}

	out := make([]Samples, len(raw))
	for i, buf := range raw {
		out[i] = decodeSamples(buf, ix.trace.Data)
	}
	return out, nil
}

// Slice returns the sample data selected by s.
func (ix *DataIndexer) Slice(ctx context.Context, s Slice) ([]Samples, error) {
	indices, err := ix.resolveSlice(s)
	if err != nil {
		return nil, err
	}
	return ix.List(ctx, indices)
}
