package indexer

import (
	"context"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/rangeplan"
	"github.com/amitpendharkar/segy/table"
)

// TraceIndexer reads whole trace records (header and sample data
// together).
type TraceIndexer struct {
	base
	post PostProcessConfig
}

// TraceTable is the whole-trace result shape when
// PostProcessConfig.HeadersAsTable is set: headers flattened into a
// column-oriented frame, sample data kept as one Samples vector per row.
type TraceTable struct {
	Header *table.Frame
	Data   []Samples
}

// Option configures a TraceIndexer, HeaderIndexer, or DataIndexer at
// construction time.
type Option func(*config)

type config struct {
	maxBlock int64
	post     PostProcessConfig
}

// WithMaxBlock overrides the planner's default 8 MiB coalesced-range
// bound.
func WithMaxBlock(n int64) Option {
	return func(c *config) { c.maxBlock = n }
}

// WithPostProcess sets the indexer's post-process options. HeadersAsTable
// has no effect on a DataIndexer.
func WithPostProcess(p PostProcessConfig) Option {
	return func(c *config) { c.post = p }
}

func buildConfig(opts []Option) config {
	var c config
	c.maxBlock = rangeplan.DefaultMaxBlock
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTraceIndexer builds a TraceIndexer over trace, fetching from url via
// fetcher. traceCount is the file's total trace count, from package file.
func NewTraceIndexer(trace *descriptor.TraceDescriptor, fetcher rangefetch.Fetcher, url string, traceCount int, opts ...Option) *TraceIndexer {
	c := buildConfig(opts)
	return &TraceIndexer{
		base: base{
			trace:      trace,
			region:     rangeplan.Full,
			fetcher:    fetcher,
			url:        url,
			traceCount: traceCount,
			maxBlock:   c.maxBlock,
		},
		post: c.post,
	}
}

// At returns the single trace at index i.
func (ix *TraceIndexer) At(ctx context.Context, i int) (TraceRecord, error) {
	records, err := ix.decodeList(ctx, []int{i})
	if err != nil {
		return TraceRecord{}, err
	}
	return records[0], nil
}

// List returns the traces at the given indices, in request order: a
// []TraceRecord, or a *TraceTable if PostProcessConfig.HeadersAsTable is
// set.
func (ix *TraceIndexer) List(ctx context.Context, indices []int) (any, error) {
	records, err := ix.decodeList(ctx, indices)
	if err != nil {
		return nil, err
	}
	if ix.post.HeadersAsTable {
		return ix.toTable(records)
	}
	return records, nil
}

// Slice returns the traces selected by s, applying the same post-process
// contract as List.
func (ix *TraceIndexer) Slice(ctx context.Context, s Slice) (any, error) {
	indices, err := ix.resolveSlice(s)
	if err != nil {
		return nil, err
	}
	return ix.List(ctx, indices)
}

func (ix *TraceIndexer) decodeList(ctx context.Context, indices []int) ([]TraceRecord, error) {
	raw, err := ix.fetchRaw(ctx, indices)
	if err != nil {
		return nil, err
	}

	headerSize := ix.trace.HeaderSize()
	layout := ix.trace.Header.Layout()

	out := make([]TraceRecord, len(raw))
	for i, buf := range raw {
		out[i] = TraceRecord{
			Header: decodeHeader(buf[:headerSize], layout),
			Data:   decodeSamples(buf[headerSize:], ix.trace.Data),
		}
	}

	return out, nil
}

func (ix *TraceIndexer) toTable(records []TraceRecord) (*TraceTable, error) {
	headers := make([]Header, len(records))
	data := make([]Samples, len(records))
	for i, r := range records {
		headers[i] = r.Header
		data[i] = r.Data
	}

	frame, err := headersToTable(headers, fieldNames(ix.trace.Header.Layout()))
	if err != nil {
		return nil, err
	}
	return &TraceTable{Header: frame, Data: data}, nil
}

// ListTable is a header-only tabular projection of List, for callers that
// want the frame without switching the indexer's configured result shape.
// Sample data is omitted; use WithPostProcess(PostProcessConfig{
// HeadersAsTable: true}) and List for the paired *TraceTable form.
func (ix *TraceIndexer) ListTable(ctx context.Context, indices []int) (*table.Frame, error) {
	records, err := ix.decodeList(ctx, indices)
	if err != nil {
		return nil, err
	}
	headers := make([]Header, len(records))
	for i, r := range records {
		headers[i] = r.Header
	}
	return headersToTable(headers, fieldNames(ix.trace.Header.Layout()))
}

func fieldNames(layout descriptor.Layout) []string {
	names := make([]string, len(layout.Fields))
	for i, f := range layout.Fields {
		names[i] = f.Name
	}
	return names
}
