package indexer

import (
	"context"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/rangeplan"
)

// base is the skeleton every region-scoped indexer shares: it turns a list
// of requested trace indices into planned byte ranges, fetches them, and
// hands back each requested index's own slice of bytes in request order.
// Composition over a shared base, rather than a class hierarchy, keeps
// TraceIndexer/HeaderIndexer/DataIndexer independent value types.
type base struct {
	trace      *descriptor.TraceDescriptor
	region     rangeplan.Region
	fetcher    rangefetch.Fetcher
	url        string
	traceCount int
	maxBlock   int64
}

func (b *base) layout() rangeplan.Layout {
	return rangeplan.Layout{
		Offset:     b.trace.Offset,
		Stride:     int64(b.trace.Stride()),
		HeaderSize: int64(b.trace.HeaderSize()),
		DataSize:   int64(b.trace.DataSize()),
	}
}

// fetchRaw plans, fetches, and reassembles the raw byte slice for each
// requested index, in request order (duplicates preserved).
func (b *base) fetchRaw(ctx context.Context, indices []int) ([][]byte, error) {
	if len(indices) == 0 {
		return nil, nil
	}

	ranges, sources, err := rangeplan.Plan(b.layout(), b.region, indices, b.traceCount, b.maxBlock)
	if err != nil {
		return nil, err
	}

	fetched, err := rangefetch.Fetch(ctx, b.fetcher, b.url, ranges)
	if err != nil {
		return nil, err
	}

	// Each record gets its own copy of its bytes: decode swaps and IBM
	// conversion happen in place, and duplicate indices map onto the same
	// bytes of one merged buffer.
	out := make([][]byte, len(indices))
	for _, sm := range sources {
		buf := fetched[sm.RangeIndex]
		record := make([]byte, sm.Length)
		copy(record, buf[sm.Offset:sm.Offset+sm.Length])
		out[sm.Position] = record
	}

	return out, nil
}

// resolveSlice turns a Slice selector into concrete trace indices. Bounds
// validation against the trace count happens downstream in
// rangeplan.Plan, which reports every offending index via
// errs.OutOfBoundsError; resolveSlice only rejects a zero step.
//
// Defaults depend on direction: an unbounded ascending slice walks
// [0, traceCount), an unbounded descending one walks traceCount-1 down to
// 0 inclusive, so Slice{Step: -1} is the whole file reversed.
func (b *base) resolveSlice(s Slice) ([]int, error) {
	if s.Step == 0 {
		return nil, errs.ErrBadSlice
	}

	descending := s.Step < 0

	start := 0
	if descending {
		start = b.traceCount - 1
	}
	if s.Start != nil {
		start = *s.Start
	}

	stop := b.traceCount
	if descending {
		stop = -1
	}
	if s.Stop != nil {
		stop = *s.Stop
	}

	var out []int
	if s.Step > 0 {
		for i := start; i < stop; i += s.Step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += s.Step {
			out = append(out, i)
		}
	}

	return out, nil
}
