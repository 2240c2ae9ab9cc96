// Package rangeplan turns a list of logical trace indices into a minimal
// set of byte ranges to fetch, coalescing adjacent or near ranges under a
// configurable block-size bound, and records exactly where each
// requested index's bytes end up within the merged, concatenated result
// so the indexer can reassemble per-trace slices after a fetch completes
// in any order.
package rangeplan

import (
	"sort"

	"github.com/amitpendharkar/segy/errs"
)

// Region selects which part of a trace record a plan covers.
type Region uint8

const (
	// Full covers a trace's header and sample data.
	Full Region = iota + 1
	// HeaderOnly covers only a trace's header.
	HeaderOnly
	// DataOnly covers only a trace's sample data.
	DataOnly
)

// DefaultMaxBlock is the planner's default bound on any single coalesced
// byte range, 8 MiB.
const DefaultMaxBlock int64 = 8 << 20

// ByteRange is a half-open [Start, End) byte interval to fetch.
type ByteRange struct {
	Start int64
	End   int64
}

// Len returns the range's byte length.
func (r ByteRange) Len() int64 { return r.End - r.Start }

// SourceMap records where one requested index's bytes ended up after
// coalescing: which merged ByteRange (by position in the returned slice)
// holds them, and the byte offset within that range's fetched buffer
// where they begin.
type SourceMap struct {
	// Position is the index's position in the caller's original request
	// order (List/Slice may request the same trace index more than once;
	// each occurrence gets its own SourceMap).
	Position int
	// TraceIndex is the requested trace index.
	TraceIndex int
	// RangeIndex selects the merged ByteRange (and corresponding fetched
	// buffer) this index's bytes live in.
	RangeIndex int
	// Offset is the byte offset within the merged range's buffer where
	// this index's region begins.
	Offset int64
	// Length is the byte length of this index's region.
	Length int64
}

// Layout describes, for one region, the per-trace byte geometry needed to
// compute raw ranges: the file-relative base offset of trace 0, the
// distance between consecutive traces (stride), and the header/data
// sizes that HeaderOnly/DataOnly select within a trace.
type Layout struct {
	Offset     int64
	Stride     int64
	HeaderSize int64
	DataSize   int64
}

func (l Layout) rawRange(traceIndex int, region Region) ByteRange {
	base := l.Offset + int64(traceIndex)*l.Stride
	switch region {
	case HeaderOnly:
		return ByteRange{Start: base, End: base + l.HeaderSize}
	case DataOnly:
		return ByteRange{Start: base + l.HeaderSize, End: base + l.HeaderSize + l.DataSize}
	default:
		return ByteRange{Start: base, End: base + l.Stride}
	}
}

type rawEntry struct {
	position   int
	traceIndex int
	rng        ByteRange
}

// Plan computes the minimal set of coalesced byte ranges covering every
// index in indices under the given region, plus a SourceMap entry per
// requested index (in request order, duplicates included) locating its
// bytes within the eventual fetch results. maxBlock <= 0 selects
// DefaultMaxBlock.
//
// Plan returns *errs.OutOfBoundsError if any index falls outside
// [0, traceCount).
func Plan(layout Layout, region Region, indices []int, traceCount int, maxBlock int64) ([]ByteRange, []SourceMap, error) {
	if maxBlock <= 0 {
		maxBlock = DefaultMaxBlock
	}

	if bad := outOfBounds(indices, traceCount); len(bad) > 0 {
		return nil, nil, &errs.OutOfBoundsError{Indices: bad, Max: traceCount}
	}

	raw := make([]rawEntry, len(indices))
	for k, idx := range indices {
		raw[k] = rawEntry{position: k, traceIndex: idx, rng: layout.rawRange(idx, region)}
	}

	sorted := make([]rawEntry, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].rng.Start < sorted[j].rng.Start })

	merged := mergeRanges(sorted, maxBlock)

	sourceMaps := make([]SourceMap, len(raw))
	for k, entry := range raw {
		rangeIdx := locateRange(merged, entry.rng.Start)
		sourceMaps[k] = SourceMap{
			Position:   entry.position,
			TraceIndex: entry.traceIndex,
			RangeIndex: rangeIdx,
			Offset:     entry.rng.Start - merged[rangeIdx].Start,
			Length:     entry.rng.Len(),
		}
	}

	return merged, sourceMaps, nil
}

// outOfBounds returns every index outside [0, traceCount), in the order
// encountered.
func outOfBounds(indices []int, traceCount int) []int {
	var bad []int
	for _, idx := range indices {
		if idx < 0 || idx >= traceCount {
			bad = append(bad, idx)
		}
	}
	return bad
}

// mergeRanges coalesces start-sorted ranges: two consecutive ranges merge
// when they overlap or touch (gap <= 0), or when merging keeps the
// combined span within maxBlock and the gap strictly under maxBlock. A
// merge that bridges a gap never produces a range longer than maxBlock;
// ranges that overlap or touch merge regardless of the bound, so a run of
// contiguous requested ranges can come back longer than maxBlock.
func mergeRanges(sorted []rawEntry, maxBlock int64) []ByteRange {
	if len(sorted) == 0 {
		return nil
	}

	out := []ByteRange{sorted[0].rng}
	for _, entry := range sorted[1:] {
		last := &out[len(out)-1]
		gap := entry.rng.Start - last.End
		span := entry.rng.End - last.Start
		if gap <= 0 || (span <= maxBlock && gap < maxBlock) {
			if entry.rng.End > last.End {
				last.End = entry.rng.End
			}
			continue
		}
		out = append(out, entry.rng)
	}
	return out
}

// locateRange returns the index into merged of the range containing
// start. merged is sorted and non-overlapping, so a linear scan from the
// most recently matched position would also work; binary search keeps
// this correct for pathological inputs without added complexity.
func locateRange(merged []ByteRange, start int64) int {
	lo, hi := 0, len(merged)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if merged[mid].End <= start {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
