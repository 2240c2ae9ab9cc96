package rangeplan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitpendharkar/segy/errs"
)

// testLayout is a compact geometry with easy mental arithmetic: stride
// 10, header 4, data 6, traces starting at byte 100.
func testLayout() Layout {
	return Layout{Offset: 100, Stride: 10, HeaderSize: 4, DataSize: 6}
}

func TestPlanMergesAdjacentAndNearRanges(t *testing.T) {
	ranges, sources, err := Plan(testLayout(), Full, []int{0, 1, 5}, 10, 16)
	require.NoError(t, err)

	// Raw ranges [100,110) [110,120) [150,160): the first two are
	// adjacent and merge; the third sits 30 bytes away, beyond the
	// 16-byte block bound, and stays separate.
	require.Equal(t, []ByteRange{{Start: 100, End: 120}, {Start: 150, End: 160}}, ranges)

	require.Len(t, sources, 3)
	require.Equal(t, SourceMap{Position: 0, TraceIndex: 0, RangeIndex: 0, Offset: 0, Length: 10}, sources[0])
	require.Equal(t, SourceMap{Position: 1, TraceIndex: 1, RangeIndex: 0, Offset: 10, Length: 10}, sources[1])
	require.Equal(t, SourceMap{Position: 2, TraceIndex: 5, RangeIndex: 1, Offset: 0, Length: 10}, sources[2])
}

func TestPlanRegions(t *testing.T) {
	layout := testLayout()

	headerRanges, _, err := Plan(layout, HeaderOnly, []int{2}, 10, 16)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 120, End: 124}}, headerRanges)

	dataRanges, _, err := Plan(layout, DataOnly, []int{2}, 10, 16)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 124, End: 130}}, dataRanges)

	fullRanges, _, err := Plan(layout, Full, []int{2}, 10, 16)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 120, End: 130}}, fullRanges)
}

func TestPlanUnsortedAndDuplicateIndices(t *testing.T) {
	ranges, sources, err := Plan(testLayout(), Full, []int{5, 0, 5}, 10, 16)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 100, End: 110}, {Start: 150, End: 160}}, ranges)

	// SourceMaps come back in request order, each occurrence of a
	// duplicated index with its own entry.
	require.Equal(t, 0, sources[0].Position)
	require.Equal(t, 5, sources[0].TraceIndex)
	require.Equal(t, 1, sources[0].RangeIndex)
	require.Equal(t, 0, sources[1].TraceIndex)
	require.Equal(t, 0, sources[1].RangeIndex)
	require.Equal(t, sources[0].RangeIndex, sources[2].RangeIndex)
	require.Equal(t, sources[0].Offset, sources[2].Offset)
}

func TestPlanOutOfBounds(t *testing.T) {
	_, _, err := Plan(testLayout(), Full, []int{-1, 3, 10}, 10, 16)
	require.Error(t, err)

	var oob *errs.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	require.Equal(t, []int{-1, 10}, oob.Indices)
	require.Equal(t, 10, oob.Max)
}

func TestPlanEmptyIndices(t *testing.T) {
	ranges, sources, err := Plan(testLayout(), Full, nil, 10, 16)
	require.NoError(t, err)
	require.Empty(t, ranges)
	require.Empty(t, sources)
}

func TestPlanDefaultMaxBlock(t *testing.T) {
	// maxBlock <= 0 selects the 8 MiB default, which easily swallows two
	// adjacent-but-gapped traces.
	ranges, _, err := Plan(testLayout(), Full, []int{0, 5}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 100, End: 160}}, ranges)
}

func TestPlanGapWithinBlockMerges(t *testing.T) {
	// Traces 0 and 2 leave a 10-byte gap; with maxBlock 30 the combined
	// 30-byte span fits and the gap is under the bound, so they merge.
	ranges, _, err := Plan(testLayout(), Full, []int{0, 2}, 10, 30)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 100, End: 130}}, ranges)

	// With maxBlock 25 the combined span exceeds the bound: no merge.
	ranges, _, err = Plan(testLayout(), Full, []int{0, 2}, 10, 25)
	require.NoError(t, err)
	require.Equal(t, []ByteRange{{Start: 100, End: 110}, {Start: 120, End: 130}}, ranges)
}

// TestPlanProperties checks the planner's contract over a spread of index
// sets: every requested byte is covered, gap-bridging merges never exceed
// the block bound (adjacent raw ranges merge regardless, matching the
// [100,120) merge at maxBlock 16 above), and no two returned ranges are
// still mergeable under the policy.
func TestPlanProperties(t *testing.T) {
	layout := testLayout()
	const traceCount = 100
	const maxBlock = int64(64)

	indexSets := [][]int{
		{0},
		{99},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0, 10, 20, 30, 40},
		{97, 3, 55, 3, 0, 98},
		{7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, indices := range indexSets {
		ranges, sources, err := Plan(layout, Full, indices, traceCount, maxBlock)
		require.NoError(t, err)

		// (a) coverage: every index's raw range is inside its mapped
		// merged range.
		covered := make(map[int]int64)
		for k, sm := range sources {
			require.Equal(t, k, sm.Position)
			raw := layout.rawRange(sm.TraceIndex, Full)
			merged := ranges[sm.RangeIndex]
			require.GreaterOrEqual(t, raw.Start, merged.Start)
			require.LessOrEqual(t, raw.End, merged.End)
			require.Equal(t, raw.Start-merged.Start, sm.Offset)
			require.Equal(t, raw.Len(), sm.Length)
			covered[sm.RangeIndex] += raw.Len()
		}

		// (b) each range is bounded unless it is wholly filled by
		// adjacent raw ranges, which merge regardless of the bound.
		for i, r := range ranges {
			if r.Len() > maxBlock {
				require.GreaterOrEqual(t, covered[i], r.Len(),
					"over-bound range %d must be contiguous requested bytes, not a bridged gap", i)
			}
		}

		// (c) no two consecutive returned ranges remain mergeable.
		for i := 1; i < len(ranges); i++ {
			gap := ranges[i].Start - ranges[i-1].End
			span := ranges[i].End - ranges[i-1].Start
			require.Positive(t, gap)
			mergeable := span <= maxBlock && gap < maxBlock
			require.False(t, mergeable, "ranges %d and %d are still mergeable", i-1, i)
		}
	}
}

func TestByteRangeLen(t *testing.T) {
	require.Equal(t, int64(10), ByteRange{Start: 100, End: 110}.Len())
}
