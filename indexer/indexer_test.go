package indexer

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/table"
)

const testURL = "mem://traces"

// ibmWords maps small float values to their IBM hexadecimal float words,
// for building test trace payloads.
var ibmWords = map[float32]uint32{
	0.0: 0x00000000,
	0.5: 0x40800000,
	1.0: 0x41100000,
	2.0: 0x41200000,
	3.0: 0x41300000,
}

// buildTraceFixture assembles a fake trace region: traceCount records of
// (int32 trace_no, int16 flag, 2-byte pad) headers followed by two IBM32
// samples, all big-endian, starting at byte 0 of the fetched object.
func buildTraceFixture(t *testing.T, traceCount int) (*descriptor.TraceDescriptor, *rangefetch.MemoryFetcher) {
	t.Helper()

	header, err := descriptor.NewStructuredDataTypeDescriptor([]descriptor.StructuredFieldDescriptor{
		{Name: "trace_no", Offset: 0, Format: format.Int32, Endianness: format.BigEndian},
		{Name: "flag", Offset: 4, Format: format.Int16, Endianness: format.BigEndian},
	}, 8, 0)
	require.NoError(t, err)

	trace := &descriptor.TraceDescriptor{
		Header: header,
		Data:   descriptor.TraceDataDescriptor{Format: format.IBM32, Endianness: format.BigEndian, Samples: 2},
		Offset: 0,
	}

	buf := make([]byte, traceCount*trace.Stride())
	for i := range traceCount {
		rec := buf[i*trace.Stride():]
		binary.BigEndian.PutUint32(rec[0:4], uint32(i+1))
		binary.BigEndian.PutUint16(rec[4:6], uint16(100+i))
		binary.BigEndian.PutUint32(rec[8:12], ibmWords[float32(i%4)])
		binary.BigEndian.PutUint32(rec[12:16], ibmWords[0.5])
	}

	return trace, rangefetch.NewMemoryFetcher(map[string][]byte{testURL: buf})
}

func TestTraceIndexerAt(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	rec, err := ix.At(context.Background(), 2)
	require.NoError(t, err)

	require.Equal(t, int64(3), rec.Header["trace_no"])
	require.Equal(t, int64(102), rec.Header["flag"])

	// On-disk IBM32 decodes to float32.
	require.Equal(t, format.Float32, rec.Data.Format)
	require.Equal(t, []float32{2.0, 0.5}, rec.Data.Float32)
}

func TestTraceIndexerListOrderAndDuplicates(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	result, err := ix.List(context.Background(), []int{3, 0, 3})
	require.NoError(t, err)
	records, ok := result.([]TraceRecord)
	require.True(t, ok)
	require.Len(t, records, 3)

	// Output position k corresponds to requested index k, independent of
	// fetch or merge order.
	require.Equal(t, int64(4), records[0].Header["trace_no"])
	require.Equal(t, int64(1), records[1].Header["trace_no"])
	require.Equal(t, int64(4), records[2].Header["trace_no"])

	// Duplicate indices yield independent copies: both decode bit-exact,
	// and mutating one does not leak into the other.
	require.Equal(t, []float32{3.0, 0.5}, records[0].Data.Float32)
	require.Equal(t, []float32{3.0, 0.5}, records[2].Data.Float32)
	records[0].Data.Float32[0] = -1
	require.Equal(t, float32(3.0), records[2].Data.Float32[0])
}

// sliceRecords runs Slice and unwraps the default []TraceRecord shape.
func sliceRecords(t *testing.T, ix *TraceIndexer, s Slice) []TraceRecord {
	t.Helper()

	result, err := ix.Slice(context.Background(), s)
	require.NoError(t, err)
	records, ok := result.([]TraceRecord)
	require.True(t, ok)
	return records
}

func TestTraceIndexerSliceDefaults(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	records := sliceRecords(t, ix, Slice{Step: 1})
	require.Len(t, records, 4)
	for i, rec := range records {
		require.Equal(t, int64(i+1), rec.Header["trace_no"])
	}
}

func TestTraceIndexerSliceStepped(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	records := sliceRecords(t, ix, Slice{Step: 2})
	require.Len(t, records, 2)
	require.Equal(t, int64(1), records[0].Header["trace_no"])
	require.Equal(t, int64(3), records[1].Header["trace_no"])
}

func TestTraceIndexerSliceNegativeStep(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	start, stop := 3, 0
	records := sliceRecords(t, ix, Slice{Start: &start, Stop: &stop, Step: -1})
	require.Len(t, records, 3)
	require.Equal(t, int64(4), records[0].Header["trace_no"])
	require.Equal(t, int64(2), records[2].Header["trace_no"])
}

func TestTraceIndexerSliceUnboundedReverse(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	// Both bounds nil with a negative step walks the whole file backwards,
	// trace count-1 down to 0 inclusive.
	records := sliceRecords(t, ix, Slice{Step: -1})
	require.Len(t, records, 4)
	for i, rec := range records {
		require.Equal(t, int64(4-i), rec.Header["trace_no"])
	}
}

func TestTraceIndexerSliceZeroStep(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	_, err := ix.Slice(context.Background(), Slice{Step: 0})
	require.ErrorIs(t, err, errs.ErrBadSlice)
}

func TestTraceIndexerOutOfBounds(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	for _, bad := range []int{-1, 4} {
		_, err := ix.At(context.Background(), bad)
		require.Error(t, err)

		var oob *errs.OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		require.Equal(t, []int{bad}, oob.Indices)
		require.Equal(t, 4, oob.Max)
	}
}

func TestTraceIndexerListTable(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	frame, err := ix.ListTable(context.Background(), []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, frame.Rows())
	require.Equal(t, []string{"trace_no", "flag"}, frame.Columns())

	col, ok := frame.Column("trace_no")
	require.True(t, ok)
	require.Equal(t, []float64{1, 3}, col)
}

func TestTraceIndexerHeadersAsTable(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4,
		WithPostProcess(PostProcessConfig{HeadersAsTable: true}))

	result, err := ix.List(context.Background(), []int{1, 3})
	require.NoError(t, err)

	tbl, ok := result.(*TraceTable)
	require.True(t, ok)
	require.Equal(t, 2, tbl.Header.Rows())

	col, ok := tbl.Header.Column("trace_no")
	require.True(t, ok)
	require.Equal(t, []float64{2, 4}, col)

	// Sample data rides alongside the tabular headers, row-aligned.
	require.Len(t, tbl.Data, 2)
	require.Equal(t, []float32{1.0, 0.5}, tbl.Data[0].Float32)
	require.Equal(t, []float32{3.0, 0.5}, tbl.Data[1].Float32)
}

func TestHeaderIndexerList(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewHeaderIndexer(trace, fetcher, testURL, 4)

	result, err := ix.List(context.Background(), []int{1, 0})
	require.NoError(t, err)

	headers, ok := result.([]Header)
	require.True(t, ok)
	require.Len(t, headers, 2)
	require.Equal(t, int64(2), headers[0]["trace_no"])
	require.Equal(t, int64(1), headers[1]["trace_no"])
}

func TestHeaderIndexerHeadersAsTable(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewHeaderIndexer(trace, fetcher, testURL, 4,
		WithPostProcess(PostProcessConfig{HeadersAsTable: true}))

	result, err := ix.List(context.Background(), []int{0, 1, 2})
	require.NoError(t, err)

	frame, ok := result.(*table.Frame)
	require.True(t, ok)
	require.Equal(t, 3, frame.Rows())

	got, ok := frame.At("flag", 2)
	require.True(t, ok)
	require.Equal(t, float64(102), got)
}

func TestHeaderIndexerAt(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewHeaderIndexer(trace, fetcher, testURL, 4)

	h, err := ix.At(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, int64(4), h["trace_no"])
	require.Equal(t, int64(103), h["flag"])
}

func TestDataIndexerIBMConversion(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewDataIndexer(trace, fetcher, testURL, 4)

	samples, err := ix.List(context.Background(), []int{0, 1})
	require.NoError(t, err)
	require.Len(t, samples, 2)

	require.Equal(t, format.Float32, samples[0].Format)
	require.Equal(t, []float32{0.0, 0.5}, samples[0].Float32)
	require.Equal(t, []float32{1.0, 0.5}, samples[1].Float32)
	require.Equal(t, 2, samples[0].Len())
}

func TestDataIndexerInt16(t *testing.T) {
	header, err := descriptor.NewStructuredDataTypeDescriptor([]descriptor.StructuredFieldDescriptor{
		{Name: "trace_no", Offset: 0, Format: format.Int32, Endianness: format.BigEndian},
	}, 4, 0)
	require.NoError(t, err)

	trace := &descriptor.TraceDescriptor{
		Header: header,
		Data:   descriptor.TraceDataDescriptor{Format: format.Int16, Endianness: format.BigEndian, Samples: 3},
		Offset: 0,
	}

	buf := make([]byte, 2*trace.Stride())
	for i := range 2 {
		rec := buf[i*trace.Stride():]
		binary.BigEndian.PutUint32(rec[0:4], uint32(i))
		for s := range 3 {
			binary.BigEndian.PutUint16(rec[4+2*s:6+2*s], uint16(int16(100*i-s)))
		}
	}
	fetcher := rangefetch.NewMemoryFetcher(map[string][]byte{testURL: buf})

	ix := NewDataIndexer(trace, fetcher, testURL, 2)
	samples, err := ix.At(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, format.Int16, samples.Format)
	require.Equal(t, []int16{100, 99, 98}, samples.Int16)
}

func TestIndexerSmallMaxBlockStillDecodes(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)

	// A block bound of one stride keeps non-adjacent traces in separate
	// fetches; results must be identical to a single merged fetch.
	ix := NewTraceIndexer(trace, fetcher, testURL, 4, WithMaxBlock(int64(trace.Stride())))

	result, err := ix.List(context.Background(), []int{0, 2})
	require.NoError(t, err)
	records, ok := result.([]TraceRecord)
	require.True(t, ok)
	require.Equal(t, int64(1), records[0].Header["trace_no"])
	require.Equal(t, int64(3), records[1].Header["trace_no"])
	require.Equal(t, float32(0.5), records[0].Data.Float32[1])
	require.Equal(t, float32(2.0), records[1].Data.Float32[0])
}

func TestIndexerEmptyList(t *testing.T) {
	trace, fetcher := buildTraceFixture(t, 4)
	ix := NewTraceIndexer(trace, fetcher, testURL, 4)

	result, err := ix.List(context.Background(), nil)
	require.NoError(t, err)
	records, ok := result.([]TraceRecord)
	require.True(t, ok)
	require.Empty(t, records)
}
