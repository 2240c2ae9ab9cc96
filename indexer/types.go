// Package indexer implements the three region-scoped views over a SEG-Y
// file's traces: whole-trace, header-only, and data-only. Each shares one
// skeleton (plan ranges, fetch, reassemble, normalize) parameterized by a
// rangeplan.Region, eliminating the need for an indexer base class.
package indexer

import "github.com/amitpendharkar/segy/format"

// Header is one trace's (or the binary file header's) decoded field set,
// keyed by field name. Values are the field's natively-typed decoded
// value: int64 for signed integer families, uint64 for unsigned, float64
// for float/ibm families (ibm32 always decodes to a float32 value
// widened to float64 here).
type Header map[string]any

// Samples is one trace's decoded sample vector. Exactly one of the typed
// slices is populated, selected by Format; Format is the *decoded*
// format, so an on-disk Ibm32 trace reports Format == format.Float32 and
// populates Float32: the codec always converts IBM words to IEEE float32
// during decode.
type Samples struct {
	Format  format.ScalarType
	Int8    []int8
	Uint8   []uint8
	Int16   []int16
	Uint16  []uint16
	Int32   []int32
	Uint32  []uint32
	Int64   []int64
	Uint64  []uint64
	Float32 []float32
	Float64 []float64
}

// Len returns the number of samples in whichever slice is populated.
func (s Samples) Len() int {
	switch s.Format {
	case format.Int8:
		return len(s.Int8)
	case format.Uint8:
		return len(s.Uint8)
	case format.Int16:
		return len(s.Int16)
	case format.Uint16:
		return len(s.Uint16)
	case format.Int32:
		return len(s.Int32)
	case format.Uint32:
		return len(s.Uint32)
	case format.Int64:
		return len(s.Int64)
	case format.Uint64:
		return len(s.Uint64)
	case format.Float64:
		return len(s.Float64)
	default:
		return len(s.Float32)
	}
}

// TraceRecord is one trace's full decode: header fields plus sample data.
type TraceRecord struct {
	Header Header
	Data   Samples
}

// PostProcessConfig is the indexer family's single extensible
// post-process option bag, modeled as a plain struct rather than a
// dynamic keyword-arg map.
type PostProcessConfig struct {
	// HeadersAsTable, if true, makes TraceIndexer/HeaderIndexer return a
	// *table.Frame for the header portion instead of a []Header slice.
	// DataIndexer ignores this option.
	HeadersAsTable bool
}

// Slice selects a half-open, possibly-reversed range of trace indices,
// mirroring Python slice semantics. When nil, Start and Stop default to 0
// and the file's trace count for a positive Step, and to trace count-1 and
// -1 (so index 0 is included) for a negative Step. Negative Start or Stop
// values are not wrapped around. Step must be non-zero.
type Slice struct {
	Start *int
	Stop  *int
	Step  int
}
