package descriptor

import "github.com/amitpendharkar/segy/format"

// TraceDataDescriptor describes a trace's sample vector: its wire format,
// endianness, and sample count. Its on-disk width is Samples*Format.Width()
// bytes; for IBM32, the stored width matches Float32 (4 bytes) even though
// the codec always normalizes it to Float32 on decode.
type TraceDataDescriptor struct {
	Format     format.ScalarType
	Endianness format.Endianness
	Samples    int
}

// Width returns the sample block's on-disk byte size.
func (d TraceDataDescriptor) Width() int {
	return d.Samples * d.Format.Width()
}

// Clone returns an independent copy. TraceDataDescriptor has no nested
// mutable state.
func (d TraceDataDescriptor) Clone() TraceDataDescriptor {
	return d
}

// TraceDescriptor describes one trace record: a fixed-size header region
// followed by a fixed-size sample region. Offset is the absolute byte
// position of the first trace in the file.
type TraceDescriptor struct {
	Header *StructuredDataTypeDescriptor
	Data   TraceDataDescriptor
	Offset int64
}

// HeaderSize returns the trace header's byte size.
func (t *TraceDescriptor) HeaderSize() int {
	return t.Header.ItemSize()
}

// DataSize returns the trace's sample block byte size.
func (t *TraceDescriptor) DataSize() int {
	return t.Data.Width()
}

// Stride returns the total on-disk byte size of one trace record: header
// plus sample data.
func (t *TraceDescriptor) Stride() int {
	return t.HeaderSize() + t.DataSize()
}

// Clone returns a deep, independent copy.
func (t *TraceDescriptor) Clone() *TraceDescriptor {
	return &TraceDescriptor{
		Header: t.Header.Clone(),
		Data:   t.Data.Clone(),
		Offset: t.Offset,
	}
}

// SegyStandard names the SEG-Y revision a descriptor was built for, or
// Custom for a user-supplied composition.
type SegyStandard uint8

const (
	Rev0 SegyStandard = iota + 1
	Rev1
	Rev2
	Rev21
	Custom
)

func (s SegyStandard) String() string {
	switch s {
	case Rev0:
		return "rev0"
	case Rev1:
		return "rev1"
	case Rev2:
		return "rev2"
	case Rev21:
		return "rev2.1"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// SegyDescriptor is the root of the descriptor tree: the textual file
// header, the binary file header, an optional extended text header, and
// the trace descriptor shared by every trace in the file.
type SegyDescriptor struct {
	Standard           SegyStandard
	TextFileHeader     TextHeaderDescriptor
	BinaryFileHeader   *StructuredDataTypeDescriptor
	ExtendedTextHeader *TextHeaderDescriptor
	Trace              *TraceDescriptor
}

// Clone returns a deep, independent copy: mutating the clone's fields,
// including its nested descriptors, never affects the original.
func (s *SegyDescriptor) Clone() *SegyDescriptor {
	clone := &SegyDescriptor{
		Standard:         s.Standard,
		TextFileHeader:   s.TextFileHeader.Clone(),
		BinaryFileHeader: s.BinaryFileHeader.Clone(),
		Trace:            s.Trace.Clone(),
	}
	if s.ExtendedTextHeader != nil {
		ext := s.ExtendedTextHeader.Clone()
		clone.ExtendedTextHeader = &ext
	}
	return clone
}

// CustomizeOptions overrides one or more slots of a SegyDescriptor,
// replacing whole field lists rather than merging into them (see
// SegyDescriptor.Customize).
type CustomizeOptions struct {
	TextFileHeader     *TextHeaderDescriptor
	BinaryHeaderFields []StructuredFieldDescriptor
	ExtendedTextHeader *TextHeaderDescriptor
	TraceHeaderFields  []StructuredFieldDescriptor
	TraceData          *TraceDataDescriptor
}

// Customize returns a new descriptor with Standard set to Custom and each
// slot named in opts replaced wholesale; slots opts leaves zero-valued are
// preserved by deep copy from the receiver.
func (s *SegyDescriptor) Customize(opts CustomizeOptions) (*SegyDescriptor, error) {
	out := s.Clone()
	out.Standard = Custom

	if opts.TextFileHeader != nil {
		out.TextFileHeader = opts.TextFileHeader.Clone()
	}

	if opts.BinaryHeaderFields != nil {
		bh, err := NewStructuredDataTypeDescriptor(opts.BinaryHeaderFields, out.BinaryFileHeader.ItemSize(), out.BinaryFileHeader.Offset())
		if err != nil {
			return nil, err
		}
		out.BinaryFileHeader = bh
	}

	if opts.ExtendedTextHeader != nil {
		ext := opts.ExtendedTextHeader.Clone()
		out.ExtendedTextHeader = &ext
	}

	if opts.TraceHeaderFields != nil {
		th, err := NewStructuredDataTypeDescriptor(opts.TraceHeaderFields, out.Trace.Header.ItemSize(), out.Trace.Header.Offset())
		if err != nil {
			return nil, err
		}
		out.Trace.Header = th
	}

	if opts.TraceData != nil {
		out.Trace.Data = opts.TraceData.Clone()
	}

	return out, nil
}
