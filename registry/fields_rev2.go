package registry

import (
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/format"
)

// binaryHeaderFieldsRev2Extra are the fields Rev2 adds on top of Rev1's
// binary file header: the byte-order verification value (the
// little-endian signal file.Open uses to pick an EndianEngine before
// specializing the trace descriptor) and a couple of Rev2 bookkeeping
// fields.
func binaryHeaderFieldsRev2Extra() []descriptor.StructuredFieldDescriptor {
	return []descriptor.StructuredFieldDescriptor{
		{Name: "byte_order_verification", Offset: 96, Format: format.Int32, Endianness: format.BigEndian, Description: "Byte Order Verification Value"},
		{Name: "max_num_additional_trace_headers", Offset: 306, Format: format.Int16, Endianness: format.BigEndian, Description: "Maximum Number of Additional Trace Headers"},
		{Name: "time_basis_code", Offset: 308, Format: format.Int16, Endianness: format.BigEndian, Description: "Time Basis Code"},
	}
}

// rev2BinaryHeaderFields returns the full Rev2 binary header field set:
// Rev1's fields plus Rev2's additive overlay. Rev2.1 reuses this set
// unchanged; it clarifies semantics without relocating or adding binary
// header fields this reader cares about.
func rev2BinaryHeaderFields() []descriptor.StructuredFieldDescriptor {
	return append(rev1BinaryHeaderFields(), binaryHeaderFieldsRev2Extra()...)
}

// rev2TraceHeaderFields returns the Rev2 trace header field set. Rev2
// permits additional trace header fields (coordinate scalars, alternate
// measurement units) beyond Rev1's, but none this reader's declarative
// model requires beyond what Rev1 already names; Rev2 is carried here as
// its own field set, rather than aliased to Rev1's, so a future overlay
// has a home without touching Rev1's table.
func rev2TraceHeaderFields() []descriptor.StructuredFieldDescriptor {
	return rev1TraceHeaderFields()
}
