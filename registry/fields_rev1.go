package registry

import (
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/format"
)

// binaryHeaderFieldsRev1Extra are the fields Rev1 adds to the Rev0 binary
// file header: the revision number itself (needed to auto-detect a
// binary header's standard), a fixed-length-trace flag, and the count of
// 3200-byte extended text headers that follow the binary header.
func binaryHeaderFieldsRev1Extra() []descriptor.StructuredFieldDescriptor {
	return []descriptor.StructuredFieldDescriptor{
		{Name: "segy_revision", Offset: 300, Format: format.Uint16, Endianness: format.BigEndian, Description: "SEG-Y Format Revision Number"},
		{Name: "fixed_length_trace_flag", Offset: 302, Format: format.Int16, Endianness: format.BigEndian, Description: "Fixed Length Trace Flag"},
		{Name: "num_extended_text_headers", Offset: 304, Format: format.Int16, Endianness: format.BigEndian, Description: "Number of Extended Textual File Header Records"},
	}
}

// traceHeaderFieldsRev1Extra are the fields Rev1 adds to the Rev0 trace
// header, starting at byte 180 (immediately after Rev0's last field,
// over_travel, which ends at 180).
func traceHeaderFieldsRev1Extra() []descriptor.StructuredFieldDescriptor {
	be := format.BigEndian

	return []descriptor.StructuredFieldDescriptor{
		{Name: "cdp_x", Offset: 180, Format: format.Int32, Endianness: be, Description: "X Coordinate of Ensemble (CDP) Position"},
		{Name: "cdp_y", Offset: 184, Format: format.Int32, Endianness: be, Description: "Y Coordinate of Ensemble (CDP) Position"},
		{Name: "inline_no", Offset: 188, Format: format.Int32, Endianness: be, Description: "In-line Number (3D post-stack)"},
		{Name: "crossline_no", Offset: 192, Format: format.Int32, Endianness: be, Description: "Cross-line Number (3D post-stack)"},
		{Name: "shotpoint_no", Offset: 196, Format: format.Int32, Endianness: be, Description: "Shotpoint Number"},
		{Name: "scalar_shotpoint", Offset: 200, Format: format.Int16, Endianness: be, Description: "Scalar to be Applied to the Shotpoint Number"},
		{Name: "trace_value_measurement_unit", Offset: 202, Format: format.Int16, Endianness: be, Description: "Trace Value Measurement Unit"},
	}
}

// rev1BinaryHeaderFields returns the full Rev1 binary header field set:
// Rev0's fields plus Rev1's additive overlay.
func rev1BinaryHeaderFields() []descriptor.StructuredFieldDescriptor {
	return append(binaryHeaderFieldsRev0(), binaryHeaderFieldsRev1Extra()...)
}

// rev1TraceHeaderFields returns the full Rev1 trace header field set:
// Rev0's fields plus Rev1's additive overlay.
func rev1TraceHeaderFields() []descriptor.StructuredFieldDescriptor {
	return append(traceHeaderFieldsRev0(), traceHeaderFieldsRev1Extra()...)
}
