// Package registry holds the immutable, per-revision descriptor trees
// (Rev0, Rev1, Rev2, Rev2.1) that the file facade specializes into a
// concrete SegyDescriptor for one opened file.
//
// A Registry is an explicit, caller-held handle rather than a package-level
// global: built-in revisions are registered by New, and Customize never
// mutates the receiving Registry or any descriptor it has already handed
// out, so tests (and concurrent callers) never alias each other's state.
package registry

import (
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
)

const (
	textHeaderOffset   = 0
	textHeaderRows     = 40
	textHeaderCols     = 80
	binaryHeaderOffset = 3200
	binaryHeaderSize   = 400
	traceHeaderSize    = 240
)

// Registry maps a SegyStandard to its immutable descriptor template.
type Registry struct {
	specs map[descriptor.SegyStandard]*descriptor.SegyDescriptor
}

// New constructs a Registry pre-populated with the built-in SEG-Y
// revisions: Rev0, Rev1, Rev2, and Rev2.1.
func New() *Registry {
	r := &Registry{specs: make(map[descriptor.SegyStandard]*descriptor.SegyDescriptor, 4)}

	r.specs[descriptor.Rev0] = mustBuild(descriptor.Rev0, binaryHeaderFieldsRev0(), traceHeaderFieldsRev0(), format.BigEndian)
	r.specs[descriptor.Rev1] = mustBuild(descriptor.Rev1, rev1BinaryHeaderFields(), rev1TraceHeaderFields(), format.BigEndian)
	r.specs[descriptor.Rev2] = mustBuild(descriptor.Rev2, rev2BinaryHeaderFields(), rev2TraceHeaderFields(), format.BigEndian)
	r.specs[descriptor.Rev21] = mustBuild(descriptor.Rev21, rev2BinaryHeaderFields(), rev2TraceHeaderFields(), format.BigEndian)

	return r
}

// mustBuild assembles one revision's SegyDescriptor template. It panics on
// a validation failure, which would indicate a bug in this package's own
// field tables, not a runtime condition any caller can hit.
func mustBuild(standard descriptor.SegyStandard, binaryFields, traceFields []descriptor.StructuredFieldDescriptor, traceEndianness format.Endianness) *descriptor.SegyDescriptor {
	binaryHeader, err := descriptor.NewStructuredDataTypeDescriptor(binaryFields, binaryHeaderSize, binaryHeaderOffset)
	if err != nil {
		panic("registry: invalid built-in binary header fields for " + standard.String() + ": " + err.Error())
	}

	traceHeader, err := descriptor.NewStructuredDataTypeDescriptor(traceFields, traceHeaderSize, 0)
	if err != nil {
		panic("registry: invalid built-in trace header fields for " + standard.String() + ": " + err.Error())
	}

	return &descriptor.SegyDescriptor{
		Standard: standard,
		TextFileHeader: descriptor.TextHeaderDescriptor{
			Rows:     textHeaderRows,
			Cols:     textHeaderCols,
			Offset:   textHeaderOffset,
			Encoding: format.EBCDIC,
		},
		BinaryFileHeader: binaryHeader,
		Trace: &descriptor.TraceDescriptor{
			Header: traceHeader,
			Data: descriptor.TraceDataDescriptor{
				Format:     format.IBM32,
				Endianness: traceEndianness,
				Samples:    0, // specialized per-file by the file facade
			},
			Offset: binaryHeaderOffset + binaryHeaderSize, // no extended text headers by default
		},
	}
}

// Get returns a deep copy of the descriptor registered for standard, so
// callers may mutate their copy (via Customize or direct field edits)
// without aliasing the registry's template or any other caller's copy.
func (r *Registry) Get(standard descriptor.SegyStandard) (*descriptor.SegyDescriptor, error) {
	spec, ok := r.specs[standard]
	if !ok {
		return nil, &errs.UnknownStandardError{Standard: standard}
	}
	return spec.Clone(), nil
}

// Register adds or replaces the template for standard. It is an explicit
// method on a caller-held Registry, never a hidden package-level mutation,
// so registering a custom standard in one test cannot leak into another.
func (r *Registry) Register(standard descriptor.SegyStandard, spec *descriptor.SegyDescriptor) {
	r.specs[standard] = spec.Clone()
}

// Customize retrieves base and applies opts to the retrieved copy,
// producing a new descriptor with Standard set to Custom. It never
// mutates the registry's own template.
func (r *Registry) Customize(base descriptor.SegyStandard, opts descriptor.CustomizeOptions) (*descriptor.SegyDescriptor, error) {
	spec, err := r.Get(base)
	if err != nil {
		return nil, err
	}
	return spec.Customize(opts)
}
