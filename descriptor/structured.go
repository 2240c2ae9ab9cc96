package descriptor

import (
	"sort"

	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
)

// StructuredFieldDescriptor names one fixed-offset scalar field within a
// structured record (a binary file header or a trace header).
type StructuredFieldDescriptor struct {
	Name        string
	Offset      int
	Format      format.ScalarType
	Endianness  format.Endianness
	Description string
}

// FieldLayout is one compiled entry of a StructuredDataTypeDescriptor's
// Layout: a field's name, absolute byte span, numeric family, and
// declared endianness, ready for the codec to consume without re-deriving
// anything from the descriptor tree.
type FieldLayout struct {
	Name       string
	Offset     int
	Width      int
	Family     string
	Endianness format.Endianness
}

// Layout is the compiled, flattened description of a structured record:
// its fields in declaration order plus the record's total byte size.
// Gaps between fields (padding) are not named; they are simply bytes no
// FieldLayout covers.
type Layout struct {
	Fields   []FieldLayout
	ItemSize int
}

// StructuredDataTypeDescriptor is an ordered set of named, fixed-offset
// fields describing one fixed-size record: a binary file header or a
// trace header. It is immutable once constructed by New; validation
// happens once, at construction, not on every Compile call.
type StructuredDataTypeDescriptor struct {
	fields   []StructuredFieldDescriptor
	itemSize int
	offset   int64
	layout   Layout
}

// NewStructuredDataTypeDescriptor validates fields for duplicate names,
// offset overlap, and out-of-bounds spans relative to itemSize, then
// compiles and returns an immutable descriptor.
//
// offset is the descriptor's absolute byte position within its parent (0
// if the descriptor is always accessed relative to some other base, such
// as a trace header embedded in a trace record).
func NewStructuredDataTypeDescriptor(fields []StructuredFieldDescriptor, itemSize int, offset int64) (*StructuredDataTypeDescriptor, error) {
	seen := make(map[string]struct{}, len(fields))
	ordered := make([]StructuredFieldDescriptor, len(fields))
	copy(ordered, fields)

	sorted := make([]StructuredFieldDescriptor, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for _, f := range ordered {
		if _, dup := seen[f.Name]; dup {
			return nil, errs.ErrDuplicateFieldName
		}
		seen[f.Name] = struct{}{}

		width := f.Format.Width()
		if f.Offset < 0 || f.Offset+width > itemSize {
			return nil, errs.ErrSchemaOversize
		}
	}

	for i := 1; i < len(sorted); i++ {
		prevEnd := sorted[i-1].Offset + sorted[i-1].Format.Width()
		if sorted[i].Offset < prevEnd {
			return nil, errs.ErrSchemaOverlap
		}
	}

	d := &StructuredDataTypeDescriptor{
		fields:   ordered,
		itemSize: itemSize,
		offset:   offset,
	}
	d.layout = d.compile()

	return d, nil
}

// compile flattens the field set into a Layout, in declaration order.
// Deterministic and pure: the same field set always compiles to the same
// Layout.
func (d *StructuredDataTypeDescriptor) compile() Layout {
	out := Layout{
		Fields:   make([]FieldLayout, len(d.fields)),
		ItemSize: d.itemSize,
	}
	for i, f := range d.fields {
		out.Fields[i] = FieldLayout{
			Name:       f.Name,
			Offset:     f.Offset,
			Width:      f.Format.Width(),
			Family:     f.Format.Family(),
			Endianness: f.Endianness,
		}
	}
	return out
}

// Layout returns the descriptor's compiled field layout.
func (d *StructuredDataTypeDescriptor) Layout() Layout { return d.layout }

// ItemSize returns the record's total byte size, including any padding.
func (d *StructuredDataTypeDescriptor) ItemSize() int { return d.itemSize }

// Offset returns the descriptor's absolute byte position within its
// parent, or 0 if it has none (embedded descriptors report 0; their
// caller supplies a base offset explicitly).
func (d *StructuredDataTypeDescriptor) Offset() int64 { return d.offset }

// Fields returns the descriptor's fields in declaration order. The
// returned slice is a copy; callers may not mutate the descriptor through
// it.
func (d *StructuredDataTypeDescriptor) Fields() []StructuredFieldDescriptor {
	out := make([]StructuredFieldDescriptor, len(d.fields))
	copy(out, d.fields)
	return out
}

// Field returns the named field's descriptor, if present.
func (d *StructuredDataTypeDescriptor) Field(name string) (StructuredFieldDescriptor, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructuredFieldDescriptor{}, false
}

// Clone returns a deep, independent copy. Construction already validated
// the field set, so Clone rebuilds via the same constructor rather than
// trusting a shallow copy to stay correct as the type grows.
func (d *StructuredDataTypeDescriptor) Clone() *StructuredDataTypeDescriptor {
	clone, err := NewStructuredDataTypeDescriptor(d.Fields(), d.itemSize, d.offset)
	if err != nil {
		// d was already validated at construction; re-validating its own
		// field set cannot fail.
		panic("descriptor: clone of valid descriptor failed: " + err.Error())
	}
	return clone
}
