package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
)

func TestNewStructuredDataTypeDescriptorCompilesLayout(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int32, Endianness: format.BigEndian},
		{Name: "b", Offset: 4, Format: format.Int16, Endianness: format.BigEndian},
	}

	d, err := NewStructuredDataTypeDescriptor(fields, 8, 0)
	require.NoError(t, err)
	require.Equal(t, 8, d.ItemSize())

	layout := d.Layout()
	require.Equal(t, 8, layout.ItemSize)
	require.Len(t, layout.Fields, 2)
	require.Equal(t, "a", layout.Fields[0].Name)
	require.Equal(t, 4, layout.Fields[0].Width)
	require.Equal(t, "b", layout.Fields[1].Name)
	require.Equal(t, 2, layout.Fields[1].Width)
}

func TestNewStructuredDataTypeDescriptorAllowsGaps(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int16},
		{Name: "b", Offset: 6, Format: format.Int16},
	}

	d, err := NewStructuredDataTypeDescriptor(fields, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 10, d.ItemSize())
}

func TestNewStructuredDataTypeDescriptorDetectsOverlap(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int32},
		{Name: "b", Offset: 2, Format: format.Int32},
	}

	_, err := NewStructuredDataTypeDescriptor(fields, 8, 0)
	require.ErrorIs(t, err, errs.ErrSchemaOverlap)
}

func TestNewStructuredDataTypeDescriptorDetectsOversize(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 6, Format: format.Int32},
	}

	_, err := NewStructuredDataTypeDescriptor(fields, 8, 0)
	require.ErrorIs(t, err, errs.ErrSchemaOversize)
}

func TestNewStructuredDataTypeDescriptorDetectsDuplicateNames(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int16},
		{Name: "a", Offset: 2, Format: format.Int16},
	}

	_, err := NewStructuredDataTypeDescriptor(fields, 8, 0)
	require.ErrorIs(t, err, errs.ErrDuplicateFieldName)
}

func TestStructuredDataTypeDescriptorField(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int16},
	}
	d, err := NewStructuredDataTypeDescriptor(fields, 2, 0)
	require.NoError(t, err)

	f, ok := d.Field("a")
	require.True(t, ok)
	require.Equal(t, 0, f.Offset)

	_, ok = d.Field("missing")
	require.False(t, ok)
}

func TestStructuredDataTypeDescriptorCloneIsolation(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int32, Endianness: format.BigEndian},
	}
	d, err := NewStructuredDataTypeDescriptor(fields, 4, 0)
	require.NoError(t, err)

	clone := d.Clone()
	originalFields := d.Fields()
	cloneFields := clone.Fields()
	cloneFields[0].Name = "mutated"

	require.Equal(t, "a", originalFields[0].Name)
	require.NotEqual(t, d.Fields()[0].Name, cloneFields[0].Name)
}

// TestStructuredDataTypeDescriptorFieldsReturnsCopy checks that mutating
// a returned Fields() slice never reaches back into the descriptor's own
// state.
func TestStructuredDataTypeDescriptorFieldsReturnsCopy(t *testing.T) {
	fields := []StructuredFieldDescriptor{
		{Name: "a", Offset: 0, Format: format.Int8},
	}
	d, err := NewStructuredDataTypeDescriptor(fields, 1, 0)
	require.NoError(t, err)

	got := d.Fields()
	got[0].Offset = 99

	require.Equal(t, 0, d.Fields()[0].Offset)
}
