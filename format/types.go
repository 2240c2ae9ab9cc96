// Package format declares the small, shared enumerations used throughout
// the segy module: scalar wire types, byte order, and the optional
// compression applied to the in-process range cache.
package format

import "fmt"

// ScalarType tags a fixed-width primitive encoding used by a structured
// field or a trace's sample vector.
type ScalarType uint8

const (
	Int8 ScalarType = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	// IBM32 is a 4-byte IBM hexadecimal floating-point word. It decodes to
	// Float32; its on-disk width matches Float32 exactly.
	IBM32
)

// scalarInfo carries the width and family of each ScalarType.
type scalarInfo struct {
	width  int
	family string
	name   string
}

var scalarTable = map[ScalarType]scalarInfo{
	Int8:    {1, "int", "int8"},
	Uint8:   {1, "uint", "uint8"},
	Int16:   {2, "int", "int16"},
	Uint16:  {2, "uint", "uint16"},
	Int32:   {4, "int", "int32"},
	Uint32:  {4, "uint", "uint32"},
	Int64:   {8, "int", "int64"},
	Uint64:  {8, "uint", "uint64"},
	Float32: {4, "float", "float32"},
	Float64: {8, "float", "float64"},
	IBM32:   {4, "ibm", "ibm32"},
}

// Width returns the on-disk byte width of the scalar type. It panics on an
// unregistered type, which indicates a programming error (an unvalidated
// descriptor reached the codec).
func (s ScalarType) Width() int {
	info, ok := scalarTable[s]
	if !ok {
		panic(fmt.Sprintf("format: unknown scalar type %d", s))
	}

	return info.width
}

// Family returns the scalar's coarse numeric family: "int", "uint",
// "float", or "ibm".
func (s ScalarType) Family() string {
	info, ok := scalarTable[s]
	if !ok {
		panic(fmt.Sprintf("format: unknown scalar type %d", s))
	}

	return info.family
}

// DecodesTo returns the ScalarType a reader observes after codec
// normalization. Every type decodes to itself except IBM32, which the
// numeric codec always converts to Float32 in place.
func (s ScalarType) DecodesTo() ScalarType {
	if s == IBM32 {
		return Float32
	}

	return s
}

func (s ScalarType) String() string {
	if info, ok := scalarTable[s]; ok {
		return info.name
	}

	return "unknown"
}

// IsValid reports whether s is a recognized member of the catalog.
func (s ScalarType) IsValid() bool {
	_, ok := scalarTable[s]
	return ok
}

// Endianness is the byte order a structured field or trace data vector is
// declared with on disk.
type Endianness uint8

const (
	// BigEndian is the byte order of Rev0/Rev1 SEG-Y files.
	BigEndian Endianness = iota + 1
	// LittleEndian is permitted by Rev2+ when signaled in the binary header.
	LittleEndian
	// NativeEndian defers to the host's byte order; the codec treats it as
	// "already correct", never swapping.
	NativeEndian
)

func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	case NativeEndian:
		return "native"
	default:
		return "unknown"
	}
}

// TextEncoding is the character encoding of a textual file header.
type TextEncoding uint8

const (
	// EBCDIC is the default SEG-Y textual header encoding (IBM code page
	// 500/037 family).
	EBCDIC TextEncoding = iota + 1
	// ASCII is permitted by Rev2 textual headers.
	ASCII
)

func (e TextEncoding) String() string {
	switch e {
	case EBCDIC:
		return "ebcdic"
	case ASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// CompressionType identifies the algorithm, if any, used to compress a
// resident entry in the range cache (package cache). This has no bearing on
// the SEG-Y wire format itself, which is never compressed.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
