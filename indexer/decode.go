package indexer

import (
	"math"

	"github.com/amitpendharkar/segy/codec"
	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/endian"
	"github.com/amitpendharkar/segy/format"
)

// needsSwap reports whether a field declared with endianness e must be
// byte-swapped before it can be read with the host's native engine.
// format.NativeEndian always reports false: the caller asserted the bytes
// are already host-ordered.
func needsSwap(e format.Endianness) bool {
	switch e {
	case format.BigEndian:
		return !endian.IsNativeBigEndian()
	case format.LittleEndian:
		return endian.IsNativeBigEndian()
	default:
		return false
	}
}

// DecodeHeader interprets buf (exactly layout.ItemSize bytes) against
// layout, swapping each field to host order first if its declared
// endianness disagrees with the host's. The swaps happen on a private copy,
// so buf itself is left unmodified. It is exported so package file can
// decode the binary file header with the same field-decode logic the
// indexer family uses for trace headers.
func DecodeHeader(buf []byte, layout descriptor.Layout) Header {
	return decodeHeader(append([]byte(nil), buf...), layout)
}

func decodeHeader(buf []byte, layout descriptor.Layout) Header {
	engine := endian.EngineFor(format.NativeEndian)
	out := make(Header, len(layout.Fields))

	for _, f := range layout.Fields {
		span := buf[f.Offset : f.Offset+f.Width]
		if needsSwap(f.Endianness) {
			swapInPlace(span)
		}
		out[f.Name] = decodeScalar(span, f.Family, f.Width, engine)
	}

	return out
}

// swapInPlace reverses a single scalar's bytes; it mirrors
// codec.SwapRecord's per-width cases but operates on an already-sliced
// field span rather than a full record plus an offset table.
func swapInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func decodeScalar(b []byte, family string, width int, engine endian.EndianEngine) any {
	switch width {
	case 1:
		if family == "int" {
			return int64(int8(b[0]))
		}
		return uint64(b[0])
	case 2:
		v := engine.Uint16(b)
		if family == "int" {
			return int64(int16(v))
		}
		return uint64(v)
	case 4:
		v := engine.Uint32(b)
		switch family {
		case "int":
			return int64(int32(v))
		case "float":
			return float64(math.Float32frombits(v))
		case "ibm":
			return float64(codec.IBM32ToFloat32(v))
		default:
			return uint64(v)
		}
	case 8:
		v := engine.Uint64(b)
		switch family {
		case "int":
			return int64(v)
		case "float":
			return math.Float64frombits(v)
		default:
			return v
		}
	default:
		return nil
	}
}

// decodeSamples interprets buf (exactly desc.Width() bytes) as desc.Samples
// scalars of desc.Format, swapping to host order first if desc.Endianness
// disagrees, and converting IBM32 words to Float32 in place.
func decodeSamples(buf []byte, desc descriptor.TraceDataDescriptor) Samples {
	width := desc.Format.Width()
	if needsSwap(desc.Endianness) {
		codec.SwapUniform(buf, width)
	}

	engine := endian.EngineFor(format.NativeEndian)

	if desc.Format == format.IBM32 {
		codec.IBM32BlockToFloat32(buf, engine)
		return Samples{Format: format.Float32, Float32: readFloat32s(buf, engine, desc.Samples)}
	}

	switch desc.Format {
	case format.Int8:
		out := make([]int8, desc.Samples)
		for i := range out {
			out[i] = int8(buf[i])
		}
		return Samples{Format: format.Int8, Int8: out}
	case format.Uint8:
		out := make([]uint8, desc.Samples)
		copy(out, buf[:desc.Samples])
		return Samples{Format: format.Uint8, Uint8: out}
	case format.Int16:
		out := make([]int16, desc.Samples)
		for i := range out {
			out[i] = int16(engine.Uint16(buf[i*2 : i*2+2]))
		}
		return Samples{Format: format.Int16, Int16: out}
	case format.Uint16:
		out := make([]uint16, desc.Samples)
		for i := range out {
			out[i] = engine.Uint16(buf[i*2 : i*2+2])
		}
		return Samples{Format: format.Uint16, Uint16: out}
	case format.Int32:
		out := make([]int32, desc.Samples)
		for i := range out {
			out[i] = int32(engine.Uint32(buf[i*4 : i*4+4]))
		}
		return Samples{Format: format.Int32, Int32: out}
	case format.Uint32:
		out := make([]uint32, desc.Samples)
		for i := range out {
			out[i] = engine.Uint32(buf[i*4 : i*4+4])
		}
		return Samples{Format: format.Uint32, Uint32: out}
	case format.Int64:
		out := make([]int64, desc.Samples)
		for i := range out {
			out[i] = int64(engine.Uint64(buf[i*8 : i*8+8]))
		}
		return Samples{Format: format.Int64, Int64: out}
	case format.Uint64:
		out := make([]uint64, desc.Samples)
		for i := range out {
			out[i] = engine.Uint64(buf[i*8 : i*8+8])
		}
		return Samples{Format: format.Uint64, Uint64: out}
	case format.Float32:
		return Samples{Format: format.Float32, Float32: readFloat32s(buf, engine, desc.Samples)}
	case format.Float64:
		out := make([]float64, desc.Samples)
		for i := range out {
			out[i] = math.Float64frombits(engine.Uint64(buf[i*8 : i*8+8]))
		}
		return Samples{Format: format.Float64, Float64: out}
	default:
		return Samples{Format: desc.Format}
	}
}

func readFloat32s(buf []byte, engine endian.EndianEngine, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(engine.Uint32(buf[i*4 : i*4+4]))
	}
	return out
}
