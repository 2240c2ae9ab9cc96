package codec

// FieldSpan describes one fixed-width scalar field within a structured
// record, for the purposes of an in-place endian swap. Width must be one
// of 1, 2, 4, or 8; width-1 fields are left untouched (swapping a single
// byte is a no-op, but SwapRecord still accepts them for descriptor-driven
// callers that don't special-case scalar width).
type FieldSpan struct {
	Offset int
	Width  int
}

// SwapRecord reverses the byte order of every field in spans within a
// single record occupying buf[0:itemSize]. It is the caller's
// responsibility to pass spans whose offsets and widths were already
// validated against itemSize by the descriptor layer.
func SwapRecord(buf []byte, spans []FieldSpan) {
	for _, s := range spans {
		switch s.Width {
		case 1:
			// nothing to swap
		case 2:
			buf[s.Offset], buf[s.Offset+1] = buf[s.Offset+1], buf[s.Offset]
		case 4:
			b := buf[s.Offset : s.Offset+4]
			b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
		case 8:
			b := buf[s.Offset : s.Offset+8]
			b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7] =
				b[7], b[6], b[5], b[4], b[3], b[2], b[1], b[0]
		}
	}
}

// SwapRecords applies SwapRecord to every consecutive itemSize-byte record
// in buf. len(buf) must be a multiple of itemSize.
func SwapRecords(buf []byte, itemSize int, spans []FieldSpan) {
	for off := 0; off+itemSize <= len(buf); off += itemSize {
		SwapRecord(buf[off:off+itemSize], spans)
	}
}

// SwapUniform reverses the byte order of every contiguous width-byte
// scalar in buf in place. It is used for trace sample blocks, which are a
// uniform vector of one scalar type rather than a structured record.
func SwapUniform(buf []byte, width int) {
	if width <= 1 {
		return
	}
	for off := 0; off+width <= len(buf); off += width {
		b := buf[off : off+width]
		for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
	}
}
