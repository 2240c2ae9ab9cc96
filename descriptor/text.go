package descriptor

import (
	"errors"
	"strings"

	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
)

var (
	errTextTooLong     = errors.New("descriptor: text exceeds rows*cols")
	errWrongSize       = errors.New("descriptor: buffer length does not match rows*cols")
	errUnknownEncoding = errors.New("descriptor: unrecognized text encoding")
)

// TextHeaderDescriptor describes a fixed-size textual header block: the
// 3200-byte EBCDIC/ASCII file header, or a Rev1+ extended text header.
// Unlike structured descriptors, a text header does not decode into named
// fields; it exposes only Encode/Decode/Wrap against its declared encoding.
type TextHeaderDescriptor struct {
	Rows     int
	Cols     int
	Offset   int64
	Encoding format.TextEncoding
}

// Size returns the fixed byte length of the text block, Rows*Cols.
func (t TextHeaderDescriptor) Size() int {
	return t.Rows * t.Cols
}

// Clone returns an independent copy. TextHeaderDescriptor has no nested
// mutable state, so this is a plain value copy.
func (t TextHeaderDescriptor) Clone() TextHeaderDescriptor {
	return t
}

// Encode renders s as a Rows*Cols-length byte block in the descriptor's
// declared encoding, space-padding short strings. It returns DecodeError
// if s is longer than Size() or the declared encoding is not recognized;
// both encodings map every byte value, so no input byte is rejected.
func (t TextHeaderDescriptor) Encode(s string) ([]byte, error) {
	size := t.Size()
	if len(s) > size {
		return nil, &errs.DecodeError{Field: "text_header", Cause: errTextTooLong}
	}

	padded := s + strings.Repeat(" ", size-len(s))
	out := make([]byte, size)

	switch t.Encoding {
	case format.ASCII:
		copy(out, padded)
	case format.EBCDIC:
		for i := 0; i < size; i++ {
			out[i] = asciiToEBCDIC[padded[i]]
		}
	default:
		return nil, &errs.DecodeError{Field: "text_header", Cause: errUnknownEncoding}
	}

	return out, nil
}

// Decode interprets buf (which must be exactly Size() bytes) as a string
// in the descriptor's declared encoding.
func (t TextHeaderDescriptor) Decode(buf []byte) (string, error) {
	if len(buf) != t.Size() {
		return "", &errs.DecodeError{Field: "text_header", Cause: errWrongSize}
	}

	switch t.Encoding {
	case format.ASCII:
		return string(buf), nil
	case format.EBCDIC:
		out := make([]byte, len(buf))
		for i, b := range buf {
			out[i] = ebcdicToASCII[b]
		}
		return string(out), nil
	default:
		return "", &errs.DecodeError{Field: "text_header", Cause: errUnknownEncoding}
	}
}

// Wrap splits a Rows*Cols-length string into Rows lines of Cols characters
// joined by "\n", for human-readable display of a decoded text header.
func (t TextHeaderDescriptor) Wrap(s string) string {
	lines := make([]string, 0, t.Rows)
	for i := 0; i < t.Rows && i*t.Cols < len(s); i++ {
		start := i * t.Cols
		end := start + t.Cols
		if end > len(s) {
			end = len(s)
		}
		lines = append(lines, s[start:end])
	}
	return strings.Join(lines, "\n")
}
