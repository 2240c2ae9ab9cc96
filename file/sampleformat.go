package file

import (
	"fmt"

	"github.com/amitpendharkar/segy/format"
)

// sampleFormatFromCode maps the SEG-Y binary header's "Data Sample Format
// Code" to the ScalarType the codec decodes it to. Codes 7 and 15 (3-byte
// integers) have no representation in format.ScalarType, which only
// carries power-of-two widths; files using them are rejected rather than
// silently misread.
func sampleFormatFromCode(code int64) (format.ScalarType, error) {
	switch code {
	case 1:
		return format.IBM32, nil
	case 2:
		return format.Int32, nil
	case 3:
		return format.Int16, nil
	case 4:
		// Fixed-point with gain, obsolete since Rev1; no distinct on-disk
		// width from a plain 4-byte integer.
		return format.Int32, nil
	case 5:
		return format.Float32, nil
	case 6:
		return format.Float64, nil
	case 8:
		return format.Int8, nil
	case 9:
		return format.Int64, nil
	case 10:
		return format.Uint32, nil
	case 11:
		return format.Uint16, nil
	case 12:
		return format.Uint64, nil
	case 16:
		return format.Uint8, nil
	default:
		return 0, fmt.Errorf("file: unsupported data sample format code %d", code)
	}
}
