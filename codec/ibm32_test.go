package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIBM32ToFloat32(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		want float32
	}{
		// 16^(65-64) * (0x100000/2^24) = 16 * 0.0625 = 1.0
		{"one", 0x41100000, 1.0},
		// zero fraction maps to signed zero regardless of exponent
		{"positiveZero", 0x00000000, 0.0},
		{"negativeZero", 0x80000000, float32(math.Copysign(0, -1))},
		// 16^(66-64) * (0x080000/2^24) = 256 * 0.03125 = 8.0
		{"eight", 0x42080000, 8.0},
		{"negativeEight", 0xC2080000, -8.0},
		// smallest nonzero fraction at exponent bias: 16^0 * (1/2^24)
		{"smallestFraction", 0x40000001, float32(1.0 / 16777216.0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IBM32ToFloat32(tc.word)
			if math.Signbit(float64(tc.want)) {
				require.True(t, math.Signbit(float64(got)))
			}
			require.InDelta(t, float64(tc.want), float64(got), 1e-12)
		})
	}
}

func TestIBM32ToFloat32Saturation(t *testing.T) {
	// Largest possible exponent field (0x7F) with a full fraction pushes
	// the IEEE exponent past 254: saturate to +inf, sign preserved.
	got := IBM32ToFloat32(0x7FFFFFFF)
	require.True(t, math.IsInf(float64(got), 1))

	got = IBM32ToFloat32(0xFFFFFFFF)
	require.True(t, math.IsInf(float64(got), -1))

	// Smallest possible exponent field (0x00) with a minimal nonzero
	// fraction underflows binary32's normal range: flush to zero.
	got = IBM32ToFloat32(0x00000001)
	require.Equal(t, float32(0), got)
}

func TestIBM32BlockToFloat32(t *testing.T) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], 0x41100000)
	binary.BigEndian.PutUint32(buf[4:8], 0xC2080000)

	IBM32BlockToFloat32(buf, binary.BigEndian)

	require.Equal(t, float32(1.0), math.Float32frombits(binary.BigEndian.Uint32(buf[0:4])))
	require.Equal(t, float32(-8.0), math.Float32frombits(binary.BigEndian.Uint32(buf[4:8])))
}
