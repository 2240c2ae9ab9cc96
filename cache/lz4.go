package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const lz4MaxDecompressBuffer = 128 << 20 // 128 MiB

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return new(lz4.Compressor)
	},
}

// LZ4Compressor compresses and decompresses range-cache entries with LZ4,
// trading compression ratio for the lowest decode latency of the available
// codecs.
type LZ4Compressor struct{}

// NewLZ4Compressor returns the default LZ4 codec.
func NewLZ4Compressor() *LZ4Compressor {
	return &LZ4Compressor{}
}

func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	comp, ok := lz4CompressorPool.Get().(*lz4.Compressor)
	if !ok {
		return nil, fmt.Errorf("cache: lz4 compressor pool returned unexpected type")
	}
	defer lz4CompressorPool.Put(comp)

	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := comp.CompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("cache: lz4 compress failed: %w", err)
	}
	if n == 0 {
		// Incompressible input; lz4 signals this by writing nothing. Store
		// the literal bytes so Decompress has a well-defined inverse.
		return append([]byte{0}, data...), nil
	}
	return append([]byte{1}, buf[:n]...), nil
}

func (c *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cache: lz4 decompress: empty input")
	}
	marker, payload := data[0], data[1:]
	if marker == 0 {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	for size := len(payload) * 4; ; size *= 2 {
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err == nil {
			return out[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("cache: lz4 decompress failed: %w", err)
		}
		if size >= lz4MaxDecompressBuffer {
			return nil, fmt.Errorf("cache: lz4 decompress exceeded %d byte cap", lz4MaxDecompressBuffer)
		}
	}
}
