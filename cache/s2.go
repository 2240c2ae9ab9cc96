package cache

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses and decompresses range-cache entries with S2, a
// faster but lower-ratio Snappy derivative. It favors read throughput over
// resident-set size, which suits range caches holding large trace windows.
type S2Compressor struct{}

// NewS2Compressor returns the default S2 codec.
func NewS2Compressor() *S2Compressor {
	return &S2Compressor{}
}

func (c *S2Compressor) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (c *S2Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("cache: s2 decompress failed: %w", err)
	}
	return out, nil
}
