package cache

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("cache: failed to create zstd encoder: %v", err))
		}
		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("cache: failed to create zstd decoder: %v", err))
		}
		return dec
	},
}

// ZstdCompressor compresses and decompresses range-cache entries with
// Zstandard, using the pure-Go implementation from klauspost/compress.
type ZstdCompressor struct{}

// NewZstdCompressor returns the default Zstandard codec.
func NewZstdCompressor() *ZstdCompressor {
	return &ZstdCompressor{}
}

func (c *ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc, ok := zstdEncoderPool.Get().(*zstd.Encoder)
	if !ok {
		return nil, fmt.Errorf("cache: zstd encoder pool returned unexpected type")
	}
	defer zstdEncoderPool.Put(enc)

	enc.Reset(nil)
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func (c *ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	dec, ok := zstdDecoderPool.Get().(*zstd.Decoder)
	if !ok {
		return nil, fmt.Errorf("cache: zstd decoder pool returned unexpected type")
	}
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: zstd decompress failed: %w", err)
	}
	return out, nil
}
