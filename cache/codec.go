// Package cache provides an optional, in-process LRU cache for byte ranges
// fetched from a SEG-Y file's backend, plus pluggable compression codecs so
// long-running readers that repeatedly touch overlapping trace windows
// (typical of seismic gather/window workflows) can keep a bounded, compact
// resident set instead of raw bytes.
//
// This has no bearing on the SEG-Y wire format: SEG-Y files are never
// compressed on disk. The codec here only governs how this process holds
// previously-fetched bytes in memory.
package cache

import (
	"fmt"

	"github.com/amitpendharkar/segy/format"
)

// Compressor compresses resident cache entries.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses resident cache entries.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression directions for a single range-cache entry.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("cache: invalid compression type: %s", compressionType)
	}
}
