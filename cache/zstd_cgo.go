//go:build nobuild

// A cgo binding is sometimes meaningfully faster than the pure-Go zstd
// implementation, but it is never compiled into default builds so this
// module never imposes a cgo/toolchain requirement on callers. Flip the
// build tag locally to exercise it.
package cache

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// CgoZstdCompressor compresses and decompresses range-cache entries with
// Zstandard via the cgo-backed valyala/gozstd binding.
type CgoZstdCompressor struct {
	level int
}

// NewCgoZstdCompressor returns a cgo Zstandard codec at the given level.
func NewCgoZstdCompressor(level int) *CgoZstdCompressor {
	return &CgoZstdCompressor{level: level}
}

func (c *CgoZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, c.level), nil
}

func (c *CgoZstdCompressor) Decompress(data []byte) ([]byte, error) {
	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("cache: cgo zstd decompress failed: %w", err)
	}
	return out, nil
}
