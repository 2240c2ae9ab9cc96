// Package cachekey hashes a fetched byte range's identity (url, start,
// end) into a stable, collision-resistant 64-bit key via internal/hash,
// so package cache does not re-derive its own hashing scheme.
package cachekey

import (
	"encoding/binary"

	"github.com/amitpendharkar/segy/internal/hash"
)

// Hash computes a stable 64-bit key for the byte range [start, end) of
// url.
func Hash(url string, start, end int64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(start))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(end))
	return hash.ID(url + string(buf[:]))
}
