package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDKnownVector(t *testing.T) {
	// The canonical xxHash64 seed-0 digest of the empty input, pinned so a
	// dependency upgrade that silently changed the algorithm (and thereby
	// invalidated every resident cache entry's key) would fail loudly.
	assert.Equal(t, uint64(0xef46db3751d8e999), ID(""))
}

func TestIDIsDeterministic(t *testing.T) {
	key := "s3://surveys/line001.sgy\x00\x00\x00\x00\x00\x00\x0e\x10"
	assert.Equal(t, ID(key), ID(key))
}

func TestIDSeparatesCacheKeyShapes(t *testing.T) {
	// Range-cache keys combine a URL with a range's start and end offsets
	// (written out as text here); nearby ranges and sibling files must land
	// on distinct IDs.
	keys := []string{
		"s3://surveys/line001.sgy|3600|3856",
		"s3://surveys/line001.sgy|3600|3857",
		"s3://surveys/line001.sgy|3601|3856",
		"s3://surveys/line002.sgy|3600|3856",
		"/data/line001.sgy|3600|3856",
	}

	seen := make(map[uint64]string, len(keys))
	for _, k := range keys {
		id := ID(k)
		prev, dup := seen[id]
		assert.False(t, dup, "keys %q and %q collide on %#x", prev, k, id)
		seen[id] = k
	}
}

func BenchmarkID(b *testing.B) {
	key := fmt.Sprintf("s3://surveys/line001.sgy|%d|%d", 3600, 3600+240)
	b.ResetTimer()
	for b.Loop() {
		ID(key)
	}
}
