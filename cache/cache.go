package cache

import (
	"container/list"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/amitpendharkar/segy/format"
	"github.com/amitpendharkar/segy/internal/cachekey"
)

// Key identifies a single fetched byte range within a source file.
type Key struct {
	URL   string
	Start int64
	End   int64
}

func (k Key) hash() uint64 {
	return cachekey.Hash(k.URL, k.Start, k.End)
}

type entry struct {
	hash       uint64
	key        Key
	compressed []byte
	size       int
}

// Cache is a bounded, in-process LRU cache of previously fetched byte
// ranges. It exists so readers that repeatedly touch overlapping trace
// windows - typical of interactive gather/window workflows - do not
// re-fetch the same bytes from a remote backend on every access.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	maxBytes  int
	usedBytes int
	codec     Codec
	log       *zap.Logger
	entries   map[uint64]*list.Element
	lru       *list.List
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithCapacityBytes sets the cache's resident-byte budget. The default is
// 64 MiB.
func WithCapacityBytes(n int) Option {
	return func(c *Cache) { c.maxBytes = n }
}

// WithCompression sets the codec used to compress resident entries. The
// default is CompressionNone.
func WithCompression(t format.CompressionType) Option {
	return func(c *Cache) {
		codec, err := CreateCodec(t)
		if err != nil {
			// Construction-time option: an invalid compression type is a
			// programming error in the caller, not a runtime condition.
			panic(fmt.Sprintf("cache: %v", err))
		}
		c.codec = codec
	}
}

// WithLogger attaches a logger for eviction and compression diagnostics.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) { c.log = log }
}

const defaultCapacityBytes = 64 << 20 // 64 MiB

// New constructs an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		maxBytes: defaultCapacityBytes,
		codec:    NewNoOpCompressor(),
		log:      zap.NewNop(),
		entries:  make(map[uint64]*list.Element),
		lru:      list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the bytes previously stored under key, if present.
func (c *Cache) Get(key Key) ([]byte, bool) {
	h := key.hash()

	c.mu.Lock()
	elem, ok := c.entries[h]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}
	c.lru.MoveToFront(elem)
	ent := elem.Value.(*entry) //nolint: forcetypeassert
	compressed := ent.compressed
	c.mu.Unlock()

	data, err := c.codec.Decompress(compressed)
	if err != nil {
		c.log.Warn("cache: decompress failed, treating as miss", zap.Error(err))
		return nil, false
	}
	return data, true
}

// Put stores data under key, evicting least-recently-used entries as
// needed to stay within the configured byte budget.
func (c *Cache) Put(key Key, data []byte) {
	compressed, err := c.codec.Compress(data)
	if err != nil {
		c.log.Warn("cache: compress failed, storing raw", zap.Error(err))
		compressed = make([]byte, len(data))
		copy(compressed, data)
	}

	h := key.hash()
	size := len(compressed)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[h]; ok {
		ent := elem.Value.(*entry) //nolint: forcetypeassert
		c.usedBytes -= ent.size
		ent.compressed = compressed
		ent.size = size
		c.usedBytes += size
		c.lru.MoveToFront(elem)
		c.evictLocked()
		return
	}

	ent := &entry{hash: h, key: key, compressed: compressed, size: size}
	elem := c.lru.PushFront(ent)
	c.entries[h] = elem
	c.usedBytes += size
	c.evictLocked()
}

func (c *Cache) evictLocked() {
	for c.usedBytes > c.maxBytes {
		elem := c.lru.Back()
		if elem == nil {
			return
		}
		ent := elem.Value.(*entry) //nolint: forcetypeassert
		c.lru.Remove(elem)
		delete(c.entries, ent.hash)
		c.usedBytes -= ent.size
		c.log.Debug("cache: evicted range",
			zap.String("url", ent.key.URL),
			zap.Int64("start", ent.key.Start),
			zap.Int64("end", ent.key.End),
		)
	}
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
