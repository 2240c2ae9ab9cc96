// Package pool provides reusable byte buffers for the module's range-read
// path, so repeated header-only and trace reads do not allocate a fresh
// staging buffer per call.
package pool

import (
	"io"
	"sync"
)

const (
	// RangeBufferDefaultSize seeds each pooled buffer at roughly one trace
	// header's worth of bytes plus slack; larger ranges grow on demand.
	RangeBufferDefaultSize = 4096
	// RangeBufferMaxThreshold discards returned buffers above one default
	// merged block, so a single large fetch does not pin that much memory
	// in the pool indefinitely.
	RangeBufferMaxThreshold = 8 << 20
)

// ByteBuffer is a length-tracked byte slice designed for pooling.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity and
// zero length.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, retaining its allocated capacity for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Slice returns bb.B[start:end]. Panics if the indices fall outside the
// buffer's capacity.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the buffer's length to n. Panics if n is negative or
// exceeds the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend lengthens the buffer by n bytes if capacity already allows it,
// reporting whether it did.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow lengthens the buffer by n bytes, reallocating if needed.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation. Small buffers step up by RangeBufferDefaultSize;
// larger ones by a quarter of their capacity, since a buffer that has
// grown past the header-read size is almost certainly staging merged
// trace blocks and will keep doing so.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RangeBufferDefaultSize
	if cap(bb.B) > 4*RangeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It never fails;
// the error return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an upper bound on the
// capacity of buffers it will retain.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers start at
// defaultSize capacity. Buffers returned with capacity above maxThreshold
// are discarded rather than retained; maxThreshold <= 0 disables the
// bound.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var rangeDefaultPool = NewByteBufferPool(RangeBufferDefaultSize, RangeBufferMaxThreshold)

// GetRangeBuffer retrieves a ByteBuffer from the shared range-read pool.
func GetRangeBuffer() *ByteBuffer {
	return rangeDefaultPool.Get()
}

// PutRangeBuffer returns a ByteBuffer to the shared range-read pool.
func PutRangeBuffer(bb *ByteBuffer) {
	rangeDefaultPool.Put(bb)
}
