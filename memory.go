package pixconv

import (
	"sync"
	"sync/atomic"
)

// Memory is a reference-counted byte block. It starts with one reference;
// when the last reference is released the block goes back to the pool it
// came from.
//
// Memory implements Referable, so it can back the planes of a BitmapData.
type Memory struct {
	data []byte
	refs atomic.Int32
	pool *MemoryPool
}

// NewMemory returns a zeroed block of size bytes from the default pool.
func NewMemory(size int) *Memory {
	return defaultMemoryPool.Get(size)
}

// Bytes returns the block's bytes. They must not be used after the last
// Release.
func (m *Memory) Bytes() []byte {
	return m.data
}

// Retain adds a reference.
func (m *Memory) Retain() {
	m.refs.Add(1)
}

// Release drops a reference. Releasing more often than retaining panics.
func (m *Memory) Release() {
	n := m.refs.Add(-1)
	switch {
	case n < 0:
		panic("pixconv: Memory released more times than retained")
	case n == 0 && m.pool != nil:
		m.pool.put(m)
	}
}

// RefCount returns the current number of references.
func (m *Memory) RefCount() int {
	return int(m.refs.Load())
}

// MemoryPool recycles Memory blocks grouped by exact size.
//
// Thread safety: All methods are safe for concurrent use.
type MemoryPool struct {
	mu      sync.Mutex
	buckets map[int][]*Memory
	maxSize int // max blocks per bucket
}

// NewMemoryPool creates a pool keeping at most maxPerBucket released
// blocks of each size. A maxPerBucket of 0 means unlimited.
func NewMemoryPool(maxPerBucket int) *MemoryPool {
	return &MemoryPool{
		buckets: make(map[int][]*Memory),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed block of size bytes with one reference, reusing a
// released block when one is available.
func (p *MemoryPool) Get(size int) *Memory {
	size = max(size, 0)

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		m := bucket[n-1]
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()

		clear(m.data)
		m.refs.Store(1)
		Logger().Debug("pixconv: memory reused", "size", size)
		return m
	}
	p.mu.Unlock()

	m := &Memory{data: make([]byte, size), pool: p}
	m.refs.Store(1)
	return m
}

// put stores a released block, or drops it when its bucket is full.
func (p *MemoryPool) put(m *Memory) {
	size := len(m.data)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		Logger().Debug("pixconv: memory bucket full", "size", size)
		return
	}
	p.buckets[size] = append(bucket, m)
}

// Len returns the number of released blocks held by the pool.
func (p *MemoryPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultMemoryPool backs NewMemory.
var defaultMemoryPool = NewMemoryPool(8)
