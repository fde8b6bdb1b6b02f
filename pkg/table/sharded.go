package table

import (
	"sync"
	"sync/atomic"

	"github.com/spaolacci/murmur3"
)

// DefaultShardCount is the default number of shards.
const DefaultShardCount = 16

// Sharded is concurrent keyed storage. Keys are spread over shards by
// murmur3 hash; each shard has its own RWMutex.
type Sharded struct {
	shards    []*shard
	shardMask uint32
	seed      uint32
	version   atomic.Uint64
}

type shard struct {
	mu    sync.RWMutex
	items map[Key]any
}

// NewSharded creates a sharded container with the default shard count.
func NewSharded() *Sharded {
	return NewShardedWithCount(DefaultShardCount)
}

// NewShardedWithCount creates a sharded container with the specified
// shard count. shardCount must be a power of 2.
func NewShardedWithCount(shardCount int) *Sharded {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = DefaultShardCount
	}

	m := &Sharded{
		shards:    make([]*shard, shardCount),
		shardMask: uint32(shardCount - 1),
		seed:      0x7ab5a3e1,
	}

	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard{
			items: make(map[Key]any),
		}
	}

	return m
}

// getShard returns the shard for a key.
func (m *Sharded) getShard(key Key) *shard {
	var scratch [16]byte // int keys encode in 9 bytes and stay on the stack
	h := murmur3.Sum32WithSeed(key.appendBytes(scratch[:0]), m.seed)
	return m.shards[h&m.shardMask]
}

// Get retrieves a value by key.
func (m *Sharded) Get(key Key) (any, bool) {
	shard := m.getShard(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	val, ok := shard.items[key]
	return val, ok
}

// Set stores a key-value pair.
func (m *Sharded) Set(key Key, value any) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.items[key] = value
	m.version.Add(1)
}

// Delete removes a key.
func (m *Sharded) Delete(key Key) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.items[key]; ok {
		delete(shard.items, key)
		m.version.Add(1)
	}
}

// Has checks if a key exists.
func (m *Sharded) Has(key Key) bool {
	_, ok := m.Get(key)
	return ok
}

// Len probes integer keys 1, 2, ... until the first absent one.
// It costs O(n) lookups; there is no cross-shard prefix bookkeeping.
func (m *Sharded) Len() int {
	n := 0
	for m.Has(IntKey(int64(n) + 1)) {
		n++
	}
	return n
}

// Count returns the total number of items.
func (m *Sharded) Count() int {
	count := 0
	for _, shard := range m.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}

// Range iterates over all key-value pairs.
//
// The callback returns false to stop iteration.
// Note: This acquires locks shard by shard, so the view may not be
// consistent, and fn must not write to the container.
func (m *Sharded) Range(fn func(key Key, value any) bool) {
	for _, shard := range m.shards {
		shard.mu.RLock()
		for k, v := range shard.items {
			if !fn(k, v) {
				shard.mu.RUnlock()
				return
			}
		}
		shard.mu.RUnlock()
	}
}

// Version returns the mutation counter.
func (m *Sharded) Version() uint64 {
	return m.version.Load()
}
