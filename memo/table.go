package memo

import (
	"sync"
	"sync/atomic"
)

// Key is a single component of a composite cache key. It must be
// comparable; callers normalize non-comparable inputs before lookup.
type Key = any

// Table is a bounded cache over composite keys, safe for concurrent use.
// Entries live in one of two generations; Store rotates the generations
// once the active one reaches maxSize, discarding the older entries.
// The head index and the generation maps are published atomically so
// readers never observe a half-rotated table.
type Table[O any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTable returns an empty Table bounded at maxSize entries per generation.
func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Table[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the active generation first, then the older one.
func (t *Table[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	m, k := t.traverse(t.gens[headIdx].Load(), keys)
	v, ok := m.Load(k)
	if !ok {
		m, k := t.traverse(t.gens[1-headIdx].Load(), keys)
		v, ok = m.Load(k)
		if !ok {
			var zero O
			return zero, false
		}
		return v.(O), true
	}
	return v.(O), true
}

// Store records value under keys in the active generation, rotating
// generations when the bound is hit. Only the rotating goroutine wins the
// size CAS; a concurrent Store may still land in the outgoing generation,
// where Load's fallback keeps it visible.
func (t *Table[O]) Store(keys []Key, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		nextIdx := 1 - t.headIdx.Load()
		t.gens[nextIdx].Store(&sync.Map{})
		t.headIdx.Store(nextIdx)
	}
	gen := t.gens[t.headIdx.Load()].Load()
	m, k := t.traverse(gen, keys)
	m.Store(k, value)
	t.size.Add(1)
}

// traverse walks the nested maps for all but the last key component,
// creating levels as needed, and returns the leaf map plus final key.
func (t *Table[O]) traverse(gen *sync.Map, keys []Key) (*sync.Map, Key) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		// LoadOrStore keeps two goroutines from installing rival levels
		// for the same component.
		v, _ := gen.LoadOrStore(k, &sync.Map{})
		gen = v.(*sync.Map)
	}
	return gen, keys[length-1]
}
