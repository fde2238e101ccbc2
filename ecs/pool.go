package ecs

// pool is a fixed-capacity free-list allocator. It hands out slot indices
// into its backing array and reclaims them in LIFO order: the most recently
// released index is the next one acquired. The free list and the allocated
// set always partition the full index range exactly once.
//
// The original engine stamped out one of these per element type with a macro;
// a single generic type covers every instantiation here.
type pool[T any] struct {
	free  []uint16
	data  []T
	fatal FatalFunc
}

func newPool[T any](capacity int, fatal FatalFunc) *pool[T] {
	p := &pool[T]{
		free:  make([]uint16, capacity),
		data:  make([]T, capacity),
		fatal: fatal,
	}
	// Stack the free list so that index 0 is acquired first.
	for i := range p.free {
		p.free[i] = uint16(capacity - (i + 1))
	}
	return p
}

// acquire removes and returns an index from the free set. Exhaustion is a
// fatal condition; the caller is expected to have checked freeCount first if
// it wants a friendlier diagnostic.
func (p *pool[T]) acquire() uint16 {
	if len(p.free) == 0 {
		p.fatal("pool.acquire", "pool exhausted")
		return 0
	}
	index := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return index
}

// release returns an index to the free set. Releasing into a full free list
// means the caller freed an index twice, which is an internal-consistency
// fault rather than a recoverable error.
func (p *pool[T]) release(index uint16) {
	if len(p.free) == cap(p.free) {
		p.fatal("pool.release", "double release")
		return
	}
	p.free = append(p.free, index)
}

func (p *pool[T]) freeCount() int {
	return len(p.free)
}

func (p *pool[T]) capacity() int {
	return len(p.data)
}

// at returns the element stored at the given slot index.
func (p *pool[T]) at(index uint16) *T {
	return &p.data[index]
}
