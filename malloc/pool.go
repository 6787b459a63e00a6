package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"

// Pool manages fixed sized slots of type T, addressed by index.
type Pool[T any] struct {
	// 64-bit aligned stats
	n_allocs int64
	n_frees  int64
	live     int64

	slots    []T
	inuse    []uint64 // bitmap of live slots, slot 0 is always set
	freelist []uint32
	capacity int64
	released bool
}

// NewPool create a new pool of T slots and reserve slot ZERO.
func NewPool[T any](setts s.Settings) *Pool[T] {
	capacity, prealloc := setts.Int64("capacity"), setts.Int64("prealloc")
	if capacity < 1 {
		panicerr("pool capacity(%v) cannot be less than 1", capacity)
	} else if capacity > Maxcapacity {
		panicerr("pool capacity(%v) exceeds %v", capacity, Maxcapacity)
	} else if prealloc < 0 {
		panicerr("pool prealloc(%v) cannot be negative", prealloc)
	}
	if prealloc > capacity {
		prealloc = capacity
	}
	pool := &Pool[T]{
		capacity: capacity,
		slots:    make([]T, 1, prealloc+1),
		inuse:    make([]uint64, 1, ((prealloc+1)/64)+1),
		freelist: make([]uint32, 0, 64),
	}
	bitset(pool.inuse, 0)
	return pool
}

// Alloc a slot from the pool, return false if the pool has reached its
// capacity. Pointers obtained via At() are invalid after this call.
func (pool *Pool[T]) Alloc() (uint32, bool) {
	if pool.released {
		panicerr("Alloc(): pool released")
	}
	if pool.live >= pool.capacity {
		return 0, false
	}

	var idx uint32
	if n := len(pool.freelist); n > 0 {
		idx = pool.freelist[n-1]
		pool.freelist = pool.freelist[:n-1]
	} else {
		var zero T
		idx = uint32(len(pool.slots))
		pool.slots = append(pool.slots, zero)
		if int(idx/64) >= len(pool.inuse) {
			pool.inuse = append(pool.inuse, 0)
		}
	}
	bitset(pool.inuse, idx)
	pool.live++
	pool.n_allocs++
	return idx, true
}

// Free slot back to pool, slot is zeroed and recycled by a later Alloc.
func (pool *Pool[T]) Free(idx uint32) {
	if pool.released {
		panicerr("Free(): pool released")
	} else if idx == 0 {
		panicerr("Free(): slot 0 is reserved")
	} else if !bitisset(pool.inuse, idx) {
		panicerr("Free(): slot %v is not allocated", idx)
	}
	var zero T
	pool.slots[idx] = zero
	bitclear(pool.inuse, idx)
	pool.freelist = append(pool.freelist, idx)
	pool.live--
	pool.n_frees++
}

// At return pointer to slot idx.
func (pool *Pool[T]) At(idx uint32) *T {
	return &pool.slots[idx]
}

// Release pool and all its slots, including the reserved slot.
func (pool *Pool[T]) Release() {
	pool.slots, pool.inuse, pool.freelist = nil, nil, nil
	pool.live, pool.released = 0, true
}

//---- statistics

// Capacity return maximum number of slots that can be live.
func (pool *Pool[T]) Capacity() int64 {
	return pool.capacity
}

// Allocated return number of live slots, excluding the reserved slot.
func (pool *Pool[T]) Allocated() int64 {
	return pool.live
}

// Available return number of slots that can still be allocated.
func (pool *Pool[T]) Available() int64 {
	return pool.capacity - pool.live
}

// Slotsize return the size of a single slot in bytes.
func (pool *Pool[T]) Slotsize() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// Memory return memory held for slots as useful, and memory spent
// for book-keeping as overhead.
func (pool *Pool[T]) Memory() (overhead, useful int64) {
	self := int64(unsafe.Sizeof(*pool))
	overhead = self + int64(cap(pool.inuse)*8) + int64(cap(pool.freelist)*4)
	useful = int64(cap(pool.slots)) * pool.Slotsize()
	return overhead, useful
}

// Utilization return percentage of live slots among the slots obtained
// from runtime.
func (pool *Pool[T]) Utilization() float64 {
	if len(pool.slots) <= 1 {
		return 0
	}
	return (float64(pool.live) / float64(len(pool.slots)-1)) * 100
}

// Stats return allocation statistics.
func (pool *Pool[T]) Stats() map[string]interface{} {
	overhead, useful := pool.Memory()
	return map[string]interface{}{
		"capacity":  pool.capacity,
		"allocated": pool.live,
		"available": pool.Available(),
		"overhead":  overhead,
		"useful":    useful,
		"n_allocs":  pool.n_allocs,
		"n_frees":   pool.n_frees,
	}
}
