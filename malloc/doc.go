// Package malloc supplies custom memory management for in-memory data
// structures, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - Memory is managed as a pool of fixed sized slots, typed by the
//     data-structure's node type, and addressed by uint32 index.
//   - Slot index ZERO is reserved and allocated when the pool is created,
//     data-structures can use it as the nil/sentinel node.
//   - Freed slots are zeroed and recycled via a free-list, slots are
//     given back to the runtime only when the entire pool is Released.
//   - Slot pointers returned by At() are valid only until the next call
//     to Alloc(), the backing slice might grow.
//
// Pool is created with following parameters:
//
//	capacity : maximum number of live slots, excluding the reserved slot.
//	prealloc : number of slots to pre-allocate from the runtime.
package malloc
