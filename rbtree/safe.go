package rbtree

import "sync"

import "github.com/bnclabs/gorbtree/api"

var _ api.Index[int, int] = (*RBTree[int, int])(nil)
var _ api.Index[int, int] = (*SafeTree[int, int])(nil)

// SafeTree serialize writes on a RBTree and allow concurrent reads.
// Every operation is applied as a whole under the lock, partial
// rotations and fixups are never observable.
type SafeTree[K any, V any] struct {
	rw   sync.RWMutex
	tree *RBTree[K, V]
}

// NewSafeTree wrap tree, tree shall not be accessed directly after
// this call.
func NewSafeTree[K any, V any](tree *RBTree[K, V]) *SafeTree[K, V] {
	return &SafeTree[K, V]{tree: tree}
}

// ID implement api.Index interface.
func (st *SafeTree[K, V]) ID() string {
	return st.tree.ID()
}

// Count implement api.Index interface, acquires a read lock.
func (st *SafeTree[K, V]) Count() int64 {
	st.rw.RLock()
	defer st.rw.RUnlock()
	return st.tree.Count()
}

// Has implement api.Index interface, acquires a read lock.
func (st *SafeTree[K, V]) Has(key K) bool {
	st.rw.RLock()
	defer st.rw.RUnlock()
	return st.tree.Has(key)
}

// Get implement api.Index interface, acquires a read lock.
func (st *SafeTree[K, V]) Get(key K) (V, bool) {
	st.rw.RLock()
	defer st.rw.RUnlock()
	return st.tree.Get(key)
}

// Insert implement api.Index interface, acquires a write lock.
func (st *SafeTree[K, V]) Insert(key K, value V) bool {
	st.rw.Lock()
	defer st.rw.Unlock()
	return st.tree.Insert(key, value)
}

// Delete implement api.Index interface, acquires a write lock.
func (st *SafeTree[K, V]) Delete(key K) bool {
	st.rw.Lock()
	defer st.rw.Unlock()
	return st.tree.Delete(key)
}

// Clear implement api.Index interface, acquires a write lock.
func (st *SafeTree[K, V]) Clear() {
	st.rw.Lock()
	defer st.rw.Unlock()
	st.tree.Clear()
}

// Stats implement api.Index interface, acquires a read lock.
func (st *SafeTree[K, V]) Stats() map[string]interface{} {
	st.rw.RLock()
	defer st.rw.RUnlock()
	return st.tree.Stats()
}

// Validate implement api.Index interface, acquires a read lock.
func (st *SafeTree[K, V]) Validate() {
	st.rw.RLock()
	defer st.rw.RUnlock()
	st.tree.Validate()
}

// Destroy implement api.Index interface, acquires a write lock.
func (st *SafeTree[K, V]) Destroy() error {
	st.rw.Lock()
	defer st.rw.Unlock()
	return st.tree.Destroy()
}
