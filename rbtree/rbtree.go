package rbtree

import "cmp"
import "fmt"
import "sync/atomic"

import "github.com/bnclabs/gorbtree/api"
import "github.com/bnclabs/gorbtree/lib"
import "github.com/bnclabs/gorbtree/malloc"
import s "github.com/bnclabs/gosettings"

type rbstats struct { // 64-bit aligned statistics
	n_lookups     int64 // updated atomically, lookups can be concurrent
	n_count       int64
	n_inserts     int64
	n_dupinserts  int64
	n_deletes     int64
	n_missdeletes int64
	n_rotations   int64
	n_clears      int64
	n_cleared     int64
}

// RBTree manage a single instance of in-memory sorted index using
// red-black tree.
type RBTree[K any, V any] struct {
	rbstats
	h_finddepth *lib.HistogramInt64

	name  string
	less  api.Less[K]
	nodes *malloc.Pool[node[K, V]]
	root  uint32
	dead  bool

	// settings
	capacity  int64 // nodearena.capacity
	prealloc  int64 // nodearena.prealloc
	valheight bool  // validate.height
	setts     s.Settings
	logprefix string
}

// NewRBTree a new instance of in-memory sorted index, keys are sorted
// in ascending order.
func NewRBTree[K cmp.Ordered, V any](name string, setts s.Settings) *RBTree[K, V] {
	return NewRBTreeFunc[K, V](name, api.Ascending[K], setts)
}

// NewRBTreeFunc a new instance of in-memory sorted index, keys are
// sorted using `less`, which must be a strict weak ordering.
func NewRBTreeFunc[K any, V any](
	name string, less api.Less[K], setts s.Settings) *RBTree[K, V] {

	if less == nil {
		panicerr("NewRBTreeFunc(): comparator cannot be nil")
	}
	tree := &RBTree[K, V]{name: name, less: less}
	tree.logprefix = fmt.Sprintf("RBTree [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	tree.readsettings(setts)
	tree.setts = setts

	// slot ZERO of the arena is the sentinel, zero value is black.
	tree.nodes = tree.newnodearena(setts)
	tree.root = sentinel

	tree.h_finddepth = lib.NewHistogramInt64(1, 64, 1)

	infof("%v started with capacity %v ...\n", tree.logprefix, tree.capacity)
	return tree
}

// ID implement api.Index interface.
func (tree *RBTree[K, V]) ID() string {
	return tree.name
}

// Count implement api.Index interface, return number of live entries.
func (tree *RBTree[K, V]) Count() int64 {
	return tree.n_count
}

// Insert implement api.Index interface. Return false, without touching
// the tree, if an equivalent key is already present. Panics with
// api.ErrorOutofMemory if node arena has reached its capacity, tree is
// left untouched in that case.
func (tree *RBTree[K, V]) Insert(key K, value V) bool {
	tree.assertalive()

	parent, found, depth := tree.find(key)
	if found {
		tree.n_dupinserts++
		return false
	}

	idx, ok := tree.nodes.Alloc()
	if !ok {
		errorf("%v Insert(): node arena exhausted at %v\n", tree.logprefix, tree.n_count)
		panic(api.ErrorOutofMemory)
	}
	tree.insert(idx, key, value, parent)
	tree.n_count++
	tree.n_inserts++
	tree.h_finddepth.Add(depth + 1)
	return true
}

// Delete implement api.Index interface. Return false if key is missing.
func (tree *RBTree[K, V]) Delete(key K) bool {
	tree.assertalive()

	target, found, _ := tree.find(key)
	if !found {
		tree.n_missdeletes++
		return false
	}
	tree.delete(target)
	tree.n_count--
	tree.n_deletes++
	return true
}

// Get implement api.Index interface, return a copy of the value
// stored for an equivalent key.
func (tree *RBTree[K, V]) Get(key K) (value V, ok bool) {
	tree.assertalive()

	atomic.AddInt64(&tree.n_lookups, 1)
	if idx, found, _ := tree.find(key); found {
		return tree.nodes.At(idx).value, true
	}
	return value, false
}

// Has implement api.Index interface.
func (tree *RBTree[K, V]) Has(key K) bool {
	_, ok := tree.Get(key)
	return ok
}

// Clear implement api.Index interface. Free all nodes, tree can be
// reused after Clear.
func (tree *RBTree[K, V]) Clear() {
	tree.assertalive()

	n := tree.clear()
	if n != tree.n_count {
		panicerr("Clear(): freed %v nodes, expected %v", n, tree.n_count)
	}
	tree.n_cleared += n
	tree.n_count = 0
	tree.n_clears++
	debugf("%v cleared %v entries\n", tree.logprefix, n)
}

// Destroy implement api.Index interface. Free all nodes and release the
// node arena along with its sentinel.
func (tree *RBTree[K, V]) Destroy() error {
	if tree.dead {
		panic("Destroy(): already dead tree")
	}
	tree.Clear()
	tree.nodes.Release()
	tree.setts = nil
	tree.dead = true
	infof("%v destroyed\n", tree.logprefix)
	return nil
}

func (tree *RBTree[K, V]) assertalive() {
	if tree.dead {
		panic(api.ErrorDeadIndex)
	}
}
