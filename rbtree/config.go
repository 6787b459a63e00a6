package rbtree

import "github.com/bnclabs/gorbtree/malloc"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// approximate memory footprint of a node, used to size the default
// node arena from free memory.
const avgnodesize = int64(96)

// Defaultsettings for rbtree instance along with its node arena.
//
// "nodearena.capacity" (int64, default: <freeRAM / 96>)
//
//	Maximum number of live entries in the tree. Insert beyond this
//	limit panics with api.ErrorOutofMemory.
//
// "nodearena.prealloc" (int64, default: 1024)
//
//	Number of nodes to pre-allocate when the tree is created.
//
// "validate.height" (bool, default: true)
//
//	Validate() to check that tree height is within 2*log2(n+1).
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free) / avgnodesize
	if capacity < 1024 {
		capacity = 1024
	}
	setts := s.Settings{
		"validate.height": true,
	}
	nodesetts := malloc.Defaultsettings(capacity).AddPrefix("nodearena.")
	return setts.Mixin(nodesetts)
}

func (tree *RBTree[K, V]) readsettings(setts s.Settings) {
	tree.capacity = setts.Int64("nodearena.capacity")
	tree.prealloc = setts.Int64("nodearena.prealloc")
	tree.valheight = setts.Bool("validate.height")
	if tree.capacity < 1 {
		panicerr("nodearena.capacity(%v) cannot be less than 1", tree.capacity)
	}
}

func (tree *RBTree[K, V]) newnodearena(setts s.Settings) *malloc.Pool[node[K, V]] {
	memsetts := setts.Section("nodearena.").Trim("nodearena.")
	return malloc.NewPool[node[K, V]](memsetts)
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		warnf("rbtree: unable to read system memory: %v\n", err)
		return 0, 0, 0
	}
	return mem.Total, mem.Used, mem.Free
}
