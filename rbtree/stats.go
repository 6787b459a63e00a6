package rbtree

import "fmt"
import "encoding/json"
import "sync/atomic"

import "github.com/bnclabs/gorbtree/lib"
import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/golog"

// Stats implement api.Index interface.
func (tree *RBTree[K, V]) Stats() map[string]interface{} {
	tree.assertalive()
	stats := tree.statsmem(map[string]interface{}{})
	stats = tree.stattree(stats)
	stats["h_finddepth"] = tree.h_finddepth.Fullstats()
	return stats
}

// Fullstats return Stats() along with statistics that require a full
// tree walk, like the height histogram.
func (tree *RBTree[K, V]) Fullstats() map[string]interface{} {
	stats := tree.Stats()
	h_height := tree.heighthistogram()
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = tree.countblacks()
	if x := h_height.Samples(); x != tree.n_count {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panicerr(fmsg, x, tree.n_count)
	}
	return stats
}

// Log statistics, if humanize is true memory figures are logged in
// human readable form. Logs irrespective of LogComponents().
func (tree *RBTree[K, V]) Log(dohumanize bool) {
	tree.assertalive()
	stats := tree.statsmem(map[string]interface{}{})
	stats = tree.stattree(stats)
	if dohumanize {
		overhead := humanize.Bytes(uint64(stats["node.overhead"].(int64)))
		useful := humanize.Bytes(uint64(stats["node.useful"].(int64)))
		count := humanize.Comma(tree.n_count)
		capacity := humanize.Comma(tree.capacity)
		fmsg := "%v nodes %v/%v: %v useful, overhd %v\n"
		log.Infof(fmsg, tree.logprefix, count, capacity, useful, overhead)
	}

	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	log.Infof("%v stats %v\n", tree.logprefix, string(text))
	log.Infof("%v h_finddepth %v\n", tree.logprefix, tree.h_finddepth.Logstring())
	log.Infof("%v h_height %v\n", tree.logprefix, tree.heighthistogram().Logstring())
}

// memory statistics from node-arena.
func (tree *RBTree[K, V]) statsmem(stats map[string]interface{}) map[string]interface{} {
	overhead, useful := tree.nodes.Memory()
	stats["node.capacity"] = tree.nodes.Capacity()
	stats["node.allocated"] = tree.nodes.Allocated()
	stats["node.available"] = tree.nodes.Available()
	stats["node.overhead"] = overhead
	stats["node.useful"] = useful
	stats["node.utilization"] = tree.nodes.Utilization()
	return stats
}

// tree statistics.
func (tree *RBTree[K, V]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = tree.n_count
	stats["n_lookups"] = atomic.LoadInt64(&tree.n_lookups)
	stats["n_inserts"] = tree.n_inserts
	stats["n_dupinserts"] = tree.n_dupinserts
	stats["n_deletes"] = tree.n_deletes
	stats["n_missdeletes"] = tree.n_missdeletes
	stats["n_rotations"] = tree.n_rotations
	stats["n_clears"] = tree.n_clears
	stats["n_cleared"] = tree.n_cleared
	return stats
}

// heighthistogram return the depth of every node as a histogram.
func (tree *RBTree[K, V]) heighthistogram() *lib.HistogramInt64 {
	h := lib.NewHistogramInt64(1, 256, 1)
	tree.heightstats(h)
	return h
}

func (tree *RBTree[K, V]) heightstats(h *lib.HistogramInt64) {
	type entry struct {
		idx   uint32
		depth int64
	}
	if tree.root == sentinel {
		return
	}
	stack := []entry{{tree.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.Add(e.depth)
		nd := tree.nodes.At(e.idx)
		if nd.left != sentinel {
			stack = append(stack, entry{nd.left, e.depth + 1})
		}
		if nd.right != sentinel {
			stack = append(stack, entry{nd.right, e.depth + 1})
		}
	}
}

// countblacks along the left most path, same for every path in a
// balanced tree.
func (tree *RBTree[K, V]) countblacks() int64 {
	nblacks := int64(0)
	for idx := tree.root; idx != sentinel; {
		nd := tree.nodes.At(idx)
		if nd.color == black {
			nblacks++
		}
		idx = nd.left
	}
	return nblacks
}
