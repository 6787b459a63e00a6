package rbtree

import "fmt"
import "errors"

import "github.com/bnclabs/gorbtree/lib"

var errredafterred = errors.New("consecutive red spotted")

func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// Validate implement api.Index interface. Will walk the full tree to
// confirm the red-black properties, the sort order, parent links and
// the book-keeping. Panics on the first violation.
func (tree *RBTree[K, V]) Validate() {
	tree.assertalive()

	if snd := tree.nodes.At(sentinel); snd.color != black {
		panicerr("validate(): sentinel is %v", snd.color)
	} else if snd.parent != sentinel || snd.left != sentinel || snd.right != sentinel {
		fmsg := "validate(): sentinel links {%v,%v,%v}"
		panicerr(fmsg, snd.parent, snd.left, snd.right)
	}
	if tree.root == sentinel {
		if tree.n_count != 0 {
			panicerr("validate(): empty tree with count %v", tree.n_count)
		}
	} else if rnd := tree.nodes.At(tree.root); rnd.color != black {
		panicerr("validate(): root is %v", rnd.color)
	} else if rnd.parent != sentinel {
		panicerr("validate(): root's parent is %v", rnd.parent)
	}

	h := lib.NewHistogramInt64(1, 256, 1)
	tree.validatetree(tree.root, sentinel, false, 1 /*depth*/, h)
	if n := h.Samples(); n != tree.n_count {
		panicerr("validate(): reachable nodes %v != count %v", n, tree.n_count)
	} else if x := tree.nodes.Allocated(); x != tree.n_count {
		panicerr("validate(): allocated nodes %v != count %v", x, tree.n_count)
	}
	tree.validateorder()

	if tree.valheight && h.Samples() > 0 {
		if max := float64(h.Max()); max > maxheight(tree.n_count) {
			fmsg := "validate(): max height %v exceeds 2*log2(%v+1)"
			panicerr(fmsg, max, tree.n_count)
		}
	}
	tree.validatestats()
}

// validatetree return the number of blacks from idx to any of its
// descendant sentinel, counting idx and excluding the sentinel.
func (tree *RBTree[K, V]) validatetree(
	idx, parent uint32, fromred bool, depth int64,
	h *lib.HistogramInt64) (nblacks int64) {

	if idx == sentinel {
		return 0
	}

	nd := tree.nodes.At(idx)
	h.Add(depth)
	if nd.parent != parent {
		panicerr("validate(): node %v parent %v != %v", idx, nd.parent, parent)
	}
	isred := nd.color == red
	if fromred && isred {
		panic(errredafterred)
	}

	lblacks := tree.validatetree(nd.left, idx, isred, depth+1, h)
	rblacks := tree.validatetree(nd.right, idx, isred, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}
	if !isred {
		lblacks++
	}
	return lblacks
}

// validateorder confirm that in-order walk yield keys in strictly
// increasing order.
func (tree *RBTree[K, V]) validateorder() {
	var prev *node[K, V]
	tree.walkinorder(func(idx uint32, nd *node[K, V]) bool {
		if prev != nil && !tree.less(prev.key, nd.key) {
			fmsg := "validate(): sort order, %v is not less than %v"
			panicerr(fmsg, prev.key, nd.key)
		}
		prev = nd
		return true
	})
}

func (tree *RBTree[K, V]) validatestats() {
	// n_count should match (n_inserts - n_deletes - n_cleared)
	n_count, n_inserts := tree.n_count, tree.n_inserts
	n_deletes, n_cleared := tree.n_deletes, tree.n_cleared
	if n_count != (n_inserts - n_deletes - n_cleared) {
		fmsg := "validatestats(): n_count:%v != " +
			"(n_inserts:%v - n_deletes:%v - n_cleared:%v)"
		panicerr(fmsg, n_count, n_inserts, n_deletes, n_cleared)
	}
}

// blackheight return the black-height of the sub-tree rooted at idx,
// or -1 if any node in the sub-tree has mismatching black-height on
// its left and right.
func (tree *RBTree[K, V]) blackheight(idx uint32) int {
	if idx == sentinel {
		return 0
	}
	nd := tree.nodes.At(idx)
	lh := tree.blackheight(nd.left)
	if lh < 0 {
		return -1
	}
	rh := tree.blackheight(nd.right)
	if rh < 0 || lh != rh {
		return -1
	}
	if nd.color == black {
		return lh + 1
	}
	return lh
}

func (tree *RBTree[K, V]) isbalanced() bool {
	return tree.blackheight(tree.root) >= 0
}

// walkinorder visit nodes in sort order, stop when callback return
// false. Callback must not mutate the tree.
func (tree *RBTree[K, V]) walkinorder(callb func(uint32, *node[K, V]) bool) {
	stack := make([]uint32, 0, 64)
	curr := tree.root
	for curr != sentinel || len(stack) > 0 {
		for curr != sentinel {
			stack = append(stack, curr)
			curr = tree.nodes.At(curr).left
		}
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := tree.nodes.At(idx)
		if !callb(idx, nd) {
			return
		}
		curr = nd.right
	}
}
