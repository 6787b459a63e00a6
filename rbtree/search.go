package rbtree

import "github.com/bnclabs/gorbtree/api"

// find descend from root looking for key. If an equivalent key is
// present return its node and found as true. Otherwise return the last
// visited node, which is the parent for inserting key, or the sentinel
// if tree is empty. `depth` is the number of nodes visited.
func (tree *RBTree[K, V]) find(key K) (idx uint32, found bool, depth int64) {
	parent, curr := sentinel, tree.root
	for curr != sentinel {
		parent, depth = curr, depth+1
		nd := tree.nodes.At(curr)
		if api.Equivalent(tree.less, key, nd.key) {
			return curr, true, depth
		} else if tree.less(key, nd.key) {
			curr = nd.left
		} else {
			curr = nd.right
		}
	}
	return parent, false, depth
}

// successor return the node with the smallest key greater than idx's
// key, sentinel if idx is the maximum.
func (tree *RBTree[K, V]) successor(idx uint32) uint32 {
	nd := tree.nodes.At(idx)
	if nd.right != sentinel {
		return tree.leftmost(nd.right)
	}
	parent := nd.parent
	for parent != sentinel && idx == tree.nodes.At(parent).right {
		idx, parent = parent, tree.nodes.At(parent).parent
	}
	return parent
}

func (tree *RBTree[K, V]) leftmost(idx uint32) uint32 {
	for left := tree.nodes.At(idx).left; left != sentinel; {
		idx, left = left, tree.nodes.At(left).left
	}
	return idx
}
