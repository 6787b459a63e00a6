package rbtree

// clear free every node using an explicit stack, pre-order, and reset
// root to sentinel. Return the number of nodes freed.
func (tree *RBTree[K, V]) clear() (n int64) {
	if tree.root == sentinel {
		return 0
	}
	stack := make([]uint32, 0, 64)
	stack = append(stack, tree.root)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := tree.nodes.At(idx)
		if nd.left != sentinel {
			stack = append(stack, nd.left)
		}
		if nd.right != sentinel {
			stack = append(stack, nd.right)
		}
		tree.nodes.Free(idx)
		n++
	}
	tree.root = sentinel
	return n
}
