package rbtree

/*
rotateleft:

	    x                y
	  /   \            /   \
	 a     y    ->    x     c
	      / \        / \
	     b   c      a   b
*/
func (tree *RBTree[K, V]) rotateleft(x uint32) {
	xnd := tree.nodes.At(x)
	y := xnd.right
	ynd := tree.nodes.At(y)

	xnd.right = ynd.left
	if ynd.left != sentinel {
		tree.nodes.At(ynd.left).parent = x
	}
	ynd.parent = xnd.parent
	tree.replacechild(xnd.parent, x, y)
	ynd.left, xnd.parent = x, y
	tree.n_rotations++
}

/*
rotateright:

	      y            x
	    /   \        /   \
	   x     c  ->  a     y
	  / \                / \
	 a   b              b   c
*/
func (tree *RBTree[K, V]) rotateright(y uint32) {
	ynd := tree.nodes.At(y)
	x := ynd.left
	xnd := tree.nodes.At(x)

	ynd.left = xnd.right
	if xnd.right != sentinel {
		tree.nodes.At(xnd.right).parent = y
	}
	xnd.parent = ynd.parent
	tree.replacechild(ynd.parent, y, x)
	xnd.right, ynd.parent = y, x
	tree.n_rotations++
}

// replacechild make `newchild` take `oldchild`'s place under parent,
// or the root's place if parent is the sentinel. Does not touch
// newchild's parent link.
func (tree *RBTree[K, V]) replacechild(parent, oldchild, newchild uint32) {
	if parent == sentinel {
		tree.root = newchild
		return
	}
	pnd := tree.nodes.At(parent)
	if oldchild == pnd.left {
		pnd.left = newchild
	} else {
		pnd.right = newchild
	}
}
