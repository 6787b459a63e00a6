package rbtree

// insert link a freshly allocated RED node under parent and restore
// the red-black properties.
func (tree *RBTree[K, V]) insert(idx uint32, key K, value V, parent uint32) {
	nd := tree.nodes.At(idx)
	nd.key, nd.value, nd.color = key, value, red
	nd.left, nd.right, nd.parent = sentinel, sentinel, parent

	if parent == sentinel {
		tree.root = idx
	} else if pnd := tree.nodes.At(parent); tree.less(key, pnd.key) {
		pnd.left = idx
	} else {
		pnd.right = idx
	}
	tree.insertfixup(idx)
}

// insertfixup walk up from x while x and its parent are both RED.
//
// case 1, uncle is RED: parent and uncle turn BLACK, grandparent turns
// RED and the walk continues from grandparent.
//
// case 2, uncle is BLACK and x is an inner child: rotate at parent so
// that x becomes an outer child, then fall through to case 3.
//
// case 3, uncle is BLACK and x is an outer child: parent turns BLACK,
// grandparent turns RED, rotate at grandparent away from x.
func (tree *RBTree[K, V]) insertfixup(x uint32) {
	for {
		parent := tree.nodes.At(x).parent
		pnd := tree.nodes.At(parent)
		if pnd.color != red {
			break
		}
		grand := pnd.parent
		gnd := tree.nodes.At(grand)

		if parent == gnd.left {
			uncle := tree.nodes.At(gnd.right)
			if uncle.color == red { // case 1
				pnd.color, uncle.color, gnd.color = black, black, red
				x = grand
				continue
			}
			if x == pnd.right { // case 2
				x = parent
				tree.rotateleft(x)
				parent = tree.nodes.At(x).parent
				pnd = tree.nodes.At(parent)
			}
			pnd.color, gnd.color = black, red // case 3
			tree.rotateright(grand)

		} else {
			uncle := tree.nodes.At(gnd.left)
			if uncle.color == red { // case 4, mirror of case 1
				pnd.color, uncle.color, gnd.color = black, black, red
				x = grand
				continue
			}
			if x == pnd.left { // case 5, mirror of case 2
				x = parent
				tree.rotateright(x)
				parent = tree.nodes.At(x).parent
				pnd = tree.nodes.At(parent)
			}
			pnd.color, gnd.color = black, red // case 6, mirror of case 3
			tree.rotateleft(grand)
		}
	}
	tree.nodes.At(tree.root).color = black
}
