package rbtree

// delete splice out target, or target's successor after moving the
// successor's key,value into target, and restore the red-black
// properties.
func (tree *RBTree[K, V]) delete(target uint32) {
	tnd := tree.nodes.At(target)

	p := target // node to be spliced out
	if tnd.left != sentinel && tnd.right != sentinel {
		p = tree.successor(target)
	}
	pnd := tree.nodes.At(p)

	q := pnd.right // p's only child, or the sentinel
	if pnd.left != sentinel {
		q = pnd.left
	}
	// q's parent is set even if it is the sentinel, deletefixup
	// walks up from there.
	tree.nodes.At(q).parent = pnd.parent
	tree.replacechild(pnd.parent, p, q)

	if p != target {
		tnd.key, tnd.value = pnd.key, pnd.value
	}
	if pnd.color == black {
		tree.deletefixup(q)
	}
	tree.nodes.At(sentinel).parent = sentinel
	tree.nodes.Free(p)
}

// deletefixup walk up from x, which carries an extra BLACK, until x is
// RED or root.
//
// case 1, sibling is RED: sibling turns BLACK, parent turns RED, rotate
// at parent towards x and recompute sibling.
//
// case 2, sibling and both its children are BLACK: sibling turns RED
// and the extra BLACK moves up to parent.
//
// case 3, sibling's far child is BLACK and near child is RED: near
// child turns BLACK, sibling turns RED, rotate at sibling away from x
// and recompute sibling.
//
// case 4, sibling's far child is RED: sibling takes parent's color,
// parent and far child turn BLACK, rotate at parent towards x. Done.
func (tree *RBTree[K, V]) deletefixup(x uint32) {
	for x != tree.root && tree.nodes.At(x).color == black {
		parent := tree.nodes.At(x).parent
		pnd := tree.nodes.At(parent)

		if x == pnd.left {
			sibling := pnd.right
			snd := tree.nodes.At(sibling)
			if snd.color == red { // case 1
				snd.color, pnd.color = black, red
				tree.rotateleft(parent)
				sibling = pnd.right
				snd = tree.nodes.At(sibling)
			}
			if sibling == sentinel {
				panicerr("deletefixup(): sentinel sibling under %v", parent)
			}
			near, far := tree.nodes.At(snd.left), tree.nodes.At(snd.right)
			if near.color == black && far.color == black { // case 2
				snd.color = red
				x = parent
				continue
			}
			if far.color == black { // case 3
				near.color, snd.color = black, red
				tree.rotateright(sibling)
				sibling = pnd.right
				snd = tree.nodes.At(sibling)
			}
			snd.color, pnd.color = pnd.color, black // case 4
			tree.nodes.At(snd.right).color = black
			tree.rotateleft(parent)
			x = tree.root

		} else {
			sibling := pnd.left
			snd := tree.nodes.At(sibling)
			if snd.color == red { // case 5, mirror of case 1
				snd.color, pnd.color = black, red
				tree.rotateright(parent)
				sibling = pnd.left
				snd = tree.nodes.At(sibling)
			}
			if sibling == sentinel {
				panicerr("deletefixup(): sentinel sibling under %v", parent)
			}
			near, far := tree.nodes.At(snd.right), tree.nodes.At(snd.left)
			if near.color == black && far.color == black { // case 6
				snd.color = red
				x = parent
				continue
			}
			if far.color == black { // case 7, mirror of case 3
				near.color, snd.color = black, red
				tree.rotateleft(sibling)
				sibling = pnd.left
				snd = tree.nodes.At(sibling)
			}
			snd.color, pnd.color = pnd.color, black // case 8
			tree.nodes.At(snd.left).color = black
			tree.rotateright(parent)
			x = tree.root
		}
	}
	tree.nodes.At(x).color = black
}
