package rbtree

import "testing"

import "github.com/stretchr/testify/require"

func newvalidatetree(t *testing.T) *RBTree[int, int] {
	tree := NewRBTree[int, int]("validate", testsettings(100))
	for i := 1; i <= 15; i++ {
		if !tree.Insert(i, i) {
			t.Fatalf("failed inserting %v", i)
		}
	}
	tree.Validate()
	return tree
}

func TestValidateRedRoot(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	tree.nodes.At(tree.root).color = red
	require.Panics(t, func() { tree.Validate() })
}

func TestValidateRedAfterRed(t *testing.T) {
	tree := NewRBTree[int, int]("validate", testsettings(100))
	defer tree.Destroy()
	for _, key := range []int{20, 10, 30, 5} {
		tree.Insert(key, key)
	}
	// 5 is red under a black 10, paint 10 red.
	idx, found, _ := tree.find(10)
	require.True(t, found)
	nd := tree.nodes.At(idx)
	require.Equal(t, black, nd.color)
	require.Equal(t, red, tree.nodes.At(nd.left).color)

	nd.color = red
	tree.nodes.At(tree.nodes.At(tree.root).right).color = red
	require.True(t, tree.isbalanced())
	require.PanicsWithValue(t, errredafterred, func() { tree.Validate() })
}

func TestValidateBlackHeight(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	require.True(t, tree.isbalanced())
	require.Greater(t, tree.blackheight(tree.root), 0)

	// paint a red leaf black.
	var leaf uint32
	tree.walkinorder(func(idx uint32, nd *node[int, int]) bool {
		if nd.color == red && nd.left == sentinel && nd.right == sentinel {
			leaf = idx
			return false
		}
		return true
	})
	require.NotEqual(t, sentinel, leaf)
	tree.nodes.At(leaf).color = black
	require.Equal(t, -1, tree.blackheight(tree.root))
	require.False(t, tree.isbalanced())
	require.Panics(t, func() { tree.Validate() })
}

func TestValidateOrder(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	tree.nodes.At(tree.root).key = 100
	require.True(t, tree.isbalanced())
	require.Panics(t, func() { tree.Validate() })
}

func TestValidateParent(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	rnd := tree.nodes.At(tree.root)
	tree.nodes.At(rnd.left).parent = rnd.right
	require.Panics(t, func() { tree.Validate() })
}

func TestValidateStats(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	tree.n_inserts++
	require.Panics(t, func() { tree.Validate() })
}

func TestValidateSentinel(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	tree.nodes.At(sentinel).color = red
	require.Panics(t, func() { tree.Validate() })
	tree.nodes.At(sentinel).color = black
	tree.Validate()
}

func TestValidateSentinelLinks(t *testing.T) {
	tree := newvalidatetree(t)
	defer tree.Destroy()

	// deletes write the sentinel's parent and must restore it.
	for i := 1; i <= 15; i += 2 {
		tree.Delete(i)
		snd := tree.nodes.At(sentinel)
		require.Equal(t, sentinel, snd.parent)
		require.Equal(t, sentinel, snd.left)
		require.Equal(t, sentinel, snd.right)
	}
	tree.Validate()

	tree.nodes.At(sentinel).parent = tree.root
	require.Panics(t, func() { tree.Validate() })
	tree.nodes.At(sentinel).parent = sentinel

	tree.nodes.At(sentinel).left = tree.root
	require.Panics(t, func() { tree.Validate() })
	tree.nodes.At(sentinel).left = sentinel
	tree.Validate()
}

func TestMaxheight(t *testing.T) {
	if x := maxheight(0); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := maxheight(1); x != 2 {
		t.Errorf("unexpected %v", x)
	} else if x := maxheight(3); x != 4 {
		t.Errorf("unexpected %v", x)
	} else if x := maxheight(1023); x != 20 {
		t.Errorf("unexpected %v", x)
	}
}
