package rbtree

type color uint8

// zero value is black, a zeroed slot in the node arena is a valid
// sentinel.
const (
	black color = iota
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// sentinel is the arena slot standing in for every nil child and for
// the root's parent.
const sentinel = uint32(0)

type node[K any, V any] struct {
	key    K
	value  V
	left   uint32
	right  uint32
	parent uint32
	color  color
}
