package rbtree

import "fmt"
import "math"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// height of a red black tree cannot exceed 2*log2(n+1), where height
// is counted in nodes from root to the deepest leaf.
func maxheight(entries int64) float64 {
	return 2 * math.Log2(float64(entries+1))
}
