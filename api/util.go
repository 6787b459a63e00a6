package api

import "cmp"

// Ascending comparator for ordered types.
func Ascending[K cmp.Ordered](a, b K) bool {
	return cmp.Less(a, b)
}

// Descending comparator for ordered types.
func Descending[K cmp.Ordered](a, b K) bool {
	return cmp.Less(b, a)
}

// Equivalent return true if neither key sort before the other.
func Equivalent[K any](less Less[K], a, b K) bool {
	return !less(a, b) && !less(b, a)
}
