// Package rbtree implement a self-balancing binary search tree, called,
// Red Black tree, for sorting and retrieving {key,value} entries.
//
//   - Index key, value, both are generic types.
//   - Each key shall be unique within the index, uniqueness is decided
//     by the comparator; keys are equivalent when neither sort before
//     the other.
//   - Nodes are allocated from a typed arena, leaf and root-parent
//     links point to a single shared BLACK sentinel node.
//   - RBTree is not thread safe, use SafeTree to serialize writes and
//     allow concurrent reads.
package rbtree
