// Package gorbtree implement an in-memory ordered key,value index
// using red-black tree, along with the libraries and tools it needs.
//
// api:
//
// Comparator type, index interface and errors shared by all packages.
//
// malloc:
//
// Index addressed pool of fixed size slots with a free-list. Slot ZERO
// is reserved, red-black tree use it as its sentinel node.
//
// rbtree:
//
// Red-black tree with sentinel node. Supports insert, delete, lookup
// and clear in O(log n), along with validation, statistics and dot
// dump. SafeTree wraps a tree for concurrent access.
//
// dict:
//
// Reference index on a sorted slice, used to cross check rbtree.
//
// lib:
//
// Histogram for statistics and settings file loader.
//
// tools/rbt:
//
// Command line tool to load, check and dump red-black trees.
package gorbtree
