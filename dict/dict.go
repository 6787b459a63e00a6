// Package dict implement a dictionary of key,value pairs kept in a
// sorted slice. Primarily meant as reference for testing more useful
// index algorithms.
package dict

import "cmp"
import "fmt"
import "sort"

import "github.com/bnclabs/gorbtree/api"

var _ api.Index[int, int] = (*Dict[int, int])(nil)

type entry[K any, V any] struct {
	key   K
	value V
}

// Dict is a reference data structure, for validation purpose.
type Dict[K any, V any] struct {
	id      string
	less    api.Less[K]
	entries []entry[K, V]
	dead    bool

	n_inserts int64
	n_deletes int64
	n_clears  int64
}

// NewDict create a new dictionary with keys sorted in ascending order.
func NewDict[K cmp.Ordered, V any](id string) *Dict[K, V] {
	return NewDictFunc[K, V](id, api.Ascending[K])
}

// NewDictFunc create a new dictionary with keys sorted using less.
func NewDictFunc[K any, V any](id string, less api.Less[K]) *Dict[K, V] {
	if less == nil {
		panic("NewDictFunc(): comparator cannot be nil")
	}
	return &Dict[K, V]{
		id:      id,
		less:    less,
		entries: make([]entry[K, V], 0, 1024),
	}
}

//---- api.Index{} interface.

// ID implement api.Index{} interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.Index{} interface.
func (d *Dict[K, V]) Count() int64 {
	return int64(len(d.entries))
}

// Stats implement api.Index{} interface.
func (d *Dict[K, V]) Stats() map[string]interface{} {
	d.assertalive()
	return map[string]interface{}{
		"n_count":   d.Count(),
		"n_inserts": d.n_inserts,
		"n_deletes": d.n_deletes,
		"n_clears":  d.n_clears,
	}
}

// Validate implement api.Index{} interface.
func (d *Dict[K, V]) Validate() {
	d.assertalive()
	for i := 1; i < len(d.entries); i++ {
		prev, curr := d.entries[i-1].key, d.entries[i].key
		if !d.less(prev, curr) {
			panic(fmt.Errorf("validate(): %v is not less than %v", prev, curr))
		}
	}
}

// Destroy implement api.Index{} interface.
func (d *Dict[K, V]) Destroy() error {
	if d.dead {
		panic("Destroy(): already dead dict")
	}
	d.dead, d.entries = true, nil
	return nil
}

//---- api.IndexReader{} interface.

// Has implement api.IndexReader{} interface.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Get implement api.IndexReader{} interface.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	d.assertalive()
	if off, found := d.search(key); found {
		return d.entries[off].value, true
	}
	return value, false
}

//---- api.IndexWriter{} interface.

// Insert implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Insert(key K, value V) bool {
	d.assertalive()
	off, found := d.search(key)
	if found {
		return false
	}
	var zero entry[K, V]
	d.entries = append(d.entries, zero)
	copy(d.entries[off+1:], d.entries[off:])
	d.entries[off] = entry[K, V]{key: key, value: value}
	d.n_inserts++
	return true
}

// Delete implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Delete(key K) bool {
	d.assertalive()
	off, found := d.search(key)
	if !found {
		return false
	}
	copy(d.entries[off:], d.entries[off+1:])
	var zero entry[K, V]
	d.entries[len(d.entries)-1] = zero
	d.entries = d.entries[:len(d.entries)-1]
	d.n_deletes++
	return true
}

// Clear implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Clear() {
	d.assertalive()
	clear(d.entries)
	d.entries = d.entries[:0]
	d.n_clears++
}

// Keys return all keys in sort order.
func (d *Dict[K, V]) Keys() []K {
	d.assertalive()
	keys := make([]K, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// search return the offset of the first entry not less than key, and
// whether that entry is equivalent to key.
func (d *Dict[K, V]) search(key K) (int, bool) {
	off := sort.Search(len(d.entries), func(i int) bool {
		return !d.less(d.entries[i].key, key)
	})
	if off < len(d.entries) && api.Equivalent(d.less, key, d.entries[off].key) {
		return off, true
	}
	return off, false
}

func (d *Dict[K, V]) assertalive() {
	if d.dead {
		panic(api.ErrorDeadIndex)
	}
}
