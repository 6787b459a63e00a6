// Package api define types and interfaces common to all ordered
// indexes implemented by this package.
package api

// Less return true if `a` sort before `b`. Implementations must be a
// strict weak ordering, keys `a` and `b` are equivalent when neither
// Less(a, b) nor Less(b, a) is true.
type Less[K any] func(a, b K) bool

// Index interface for managing unique key,value pairs.
type Index[K any, V any] interface {
	// ID return index id. Typically, it is human readable and unique.
	ID() string

	// Count return the number of entries indexed.
	Count() int64

	// Stats return a set of index statistics.
	Stats() map[string]interface{}

	// Validate check whether index is in sane state, panic otherwise.
	Validate()

	// Destroy to delete an index and clean up its resources. Index
	// shall not be used after Destroy.
	Destroy() error

	IndexReader[K, V]
	IndexWriter[K, V]
}

// IndexReader interface for fetching entries from index.
type IndexReader[K any, V any] interface {
	// Has checks wether key is present in the index.
	Has(key K) bool

	// Get a copy of the value stored for key.
	Get(key K) (value V, ok bool)
}

// IndexWriter interface methods for updating index.
type IndexWriter[K any, V any] interface {
	// Insert a new key,value pair. Return false if an equivalent key
	// is already indexed, index is left untouched in that case.
	Insert(key K, value V) bool

	// Delete entry specified by key. Return false if key is missing.
	Delete(key K) bool

	// Clear all entries from the index.
	Clear()
}
