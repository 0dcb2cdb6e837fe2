// Package ordmap implements an ordered dictionary over a contiguous
// growable array, searched by binary search with a single-slot last-search
// cache. Inserts and removals shift entries, which costs O(n) per mutation
// in exchange for O(log n) lookups and cache-friendly in-order scans.
//
// Keys are ordered by a pluggable three-way comparator; CaseFold and Signed
// cover the common string and integer cases. Duplicate keys are permitted
// and can be told apart only by value identity (FindSpecific,
// RemoveSpecific).
//
// The dictionary is not safe for concurrent use.
package ordmap
