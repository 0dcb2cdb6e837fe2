package ordmap

// Metrics counts the work done by the bisect engine. The dictionary is
// single-owner, so plain counters suffice.
type Metrics struct {
	searches    int64
	cacheHits   int64
	comparisons int64
}

// Searches returns the number of BisectLeft calls, including those made on
// behalf of other operations.
func (m *Metrics) Searches() int64 {
	return m.searches
}

// CacheHits returns the number of searches that reused the cached boundary
// instead of running a full binary search.
func (m *Metrics) CacheHits() int64 {
	return m.cacheHits
}

// Comparisons returns the number of comparator calls.
func (m *Metrics) Comparisons() int64 {
	return m.comparisons
}

// Metrics returns the dictionary's counters.
func (d *Dict[K, V]) Metrics() *Metrics {
	return &d.metrics
}
