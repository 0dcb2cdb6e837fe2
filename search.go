package ordmap

// searchCache remembers the outcome of the most recent bisect query. It
// stores the resolved boundary as an index into the backing array, never an
// address, so growth can't leave it dangling. The cache is purely a
// performance hint: bypassing it must never change any result.
type searchCache[K any] struct {
	key   K
	index int
	valid bool
}

func (c *searchCache[K]) invalidate() {
	var zero K
	c.key = zero
	c.index = 0
	c.valid = false
}

// compare wraps the comparator so comparator calls can be counted.
func (d *Dict[K, V]) compare(a, b K) int {
	d.metrics.comparisons++
	return d.cmp(a, b)
}

// BisectLeft returns the index of the first entry whose key is greater than
// or equal to key, or Len() if every key is less. It is the insertion point
// that keeps the array sorted while placing key before any equal keys.
func (d *Dict[K, V]) BisectLeft(key K) int {
	d.metrics.searches++

	n := len(d.items)
	if n == 0 {
		return 0
	}

	// The candidate is a slot at or near the boundary: either the cached
	// result of an identical query, or the last slot probed by a fresh
	// binary search. Both converge next to the boundary, so a short linear
	// walk below resolves the exact index.
	candidate := -1
	if d.cache.valid && !skipSearchCache() && d.compare(d.cache.key, key) == 0 {
		candidate = d.cache.index
		d.metrics.cacheHits++
	}
	if candidate < 0 {
		lo, hi := 0, n
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			candidate = mid
			if d.compare(d.items[mid].key, key) < 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
	}
	if bisectCandidateHook != nil {
		bisectCandidateHook(candidate)
	}

	index := candidate
	if index > n {
		index = n
	}
	if index < n && d.compare(d.items[index].key, key) < 0 {
		// Candidate was too low; walk forward to the first key >= key.
		for index++; index < n && d.compare(d.items[index].key, key) < 0; index++ {
		}
	} else {
		// Walk backward while the preceding key is still >= key.
		for index > 0 && d.compare(d.items[index-1].key, key) >= 0 {
			index--
		}
	}

	d.cache = searchCache[K]{key: key, index: index, valid: true}
	return index
}

// BisectRight returns the index of the first entry whose key is strictly
// greater than key, or Len() if no key is greater.
func (d *Dict[K, V]) BisectRight(key K) int {
	index := d.BisectLeft(key)
	for index < len(d.items) && d.compare(d.items[index].key, key) <= 0 {
		index++
	}
	return index
}

func skipSearchCache() bool {
	return bisectSkipCacheHook != nil && bisectSkipCacheHook()
}
