package ordmap

// ValueIter is a cursor over a contiguous index range of a dictionary,
// yielding values in sorted key order. It borrows the dictionary: mutating
// the dictionary by any means other than the iterator's own Remove
// invalidates the iterator. A ValueIter is finite and not restartable;
// create a new one to iterate again.
type ValueIter[K any, V comparable] struct {
	d       *Dict[K, V]
	next    int
	end     int
	yielded bool
}

// Values returns an iterator over every value in the dictionary.
func (d *Dict[K, V]) Values() *ValueIter[K, V] {
	return &ValueIter[K, V]{d: d, next: 0, end: len(d.items)}
}

// ValuesInRange returns an iterator over the values whose keys lie between
// minKey and maxKey. Both bounds are inclusive, so they may be the same key
// to iterate over all values with that key.
func (d *Dict[K, V]) ValuesInRange(minKey, maxKey K) *ValueIter[K, V] {
	return &ValueIter[K, V]{
		d:    d,
		next: d.BisectLeft(minKey),
		end:  d.BisectRight(maxKey),
	}
}

// Next returns the next value in the range. The boolean is false once the
// range is exhausted.
func (it *ValueIter[K, V]) Next() (V, bool) {
	if it.next >= it.end {
		var zero V
		return zero, false
	}
	v := it.d.items[it.next].val
	it.next++
	it.yielded = true
	return v, true
}

// Remove deletes the entry most recently yielded by Next from the
// dictionary and returns its former index. Both iterator bounds shrink in
// lockstep, so no entry is skipped or revisited. Remove panics if Next has
// not yielded an entry since the last Remove.
func (it *ValueIter[K, V]) Remove() int {
	if !it.yielded {
		panic("ordmap: ValueIter.Remove without a preceding Next")
	}
	it.yielded = false
	it.end--
	it.next--
	index := it.next
	it.d.removeAt(index)
	return index
}
