package ordmap

// Dict is an ordered dictionary backed by a contiguous sorted array. Keys
// are ordered by a pluggable comparator and duplicate keys are allowed; the
// relative order of entries with equal keys is unspecified and may change
// when the dictionary is mutated. Values are opaque references that the
// dictionary never inspects except to compare them for identity.
//
// A Dict has a single logical owner and is not safe for concurrent use.
type Dict[K any, V comparable] struct {
	cmp     Compare[K]
	items   []entry[K, V]
	cache   searchCache[K]
	metrics Metrics
}

// New returns an empty dictionary ordered by cmp.
func New[K any, V comparable](cmp Compare[K]) *Dict[K, V] {
	return &Dict[K, V]{cmp: cmp}
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	return len(d.items)
}

// Cap returns the current capacity of the backing array.
func (d *Dict[K, V]) Cap() int {
	return cap(d.items)
}

// KeyAt returns the key at the given index. It panics if the index is out
// of range. Indexes are not guaranteed to remain valid after inserting or
// removing entries.
func (d *Dict[K, V]) KeyAt(index int) K {
	return d.items[index].key
}

// ValueAt returns the value at the given index. It panics if the index is
// out of range.
func (d *Dict[K, V]) ValueAt(index int) V {
	return d.items[index].val
}

// Find reports the index of the first entry whose key compares equal to
// key. The boolean is false if the dictionary does not contain the key.
func (d *Dict[K, V]) Find(key K) (int, bool) {
	index := d.BisectLeft(key)
	if index >= len(d.items) || d.compare(d.items[index].key, key) != 0 {
		return 0, false
	}
	return index, true
}

// FindValue returns the value of the first entry whose key compares equal
// to key, or the zero value if the key is absent.
func (d *Dict[K, V]) FindValue(key K) (V, bool) {
	index, ok := d.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return d.items[index].val, true
}

// FindSpecific reports the index of the entry with the given key whose
// value is identical to value. When the key is duplicated, the run of equal
// keys is scanned for the matching value.
func (d *Dict[K, V]) FindSpecific(key K, value V) (int, bool) {
	index := d.BisectLeft(key)
	if index >= len(d.items) {
		return 0, false
	}

	diff := d.compare(d.items[index].key, key)
	if diff != 0 {
		return 0, false
	}

	for diff == 0 && d.items[index].val != value && index+1 < len(d.items) {
		index++
		diff = d.compare(d.items[index].key, key)
	}

	if diff != 0 || d.items[index].val != value {
		return 0, false
	}
	return index, true
}

// Insert adds a key/value entry and returns the index at which it was
// placed. If the key is not unique, the new entry's position relative to
// entries with equal keys is indeterminate.
func (d *Dict[K, V]) Insert(key K, value V) int {
	index := d.BisectLeft(key)
	d.insertAt(index, entry[K, V]{key: key, val: value})
	return index
}

// Remove deletes one entry with the given key and returns its former index.
// If the key is duplicated, it is indeterminate which entry is removed.
func (d *Dict[K, V]) Remove(key K) (int, bool) {
	index, ok := d.Find(key)
	if !ok {
		return 0, false
	}
	d.removeAt(index)
	return index, true
}

// RemoveValue deletes one entry with the given key and returns its value,
// or the zero value if the key is absent.
func (d *Dict[K, V]) RemoveValue(key K) (V, bool) {
	index, ok := d.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return d.removeAt(index).val, true
}

// RemoveSpecific deletes the entry matching both key and value, returning
// its former index.
func (d *Dict[K, V]) RemoveSpecific(key K, value V) (int, bool) {
	index, ok := d.FindSpecific(key, value)
	if !ok {
		return 0, false
	}
	d.removeAt(index)
	return index, true
}

// RemoveAt deletes the entry at the given index. It panics if the index is
// out of range.
func (d *Dict[K, V]) RemoveAt(index int) {
	d.removeAt(index)
}

// RemoveValueAt deletes the entry at the given index and returns its value.
func (d *Dict[K, V]) RemoveValueAt(index int) V {
	return d.removeAt(index).val
}

// Clear removes all entries. If fn is non-nil it is called once per entry
// in ascending key order before the backing array is released. fn must not
// mutate the dictionary.
func (d *Dict[K, V]) Clear(fn func(key K, value V)) {
	if fn != nil {
		for i := range d.items {
			fn(d.items[i].key, d.items[i].val)
		}
	}
	d.items = nil
	d.cache.invalidate()
}
