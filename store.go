package ordmap

const (
	initialCapacity = 4
	growthFactor    = 2
)

// entry is one key/value slot in the backing array.
type entry[K any, V comparable] struct {
	key K
	val V
}

// grow widens the backing array, starting at initialCapacity and doubling
// thereafter. Growth is explicit rather than left to append so that the
// capacity policy stays observable.
func (d *Dict[K, V]) grow() {
	newCap := initialCapacity
	if cap(d.items) > 0 {
		newCap = cap(d.items) * growthFactor
	}
	next := make([]entry[K, V], len(d.items), newCap)
	copy(next, d.items)
	d.items = next
}

// insertAt places e at index, shifting entries [index, len) up by one.
// Any structural mutation invalidates the search cache.
func (d *Dict[K, V]) insertAt(index int, e entry[K, V]) {
	if len(d.items) == cap(d.items) {
		d.grow()
	}
	d.items = d.items[:len(d.items)+1]
	copy(d.items[index+1:], d.items[index:])
	d.items[index] = e
	d.cache.invalidate()
}

// removeAt deletes and returns the entry at index, shifting entries
// (index, len) down by one. The vacated tail slot is zeroed so that the
// array does not retain stale key or value references.
func (d *Dict[K, V]) removeAt(index int) entry[K, V] {
	e := d.items[index]
	last := len(d.items) - 1
	copy(d.items[index:], d.items[index+1:])
	d.items[last] = entry[K, V]{}
	d.items = d.items[:last]
	d.cache.invalidate()
	return e
}
