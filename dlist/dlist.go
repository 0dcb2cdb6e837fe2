// Package dlist implements an intrusive doubly-linked list. Client types
// embed an Item carrying a back-reference to themselves, so membership
// costs no extra allocation and removal needs no search.
package dlist

// Item is the linkage embedded in a list member. Value is the embedder's
// back-reference to itself (or any payload). The zero value is an unlinked
// item.
type Item[T any] struct {
	next, prev *Item[T]
	Value      T
}

// Next returns the following item, or nil at the tail.
func (it *Item[T]) Next() *Item[T] {
	return it.next
}

// Prev returns the preceding item, or nil at the head.
func (it *Item[T]) Prev() *Item[T] {
	return it.prev
}

// List is a doubly-linked list of Items. The zero value is an empty list.
type List[T any] struct {
	head, tail *Item[T]
}

// Head returns the first item, or nil if the list is empty.
func (l *List[T]) Head() *Item[T] {
	return l.head
}

// Tail returns the last item, or nil if the list is empty.
func (l *List[T]) Tail() *Item[T] {
	return l.tail
}

// Insert links item into the list after prev. A nil prev inserts at the
// head. item must not already be a member of any list; prev, if non-nil,
// must be a member of this one.
func (l *List[T]) Insert(prev, item *Item[T]) {
	var next *Item[T]
	if prev == nil {
		next = l.head
		l.head = item
	} else {
		next = prev.next
		prev.next = item
	}

	item.prev = prev
	item.next = next

	if next == nil {
		l.tail = item
	} else {
		next.prev = item
	}
}

// Append links item at the tail of the list.
func (l *List[T]) Append(item *Item[T]) {
	l.Insert(l.tail, item)
}

// Remove unlinks item from the list. item must be a member.
func (l *List[T]) Remove(item *Item[T]) {
	if item.prev != nil {
		item.prev.next = item.next
	} else {
		l.head = item.next
	}

	if item.next != nil {
		item.next.prev = item.prev
	} else {
		l.tail = item.prev
	}

	item.next = nil
	item.prev = nil
}

// ForEach calls fn for every item in list order and returns the item at
// which fn reported true, or nil if it never did. fn may remove the item
// it is visiting; the successor is remembered before the call.
func (l *List[T]) ForEach(fn func(*Item[T]) bool) *Item[T] {
	var next *Item[T]
	for item := l.head; item != nil; item = next {
		next = item.next
		if fn(item) {
			return item
		}
	}
	return nil
}

// Contains reports whether item is a member of the list.
func (l *List[T]) Contains(item *Item[T]) bool {
	for it := l.head; it != nil; it = it.next {
		if it == item {
			return true
		}
	}
	return false
}
