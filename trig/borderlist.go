package trig

// BorderNode is one element of a BorderList.
type BorderNode[T any] struct {
	Value      T
	next, prev *BorderNode[T]
}

// Next returns the following node, or nil at the tail.
func (n *BorderNode[T]) Next() *BorderNode[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *BorderNode[T]) Prev() *BorderNode[T] { return n.prev }

// BorderList is the doubly linked working list the influence-region and
// vertex-removal walks use to hold their ring of border edges/vertices
// while splicing nodes in and out: a cavity or ear-clip polygon shrinks one
// node at a time as it's triangulated, which a slice would make quadratic.
// It is modeled directly on the original implementation's TDoubleList and
// TDoubleListIterator (tdoublelist.h) rather than reached for generically
// from container/list, since the ring-walk needs exactly that pair's
// InsertBefore/InsertAfter/RemoveBefore/RemoveAfter/RemoveAt contract;
// Go generics stand in for the C++ template parameter.
type BorderList[T any] struct {
	first, last *BorderNode[T]
	length      int
}

// NewBorderList returns an empty list.
func NewBorderList[T any]() *BorderList[T] { return &BorderList[T]{} }

// Len reports the number of nodes currently in the list.
func (l *BorderList[T]) Len() int { return l.length }

// IsEmpty reports whether the list has no nodes.
func (l *BorderList[T]) IsEmpty() bool { return l.first == nil }

// Head returns the first node, or nil if the list is empty.
func (l *BorderList[T]) Head() *BorderNode[T] { return l.first }

// Last returns the final node, or nil if the list is empty.
func (l *BorderList[T]) Last() *BorderNode[T] { return l.last }

// AddHead inserts v at the front of the list.
func (l *BorderList[T]) AddHead(v T) *BorderNode[T] {
	n := &BorderNode[T]{Value: v, next: l.first}
	if l.first != nil {
		l.first.prev = n
	} else {
		l.last = n
	}
	l.first = n
	l.length++
	return n
}

// AddTail inserts v at the end of the list.
func (l *BorderList[T]) AddTail(v T) *BorderNode[T] {
	n := &BorderNode[T]{Value: v, prev: l.last}
	if l.last != nil {
		l.last.next = n
	} else {
		l.first = n
	}
	l.last = n
	l.length++
	return n
}

// InsertAfter inserts v immediately after node.
func (l *BorderList[T]) InsertAfter(node *BorderNode[T], v T) *BorderNode[T] {
	n := &BorderNode[T]{Value: v, prev: node, next: node.next}
	if node.next != nil {
		node.next.prev = n
	} else {
		l.last = n
	}
	node.next = n
	l.length++
	return n
}

// InsertBefore inserts v immediately before node.
func (l *BorderList[T]) InsertBefore(node *BorderNode[T], v T) *BorderNode[T] {
	n := &BorderNode[T]{Value: v, next: node, prev: node.prev}
	if node.prev != nil {
		node.prev.next = n
	} else {
		l.first = n
	}
	node.prev = n
	l.length++
	return n
}

// RemoveAt unlinks node from the list and returns its value.
func (l *BorderList[T]) RemoveAt(node *BorderNode[T]) T {
	if l.first == node {
		l.first = node.next
	}
	if l.last == node {
		l.last = node.prev
	}
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	l.length--
	return node.Value
}

// RemoveAfter unlinks and returns the node following node.
func (l *BorderList[T]) RemoveAfter(node *BorderNode[T]) T {
	return l.RemoveAt(node.next)
}

// RemoveBefore unlinks and returns the node preceding node.
func (l *BorderList[T]) RemoveBefore(node *BorderNode[T]) T {
	return l.RemoveAt(node.prev)
}

// BorderIterator walks a BorderList one node at a time, able to restart or
// jump to either end, the same contract as TDoubleListIterator.
type BorderIterator[T any] struct {
	list    *BorderList[T]
	current *BorderNode[T]
}

// Iterator returns an iterator positioned at the list's head.
func (l *BorderList[T]) Iterator() *BorderIterator[T] {
	return &BorderIterator[T]{list: l, current: l.first}
}

// Restart moves the iterator back to the list's head.
func (it *BorderIterator[T]) Restart() { it.current = it.list.first }

// GoLast moves the iterator to the list's tail.
func (it *BorderIterator[T]) GoLast() { it.current = it.list.last }

// GoNext advances the iterator; it is a no-op past the tail.
func (it *BorderIterator[T]) GoNext() {
	if it.current != nil {
		it.current = it.current.next
	}
}

// GoPrev steps the iterator back; it is a no-op at the head.
func (it *BorderIterator[T]) GoPrev() {
	if it.current != nil && it.current != it.list.first {
		it.current = it.current.prev
	}
}

// EndOfList reports whether the iterator has walked past the tail.
func (it *BorderIterator[T]) EndOfList() bool { return it.current == nil }

// StartOfList reports whether the iterator sits on the list's head.
func (it *BorderIterator[T]) StartOfList() bool { return it.current == it.list.first }

// Current returns the node the iterator is positioned on, or nil.
func (it *BorderIterator[T]) Current() *BorderNode[T] { return it.current }
