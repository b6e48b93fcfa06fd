// Package list implements a generic doubly linked list whose element handles stay
// valid across insertion and removal of other elements, and which can absorb another
// list in constant time.
//
// It differs from container/list in two ways: it is typed, and Splice relinks the
// donor's nodes instead of copying them. Elements do not record their owner, so a
// handle must only be passed to the list that currently holds it.
package list

// Element is a node of a List.
type Element[T any] struct {
	next, prev *Element[T]

	// Value stored with this element.
	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Element[T]
	len        int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the last element of the list or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

// PushBack appends v to the list and returns its handle.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.len++
	return e
}

// Remove unlinks e from the list and returns its value.
// e must belong to l.
func (l *List[T]) Remove(e *Element[T]) T {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.next, e.prev = nil, nil // let the neighbours be collected
	l.len--
	return e.Value
}

// Splice moves every element of other to the back of l, preserving their order.
// other is left empty and shares no nodes with l afterwards. Handles into other
// remain valid and now belong to l.
func (l *List[T]) Splice(other *List[T]) {
	if other == l || other.len == 0 {
		return
	}
	if l.tail != nil {
		l.tail.next = other.head
		other.head.prev = l.tail
	} else {
		l.head = other.head
	}
	l.tail = other.tail
	l.len += other.len
	other.Init()
}

// Init empties the list without touching the elements it held.
func (l *List[T]) Init() *List[T] {
	l.head, l.tail, l.len = nil, nil, 0
	return l
}
