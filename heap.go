package listheap

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/davidvella/listheap/internal/list"
)

// noCopy makes go vet's copylocks check reject copies of a MinHeap.
// A copy would share nodes with the original and break both minimum handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MinHeap is a priority queue kept in insertion order in a doubly linked list,
// with a handle to its current minimum.
//
// Push and Merge run in constant time; Pop rescans the remaining elements.
// Among elements that compare equal, the one earliest in the list is the minimum.
//
// A MinHeap must be created with New or NewFunc and must not be copied.
// It is not safe for concurrent use.
type MinHeap[T any] struct {
	noCopy noCopy

	elements list.List[T]
	minimum  *list.Element[T] // nil iff elements is empty
	less     func(a, b T) bool
	log      *logrus.Entry
}

// New creates an empty heap ordered by the < operator.
func New[T constraints.Ordered](opts ...Option) *MinHeap[T] {
	return NewFunc(func(a, b T) bool { return a < b }, opts...)
}

// NewFunc creates an empty heap ordered by less, which must be a strict weak
// ordering reporting whether a sorts before b. less is kept for the lifetime of
// the heap and may carry state.
func NewFunc[T any](less func(a, b T) bool, opts ...Option) *MinHeap[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.entry()
	if less == nil {
		violation(log, "new", ErrNilLess)
	}
	return &MinHeap[T]{
		less: less,
		log:  log,
	}
}

// Empty reports whether the heap holds no elements.
func (h *MinHeap[T]) Empty() bool {
	return h.elements.Len() == 0
}

// Len returns the number of elements in the heap.
func (h *MinHeap[T]) Len() int {
	return h.elements.Len()
}

// Top returns the minimum element. It panics with ErrEmpty if the heap is empty.
func (h *MinHeap[T]) Top() T {
	if h.Empty() {
		violation(h.log, "top", ErrEmpty)
	}
	return h.minimum.Value
}

// TryTop returns the minimum element, or false if the heap is empty.
func (h *MinHeap[T]) TryTop() (T, bool) {
	if h.Empty() {
		var zero T
		return zero, false
	}
	return h.minimum.Value, true
}

// Push adds value to the heap.
func (h *MinHeap[T]) Push(value T) {
	e := h.elements.PushBack(value)
	if h.minimum == nil {
		h.minimum = e
		return
	}
	// Strict comparison: an equal value never displaces the older minimum.
	if h.less(value, h.minimum.Value) {
		h.minimum = e
	}
}

// Pop removes and returns the minimum element. It panics with ErrEmpty if the
// heap is empty.
func (h *MinHeap[T]) Pop() T {
	if h.Empty() {
		violation(h.log, "pop", ErrEmpty)
	}
	value := h.elements.Remove(h.minimum)
	h.minimum = h.scan()
	return value
}

// scan returns the first element holding a minimal value, or nil.
func (h *MinHeap[T]) scan() *list.Element[T] {
	found := h.elements.Front()
	if found == nil {
		return nil
	}
	for e := found.Next(); e != nil; e = e.Next() {
		if h.less(e.Value, found.Value) {
			found = e
		}
	}
	return found
}

// Merge moves every element of other into h, after h's own elements. other is
// left empty and independent of h. Merging a heap into itself panics with
// ErrSelfMerge; a nil other is ignored.
func (h *MinHeap[T]) Merge(other *MinHeap[T]) {
	if other == nil {
		return
	}
	if other == h {
		violation(h.log, "merge", ErrSelfMerge)
	}
	if h.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		h.log.WithFields(logrus.Fields{
			"event":    "merge",
			"size":     h.elements.Len(),
			"absorbed": other.elements.Len(),
		}).Debug("merging heaps")
	}

	if other.minimum != nil && (h.minimum == nil || h.less(other.minimum.Value, h.minimum.Value)) {
		h.minimum = other.minimum
	}
	h.elements.Splice(&other.elements)
	other.minimum = nil
}

// Move transfers every element of h into a new heap with the same ordering and
// logger, and leaves h empty.
func (h *MinHeap[T]) Move() *MinHeap[T] {
	if h.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		h.log.WithFields(logrus.Fields{
			"event": "move",
			"size":  h.elements.Len(),
		}).Debug("moving heap")
	}

	moved := &MinHeap[T]{
		less: h.less,
		log:  h.log,
	}
	moved.elements.Splice(&h.elements)
	moved.minimum, h.minimum = h.minimum, nil
	return moved
}
