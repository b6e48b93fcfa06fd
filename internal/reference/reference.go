// Package reference provides an ordered model of a list-backed min heap for tests.
//
// The model keeps every value in a B-tree ordered by (value, arrival), where arrival
// is the position the value would occupy in the heap's backing list. Its minimum is
// therefore the first-in-sequence minimal value, the element a list heap must report.
package reference

import (
	"cmp"
	"slices"

	"github.com/google/btree"
)

const degree = 16

type entry[T any] struct {
	value   T
	arrival uint64
}

// Model mirrors the observable behaviour of a heap with first-minimum tie-breaking.
type Model[T any] struct {
	tree *btree.BTreeG[entry[T]]
	less func(a, b T) bool
	next uint64
}

// New returns an empty model ordered by less.
func New[T any](less func(a, b T) bool) *Model[T] {
	return &Model[T]{
		tree: btree.NewG(degree, func(a, b entry[T]) bool {
			switch {
			case less(a.value, b.value):
				return true
			case less(b.value, a.value):
				return false
			default:
				return a.arrival < b.arrival
			}
		}),
		less: less,
	}
}

// Len returns the number of values held.
func (m *Model[T]) Len() int {
	return m.tree.Len()
}

// Push appends v after every value already held.
func (m *Model[T]) Push(v T) {
	m.tree.ReplaceOrInsert(entry[T]{value: v, arrival: m.next})
	m.next++
}

// Min returns the first minimal value in arrival order.
func (m *Model[T]) Min() (T, bool) {
	e, ok := m.tree.Min()
	return e.value, ok
}

// Pop removes and returns the first minimal value in arrival order.
func (m *Model[T]) Pop() (T, bool) {
	e, ok := m.tree.DeleteMin()
	return e.value, ok
}

// Merge moves every value of other behind the values of m, keeping other's
// arrival order. other is left empty.
func (m *Model[T]) Merge(other *Model[T]) {
	moved := make([]entry[T], 0, other.tree.Len())
	other.tree.Ascend(func(e entry[T]) bool {
		moved = append(moved, e)
		return true
	})
	slices.SortFunc(moved, func(a, b entry[T]) int {
		return cmp.Compare(a.arrival, b.arrival)
	})
	for _, e := range moved {
		m.Push(e.value)
	}
	other.tree.Clear(false)
	other.next = 0
}

// Check reports whether no held value sorts strictly before top.
func (m *Model[T]) Check(top T) bool {
	ok := true
	m.tree.Ascend(func(e entry[T]) bool {
		if m.less(e.value, top) {
			ok = false
		}
		return ok
	})
	return ok
}
