// Package listheap implements a priority queue backed by a doubly linked list
// instead of an array.
//
// Elements are kept in the order they arrived, together with a handle to the
// current minimum. That layout makes the costs unusual for a heap:
//   - O(1) Push: append and compare against the current minimum
//   - O(1) Merge: splice the other heap's list onto this one
//   - O(1) Top, Empty and Len
//   - O(n) Pop: remove the minimum and rescan for the next one
//
// Ties are resolved in favour of the element that is earliest in the list, so
// the first pushed of several equal values is returned first. After a merge the
// receiver's elements precede the absorbed ones.
//
// Basic usage:
//
//	h := listheap.New[int]()
//	h.Push(10)
//	h.Push(5)
//	fmt.Println(h.Top()) // 5
//
//	other := listheap.New[int]()
//	other.Push(1)
//	h.Merge(other) // other is now empty
//	fmt.Println(h.Pop()) // 1
//
// Custom orderings, including stateful ones, are passed to NewFunc:
//
//	center := 10
//	h := listheap.NewFunc(func(a, b int) bool {
//	    return abs(a-center) < abs(b-center)
//	})
//
// Calling Top or Pop on an empty heap is a programming error and panics with an
// error wrapping ErrEmpty; use Empty or TryTop to check first.
package listheap
