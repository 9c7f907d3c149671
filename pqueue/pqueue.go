// Package pqueue provides a generic priority queue backed by a classic
// array-based binary max-heap.
//
// Push and Pop run in O(log n).  Elements that compare equal may be
// returned in any relative order; callers must not rely on ties being
// broken consistently with insertion order.
package pqueue

import (
	"golang.org/x/exp/constraints"
)

// Heap is a binary max-heap: the element at the root is greater than or
// equal to every other element, per the heap's comparator.  The zero
// value is not usable; construct with New or NewFunc.
//
// A Heap must not be mutated concurrently.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty Heap over a naturally ordered type.  Pop returns
// the greatest remaining element.
func New[T constraints.Ordered]() *Heap[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc returns an empty Heap ordered by the given comparator, which
// must be a strict weak ordering.  Pop returns an element that is not
// less than any other.
//
// Inverting the comparator turns the Heap into a min-heap, which is how
// the Huffman builder obtains lowest-weight-first order.
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Push adds an element in O(log n): it is appended to the backing array
// and sifted up by repeated parent comparisons until the heap order is
// restored or it reaches the root.
func (h *Heap[T]) Push(value T) {
	index := len(h.items)
	h.items = append(h.items, value)
	for index > 0 {
		parentIndex := parent(index)
		if !h.less(h.items[parentIndex], h.items[index]) {
			break
		}
		h.items[parentIndex], h.items[index] = h.items[index], h.items[parentIndex]
		index = parentIndex
	}
}

// Pop removes and returns the greatest element in O(log n), with
// ok == false if the heap is empty.  The root is swapped with the last
// element, the array shrinks by one, and the new root is sifted down
// toward its greater child until the heap order is restored.
func (h *Heap[T]) Pop() (value T, ok bool) {
	last := len(h.items) - 1
	if last < 0 {
		var zero T
		return zero, false
	}

	value = h.items[0]
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference so it can be collected
	h.items = h.items[:last]

	index := 0
	for {
		childIndex := left(index)
		if childIndex >= last {
			break
		}
		if r := right(index); r < last && h.less(h.items[childIndex], h.items[r]) {
			childIndex = r
		}
		if !h.less(h.items[index], h.items[childIndex]) {
			break
		}
		h.items[index], h.items[childIndex] = h.items[childIndex], h.items[index]
		index = childIndex
	}
	return value, true
}

// Peek returns a copy of the greatest element without removing it, with
// ok == false if the heap is empty.  A copy, rather than a reference,
// keeps callers from editing an element's priority in place and
// breaking the heap order.
func (h *Heap[T]) Peek() (value T, ok bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

func parent(index int) int {
	return (index - 1) / 2
}

func left(index int) int {
	return 2*index + 1
}

func right(index int) int {
	return 2*index + 2
}
