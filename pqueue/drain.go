package pqueue

// Drain is an iterator that consumes a Heap in priority order, greatest
// first, by repeatedly popping.  It is one-shot and finite: once the
// heap is empty, Next keeps returning ok == false, and there is no way
// to restart it.
type Drain[T any] struct {
	h *Heap[T]
}

// Drain returns an iterator that empties the heap in descending
// priority order.
func (h *Heap[T]) Drain() *Drain[T] {
	return &Drain[T]{h: h}
}

// Next removes and returns the greatest remaining element, with
// ok == false once the heap is empty.
func (d *Drain[T]) Next() (value T, ok bool) {
	return d.h.Pop()
}
