package pqueue

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestHeap_SortDescending(t *testing.T) {
	type testRow struct {
		name   string
		input  []int
		expect []int
	}

	testData := [...]testRow{
		{name: "empty", input: nil, expect: nil},
		{name: "ascending", input: []int{1, 2, 3}, expect: []int{3, 2, 1}},
		{name: "descending", input: []int{3, 2, 1}, expect: []int{3, 2, 1}},
		{name: "mixed", input: []int{2, 3, 1}, expect: []int{3, 2, 1}},
		{name: "duplicates", input: []int{1, 3, 1, 2, 3, 2}, expect: []int{3, 3, 2, 2, 1, 1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			h := New[int]()
			for _, value := range row.input {
				h.Push(value)
			}
			var actual []int
			d := h.Drain()
			for value, ok := d.Next(); ok; value, ok = d.Next() {
				actual = append(actual, value)
			}
			if !slices.Equal(row.expect, actual) {
				t.Errorf("wrong order:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestHeap_PushPopInterleaved(t *testing.T) {
	h := New[int]()
	if !h.IsEmpty() || h.Len() != 0 {
		t.Error("new heap is not empty")
	}

	state := uint32(12345)
	next := func() int {
		state = state*1664525 + 1013904223
		return int(state % 100000)
	}

	var reference []int
	for i := 0; i < 1000; i++ {
		value := next()
		h.Push(value)
		reference = append(reference, value)
	}
	if h.Len() != 1000 {
		t.Fatalf("wrong length: expect 1000, actual %d", h.Len())
	}

	slices.Sort(reference)
	for i := 0; i < 500; i++ {
		actual, ok := h.Pop()
		if !ok {
			t.Fatal("Pop on a non-empty heap reported empty")
		}
		expect := reference[len(reference)-1]
		reference = reference[:len(reference)-1]
		if actual != expect {
			t.Fatalf("pop %d: expect %d, actual %d", i, expect, actual)
		}
	}

	for i := 0; i < 500; i++ {
		value := next()
		h.Push(value)
		reference = append(reference, value)
	}
	slices.Sort(reference)

	for len(reference) != 0 {
		actual, ok := h.Pop()
		if !ok {
			t.Fatal("Pop on a non-empty heap reported empty")
		}
		expect := reference[len(reference)-1]
		reference = reference[:len(reference)-1]
		if actual != expect {
			t.Fatalf("final drain: expect %d, actual %d", expect, actual)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop on an empty heap reported ok")
	}
}

func TestHeap_Peek(t *testing.T) {
	h := New[string]()
	if _, ok := h.Peek(); ok {
		t.Error("Peek on an empty heap reported ok")
	}

	h.Push("pear")
	h.Push("apple")
	h.Push("quince")

	for i := 0; i < 2; i++ {
		actual, ok := h.Peek()
		if !ok {
			t.Fatal("Peek on a non-empty heap reported empty")
		}
		if actual != "quince" {
			t.Errorf("wrong maximum: expect %q, actual %q", "quince", actual)
		}
	}
	if h.Len() != 3 {
		t.Errorf("Peek changed length: expect 3, actual %d", h.Len())
	}
}

func TestHeap_InvertedComparator(t *testing.T) {
	h := NewFunc[int](func(a, b int) bool { return b < a })
	for _, value := range []int{5, 9, 1, 7, 3} {
		h.Push(value)
	}

	expect := []int{1, 3, 5, 7, 9}
	var actual []int
	d := h.Drain()
	for value, ok := d.Next(); ok; value, ok = d.Next() {
		actual = append(actual, value)
	}
	if !slices.Equal(expect, actual) {
		t.Errorf("wrong order:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestHeap_DrainOneShot(t *testing.T) {
	h := New[int]()
	h.Push(1)

	d := h.Drain()
	if _, ok := d.Next(); !ok {
		t.Fatal("Next on a non-empty heap reported exhausted")
	}
	if _, ok := d.Next(); ok {
		t.Error("Next after exhaustion reported ok")
	}
	if !h.IsEmpty() {
		t.Error("heap is not empty after draining")
	}
}
