package pqueue

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// maxDumpDepth caps how many levels of the heap tree Dump renders.
const maxDumpDepth = 5

// Dump writes a programmer-readable debugging dump of the heap to the
// given writer: the first few levels of the implicit binary tree,
// drawn with '/' and '\' edges.  Subtrees below the depth cap are
// rendered as "...".
func (h *Heap[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if len(h.items) == 0 {
		buf.WriteString("(empty)\n")
		return buf.WriteTo(w)
	}
	for _, line := range h.lines(0, maxDumpDepth) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (h *Heap[T]) DebugString() string {
	var sb strings.Builder
	_, _ = h.Dump(&sb)
	return sb.String()
}

// lines renders the subtree rooted at index.  lines[0] is the root
// value centered over its children; lines[1] holds the edge
// characters; the remaining lines are the left subtree's rendering
// with the right subtree's glued on column-wise.  The left subtree is
// always at least as deep as the right one, so the right rendering
// never has rows left over.
func (h *Heap[T]) lines(index, maxDepth int) []string {
	if maxDepth == 0 {
		return []string{"..."}
	}

	leftIndex := left(index)
	if leftIndex >= len(h.items) {
		return []string{fmt.Sprintf("%v", h.items[index])}
	}

	lines := []string{"", ""}
	lines = append(lines, h.lines(leftIndex, maxDepth-1)...)
	lines[1] = center("/", len(lines[2]))
	if rightIndex := right(index); rightIndex < len(h.items) {
		rightLines := h.lines(rightIndex, maxDepth-1)
		lines[1] += " " + center(`\`, len(rightLines[0]))
		for i, rightLine := range rightLines {
			lines[2+i] += " " + rightLine
		}
	}
	lines[0] = center(fmt.Sprintf("%v", h.items[index]), len(lines[1]))
	return lines
}

// center pads s with spaces on both sides to the given width, favoring
// the right side when the padding is odd.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	leftPad := pad / 2
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", pad-leftPad)
}
