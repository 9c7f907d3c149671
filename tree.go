package huffcode

import (
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffcode/bitvector"
	"github.com/chronos-tachyon/huffcode/pqueue"
)

// node is one node of the encoding tree.  The tree is strict: a node
// either is a leaf holding exactly one symbol, or has two non-nil
// children.  The path from the root to a leaf, reading a descent to
// the left as false and to the right as true, is that leaf's codeword;
// strictness is what makes the resulting code prefix-free.
//
// The tree is built once and never mutated.
type node[S comparable] struct {
	left   *node[S]
	right  *node[S]
	symbol S
}

func (n *node[S]) isLeaf() bool {
	return n.left == nil
}

// pending pairs a subtree with its cumulative weight while the tree is
// under construction.
type pending[S comparable, W Weight] struct {
	tree   *node[S]
	weight W
}

// walkFrame is one frame of walkCodes' explicit stack.  x counts the
// steps taken at this node: 0 → left child next, 1 → right child next,
// 2 → unwind.
type walkFrame[S comparable] struct {
	n *node[S]
	x byte
}

// buildTree builds the encoding tree: one leaf per symbol goes into a
// heap ordered by ascending weight, then the two globally
// lowest-weight entries are repeatedly popped and combined under a new
// internal node whose weight is their sum, until a single entry
// remains.  That entry's tree is the root.  An empty table yields a
// nil root.
//
// Lowest-first order comes from handing the max-heap an inverted
// comparator.  Entries of equal weight may merge in any order; the
// resulting codeword values differ but every outcome is an optimal
// prefix-free code.
func buildTree[S comparable, W Weight](freqs map[S]W) *node[S] {
	if len(freqs) == 0 {
		return nil
	}

	byWeight := pqueue.NewFunc[pending[S, W]](func(a, b pending[S, W]) bool {
		return b.weight < a.weight
	})
	var zero W
	for symbol, weight := range freqs {
		assert.Assertf(weight >= zero, "weight %v < 0 for symbol %v", weight, symbol)
		byWeight.Push(pending[S, W]{tree: &node[S]{symbol: symbol}, weight: weight})
	}

	for {
		first, _ := byWeight.Pop()
		second, ok := byWeight.Pop()
		if !ok {
			return first.tree
		}
		byWeight.Push(pending[S, W]{
			tree:   &node[S]{left: first.tree, right: second.tree},
			weight: first.weight + second.weight,
		})
	}
}

// walkCodes derives the symbol-to-codeword table by a depth-first walk
// from the root, growing one shared path vector: descending left
// appends false, descending right appends true, and reaching a leaf
// records a copy of the path as that symbol's codeword.  A
// single-leaf tree assigns its symbol the empty codeword.
//
// The walk keeps an explicit stack with a per-frame step counter
// (x=0 → left child next, x=1 → right child next, x=2 → unwind), so a
// deeply unbalanced tree cannot exhaust the goroutine stack.
func walkCodes[S comparable](root *node[S], codes map[S]*bitvector.BitVector) {
	if root == nil {
		return
	}
	if root.isLeaf() {
		codes[root.symbol] = bitvector.New()
		return
	}

	path := bitvector.New()
	stack := make([]walkFrame[S], 0, 16)
	stack = append(stack, walkFrame[S]{n: root})

	record := func(child *node[S], bit bool) {
		path.Push(bit)
		if !child.isLeaf() {
			stack = append(stack, walkFrame[S]{n: child})
			return
		}
		_, dup := codes[child.symbol]
		assert.Assertf(!dup, "symbol %v appears in more than one leaf", child.symbol)
		codes[child.symbol] = path.Clone()
		path.Pop()
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			record(top.n.left, false)
		case 1:
			record(top.n.right, true)
		case 2:
			stack = stack[:len(stack)-1]
			// The root frame pushed no bit; Pop on the now
			// empty path is a no-op.
			path.Pop()
		}
	}
}
