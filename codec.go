package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/chronos-tachyon/huffcode/bitvector"
)

// Weight constrains the values of a frequency table: any non-negative
// summable numeric type, typically an occurrence count.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Codec holds a built Huffman code: the encoding tree plus the
// symbol-to-codeword table derived from it.  A Codec never changes
// after New returns, so any number of goroutines may call Encode and
// Decode on it concurrently.
type Codec[S comparable] struct {
	root  *node[S]
	codes map[S]*bitvector.BitVector
}

// New builds a Codec from a table mapping each symbol to its
// non-negative weight.  Lower-weight symbols end up deeper in the
// tree and therefore receive longer codewords.
//
// An empty table yields a Codec that can encode and decode only empty
// sequences.  A single-symbol table yields a tree whose root is the
// lone leaf, so that symbol's codeword is empty and encoding it costs
// zero bits.  When several entries tie for the lowest weight, the
// merge order is unspecified, and with it the exact codeword values;
// every outcome is an optimal prefix-free code.
func New[S comparable, W Weight](freqs map[S]W) *Codec[S] {
	root := buildTree(freqs)
	codes := make(map[S]*bitvector.BitVector, len(freqs))
	walkCodes(root, codes)
	return &Codec[S]{root: root, codes: codes}
}

// NewFromCorpus counts how often each symbol occurs in corpus and
// builds a Codec from the resulting frequency table.
func NewFromCorpus[S comparable](corpus []S) *Codec[S] {
	counts := make(map[S]int, len(corpus))
	for _, symbol := range corpus {
		counts[symbol]++
	}
	return New(counts)
}

// NumSymbols returns the number of distinct symbols in the code.
func (c *Codec[S]) NumSymbols() int {
	return len(c.codes)
}

// CodeOf returns a copy of the codeword assigned to symbol, with
// ok == false if the symbol is not part of the code.  The copy keeps
// the Codec's own codewords immutable.
func (c *Codec[S]) CodeOf(symbol S) (code *bitvector.BitVector, ok bool) {
	stored, ok := c.codes[symbol]
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// Dump writes a programmer-readable debugging dump of the code to the
// given writer, one symbol per line in codeword order.
func (c *Codec[S]) Dump(w io.Writer) (int64, error) {
	entries := make([]tableEntry[S], 0, len(c.codes))
	for symbol, code := range c.codes {
		entries = append(entries, tableEntry[S]{symbol, code})
	}
	slices.SortFunc(entries, func(a, b tableEntry[S]) int {
		return strings.Compare(a.code.String(), b.code.String())
	})

	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", len(c.codes))
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\tCodeOf(%v) = %s\n", entry.symbol, entry.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// tableEntry is one row of Dump's sorted code listing.
type tableEntry[S comparable] struct {
	symbol S
	code   *bitvector.BitVector
}

// DebugString returns Dump's output as a string.
func (c *Codec[S]) DebugString() string {
	var sb strings.Builder
	_, _ = c.Dump(&sb)
	return sb.String()
}
