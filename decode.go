package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffcode/bitvector"
)

// Decode decodes exactly count symbols from bits by walking the
// encoding tree: each false bit descends left, each true bit descends
// right, and each leaf emits its symbol and restarts the walk from the
// root.  A single cursor advances across the whole call, so
// consecutive codewords are read back to back.  The wire format
// carries no length header; the caller must know count from elsewhere.
//
// A count of zero returns an empty sequence without touching the tree.
// Otherwise Decode fails with an error wrapping ErrNoTree if the Codec
// was built from an empty frequency table, and with one wrapping
// ErrTruncated if bits runs out before a full codeword has been
// consumed.  It never emits a partial symbol.
func (c *Codec[S]) Decode(bits *bitvector.BitVector, count int) ([]S, error) {
	assert.Assertf(count >= 0, "symbol count %d < 0", count)
	if count == 0 {
		return []S{}, nil
	}
	if c.root == nil {
		return nil, fmt.Errorf("huffcode: decode %d symbols: %w", count, ErrNoTree)
	}

	out := make([]S, 0, count)
	cursor := 0
	for len(out) < count {
		n := c.root
		for !n.isLeaf() {
			bit, ok := bits.Get(cursor)
			if !ok {
				return nil, fmt.Errorf("huffcode: decode symbol %d of %d at bit %d: %w",
					len(out)+1, count, cursor, ErrTruncated)
			}
			cursor++
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		out = append(out, n.symbol)
	}
	return out, nil
}
