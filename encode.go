package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/huffcode/bitvector"
)

// Encode encodes a sequence of symbols into a single packed bit
// vector by concatenating each symbol's codeword in order.  The
// caller owns the returned vector outright.
//
// Encode fails with an error wrapping ErrUnknownSymbol if any symbol
// was absent from the frequency table the Codec was built from; no
// partial output is returned.
func (c *Codec[S]) Encode(symbols []S) (*bitvector.BitVector, error) {
	var totalBits int
	for _, symbol := range symbols {
		code, ok := c.codes[symbol]
		if !ok {
			return nil, fmt.Errorf("huffcode: encode symbol %v: %w", symbol, ErrUnknownSymbol)
		}
		totalBits += code.Len()
	}

	out := bitvector.NewWithCapacity(totalBits)
	for _, symbol := range symbols {
		out.Append(c.codes[symbol])
	}
	return out, nil
}
