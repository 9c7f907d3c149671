package bitvector

// Bytes is an iterator over a vector's bits packed into bytes, eight
// consecutive bits per byte, least-significant-bit first.  If the bit
// length is not a multiple of 8, the final byte carries the remaining
// bits in its low-order positions and its unused high-order bits are
// zero.
//
// A Bytes iterator is one-shot: once Next has returned ok == false it
// keeps doing so.  The vector must not be mutated while iterating.
type Bytes struct {
	v     *BitVector
	index uint
}

// Bytes returns an iterator over the vector's packed byte
// representation.
func (v *BitVector) Bytes() *Bytes {
	return &Bytes{v: v}
}

// Next returns the next packed byte, with ok == false once all bits
// have been consumed.
func (it *Bytes) Next() (b byte, ok bool) {
	if it.index >= uint(it.v.len) {
		return 0, false
	}

	// index is a multiple of 8 and wordBits is a multiple of 8, so
	// the byte never straddles two words.
	b = byte(it.v.words[it.index/wordBits] >> (it.index % wordBits))
	if remaining := uint(it.v.len) - it.index; remaining < 8 {
		b &= byte(1)<<remaining - 1
	}
	it.index += 8
	return b, true
}

// AppendTo appends the vector's packed byte representation to p and
// returns the extended slice.
func (v *BitVector) AppendTo(p []byte) []byte {
	it := v.Bytes()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		p = append(p, b)
	}
	return p
}
