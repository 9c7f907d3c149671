// Package bitvector provides a growable, indexable sequence of single
// bits, packed into native machine words.
//
// A BitVector behaves like a slice of bool but stores its bits densely:
// memory use and the cost of bulk operations such as Fill are
// proportional to the bit length divided by the word width, not to the
// bit length itself.  The zero-length vector is ready to use.
package bitvector

import (
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// wordBits is the width of one backing word.  It is the platform's
// native unsigned width, which is always a power of two and at least 8,
// so the index arithmetic below stays branch-free.
const wordBits = mathbits.UintSize

// BitVector is a packed sequence of bits.  The first Push'd bit is bit
// 0.  Bits at indices at or beyond Len are not defined and cannot be
// observed through any method.
//
// A BitVector must not be mutated concurrently.
type BitVector struct {
	len   int
	words []uint
}

// New returns a new empty BitVector.
func New() *BitVector {
	return &BitVector{}
}

// NewWithCapacity returns a new empty BitVector with backing storage
// reserved for at least n bits.
func NewWithCapacity(n int) *BitVector {
	assert.Assertf(n >= 0, "bit capacity %d < 0", n)
	return &BitVector{words: make([]uint, 0, wordsFor(uint(n)))}
}

// Len returns the number of bits in the vector.
func (v *BitVector) Len() int {
	return v.len
}

// IsEmpty reports whether the vector holds zero bits.
func (v *BitVector) IsEmpty() bool {
	return v.len == 0
}

// Cap returns the number of bits the vector can hold without
// reallocating.  Capacity never shrinks except by creating a fresh
// vector.
func (v *BitVector) Cap() int {
	return cap(v.words) * wordBits
}

// Push appends one bit.  Amortized O(1); a new word is allocated only
// when the last word is full.
func (v *BitVector) Push(bit bool) {
	index := uint(v.len) / wordBits
	if index == uint(len(v.words)) {
		var word uint
		if bit {
			word = 1
		}
		v.words = append(v.words, word)
	} else {
		mask := uint(1) << (uint(v.len) % wordBits)
		if bit {
			v.words[index] |= mask
		} else {
			v.words[index] &^= mask
		}
	}
	v.len++
}

// Pop removes and returns the last bit.  It returns ok == false if the
// vector is empty.  Backing storage is not released.
func (v *BitVector) Pop() (bit bool, ok bool) {
	if v.len == 0 {
		return false, false
	}
	v.len--
	return v.bit(uint(v.len)), true
}

// Get returns the bit at the given index, with ok == false if index is
// out of range.
func (v *BitVector) Get(index int) (bit bool, ok bool) {
	if index < 0 || index >= v.len {
		return false, false
	}
	return v.bit(uint(index)), true
}

// Set overwrites the bit at the given index and reports whether the
// index was in range.
func (v *BitVector) Set(index int, bit bool) bool {
	if index < 0 || index >= v.len {
		return false
	}
	mask := uint(1) << (uint(index) % wordBits)
	if bit {
		v.words[uint(index)/wordBits] |= mask
	} else {
		v.words[uint(index)/wordBits] &^= mask
	}
	return true
}

// Fill sets every bit in the vector to the given value, one word at a
// time.
func (v *BitVector) Fill(bit bool) {
	var word uint
	if bit {
		word = ^uint(0)
	}
	used := v.words[:wordsFor(uint(v.len))]
	for index := range used {
		used[index] = word
	}
}

// Clear resets the vector to zero length.  Backing storage is retained.
func (v *BitVector) Clear() {
	v.len = 0
}

// Grow reserves backing storage for at least n additional bits.
func (v *BitVector) Grow(n int) {
	assert.Assertf(n >= 0, "bit count %d < 0", n)
	if extra := wordsFor(uint(v.len)+uint(n)) - len(v.words); extra > 0 {
		v.words = slices.Grow(v.words, extra)
	}
}

// Extend appends every bit in the given slice, reserving capacity up
// front so that the appends do not reallocate repeatedly.
func (v *BitVector) Extend(bits []bool) {
	v.Grow(len(bits))
	for _, bit := range bits {
		v.Push(bit)
	}
}

// Append appends every bit of o to v.  o is not modified; v and o must
// not alias.
func (v *BitVector) Append(o *BitVector) {
	v.Grow(o.len)
	for index := uint(0); index < uint(o.len); index++ {
		v.Push(o.bit(index))
	}
}

// Clone returns an independent copy of the vector.
func (v *BitVector) Clone() *BitVector {
	words := make([]uint, wordsFor(uint(v.len)))
	copy(words, v.words)
	return &BitVector{len: v.len, words: words}
}

// bit returns the bit at the given index, which must be < v.len.
func (v *BitVector) bit(index uint) bool {
	return v.words[index/wordBits]>>(index%wordBits)&1 != 0
}

// wordsFor returns the number of words needed to hold the given number
// of bits.
func wordsFor(bits uint) int {
	return int((bits + wordBits - 1) / wordBits)
}
