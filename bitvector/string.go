package bitvector

import (
	"fmt"
	"strings"
)

// String returns the string representation of this vector: the bits in
// push order, first bit leftmost, as a quoted string of '0' and '1'
// characters.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.len + 2)
	sb.WriteByte('"')
	for index := uint(0); index < uint(v.len); index++ {
		if v.bit(index) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = (*BitVector)(nil)
