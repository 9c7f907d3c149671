package bitvector

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the vector as a JSON string of '0' and '1'
// characters, first bit leftmost.
func (v *BitVector) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON decodes a JSON string of '0' and '1' characters into
// the vector, replacing its previous contents.
func (v *BitVector) UnmarshalJSON(raw []byte) error {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return err
	}

	w := NewWithCapacity(len(str))
	for _, ch := range str {
		switch ch {
		case '0':
			w.Push(false)
		case '1':
			w.Push(true)
		default:
			return fmt.Errorf("invalid bit character %q while unmarshaling BitVector", ch)
		}
	}
	*v = *w
	return nil
}

var (
	_ json.Marshaler   = (*BitVector)(nil)
	_ json.Unmarshaler = (*BitVector)(nil)
)
