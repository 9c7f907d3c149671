package huffcode

import (
	"errors"
)

// Errors reported by Encode and Decode, wrapped with call context.
// Empty-container and out-of-range conditions in the bitvector and
// pqueue packages are ordinary iteration outcomes and are reported
// there as (value, ok) pairs instead.
var (
	// ErrUnknownSymbol reports an Encode argument that was absent
	// from the frequency table the Codec was built from.
	ErrUnknownSymbol = errors.New("symbol not present in frequency table")

	// ErrTruncated reports that Decode exhausted its input in the
	// middle of a codeword.
	ErrTruncated = errors.New("bit stream truncated mid-codeword")

	// ErrNoTree reports a Decode with a positive symbol count
	// against a Codec built from an empty frequency table.
	ErrNoTree = errors.New("codec has no encoding tree")
)
