// Package huffcode implements minimum-redundancy (Huffman) prefix-free
// codes over arbitrary symbol types.  These are useful as the entropy
// coding stage of compression formats.
//
// A Codec is built once from a frequency table and never changes
// afterward: Encode concatenates codewords from a table derived at
// build time, while Decode walks the encoding tree itself.  Codewords
// and encoded output are packed bit vectors (package bitvector); the
// tree is built by greedily merging the two lowest-weight pending
// subtrees drawn from a binary heap (package pqueue).
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffcode
