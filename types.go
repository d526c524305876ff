// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

// WordSize is the fixed addressing unit of ABI encoded data. Every offset,
// length prefix and inline value occupies exactly one such slot.
const WordSize = 32

// Word is one 32-byte slot of an ABI encoded buffer. Words are plain copies
// of the input and never mutated after splitting.
type Word [WordSize]byte

// Uint256 interprets the word as a big-endian 256-bit unsigned integer.
func (w Word) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(w[:])
}

// Uint64 interprets the word as a big-endian unsigned integer, reporting
// whether the value fits into 64 bits. Offsets and lengths that do not fit
// can never address a sane buffer, so callers treat a false return the same
// as an out-of-bounds pointer.
func (w Word) Uint64() (uint64, bool) {
	n := new(uint256.Int).SetBytes32(w[:])
	if !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

// Hex returns the 0x-prefixed hexadecimal rendering of the word.
func (w Word) Hex() string {
	return "0x" + hex.EncodeToString(w[:])
}

// Kind is the semantic classification of a type descriptor. It carries no
// payload; a single classification at the descriptor boundary replaces
// string comparisons in the decoding branches.
type Kind byte

const (
	KindUnknown Kind = iota // unrecognized descriptor, decoded as an inert word
	KindUint                // uint8 .. uint256
	KindInt                 // int8 .. int256
	KindAddress             // address
	KindBool                // bool
	KindFixedBytes          // bytes1 .. bytes32
	KindBytes               // bytes (dynamic)
	KindString              // string (dynamic)
	KindArray               // T[] (dynamic length)
	KindTuple               // (T1,T2,...)
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindUint:       "uint",
	KindInt:        "int",
	KindAddress:    "address",
	KindBool:       "bool",
	KindFixedBytes: "fixed-bytes",
	KindBytes:      "bytes",
	KindString:     "string",
	KindArray:      "array",
	KindTuple:      "tuple",
}

// Chunk is the decoded annotation of one word position. The decoder emits
// exactly one chunk per input word; positions the type layout never reaches
// are filled with KindUnknown placeholders so the output always has a 1:1
// correspondence with the input words.
type Chunk struct {
	Word    Word   // Raw word copied from the input buffer
	Kind    Kind   // Semantic classification of the driving descriptor
	Label   string // Descriptor text plus a role suffix ("(offset)", "(length)", "(data)")
	Index   int    // Word position within the buffer, zero based
	Dynamic bool   // Whether the word belongs to a variable-length region
	Offset  bool   // Whether the word's value is a byte offset rather than payload
}

// String renders the chunk on a single line for dumps and debugging.
func (c Chunk) String() string {
	return fmt.Sprintf("%4d  %s  %s", c.Index, c.Word.Hex(), c.Label)
}
