// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec_test

import (
	"encoding/binary"
	"fmt"

	"github.com/gluwa/abidec"
)

// word builds a 32-byte word holding a big-endian integer.
func word(n uint64) []byte {
	blob := make([]byte, abidec.WordSize)
	binary.BigEndian.PutUint64(blob[24:], n)
	return blob
}

// payload builds a 32-byte word with the given bytes left-aligned.
func payload(blob string) []byte {
	buf := make([]byte, abidec.WordSize)
	copy(buf, blob)
	return buf
}

func ExampleDecode() {
	// A single dynamic byte string: one head word holding the offset to the
	// tail, then the byte length, then the payload word.
	var buffer []byte
	buffer = append(buffer, word(32)...)
	buffer = append(buffer, word(3)...)
	buffer = append(buffer, payload("\x01\x02\x03")...)

	chunks, err := abidec.Decode(buffer, "bytes")
	if err != nil {
		panic(err)
	}
	for _, chunk := range chunks {
		fmt.Printf("%d: %s dynamic=%v offset=%v\n", chunk.Index, chunk.Label, chunk.Dynamic, chunk.Offset)
	}
	// Output:
	// 0: bytes (offset) dynamic=true offset=true
	// 1: bytes (length) dynamic=true offset=false
	// 2: bytes (data) dynamic=true offset=false
}
