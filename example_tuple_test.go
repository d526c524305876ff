// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec_test

import (
	"fmt"

	"github.com/gluwa/abidec"
)

func ExampleDecodeStrings() {
	// A static field followed by a dynamic tuple. The bytes component's
	// offset inside the tuple is relative to the tuple's own tail start,
	// not the buffer start.
	var buffer []byte
	buffer = append(buffer, word(5)...)        // uint256 field, inline
	buffer = append(buffer, word(64)...)       // offset to the tuple tail
	buffer = append(buffer, word(0)...)        // tuple start marker slot
	buffer = append(buffer, word(96)...)       // bytes offset, relative to the marker
	buffer = append(buffer, word(9)...)        // uint256 component, inline
	buffer = append(buffer, word(3)...)        // bytes length
	buffer = append(buffer, payload("abc")...) // bytes payload

	labels, err := abidec.DecodeStrings(buffer, "uint256,(bytes,uint256)")
	if err != nil {
		panic(err)
	}
	for i, label := range labels {
		fmt.Printf("%d: %s\n", i, label)
	}
	// Output:
	// 0: uint256
	// 1: (bytes,uint256) (offset)
	// 2: tuple (start)
	// 3: tuple element (bytes) (offset)
	// 4: tuple element (uint256)
	// 5: bytes (length)
	// 6: bytes (data)
}
