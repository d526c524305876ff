// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

// SplitIntoChunks segments a buffer into its ordered sequence of 32-byte
// words. The split is purely mechanical and does no interpretation. The
// buffer length must be a whole multiple of the word size, anything else
// fails with ErrMisalignedData.
func SplitIntoChunks(buffer []byte) ([]Word, error) {
	if len(buffer)%WordSize != 0 {
		return nil, ErrMisalignedData
	}
	words := make([]Word, len(buffer)/WordSize)
	for i := range words {
		copy(words[i][:], buffer[i*WordSize:])
	}
	return words, nil
}
