// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

import "errors"

// ErrMisalignedData is returned when a buffer handed to the decoder is not a
// whole multiple of the 32-byte word size. This is the only fatal condition
// in the package: every other anomaly (bogus offsets, overlong lengths,
// layouts that under- or over-describe the buffer) degrades into truncated
// walks and unknown placeholder chunks instead of an error.
var ErrMisalignedData = errors.New("abidec: data length must be a multiple of word size")
