// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

import (
	"strconv"
	"strings"
)

// staticKinds maps the canonical single-word primitive names to their kinds.
// Matching is exact and case sensitive, aliases like "uint" or "byte" are
// not recognized and classify as unknown.
var staticKinds = func() map[string]Kind {
	kinds := map[string]Kind{
		"address": KindAddress,
		"bool":    KindBool,
	}
	for width := 8; width <= 256; width += 8 {
		kinds["uint"+strconv.Itoa(width)] = KindUint
		kinds["int"+strconv.Itoa(width)] = KindInt
	}
	for size := 1; size <= 32; size++ {
		kinds["bytes"+strconv.Itoa(size)] = KindFixedBytes
	}
	return kinds
}()

// Classify maps a type descriptor string to its semantic kind. Descriptors
// ending in [] are arrays regardless of their element type, descriptors
// starting with ( are tuples. Anything unrecognized - including fixed-size
// arrays like uint256[3], which this decoder does not support - classifies
// as KindUnknown and is treated as an inert static word so the walk keeps
// progressing instead of faulting.
func Classify(desc string) Kind {
	switch {
	case strings.HasSuffix(desc, "[]"):
		return KindArray
	case strings.HasPrefix(desc, "("):
		return KindTuple
	case desc == "bytes":
		return KindBytes
	case desc == "string":
		return KindString
	}
	if kind, ok := staticKinds[desc]; ok {
		return kind
	}
	return KindUnknown
}

// IsDynamic reports whether a descriptor needs offset indirection into the
// tail region. Byte strings, text strings and dynamic-length arrays always
// do. A tuple is dynamic iff at least one of its components is dynamic
// (checked recursively); an all-static tuple is laid out inline in the head
// region, one word per component, with no offset word. Everything else,
// unknown descriptors included, is static.
func IsDynamic(desc string) bool {
	switch Classify(desc) {
	case KindBytes, KindString, KindArray:
		return true
	case KindTuple:
		for _, elem := range ParseTupleElements(desc) {
			if IsDynamic(elem) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
