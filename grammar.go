// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

import "strings"

// ParseTypeLayout splits a comma-separated type layout string into its
// ordered top-level descriptors. Commas nested inside tuple parentheses are
// part of the enclosing descriptor and do not split:
//
//	"uint8,(address,bytes32[],bytes)" -> ["uint8", "(address,bytes32[],bytes)"]
//
// The scan tracks parenthesis depth only; it does not validate the layout.
// Unbalanced parentheses yield garbage descriptors that downstream
// classification degrades to unknown, never a fault.
func ParseTypeLayout(layout string) []string {
	if layout == "" {
		return nil
	}
	var (
		descs []string
		depth int
		start int
	)
	for i := 0; i < len(layout); i++ {
		switch layout[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				descs = append(descs, layout[start:i])
				start = i + 1
			}
		}
	}
	return append(descs, layout[start:])
}

// ParseTupleElements splits a tuple descriptor into its component
// descriptors by stripping exactly one outer parenthesis pair and re-running
// the top-level comma split on the interior.
func ParseTupleElements(desc string) []string {
	if len(desc) < 2 || !strings.HasPrefix(desc, "(") || !strings.HasSuffix(desc, ")") {
		return nil
	}
	return ParseTypeLayout(desc[1 : len(desc)-1])
}

// ExtractArrayElementType strips the trailing [] from a dynamic array
// descriptor, yielding the element descriptor.
func ExtractArrayElementType(desc string) string {
	return strings.TrimSuffix(desc, "[]")
}
