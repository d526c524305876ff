// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

import "testing"

// Tests the descriptor to kind mapping, including the deliberate gaps: only
// canonical names match, and fixed-size arrays are unsupported.
func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		kind Kind
	}{
		{"uint8", KindUint},
		{"uint256", KindUint},
		{"int8", KindInt},
		{"int256", KindInt},
		{"address", KindAddress},
		{"bool", KindBool},
		{"bytes1", KindFixedBytes},
		{"bytes32", KindFixedBytes},
		{"bytes", KindBytes},
		{"string", KindString},
		{"uint256[]", KindArray},
		{"(address,uint256)[]", KindArray},
		{"(uint8,bool)", KindTuple},
		{"(bytes,uint256)", KindTuple},
		{"uint", KindUnknown},     // non-canonical alias
		{"uint7", KindUnknown},    // invalid width
		{"bytes33", KindUnknown},  // oversized fixed bytes
		{"uint256[3]", KindUnknown}, // fixed-size arrays unsupported
		{"Uint256", KindUnknown},  // case sensitive
		{"", KindUnknown},
	}
	for _, tt := range tests {
		if kind := Classify(tt.desc); kind != tt.kind {
			t.Errorf("descriptor %q: kind mismatch: have %v, want %v", tt.desc, kind, tt.kind)
		}
	}
}

// Tests the static/dynamic split, notably that tuple dynamism is the
// recursive OR of the component dynamism.
func TestIsDynamic(t *testing.T) {
	tests := []struct {
		desc    string
		dynamic bool
	}{
		{"uint256", false},
		{"address", false},
		{"bytes32", false},
		{"bytes", true},
		{"string", true},
		{"uint256[]", true},
		{"(uint256,bool)", false},
		{"(uint256,bytes)", true},
		{"(uint256,(bool,string))", true},
		{"(uint256,(bool,address))", false},
		{"uint256[3]", false}, // unknown, treated as an inert static word
		{"notatype", false},
	}
	for _, tt := range tests {
		if dynamic := IsDynamic(tt.desc); dynamic != tt.dynamic {
			t.Errorf("descriptor %q: dynamism mismatch: have %v, want %v", tt.desc, dynamic, tt.dynamic)
		}
	}
}
