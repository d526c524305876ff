// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abidec is a schemaless, decode-only annotator for ABI encoded
// data. Given a raw buffer and a textual type layout, it walks the head
// region word by word, chases offsets into the tail region (recursively for
// nested arrays and tuples) and returns one annotated chunk per 32-byte word
// describing that word's role: inline value, offset pointer, length prefix
// or payload.
//
// The decoder is forensic by design. It never validates that the layout
// matches the buffer; mismatches, damaged offsets and overlong lengths
// degrade into truncated walks and unknown placeholder chunks rather than
// errors. The only fatal condition is a buffer whose length is not a whole
// multiple of the word size. Callers using it on untrusted data get a
// best-effort annotation, not a verdict.
//
// Each call is a pure, independent computation over its own working arrays,
// so concurrent decodes need no locking.
package abidec

// Decode annotates every word of the buffer according to the type layout.
// It returns exactly one Chunk per input word, in buffer order: positions
// the layout describes carry their semantic role, all remaining positions
// are unknown placeholders. The only possible error is ErrMisalignedData.
func Decode(buffer []byte, layout string) ([]Chunk, error) {
	words, err := SplitIntoChunks(buffer)
	if err != nil {
		return nil, err
	}
	w := &walker{
		words:  words,
		chunks: make([]Chunk, len(words)),
		done:   make([]bool, len(words)),
	}
	w.walkHead(ParseTypeLayout(layout))
	w.fillGaps()
	return w.chunks, nil
}

// DecodeStrings is a reduced variant of Decode that returns only the
// human-readable label per word. It is a strict projection of the rich
// chunk form, backed by the same engine.
func DecodeStrings(buffer []byte, layout string) ([]string, error) {
	chunks, err := Decode(buffer, layout)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(chunks))
	for i, chunk := range chunks {
		labels[i] = chunk.Label
	}
	return labels, nil
}
