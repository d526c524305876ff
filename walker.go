// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidec

// walker is the transient state of one decode call: the split input words,
// the chunk annotations being assembled, and a processed marker per position
// used to fill unreached gaps after the type-directed walk. A fresh walker
// is built per call, so concurrent decodes never share state.
type walker struct {
	words  []Word  // Input buffer split into 32-byte words
	chunks []Chunk // Output annotations, one slot per word
	done   []bool  // Positions already annotated by the walk
}

// record annotates a single word position. Positions outside the buffer are
// ignored, keeping every walk branch bounds-safe without explicit checks at
// each call site.
func (w *walker) record(pos int, kind Kind, label string, dynamic, offset bool) {
	if pos < 0 || pos >= len(w.words) {
		return
	}
	w.chunks[pos] = Chunk{
		Word:    w.words[pos],
		Kind:    kind,
		Label:   label,
		Index:   pos,
		Dynamic: dynamic,
		Offset:  offset,
	}
	w.done[pos] = true
}

// tailTarget resolves the offset word at pos, relative to the word position
// base, into a tail start position. Offsets that do not fit in 64 bits or
// land outside the buffer report false; the caller skips the tail walk,
// which is the uniform stop-early policy for damaged pointers.
func (w *walker) tailTarget(base, pos int) (int, bool) {
	off, ok := w.words[pos].Uint64()
	if !ok {
		return 0, false
	}
	target := uint64(base) + off/WordSize
	if target >= uint64(len(w.words)) {
		return 0, false
	}
	return int(target), true
}

// walkHead traverses the head region: one word per static descriptor (an
// all-static tuple inlines one word per component), one offset word per
// dynamic descriptor, with tail processing dispatched for every resolvable
// offset. The walk stops as soon as either the descriptors or the words run
// out.
func (w *walker) walkHead(descs []string) {
	pos := 0
	for _, desc := range descs {
		if pos >= len(w.words) {
			break
		}
		if !IsDynamic(desc) {
			if Classify(desc) == KindTuple {
				pos += w.walkInlineTuple(pos, desc)
				continue
			}
			w.record(pos, Classify(desc), desc, false, false)
			pos++
			continue
		}
		w.record(pos, Classify(desc), desc+" (offset)", true, true)
		if tail, ok := w.tailTarget(0, pos); ok {
			w.walkTail(tail, desc)
		}
		pos++
	}
}

// walkInlineTuple lays out an all-static tuple directly in the head region,
// one word per component, nested static tuples flattened recursively. It
// returns the number of words consumed.
func (w *walker) walkInlineTuple(pos int, desc string) int {
	consumed := 0
	for _, elem := range ParseTupleElements(desc) {
		if pos+consumed >= len(w.words) {
			break
		}
		if Classify(elem) == KindTuple {
			consumed += w.walkInlineTuple(pos+consumed, elem)
			continue
		}
		w.record(pos+consumed, Classify(elem), "tuple element ("+elem+")", false, false)
		consumed++
	}
	return consumed
}

// walkTail decodes one dynamic payload starting at its tail position,
// branching on the driving descriptor's kind. Unknown or static kinds have
// no tail representation and are ignored.
func (w *walker) walkTail(tail int, desc string) {
	switch Classify(desc) {
	case KindBytes, KindString:
		w.walkBlob(tail, desc)
	case KindArray:
		w.walkArray(tail, desc)
	case KindTuple:
		w.walkTuple(tail, desc)
	}
}

// walkBlob decodes a bytes/string payload: a byte-length word followed by
// ceil(length/32) payload words. A declared length overrunning the buffer is
// truncated silently to the words actually present.
func (w *walker) walkBlob(tail int, desc string) {
	w.record(tail, Classify(desc), desc+" (length)", true, false)

	length, ok := w.words[tail].Uint64()
	if !ok {
		length = uint64(len(w.words)-tail-1) * WordSize
	}
	if max := uint64(len(w.words)-tail-1) * WordSize; length > max {
		length = max
	}
	count := int((length + WordSize - 1) / WordSize)
	for i := 0; i < count; i++ {
		w.record(tail+1+i, Classify(desc), desc+" (data)", true, false)
	}
}

// walkArray decodes a dynamic-length array payload: an element-count word
// followed by the element region. Static elements are inline, one word
// each; dynamic elements hold an offset word whose value is relative to the
// array's own tail start (not the buffer start and not the element slot),
// with tail processing dispatched recursively at the resolved position.
func (w *walker) walkArray(tail int, desc string) {
	w.record(tail, KindArray, desc+" (length)", true, false)

	count, ok := w.words[tail].Uint64()
	if !ok {
		return
	}
	elem := ExtractArrayElementType(desc)
	dynamic := IsDynamic(elem)

	pos := tail + 1
	for i := uint64(0); i < count && pos < len(w.words); i++ {
		if !dynamic {
			w.record(pos, Classify(elem), desc+" element ("+elem+")", true, false)
			pos++
			continue
		}
		w.record(pos, Classify(elem), desc+" element ("+elem+") (offset)", true, true)
		if target, ok := w.tailTarget(tail, pos); ok {
			w.walkTail(target, elem)
		}
		pos++
	}
}

// walkTuple decodes a dynamic tuple payload: a start marker word followed by
// one word per component. Static components are inline; dynamic components
// hold an offset word relative to the tuple's own tail start, dispatched
// recursively. There is no closing marker, the region's extent is implied
// by the words its components consume.
func (w *walker) walkTuple(tail int, desc string) {
	w.record(tail, KindTuple, "tuple (start)", true, false)

	pos := tail + 1
	for _, elem := range ParseTupleElements(desc) {
		if pos >= len(w.words) {
			break
		}
		if !IsDynamic(elem) {
			w.record(pos, Classify(elem), "tuple element ("+elem+")", true, false)
			pos++
			continue
		}
		w.record(pos, Classify(elem), "tuple element ("+elem+") (offset)", true, true)
		if target, ok := w.tailTarget(tail, pos); ok {
			w.walkTail(target, elem)
		}
		pos++
	}
}

// fillGaps assigns an unknown placeholder to every position the walk never
// reached, so the output covers each input word exactly once.
func (w *walker) fillGaps() {
	for pos, done := range w.done {
		if !done {
			w.chunks[pos] = Chunk{
				Word:  w.words[pos],
				Kind:  KindUnknown,
				Label: "unknown",
				Index: pos,
			}
		}
	}
}
