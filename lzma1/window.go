/*
Copyright 2026 The gocompress Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lzma1

// Window is the sliding dictionary: a circular buffer of exactly
// DictSize bytes addressed by (logical position mod DictSize), plus a
// saturating "full" counter that governs distance validity.
//
// The externally observable contract (spec §3's dictionary invariants:
// a distance d is legal iff full > d; decoded bytes are byte-exact) is
// implemented here with plain modulo addressing rather than the
// reference's two-sided RepeatMax padding/mirroring trick, which exists
// purely to let a match copy run as an unchecked linear memcpy instead
// of a wrap-aware loop. That trick has no externally observable effect
// on output bytes, and this port is explicitly fast-mode/greedy rather
// than perf-tuned to the reference's memory layout (spec §1
// non-goals), so it is not reproduced; see DESIGN.md.
type Window struct {
	buf      []byte
	dictSize uint32
	logPos   uint64 // monotonic count of bytes written since last reset
	full     uint32 // valid byte count since last reset, saturating at dictSize
}

// NewWindow allocates a window sized for dictSize.
func NewWindow(dictSize uint32) *Window {
	w := &Window{dictSize: dictSize}
	w.buf = make([]byte, dictSize)
	w.Reset()
	return w
}

// Reset clears the window to a fresh, empty state (LZMA2 0xE0+ control
// or a new container member).
func (w *Window) Reset() {
	w.logPos = 0
	w.full = 0
}

// DictSize returns the configured dictionary size.
func (w *Window) DictSize() uint32 { return w.dictSize }

// Full returns the number of valid bytes written since the last reset,
// saturating at DictSize; a decoded distance d is legal iff Full() > d.
func (w *Window) Full() uint32 { return w.full }

// LogicalPos returns the cumulative number of bytes written since the
// last reset (the spec's "pos - InitPos" quantity).
func (w *Window) LogicalPos() uint64 { return w.logPos }

// IsDistanceValid reports whether dist (0-based: 0 means "the
// immediately preceding byte") is within the dictionary's valid extent.
func (w *Window) IsDistanceValid(dist uint32) bool {
	return w.full > dist
}

// ByteAt returns the byte dist positions behind the write cursor
// (dist=0 is the most recently written byte). The caller must ensure
// IsDistanceValid(dist) holds.
func (w *Window) ByteAt(dist uint32) byte {
	idx := (w.logPos - uint64(dist) - 1) % uint64(w.dictSize)
	return w.buf[idx]
}

// PutByte appends a single decoded/literal byte and advances the
// cursor, wrapping and updating Full as needed.
func (w *Window) PutByte(b byte) {
	idx := w.logPos % uint64(w.dictSize)
	w.buf[idx] = b
	w.logPos++
	if w.full < w.dictSize {
		w.full++
	}
}

// CopyMatch copies length bytes from dist positions behind the cursor
// to the cursor (the general mechanism behind every LZMA match/rep
// event), advancing the cursor by length. The copy is byte-by-byte
// because source and destination ranges may overlap (distance <
// length) which is the common case for run-length matches.
func (w *Window) CopyMatch(dist, length uint32) {
	for i := uint32(0); i < length; i++ {
		w.PutByte(w.ByteAt(dist))
	}
}

// CopyMatchOut behaves like CopyMatch but also appends every produced
// byte to dst, returning the extended slice; used by the decoder to
// stream output without a second pass over the window.
func (w *Window) CopyMatchOut(dist, length uint32, dst []byte) []byte {
	for i := uint32(0); i < length; i++ {
		b := w.ByteAt(dist)
		w.PutByte(b)
		dst = append(dst, b)
	}
	return dst
}

// PutBytes appends a raw byte slice (used by LZMA2 uncompressed chunks).
func (w *Window) PutBytes(b []byte) {
	for _, c := range b {
		w.PutByte(c)
	}
}
