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

import (
	"io"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/rangecoder"
)

// Decoder drives the range decoder, the probability tables and the
// dictionary window through one LZMA1 substream. A single Decoder is
// reused across every chunk of an LZMA2 stream, with ApplyReset and
// SetInput called at chunk boundaries as the control byte dictates.
type Decoder struct {
	rc *rangecoder.Decoder
	t  *tables
	w  *Window
}

// NewDecoder allocates a decoder for the given properties and
// dictionary size.
func NewDecoder(props Properties, dictSize uint32) *Decoder {
	return &Decoder{
		rc: rangecoder.NewDecoder(),
		t:  newTables(props),
		w:  NewWindow(dictSize),
	}
}

// InputPos returns the number of compressed bytes consumed from the
// current substream so far (used by container readers to check for
// trailing garbage after an end-of-payload marker).
func (d *Decoder) InputPos() int { return d.rc.Pos() }

// Window exposes the dictionary so callers (the LZMA2 chunk driver)
// can seed it directly for uncompressed chunks or read back decoded
// history.
func (d *Decoder) Window() *Window { return d.w }

// SetProperties installs a new (lc, lp, pb) triple and resets every
// probability table, as required whenever the bitstream carries a
// fresh properties byte (spec §4.4).
func (d *Decoder) SetProperties(props Properties) {
	d.t.setProperties(props)
}

// ApplyReset performs the dictionary/state/probability reset named by
// kind, the shared primitive behind both LZMA1's own reset entry
// points and every LZMA2 chunk-header reset level.
func (d *Decoder) ApplyReset(kind lzma.ResetKind) {
	if kind == lzma.ResetFull || kind == lzma.ResetDictOnly {
		d.w.Reset()
	}
	d.t.applyReset(kind)
}

// ResetStateAndReps resets the 12-state machine and the four rep
// distances, leaving probability tables and the dictionary untouched.
// This is the semantics LZMA2's "state reset" control byte needs
// (spec §4.4): broader than LZMA1's own ResetStateOnly primitive,
// which by design leaves the rep registers alone (spec §4.3).
func (d *Decoder) ResetStateAndReps() {
	d.t.resetState()
	d.t.resetReps()
}

// StartSubstream arms the range decoder for a new compressed byte
// range: Reset re-arms Range/Code/the five-byte init counter, SetInput
// attaches the bytes, and Init drains the mandatory five-byte prelude.
// Call this once per LZMA1 substream (once per LZMA2 LZMA chunk, or
// once for an entire LZMA_Alone/raw-LZMA1 stream).
func (d *Decoder) StartSubstream(compressed []byte) {
	d.rc.Reset()
	d.rc.SetInput(compressed)
	d.rc.Init()
}

// Decode decodes symbols until either unpackSize bytes have been
// produced (when unpackSize != lzma.UnknownSize and allowEOPM is
// false) or an end-of-payload marker is decoded. It returns the
// decoded bytes.
//
// How unpackSize is used depends on allowEOPM:
//
//   - false (the LZMA2 chunk contract): unpackSize, when known, bounds
//     every match/rep copy (spec §4.3 step 4): a decoded length that
//     would overrun it is clamped instead of being copied in full, so a
//     malformed length can never overrun the chunk boundary. No EOPM is
//     permitted at all, and decoding stops the instant unpackSize bytes
//     are produced. The range decoder's residual code must then be zero
//     (spec §4.3/§4.4's termination law) or the chunk is
//     ErrCorruptStream.
//   - true (the LZMA_Alone/lzip contract): matches are copied in full
//     and decoding always continues until the stream's own EOPM is
//     reached, even past unpackSize, so a payload whose real data
//     exceeds the declared size reaches an EOPM with produced !=
//     unpackSize, which is reported as ErrSizeMismatch rather than
//     silently accepted with the surplus discarded (spec §8 scenario 4).
func (d *Decoder) Decode(unpackSize uint64, allowEOPM bool) ([]byte, error) {
	var out []byte
	if unpackSize != lzma.UnknownSize {
		out = make([]byte, 0, unpackSize)
	}

	stopAtSize := unpackSize != lzma.UnknownSize && !allowEOPM

	var produced uint64
	for !stopAtSize || produced < unpackSize {
		var remaining uint64 = lzma.UnknownSize
		if stopAtSize {
			remaining = unpackSize - produced
		}

		n, eopm, err := d.decodeSymbol(&out, remaining)
		if err != nil {
			return nil, err
		}
		if eopm {
			if !allowEOPM {
				return nil, lzma.NewError(lzma.ErrCorruptStream, "unexpected end-of-payload marker")
			}
			if unpackSize != lzma.UnknownSize && produced != unpackSize {
				return nil, lzma.NewError(lzma.ErrSizeMismatch,
					"end-of-payload marker after %d bytes, want %d", produced, unpackSize)
			}
			return out, nil
		}
		produced += uint64(n)
		if d.rc.Truncated() {
			return nil, lzma.NewError(lzma.ErrTruncatedStream, "input exhausted mid-symbol")
		}
	}

	// Only the stopAtSize (known size, no EOPM) path reaches here.
	if produced != unpackSize {
		return nil, lzma.NewError(lzma.ErrSizeMismatch,
			"produced %d bytes, want %d", produced, unpackSize)
	}
	if d.rc.Code() != 0 {
		return nil, lzma.NewError(lzma.ErrCorruptStream,
			"range decoder did not terminate cleanly: residual code %#08x", d.rc.Code())
	}

	return out, nil
}

// decodeSymbol decodes one literal or match/rep event, appending any
// produced bytes to *out. n is the number of bytes produced (0 for an
// EOPM). eopm reports whether the symbol was the reserved
// end-of-payload marker, in which case n is always 0 and nothing is
// appended. remaining bounds how many bytes a match/rep may legally
// produce (lzma.UnknownSize when the caller has no such bound); a
// decoded length exceeding it is clamped rather than copied in full,
// so neither the output nor the dictionary window ever overrun a
// known chunk/substream boundary.
func (d *Decoder) decodeSymbol(out *[]byte, remaining uint64) (n int, eopm bool, err error) {
	t := d.t
	posState := t.posState(d.w.LogicalPos())

	if d.rc.DecodeBit(&t.isMatch[t.state][posState]) == 0 {
		var prevByte byte
		if d.w.Full() > 0 {
			prevByte = d.w.ByteAt(0)
		}
		base := t.literalBase(d.w.LogicalPos(), prevByte)

		matched := !t.state.IsLiteralState()
		var matchByte byte
		if matched {
			if !d.w.IsDistanceValid(t.rep0) {
				return 0, false, lzma.NewError(lzma.ErrInvalidDistance,
					"rep0=%d not yet valid for matched literal", t.rep0)
			}
			matchByte = d.w.ByteAt(t.rep0)
		}

		b := decodeLiteral(d.rc, t.literal, base, matched, matchByte)
		d.w.PutByte(b)
		*out = append(*out, b)
		t.state = t.state.AfterLiteral()
		return 1, false, nil
	}

	var length uint32

	if d.rc.DecodeBit(&t.isRep[t.state]) == 0 {
		lenMinus2 := decodeLength(d.rc, &t.matchLen, posState)
		dist := decodeDistance(d.rc, &t.dist, lenMinus2)

		if dist == lzma.EOPMDistance {
			return 0, true, nil
		}

		t.rep3, t.rep2, t.rep1, t.rep0 = t.rep2, t.rep1, t.rep0, dist
		length = lenMinus2 + lzma.MatchLenMin
		t.state = t.state.AfterMatch()
	} else if d.rc.DecodeBit(&t.isRep0[t.state]) == 0 {
		if d.rc.DecodeBit(&t.isRep0Long[t.state][posState]) == 0 {
			t.state = t.state.AfterShortRep()
			length = 1
		} else {
			lenMinus2 := decodeLength(d.rc, &t.repLen, posState)
			length = lenMinus2 + lzma.MatchLenMin
			t.state = t.state.AfterLongRep()
		}
	} else {
		var dist uint32
		switch {
		case d.rc.DecodeBit(&t.isRep1[t.state]) == 0:
			dist = t.rep1
			t.rep1 = t.rep0
		case d.rc.DecodeBit(&t.isRep2[t.state]) == 0:
			dist = t.rep2
			t.rep2 = t.rep1
			t.rep1 = t.rep0
		default:
			dist = t.rep3
			t.rep3 = t.rep2
			t.rep2 = t.rep1
			t.rep1 = t.rep0
		}
		t.rep0 = dist

		lenMinus2 := decodeLength(d.rc, &t.repLen, posState)
		length = lenMinus2 + lzma.MatchLenMin
		t.state = t.state.AfterLongRep()
	}

	if !d.w.IsDistanceValid(t.rep0) {
		return 0, false, lzma.NewError(lzma.ErrInvalidDistance, "rep0=%d not yet valid", t.rep0)
	}

	if remaining != lzma.UnknownSize && uint64(length) > remaining {
		length = uint32(remaining)
	}

	*out = d.w.CopyMatchOut(t.rep0, length, *out)
	return int(length), false, nil
}

// DecodeInto decodes exactly like Decode but streams the result to w
// instead of returning it, for callers that would rather not hold the
// whole substream's output in memory at once.
func (d *Decoder) DecodeInto(w io.Writer, unpackSize uint64, allowEOPM bool) error {
	b, err := d.Decode(unpackSize, allowEOPM)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
