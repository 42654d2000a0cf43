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
	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/rangecoder"
)

// MatchFinder is the LZ77 match search an Encoder consumes; package
// matchfinder's Finder implements it. The encoder drives the finder's
// position itself: every FindMatch call advances it by exactly one,
// and Skip advances it further once a multi-byte match has been
// chosen, so the finder's cursor always tracks the encoder's.
type MatchFinder interface {
	// FindMatch searches for the best match at the finder's current
	// position and advances the position by one. ok is false when no
	// match reaching lzma.MatchLenMin was found.
	FindMatch() (dist uint32, length uint32, ok bool)
	// Skip advances the finder's position by n positions, inserting
	// them into its search structure without returning a match.
	Skip(n int)
}

// Encoder is the fast-mode (greedy) LZMA1 encoder: at every position
// it compares the best rep-distance run against the match finder's
// best candidate and picks whichever is cheaper to encode, falling
// back to a short rep0 and finally to a literal. This is deliberately
// not an optimal parse (spec §1 non-goals: compression ratio is not a
// design target, fast/greedy parsing is acceptable).
type Encoder struct {
	rc     *rangecoder.Encoder
	t      *tables
	logPos uint64 // bytes emitted since the last dictionary reset

	// sdkDistanceEncoding selects the legacy LZMA SDK heuristic for
	// brand-new (non-rep) matches that land in distance slot 0-3: the
	// reference SDK encoder never emits one at the minimum match
	// length, since the four-bit rep-distance code path is cheaper for
	// any distance that small and a real rep register is likely to
	// reach it one byte later anyway. XZ Utils' fast mode has no such
	// restriction. This is purely an encoder-side parse choice — the
	// bitstream slot 0-3 distances decode identically either way — set
	// via SetSDKDistanceEncoding.
	sdkDistanceEncoding bool
}

// SetSDKDistanceEncoding selects between the legacy LZMA SDK and XZ
// Utils encoder heuristics for new matches whose distance falls in
// slot 0-3 (spec §9: "SDK mode ... affecting only the interpretation
// of distance slot 0-3 for encoding, and nothing else"). Default is
// false (XZ Utils semantics); decoding is unaffected by this flag.
func (e *Encoder) SetSDKDistanceEncoding(sdk bool) {
	e.sdkDistanceEncoding = sdk
}

// NewEncoder allocates an encoder for the given properties.
func NewEncoder(props Properties) *Encoder {
	return &Encoder{
		rc: rangecoder.NewEncoder(),
		t:  newTables(props),
	}
}

// SetProperties installs a new (lc, lp, pb) triple and resets every
// probability table.
func (e *Encoder) SetProperties(props Properties) {
	e.t.setProperties(props)
}

// ApplyReset performs the state/probability/register reset named by
// kind; a dictionary reset also rewinds the logical position counter
// that drives pos-state and literal-context masking.
func (e *Encoder) ApplyReset(kind lzma.ResetKind) {
	if kind == lzma.ResetFull || kind == lzma.ResetDictOnly {
		e.logPos = 0
	}
	e.t.applyReset(kind)
}

// ResetStateAndReps is Decoder.ResetStateAndReps's encode-side mirror.
func (e *Encoder) ResetStateAndReps() {
	e.t.resetState()
	e.t.resetReps()
}

// StartSubstream re-arms the range encoder for a new compressed byte
// range, discarding any previously buffered output.
func (e *Encoder) StartSubstream() {
	e.rc.Reset()
}

// Flush drains the range encoder's carry machinery; call once at the
// end of a substream, after the last Encode call.
func (e *Encoder) Flush() {
	e.rc.Flush()
}

// Bytes returns the compressed bytes written since the last StartSubstream.
func (e *Encoder) Bytes() []byte { return e.rc.Bytes() }

// matchLenAt returns how many bytes starting at data[pos] equal the
// bytes dist+1 positions earlier, capped at lzma.MatchLenMax and by
// the available lookahead to end.
func matchLenAt(data []byte, pos, end int, dist uint32) int {
	src := pos - int(dist) - 1
	if src < 0 {
		return 0
	}
	maxLen := end - pos
	if maxLen > lzma.MatchLenMax {
		maxLen = lzma.MatchLenMax
	}
	n := 0
	for n < maxLen && data[src+n] == data[pos+n] {
		n++
	}
	return n
}

// Encode greedily encodes data[pos:end], using data[:pos] as history,
// advancing mf in lockstep. writeEOPM appends the end-of-payload
// marker once encoding reaches end (set by the LZMA_Alone and lzip
// writers, whose readers decode up to that marker; LZMA2 chunks never
// set it, relying on the chunk's declared uncompressed size instead).
func (e *Encoder) Encode(mf MatchFinder, data []byte, pos, end int, writeEOPM bool) {
	t := e.t

	for pos < end {
		posState := t.posState(e.logPos)

		var repLens [4]int
		for i, d := range [4]uint32{t.rep0, t.rep1, t.rep2, t.rep3} {
			repLens[i] = matchLenAt(data, pos, end, d)
		}
		bestRepLen, bestRepIdx := 0, -1
		for i, l := range repLens {
			if l > bestRepLen {
				bestRepLen, bestRepIdx = l, i
			}
		}

		mfDist, mfLen, mfOK := mf.FindMatch()
		if mfOK && int(mfLen) > end-pos {
			// The finder searches the whole buffer; a match must not run
			// past end, or the finder's cursor would get ahead of pos.
			mfLen = uint32(end - pos)
		}

		if mfOK && e.sdkDistanceEncoding && mfLen == lzma.MatchLenMin && mfDist < startPosModelSlot {
			// SDK heuristic: never open a brand-new match at the
			// minimum length when its distance is cheap enough to be a
			// rep candidate instead; defer to the rep/literal cases
			// below exactly as if the match finder had found nothing
			// at this position.
			mfOK = false
		}

		switch {
		case bestRepLen >= lzma.MatchLenMin && (!mfOK || bestRepLen+1 >= int(mfLen)):
			e.encodeRep(posState, bestRepIdx, bestRepLen)
			if bestRepLen > 1 {
				mf.Skip(bestRepLen - 1)
			}
			pos += bestRepLen
			e.logPos += uint64(bestRepLen)

		case mfOK && int(mfLen) >= lzma.MatchLenMin:
			e.encodeMatch(posState, mfDist, int(mfLen))
			if int(mfLen) > 1 {
				mf.Skip(int(mfLen) - 1)
			}
			pos += int(mfLen)
			e.logPos += uint64(mfLen)

		case repLens[0] == 1:
			e.encodeRep(posState, 0, 1)
			pos++
			e.logPos++

		default:
			e.encodeLiteralAt(data, pos, posState)
			pos++
			e.logPos++
		}
	}

	if writeEOPM {
		e.encodeEOPM(t.posState(e.logPos))
	}
}

func (e *Encoder) encodeLiteralAt(data []byte, pos int, posState uint32) {
	t := e.t
	e.rc.EncodeBit(&t.isMatch[t.state][posState], 0)

	var prevByte byte
	if pos > 0 {
		prevByte = data[pos-1]
	}
	base := t.literalBase(e.logPos, prevByte)

	matched := !t.state.IsLiteralState()
	var matchByte byte
	if matched {
		if src := pos - int(t.rep0) - 1; src >= 0 {
			matchByte = data[src]
		} else {
			matched = false
		}
	}

	encodeLiteral(e.rc, t.literal, base, matched, matchByte, data[pos])
	t.state = t.state.AfterLiteral()
}

func (e *Encoder) encodeMatch(posState uint32, dist uint32, length int) {
	t := e.t
	e.rc.EncodeBit(&t.isMatch[t.state][posState], 1)
	e.rc.EncodeBit(&t.isRep[t.state], 0)

	lenMinus2 := uint32(length) - lzma.MatchLenMin
	encodeLength(e.rc, &t.matchLen, posState, lenMinus2)
	encodeDistance(e.rc, &t.dist, lenMinus2, dist)

	t.rep3, t.rep2, t.rep1, t.rep0 = t.rep2, t.rep1, t.rep0, dist
	t.state = t.state.AfterMatch()
}

// encodeRep encodes a rep-distance event: repIdx selects which of the
// four rep registers supplies the distance (rotating the others up),
// and length==1 with repIdx==0 is the short-rep special case.
func (e *Encoder) encodeRep(posState uint32, repIdx, length int) {
	t := e.t
	e.rc.EncodeBit(&t.isMatch[t.state][posState], 1)
	e.rc.EncodeBit(&t.isRep[t.state], 1)

	switch repIdx {
	case 0:
		e.rc.EncodeBit(&t.isRep0[t.state], 0)
		if length == 1 {
			e.rc.EncodeBit(&t.isRep0Long[t.state][posState], 0)
			t.state = t.state.AfterShortRep()
			return
		}
		e.rc.EncodeBit(&t.isRep0Long[t.state][posState], 1)
	case 1:
		e.rc.EncodeBit(&t.isRep0[t.state], 1)
		e.rc.EncodeBit(&t.isRep1[t.state], 0)
		t.rep1, t.rep0 = t.rep0, t.rep1
	case 2:
		e.rc.EncodeBit(&t.isRep0[t.state], 1)
		e.rc.EncodeBit(&t.isRep1[t.state], 1)
		e.rc.EncodeBit(&t.isRep2[t.state], 0)
		t.rep2, t.rep1, t.rep0 = t.rep1, t.rep0, t.rep2
	default:
		e.rc.EncodeBit(&t.isRep0[t.state], 1)
		e.rc.EncodeBit(&t.isRep1[t.state], 1)
		e.rc.EncodeBit(&t.isRep2[t.state], 1)
		t.rep3, t.rep2, t.rep1, t.rep0 = t.rep2, t.rep1, t.rep0, t.rep3
	}

	encodeLength(e.rc, &t.repLen, posState, uint32(length)-lzma.MatchLenMin)
	t.state = t.state.AfterLongRep()
}

// encodeEOPM encodes the end-of-payload marker: a normal match whose
// distance is the reserved all-ones value. The length field's value is
// never consulted by a decoder on this path, so the minimal length is
// used.
func (e *Encoder) encodeEOPM(posState uint32) {
	t := e.t
	e.rc.EncodeBit(&t.isMatch[t.state][posState], 1)
	e.rc.EncodeBit(&t.isRep[t.state], 0)
	encodeLength(e.rc, &t.matchLen, posState, 0)
	encodeDistance(e.rc, &t.dist, 0, lzma.EOPMDistance)
}
