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

package lzmacore

const (
	// MinDictSize is the smallest legal dictionary size: 4 KiB.
	MinDictSize = 1 << 12
	// MaxDictSize is the largest legal dictionary size: 4 GiB - 1.
	MaxDictSize = 1<<32 - 1

	// MinLC, MaxLC bound the number of literal context bits.
	MinLC, MaxLC = 0, 8
	// MinLP, MaxLP bound the number of literal position bits.
	MinLP, MaxLP = 0, 4
	// MinPB, MaxPB bound the number of position bits.
	MinPB, MaxPB = 0, 4

	// MaxPropByte is the largest legal packed (pb, lp, lc) property byte.
	MaxPropByte = 224

	// MatchLenMin and MatchLenMax bound a decoded/encoded match length.
	MatchLenMin = 2
	MatchLenMax = 273

	// RepeatMax is the padding the reference dictionary layout keeps on
	// both ends of its window so that rep matches and copies never need
	// bounds checks mid-copy. lzma1.Window is a plain circular buffer
	// and does not use it.
	RepeatMax = 288

	// InitPos is the reference layout's starting write-cursor offset,
	// chosen so that pos - InitPos is the cumulative output byte count
	// since the last dictionary reset. lzma1.Window does not use it; its
	// LogicalPos counts from zero.
	InitPos = 576

	// EOPMDistance is the reserved distance value signaling the
	// end-of-payload marker in an LZMA1 stream.
	EOPMDistance = 0xFFFFFFFF

	// NumStates is the size of the state-machine alphabet (0..11).
	NumStates = 12

	// PosStatesMax is the largest number of position states (2^MaxPB).
	PosStatesMax = 1 << MaxPB

	// HeaderSize is the size in bytes of the LZMA_Alone / raw LZMA1
	// header: 1 property byte + 4-byte dict size + 8-byte uncompressed size.
	HeaderSize = 13

	// UnknownSize is the sentinel uncompressed-size value meaning "not
	// declared up front"; the stream must be terminated with an EOPM.
	UnknownSize = ^uint64(0)

	// LZMA2ChunkMax bounds the uncompressed size of a single LZMA2 chunk.
	LZMA2ChunkMax = 1 << 21 // 2 MiB

	// LZMA2CompressedChunkMax bounds the compressed size of a single
	// LZMA2 LZMA chunk (the 2-byte compressed-size-minus-1 field).
	LZMA2CompressedChunkMax = 1 << 16
)

// ResetKind selects how much of a codec instance's state is cleared.
// It models the LZMA2 reset levels (spec §4.4) but is also used
// directly by the LZMA1 decoder/encoder's exposed reset primitives
// (spec §4.3), since LZMA2's reset levels are just named subsets of
// the same primitive resets.
type ResetKind int

const (
	// ResetNone performs no reset at all.
	ResetNone ResetKind = iota
	// ResetStateOnly resets the 12-state machine only; dictionary, rep
	// registers and probability tables are preserved.
	ResetStateOnly
	// ResetStateAndProbs resets state machine and probability tables,
	// but preserves the dictionary and rep registers.
	ResetStateAndProbs
	// ResetFull resets properties, dictionary, state, rep registers and
	// probability tables: a brand new codec instance in all but name.
	ResetFull
	// ResetDictOnly clears only the dictionary window (new container
	// member); state, rep registers and probability tables untouched.
	ResetDictOnly
)
