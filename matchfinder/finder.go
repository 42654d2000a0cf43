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

// Package matchfinder implements the LZ77 match search (spec §2, L0):
// a hash-chain finder over 3-byte prefixes, bounded by a configurable
// chain-search depth and a "nice length" early-out, matching the
// fast/greedy encoding this module targets rather than an optimal
// parse (spec §1 non-goals).
package matchfinder

import lzma "github.com/gocompress/lzma/internal/lzmacore"

const (
	hashBits = 16
	hashSize = 1 << hashBits
	minBytes = 3
)

// Finder searches data (the full history-plus-lookahead buffer the
// encoder is compressing) for the longest recent repeat at its current
// position, one call at a time, advancing in lockstep with the caller.
type Finder struct {
	data        []byte
	dictSize    uint32
	niceLen     int
	maxChainLen int
	pos         int

	head  [hashSize]int32
	chain []int32
}

// NewFinder allocates a finder over data. niceLen short-circuits the
// chain walk once a match at least that long is found; maxChainLen
// bounds how many candidates are examined per position. Both trade
// compression ratio for speed, matching this codec's fast-mode design.
func NewFinder(data []byte, dictSize uint32, niceLen, maxChainLen int) *Finder {
	f := &Finder{
		data:        data,
		dictSize:    dictSize,
		niceLen:     niceLen,
		maxChainLen: maxChainLen,
		chain:       make([]int32, len(data)),
	}
	for i := range f.head {
		f.head[i] = -1
	}
	return f
}

func hash3(b0, b1, b2 byte) uint32 {
	h := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
	h *= 2654435761
	return h >> (32 - hashBits)
}

// insert adds the finder's current position to the hash chain for the
// 3 bytes starting there, without searching.
func (f *Finder) insert(pos int) {
	if pos+minBytes > len(f.data) {
		f.chain[pos] = -1
		return
	}
	h := hash3(f.data[pos], f.data[pos+1], f.data[pos+2])
	f.chain[pos] = f.head[h]
	f.head[h] = int32(pos)
}

func matchLen(data []byte, a, b, limit int) int {
	n := 0
	max := limit - b
	if max > lzma.MatchLenMax {
		max = lzma.MatchLenMax
	}
	for n < max && data[a+n] == data[b+n] {
		n++
	}
	return n
}

// FindMatch implements lzma1.MatchFinder. It does not separately ban
// matches before the global position reaches 2 (spec §4.5); at pos 0
// nothing has been inserted into the hash table yet, so the lookup
// finds no candidate, and at pos 1 a distance-0 match is already
// legal (Window.Full() == 1), so the two encoder positions this would
// otherwise affect behave identically either way. See DESIGN.md.
func (f *Finder) FindMatch() (dist uint32, length uint32, ok bool) {
	pos := f.pos
	data := f.data

	var bestLen int
	var bestDist uint32

	if pos+minBytes <= len(data) {
		h := hash3(data[pos], data[pos+1], data[pos+2])
		cand := f.head[h]

		for chainLen := 0; cand >= 0 && chainLen < f.maxChainLen; chainLen++ {
			candPos := int(cand)
			offset := pos - candPos
			if uint32(offset) > f.dictSize {
				break
			}

			if l := matchLen(data, candPos, pos, len(data)); l > bestLen {
				bestLen = l
				bestDist = uint32(offset) - 1
				if bestLen >= f.niceLen {
					break
				}
			}

			cand = f.chain[candPos]
		}
	}

	f.insert(pos)
	f.pos++

	if bestLen < lzma.MatchLenMin {
		return 0, 0, false
	}
	return bestDist, uint32(bestLen), true
}

// Skip implements lzma1.MatchFinder: it advances n positions, still
// inserting each into the hash chain, without running a search. Used
// once a match has been chosen and its bytes consumed.
func (f *Finder) Skip(n int) {
	for i := 0; i < n; i++ {
		if f.pos < len(f.data) {
			f.insert(f.pos)
		}
		f.pos++
	}
}

// Pos returns the finder's current search position.
func (f *Finder) Pos() int { return f.pos }
