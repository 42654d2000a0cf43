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
	"math/bits"

	"github.com/gocompress/lzma/rangecoder"
)

// numAlignBits is the width of the distance coder's low-order reverse
// tree, shared by every slot >= startPosModelSlot (spec §4.2).
const numAlignBits = 4

// startPosModelSlot is the first slot whose footer is decoded with a
// reverse bit-tree instead of being returned directly.
const startPosModelSlot = 4

// endPosModelSlot is the first slot whose footer is wide enough to
// need direct-coded high bits plus the shared align tree for its low
// 4 bits.
const endPosModelSlot = 14

// lengthState clamps a match length to the 4 buckets the distance
// slot coder is conditioned on (spec §4.2: ls = min(len-2, 3)).
func lengthState(lenMinus2 uint32) uint32 {
	if lenMinus2 > 3 {
		return 3
	}
	return lenMinus2
}

// distSlot returns the 6-bit slot naming which of the distance
// coder's ranges dist (a 0-based distance) falls into: dist itself
// for dist < 4, otherwise a slot derived from the position of dist's
// highest set bit and the value of the bit just below it.
func distSlot(dist uint32) uint32 {
	if dist < 4 {
		return dist
	}
	n := uint32(bits.Len32(dist)) - 1
	return (n << 1) | ((dist >> (n - 1)) & 1)
}

// decodeDistance decodes a 0-based match distance, given the already
// -decoded match length (lenMinus2 = len-2).
func decodeDistance(rc *rangecoder.Decoder, dc *distCoder, lenMinus2 uint32) uint32 {
	ls := lengthState(lenMinus2)
	slot := decodeBitTree(rc, dc.slot[ls][:], 6)

	if slot < startPosModelSlot {
		return slot
	}

	footer := (slot >> 1) - 1
	base := (2 | (slot & 1)) << footer

	if slot < endPosModelSlot {
		offset := int(base) - int(slot) - 1
		return base + decodeBitTreeReverse(rc, dc.special[:], offset, uint(footer))
	}

	hi := rc.DecodeDirectBitsWithBase(uint(footer-numAlignBits), 2|(slot&1))
	return (hi << numAlignBits) | decodeBitTreeReverse(rc, dc.align[:], 0, numAlignBits)
}

// encodeDistance is decodeDistance's encode-side mirror.
func encodeDistance(rc *rangecoder.Encoder, dc *distCoder, lenMinus2, dist uint32) {
	ls := lengthState(lenMinus2)
	slot := distSlot(dist)
	encodeBitTree(rc, dc.slot[ls][:], 6, slot)

	if slot < startPosModelSlot {
		return
	}

	footer := (slot >> 1) - 1
	base := (2 | (slot & 1)) << footer

	if slot < endPosModelSlot {
		offset := int(base) - int(slot) - 1
		encodeBitTreeReverse(rc, dc.special[:], offset, uint(footer), dist-base)
		return
	}

	hi := (dist - base) >> numAlignBits
	rc.EncodeDirectBits(hi, uint(footer-numAlignBits))
	encodeBitTreeReverse(rc, dc.align[:], 0, numAlignBits, dist&((1<<numAlignBits)-1))
}
