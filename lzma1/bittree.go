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

import "github.com/gocompress/lzma/rangecoder"

// decodeBitTree decodes a numBits-wide symbol MSB-first, walking a
// binary tree of probabilities laid out breadth-first starting at
// index 1 (index 0 is never addressed). Used by the length coder's
// low/mid/high trees and the distance slot coder.
func decodeBitTree(rc *rangecoder.Decoder, probs []rangecoder.Prob, numBits uint) uint32 {
	m := uint32(1)
	for i := uint(0); i < numBits; i++ {
		m = (m << 1) | rc.DecodeBit(&probs[m])
	}
	return m - (1 << numBits)
}

// encodeBitTree is decodeBitTree's encode-side mirror.
func encodeBitTree(rc *rangecoder.Encoder, probs []rangecoder.Prob, numBits uint, symbol uint32) {
	m := uint32(1)
	for i := int(numBits) - 1; i >= 0; i-- {
		bit := (symbol >> uint(i)) & 1
		rc.EncodeBit(&probs[m], bit)
		m = (m << 1) | bit
	}
}

// decodeBitTreeReverse decodes a numBits-wide symbol LSB-first into
// probs[offset+1 ..]; offset may be negative (as happens for the
// smallest distance slots) as long as offset+m never goes negative at
// an actual access, which holds by construction (spec §4.2 distance
// special-slot layout).
func decodeBitTreeReverse(rc *rangecoder.Decoder, probs []rangecoder.Prob, offset int, numBits uint) uint32 {
	m := uint32(1)
	var symbol uint32

	for i := uint(0); i < numBits; i++ {
		bit := rc.DecodeBit(&probs[offset+int(m)])
		m = (m << 1) | bit
		symbol |= bit << i
	}

	return symbol
}

// encodeBitTreeReverse is decodeBitTreeReverse's encode-side mirror.
func encodeBitTreeReverse(rc *rangecoder.Encoder, probs []rangecoder.Prob, offset int, numBits uint, symbol uint32) {
	m := uint32(1)

	for i := uint(0); i < numBits; i++ {
		bit := (symbol >> i) & 1
		rc.EncodeBit(&probs[offset+int(m)], bit)
		m = (m << 1) | bit
	}
}
