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

// decodeLength decodes len-2 (spec §4.2): 0..7 via the low tree, 8..15
// via the mid tree, 16..271 via the high tree, the choice of which
// tree gated by choice/choice2.
func decodeLength(rc *rangecoder.Decoder, lc *lengthCoder, posState uint32) uint32 {
	if rc.DecodeBit(&lc.choice) == 0 {
		return decodeBitTree(rc, lc.low[posState][:], 3)
	}
	if rc.DecodeBit(&lc.choice2) == 0 {
		return 8 + decodeBitTree(rc, lc.mid[posState][:], 3)
	}
	return 16 + decodeBitTree(rc, lc.high[:], 8)
}

// encodeLength is decodeLength's encode-side mirror. lenMinus2 must be
// in [0, 271].
func encodeLength(rc *rangecoder.Encoder, lc *lengthCoder, posState uint32, lenMinus2 uint32) {
	if lenMinus2 < 8 {
		rc.EncodeBit(&lc.choice, 0)
		encodeBitTree(rc, lc.low[posState][:], 3, lenMinus2)
		return
	}
	rc.EncodeBit(&lc.choice, 1)

	if lenMinus2 < 16 {
		rc.EncodeBit(&lc.choice2, 0)
		encodeBitTree(rc, lc.mid[posState][:], 3, lenMinus2-8)
		return
	}
	rc.EncodeBit(&lc.choice2, 1)
	encodeBitTree(rc, lc.high[:], 8, lenMinus2-16)
}
