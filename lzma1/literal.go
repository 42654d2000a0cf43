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

// decodeLiteral decodes one literal byte. matched selects the
// matched-byte coding path (spec §4.2: previous symbol was a match and
// the dictionary is non-empty); matchByte is the dictionary byte at
// pos-rep0-1, consulted only when matched is true. Each bit is decoded
// MSB-first; once a decoded bit diverges from the corresponding match
// bit, the remaining bits fall back to the unmatched tree, since the
// matched byte can no longer help predict them.
func decodeLiteral(rc *rangecoder.Decoder, probs []rangecoder.Prob, base int, matched bool, matchByte byte) byte {
	symbol := uint32(1)

	if matched {
		mb := uint32(matchByte)

		for symbol < 0x100 {
			matchBit := (mb >> 7) & 1
			mb <<= 1
			bit := rc.DecodeBit(&probs[base+int((1+matchBit)<<8)+int(symbol)])
			symbol = (symbol << 1) | bit

			if matchBit != bit {
				for symbol < 0x100 {
					symbol = (symbol << 1) | rc.DecodeBit(&probs[base+int(symbol)])
				}
				break
			}
		}
	} else {
		for symbol < 0x100 {
			symbol = (symbol << 1) | rc.DecodeBit(&probs[base+int(symbol)])
		}
	}

	return byte(symbol)
}

// encodeLiteral encodes value using the same matched/unmatched rule as
// decodeLiteral.
func encodeLiteral(rc *rangecoder.Encoder, probs []rangecoder.Prob, base int, matched bool, matchByte, value byte) {
	symbol := uint32(1)

	if matched {
		mb := uint32(matchByte)

		for i := 7; i >= 0; i-- {
			matchBit := (mb >> 7) & 1
			mb <<= 1
			bit := (uint32(value) >> uint(i)) & 1
			rc.EncodeBit(&probs[base+int((1+matchBit)<<8)+int(symbol)], bit)
			symbol = (symbol << 1) | bit

			if matchBit != bit {
				for i--; i >= 0; i-- {
					bit = (uint32(value) >> uint(i)) & 1
					rc.EncodeBit(&probs[base+int(symbol)], bit)
					symbol = (symbol << 1) | bit
				}
				break
			}
		}
	} else {
		for i := 7; i >= 0; i-- {
			bit := (uint32(value) >> uint(i)) & 1
			rc.EncodeBit(&probs[base+int(symbol)], bit)
			symbol = (symbol << 1) | bit
		}
	}
}
