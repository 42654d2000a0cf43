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

package lzma

// EncoderParams configures Writer: the three (lc, lp, pb) properties,
// the dictionary size, and the match finder's speed/ratio knobs
// (spec §6). The container writers in package container take their
// settings as constructor arguments instead. A zero-value EncoderParams is
// not ready to use; call DefaultEncoderParams and override fields as
// needed.
type EncoderParams struct {
	LC, LP, PB uint32
	DictSize   uint32

	// NiceLen stops the match finder's search early once a candidate
	// this long is found; MaxChainLen bounds how many hash-chain
	// candidates it inspects per position. Both trade ratio for speed;
	// this module only ever does fast/greedy parsing (spec §1
	// non-goals), so neither knob enables an optimal parse. NewWriter
	// does not read either field: the LZMA2 writer always uses its own
	// fixed values (32 and 64).
	NiceLen     int
	MaxChainLen int

	// SDKDistanceEncoding selects the legacy LZMA SDK heuristic for
	// brand-new matches landing in distance slot 0-3 instead of XZ
	// Utils' more permissive one (spec §9). Defaults to false (XZ
	// Utils semantics). Affects encoding only; every decoder accepts
	// either stream unchanged.
	SDKDistanceEncoding bool
}

// DefaultEncoderParams returns the conventional LZMA default properties
// (lc=3, lp=0, pb=2), an 8 MiB dictionary, and modest match-finder
// limits suited to fast/greedy parsing.
func DefaultEncoderParams() EncoderParams {
	return EncoderParams{
		LC: 3, LP: 0, PB: 2,
		DictSize:    8 << 20,
		NiceLen:     32,
		MaxChainLen: 64,
	}
}

// DecoderParams configures Reader: the dictionary size the stream was
// encoded with. Unlike the encoder, LZMA1/LZMA2 decoding recovers
// (lc, lp, pb) from the stream itself (the LZMA_Alone header's
// property byte, or each LZMA2 LZMA chunk's own property byte), so
// DecoderParams carries no properties field.
type DecoderParams struct {
	DictSize uint32
}

// DefaultDecoderParams returns an 8 MiB dictionary, matching
// DefaultEncoderParams.
func DefaultDecoderParams() DecoderParams {
	return DecoderParams{DictSize: 8 << 20}
}
