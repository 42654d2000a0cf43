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

// Package lzmastate implements the 12-value LZMA state machine that
// both the encoder and the decoder advance, in lockstep, after every
// emitted symbol. It is kept standalone rather than folded into lzma1
// because it is pure, tiny, and shared by exactly the same contract on
// both sides of the codec - the same reasoning the teacher applies to
// its small single-purpose helpers like entropy.AdaptiveProbMap.
package lzmastate

// NumStates is the size of the state alphabet: values 0..11.
const NumStates = 12

// State is the current LZMA symbol-history state. States 0-6 mean the
// previous symbol was a literal.
type State uint8

// IsLiteralState reports whether the previous symbol was a literal,
// which controls whether the next literal uses the matched-byte coding
// path (spec §4.2).
func (s State) IsLiteralState() bool {
	return s < 7
}

// AfterLiteral advances the state after emitting or decoding a literal.
func (s State) AfterLiteral() State {
	switch {
	case s < 4:
		return 0
	case s < 10:
		return s - 3
	default:
		return s - 6
	}
}

// AfterMatch advances the state after emitting or decoding a normal
// (non-rep) match.
func (s State) AfterMatch() State {
	if s < 7 {
		return 7
	}
	return 10
}

// AfterLongRep advances the state after emitting or decoding a rep
// match of length > 1.
func (s State) AfterLongRep() State {
	if s < 7 {
		return 8
	}
	return 11
}

// AfterShortRep advances the state after emitting or decoding a
// length-1 rep0 match.
func (s State) AfterShortRep() State {
	if s < 7 {
		return 9
	}
	return 11
}
