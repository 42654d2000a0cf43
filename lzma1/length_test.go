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
	"math/rand"
	"testing"

	"github.com/gocompress/lzma/rangecoder"
)

func TestLengthCoderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var values []uint32
	var posStates []uint32
	for i := 0; i < 2000; i++ {
		values = append(values, uint32(rng.Intn(272)))
		posStates = append(posStates, uint32(rng.Intn(4)))
	}

	enc := rangecoder.NewEncoder()
	lc := &lengthCoder{}
	lc.reset()
	for i, v := range values {
		encodeLength(enc, lc, posStates[i], v)
	}
	enc.Flush()

	dec := rangecoder.NewDecoder()
	dec.SetInput(enc.Bytes())
	dec.Init()
	lc2 := &lengthCoder{}
	lc2.reset()
	for i, want := range values {
		got := decodeLength(dec, lc2, posStates[i])
		if got != want {
			t.Fatalf("symbol %d: decodeLength = %d, want %d", i, got, want)
		}
	}
}

func TestLengthCoderBoundaries(t *testing.T) {
	for _, v := range []uint32{0, 7, 8, 15, 16, 271} {
		enc := rangecoder.NewEncoder()
		lc := &lengthCoder{}
		lc.reset()
		encodeLength(enc, lc, 0, v)
		enc.Flush()

		dec := rangecoder.NewDecoder()
		dec.SetInput(enc.Bytes())
		dec.Init()
		lc2 := &lengthCoder{}
		lc2.reset()
		if got := decodeLength(dec, lc2, 0); got != v {
			t.Errorf("value %d: got %d", v, got)
		}
	}
}
