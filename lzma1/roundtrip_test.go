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
	"bytes"
	"math/rand"
	"testing"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/matchfinder"
)

// compress runs the fast-mode encoder over the whole of data and
// returns the LZMA1 substream bytes, always terminated with an EOPM so
// the matching decode call can use lzma.UnknownSize.
func compress(t *testing.T, props Properties, dictSize uint32, data []byte) []byte {
	t.Helper()
	enc := NewEncoder(props)
	enc.StartSubstream()
	mf := matchfinder.NewFinder(data, dictSize, 32, 64)
	enc.Encode(mf, data, 0, len(data), true)
	enc.Flush()
	return enc.Bytes()
}

func decompress(t *testing.T, props Properties, dictSize uint32, compressed []byte, unpackSize uint64) []byte {
	t.Helper()
	dec := NewDecoder(props, dictSize)
	dec.StartSubstream(compressed)
	out, err := dec.Decode(unpackSize, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return out
}

func TestRoundTripRepetitive(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)
	props := DefaultProperties
	const dictSize = 1 << 16

	compressed := compress(t, props, dictSize, data)
	got := decompress(t, props, dictSize, compressed, lzma.UnknownSize)

	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(data))
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 5000)
	rng.Read(data)

	props := DefaultProperties
	const dictSize = 1 << 16

	compressed := compress(t, props, dictSize, data)
	got := decompress(t, props, dictSize, compressed, lzma.UnknownSize)

	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch on random data")
	}
}

func TestRoundTripEmpty(t *testing.T) {
	props := DefaultProperties
	const dictSize = lzma.MinDictSize

	compressed := compress(t, props, dictSize, nil)
	got := decompress(t, props, dictSize, compressed, lzma.UnknownSize)

	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(got))
	}
}

func TestRoundTripKnownSize(t *testing.T) {
	data := []byte("abababababababababab")
	props := DefaultProperties
	const dictSize = 1 << 16

	enc := NewEncoder(props)
	enc.StartSubstream()
	mf := matchfinder.NewFinder(data, dictSize, 32, 64)
	enc.Encode(mf, data, 0, len(data), false)
	enc.Flush()

	dec := NewDecoder(props, dictSize)
	dec.StartSubstream(enc.Bytes())
	got, err := dec.Decode(uint64(len(data)), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, data)
	}
}

func TestRoundTripVariousProperties(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 500)
	const dictSize = 1 << 16

	for _, props := range []Properties{
		{LC: 0, LP: 0, PB: 0},
		{LC: 4, LP: 0, PB: 2},
		{LC: 0, LP: 2, PB: 0},
		{LC: 2, LP: 2, PB: 0},
	} {
		compressed := compress(t, props, dictSize, data)
		got := decompress(t, props, dictSize, compressed, lzma.UnknownSize)
		if !bytes.Equal(got, data) {
			t.Fatalf("round trip mismatch for %s", props)
		}
	}
}
