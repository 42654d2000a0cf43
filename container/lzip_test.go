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

package container

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func lzipRoundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	const dictSize = 1 << 16

	var buf bytes.Buffer
	w := NewLzipWriter(&buf, dictSize)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewLzipReader(&buf)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return out
}

func TestLzipRoundTripSmall(t *testing.T) {
	data := []byte("lzip member contents, repeated lzip member contents")
	got := lzipRoundTrip(t, data)
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestLzipRoundTripEmpty(t *testing.T) {
	got := lzipRoundTrip(t, nil)
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestLzipRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	data := make([]byte, 20000)
	rng.Read(data)
	got := lzipRoundTrip(t, data)
	if !bytes.Equal(got, data) {
		t.Fatal("random round trip mismatch")
	}
}

func TestLzipHeaderFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewLzipWriter(&buf, 1<<20)
	w.Write([]byte("hi"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewLzipReader(&buf)
	hdr, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if hdr.Version != lzipVersion1 {
		t.Fatalf("version = %d, want %d", hdr.Version, lzipVersion1)
	}
	if hdr.DictSize < 1<<20 {
		t.Fatalf("dict size %d smaller than requested %d", hdr.DictSize, 1<<20)
	}
}

func TestLzipRejectsBadMagic(t *testing.T) {
	r := NewLzipReader(bytes.NewReader([]byte("NOTLZIPHEADERBYTES")))
	_, err := r.Next()
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestLzipDetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	w := NewLzipWriter(&buf, 1<<16)
	w.Write([]byte("some data to corrupt"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	corrupted := buf.Bytes()
	// Flip a byte in the middle of the compressed payload.
	mid := len(corrupted) / 2
	corrupted[mid] ^= 0xFF

	r := NewLzipReader(bytes.NewReader(corrupted))
	_, err := io.ReadAll(r)
	if err == nil {
		t.Fatal("expected error for corrupted lzip member")
	}
}

func TestDictSizeByteRoundTrip(t *testing.T) {
	sizes := []uint32{1 << 12, 1 << 16, 1 << 20, 1<<23 + 1<<21, 1 << 29}
	for _, want := range sizes {
		b := encodeDictSizeByte(want)
		got, err := decodeDictSizeByte(b)
		if err != nil {
			t.Fatalf("decodeDictSizeByte: %v", err)
		}
		if got < want {
			t.Errorf("decoded dict size %d smaller than requested %d", got, want)
		}
	}
}
