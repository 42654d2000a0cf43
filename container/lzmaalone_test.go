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

	"github.com/gocompress/lzma/lzma1"
)

func aloneRoundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	const dictSize = 1 << 16

	var buf bytes.Buffer
	w := NewLzmaAloneWriter(&buf, lzma1.DefaultProperties, dictSize)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewLzmaAloneReader(&buf, true)
	if err != nil {
		t.Fatalf("NewLzmaAloneReader: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return out
}

func TestLzmaAloneRoundTripSmall(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")
	got := aloneRoundTrip(t, data)
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestLzmaAloneRoundTripEmpty(t *testing.T) {
	got := aloneRoundTrip(t, nil)
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestLzmaAloneRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]byte, 20000)
	rng.Read(data)
	got := aloneRoundTrip(t, data)
	if !bytes.Equal(got, data) {
		t.Fatal("random round trip mismatch")
	}
}

func TestLzmaAloneHeaderRoundTrip(t *testing.T) {
	data := []byte("header check")
	var buf bytes.Buffer
	w := NewLzmaAloneWriter(&buf, lzma1.DefaultProperties, 1<<20)
	w.Write(data)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewLzmaAloneReader(&buf, false)
	if err != nil {
		t.Fatalf("NewLzmaAloneReader: %v", err)
	}
	if r.Header().UncompressedSize != uint64(len(data)) {
		t.Fatalf("header size = %d, want %d", r.Header().UncompressedSize, len(data))
	}
	if r.Header().DictSize != 1<<20 {
		t.Fatalf("header dict size = %d, want %d", r.Header().DictSize, 1<<20)
	}
}

func TestValidatePickyDictSize(t *testing.T) {
	ok := []uint32{1 << 16, 1 << 20, (1 << 16) + (1 << 15), 1 << 12}
	for _, v := range ok {
		if err := validatePickyDictSize(v); err != nil {
			t.Errorf("validatePickyDictSize(%d): unexpected error %v", v, err)
		}
	}

	bad := []uint32{0, 12345, (1 << 16) + 7}
	for _, v := range bad {
		if err := validatePickyDictSize(v); err == nil {
			t.Errorf("validatePickyDictSize(%d): expected error, got nil", v)
		}
	}
}

func TestLzmaAloneRejectsTruncatedHeader(t *testing.T) {
	_, err := NewLzmaAloneReader(bytes.NewReader([]byte{1, 2, 3}), false)
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
}
