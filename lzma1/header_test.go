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
	"testing"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Properties:       Properties{LC: 3, LP: 0, PB: 2},
		DictSize:         1 << 20,
		UncompressedSize: 12345,
	}

	buf := h.MarshalBinary()
	if len(buf) != lzma.HeaderSize {
		t.Fatalf("MarshalBinary len = %d, want %d", len(buf), lzma.HeaderSize)
	}

	got, err := UnmarshalHeader(buf)
	if err != nil {
		t.Fatalf("UnmarshalHeader: %v", err)
	}
	if got != h {
		t.Fatalf("UnmarshalHeader = %+v, want %+v", got, h)
	}
}

func TestHeaderUnknownSize(t *testing.T) {
	h := Header{Properties: DefaultProperties, DictSize: lzma.MinDictSize, UncompressedSize: lzma.UnknownSize}
	got, err := UnmarshalHeader(h.MarshalBinary())
	if err != nil {
		t.Fatalf("UnmarshalHeader: %v", err)
	}
	if got.UncompressedSize != lzma.UnknownSize {
		t.Fatalf("UncompressedSize = %#x, want UnknownSize", got.UncompressedSize)
	}
}

func TestHeaderTruncated(t *testing.T) {
	if _, err := UnmarshalHeader(make([]byte, lzma.HeaderSize-1)); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestHeaderInvalidProperties(t *testing.T) {
	buf := make([]byte, lzma.HeaderSize)
	buf[0] = 255 // exceeds MaxPropByte
	if _, err := UnmarshalHeader(buf); err == nil {
		t.Fatal("expected error for invalid property byte")
	}
}

func TestEffectiveDictSize(t *testing.T) {
	h := Header{DictSize: 100}
	if got := h.EffectiveDictSize(); got != lzma.MinDictSize {
		t.Fatalf("EffectiveDictSize = %d, want %d", got, lzma.MinDictSize)
	}
}
