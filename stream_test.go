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

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	params := DefaultEncoderParams()
	data := []byte("round trip through the public Writer/Reader facade, through the facade")

	var compressed bytes.Buffer
	w := NewWriter(&compressed, params)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(&compressed, DecoderParams{DictSize: params.DictSize})
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("got %q, want %q", out, data)
	}
}

func TestWriterReaderRoundTripRandom(t *testing.T) {
	params := DefaultEncoderParams()
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 40000)
	rng.Read(data)

	var compressed bytes.Buffer
	w := NewWriter(&compressed, params)
	w.Write(data)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(&compressed, DecoderParams{DictSize: params.DictSize})
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("random round trip mismatch")
	}
}

func TestWriterReaderSDKDistanceEncodingRoundTrip(t *testing.T) {
	params := DefaultEncoderParams()
	params.SDKDistanceEncoding = true
	data := bytes.Repeat([]byte("ab"), 5000)

	var compressed bytes.Buffer
	w := NewWriter(&compressed, params)
	w.Write(data)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(&compressed, DecoderParams{DictSize: params.DictSize})
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("SDK-distance-encoding round trip mismatch")
	}
}
