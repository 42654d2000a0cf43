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
	"encoding/binary"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
)

// Header is the 13-byte LZMA_Alone / raw-LZMA1 header: one packed
// property byte, a 4-byte little-endian dictionary size, and an
// 8-byte little-endian uncompressed size (lzma.UnknownSize meaning
// "not declared"; spec §5.1).
type Header struct {
	Properties      Properties
	DictSize        uint32
	UncompressedSize uint64
}

// MarshalBinary renders the header into its 13-byte wire form.
func (h Header) MarshalBinary() []byte {
	buf := make([]byte, lzma.HeaderSize)
	buf[0] = h.Properties.Pack()
	binary.LittleEndian.PutUint32(buf[1:5], h.DictSize)
	binary.LittleEndian.PutUint64(buf[5:13], h.UncompressedSize)
	return buf
}

// UnmarshalHeader parses a 13-byte LZMA_Alone/raw-LZMA1 header.
func UnmarshalHeader(buf []byte) (Header, error) {
	if len(buf) < lzma.HeaderSize {
		return Header{}, lzma.NewError(lzma.ErrTruncatedStream,
			"header needs %d bytes, got %d", lzma.HeaderSize, len(buf))
	}

	props, err := UnpackProperties(buf[0])
	if err != nil {
		return Header{}, err
	}

	dictSize := binary.LittleEndian.Uint32(buf[1:5])
	uncompressedSize := binary.LittleEndian.Uint64(buf[5:13])

	return Header{
		Properties:       props,
		DictSize:         dictSize,
		UncompressedSize: uncompressedSize,
	}, nil
}

// EffectiveDictSize clamps a header-declared dictionary size to the
// legal [MinDictSize, MaxDictSize] range, as real decoders do rather
// than rejecting undersized values outright (spec §5.1 note: a
// declared size below the minimum is raised, not an error).
func (h Header) EffectiveDictSize() uint32 {
	if h.DictSize < lzma.MinDictSize {
		return lzma.MinDictSize
	}
	return h.DictSize
}
