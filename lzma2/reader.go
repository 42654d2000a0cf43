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

// Package lzma2 implements the LZMA2 chunk protocol (spec §4.4): a
// sequence of independently framed chunks, each either a raw
// (uncompressed) byte run or an LZMA1 substream, with a control byte
// naming the chunk's kind and how much of the shared codec state
// carries over from the previous chunk.
package lzma2

import (
	"encoding/binary"
	"io"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/lzma1"
)

// control byte layout (spec §4.4):
//
//	0x00            end of stream
//	0x01            uncompressed chunk, dictionary reset
//	0x02            uncompressed chunk, no dictionary reset
//	0x80-0xFF       LZMA chunk; bits 5-6 name the reset level,
//	                bits 0-4 are the top 5 bits of (uncompressed size - 1)
const (
	ctrlEndOfStream        = 0x00
	ctrlUncompressedReset  = 0x01
	ctrlUncompressedNoRst  = 0x02
	ctrlLZMAChunkMarker    = 0x80
	resetLevelMask         = 0x3
	uncompSizeHighBitsMask = 0x1F
)

// Reader decodes an LZMA2 chunk stream read from an underlying
// io.Reader into the plain bytes it represents.
type Reader struct {
	r    io.Reader
	dec  *lzma1.Decoder
	pend []byte
	err  error
}

// NewReader returns a Reader that decodes chunks from r using a
// dictionary of the given size. The properties carried by the first
// LZMA chunk are supplied by the stream itself (every LZMA2 stream's
// first LZMA chunk must use reset level >= 2); DefaultProperties is
// used only as the placeholder before that first chunk arrives.
func NewReader(r io.Reader, dictSize uint32) *Reader {
	return &Reader{
		r:   r,
		dec: lzma1.NewDecoder(lzma1.DefaultProperties, dictSize),
	}
}

// Read implements io.Reader.
func (z *Reader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}

	for len(z.pend) == 0 {
		done, err := z.readChunk()
		if err != nil {
			z.err = err
			return 0, err
		}
		if done {
			z.err = io.EOF
			return 0, io.EOF
		}
	}

	n := copy(p, z.pend)
	z.pend = z.pend[n:]
	return n, nil
}

func readFull(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, lzma.WrapError(lzma.ErrTruncatedStream, err, "reading %d bytes", n)
		}
		return nil, err
	}
	return buf, nil
}

// readChunk reads and processes exactly one chunk, appending any
// produced bytes to z.pend. done reports the end-of-stream control byte.
func (z *Reader) readChunk() (done bool, err error) {
	ctrl, err := readFull(z.r, 1)
	if err != nil {
		return false, err
	}
	c := ctrl[0]

	switch {
	case c == ctrlEndOfStream:
		return true, nil

	case c == ctrlUncompressedReset || c == ctrlUncompressedNoRst:
		return false, z.readUncompressedChunk(c == ctrlUncompressedReset)

	case c&ctrlLZMAChunkMarker != 0:
		return false, z.readLZMAChunk(c)

	default:
		return false, lzma.NewError(lzma.ErrInvalidControlByte, "unrecognized control byte %#02x", c)
	}
}

func (z *Reader) readUncompressedChunk(dictReset bool) error {
	sizeBuf, err := readFull(z.r, 2)
	if err != nil {
		return err
	}
	size := int(binary.BigEndian.Uint16(sizeBuf)) + 1

	data, err := readFull(z.r, size)
	if err != nil {
		return err
	}

	if dictReset {
		z.dec.ApplyReset(lzma.ResetDictOnly)
	}
	z.dec.Window().PutBytes(data)
	z.pend = append(z.pend, data...)
	return nil
}

func (z *Reader) readLZMAChunk(ctrl byte) error {
	resetLevel := int((ctrl >> 5) & resetLevelMask)
	uncompSizeHigh := uint32(ctrl&uncompSizeHighBitsMask) << 16

	hdr, err := readFull(z.r, 4)
	if err != nil {
		return err
	}
	uncompSize := (uncompSizeHigh | uint32(binary.BigEndian.Uint16(hdr[0:2]))) + 1
	compSize := uint32(binary.BigEndian.Uint16(hdr[2:4])) + 1

	if uncompSize > lzma.LZMA2ChunkMax {
		return lzma.NewError(lzma.ErrCorruptStream,
			"LZMA chunk uncompressed size %d exceeds maximum %d", uncompSize, lzma.LZMA2ChunkMax)
	}

	if resetLevel >= 2 {
		propByte, err := readFull(z.r, 1)
		if err != nil {
			return err
		}
		props, err := lzma1.UnpackProperties(propByte[0])
		if err != nil {
			return err
		}
		z.dec.SetProperties(props)
	}

	switch resetLevel {
	case 0:
		// no reset
	case 1:
		z.dec.ResetStateAndReps()
	case 2:
		z.dec.ResetStateAndReps()
	case 3:
		z.dec.ApplyReset(lzma.ResetFull)
	}

	compressed, err := readFull(z.r, int(compSize))
	if err != nil {
		return err
	}

	z.dec.StartSubstream(compressed)
	out, err := z.dec.Decode(uint64(uncompSize), false)
	if err != nil {
		return err
	}
	if len(out) != int(uncompSize) {
		return lzma.NewError(lzma.ErrSizeMismatch,
			"LZMA chunk produced %d bytes, header declared %d", len(out), uncompSize)
	}
	z.pend = append(z.pend, out...)
	return nil
}
