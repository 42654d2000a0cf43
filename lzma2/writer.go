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

package lzma2

import (
	"encoding/binary"
	"io"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/lzma1"
	"github.com/gocompress/lzma/matchfinder"
)

// writerChunkSize is the uncompressed byte count Writer asks for per
// LZMA chunk. It is well under lzma.LZMA2ChunkMax, leaving enough
// headroom that even an incompressible (near-random) chunk's
// range-coded output - whose overhead over the raw entropy is a small
// fraction of a bit per symbol - stays under the 16-bit compressed-size
// field's limit.
const writerChunkSize = 60000

// niceLen and maxChainLen are the match finder's speed/ratio knobs;
// modest values keep this an intentionally fast, non-optimal parse
// (spec §1 non-goals).
const (
	niceLen     = 32
	maxChainLen = 64
)

// Writer accumulates written bytes and, on Close, emits them as an
// LZMA2 chunk stream. It is not a streaming encoder: the whole input
// is buffered so the match finder can see the complete history, in
// keeping with this module's fast/greedy rather than bounded-memory
// design target.
type Writer struct {
	w        io.Writer
	props    lzma1.Properties
	dictSize uint32
	buf      []byte
	closed   bool
	sdkDist  bool
}

// NewWriter returns a Writer that LZMA2-encodes everything written to
// it, using props and a dictionary of dictSize bytes, flushing the
// encoded chunk stream to w on Close.
func NewWriter(w io.Writer, props lzma1.Properties, dictSize uint32) *Writer {
	return &Writer{w: w, props: props, dictSize: dictSize}
}

// SetSDKDistanceEncoding selects the legacy LZMA SDK small-distance
// match heuristic for every chunk this Writer encodes; see
// lzma1.Encoder.SetSDKDistanceEncoding.
func (z *Writer) SetSDKDistanceEncoding(sdk bool) {
	z.sdkDist = sdk
}

// Write implements io.Writer; it never itself emits compressed output.
func (z *Writer) Write(p []byte) (int, error) {
	z.buf = append(z.buf, p...)
	return len(p), nil
}

// Close encodes every buffered byte into LZMA2 chunks, writes the
// end-of-stream control byte, and flushes to the underlying writer.
// It is not safe to call Write after Close.
func (z *Writer) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true

	if err := z.encodeChunks(); err != nil {
		return err
	}
	_, err := z.w.Write([]byte{ctrlEndOfStream})
	return err
}

func (z *Writer) encodeChunks() error {
	data := z.buf
	if len(data) == 0 {
		return nil
	}

	mf := matchfinder.NewFinder(data, z.dictSize, niceLen, maxChainLen)
	enc := lzma1.NewEncoder(z.props)
	enc.SetSDKDistanceEncoding(z.sdkDist)

	for pos, first := 0, true; pos < len(data); first = false {
		end := pos + writerChunkSize
		if end > len(data) {
			end = len(data)
		}

		enc.StartSubstream()
		if first {
			enc.ApplyReset(lzma.ResetFull)
		}
		enc.Encode(mf, data, pos, end, false)
		enc.Flush()
		compressed := enc.Bytes()

		if len(compressed) > lzma.LZMA2CompressedChunkMax {
			return lzma.NewError(lzma.ErrCorruptStream,
				"compressed chunk size %d exceeds the LZMA2 16-bit size field", len(compressed))
		}

		resetLevel := 0
		if first {
			resetLevel = 3
		}
		if err := writeLZMAChunkHeader(z.w, resetLevel, end-pos, len(compressed), z.props); err != nil {
			return err
		}
		if _, err := z.w.Write(compressed); err != nil {
			return err
		}

		pos = end
	}

	return nil
}

func writeLZMAChunkHeader(w io.Writer, resetLevel, uncompSize, compSize int, props lzma1.Properties) error {
	uncompMinus1 := uint32(uncompSize - 1)
	ctrl := byte(ctrlLZMAChunkMarker) | byte(resetLevel<<5) | byte((uncompMinus1>>16)&uncompSizeHighBitsMask)

	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], uint16(uncompMinus1&0xFFFF))
	binary.BigEndian.PutUint16(hdr[2:4], uint16(compSize-1))

	if _, err := w.Write([]byte{ctrl}); err != nil {
		return err
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	if resetLevel >= 2 {
		if _, err := w.Write([]byte{props.Pack()}); err != nil {
			return err
		}
	}
	return nil
}
