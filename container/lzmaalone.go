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

// Package container implements the envelope-level parsers this module
// supports: the legacy LZMA_Alone (.lzma) header/trailer and the lzip
// (.lz) member framing, both specified only as thin wrappers around
// the LZMA1 substream in lzma1 (spec §4.6). Neither format is parsed
// beyond what is needed to locate and validate that substream; full
// archive-container semantics are out of scope (spec §1 non-goals).
package container

import (
	"io"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/lzma1"
	"github.com/gocompress/lzma/matchfinder"
)

// aloneNiceLen and aloneMaxChainLen are the match finder's speed/ratio
// knobs for LZMA_Alone encoding; modest values keep this an
// intentionally fast, non-optimal parse (spec §1 non-goals), matching
// the same constants lzma2.Writer uses for LZMA2 chunks.
const (
	aloneNiceLen     = 32
	aloneMaxChainLen = 64
)

// pickyMaxSize is the uncompressed-size ceiling enforced when Picky is
// set: 2^38, taken from the reference LZMA SDK's own "sanity" limit
// (spec §4.6, §8 scenario list) rather than from any protocol
// requirement — a file exceeding it is still a structurally valid
// LZMA_Alone stream, just one the reference tooling itself refuses.
const pickyMaxSize = 1 << 38

// LzmaAloneReader decodes a complete LZMA_Alone (.lzma) stream. Unlike
// the LZMA2 container, LZMA_Alone is a single uninterrupted LZMA1
// substream, so decoding happens in full as soon as the reader is
// constructed; Read merely serves the already-decoded bytes.
type LzmaAloneReader struct {
	header lzma1.Header
	data   []byte
	pos    int
}

// NewLzmaAloneReader reads and validates the 13-byte header from r,
// then decodes the remainder of r as the LZMA1 payload it describes.
// When picky is true, the header's dictionary size and declared
// uncompressed size are additionally checked against the reference
// implementation's own stricter acceptance rules.
func NewLzmaAloneReader(r io.Reader, picky bool) (*LzmaAloneReader, error) {
	hdrBuf := make([]byte, lzma.HeaderSize)
	if _, err := io.ReadFull(r, hdrBuf); err != nil {
		return nil, lzma.WrapError(lzma.ErrTruncatedStream, err, "reading LZMA_Alone header")
	}

	hdr, err := lzma1.UnmarshalHeader(hdrBuf)
	if err != nil {
		return nil, err
	}

	if picky {
		if err := validatePickyDictSize(hdr.DictSize); err != nil {
			return nil, err
		}
		if hdr.UncompressedSize != lzma.UnknownSize && hdr.UncompressedSize >= pickyMaxSize {
			return nil, lzma.NewError(lzma.ErrUnsupportedFormat,
				"uncompressed size %d exceeds the picky-mode limit %d", hdr.UncompressedSize, pickyMaxSize)
		}
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, lzma.WrapError(lzma.ErrTruncatedStream, err, "reading LZMA_Alone payload")
	}

	dec := lzma1.NewDecoder(hdr.Properties, hdr.EffectiveDictSize())
	dec.StartSubstream(compressed)

	// allow_eopm is unconditional; validate_size is implied by
	// Decoder.Decode itself comparing produced bytes against
	// UncompressedSize whenever it is declared (spec §4.6).
	out, err := dec.Decode(hdr.UncompressedSize, true)
	if err != nil {
		return nil, err
	}

	if hdr.UncompressedSize == lzma.UnknownSize && dec.InputPos() != len(compressed) {
		return nil, lzma.NewError(lzma.ErrCorruptStream,
			"%d bytes after the end-of-payload marker", len(compressed)-dec.InputPos())
	}

	return &LzmaAloneReader{header: hdr, data: out}, nil
}

// Header returns the parsed LZMA_Alone header.
func (r *LzmaAloneReader) Header() lzma1.Header { return r.header }

// Read implements io.Reader over the fully decoded payload.
func (r *LzmaAloneReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// validatePickyDictSize accepts only dictionary sizes of the form 2^n
// or 2^n + 2^(n-1), the only values the reference encoder ever writes
// (spec §4.6, §8).
func validatePickyDictSize(dictSize uint32) error {
	if dictSize == 0 {
		return lzma.NewError(lzma.ErrInvalidDictSize, "dictionary size is zero")
	}

	isPow2 := dictSize&(dictSize-1) == 0
	if isPow2 {
		return nil
	}

	// 2^n + 2^(n-1) == 3 * 2^(n-1): divide out the factor of 3 and
	// check that what remains is a power of two.
	if dictSize%3 == 0 {
		rest := dictSize / 3
		if rest&(rest-1) == 0 {
			return nil
		}
	}

	return lzma.NewError(lzma.ErrInvalidDictSize,
		"picky mode requires dict size of the form 2^n or 2^n+2^(n-1), got %d", dictSize)
}

// LzmaAloneWriter encodes a single LZMA_Alone stream. Like the reader,
// it is not incremental: bytes passed to Write are buffered, and the
// header plus the full LZMA1 payload are written to the underlying
// writer on Close.
type LzmaAloneWriter struct {
	w        io.Writer
	props    lzma1.Properties
	dictSize uint32
	buf      []byte
	closed   bool
	sdkDist  bool
}

// SetSDKDistanceEncoding selects the legacy LZMA SDK small-distance
// match heuristic; see lzma1.Encoder.SetSDKDistanceEncoding.
func (z *LzmaAloneWriter) SetSDKDistanceEncoding(sdk bool) {
	z.sdkDist = sdk
}

// NewLzmaAloneWriter returns a writer that encodes everything written
// to it as a single LZMA_Alone stream with the given properties and
// dictionary size, terminated with an end-of-payload marker (so the
// header's declared size can legally be lzma.UnknownSize; here it is
// always written as the true length, which is known once Close runs).
func NewLzmaAloneWriter(w io.Writer, props lzma1.Properties, dictSize uint32) *LzmaAloneWriter {
	return &LzmaAloneWriter{w: w, props: props, dictSize: dictSize}
}

func (z *LzmaAloneWriter) Write(p []byte) (int, error) {
	z.buf = append(z.buf, p...)
	return len(p), nil
}

// Close writes the header followed by the full LZMA1-encoded payload
// and flushes to the underlying writer. Not safe to call Write after.
func (z *LzmaAloneWriter) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true

	hdr := lzma1.Header{
		Properties:       z.props,
		DictSize:         z.dictSize,
		UncompressedSize: uint64(len(z.buf)),
	}
	if _, err := z.w.Write(hdr.MarshalBinary()); err != nil {
		return err
	}

	enc := lzma1.NewEncoder(z.props)
	enc.SetSDKDistanceEncoding(z.sdkDist)
	enc.StartSubstream()
	enc.ApplyReset(lzma.ResetFull)

	mf := matchfinder.NewFinder(z.buf, z.dictSize, aloneNiceLen, aloneMaxChainLen)
	enc.Encode(mf, z.buf, 0, len(z.buf), true)
	enc.Flush()

	_, err := z.w.Write(enc.Bytes())
	return err
}
