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
	"encoding/binary"
	"hash/crc32"
	"io"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/lzma1"
	"github.com/gocompress/lzma/matchfinder"
)

// lzip member framing (spec §4.6):
//
//	header (6 bytes): magic "LZIP", version byte, dict-size byte
//	payload: a single raw LZMA1 substream, lc=3/lp=0/pb=2 fixed
//	trailer: CRC32 (4) + uncompressed size (8) + [version 1 only] member size (8)
var lzipMagic = [4]byte{'L', 'Z', 'I', 'P'}

const (
	lzipVersion0 = 0
	lzipVersion1 = 1

	lzipHeaderSize    = 6
	lzipTrailerSizeV0 = 4 + 8      // crc32 + data size
	lzipTrailerSizeV1 = 4 + 8 + 8  // crc32 + data size + member size
)

// lzipProperties is the fixed (lc, lp, pb) every lzip member uses.
var lzipProperties = lzma1.DefaultProperties

// MemberHeader describes one decoded lzip member.
type MemberHeader struct {
	Version  byte
	DictSize uint32
}

// decodeDictSizeByte turns an lzip dictionary-size byte into the
// dictionary size it names: 2^b - f*2^(b-4), with the base-2 logarithm
// b in bits 0-4 and the fractional subtractor f in bits 5-7 (spec §4.6).
func decodeDictSizeByte(b byte) (uint32, error) {
	base := uint(b & 0x1F)
	frac := uint32(b>>5) & 0x7

	if base < 12 || base > 29 {
		return 0, lzma.NewError(lzma.ErrInvalidDictSize, "lzip dict-size exponent %d out of range [12,29]", base)
	}

	size := uint32(1) << base
	size -= frac * (uint32(1) << (base - 4))
	return size, nil
}

// encodeDictSizeByte is the inverse of decodeDictSizeByte: it picks the
// smallest 2^b - f*2^(b-4) form that is >= dictSize, matching the
// reference encoder's own rounding-up behavior.
func encodeDictSizeByte(dictSize uint32) byte {
	for base := uint(12); base <= 29; base++ {
		full := uint32(1) << base
		if full < dictSize {
			continue
		}
		step := full >> 4
		for frac := 7; frac >= 0; frac-- {
			size := full - uint32(frac)*step
			if size >= dictSize && size >= lzma.MinDictSize {
				return byte(base) | byte(frac<<5)
			}
		}
	}
	return byte(29)
}

// LzipReader decodes a concatenation of one or more lzip members, in
// the style of archive/tar.Reader: Next advances to the following
// member, and Read serves the current member's bytes, returning io.EOF
// at that member's end. If Next has not been called yet, the first Read
// locates the first member itself.
type LzipReader struct {
	r       io.Reader
	pending []byte // bytes already read from r but not yet consumed by a member
	header  MemberHeader
	data    []byte
	pos     int
	started bool
}

// NewLzipReader returns a reader positioned before the first member of r.
func NewLzipReader(r io.Reader) *LzipReader {
	return &LzipReader{r: r}
}

// Next advances to the next member, decoding and CRC-verifying it in
// full before returning. It returns io.EOF once the underlying stream
// is exhausted between members. On any verification failure (bad
// magic, unsupported version, CRC or size mismatch) no payload bytes
// from the failed member are made available via Read. Concatenated
// members are supported (spec §4.6): locating one member's payload
// never requires reading past it, so bytes belonging to a following
// member are pushed back into z.pending for the next Next call.
func (z *LzipReader) Next() (MemberHeader, error) {
	hdrBuf, err := z.readExact(lzipHeaderSize)
	if err != nil {
		if err == io.EOF {
			return MemberHeader{}, io.EOF
		}
		return MemberHeader{}, err
	}

	if [4]byte{hdrBuf[0], hdrBuf[1], hdrBuf[2], hdrBuf[3]} != lzipMagic {
		return MemberHeader{}, lzma.NewError(lzma.ErrUnsupportedFormat, "bad lzip magic %q", hdrBuf[0:4])
	}

	version := hdrBuf[4]
	if version != lzipVersion0 && version != lzipVersion1 {
		return MemberHeader{}, lzma.NewError(lzma.ErrUnsupportedFormat, "unsupported lzip version %d", version)
	}

	dictSize, err := decodeDictSizeByte(hdrBuf[5])
	if err != nil {
		return MemberHeader{}, err
	}

	// The payload's own end-of-stream marker (spec §4.6), not the
	// trailer, is what tells the decoder where the member's compressed
	// data ends; the trailer's fields exist only for verification. That
	// lets one member be decoded without first having to find where the
	// next one begins, which is what makes concatenated members possible.
	out, compressedLen, err := z.decodeMember(dictSize)
	if err != nil {
		return MemberHeader{}, err
	}

	trailerSize := lzipTrailerSizeV0
	if version == lzipVersion1 {
		trailerSize = lzipTrailerSizeV1
	}
	trailer, err := z.readExact(trailerSize)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return MemberHeader{}, lzma.WrapError(lzma.ErrTruncatedStream, err, "reading lzip member trailer")
	}

	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantDataSize := binary.LittleEndian.Uint64(trailer[4:12])
	if wantDataSize != uint64(len(out)) {
		return MemberHeader{}, lzma.NewError(lzma.ErrSizeMismatch,
			"trailer data size %d does not match decoded %d", wantDataSize, len(out))
	}

	if version == lzipVersion1 {
		wantMemberSize := binary.LittleEndian.Uint64(trailer[12:20])
		memberSize := uint64(lzipHeaderSize + compressedLen + trailerSize)
		if wantMemberSize != memberSize {
			return MemberHeader{}, lzma.NewError(lzma.ErrChecksumMismatch,
				"member size %d does not match trailer-declared %d", memberSize, wantMemberSize)
		}
	}

	gotCRC := crc32.ChecksumIEEE(out)
	if gotCRC != wantCRC {
		// Never expose payload bytes from a member that failed
		// verification: leave z.data untouched.
		return MemberHeader{}, lzma.NewError(lzma.ErrChecksumMismatch,
			"CRC32 mismatch: got %#08x, want %#08x", gotCRC, wantCRC)
	}

	z.header = MemberHeader{Version: version, DictSize: dictSize}
	z.data = out
	z.pos = 0
	z.started = true
	return z.header, nil
}

// readExact returns exactly n bytes, draining z.pending first and
// falling back to z.r for the remainder. It returns io.EOF only when
// not a single byte (pending or fresh) was available; a short read
// past that point is reported as ErrTruncatedStream, since it means a
// member was cut off mid-header/mid-trailer rather than ending cleanly
// between members.
func (z *LzipReader) readExact(n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	if take := len(z.pending); take > 0 {
		if take > n {
			take = n
		}
		buf = append(buf, z.pending[:take]...)
		z.pending = z.pending[take:]
	}
	if len(buf) == n {
		return buf, nil
	}

	rest := make([]byte, n-len(buf))
	got, rerr := readFillOrEOF(z.r, rest)
	buf = append(buf, rest[:got]...)
	if len(buf) == n {
		return buf, nil
	}
	if len(buf) == 0 && rerr == io.EOF {
		return nil, io.EOF
	}
	return nil, lzma.WrapError(lzma.ErrTruncatedStream, rerr, "short read: got %d of %d bytes", len(buf), n)
}

// decodeMember decodes one member's LZMA1 payload, reading only as
// many bytes as the payload actually needs. Since the compressed
// length isn't known up front, it grows an input buffer in doubling
// increments and retries the decode until it either succeeds (the
// end-of-stream marker was found) or the underlying reader is
// exhausted without one ever appearing. Any bytes read beyond what the
// successful decode consumed are pushed back into z.pending so the
// trailer (and, for a concatenated stream, the next member's header)
// are read from exactly where the payload left off.
func (z *LzipReader) decodeMember(dictSize uint32) (out []byte, compressedLen int, err error) {
	const initialChunk = 4096

	buf := make([]byte, 0, initialChunk)
	chunkSize := initialChunk
	eof := false

	for {
		if !eof {
			grown, gotEOF, rerr := z.growBuffer(chunkSize)
			if rerr != nil {
				return nil, 0, lzma.WrapError(lzma.ErrTruncatedStream, rerr, "reading lzip member body")
			}
			buf = append(buf, grown...)
			eof = gotEOF
		}

		dec := lzma1.NewDecoder(lzipProperties, dictSize)
		dec.StartSubstream(buf)
		decoded, derr := dec.Decode(lzma.UnknownSize, true)
		if derr == nil {
			consumed := dec.InputPos()
			z.pending = append(z.pending, buf[consumed:]...)
			return decoded, consumed, nil
		}

		lerr, ok := derr.(*lzma.Error)
		if !ok || lerr.Kind != lzma.ErrTruncatedStream {
			return nil, 0, derr
		}
		if eof {
			return nil, 0, lzma.NewError(lzma.ErrTruncatedStream,
				"lzip member payload truncated before its end-of-stream marker")
		}

		chunkSize *= 2
	}
}

// growBuffer drains z.pending first, then reads up to n more bytes
// from z.r, reporting whether the underlying reader is now exhausted.
func (z *LzipReader) growBuffer(n int) (grown []byte, eof bool, err error) {
	out := make([]byte, 0, n)
	if take := len(z.pending); take > 0 {
		if take > n {
			take = n
		}
		out = append(out, z.pending[:take]...)
		z.pending = z.pending[take:]
		n -= take
	}
	if n == 0 {
		return out, false, nil
	}

	chunk := make([]byte, n)
	got, rerr := readFillOrEOF(z.r, chunk)
	out = append(out, chunk[:got]...)
	if rerr != nil && rerr != io.EOF {
		return out, false, rerr
	}
	return out, rerr == io.EOF, nil
}

// readFillOrEOF reads from r until buf is full or r returns an error
// (including io.EOF), returning the number of bytes actually placed
// into buf and that terminating error.
func readFillOrEOF(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Header returns the header of the member most recently returned by Next.
func (z *LzipReader) Header() MemberHeader { return z.header }

// Read serves the bytes of the current member, as located by the most
// recent successful Next call.
func (z *LzipReader) Read(p []byte) (int, error) {
	if !z.started {
		if _, err := z.Next(); err != nil {
			return 0, err
		}
	}
	if z.pos >= len(z.data) {
		return 0, io.EOF
	}
	n := copy(p, z.data[z.pos:])
	z.pos += n
	return n, nil
}

// LzipWriter encodes a single lzip member. As with LzmaAloneWriter,
// encoding happens in full on Close rather than incrementally.
type LzipWriter struct {
	w        io.Writer
	dictSize uint32
	buf      []byte
	closed   bool
}

// NewLzipWriter returns a writer that encodes everything written to it
// as one version-1 lzip member with the given dictionary size.
func NewLzipWriter(w io.Writer, dictSize uint32) *LzipWriter {
	return &LzipWriter{w: w, dictSize: dictSize}
}

func (z *LzipWriter) Write(p []byte) (int, error) {
	z.buf = append(z.buf, p...)
	return len(p), nil
}

// Close encodes the buffered input as a complete lzip member (header,
// LZMA1 payload, CRC32+size+member-size trailer) and flushes it to the
// underlying writer.
func (z *LzipWriter) Close() error {
	if z.closed {
		return nil
	}
	z.closed = true

	header := append(append([]byte{}, lzipMagic[:]...), lzipVersion1, encodeDictSizeByte(z.dictSize))
	if _, err := z.w.Write(header); err != nil {
		return err
	}

	enc := lzma1.NewEncoder(lzipProperties)
	enc.StartSubstream()
	enc.ApplyReset(lzma.ResetFull)

	mf := matchfinder.NewFinder(z.buf, z.dictSize, aloneNiceLen, aloneMaxChainLen)
	// Every lzip payload ends with the end-of-stream marker: a reader
	// must be able to find the payload's end (and thus the following
	// trailer) without first knowing the trailer's own size fields,
	// which is what lets members be concatenated and read in sequence.
	enc.Encode(mf, z.buf, 0, len(z.buf), true)
	enc.Flush()
	compressed := enc.Bytes()

	if _, err := z.w.Write(compressed); err != nil {
		return err
	}

	var trailer [lzipTrailerSizeV1]byte
	binary.LittleEndian.PutUint32(trailer[0:4], crc32.ChecksumIEEE(z.buf))
	binary.LittleEndian.PutUint64(trailer[4:12], uint64(len(z.buf)))
	memberSize := uint64(len(header) + len(compressed) + lzipTrailerSizeV1)
	binary.LittleEndian.PutUint64(trailer[12:20], memberSize)

	_, err := z.w.Write(trailer[:])
	return err
}
