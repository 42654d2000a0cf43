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
	"io"

	"github.com/gocompress/lzma/lzma1"
	"github.com/gocompress/lzma/lzma2"
)

// Writer is an io.WriteCloser that LZMA2-encodes everything written to
// it, additive sugar over lzma2.Writer's buffer/feed/finish contract so
// callers can io.Copy into a compressor the same way they would into
// gzip.Writer or flate.Writer. It is still a synchronous, single
// substream encoder: no worker pool, no parallel chunk encoding (spec
// §5 and the multi-threading non-goal).
type Writer struct {
	w *lzma2.Writer
}

// NewWriter returns a Writer that encodes to w using params. params is
// not validated: the (lc, lp, pb) triple and the dictionary size are
// passed to the LZMA2 encoder as given, and Write and Close report
// only errors from the underlying writer.
func NewWriter(w io.Writer, params EncoderParams) *Writer {
	props := lzma1.Properties{LC: params.LC, LP: params.LP, PB: params.PB}
	w2 := lzma2.NewWriter(w, props, params.DictSize)
	w2.SetSDKDistanceEncoding(params.SDKDistanceEncoding)
	return &Writer{w: w2}
}

// Write implements io.Writer.
func (z *Writer) Write(p []byte) (int, error) {
	return z.w.Write(p)
}

// Close flushes every buffered byte as LZMA2 chunks and writes the
// end-of-stream control byte. Not safe to call Write after Close.
func (z *Writer) Close() error {
	return z.w.Close()
}

// Reader is an io.Reader that decodes an LZMA2 chunk stream, additive
// sugar over lzma2.Reader for callers that would rather io.Copy than
// drive chunk decoding by hand.
type Reader struct {
	r *lzma2.Reader
}

// NewReader returns a Reader decoding r using the given dictionary size.
func NewReader(r io.Reader, params DecoderParams) *Reader {
	return &Reader{r: lzma2.NewReader(r, params.DictSize)}
}

// Read implements io.Reader.
func (z *Reader) Read(p []byte) (int, error) {
	return z.r.Read(p)
}
