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

package rangecoder

// Decoder is a binary arithmetic decoder reading from an in-memory
// slice. It operates on whatever slice SetInput was last given; the
// LZMA2 chunk driver swaps a fresh slice in at every chunk boundary
// rather than handing the decoder an io.Reader, since chunk bodies are
// always fully buffered before decoding starts.
type Decoder struct {
	rng           uint32
	code          uint32
	initRemaining int
	in            []byte
	pos           int
	truncated     bool
}

// NewDecoder returns a range decoder with no input attached yet; call
// SetInput then Init before decoding.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset re-arms Range/Code/the five-byte init counter, as happens
// whenever a new LZMA1 substream begins (spec: "the decoder... code and
// init_bytes_remaining=5 are re-armed whenever a new LZMA1 substream
// begins inside a multi-chunk LZMA2 stream").
func (d *Decoder) Reset() {
	d.rng = 0xFFFFFFFF
	d.code = 0
	d.initRemaining = 5
	d.truncated = false
}

// SetInput attaches a new byte slice to decode from, resetting the
// read cursor to its start. It does not by itself re-arm Code/Range;
// call Reset (and then Init) when starting a fresh substream, or call
// SetInput alone when merely continuing a substream that was split
// across buffers.
func (d *Decoder) SetInput(b []byte) {
	d.in = b
	d.pos = 0
}

// Init performs the decoder's mandatory five-byte prelude. It must be
// called once, after Reset and SetInput, before the first DecodeBit or
// DecodeDirectBits call for a substream. It is implemented as five
// calls to the same normalize() primitive used during ordinary
// decoding, consuming the "lazy" init_bytes_remaining counter in one
// burst so that by the time real decoding begins, Code holds a fully
// formed 32-bit window.
func (d *Decoder) Init() {
	for d.initRemaining > 0 {
		d.normalize()
	}
}

// Pos returns the number of bytes consumed from the current input slice.
func (d *Decoder) Pos() int { return d.pos }

// Truncated reports whether a read past the end of the current input
// slice has occurred since the last Reset. Callers should check this
// after a decode that reached a declared stream boundary; a stream that
// ran out of bytes mid-symbol is corrupt, not merely finished.
func (d *Decoder) Truncated() bool { return d.truncated }

// Code exposes the raw residual code value; after a well-formed LZMA1
// chunk this must equal zero (spec: range-coder termination law).
func (d *Decoder) Code() uint32 { return d.code }

func (d *Decoder) readByte() byte {
	if d.pos >= len(d.in) {
		d.truncated = true
		return 0
	}
	b := d.in[d.pos]
	d.pos++
	return b
}

// normalize is the decoder-side twin of Encoder.normalize: while still
// draining the initial five-byte fill it unconditionally shifts in one
// byte per call; afterward it behaves as ordinary renormalization,
// refilling Code's low byte whenever Range has fallen below the
// renormalization threshold.
func (d *Decoder) normalize() {
	if d.initRemaining > 0 {
		d.code = (d.code << 8) | uint32(d.readByte())
		d.initRemaining--
		return
	}

	if d.rng < topValue {
		d.code = (d.code << 8) | uint32(d.readByte())
		d.rng <<= 8
	}
}

// DecodeBit decodes one bit, updating and consulting p.
func (d *Decoder) DecodeBit(p *Prob) uint32 {
	d.normalize()
	bound := (d.rng >> NumBitModelTotalBits) * uint32(*p)

	var bit uint32
	if d.code < bound {
		d.rng = bound
		bit = 0
	} else {
		d.code -= bound
		d.rng -= bound
		bit = 1
	}
	p.update(bit)
	return bit
}

// DecodeDirectBits decodes n bits with no probability model (uniform
// distribution), MSB first.
func (d *Decoder) DecodeDirectBits(n uint) uint32 {
	var result uint32

	for n > 0 {
		n--
		d.normalize()
		d.rng >>= 1

		var bit uint32
		if d.code >= d.rng {
			d.code -= d.rng
			bit = 1
		}
		result = (result << 1) | bit
	}

	return result
}

// DecodeDirectBitsWithBase implements the reference rc_direct variant
// used for distance slots 14+: it builds up result starting from base
// by repeatedly doubling and adding 1, keeping the +1 only when the
// current code actually reaches the wider interval.
func (d *Decoder) DecodeDirectBitsWithBase(n uint, base uint32) uint32 {
	result := base

	for i := uint(0); i < n; i++ {
		result = (result << 1) + 1
		d.normalize()
		d.rng >>= 1

		if d.code >= d.rng {
			d.code -= d.rng
		} else {
			result--
		}
	}

	return result
}
