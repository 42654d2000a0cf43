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

// Package lzma1 implements the LZMA1 stream codec: the 13-byte header,
// the literal/length/distance sub-coders built on top of
// package rangecoder, the sliding dictionary window, and the
// fast-mode (greedy) encoder and decoder that drive them.
package lzma1

import (
	"fmt"

	lzma "github.com/gocompress/lzma/internal/lzmacore"
)

// Properties is the (lc, lp, pb) triple controlling the literal and
// position-sensitive sub-coders.
type Properties struct {
	LC, LP, PB uint32
}

// DefaultProperties matches the conventional LZMA default (lc=3, lp=0,
// pb=2), also mandated by the lzip container.
var DefaultProperties = Properties{LC: 3, LP: 0, PB: 2}

// Pack encodes the triple into the single property byte used by the
// LZMA_Alone/raw-LZMA1 header and the LZMA2 properties byte.
func (p Properties) Pack() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

// UnpackProperties decodes a property byte into its (lc, lp, pb)
// triple and validates it against the legal ranges.
func UnpackProperties(b byte) (Properties, error) {
	if b > lzma.MaxPropByte {
		return Properties{}, lzma.NewError(lzma.ErrInvalidProperties,
			"property byte %d exceeds maximum %d", b, lzma.MaxPropByte)
	}

	v := uint32(b)
	lc := v % 9
	v /= 9
	lp := v % 5
	pb := v / 5

	p := Properties{LC: lc, LP: lp, PB: pb}
	if err := p.Validate(); err != nil {
		return Properties{}, err
	}
	return p, nil
}

// Validate checks the triple against the spec's legal ranges: each
// component bounded individually, and lc+lp <= 4.
func (p Properties) Validate() error {
	if p.LC > lzma.MaxLC {
		return lzma.NewError(lzma.ErrInvalidProperties, "lc=%d exceeds maximum %d", p.LC, lzma.MaxLC)
	}
	if p.LP > lzma.MaxLP {
		return lzma.NewError(lzma.ErrInvalidProperties, "lp=%d exceeds maximum %d", p.LP, lzma.MaxLP)
	}
	if p.PB > lzma.MaxPB {
		return lzma.NewError(lzma.ErrInvalidProperties, "pb=%d exceeds maximum %d", p.PB, lzma.MaxPB)
	}
	if p.LC+p.LP > 4 {
		return lzma.NewError(lzma.ErrInvalidProperties, "lc+lp=%d exceeds maximum 4", p.LC+p.LP)
	}
	return nil
}

// String renders the triple the way LZMA tooling conventionally logs it.
func (p Properties) String() string {
	return fmt.Sprintf("lc=%d,lp=%d,pb=%d", p.LC, p.LP, p.PB)
}
