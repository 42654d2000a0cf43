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

// Package lzma is the root of a pure-Go implementation of the LZMA and
// LZMA2 compression family, compatible with the LZMA_Alone (.lzma) and
// lzip (.lz) container framings.
//
// The codec itself lives in the sub-packages rangecoder, lzmastate,
// lzma1, matchfinder, lzma2 and container; this package holds the
// shared error type, the configuration structs and the streaming
// Reader/Writer facade tying the layers together.
package lzma

import "github.com/gocompress/lzma/internal/lzmacore"

// ErrorKind classifies why a decode or container-parse operation failed.
// It is an alias of lzmacore.ErrorKind so that every layer package
// (which must import lzmacore directly to avoid an import cycle with
// this package's own facade) and every caller of this package share
// exactly one type.
type ErrorKind = lzmacore.ErrorKind

const (
	ErrInvalidProperties   = lzmacore.ErrInvalidProperties
	ErrInvalidDictSize     = lzmacore.ErrInvalidDictSize
	ErrInvalidControlByte  = lzmacore.ErrInvalidControlByte
	ErrInvalidDistance     = lzmacore.ErrInvalidDistance
	ErrTruncatedStream     = lzmacore.ErrTruncatedStream
	ErrCorruptStream       = lzmacore.ErrCorruptStream
	ErrSizeMismatch        = lzmacore.ErrSizeMismatch
	ErrChecksumMismatch    = lzmacore.ErrChecksumMismatch
	ErrUnsupportedFormat   = lzmacore.ErrUnsupportedFormat
)

// Error is the error type returned by every decode/parse path in this
// module; see lzmacore.Error.
type Error = lzmacore.Error

// NewError builds an Error of the given kind with a formatted reason.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return lzmacore.NewError(kind, format, args...)
}

// WrapError builds an Error of the given kind wrapping an existing error.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *Error {
	return lzmacore.WrapError(kind, err, format, args...)
}
