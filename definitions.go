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

import "github.com/gocompress/lzma/internal/lzmacore"

const (
	MinDictSize             = lzmacore.MinDictSize
	MaxDictSize             = lzmacore.MaxDictSize
	MinLC, MaxLC            = lzmacore.MinLC, lzmacore.MaxLC
	MinLP, MaxLP            = lzmacore.MinLP, lzmacore.MaxLP
	MinPB, MaxPB            = lzmacore.MinPB, lzmacore.MaxPB
	MaxPropByte             = lzmacore.MaxPropByte
	MatchLenMin             = lzmacore.MatchLenMin
	MatchLenMax             = lzmacore.MatchLenMax
	RepeatMax               = lzmacore.RepeatMax
	InitPos                 = lzmacore.InitPos
	EOPMDistance            = lzmacore.EOPMDistance
	NumStates               = lzmacore.NumStates
	PosStatesMax            = lzmacore.PosStatesMax
	HeaderSize              = lzmacore.HeaderSize
	UnknownSize             = lzmacore.UnknownSize
	LZMA2ChunkMax           = lzmacore.LZMA2ChunkMax
	LZMA2CompressedChunkMax = lzmacore.LZMA2CompressedChunkMax
)

// ResetKind selects how much of a codec instance's state is cleared;
// see lzmacore.ResetKind.
type ResetKind = lzmacore.ResetKind

const (
	ResetNone           = lzmacore.ResetNone
	ResetStateOnly      = lzmacore.ResetStateOnly
	ResetStateAndProbs  = lzmacore.ResetStateAndProbs
	ResetFull           = lzmacore.ResetFull
	ResetDictOnly       = lzmacore.ResetDictOnly
)
