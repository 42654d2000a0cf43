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
	lzma "github.com/gocompress/lzma/internal/lzmacore"
	"github.com/gocompress/lzma/lzmastate"
	"github.com/gocompress/lzma/rangecoder"
)

// litCoderSize is the per-literal-coder-slot width: one bit-tree for
// the unmatched path and an extra one interleaved for the matched
// path, 0x300 entries in total (spec §4.2, §3).
const litCoderSize = 0x300

// lengthCoder holds the probability tables shared by the structure of
// both the normal-match length coder and the rep-match length coder
// (spec §4.2): a 2-way choice between low/mid and high ranges, an
// inner choice between low and mid, and three bit-trees.
type lengthCoder struct {
	choice  rangecoder.Prob
	choice2 rangecoder.Prob
	low     [lzma.PosStatesMax][8]rangecoder.Prob
	mid     [lzma.PosStatesMax][8]rangecoder.Prob
	high    [256]rangecoder.Prob
}

func (c *lengthCoder) reset() {
	c.choice = rangecoder.ProbInit
	c.choice2 = rangecoder.ProbInit
	for i := range c.low {
		rangecoder.ResetProbs(c.low[i][:])
		rangecoder.ResetProbs(c.mid[i][:])
	}
	rangecoder.ResetProbs(c.high[:])
}

// distCoder holds the probability tables for decoding/encoding a match
// distance once its length state is known (spec §4.2).
type distCoder struct {
	slot    [4][64]rangecoder.Prob
	special [114]rangecoder.Prob
	align   [16]rangecoder.Prob
}

func (c *distCoder) reset() {
	for i := range c.slot {
		rangecoder.ResetProbs(c.slot[i][:])
	}
	rangecoder.ResetProbs(c.special[:])
	rangecoder.ResetProbs(c.align[:])
}

// tables bundles every probability array owned by one codec instance,
// sized for a given (lc, lp, pb) triple, plus the registers (rep
// distances and state) that travel with them through every reset
// level shallower than ResetFull.
type tables struct {
	props Properties

	literal []rangecoder.Prob

	isMatch     [lzma.NumStates][lzma.PosStatesMax]rangecoder.Prob
	isRep       [lzma.NumStates]rangecoder.Prob
	isRep0      [lzma.NumStates]rangecoder.Prob
	isRep1      [lzma.NumStates]rangecoder.Prob
	isRep2      [lzma.NumStates]rangecoder.Prob
	isRep0Long  [lzma.NumStates][lzma.PosStatesMax]rangecoder.Prob

	matchLen lengthCoder
	repLen   lengthCoder
	dist     distCoder

	state lzmastate.State
	rep0, rep1, rep2, rep3 uint32
}

func newTables(props Properties) *tables {
	t := &tables{}
	t.setProperties(props)
	t.resetRegisters()
	return t
}

// setProperties (re)allocates the literal table for a new (lc, lp, pb)
// triple and resets every probability, matching a full reset's
// "properties byte follows" clause (spec §4.4).
func (t *tables) setProperties(props Properties) {
	t.props = props
	numLitStates := uint32(1) << (props.LC + props.LP)
	t.literal = rangecoder.NewProbs(int(numLitStates) * litCoderSize)
	t.resetProbs()
}

// resetProbs resets every probability table to ProbInit but leaves the
// rep registers and state machine untouched (the probability half of
// ResetStateAndProbs).
func (t *tables) resetProbs() {
	rangecoder.ResetProbs(t.literal)

	for i := range t.isMatch {
		rangecoder.ResetProbs(t.isMatch[i][:])
	}
	rangecoder.ResetProbs(t.isRep[:])
	rangecoder.ResetProbs(t.isRep0[:])
	rangecoder.ResetProbs(t.isRep1[:])
	rangecoder.ResetProbs(t.isRep2[:])
	for i := range t.isRep0Long {
		rangecoder.ResetProbs(t.isRep0Long[i][:])
	}

	t.matchLen.reset()
	t.repLen.reset()
	t.dist.reset()
}

// resetState clears the 12-state machine alone, leaving the rep
// registers and every probability table untouched (ResetStateOnly).
func (t *tables) resetState() {
	t.state = 0
}

// resetReps clears the four rep distances.
func (t *tables) resetReps() {
	t.rep0, t.rep1, t.rep2, t.rep3 = 0, 0, 0, 0
}

// resetRegisters clears both the state machine and the rep distances,
// as happens on ResetFull.
func (t *tables) resetRegisters() {
	t.resetState()
	t.resetReps()
}

// applyReset performs the subset of work named by kind. Dictionary
// and properties resets are the caller's responsibility (they need a
// new Window / a properties byte from the bitstream respectively);
// this only ever touches probability tables and registers.
func (t *tables) applyReset(kind lzma.ResetKind) {
	switch kind {
	case lzma.ResetNone, lzma.ResetDictOnly:
		// no table/register change
	case lzma.ResetStateOnly:
		t.resetState()
	case lzma.ResetStateAndProbs:
		t.resetProbs()
		t.resetState()
	case lzma.ResetFull:
		t.resetProbs()
		t.resetRegisters()
	}
}

// literalBase returns the table offset for the literal sub-coder
// active at the given output position and previous byte (spec §4.2).
func (t *tables) literalBase(pos uint64, prev byte) int {
	posMask := (uint32(1) << t.props.LP) - 1
	litState := ((uint32(pos) & posMask) << t.props.LC) + uint32(prev)>>(8-t.props.LC)
	return int(litState) * litCoderSize
}

// posState returns the low pb bits of the given output position.
func (t *tables) posState(pos uint64) uint32 {
	return uint32(pos) & ((1 << t.props.PB) - 1)
}
