//
// corechess - a UCI-compatible chess engine core
//
// MIT License
//
// Copyright (c) 2026 corechess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// Value is a centipawn score from the side-to-move's point of view,
// with a reserved range near the extremes for mate distances.
type Value int32

const (
	// ValueZero is a dead-even position.
	ValueZero Value = 0
	// ValueDraw is the score assigned to a detected draw.
	ValueDraw Value = 0
	// ValueInfinite exceeds any real evaluation or mate score and is
	// used to seed alpha-beta windows.
	ValueInfinite Value = 32000
	// ValueNone marks "no value computed", distinct from any legal
	// score including mate scores.
	ValueNone Value = 32001

	// ValueMate is the score of delivering mate right now. Scores
	// returned from inside the tree are ValueMate minus the number of
	// plies to the mate, so shallower mates sort above deeper ones.
	ValueMate Value = 31000
	// ValueMateInMaxPly is the lowest mate-distance score the search
	// still treats as a forced mate, bounding how deep a mate can be
	// found before it is indistinguishable from a large eval.
	ValueMateInMaxPly Value = ValueMate - 1000
)

// IsMateScore reports whether v encodes a forced mate for either side.
func (v Value) IsMateScore() bool {
	return v >= ValueMateInMaxPly || v <= -ValueMateInMaxPly
}

// MateDistance returns the number of plies to the mate encoded in v.
// Only meaningful when IsMateScore is true.
func (v Value) MateDistance() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return int(ValueMate + v)
}

// Negate flips the value to the other side's perspective, preserving
// mate-distance encoding.
func (v Value) Negate() Value {
	return -v
}
