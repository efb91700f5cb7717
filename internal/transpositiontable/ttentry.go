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

package transpositiontable

import (
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// Bound classifies the stored value relative to the search window that
// produced it.
type Bound int8

const (
	// BoundNone marks an entry that has never been written.
	BoundNone Bound = iota
	// Exact means the stored value is the true minimax value.
	Exact
	// Alpha means the stored value is an upper bound: the node failed
	// low at that score.
	Alpha
	// Beta means the stored value is a lower bound: the node failed
	// high at that score.
	Beta
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "EXACT"
	case Alpha:
		return "ALPHA"
	case Beta:
		return "BETA"
	default:
		return "NONE"
	}
}

// Entry is one slot of the transposition table, packed into 16 bytes.
type Entry struct {
	key   position.Key
	move  uint16
	value int16
	eval  int16
	vmeta uint16 // depth 7-bit | bound 2-bit | age 3-bit
}

const (
	// EntrySize is the size in bytes of a single Entry.
	EntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	boundMask  = uint16(0b0000_0000_0001_1000)
	boundShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored in this entry.
func (e *Entry) Key() position.Key {
	return e.key
}

// Move returns the best move stored in this entry, or NoMove if empty.
func (e *Entry) Move() Move {
	return Move(e.move)
}

// Value returns the node-relative search value stored in this entry.
func (e *Entry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored alongside the search value.
func (e *Entry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth the entry was stored at.
func (e *Entry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the number of Table.AgeEntries sweeps survived without a
// fresh write, 0 meaning "written since the last sweep".
func (e *Entry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Bound reports whether Value is exact or a search-window bound.
func (e *Entry) Bound() Bound {
	return Bound((e.vmeta & boundMask) >> boundShift)
}
