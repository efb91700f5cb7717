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

// Package attacks answers "what does a piece on this square attack,
// given this occupancy" in constant time: one multiply-and-shift into a
// precomputed table, never a square-by-square ray walk during search.
// No PEXT instruction is used, on any hardware (see HasBMI2).
package attacks

import (
	"golang.org/x/sys/cpu"

	myLogging "github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// HasBMI2 reports whether the host CPU exposes the BMI2 instruction
// set (and therefore a native PEXT). Go has no PEXT intrinsic without
// hand-written assembly, so this package always answers sliding
// attack queries through the perfect-hash tables built in
// internal/types regardless of HasBMI2 - the value exists purely so
// startup logging can record which hardware path a native PEXT build
// would have taken.
var HasBMI2 = cpu.X86.HasBMI2

func init() {
	log := myLogging.GetLog()
	if HasBMI2 {
		log.Debugf("attacks: host supports BMI2; using perfect-hash sliding attack tables (no Go PEXT intrinsic available)")
	} else {
		log.Debugf("attacks: host has no BMI2; using perfect-hash sliding attack tables")
	}
}

// SlidingAttacks returns the attack bitboard of a rook, bishop or
// queen standing on sq given the board occupancy, via a single
// constant-time table lookup.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	return GetAttacksBb(pt, sq, occupied)
}

// LeaperAttacks returns the attack bitboard of a knight or king
// standing on sq, independent of occupancy.
func LeaperAttacks(pt PieceType, sq Square) Bitboard {
	return GetPseudoAttacks(pt, sq)
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return GetPawnAttacks(c, sq)
}
