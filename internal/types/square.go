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

// Package types defines the primitive data types shared across the engine:
// squares, colors, pieces, bitboards, castling rights and the packed move
// encoding. None of these types know anything about a concrete chess
// position - they are the vocabulary the rest of the engine is written in.
package types

import "fmt"

// Square is a single square on the board, 0..63 with SqNone==64 reserved
// for "no square".
//
// Squares are numbered a8=0, b8=1, ..., h8=7, a7=8, ..., h1=63 - rank 8
// first, file a leftmost. This matches the left-to-right, top-to-bottom
// order a FEN placement field is written in, so FromFEN can fill the
// board with a single linear scan.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone // 64
)

// SqLength is the number of addressable squares (not counting SqNone).
const SqLength = 64

// IsValid reports whether sq is an on-board square (sq < SqNone).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square (0=a .. 7=h).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square (0=rank1 .. 7=rank8).
func (sq Square) RankOf() Rank {
	return Rank(7 - sq>>3)
}

// MakeSquare parses an algebraic square ("e4") and returns SqNone if
// it is not well-formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf returns the square for a given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((7-int(r))<<3 + int(f))
}

// To returns the square reached by walking one step in direction d from
// sq, or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][d.index()]
}

// String returns the algebraic name of the square ("e4"), or "-" for
// SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [SqLength][8]Square

func init() {
	for sq := Square(0); sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = sq.walk(d)
		}
	}
}

// walk computes the destination of a single step without the
// precomputed table; used only to build that table at init time.
func (sq Square) walk(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North, South:
		// no file change, only checked against board edges below
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	next := int(sq) + int(d)
	if next < 0 || next >= SqLength {
		return SqNone
	}
	return Square(next)
}
