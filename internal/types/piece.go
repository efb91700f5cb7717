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

import "strings"

// PieceType is a piece kind without color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength int = 6
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PieceType(PtLength)
}

var pieceTypeValue = [PtLength]int{100, 320, 330, 500, 900, 0}

// ValueOf returns the static material value of the piece type in
// centipawns. King has no material value - check/mate is handled
// separately by the searcher.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// mvvLvaClass ranks piece types for MVV-LVA ordering: pawn is the
// least valuable attacker/victim class, king (never actually
// captured) the most.
var mvvLvaClass = [PtLength]int{0, 1, 2, 3, 4, 5}

// AttackerClass returns this piece type's class for MVV-LVA scoring.
func (pt PieceType) AttackerClass() int {
	return mvvLvaClass[pt]
}

var pieceTypeChars = "PNBRQK-"

// Char returns the upper-case algebraic letter for the piece type
// ("P","N","B","R","Q","K"), or "-" for PtNone.
func (pt PieceType) Char() string {
	return string(pieceTypeChars[pt])
}

// Piece is a colored piece on the board, encoded 0..11 with color =
// index/6 and piece type = index%6; PieceNone (index 12) is the
// sentinel for an empty square.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength int = 12
)

// MakePiece builds the piece for a given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*PtLength + int(pt))
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(int(p) / PtLength)
}

// TypeOf returns the piece type of the piece. Undefined for
// PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % PtLength)
}

// IsValid reports whether p is one of the twelve concrete pieces
// (PieceNone is not valid in this sense).
func (p Piece) IsValid() bool {
	return p < Piece(PieceLength)
}

var pieceChars = "PNBRQKpnbrqk-"

// Char returns the algebraic FEN character for the piece (upper case
// for White, lower for Black), or "-" for PieceNone.
func (p Piece) Char() string {
	return string(pieceChars[p])
}

// String is an alias of Char.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single FEN piece letter, returning
// PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceChars[:PieceLength], s[0])
	if idx < 0 {
		return PieceNone
	}
	return Piece(idx)
}
