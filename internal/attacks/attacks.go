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

package attacks

import (
	"github.com/op/go-logging"

	myLogging "github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

// Attacks is a cached snapshot of every attack/defend relationship in
// a position, keyed by the position's Zobrist hash so repeated calls
// for the same position are free.
type Attacks struct {
	log *logging.Logger

	Zobrist position.Key

	From [ColorLength][SqLength]Bitboard
	To   [ColorLength][SqLength]Bitboard
	All  [ColorLength]Bitboard

	Piece [ColorLength][PtLength]Bitboard

	Mobility [ColorLength]int

	Pawns       [ColorLength]Bitboard
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks creates an empty Attacks cache.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog(),
	}
}

// Clear resets every field without reallocating, for reuse across
// positions in a hot search loop.
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := Square(0); sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PieceType(0); pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute fills the cache for p, skipping the work entirely if p's
// Zobrist key matches what is already cached.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		return
	}
	a.Clear()
	a.Zobrist = p.ZobristKey()
	a.nonPawnAttacks(p)
	a.pawnAttacks(p)
}

func (a *Attacks) nonPawnAttacks(p *position.Position) {
	ptList := [5]PieceType{King, Knight, Bishop, Rook, Queen}
	allPieces := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		myPieces := p.OccupiedBb(c)
		for _, pt := range ptList {
			pieces := p.PiecesBb(c, pt)
			for pieces != BbZero {
				psq := pieces.PopLsb()
				att := SlidingOrLeaperAttacks(pt, psq, allPieces)
				a.From[c][psq] = att
				a.Piece[c][pt] |= att
				a.All[c] |= att
				tmp := att
				for tmp != BbZero {
					toSq := tmp.PopLsb()
					a.To[c][toSq].PushSquare(psq)
				}
				a.Mobility[c] += (att &^ myPieces).PopCount()
			}
		}
	}
}

func (a *Attacks) pawnAttacks(p *position.Position) {
	whitePawns := p.PiecesBb(White, Pawn)
	blackPawns := p.PiecesBb(Black, Pawn)
	a.Pawns[White] = ShiftBitboard(whitePawns, Northwest) | ShiftBitboard(whitePawns, Northeast)
	a.Pawns[Black] = ShiftBitboard(blackPawns, Southwest) | ShiftBitboard(blackPawns, Southeast)
	a.PawnsDouble[White] = ShiftBitboard(whitePawns, Northwest) & ShiftBitboard(whitePawns, Northeast)
	a.PawnsDouble[Black] = ShiftBitboard(blackPawns, Southwest) & ShiftBitboard(blackPawns, Southeast)
}

// SlidingOrLeaperAttacks dispatches to the right table for any piece
// type except Pawn (which needs a color).
func SlidingOrLeaperAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook, Bishop, Queen:
		return SlidingAttacks(pt, sq, occupied)
	default:
		return LeaperAttacks(pt, sq)
	}
}

// AttacksTo returns every square occupied by a piece of the given
// color that attacks square, including an en passant capturer if one
// exists. It works backwards from the target square: generate each
// piece type's attacks as if that type stood on square, then keep
// only the ones that land on an actual piece of that type.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	epAttacks := BbZero
	if ep := p.GetEnPassantSquare(); ep != SqNone && ep == square {
		pawnSquare := ep.To(color.Opposite().PawnPushDirection())
		if pawnSquare.IsValid() {
			epAttacker := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(color, Pawn)
			epAttacks |= epAttacker
		}
	}

	occupied := p.OccupiedAll()

	return (GetPawnAttacks(color.Opposite(), square) & p.PiecesBb(color, Pawn)) |
		(LeaperAttacks(Knight, square) & p.PiecesBb(color, Knight)) |
		(LeaperAttacks(King, square) & p.PiecesBb(color, King)) |
		(SlidingAttacks(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(SlidingAttacks(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen))) |
		epAttacks
}

// RevealedAttacks returns slider attacks onto square once a blocker
// has been removed from occupied - used to find discovered checks and
// pins while unwinding a capture sequence in quiescence search.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (SlidingAttacks(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(SlidingAttacks(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
