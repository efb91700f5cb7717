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

// Move is a move packed into a single 32-bit word: 24 bits of move
// data plus an 8-bit ordering score carried alongside it so the move
// generator can sort moves in place without a parallel slice.
//
//	bits  0- 5  from square      (6 bits)
//	bits  6-11  to square        (6 bits)
//	bits 12-15  moving piece     (4 bits, Piece)
//	bits 16-19  promotion type   (4 bits, PieceType; PtNone = no promotion)
//	bit     20  capture flag
//	bit     21  double pawn push flag
//	bit     22  en passant capture flag
//	bit     23  castling flag
//	bits 24-31  ordering score   (8 bits, unsigned, move-generator scratch space)
type Move uint32

// NoMove is the zero move, never produced by the generator (from==to==a8
// cannot occur for a real move since a8 is never both ends of a step).
const NoMove Move = 0

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePieceShift = 12
	movePromoShift = 16
	moveCaptureBit = 20
	moveDoubleBit  = 21
	moveEpBit      = 22
	moveCastleBit  = 23
	moveScoreShift = 24

	moveSquareMask = 0x3f
	movePieceMask  = 0xf
	movePromoMask  = 0xf
	moveScoreMask  = 0xff
)

// MoveFlags selects which special-move bit a NewMove call sets.
type MoveFlags uint8

const (
	FlagNone           MoveFlags = 0
	FlagCapture        MoveFlags = 1 << 0
	FlagDoublePawnPush MoveFlags = 1 << 1
	FlagEnPassant      MoveFlags = 1 << 2
	FlagCastling       MoveFlags = 1 << 3
)

// NewMove builds a quiet or flagged move with no promotion.
func NewMove(from, to Square, piece Piece, flags MoveFlags) Move {
	return newMoveRaw(from, to, piece, PtNone, flags)
}

// NewPromotionMove builds a promotion move, optionally also a capture.
func NewPromotionMove(from, to Square, piece Piece, promo PieceType, flags MoveFlags) Move {
	return newMoveRaw(from, to, piece, promo, flags)
}

func newMoveRaw(from, to Square, piece Piece, promo PieceType, flags MoveFlags) Move {
	m := Move(from)&moveSquareMask<<moveFromShift |
		Move(to)&moveSquareMask<<moveToShift |
		Move(piece)&movePieceMask<<movePieceShift |
		Move(promo)&movePromoMask<<movePromoShift
	if flags&FlagCapture != 0 {
		m |= 1 << moveCaptureBit
	}
	if flags&FlagDoublePawnPush != 0 {
		m |= 1 << moveDoubleBit
	}
	if flags&FlagEnPassant != 0 {
		m |= 1 << moveEpBit
	}
	if flags&FlagCastling != 0 {
		m |= 1 << moveCastleBit
	}
	return m
}

// From returns the move's origin square.
func (m Move) From() Square { return Square(m >> moveFromShift & moveSquareMask) }

// To returns the move's destination square.
func (m Move) To() Square { return Square(m >> moveToShift & moveSquareMask) }

// Piece returns the piece being moved.
func (m Move) Piece() Piece { return Piece(m >> movePieceShift & movePieceMask) }

// PromotionType returns the promotion piece type, or PtNone if this
// move is not a promotion.
func (m Move) PromotionType() PieceType { return PieceType(m >> movePromoShift & movePromoMask) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionType() != PtNone }

// IsCapture reports whether the move captures a piece (including en
// passant).
func (m Move) IsCapture() bool { return m&(1<<moveCaptureBit) != 0 }

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool { return m&(1<<moveDoubleBit) != 0 }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m&(1<<moveEpBit) != 0 }

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool { return m&(1<<moveCastleBit) != 0 }

// Score returns the move's ordering score.
func (m Move) Score() int { return int(m >> moveScoreShift & moveScoreMask) }

// WithScore returns a copy of m with its ordering score replaced.
// Scores are clamped into the 8-bit range the encoding carries.
func (m Move) WithScore(score int) Move {
	if score < 0 {
		score = 0
	} else if score > moveScoreMask {
		score = moveScoreMask
	}
	return m&^(Move(moveScoreMask)<<moveScoreShift) | Move(score)<<moveScoreShift
}

// IsValid reports whether m is a non-zero, well-formed move.
func (m Move) IsValid() bool {
	return m != NoMove && m.From() != m.To()
}

// UCI renders the move in long algebraic notation ("e2e4", "e7e8q").
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// String is an alias of UCI.
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.UCI()
}
