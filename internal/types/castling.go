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

// CastlingRights is a 4-bit mask of which castles are still legally
// available, independent of whether they are currently blocked or
// would cross an attacked square.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside

	// CastlingRightsLength is the number of distinct values a 4-bit
	// CastlingRights mask can take (0..15), sized for zobrist/table
	// indexing by the raw mask value.
	CastlingRightsLength int = 16
)

// Has reports whether all bits of other are set in cr.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Remove clears the given bits and returns the result.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// KingsideFor returns the kingside castling bit for the given color.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideFor returns the queenside castling bit for the given color.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// castlingRightsLost is indexed by the square a move touches (either
// its from- or to-square) and gives the rights that moving a piece
// onto or off of that square permanently removes. A king start square
// removes both rights for its color; a rook start square removes only
// the matching side; every other square loses nothing.
var castlingRightsLost [SqLength]CastlingRights

func init() {
	castlingRightsLost[SqE1] = WhiteKingside | WhiteQueenside
	castlingRightsLost[SqE8] = BlackKingside | BlackQueenside
	castlingRightsLost[SqH1] = WhiteKingside
	castlingRightsLost[SqA1] = WhiteQueenside
	castlingRightsLost[SqH8] = BlackKingside
	castlingRightsLost[SqA8] = BlackQueenside
}

// CastlingRightsLostAt returns the castling rights permanently lost
// when a piece moves onto or off of sq.
func CastlingRightsLostAt(sq Square) CastlingRights {
	return castlingRightsLost[sq]
}

// String renders the rights in FEN order "KQkq", using "-" for none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
