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

package position

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corechess/engine/internal/config"
	. "github.com/corechess/engine/internal/types"
)

// positionDiff renders a field-by-field diff between two positions,
// used where a plain assert.Equal failure would just dump two opaque
// struct literals.
func positionDiff(before, after Position) string {
	return cmp.Diff(before, after, cmp.AllowUnexported(Position{}, historyState{}))
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestNewPositionStartpos(t *testing.T) {
	p := NewPosition()

	assert.Equal(t, SqA8.Bb()|SqH8.Bb()|SqA1.Bb()|SqH1.Bb(), p.PiecesBb(White, Rook)|p.PiecesBb(Black, Rook))
	assert.Equal(t, SqB8.Bb()|SqG8.Bb()|SqB1.Bb()|SqG1.Bb(), p.PiecesBb(White, Knight)|p.PiecesBb(Black, Knight))
	assert.Equal(t, SqC8.Bb()|SqF8.Bb()|SqC1.Bb()|SqF1.Bb(), p.PiecesBb(White, Bishop)|p.PiecesBb(Black, Bishop))
	assert.Equal(t, SqD8.Bb()|SqD1.Bb(), p.PiecesBb(White, Queen)|p.PiecesBb(Black, Queen))
	assert.Equal(t, SqE8.Bb()|SqE1.Bb(), p.PiecesBb(White, King)|p.PiecesBb(Black, King))
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, 0, p.Material(White)-p.Material(Black))
	assert.Equal(t, 0, p.MaterialNonPawn(White)-p.MaterialNonPawn(Black))
	assert.Equal(t, StartFen, p.StringFen())
	assert.False(t, p.InCheck())
}

func TestNewPositionFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/8/8/4k3/8/8/4K3/8 w - - 5 40",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestNewPositionFenInvalid(t *testing.T) {
	_, err := NewPositionFen("not a fen")
	assert.Error(t, err)
}

func TestPositionMaterialAfterCapture(t *testing.T) {
	// White knight takes a black pawn on e5.
	p, err := NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 3")
	require.NoError(t, err)
	before := p.Material(White) - p.Material(Black)

	m := NewMove(SqF3, SqE5, WhiteKnight, FlagCapture)
	ok := p.MakeMove(m)
	require.True(t, ok)

	after := p.Material(White) - p.Material(Black)
	assert.Equal(t, before+Pawn.ValueOf(), after)
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, WhiteKnight, p.GetPiece(SqE5))
	assert.Equal(t, PieceNone, p.GetPiece(SqF3))
}

func TestPositionMakeUnmakeMoveIsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		m    Move
	}{
		{"quiet", StartFen, NewMove(SqE2, SqE4, WhitePawn, FlagDoublePawnPush)},
		{
			"capture",
			"rnbqkbnr/pppp1ppp/8/4p3/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 3",
			NewMove(SqF3, SqE5, WhiteKnight, FlagCapture),
		},
		{
			"en passant",
			"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
			NewMove(SqD4, SqE3, BlackPawn, FlagEnPassant|FlagCapture),
		},
		{
			"kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			NewMove(SqE1, SqG1, WhiteKing, FlagCastling),
		},
		{
			"promotion",
			"8/P7/8/8/8/8/8/4k2K w - - 0 1",
			NewPromotionMove(SqA7, SqA8, WhitePawn, Queen, FlagNone),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPositionFen(c.fen)
			require.NoError(t, err)

			before := *p
			ok := p.MakeMove(c.m)
			require.True(t, ok)
			assert.NotEqual(t, before.ZobristKey(), p.ZobristKey())

			p.UnmakeMove()
			assert.Empty(t, positionDiff(before, *p))
		})
	}
}

func TestPositionMakeMoveRejectsSelfCheck(t *testing.T) {
	// White king on e1, white rook pinned on e2 by a black rook on e8;
	// moving the rook off the e-file would expose the king.
	p, err := NewPositionFen("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	before := *p
	ok := p.MakeMove(NewMove(SqE2, SqD2, WhiteRook, FlagNone))
	assert.False(t, ok)
	assert.Empty(t, positionDiff(before, *p))
}

func TestPositionIsSquareAttackedAndCheck(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, p.IsSquareAttacked(SqE1, Black))
	assert.True(t, p.IsInCheck(White))
	assert.True(t, p.InCheck())
	assert.False(t, p.IsInCheck(Black))
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestPositionHasInsufficientMaterial(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())

	p, err = NewPositionFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestPositionNullMove(t *testing.T) {
	p := NewPosition()
	before := *p
	p.MakeNullMove()
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	p.UnmakeNullMove()
	assert.Equal(t, before, *p)
}

func TestPositionLastMoveAndWasCapturing(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 3")
	require.NoError(t, err)

	m := NewMove(SqF3, SqE5, WhiteKnight, FlagCapture)
	require.True(t, p.MakeMove(m))
	assert.Equal(t, m, p.LastMove())
	assert.True(t, p.WasCapturingMove())
}
