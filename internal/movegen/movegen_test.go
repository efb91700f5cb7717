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

package movegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestGeneratePseudoLegalMovesStartpos(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()

	moves := mg.GeneratePseudoLegalMoves(p, GenAll)
	assert.Equal(t, 20, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, 0, moves.At(i).Score(), "scores are stripped after sorting")
	}
}

func TestGenerateLegalMovesExcludesMovesThatExposeKing(t *testing.T) {
	// White king on e1, pinned rook on e2, black rook on e8: Re2 can
	// only move along the e-file, not sideways.
	p, err := position.NewPositionFen("4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == SqE2 {
			assert.Equal(t, SqE2.FileOf(), m.To().FileOf(), "pinned rook must stay on the e-file")
		}
	}
}

func TestGenerateLegalMovesCheckmateHasNoMoves(t *testing.T) {
	// Fool's mate.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	mg := NewMoveGen()

	legal := mg.GenerateLegalMoves(p, GenAll)
	assert.Equal(t, 0, legal.Len())
	assert.True(t, p.InCheck())
	assert.False(t, mg.HasLegalMove(p))
}

func TestGenerateCapturesOnlyReturnsCaptures(t *testing.T) {
	// 1. d4 e5: the only capture available to white is d4xe5.
	p, err := position.NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	mg := NewMoveGen()

	caps := mg.GenerateLegalMoves(p, GenCap)
	require.Equal(t, 1, caps.Len())
	assert.Equal(t, "d4e5", caps.At(0).UCI())
}

func TestGeneratePromotionsEmitAllFourPieces(t *testing.T) {
	p, err := position.NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	moves := mg.GenerateLegalMoves(p, GenAll)
	promos := map[PieceType]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromotion() {
			promos[m.PromotionType()] = true
		}
	}
	assert.True(t, promos[Queen])
	assert.True(t, promos[Knight])
	assert.True(t, promos[Rook])
	assert.True(t, promos[Bishop])
}

func TestGenerateEnPassantCapture(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	require.NoError(t, err)
	mg := NewMoveGen()

	moves := mg.GenerateLegalMoves(p, GenAll)
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsEnPassant() {
			found = true
			assert.Equal(t, SqD4, m.From())
			assert.Equal(t, SqE3, m.To())
		}
	}
	assert.True(t, found, "expected an en passant capture to be generated")
}

func TestGenerateCastlingRequiresEmptyPath(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	moves := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastling() {
			assert.Equal(t, SqG1, m.To(), "queenside is blocked by the queen on d1")
		}
	}
}

func TestGenerateCastlingExcludedWhenPathAttacked(t *testing.T) {
	// Black rook on f8 attacks f1, the square the white king must
	// cross to castle kingside.
	p, err := position.NewPositionFen("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	moves := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastling() {
			assert.Equal(t, SqC1, m.To(), "only queenside castling should survive")
		}
	}
}

func TestSetPvMoveSortsFirst(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()
	pv := NewMove(SqD2, SqD4, WhitePawn, FlagDoublePawnPush)
	mg.SetPvMove(pv)

	moves := mg.GeneratePseudoLegalMoves(p, GenAll)
	require.Greater(t, moves.Len(), 0)
	assert.Equal(t, pv.UCI(), moves.At(0).UCI())
}

func TestGetNextMoveVisitsEveryPseudoLegalMoveExactlyOnce(t *testing.T) {
	// GetNextMove, like GeneratePseudoLegalMoves, does not filter out
	// moves that leave the mover's own king in check - that check is
	// the search loop's job, via MakeMove's return value, since most
	// candidates are pruned before it would ever matter.
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	mg := NewMoveGen()

	seen := map[Move]int{}
	for {
		m := mg.GetNextMove(p, GenAll)
		if m == NoMove {
			break
		}
		seen[bare(m)]++
	}

	p2, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	pseudo := NewMoveGen().GeneratePseudoLegalMoves(p2, GenAll)
	assert.Equal(t, pseudo.Len(), len(seen))
	for i := 0; i < pseudo.Len(); i++ {
		assert.Equal(t, 1, seen[bare(pseudo.At(i))])
	}
}

func TestGetNextMoveReturnsPvMoveFirst(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()
	pv := NewMove(SqG1, SqF3, WhiteKnight, FlagNone)
	mg.SetPvMove(pv)

	first := mg.GetNextMove(p, GenAll)
	assert.Equal(t, pv.UCI(), first.UCI())
}

func TestStoreKillerSurfacesFirstWithinItsStage(t *testing.T) {
	// Nb1-c3 is only generated in the officer non-capture stage, after
	// the 16 pawn non-captures of the starting position. Marking it as
	// a killer should move it to the front of that stage's batch, but
	// it still can't jump ahead of the earlier pawn-move stage.
	p := position.NewPosition()
	mg := NewMoveGen()
	killer := NewMove(SqB1, SqC3, WhiteKnight, FlagNone)
	mg.StoreKiller(killer)

	for i := 0; i < 16; i++ {
		m := mg.GetNextMove(p, GenNonCap)
		require.True(t, m.IsValid(), "expected 16 pawn moves before the officer stage")
		assert.Equal(t, Pawn, m.Piece().TypeOf())
	}

	next := mg.GetNextMove(p, GenNonCap)
	assert.Equal(t, killer.UCI(), next.UCI())
}

func TestGetMoveFromUci(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()

	m := mg.GetMoveFromUci(p, "e2e4")
	require.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.True(t, m.IsDoublePawnPush())

	assert.Equal(t, NoMove, mg.GetMoveFromUci(p, "e2e5"))
}

func TestGetMoveFromSan(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()

	m := mg.GetMoveFromSan(p, "Nf3")
	require.True(t, m.IsValid())
	assert.Equal(t, SqG1, m.From())
	assert.Equal(t, SqF3, m.To())

	pawn := mg.GetMoveFromSan(p, "e4")
	require.True(t, pawn.IsValid())
	assert.Equal(t, SqE2, pawn.From())
	assert.Equal(t, SqE4, pawn.To())
}

func TestGetMoveFromSanCastling(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	m := mg.GetMoveFromSan(p, "O-O")
	require.True(t, m.IsValid())
	assert.True(t, m.IsCastling())
	assert.Equal(t, SqG1, m.To())
}

func TestValidateMove(t *testing.T) {
	p := position.NewPosition()
	mg := NewMoveGen()

	assert.True(t, mg.ValidateMove(p, NewMove(SqE2, SqE4, WhitePawn, FlagDoublePawnPush)))
	assert.False(t, mg.ValidateMove(p, NewMove(SqE2, SqE5, WhitePawn, FlagNone)))
	assert.False(t, mg.ValidateMove(p, NoMove))
}

func TestHasLegalMoveStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal moves and is not in check.
	p, err := position.NewPositionFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	mg := NewMoveGen()

	assert.False(t, p.InCheck())
	assert.False(t, mg.HasLegalMove(p))
}
