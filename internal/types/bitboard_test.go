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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitboardPushPop(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqD4))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsbPopCount(t *testing.T) {
	b := SqA8.Bb() | SqH1.Bb() | SqE4.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA8, b.Lsb())
	assert.Equal(t, SqH1, b.Msb())

	lsb := b.PopLsb()
	assert.Equal(t, SqA8, lsb)
	assert.Equal(t, 2, b.PopCount())
}

func TestBitboardPopEmpty(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.Msb())
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestShiftBitboardClampsAtEdges(t *testing.T) {
	assert.Equal(t, BbZero, ShiftBitboard(FileH.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(FileA.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(Rank8.Bb(), North))
	assert.Equal(t, BbZero, ShiftBitboard(Rank1.Bb(), South))
}

func TestShiftBitboardCardinal(t *testing.T) {
	b := SqE4.Bb()
	require.Equal(t, SqE5.Bb(), ShiftBitboard(b, North))
	require.Equal(t, SqE3.Bb(), ShiftBitboard(b, South))
	require.Equal(t, SqF4.Bb(), ShiftBitboard(b, East))
	require.Equal(t, SqD4.Bb(), ShiftBitboard(b, West))
}

func TestFileRankBb(t *testing.T) {
	assert.Equal(t, 8, FileA.Bb().PopCount())
	assert.Equal(t, 8, Rank1.Bb().PopCount())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.True(t, Rank1.Bb().Has(SqA1))
	assert.True(t, Rank1.Bb().Has(SqH1))
}

func TestPseudoAttacksKnight(t *testing.T) {
	// a knight on e4 has 8 pseudo-legal targets
	assert.Equal(t, 8, GetPseudoAttacks(Knight, SqE4).PopCount())
	// a cornered knight has only 2
	assert.Equal(t, 2, GetPseudoAttacks(Knight, SqA8).PopCount())
}

func TestPseudoAttacksKing(t *testing.T) {
	assert.Equal(t, 8, GetPseudoAttacks(King, SqE4).PopCount())
	assert.Equal(t, 3, GetPseudoAttacks(King, SqA8).PopCount())
}

func TestPawnAttacks(t *testing.T) {
	white := GetPawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.Equal(t, 2, white.PopCount())

	black := GetPawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}

func TestGetAttacksBbRookOnEmptyBoard(t *testing.T) {
	att := GetAttacksBb(Rook, SqD4, BbZero)
	assert.Equal(t, 14, att.PopCount())
	assert.True(t, att.Has(SqD1))
	assert.True(t, att.Has(SqD8))
	assert.True(t, att.Has(SqA4))
	assert.True(t, att.Has(SqH4))
}

func TestGetAttacksBbRookBlocked(t *testing.T) {
	occupied := SqD6.Bb() | SqB4.Bb()
	att := GetAttacksBb(Rook, SqD4, occupied)
	assert.True(t, att.Has(SqD6))
	assert.False(t, att.Has(SqD7))
	assert.True(t, att.Has(SqB4))
	assert.False(t, att.Has(SqA4))
}

func TestGetAttacksBbBishop(t *testing.T) {
	att := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.Equal(t, 13, att.PopCount())
}

func TestGetAttacksBbQueenIsUnionOfRookAndBishop(t *testing.T) {
	rook := GetAttacksBb(Rook, SqD4, BbZero)
	bishop := GetAttacksBb(Bishop, SqD4, BbZero)
	queen := GetAttacksBb(Queen, SqD4, BbZero)
	assert.Equal(t, rook|bishop, queen)
}

func TestIntermediate(t *testing.T) {
	between := Intermediate(SqA1, SqA8)
	assert.Equal(t, 6, between.PopCount())
	assert.True(t, between.Has(SqA4))
	assert.False(t, between.Has(SqA1))
	assert.False(t, between.Has(SqA8))

	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
}

func TestPassedPawnMask(t *testing.T) {
	mask := SqE4.PassedPawnMask(White)
	assert.True(t, mask.Has(SqE5))
	assert.True(t, mask.Has(SqD5))
	assert.True(t, mask.Has(SqF5))
	assert.False(t, mask.Has(SqE4))
	assert.False(t, mask.Has(SqE3))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}

func TestCastleMasks(t *testing.T) {
	assert.Equal(t, 3, KingSideCastleMask(White).PopCount())
	assert.Equal(t, 3, QueenSideCastMask(White).PopCount())
	assert.True(t, KingSideCastleMask(White).Has(SqF1))
	assert.True(t, KingSideCastleMask(White).Has(SqG1))
}

func TestSquaresBbPartitionsBoard(t *testing.T) {
	assert.Equal(t, 32, SquaresBb(White).PopCount())
	assert.Equal(t, 32, SquaresBb(Black).PopCount())
	assert.Equal(t, BbZero, SquaresBb(White)&SquaresBb(Black))
}
