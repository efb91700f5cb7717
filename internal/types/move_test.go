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

func TestNewMoveRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, FlagDoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.True(t, m.IsDoublePawnPush())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.UCI())
}

func TestNewPromotionMove(t *testing.T) {
	m := NewPromotionMove(SqE7, SqE8, WhitePawn, Queen, FlagNone)
	require.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.UCI())
}

func TestMoveCaptureAndEnPassantFlags(t *testing.T) {
	m := NewMove(SqD5, SqE6, WhitePawn, FlagCapture|FlagEnPassant)
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsEnPassant())
	assert.False(t, m.IsCastling())
}

func TestMoveCastlingFlag(t *testing.T) {
	m := NewMove(SqE1, SqG1, WhiteKing, FlagCastling)
	assert.True(t, m.IsCastling())
	assert.False(t, m.IsCapture())
}

func TestMoveScore(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, FlagNone)
	scored := m.WithScore(200)
	assert.Equal(t, 200, scored.Score())
	// score bits must not perturb the move's identity fields
	assert.Equal(t, m.From(), scored.From())
	assert.Equal(t, m.To(), scored.To())
	assert.Equal(t, m.Piece(), scored.Piece())

	clamped := m.WithScore(9000)
	assert.Equal(t, 255, clamped.Score())
}

func TestNoMoveIsInvalid(t *testing.T) {
	assert.False(t, NoMove.IsValid())
	assert.Equal(t, "0000", NoMove.String())
}
