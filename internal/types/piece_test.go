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
)

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf(), "color of %v", p)
			assert.Equal(t, pt, p.TypeOf(), "type of %v", p)
			assert.True(t, p.IsValid())
		}
	}
}

func TestPieceModuloScheme(t *testing.T) {
	// color = index/6, type = index%6, per the packed encoding.
	assert.EqualValues(t, 0, WhitePawn)
	assert.EqualValues(t, 5, WhiteKing)
	assert.EqualValues(t, 6, BlackPawn)
	assert.EqualValues(t, 11, BlackKing)
	assert.EqualValues(t, 12, PieceNone)
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, "P", WhitePawn.Char())
	assert.Equal(t, "p", BlackPawn.Char())
	assert.Equal(t, "K", WhiteKing.Char())
	assert.Equal(t, "k", BlackKing.Char())
	assert.Equal(t, "-", PieceNone.Char())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhiteQueen, PieceFromChar("Q"))
	assert.Equal(t, BlackKnight, PieceFromChar("n"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
	assert.Equal(t, PieceNone, PieceFromChar(""))
}

func TestPieceTypeValue(t *testing.T) {
	assert.Equal(t, 100, Pawn.ValueOf())
	assert.Equal(t, 900, Queen.ValueOf())
	assert.Equal(t, 0, King.ValueOf())
}
