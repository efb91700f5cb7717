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

func TestSquareOrdering(t *testing.T) {
	assert.EqualValues(t, 0, SqA8)
	assert.EqualValues(t, 7, SqH8)
	assert.EqualValues(t, 56, SqA1)
	assert.EqualValues(t, 63, SqH1)
}

func TestMakeSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a8", SqA8},
		{"h8", SqH8},
		{"e4", SqE4},
		{"a1", SqA1},
		{"h1", SqH1},
		{"i1", SqNone},
		{"a9", SqNone},
		{"", SqNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MakeSquare(tc.in), "input %q", tc.in)
	}
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	require.Equal(t, SqE4, SquareOf(FileE, Rank4))
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqE8.To(North))
	assert.Equal(t, SqNone, SqE1.To(South))
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < SqNone; sq++ {
		require.Equal(t, sq, MakeSquare(sq.String()))
	}
}
