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

package moveslice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corechess/engine/internal/types"
)

var (
	e2e4 = NewMove(SqE2, SqE4, WhitePawn, FlagNone).WithScore(10)
	d7d5 = NewMove(SqD7, SqD5, BlackPawn, FlagNone).WithScore(20)
	e4d5 = NewMove(SqE4, SqD5, WhitePawn, FlagCapture).WithScore(200)
	d8d5 = NewMove(SqD8, SqD5, BlackQueen, FlagNone).WithScore(30)
	b1c3 = NewMove(SqB1, SqC3, WhiteKnight, FlagNone).WithScore(5)
)

func TestNewMoveSlice(t *testing.T) {
	ms := NewMoveSlice(64)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 64, ms.Cap())
}

func TestMoveSlicePushPopBack(t *testing.T) {
	ms := NewMoveSlice(8)
	assert.Panics(t, func() { ms.PopBack() })

	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	assert.Equal(t, 3, ms.Len())

	assert.Equal(t, e4d5, ms.PopBack())
	assert.Equal(t, d7d5, ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestMoveSlicePushPopFront(t *testing.T) {
	ms := NewMoveSlice(8)
	assert.Panics(t, func() { ms.PopFront() })

	ms.PushFront(e2e4)
	ms.PushFront(d7d5)
	ms.PushFront(e4d5)
	assert.Equal(t, 3, ms.Len())

	assert.Equal(t, e4d5, ms.PopFront())
	assert.Equal(t, d7d5, ms.PopFront())
	assert.Equal(t, 1, ms.Len())
}

func TestMoveSliceAccess(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)

	assert.Equal(t, e2e4, ms.Front())
	assert.Equal(t, ms.At(0), ms.Front())
	assert.Equal(t, e4d5, ms.Back())
	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.Front())
}

func TestMoveSliceClear(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 8, ms.Cap())
}

func TestMoveSliceStringUci(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	assert.Equal(t, "e2e4 d7d5 e4d5", ms.StringUci())
}

func TestMoveSliceSort(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4) // score 10
	ms.PushBack(d7d5) // score 20
	ms.PushBack(e4d5) // score 200
	ms.PushBack(d8d5) // score 30
	ms.PushBack(b1c3) // score 5

	ms.Sort()

	assert.Equal(t, "e4d5 d8d5 d7d5 e2e4 b1c3", ms.StringUci())
	for i := 1; i < ms.Len(); i++ {
		assert.GreaterOrEqual(t, ms.At(i-1).Score(), ms.At(i).Score())
	}
}

func TestMoveSliceFilterAndFilterCopy(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)

	ms2 := NewMoveSlice(8)
	ms.FilterCopy(ms2, func(i int) bool { return ms.At(i) != d7d5 })
	assert.Equal(t, 3, ms.Len())
	assert.Equal(t, 2, ms2.Len())
	assert.Equal(t, "e2e4 e4d5", ms2.StringUci())

	ms.Filter(func(i int) bool { return ms.At(i) != d7d5 })
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, "e2e4 e4d5", ms.StringUci())
}

func TestMoveSliceCloneAndEquals(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)

	clone := ms.Clone()
	assert.True(t, ms.Equals(clone))

	clone.PushBack(e4d5)
	assert.False(t, ms.Equals(clone))
}

func TestMoveSliceForEachParallel(t *testing.T) {
	noOfItems := 256
	ms := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ms.PushBack(e2e4)
	}

	var mux sync.Mutex
	counter := 0
	ms.ForEachParallel(func(i int) {
		mux.Lock()
		counter++
		mux.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
}
