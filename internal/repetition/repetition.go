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

// Package repetition tracks the append-ordered sequence of Zobrist
// hashes seen along the current line of play, so the searcher can
// answer "has this position occurred before" without asking Position
// itself - Position's own undo history exists for make/unmake, not for
// answering repetition queries from outside.
package repetition

import "github.com/corechess/engine/internal/position"

// initialCapacity covers a full game's worth of plies without a single
// reallocation for the overwhelming majority of games.
const initialCapacity = 256

// Stack is an append-only sequence of Zobrist keys, one push per move
// played (including moves tried and undone again by search - Pop
// mirrors UnmakeMove one for one).
type Stack struct {
	keys []position.Key
}

// NewStack creates an empty repetition stack.
func NewStack() *Stack {
	return &Stack{keys: make([]position.Key, 0, initialCapacity)}
}

// Push records the hash of the position reached by the move just made.
func (s *Stack) Push(key position.Key) {
	s.keys = append(s.keys, key)
}

// Pop removes the most recently pushed hash, mirroring an UnmakeMove.
func (s *Stack) Pop() {
	s.keys = s.keys[:len(s.keys)-1]
}

// Reset clears the stack. Call this after an irreversible move (a
// capture or a pawn move) - no position from before it can ever recur,
// so nothing before it can contribute to a future repetition.
func (s *Stack) Reset() {
	s.keys = s.keys[:0]
}

// Len returns the number of hashes currently recorded.
func (s *Stack) Len() int {
	return len(s.keys)
}

// Count returns how many times key has already occurred in the stack.
func (s *Stack) Count(key position.Key) int {
	n := 0
	for _, k := range s.keys {
		if k == key {
			n++
		}
	}
	return n
}

// IsRepeated reports whether key has already occurred at least reps
// times in the stack - the draw-by-repetition test the searcher runs
// at every node with the position's current Zobrist key and reps = 2
// (the node's own key is already on the stack when it checks, so any
// earlier occurrence is enough to call the node a draw and stop
// searching it further; a game-ending threefold claim is a rules
// concern for the UCI-facing game state, not the searcher).
func (s *Stack) IsRepeated(key position.Key, reps int) bool {
	return s.Count(key) >= reps
}
