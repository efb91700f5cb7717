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

import "github.com/corechess/engine/internal/position"

// perftCounters tallies node and move-class statistics while walking
// the full game tree to a fixed depth. It exists to validate move
// generation: a mismatch against a known-correct node count at some
// depth means the generator produces an illegal move, misses a legal
// one, or miscounts a special move class - it is not a production
// search routine.
type perftCounters struct {
	nodes      uint64
	captures   uint64
	enPassants uint64
	castles    uint64
	promotions uint64
	checks     uint64
	checkmates uint64
}

// countPerft walks every legal move to depth plies below p, using a
// fresh Movegen per ply (a Movegen reuses its move lists, so a
// recursive call on the same generator would overwrite the list this
// ply is still iterating).
func countPerft(c *perftCounters, depth int, p *position.Position, mgByDepth []*Movegen) {
	mg := mgByDepth[depth]
	moves := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if depth > 1 {
			p.MakeMove(m)
			countPerft(c, depth-1, p, mgByDepth)
			p.UnmakeMove()
			continue
		}
		captured := m.IsCapture()
		p.MakeMove(m)
		c.nodes++
		if captured {
			c.captures++
		}
		if m.IsEnPassant() {
			c.enPassants++
		}
		if m.IsCastling() {
			c.castles++
		}
		if m.IsPromotion() {
			c.promotions++
		}
		if p.InCheck() {
			c.checks++
			if !mgByDepth[0].HasLegalMove(p) {
				c.checkmates++
			}
		}
		p.UnmakeMove()
	}
}

// runPerft sets up one Movegen per ply and returns the node counts
// reachable from fen in exactly depth plies.
func runPerft(fen string, depth int) perftCounters {
	if depth < 1 {
		depth = 1
	}
	p, _ := position.NewPositionFen(fen)
	mgByDepth := make([]*Movegen, depth+1)
	for i := range mgByDepth {
		mgByDepth[i] = NewMoveGen()
	}
	var c perftCounters
	countPerft(&c, depth, p, mgByDepth)
	return c
}
