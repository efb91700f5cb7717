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

// Package history provides the quiet-move ordering tables the search
// updates as it runs: a [color][from][to] history counter rewarding
// moves that have caused beta cutoffs, and a counter-move table
// remembering the best reply seen so far to a given opponent move.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corechess/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// historyMax bounds historyCount; once a cell would overflow it, every
// cell for that color is halved so relative ordering survives a long
// search without the counters growing without bound.
const historyMax = 1 << 24

// History is the search's quiet-move ordering memory. It carries no
// per-ply state: entries persist (and keep informing move ordering)
// across the whole iterative-deepening run, only reset between
// searches of unrelated positions.
type History struct {
	historyCount [2][64][64]int32
	counterMoves [64][64]Move
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Update rewards a quiet move that caused a beta cutoff at depth,
// scaled by depth squared so cutoffs found deep in the tree move the
// counter more than shallow ones. Captures and promotions carry their
// own MVV-LVA-based ordering in the move generator and are not scored
// here.
func (h *History) Update(us Color, m Move, depth int8) {
	if m == NoMove || m.IsCapture() || m.IsPromotion() {
		return
	}
	from, to := m.From(), m.To()
	bonus := int32(depth) * int32(depth)
	h.historyCount[us][from][to] += bonus
	if h.historyCount[us][from][to] >= historyMax {
		h.halve(us)
	}
}

func (h *History) halve(us Color) {
	for f := range h.historyCount[us] {
		for t := range h.historyCount[us][f] {
			h.historyCount[us][f][t] /= 2
		}
	}
}

// Score returns the accumulated history weight for m, 0 for a move
// that has never caused a cutoff.
func (h *History) Score(us Color, m Move) int32 {
	return h.historyCount[us][m.From()][m.To()]
}

// StoreCounterMove records m as the reply that refuted prev (the move
// played immediately before m's position), for use as a high-priority
// quiet-move ordering hint the next time prev is encountered.
func (h *History) StoreCounterMove(prev, m Move) {
	if prev == NoMove {
		return
	}
	h.counterMoves[prev.From()][prev.To()] = m
}

// CounterMove returns the stored reply to prev, or NoMove if none is
// recorded.
func (h *History) CounterMove(prev Move) Move {
	if prev == NoMove {
		return NoMove
	}
	return h.counterMoves[prev.From()][prev.To()]
}

// Clear wipes both tables, used between searches of unrelated games.
func (h *History) Clear() {
	*h = History{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA8; sf <= SqH1; sf++ {
		for st := SqA8; st <= SqH1; st++ {
			if h.historyCount[White][sf][st] == 0 && h.historyCount[Black][sf][st] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for _, c := range [2]Color{White, Black} {
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), h.historyCount[c][sf][st]))
			}
			m := h.counterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.UCI()))
		}
	}
	return sb.String()
}
