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

// Package evaluator scores a chess position from the side-to-move's
// point of view. The searcher treats it as a black box: a pure
// function from Position to a centipawn Value.
package evaluator

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// totalPhase is the phase weight of the full complement of non-pawn,
// non-king material on the board; GamePhaseFactor divides by it to
// get a value between 0 (bare-king endgame) and 1 (no pieces traded).
const totalPhase = 4*phaseKnight + 4*phaseBishop + 4*phaseRook + 2*phaseQueen

const (
	phaseKnight = 1
	phaseBishop = 1
	phaseRook   = 2
	phaseQueen  = 4
)

var piecePhase = [PtLength]int{Pawn: 0, Knight: phaseKnight, Bishop: phaseBishop, Rook: phaseRook, Queen: phaseQueen, King: 0}

// Evaluator scores positions by material plus piece-square tables,
// blended between midgame and endgame tables by the remaining
// non-pawn material on the board.
type Evaluator struct{}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores p from the perspective of the side to move. It is
// pure and referentially transparent: Evaluate(flip(p)) always equals
// -Evaluate(p).
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	us := p.NextPlayer()

	var score Score
	score.MidGameValue = p.Material(White) - p.Material(Black)
	score.EndGameValue = score.MidGameValue

	if config.Settings.Eval.UsePositionalEval {
		mid, end := psqtScore(p)
		score.MidGameValue += mid
		score.EndGameValue += end
	}

	// Tempo favors the side to move; it is added in White-relative
	// terms here and folds into the final flip below.
	if us == White {
		score.MidGameValue += int(config.Settings.Eval.Tempo)
	} else {
		score.MidGameValue -= int(config.Settings.Eval.Tempo)
	}

	gpf := GamePhaseFactor(p)
	value := score.ValueFromScore(gpf)

	if us == White {
		return value
	}
	return -value
}

// GamePhaseFactor returns 1.0 with a full set of minor/major pieces on
// the board and approaches 0.0 as they come off, so ValueFromScore
// leans on the midgame table early and the endgame table late. Search
// also uses it, scaled, to estimate how many moves remain when the
// UCI "go" command gives no movestogo.
func GamePhaseFactor(p *position.Position) float64 {
	phase := 0
	for _, c := range [2]Color{White, Black} {
		for pt := Knight; pt <= Queen; pt++ {
			phase += p.PiecesBb(c, pt).PopCount() * piecePhase[pt]
		}
	}
	if phase > totalPhase {
		phase = totalPhase
	}
	return float64(phase) / float64(totalPhase)
}

// psqtScore returns the White-minus-Black piece-square contribution,
// separately for the midgame and endgame tables.
func psqtScore(p *position.Position) (mid, end int) {
	for _, c := range [2]Color{White, Black} {
		sign := 1
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt <= King; pt++ {
			pieces := p.PiecesBb(c, pt)
			for pieces != BbZero {
				sq := pieces.PopLsb()
				idx := sq
				if c == Black {
					idx = sq ^ 56
				}
				mid += sign * int(midTable[pt][idx])
				end += sign * int(endTable[pt][idx])
			}
		}
	}
	return mid, end
}

// Report prints a human-readable breakdown of the last evaluation.
// A debugging aid: neither the search nor the UCI handler calls it.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("Game phase factor: %f\n", GamePhaseFactor(p)))
	report.WriteString(out.Sprintf("Eval value: %d (side to move: %s)\n", e.Evaluate(p), p.NextPlayer().String()))
	return report.String()
}
