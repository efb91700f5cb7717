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

package search

import (
	"sort"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/movegen"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	"github.com/corechess/engine/internal/transpositiontable"
	. "github.com/corechess/engine/internal/types"
)

// iterativeDeepening searches p one ply deeper at a time until a stop
// condition fires or maxDepth is reached, keeping the best move and PV
// of the last fully completed iteration as the result whenever the
// current one is aborted midway.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	if s.checkDrawRepAnd50(p, 2) {
		s.sendInfoStringToUci("Search start position is already a draw by repetition or the fifty move rule")
		return &Result{BestValue: ValueDraw}
	}

	rootML := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
	if rootML.Len() == 0 {
		if p.InCheck() {
			return &Result{BestValue: -ValueMate}
		}
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = s.rootMoves[:0]
	for i := 0; i < rootML.Len(); i++ {
		m := rootML.At(i)
		if s.searchLimits.Moves.Len() > 0 && !containsMove(s.searchLimits.Moves, m) {
			continue
		}
		s.rootMoves = append(s.rootMoves, rootMove{move: m, value: ValueNone})
	}
	if len(s.rootMoves) == 0 {
		for i := 0; i < rootML.Len(); i++ {
			s.rootMoves = append(s.rootMoves, rootMove{move: rootML.At(i), value: ValueNone})
		}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 && s.searchLimits.Depth < maxDepth {
		maxDepth = s.searchLimits.Depth
	}

	result := &Result{BestMove: s.rootMoves[0].move, BestValue: ValueZero}

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		s.statistics.CurrentExtraSearchDepth = iterationDepth

		var value Value
		if iterationDepth > 3 && config.Settings.Search.UsePVS {
			value = s.aspirationSearch(p, iterationDepth, result.BestValue)
		} else {
			value = s.rootSearch(p, iterationDepth, -ValueInfinite, ValueInfinite)
		}

		if s.stopConditions() && iterationDepth > 1 {
			break
		}

		sort.Slice(s.rootMoves, func(i, j int) bool { return s.rootMoves[i].value > s.rootMoves[j].value })

		result.BestMove = s.rootMoves[0].move
		result.BestValue = value
		result.Depth = iterationDepth
		result.Pv = *s.pv[0]

		s.sendIterationEndInfoToUci()

		if value.IsMateScore() {
			break
		}
		if s.stopConditions() {
			break
		}
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1)
	} else if s.tt != nil {
		if ok := p.MakeMove(result.BestMove); ok {
			result.PonderMove = s.tt.ProbeBestMove(p.ZobristKey())
			p.UnmakeMove()
		}
	}

	return result
}

// containsMove reports whether ml holds a move with the same from/to
// as m, ignoring its ordering score.
func containsMove(ml moveslice.MoveSlice, m Move) bool {
	for i := 0; i < ml.Len(); i++ {
		c := ml.At(i)
		if c.From() == m.From() && c.To() == m.To() {
			return true
		}
	}
	return false
}

// aspirationSearch tries a narrow window around previousValue first,
// widening to a full-width search whenever the narrow search fails
// high or low.
func (s *Search) aspirationSearch(p *position.Position, depth int, previousValue Value) Value {
	alpha := previousValue - aspirationWindow
	beta := previousValue + aspirationWindow

	value := s.rootSearch(p, depth, alpha, beta)

	if value <= alpha || value >= beta {
		s.statistics.AspirationResearches++
		value = s.rootSearch(p, depth, -ValueInfinite, ValueInfinite)
	}

	return value
}

// rootSearch runs one iteration's search over every root move, in the
// order left by the previous iteration (or move-generation order on
// the first), recording each move's value for the next iteration's
// ordering and the iteration's best line into s.pv[0].
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) Value {
	bestValue := -ValueInfinite

	for i := range s.rootMoves {
		move := s.rootMoves[i].move

		s.statistics.CurrentRootMoveIndex = i + 1
		s.statistics.CurrentRootMove = move
		s.sendCurrentRootMoveToUci(move, i+1)

		if !p.MakeMove(move) {
			continue
		}
		s.repetitions.Push(p.ZobristKey())

		var value Value
		if i == 0 {
			value = -s.negamax(p, depth-1, 1, -beta, -alpha)
		} else {
			value = -s.negamax(p, depth-1, 1, -alpha-1, -alpha)
			if value > alpha && value < beta {
				s.statistics.RootPvsResearches++
				value = -s.negamax(p, depth-1, 1, -beta, -alpha)
			}
		}

		s.repetitions.Pop()
		p.UnmakeMove()

		s.rootMoves[i].value = value

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				s.savePV(0, move)
				s.statistics.CurrentBestRootMove = move
				s.statistics.CurrentBestRootMoveValue = value
				if value >= beta {
					break
				}
			}
		}

		s.sendSearchUpdateToUci()

		if s.stopConditions() {
			break
		}
	}

	return bestValue
}

// negamax is the principal search routine: TT-aware, null-move
// pruning, principal-variation search with late move reductions, and
// a dispatch to quiescence once depth is exhausted.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value) Value {
	pvNode := beta-alpha > 1
	origAlpha := alpha
	key := p.ZobristKey()

	if ply > 0 && !pvNode && s.tt != nil && config.Settings.Search.UseTT {
		if tv := s.tt.ProbeScore(key, int8(depth), alpha, beta, ply); tv != ValueNone {
			s.statistics.TTHit++
			return tv
		}
		s.statistics.TTMiss++
	}

	if ply > 0 && s.checkDrawRepAnd50(p, 2) {
		return ValueDraw
	}

	if ply >= MaxDepth {
		return s.evaluate(p)
	}

	s.addNodes(1)
	if s.NodesVisited()%config.Settings.Search.NodesBetweenPolls == 0 && s.stopConditions() {
		return s.evaluate(p)
	}

	if depth <= 0 || p.HalfMoveClock() >= 100 {
		if config.Settings.Search.UseQuiescence {
			return s.qsearch(p, ply, alpha, beta)
		}
		return s.evaluate(p)
	}

	if ply > 0 && config.Settings.Search.UseMDP {
		matingValue := ValueMate - Value(ply)
		if matingValue < beta {
			beta = matingValue
			if alpha >= beta {
				s.statistics.Mdp++
				return beta
			}
		}
		matedValue := -ValueMate + Value(ply)
		if matedValue > alpha {
			alpha = matedValue
			if alpha >= beta {
				s.statistics.Mdp++
				return alpha
			}
		}
	}

	inCheck := p.InCheck()
	if inCheck && config.Settings.Search.UseExt && config.Settings.Search.UseCheckExt {
		depth++
		s.statistics.CheckExtension++
	}

	if config.Settings.Search.UseNullMove && !pvNode && !inCheck && ply > 0 && depth >= config.Settings.Search.NmpDepth &&
		p.MaterialNonPawn(p.NextPlayer()) > 0 {
		r := config.Settings.Search.NmpReduction
		p.MakeNullMove()
		nullValue := -s.negamax(p, depth-1-r, ply+1, -beta, -beta+1)
		p.UnmakeNullMove()
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	mg := s.mg[ply]
	ttMove := NoMove
	if s.tt != nil && config.Settings.Search.UseTTMove {
		ttMove = s.tt.ProbeBestMove(key)
		if ttMove != NoMove {
			s.statistics.TTMoveUsed++
		} else {
			s.statistics.NoTTMove++
		}
	}
	mg.SetPvMove(ttMove)

	ml := mg.GenerateLegalMoves(p, movegen.GenAll)
	s.reorderQuietMoves(mg, p, ml)

	bestValue := -ValueInfinite
	bestMove := NoMove
	movesSearched := 0

	for i := 0; i < ml.Len(); i++ {
		move := ml.At(i)
		if !p.MakeMove(move) {
			continue
		}
		movesSearched++
		s.repetitions.Push(p.ZobristKey())

		givesCheck := p.InCheck()
		isQuiet := !move.IsCapture() && !move.IsPromotion() && !move.IsCastling()

		var value Value
		if movesSearched == 1 {
			value = -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		} else {
			reduction := 0
			if config.Settings.Search.UseLmr && movesSearched > config.Settings.Search.LmrMovesSearched &&
				depth >= config.Settings.Search.LmrDepth && !inCheck && !givesCheck && isQuiet {
				reduction = 1
			}
			value = -s.negamax(p, depth-1-reduction, ply+1, -alpha-1, -alpha)
			if reduction > 0 && value > alpha {
				s.statistics.LmrResearches++
				value = -s.negamax(p, depth-1, ply+1, -alpha-1, -alpha)
			}
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.negamax(p, depth-1, ply+1, -beta, -alpha)
			}
		}

		s.repetitions.Pop()
		p.UnmakeMove()

		if value > bestValue {
			bestValue = value
			bestMove = move
			if value > alpha {
				alpha = value
				s.savePV(ply, move)
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if isQuiet {
						mg.StoreKiller(move)
						s.history.Update(p.NextPlayer(), move, int8(depth))
						if prev := p.LastMove(); prev != NoMove {
							s.history.StoreCounterMove(prev, move)
						}
					}
					s.storeTT(key, move, depth, beta, transpositiontable.Beta, ply)
					return beta
				}
			}
		}
	}

	if movesSearched == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -ValueMate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	bound := transpositiontable.Alpha
	if alpha > origAlpha {
		bound = transpositiontable.Exact
	}
	s.storeTT(key, bestMove, depth, bestValue, bound, ply)
	return bestValue
}

// qsearch resolves captures until the position is quiet, so the main
// search never has to evaluate a position with a hanging piece.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value) Value {
	s.addNodes(1)
	if s.NodesVisited()%config.Settings.Search.NodesBetweenPolls == 0 && s.stopConditions() {
		return alpha
	}

	if config.Settings.Search.UseQSTT && s.tt != nil {
		if tv := s.tt.ProbeScore(p.ZobristKey(), 0, alpha, beta, ply); tv != ValueNone {
			return tv
		}
	}

	standPat := s.evaluate(p)
	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if ply >= MaxDepth || p.HalfMoveClock() >= 100 {
		return standPat
	}

	mg := s.mg[ply]
	ml := mg.GenerateLegalMoves(p, movegen.GenCap)

	for i := 0; i < ml.Len(); i++ {
		move := ml.At(i)
		if !p.MakeMove(move) {
			continue
		}
		s.repetitions.Push(p.ZobristKey())
		value := -s.qsearch(p, ply+1, -beta, -alpha)
		s.repetitions.Pop()
		p.UnmakeMove()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// evaluate scores a leaf position and keeps the evaluation count.
func (s *Search) evaluate(p *position.Position) Value {
	s.statistics.Evaluations++
	s.statistics.LeafPositionsEvaluated++
	return s.eval.Evaluate(p)
}

// quietSpecialBand is the score reorderQuietMoves assigns to every
// move that already earned its place ahead of the plain quiet moves
// during generation (PV move, captures, promotions, castling,
// killers) - ml's generator sorts and then strips its own ordering
// score, so this rebuilds just enough of it to keep that group intact
// and stable while re-ranking only the plain quiet tail by history.
const quietSpecialBand = 150

// reorderQuietMoves re-ranks the plain quiet moves in ml (everything
// but the PV move, captures, promotions, castling and killers, which
// keep the relative order the generator already gave them) by
// accumulated history weight and the stored counter-move reply to
// whatever move led into this node.
func (s *Search) reorderQuietMoves(mg *movegen.Movegen, p *position.Position, ml *moveslice.MoveSlice) {
	if !config.Settings.Search.UseHistoryCounter && !config.Settings.Search.UseCounterMoves {
		return
	}

	pv := mg.PvMove()
	killers := mg.KillerMoves()
	us := p.NextPlayer()
	counter := NoMove
	if config.Settings.Search.UseCounterMoves {
		if prev := p.LastMove(); prev != NoMove {
			counter = s.history.CounterMove(prev)
		}
	}

	ml.ForEach(func(i int) {
		m := ml.At(i)
		if m.IsCapture() || m.IsPromotion() || m.IsCastling() || m == pv || m == killers[0] || m == killers[1] {
			ml.Set(i, m.WithScore(quietSpecialBand))
			return
		}
		score := 0
		if config.Settings.Search.UseHistoryCounter {
			score = int(s.history.Score(us, m))
			if score > 99 {
				score = 99
			}
		}
		if counter != NoMove && counter.From() == m.From() && counter.To() == m.To() {
			score = 100
		}
		ml.Set(i, m.WithScore(score))
	})
	ml.Sort()
}

// storeTT records a search result in the transposition table, if one
// is configured and enabled.
func (s *Search) storeTT(key position.Key, move Move, depth int, value Value, bound transpositiontable.Bound, ply int) {
	if s.tt == nil || !config.Settings.Search.UseTT {
		return
	}
	s.tt.Record(key, move, int8(depth), value, bound, ValueNone, ply)
}

// savePV copies move plus the already-known continuation from ply+1
// into the PV line at ply (the standard triangular PV table update).
func (s *Search) savePV(ply int, move Move) {
	line := s.pv[ply]
	line.Clear()
	line.PushBack(move)
	if ply+1 < len(s.pv) {
		next := s.pv[ply+1]
		for i := 0; i < next.Len(); i++ {
			line.PushBack(next.At(i))
		}
	}
}
