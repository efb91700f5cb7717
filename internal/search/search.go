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

// Package search implements iterative-deepening alpha-beta search with
// a transposition table, quiescence search, null-move pruning, late
// move reductions and principal-variation search. It runs the search
// on its own goroutine so the UCI front end stays responsive to
// "stop" while a search is in flight.
package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corechess/engine/internal/config"
	"github.com/corechess/engine/internal/evaluator"
	"github.com/corechess/engine/internal/history"
	myLogging "github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/movegen"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	"github.com/corechess/engine/internal/repetition"
	"github.com/corechess/engine/internal/transpositiontable"
	. "github.com/corechess/engine/internal/types"
	"github.com/corechess/engine/internal/util"
)

// MaxDepth bounds the per-ply slices (move generators, PV lines) the
// search pre-allocates. No iterative-deepening iteration may exceed it.
const MaxDepth = 128

// out formats Statistics for logging with a thousands separator.
var out = message.NewPrinter(language.German)

// Result is what a completed (or aborted) search reports back.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value
	SearchTime time.Duration
	Depth      int
	ExtraDepth int
	Pv         moveslice.MoveSlice
}

func (r Result) String() string {
	return fmt.Sprintf("Best Move: %s (%d) Ponder Move: %s Depth: %d/%d Time: %s",
		r.BestMove.UCI(), r.BestValue, r.PonderMove.UCI(), r.Depth, r.ExtraDepth, r.SearchTime)
}

// rootMove pairs a root move with the value the last completed
// iteration assigned to it, so the next iteration can search the
// strongest candidates first. Move itself carries only an 8-bit
// ordering score, not a centipawn-range value, so root move ordering
// needs this small wrapper instead.
type rootMove struct {
	move  Move
	value Value
}

// Reporter receives progress and result notifications from a running
// search. The UCI front end implements this to turn them into "info"
// and "bestmove" output; passing nil is fine, the search then just
// logs instead.
type Reporter interface {
	SendInfoString(info string)
	SendCurrentRootMove(currMove Move, moveNumber int)
	SendSearchUpdate(depth, seldepth int, nodes, nps uint64, duration time.Duration, hashfull int)
	SendIterationEndInfo(depth, seldepth int, value Value, nodes, nps uint64, duration time.Duration, pv moveslice.MoveSlice)
	SendResult(bestMove, ponderMove Move)
}

// Search drives one UCI engine's worth of search state: the
// transposition table, history/killer heuristics, the repetition
// stack, and the goroutine running the current search.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	reporter Reporter

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt          *transpositiontable.Table
	eval        *evaluator.Evaluator
	history     *history.History
	repetitions *repetition.Stack

	mu               sync.Mutex
	stopFlag         bool
	startTime        time.Time
	timeLimit        time.Duration
	extraTime        time.Duration
	nodesVisited     uint64
	hasResult        bool
	lastSearchResult *Result

	currentPosition *position.Position
	searchLimits    *Limits

	mg        []*movegen.Movegen
	pv        []*moveslice.MoveSlice
	rootMoves []rootMove

	lastUciUpdateTime time.Time

	statistics Statistics
}

// NewSearch creates a ready to use Search instance. Call IsReady once
// before the first search to pre-allocate the transposition table.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
		repetitions:   repetition.NewStack(),
	}
}

// NewGame resets everything that must not survive a "ucinewgame".
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history.Clear()
	s.repetitions.Reset()
}

// SetReporter installs the Reporter the search sends progress to.
func (s *Search) SetReporter(r Reporter) {
	s.reporter = r
}

// GetReporter returns the currently installed Reporter, or nil.
func (s *Search) GetReporter() Reporter {
	return s.reporter
}

// IsReady makes sure the transposition table is allocated and logs
// that the search is ready. It sends nothing through the Reporter.
func (s *Search) IsReady() {
	s.initialize()
	s.log.Info("Search ready")
}

// StartSearch starts a search for p under sl on its own goroutine and
// returns once the goroutine has finished its own setup.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(&p, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search to abort at the next poll
// point and waits for it to actually stop.
func (s *Search) StopSearch() {
	s.mu.Lock()
	s.stopFlag = true
	s.mu.Unlock()
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently in flight.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any in-flight search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// ClearHash empties the transposition table. Refused while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.log.Warning("Cannot clear hash while searching")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
	}
}

// ResizeCache rebuilds the transposition table at the configured size.
// Refused while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.log.Warning("Cannot resize cache while searching")
		return
	}
	s.tt = nil
	s.initialize()
	util.GcWithStats()
}

// LastSearchResult returns the most recently completed search's result.
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// NodesVisited reports the node count of the current or last search.
func (s *Search) NodesVisited() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodesVisited
}

// Statistics returns a copy of the current or last search's statistics.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// run is the body of the search goroutine started by StartSearch.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.mu.Lock()
	s.startTime = time.Now()
	s.stopFlag = false
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.mu.Unlock()

	s.lastUciUpdateTime = s.startTime
	s.currentPosition = p
	s.searchLimits = sl

	s.initialize()
	s.setupSearchLimits(p, sl)
	if s.searchLimits.TimeControl {
		s.startTimer()
	}

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	s.slog.Infof("Starting search on %s. PVS=%t Quiescence=%t TT=%t",
		p.StringFen(), config.Settings.Search.UsePVS, config.Settings.Search.UseQuiescence, config.Settings.Search.UseTT)

	s.initSemaphore.Release(1)

	searchResult := s.iterativeDeepening(p)

	if s.searchLimits.Infinite {
		for !s.stopConditionsLocked() {
			time.Sleep(5 * time.Millisecond)
		}
	}

	s.mu.Lock()
	s.lastSearchResult = searchResult
	s.hasResult = true
	s.stopFlag = true
	searchTime := time.Since(s.startTime)
	nodes := s.nodesVisited
	s.mu.Unlock()

	searchResult.SearchTime = searchTime
	s.slog.Infof("Search finished after %s. %d nodes, %s nps. Result: %s",
		searchTime, nodes, out.Sprintf("%d", util.Nps(nodes, searchTime)), searchResult.String())

	s.sendResult(*searchResult)
}

// initialize lazily allocates the transposition table.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT && s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSize
		if sizeInMByte == 0 {
			sizeInMByte = 64
		}
		s.tt = transpositiontable.NewTable(sizeInMByte)
	}
}

// stopConditionsLocked reports whether the running search must stop
// now. It must be called with s.mu held.
func (s *Search) stopConditionsLocked() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	if s.searchLimits.TimeControl && time.Since(s.startTime) >= s.timeLimit+s.extraTime {
		s.stopFlag = true
	}
	return s.stopFlag
}

// stopConditions is polled from inside the hot move loop, but only
// every NodesBetweenPolls nodes, never on every single node.
func (s *Search) stopConditions() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopConditionsLocked()
}

func (s *Search) addNodes(n uint64) {
	s.mu.Lock()
	s.nodesVisited += n
	s.mu.Unlock()
}

// setupSearchLimits logs the active limits and derives a time budget.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
	}
	s.slog.Infof("Search limits: infinite=%t depth=%d nodes=%d mate=%d timeControl=%t moveTime=%s",
		sl.Infinite, sl.Depth, sl.Nodes, sl.Mate, sl.TimeControl, sl.MoveTime)
}

// setupTimeControl derives the time budget for this search from the
// remaining clock, increment and moves-to-go, biased by how much
// material is left on the board when moves-to-go is unknown.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		t := sl.MoveTime - 20*time.Millisecond
		if t < time.Millisecond {
			t = time.Millisecond
		}
		return t
	}

	myTime := sl.WhiteTime
	myInc := sl.WhiteInc
	if p.NextPlayer() == Black {
		myTime = sl.BlackTime
		myInc = sl.BlackInc
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = 15 + int64(25*evaluator.GamePhaseFactor(p))
	}

	estimate := (myTime + time.Duration(movesLeft-1)*myInc) / time.Duration(movesLeft)
	if estimate < 100*time.Millisecond {
		estimate = estimate * 8 / 10
	} else {
		estimate = estimate * 9 / 10
	}
	if estimate < time.Millisecond {
		estimate = time.Millisecond
	}
	return estimate
}

// startTimer launches a goroutine that sets stopFlag once timeLimit
// plus extraTime has elapsed.
func (s *Search) startTimer() {
	timerStart := time.Now()
	go func() {
		for {
			s.mu.Lock()
			limit := s.timeLimit + s.extraTime
			stopped := s.stopFlag
			s.mu.Unlock()
			if stopped {
				return
			}
			if time.Since(timerStart) >= limit {
				s.mu.Lock()
				s.stopFlag = true
				s.mu.Unlock()
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
}

// checkDrawRepAnd50 reports whether p is a draw by repetition (the
// current key has occurred reps times already on the repetition
// stack) or by the fifty-move rule.
func (s *Search) checkDrawRepAnd50(p *position.Position, reps int) bool {
	return s.repetitions.IsRepeated(p.ZobristKey(), reps) || p.HalfMoveClock() >= 100
}

// --- UCI reporting -------------------------------------------------

func (s *Search) sendResult(r Result) {
	if s.reporter != nil {
		s.reporter.SendResult(r.BestMove, r.PonderMove)
		return
	}
	s.log.Infof("uci >> bestmove %s ponder %s", r.BestMove.UCI(), r.PonderMove.UCI())
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.reporter != nil {
		s.reporter.SendInfoString(msg)
		return
	}
	s.log.Info(msg)
}

func (s *Search) sendCurrentRootMoveToUci(m Move, moveNumber int) {
	if s.reporter != nil {
		s.reporter.SendCurrentRootMove(m, moveNumber)
	}
}

func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	nodes := s.NodesVisited()
	duration := time.Since(s.startTime)
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.reporter != nil {
		s.reporter.SendSearchUpdate(s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth,
			nodes, s.getNps(), duration, hashfull)
		return
	}
	s.log.Infof("uci >> info depth %d nodes %d nps %d hashfull %d",
		s.statistics.CurrentSearchDepth, nodes, s.getNps(), hashfull)
}

func (s *Search) sendIterationEndInfoToUci() {
	nodes := s.NodesVisited()
	duration := time.Since(s.startTime)
	if s.reporter != nil {
		s.reporter.SendIterationEndInfo(s.statistics.CurrentIterationDepth, s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue, nodes, s.getNps(), duration, *s.pv[0])
		return
	}
	s.log.Infof("uci >> info depth %d score cp %d nodes %d nps %d pv %s",
		s.statistics.CurrentIterationDepth, s.statistics.CurrentBestRootMoveValue, nodes, s.getNps(), s.pv[0].StringUci())
}

func (s *Search) getNps() uint64 {
	nps := util.Nps(s.NodesVisited(), time.Since(s.startTime))
	if nps > 15_000_000 {
		return 0
	}
	return nps
}
