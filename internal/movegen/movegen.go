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

// Package movegen generates moves on a chess position: all
// pseudo-legal moves at once, legal moves filtered from those, or a
// phased on-demand stream ordered most-promising-first for use inside
// search.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/moveslice"
	"github.com/corechess/engine/internal/position"
	. "github.com/corechess/engine/internal/types"
)

var log *logging.Logger

// MaxMoves bounds the number of pseudo-legal moves reachable from any
// legal chess position, with headroom - the theoretical maximum is 218.
const MaxMoves = 256

// Move ordering score bands. The move encoding carries only an 8-bit
// unsigned score (Move.Score, bits 24-31), so unlike a centipawn-scale
// ordering value these are coarse bands wide enough apart that ties
// within a band never matter: a PV move always outranks every capture,
// a queen promotion always outranks every non-promotion, and so on.
// Within the capture band MVV-LVA still provides a real ranking; a
// finer-grained tie-break (e.g. positional value of the destination
// square) is not available here since Position does not carry a PSQT.
const (
	scorePV          = 255
	scorePromoQueen  = 246
	scoreCaptureBase = 200 // + compressed MVV-LVA delta, 0..35
	scorePromoKnight = 190
	scoreCastling    = 130
	scoreKiller1     = 120
	scoreKiller2     = 119
	scorePromoUnder  = 50 // rook/bishop promotions: almost always redundant to queening
	scoreQuiet       = 0
)

// bare strips the ordering score from m, leaving only the move's
// identity (from, to, piece, promotion, flags). PV and killer moves
// are stored and compared in this form since the same move carries a
// different score depending on which phase generated it.
func bare(m Move) Move {
	return m.WithScore(0)
}

// GenMode selects which class of moves a generation call produces.
type GenMode int

const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// on-demand generator stages, in the order fillOnDemandMoveList walks them.
const (
	odNew int8 = iota
	odPv
	od1 // pawn captures
	od2 // officer captures
	od3 // king captures
	od4 // decide whether to continue into non-captures
	od5 // pawn non-captures
	od6 // castling
	od7 // officer non-captures
	od8 // king non-captures
	odEnd
)

// Movegen generates moves for a single search thread. It is not safe
// for concurrent use; a search routine owns one Movegen per thread,
// the same way it owns one Position.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
	onDemandMoves    *moveslice.MoveSlice

	pvMove      Move
	killerMoves [2]Move

	currentIteratorKey position.Key
	currentODStage     int8
	pvServed           bool
	takeIndex          int
}

// NewMoveGen creates a ready-to-use move generator.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
		onDemandMoves:    moveslice.NewMoveSlice(MaxMoves),
		pvMove:           NoMove,
		killerMoves:      [2]Move{NoMove, NoMove},
		currentODStage:   odNew,
	}
}

// GeneratePseudoLegalMoves generates every pseudo-legal move of mode
// for the side to move. It does not check whether the mover's own
// king ends up in check; castling is the exception, since
// generateCastling already rejects a castle out of check or across an
// attacked square.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	if mode&GenCap != 0 {
		mg.generatePawnMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(p, GenCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenCap, mg.pseudoLegalMoves)
	}
	if mode&GenNonCap != 0 {
		mg.generatePawnMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateCastling(p, mg.pseudoLegalMoves)
		mg.generateOfficerMoves(p, GenNonCap, mg.pseudoLegalMoves)
		mg.generateKingMoves(p, GenNonCap, mg.pseudoLegalMoves)
	}
	mg.applyOrderingOverrides(mg.pseudoLegalMoves)
	mg.pseudoLegalMoves.Sort()
	mg.stripScores(mg.pseudoLegalMoves)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates pseudo-legal moves and filters out
// every move that leaves the mover's own king in check.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.GeneratePseudoLegalMoves(p, mode)
	mg.legalMoves.Clear()
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return p.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// applyOrderingOverrides boosts the score of the PV move and the two
// killer moves wherever they occur in ml, in a single pass over the
// whole list - this mirrors the pseudo-legal generator's single-shot
// nature; the phased on-demand path instead overrides scores once per
// stage, as each stage's moves become available (see pushKiller).
func (mg *Movegen) applyOrderingOverrides(ml *moveslice.MoveSlice) {
	ml.ForEach(func(i int) {
		m := ml.At(i)
		switch {
		case mg.pvMove != NoMove && bare(m) == mg.pvMove:
			ml.Set(i, m.WithScore(scorePV))
		case mg.killerMoves[0] != NoMove && bare(m) == mg.killerMoves[0]:
			ml.Set(i, m.WithScore(scoreKiller1))
		case mg.killerMoves[1] != NoMove && bare(m) == mg.killerMoves[1]:
			ml.Set(i, m.WithScore(scoreKiller2))
		}
	})
}

func (mg *Movegen) stripScores(ml *moveslice.MoveSlice) {
	ml.ForEach(func(i int) {
		ml.Set(i, bare(ml.At(i)))
	})
}

// GetNextMove returns the next move for p in stage order: the PV move
// first, then pawn, officer and king captures, then pawn pushes,
// castling, officer and king non-captures. Each stage is sorted on its
// own (captures best MVV-LVA first). A killer move is moved to the
// front of the stage that generates it only; it does not move ahead of
// moves from earlier stages. Returns NoMove once every move has been
// returned.
//
// Calling this again on a different position automatically resets the
// iteration; calling it again on the same position continues where
// the last call left off. Use ResetOnDemand to restart on the same
// position (e.g. after the search depth changes and killers should no
// longer be trusted against the old stage's result).
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {
	if p.ZobristKey() != mg.currentIteratorKey {
		mg.onDemandMoves.Clear()
		mg.currentODStage = odNew
		mg.pvServed = false
		mg.takeIndex = 0
		mg.currentIteratorKey = p.ZobristKey()
	}

	if mg.onDemandMoves.Len() == 0 {
		mg.fillOnDemandMoveList(p, mode)
	}

	if mg.onDemandMoves.Len() == 0 {
		mg.takeIndex = 0
		return NoMove
	}

	move := bare(mg.onDemandMoves.At(mg.takeIndex))
	mg.takeIndex++
	if mg.takeIndex >= mg.onDemandMoves.Len() {
		mg.takeIndex = 0
		mg.onDemandMoves.Clear()
	}
	return move
}

// ResetOnDemand restarts on-demand generation from scratch on the
// next GetNextMove call and forgets the PV move.
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandMoves.Clear()
	mg.currentODStage = odNew
	mg.currentIteratorKey = 0
	mg.pvMove = NoMove
	mg.pvServed = false
	mg.takeIndex = 0
}

// SetPvMove sets the move GetNextMove should return first.
func (mg *Movegen) SetPvMove(m Move) {
	mg.pvMove = bare(m)
}

// StoreKiller records m as a killer move, for the on-demand generator
// to surface as soon as it is actually generated. The two-slot table
// keeps the most recently stored killer in slot 0.
func (mg *Movegen) StoreKiller(m Move) {
	bm := bare(m)
	if bm == mg.killerMoves[0] {
		return
	}
	mg.killerMoves[1] = mg.killerMoves[0]
	mg.killerMoves[0] = bm
}

// HasLegalMove reports whether the side to move has at least one
// legal move, i.e. whether the position is not checkmate or stalemate.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	pseudo := mg.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < pseudo.Len(); i++ {
		if p.IsLegalMove(pseudo.At(i)) {
			return true
		}
	}
	return false
}

// PvMove returns the move set by SetPvMove.
func (mg *Movegen) PvMove() Move {
	return mg.pvMove
}

// KillerMoves returns the current two killer-move slots.
func (mg *Movegen) KillerMoves() [2]Move {
	return mg.killerMoves
}

// String returns a human-readable summary of the generator's state.
func (mg *Movegen) String() string {
	return fmt.Sprintf("Movegen{stage=%d pv=%s killers=[%s %s]}",
		mg.currentODStage, mg.pvMove.String(), mg.killerMoves[0].String(), mg.killerMoves[1].String())
}

var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// GetMoveFromUci matches uciMove against every legal move of p and
// returns the matching Move, or NoMove if none matches. Not cheap -
// it generates and renders every legal move as a string - so this is
// meant for parsing a UCI "position ... moves ..." command, not for
// use inside the search loop.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(strings.ToLower(uciMove))
	if matches == nil {
		return NoMove
	}
	mg.GenerateLegalMoves(p, GenAll)
	want := matches[1] + matches[2]
	for i := 0; i < mg.legalMoves.Len(); i++ {
		m := mg.legalMoves.At(i)
		if m.UCI() == want {
			return m
		}
	}
	return NoMove
}

var regexSanMove = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?[!?+#]*$`)

// GetMoveFromSan matches sanMove against every legal move of p and
// returns the matching Move, or NoMove if none matches or the string
// is ambiguous between more than one legal move.
func (mg *Movegen) GetMoveFromSan(p *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(strings.TrimSpace(sanMove))
	if matches == nil {
		return NoMove
	}
	pieceLetter := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	mg.GenerateLegalMoves(p, GenAll)

	found := NoMove
	count := 0
	for i := 0; i < mg.legalMoves.Len(); i++ {
		m := mg.legalMoves.At(i)

		if m.IsCastling() {
			castleString := "O-O"
			if m.To() == SqC1 || m.To() == SqC8 {
				castleString = "O-O-O"
			}
			if castleString == toSquare {
				found = m
				count++
			}
			continue
		}

		if m.To().String() != toSquare {
			continue
		}
		movedType := p.GetPiece(m.From()).TypeOf()
		if pieceLetter != "" {
			if movedType.Char() != pieceLetter {
				continue
			}
		} else if movedType != Pawn {
			continue
		}
		if disambFile != "" && m.From().FileOf().String() != disambFile {
			continue
		}
		if disambRank != "" && m.From().RankOf().String() != disambRank {
			continue
		}
		if promotion != "" && (!m.IsPromotion() || m.PromotionType().Char() != promotion) {
			continue
		}
		if promotion == "" && m.IsPromotion() {
			continue
		}
		found = m
		count++
	}

	if count != 1 {
		if count > 1 {
			log.Warningf("SAN move %q is ambiguous on %s", sanMove, p.StringFen())
		}
		return NoMove
	}
	return found
}

// ValidateMove reports whether m is a legal move on p.
func (mg *Movegen) ValidateMove(p *position.Position, m Move) bool {
	if m == NoMove {
		return false
	}
	bm := bare(m)
	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		if bare(legal.At(i)) == bm {
			return true
		}
	}
	return false
}

// //////////////////////////////////////////////////////
// Phased (on-demand) generation
// //////////////////////////////////////////////////////

// fillOnDemandMoveList advances the stage state machine until it has
// produced at least one move or run out of stages.
func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode) {
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		switch mg.currentODStage {
		case odNew:
			mg.currentODStage = odPv
			fallthrough
		case odPv:
			if mg.pvMove != NoMove {
				isCapture := p.OccupiedBb(p.NextPlayer().Opposite()).Has(mg.pvMove.To()) || mg.pvMove.IsEnPassant()
				switch mode {
				case GenAll:
					mg.pvServed = true
					mg.onDemandMoves.PushBack(mg.pvMove)
				case GenCap:
					if isCapture {
						mg.pvServed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				case GenNonCap:
					if !isCapture {
						mg.pvServed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				}
			}
			if mode&GenCap != 0 {
				mg.currentODStage = od1
			} else {
				mg.currentODStage = od4
			}
		case od1:
			mg.generatePawnMoves(p, GenCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.currentODStage = od2
		case od2:
			mg.generateOfficerMoves(p, GenCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.currentODStage = od3
		case od3:
			mg.generateKingMoves(p, GenCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.currentODStage = od4
		case od4:
			if mode&GenNonCap != 0 {
				mg.currentODStage = od5
			} else {
				mg.currentODStage = odEnd
			}
		case od5:
			mg.generatePawnMoves(p, GenNonCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od6
		case od6:
			mg.generateCastling(p, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od7
		case od7:
			mg.generateOfficerMoves(p, GenNonCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = od8
		case od8:
			mg.generateKingMoves(p, GenNonCap, mg.onDemandMoves)
			mg.stripPv(mg.onDemandMoves)
			mg.pushKiller(mg.onDemandMoves)
			mg.currentODStage = odEnd
		}
		if mg.onDemandMoves.Len() > 0 {
			mg.onDemandMoves.Sort()
		}
	}
}

// stripPv removes the PV move from m once it has already been served
// through its own dedicated slot (see the odPv stage): the per-piece
// generators know nothing about the PV and will produce it again
// naturally when its stage comes up, and without this it would be
// returned to the caller twice.
func (mg *Movegen) stripPv(m *moveslice.MoveSlice) {
	if !mg.pvServed || mg.pvMove == NoMove {
		return
	}
	m.Filter(func(i int) bool {
		return bare(m.At(i)) != mg.pvMove
	})
}

// pushKiller re-scores any move already in m that matches a stored
// killer. A killer move might not be valid in this position at all -
// killers are remembered per search ply, independent of which
// position is on the board - so this only has an effect once the
// matching move has actually been generated.
func (mg *Movegen) pushKiller(m *moveslice.MoveSlice) {
	changed := false
	m.ForEach(func(i int) {
		mv := m.At(i)
		switch bare(mv) {
		case mg.killerMoves[0]:
			m.Set(i, mv.WithScore(scoreKiller1))
			changed = true
		case mg.killerMoves[1]:
			m.Set(i, mv.WithScore(scoreKiller2))
			changed = true
		}
	})
	if changed {
		m.Sort()
	}
}

// //////////////////////////////////////////////////////
// Per-piece-type generators
// //////////////////////////////////////////////////////

// scoreCapture scores a capturing move by compressed MVV-LVA: the
// victim's class dominates, the attacker's class breaks ties toward
// the cheaper attacker. Range is scoreCaptureBase .. scoreCaptureBase+35.
func scoreCapture(p *position.Position, m Move, from, to Square) Move {
	victim := p.GetPiece(to).TypeOf()
	attacker := p.GetPiece(from).TypeOf()
	delta := victim.AttackerClass()*6 - attacker.AttackerClass() + 5
	return m.WithScore(scoreCaptureBase + delta)
}

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	piece := MakePiece(us, Pawn)
	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRank()
	myPawns := p.PiecesBb(us, Pawn)

	if mode&GenCap != 0 {
		oppPieces := p.OccupiedBb(us.Opposite())
		for _, side := range [2]Direction{West, East} {
			captureDir := pushDir + side
			captures := ShiftBitboard(myPawns, captureDir) & oppPieces
			for captures != BbZero {
				to := captures.PopLsb()
				from := to.To(-captureDir)
				if to.RankOf() == promoRank {
					pushPromotions(ml, from, to, piece, FlagCapture, 6)
				} else {
					ml.PushBack(scoreCapture(p, NewMove(from, to, piece, FlagCapture), from, to))
				}
			}
		}

		if ep := p.GetEnPassantSquare(); ep != SqNone {
			for _, side := range [2]Direction{West, East} {
				captureDir := pushDir + side
				src := ShiftBitboard(ep.Bb(), -captureDir) & myPawns
				if src != BbZero {
					from := src.Lsb()
					m := NewMove(from, ep, piece, FlagCapture|FlagEnPassant)
					ml.PushBack(m.WithScore(scoreCaptureBase + 5))
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		empty := ^p.OccupiedAll()
		singlePush := ShiftBitboard(myPawns, pushDir) & empty

		promoPush := singlePush & promoRank.Bb()
		for promoPush != BbZero {
			to := promoPush.PopLsb()
			from := to.To(-pushDir)
			pushPromotions(ml, from, to, piece, FlagNone, 0)
		}

		quietPush := singlePush &^ promoRank.Bb()
		for quietPush != BbZero {
			to := quietPush.PopLsb()
			from := to.To(-pushDir)
			ml.PushBack(NewMove(from, to, piece, FlagNone).WithScore(scoreQuiet))
		}

		// A double push requires the pawn to start this move on its
		// starting rank (checked on myPawns, before the first shift -
		// singlePush already carries the pawns one rank forward) and
		// both the square it crosses and its destination to be empty.
		doublePushOrigins := myPawns & us.StartingPawnRank().Bb()
		doublePushCrossed := ShiftBitboard(doublePushOrigins, pushDir) & empty
		doublePush := ShiftBitboard(doublePushCrossed, pushDir) & empty
		for doublePush != BbZero {
			to := doublePush.PopLsb()
			from := to.To(-pushDir).To(-pushDir)
			ml.PushBack(NewMove(from, to, piece, FlagDoublePawnPush).WithScore(scoreQuiet))
		}
	}
}

// pushPromotions emits the four promotion choices for a pawn move
// landing on from->to, queen first. bonus nudges a promoting capture
// slightly ahead of a promoting quiet move without leaving its band.
func pushPromotions(ml *moveslice.MoveSlice, from, to Square, piece Piece, flags MoveFlags, bonus int) {
	ml.PushBack(NewPromotionMove(from, to, piece, Queen, flags).WithScore(scorePromoQueen + bonus))
	ml.PushBack(NewPromotionMove(from, to, piece, Knight, flags).WithScore(scorePromoKnight + bonus))
	ml.PushBack(NewPromotionMove(from, to, piece, Rook, flags).WithScore(scorePromoUnder + bonus))
	ml.PushBack(NewPromotionMove(from, to, piece, Bishop, flags).WithScore(scorePromoUnder + bonus))
}

// generateCastling emits pseudo-legal castling moves, already pruned
// to the extent that the king's own path is not attacked - departing
// from the teacher, which defers that check to IsLegalMove. Position's
// MakeMove has no castling-specific legality check of its own (only
// the generic "king safe after the move" check shared by every move
// type), so the path-through-check condition has to be verified
// somewhere, and the generator already has the cheapest access to it.
// The landing square's safety is still re-verified by MakeMove like
// any other move.
func (mg *Movegen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	us := p.NextPlayer()
	them := us.Opposite()
	occupied := p.OccupiedAll()

	kingHome, kingsideThrough, kingsideTo := SqE1, SqF1, SqG1
	queensideThrough, queensideTo, rookQueenside := SqD1, SqC1, SqA1
	rookKingside := SqH1
	kingPiece := WhiteKing
	kingsideRight, queensideRight := WhiteKingside, WhiteQueenside
	if us == Black {
		kingHome, kingsideThrough, kingsideTo = SqE8, SqF8, SqG8
		queensideThrough, queensideTo, rookQueenside = SqD8, SqC8, SqA8
		rookKingside = SqH8
		kingPiece = BlackKing
		kingsideRight, queensideRight = BlackKingside, BlackQueenside
	}

	if p.IsSquareAttacked(kingHome, them) {
		return
	}
	if cr.Has(kingsideRight) && Intermediate(kingHome, rookKingside)&occupied == BbZero &&
		!p.IsSquareAttacked(kingsideThrough, them) {
		ml.PushBack(NewMove(kingHome, kingsideTo, kingPiece, FlagCastling).WithScore(scoreCastling))
	}
	if cr.Has(queensideRight) && Intermediate(kingHome, rookQueenside)&occupied == BbZero &&
		!p.IsSquareAttacked(queensideThrough, them) {
		ml.PushBack(NewMove(kingHome, queensideTo, kingPiece, FlagCastling).WithScore(scoreCastling))
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	piece := MakePiece(us, King)
	from := p.KingSquare(us)
	pseudo := GetPseudoAttacks(King, from)

	if mode&GenCap != 0 {
		captures := pseudo & p.OccupiedBb(us.Opposite())
		for captures != BbZero {
			to := captures.PopLsb()
			ml.PushBack(scoreCapture(p, NewMove(from, to, piece, FlagCapture), from, to))
		}
	}
	if mode&GenNonCap != 0 {
		quiet := pseudo &^ p.OccupiedAll()
		for quiet != BbZero {
			to := quiet.PopLsb()
			ml.PushBack(NewMove(from, to, piece, FlagNone).WithScore(scoreQuiet))
		}
	}
}

// generateOfficerMoves generates knight, bishop, rook and queen moves
// using the precomputed leaper/magic-bitboard attack tables.
func (mg *Movegen) generateOfficerMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	occupied := p.OccupiedAll()
	oppBb := p.OccupiedBb(us.Opposite())

	for pt := Knight; pt <= Queen; pt++ {
		piece := MakePiece(us, pt)
		pieces := p.PiecesBb(us, pt)
		for pieces != BbZero {
			from := pieces.PopLsb()
			attacks := GetAttacksBb(pt, from, occupied)

			if mode&GenCap != 0 {
				captures := attacks & oppBb
				for captures != BbZero {
					to := captures.PopLsb()
					ml.PushBack(scoreCapture(p, NewMove(from, to, piece, FlagCapture), from, to))
				}
			}
			if mode&GenNonCap != 0 {
				quiet := attacks &^ occupied
				for quiet != BbZero {
					to := quiet.PopLsb()
					ml.PushBack(NewMove(from, to, piece, FlagNone).WithScore(scoreQuiet))
				}
			}
		}
	}
}
