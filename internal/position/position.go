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

// Package position represents a chess position: a 12-bitboard piece
// set plus the scalar state (side to move, castling rights, en
// passant square, half-move clock) needed to make it unique, an
// undo stack for make/unmake, and an incrementally maintained
// Zobrist hash for transposition table lookups.
//
// Create one with NewPosition() for the start position, or
// NewPositionFen(fen) for an arbitrary FEN.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/corechess/engine/internal/assert"
	myLogging "github.com/corechess/engine/internal/logging"
	. "github.com/corechess/engine/internal/types"
)

var log *logging.Logger

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is a Zobrist hash of a position, used as a transposition table
// and repetition-stack key. It needs the full 64 bits for distribution.
type Key uint64

// maxHistory bounds the make/unmake undo stack. A real game rarely
// exceeds a few hundred plies and the search only ever adds to this
// along one line at a time, so this comfortably covers both a full
// game and a deep search line hung off the last played move.
const maxHistory = 1024

// state flags for the cached HasCheck/InCheck result.
const (
	flagTBD int = iota
	flagFalse
	flagTrue
)

// Position is a mutable chess board. It is not safe for concurrent
// use - a search thread owns one Position and mutates it in place via
// MakeMove/UnmakeMove rather than copying.
type Position struct {
	zobristKey Key

	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int

	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard

	historyCounter int
	history        [maxHistory]historyState

	material        [ColorLength]int
	materialNonPawn [ColorLength]int

	hasCheckFlag int
}

type historyState struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

// NewPosition creates a position from the given FEN, or the standard
// start position if no FEN is given. Errors are swallowed (mirroring
// the common "give me a board to work with" call site); use
// NewPositionFen directly to see a parse error.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen parses fen and returns the position it describes, or
// nil and an error if fen is malformed.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("fen %q is invalid, position not created: %s", fen, err)
		return nil, err
	}
	return p, nil
}

var (
	regexFenPlacement = regexp.MustCompile(`^[pnbrqkPNBRQK1-8/]+$`)
	regexSideToMove   = regexp.MustCompile(`^[wb]$`)
	regexCastling     = regexp.MustCompile(`^(-|[KQkq]{1,4})$`)
	regexEnPassant    = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// setupBoard parses fen and fills in every field of p from scratch.
// The placement field is read in a single left-to-right, top-to-bottom
// scan: Square is numbered a8=0..h1=63 in exactly that order, so a
// rank separator needs no special handling - it falls out naturally
// once the previous rank's 8 squares have been consumed.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return errors.New("fen must not be empty")
	}
	parts := strings.Split(fen, " ")

	if !regexFenPlacement.MatchString(parts[0]) {
		return errors.New("fen placement field contains invalid characters")
	}

	sq := 0
	for _, c := range parts[0] {
		switch {
		case c == '/':
			continue
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			if sq >= SqLength {
				return errors.New("fen placement field describes more than 64 squares")
			}
			p.putPiece(piece, Square(sq))
			sq++
		}
	}
	if sq != SqLength {
		return errors.New("fen placement field does not describe exactly 64 squares")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone
	p.nextPlayer = White

	if len(parts) >= 2 {
		if !regexSideToMove.MatchString(parts[1]) {
			return errors.New("fen side-to-move field is invalid")
		}
		if parts[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	if len(parts) >= 3 {
		if !regexCastling.MatchString(parts[2]) {
			return errors.New("fen castling rights field is invalid")
		}
		for _, c := range parts[2] {
			switch c {
			case 'K':
				p.castlingRights |= WhiteKingside
			case 'Q':
				p.castlingRights |= WhiteQueenside
			case 'k':
				p.castlingRights |= BlackKingside
			case 'q':
				p.castlingRights |= BlackQueenside
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(parts) >= 4 {
		if !regexEnPassant.MatchString(parts[3]) {
			return errors.New("fen en passant field is invalid")
		}
		if parts[3] != "-" {
			p.enPassantSquare = MakeSquare(parts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			return fmt.Errorf("fen half-move clock is invalid: %w", err)
		}
		p.halfMoveClock = n
	}

	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("fen full-move number is invalid: %w", err)
		}
		if n == 0 {
			n = 1
		}
		p.nextHalfMoveNumber = 2*n - (1 - int(p.nextPlayer))
	}

	return nil
}

// MakeMove applies m to the board, updating bitboards, occupancies,
// material, castling rights, en passant state and the Zobrist hash,
// then checks whether the side that just moved left its own king in
// check. If so the move was illegal: the position is restored to
// exactly how it was before the call and MakeMove returns false. The
// caller never needs to call UnmakeMove itself in that case.
//
// m is assumed pseudo-legal (as produced by internal/movegen); this
// only re-verifies the one condition pseudo-legal generation does not
// already guarantee - that the mover's king survives the move.
// Castling's own legality (rights, empty path, king not crossing an
// attacked square) is established by the generator, not here.
func (p *Position) MakeMove(m Move) bool {
	fromSq := m.From()
	toSq := m.To()
	fromPc := p.board[fromSq]
	mover := fromPc.ColorOf()

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "MakeMove: no piece on %s for move %s", fromSq.String(), m.String())
		assert.Assert(mover == p.nextPlayer, "MakeMove: %s does not belong to side to move", fromPc.String())
	}

	tmp := p.historyCounter
	p.history[tmp] = historyState{
		zobristKey:      p.zobristKey,
		move:            m,
		fromPiece:       fromPc,
		capturedPiece:   PieceNone,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		hasCheckFlag:    p.hasCheckFlag,
	}
	p.historyCounter++

	p.clearEnPassant()

	captured := PieceNone
	switch {
	case m.IsEnPassant():
		capSq := toSq.To(mover.Opposite().PawnPushDirection())
		captured = p.removePiece(capSq)
	case m.IsCapture():
		captured = p.removePiece(toSq)
	}
	p.history[tmp].capturedPiece = captured

	p.movePiece(fromSq, toSq)

	if m.IsPromotion() {
		p.removePiece(toSq)
		p.putPiece(MakePiece(mover, m.PromotionType()), toSq)
	}

	if m.IsCastling() {
		switch toSq {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		default:
			panic("MakeMove: invalid castling target " + toSq.String())
		}
	}

	if m.IsDoublePawnPush() {
		p.enPassantSquare = toSq.To(mover.Opposite().PawnPushDirection())
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
	}

	if captured != PieceNone || fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
	p.castlingRights = p.castlingRights.Remove(CastlingRightsLostAt(fromSq) | CastlingRightsLostAt(toSq))
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Opposite()
	p.zobristKey ^= zobristBase.nextPlayer

	if p.IsSquareAttacked(p.kingSquare[mover], p.nextPlayer) {
		p.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove reverts the board to the state before the most recent
// successful MakeMove. Calling it with no prior MakeMove is a bug in
// the caller and panics under a debug build.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "UnmakeMove: no move to undo")
	}

	p.historyCounter--
	h := p.history[p.historyCounter]
	p.history[p.historyCounter] = historyState{}
	m := h.move
	mover := h.fromPiece.ColorOf()

	if m.IsCastling() {
		switch m.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	if m.IsPromotion() {
		p.removePiece(m.To())
		p.putPiece(MakePiece(mover, Pawn), m.From())
	} else {
		p.movePiece(m.To(), m.From())
	}

	if h.capturedPiece != PieceNone {
		if m.IsEnPassant() {
			capSq := m.To().To(mover.Opposite().PawnPushDirection())
			p.putPiece(h.capturedPiece, capSq)
		} else {
			p.putPiece(h.capturedPiece, m.To())
		}
	}

	// The zobrist key, castling rights and en passant square are
	// restored verbatim from history rather than un-XORed step by
	// step - every put/removePiece call above already perturbed the
	// key along the way, so overwriting it here is both simpler and
	// cheaper than threading the inverse of every XOR back through.
	p.zobristKey = h.zobristKey
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.nextHalfMoveNumber--
	p.nextPlayer = mover
}

// MakeNullMove passes the turn without moving a piece, for null-move
// pruning. The caller must not call this while in check.
func (p *Position) MakeNullMove() {
	tmp := p.historyCounter
	p.history[tmp] = historyState{
		zobristKey:      p.zobristKey,
		move:            NoMove,
		fromPiece:       PieceNone,
		capturedPiece:   PieceNone,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		hasCheckFlag:    p.hasCheckFlag,
	}
	p.historyCounter++

	p.clearEnPassant()
	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Opposite()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UnmakeNullMove reverts a MakeNullMove.
func (p *Position) UnmakeNullMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "UnmakeNullMove: no null move to undo")
	}
	p.historyCounter--
	h := p.history[p.historyCounter]
	p.history[p.historyCounter] = historyState{}
	p.zobristKey = h.zobristKey
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Opposite()
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
// It works in reverse: place each attacker type on sq and see whether
// its attack set hits a real piece of that type and color (pawn
// attacks are generated from the opposite color's perspective, since
// "does a white pawn attack sq" and "what does a pawn standing on sq
// attack, looking the other way" are the same set of squares).
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Opposite(), sq)&p.piecesBb[by][Pawn] != BbZero {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != BbZero {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != BbZero {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != BbZero {
		return true
	}
	if GetAttacksBb(Rook, sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != BbZero {
		return true
	}
	return false
}

// IsLegalMove reports whether m can be played on the current position
// without leaving the mover's own king in check. It tries the move via
// MakeMove/UnmakeMove rather than reproducing pin/discovered-check
// detection separately - MakeMove already has to make this exact
// determination to decide whether to keep or revert the move, so a
// second, independent implementation here would just be a second place
// for that logic to go stale.
func (p *Position) IsLegalMove(m Move) bool {
	if ok := p.MakeMove(m); ok {
		p.UnmakeMove()
		return true
	}
	return false
}

// IsInCheck reports whether color's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.kingSquare[c], c.Opposite())
}

// InCheck reports whether the side to move is in check, caching the
// result until the next MakeMove/UnmakeMove/MakeNullMove/UnmakeNullMove
// invalidates it - search calls this on every node, so the cache turns
// repeated calls within one node into a single array read.
func (p *Position) InCheck() bool {
	if p.hasCheckFlag == flagTBD {
		if p.IsInCheck(p.nextPlayer) {
			p.hasCheckFlag = flagTrue
		} else {
			p.hasCheckFlag = flagFalse
		}
	}
	return p.hasCheckFlag == flagTrue
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HasInsufficientMaterial reports whether neither side has enough
// material left to force a checkmate: no pawns, and each side has at
// most a single minor piece besides its king (bare kings, minor
// against bare king, or minor against minor). It does not attempt the
// teacher's finer-grained cases (opposite-colored bishops, KNN vs K,
// bishop pair exceptions) - those affect evaluation quality, not the
// correctness of the draw rule this implements.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	if p.piecesBb[White][Pawn] == BbZero && p.piecesBb[Black][Pawn] == BbZero {
		if p.materialNonPawn[White] <= Bishop.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf() {
			return true
		}
	}
	return false
}

func (p *Position) putPiece(piece Piece, sq Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: square %s already occupied", sq.String())
	}

	p.board[sq] = piece
	if pieceType == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pieceType].PushSquare(sq)
	p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]

	p.material[color] += pieceType.ValueOf()
	if pieceType != Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
}

func (p *Position) removePiece(sq Square) Piece {
	removed := p.board[sq]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: square %s is empty", sq.String())
	}

	p.board[sq] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(sq)
	p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= zobristBase.pieces[removed][sq]

	p.material[color] -= pieceType.ValueOf()
	if pieceType != Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	return removed
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// FullMoveNumber returns the game's full-move counter (1 at the start
// of the game, incrementing after each Black move), derived from the
// internally tracked ply count.
func (p *Position) FullMoveNumber() int {
	return (p.nextHalfMoveNumber + (1 - int(p.nextPlayer))) / 2
}

// StringFen renders the position back out as a FEN string.
func (p *Position) StringFen() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('/')
	}
	fmt.Fprintf(&b, " %s %s %s %d %d",
		p.nextPlayer.String(), p.castlingRights.String(), p.enPassantSquare.String(),
		p.halfMoveClock, p.FullMoveNumber())
	return b.String()
}

// StringBoard renders an 8x8 ASCII diagram of the board, rank 8 on
// top - for debug logging and test failure messages only, never for
// UCI protocol output.
func (p *Position) StringBoard() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		fmt.Fprintf(&b, "%s ", r.String())
		for f := FileA; f <= FileH; f++ {
			fmt.Fprintf(&b, "%s ", p.board[SquareOf(f, r)].Char())
		}
		b.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

// String is an alias of StringFen.
func (p *Position) String() string {
	return p.StringFen()
}

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// GetPiece returns the piece on sq, or PieceNone if it is empty.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of color's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBb returns the bitboard of every square occupied by color.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// GetEnPassantSquare returns the current en passant target square, or
// SqNone if none is set.
func (p *Position) GetEnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the castling rights still available.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// HalfMoveClock returns the number of half-moves since the last pawn
// move or capture, for the fifty-move rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Material returns color's total material value in centipawns.
func (p *Position) Material(c Color) int { return p.material[c] }

// MaterialNonPawn returns color's material value excluding pawns.
func (p *Position) MaterialNonPawn(c Color) int { return p.materialNonPawn[c] }

// LastMove returns the most recently made move, or NoMove if the
// position has an empty history.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return NoMove
	}
	return p.history[p.historyCounter-1].move
}

// WasCapturingMove reports whether the last made move captured a piece.
func (p *Position) WasCapturingMove() bool {
	if p.historyCounter == 0 {
		return false
	}
	return p.history[p.historyCounter-1].capturedPiece != PieceNone
}
