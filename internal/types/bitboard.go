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
	"fmt"
	"math/bits"
	"strings"

	"github.com/corechess/engine/internal/util"
)

// Bitboard is a 64 bit unsigned int with one bit per board square,
// indexed the same way as Square (a8=bit0 .. h1=bit63).
type Bitboard uint64

// Bb returns the single-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for s in b and returns the result.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s in the receiver.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s in b and returns the result.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s in the receiver.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for s is set.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard shifts every bit of b by one square in direction d,
// clearing bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b << 1) & FileAMask
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (b >> 7) & FileAMask
	case Northwest:
		return (b >> 9) & FileHMask
	case Southeast:
		return (b << 9) & FileAMask
	case Southwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the square of the least significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone
// if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the 64-bit binary representation of b.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, r).Bb()) != 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// StringGrouped renders the 64 bits grouped by byte, square a8 first.
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if b&(BbOne<<i) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", uint64(b)))
	return os.String()
}

// FileDistance returns the absolute file distance between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns the distance from sq to the nearest of the
// four central squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// GetAttacksBb returns the attack bitboard of a sliding or leaping
// piece (not Pawn) standing on sq given the board occupancy. Sliding
// pieces look the answer up in the precomputed perfect-hash attack
// tables; Knight and King ignore occupied.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Pawn:
		panic("GetAttacksBb: use GetPawnAttacks for pawns")
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attacks of a piece standing on sq on
// an otherwise empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns every square strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard { return filesWestMask[sq] }

// FilesEastMask returns every square strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard { return filesEastMask[sq] }

// FileWestMask returns the single file immediately west of sq.
func (sq Square) FileWestMask() Bitboard { return fileWestMask[sq] }

// FileEastMask returns the single file immediately east of sq.
func (sq Square) FileEastMask() Bitboard { return fileEastMask[sq] }

// RanksNorthMask returns every square strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard { return ranksNorthMask[sq] }

// RanksSouthMask returns every square strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard { return ranksSouthMask[sq] }

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard { return neighbourFilesMask[sq] }

// Ray returns the ray of squares radiating from sq in orientation o,
// on an otherwise empty board.
func (sq Square) Ray(o Orientation) Bitboard { return rays[o][sq] }

// Intermediate returns the squares strictly between sq1 and sq2 along
// a shared rank, file or diagonal (empty if they share none).
func Intermediate(sq1, sq2 Square) Bitboard { return intermediate[sq1][sq2] }

// Intermediate returns the squares strictly between sq and to.
func (sq Square) Intermediate(to Square) Bitboard { return intermediate[sq][to] }

// PassedPawnMask returns the squares on sq's file and neighbour files
// ahead of sq (in c's direction of travel) where an enemy pawn would
// stop a pawn of color c on sq from being passed.
func (sq Square) PassedPawnMask(c Color) Bitboard { return passedPawnMask[c][sq] }

// KingSideCastleMask returns the squares (excluding the king's own
// square) involved in kingside castling for c.
func KingSideCastleMask(c Color) Bitboard { return kingSideCastleMask[c] }

// QueenSideCastMask returns the squares (excluding the king's own
// square) involved in queenside castling for c.
func QueenSideCastMask(c Color) Bitboard { return queenSideCastleMask[c] }

// SquaresBb returns every square of the given color (light/dark).
func SquaresBb(c Color) Bitboard { return squaresBb[c] }

// Various constant bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF00000000000000
	Rank2_Bb Bitboard = Rank1_Bb >> (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb >> (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb >> (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb >> (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb >> (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb >> (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb >> (8 * 7)

	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// Orientation is one of the eight compass rays radiating from a
// square, used to index Square.Ray.
type Orientation uint8

const (
	N Orientation = iota
	E
	S
	W
	NE
	NW
	SE
	SW
)

// ////////////////////
// Private
// ////////////////////

func (sq Square) bitboard() Bitboard {
	return Bitboard(1) << sq
}

var (
	sqBb [SqLength]Bitboard

	rankBb [8]Bitboard
	fileBb [8]Bitboard

	squareDistance [SqLength][SqLength]int

	pawnAttacks   [2][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	rays         [8][SqLength]Bitboard
	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	squaresBb [2]Bitboard

	centerDistance [SqLength]int
)

func init() {
	squareBitboardsPreCompute()
	rankFileBbPreCompute()
	squareDistancePreCompute()
	pseudoAttacksPreCompute()
	neighbourMasksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	squareColorsPreCompute()
	centerDistancePreCompute()
	castleMasksPreCompute()
	initMagicBitboards()
}

func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

func squareBitboardsPreCompute() {
	for sq := Square(0); sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
	}
}

func rankFileBbPreCompute() {
	for r := Rank1; ; r++ {
		rankBb[r] = Rank1_Bb >> (8 * Bitboard(r))
		if r == Rank8 {
			break
		}
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileA_Bb << f
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8]
}

func squareDistancePreCompute() {
	for sq1 := Square(0); sq1 < SqNone; sq1++ {
		for sq2 := Square(0); sq2 < SqNone; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

func centerDistancePreCompute() {
	centerSquares := [4]Square{SqD4, SqE4, SqD5, SqE5}
	for sq := Square(0); sq < SqNone; sq++ {
		best := 8
		for _, c := range centerSquares {
			if d := squareDistance[sq][c]; d < best {
				best = d
			}
		}
		centerDistance[sq] = best
	}
}

func squareColorsPreCompute() {
	for sq := Square(0); sq < SqNone; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()
		if (int(f)+int(r))%2 == 0 {
			squaresBb[Black] |= sqBb[sq]
		} else {
			squaresBb[White] |= sqBb[sq]
		}
	}
}

func maskPassedPawnsPreCompute() {
	for sq := Square(0); sq < SqNone; sq++ {
		files := fileBb[sq.FileOf()] | neighbourFilesMask[sq]
		passedPawnMask[White][sq] = files & ranksNorthMask[sq]
		passedPawnMask[Black][sq] = files & ranksSouthMask[sq]
	}
}

func intermediatePreCompute() {
	for from := Square(0); from < SqNone; from++ {
		for to := Square(0); to < SqNone; to++ {
			toBb := sqBb[to]
			for o := Orientation(0); o < 8; o++ {
				if rays[o][from]&toBb != BbZero {
					intermediate[from][to] |= rays[o][from] &^ rays[o][to] &^ toBb
				}
			}
		}
	}
}

func raysPreCompute() {
	for sq := Square(0); sq < SqNone; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func neighbourMasksPreCompute() {
	for sq := Square(0); sq < SqNone; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[sq] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[sq] |= Rank1_Bb >> (8 * Bitboard(7-j))
			}
			if j < r {
				ranksSouthMask[sq] |= Rank1_Bb >> (8 * Bitboard(j))
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[sq] = fileEastMask[sq] | fileWestMask[sq]
	}
}

// pseudoAttacksPreCompute fills the leaper attack tables (king, pawn,
// knight) and the slider pseudo-attack tables (rook, bishop, queen on
// an otherwise empty board). Steps are listed for White only; negating
// the step set reproduces Black's mirrored steps, which covers all
// eight knight/king directions from the four entries given.
func pseudoAttacksPreCompute() {
	sign := [2]int{1, -1}
	steps := map[PieceType][]Direction{
		King:   {Northwest, North, Northeast, East},
		Pawn:   {Northwest, Northeast},
		Knight: {West + Northwest, East + Northeast, North + Northwest, North + Northeast},
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for sq := Square(0); sq < SqNone; sq++ {
				for _, step := range steps[pt] {
					to := int(sq) + sign[c]*int(step)
					if to < 0 || to >= SqLength {
						continue
					}
					toSq := Square(to)
					if squareDistance[sq][toSq] >= 3 {
						continue
					}
					if pt == Pawn {
						pawnAttacks[c][sq] |= sqBb[toSq]
					} else {
						pseudoAttacks[pt][sq] |= sqBb[toSq]
					}
				}
			}
		}
	}

	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}
	for sq := Square(0); sq < SqNone; sq++ {
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}
