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

// Package transpositiontable implements a fixed-size, direct-mapped
// transposition table for caching search results keyed by Zobrist hash.
// Table is not thread safe; Resize and Clear must not be called while a
// search is using the table concurrently.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/corechess/engine/internal/logging"
	"github.com/corechess/engine/internal/position"
	"github.com/corechess/engine/internal/util"
	. "github.com/corechess/engine/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest table size Resize will honor.
	MaxSizeInMB = 65_536

	mb = 1024 * 1024
)

// Table is a transposition table: a fixed-size, direct-mapped array of
// Entry slots indexed by Zobrist key modulo the table size.
type Table struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// Stats holds counters on table usage, exposed for the UCI "info" and
// debug reporting paths.
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTable creates a Table sized to the largest power-of-two entry
// count that fits within sizeInMByte.
func NewTable(sizeInMByte int) *Table {
	tt := &Table{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new byte budget, discarding all
// entries. Not safe to call concurrently with a running search.
func (tt *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * mb
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/EntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}

	tt.sizeInByte = tt.maxNumberOfEntries * EntrySize
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}

	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries (%d Byte each, requested %d MByte)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// Record stores value (along with eval, the static evaluation of the
// position) under key at depth with the given bound. best seeds PV
// reconstruction and root-move reporting; pass NoMove to keep whatever
// move is already stored for this slot.
//
// Mate scores are normalized to a distance-from-this-node figure before
// they are packed, so a later probe from the same search tree node can
// restore the correct distance regardless of how deep in the tree this
// entry was originally written.
//
// Replacement policy: a slot is overwritten only if it is empty, or the
// incoming depth is at least the existing depth and the existing entry
// is not Exact - an Exact result at equal depth is worth more than a
// bound, so it is kept.
func (tt *Table) Record(key position.Key, best Move, depth int8, value Value, bound Bound, eval Value, ply int) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	e := &tt.data[tt.hash(key)]

	switch {
	case e.key == 0:
		tt.numberOfEntries++
	case e.key != key:
		tt.Stats.numberOfCollisions++
		if !(depth >= e.Depth() && e.Bound() != Exact) {
			return
		}
		tt.Stats.numberOfOverwrites++
	default:
		tt.Stats.numberOfUpdates++
	}

	e.key = key
	if best != NoMove {
		e.move = uint16(best)
	}
	e.eval = int16(eval)
	e.value = int16(normalizeMateScore(value, ply))
	e.vmeta = uint16(depth)<<depthShift | uint16(bound)<<boundShift
}

// ProbeScore returns a usable score for (key, depth, alpha, beta) at
// ply, or ValueNone if the entry is absent, too shallow to trust, or
// its bound does not let [alpha, beta] be narrowed.
func (tt *Table) ProbeScore(key position.Key, depth int8, alpha, beta Value, ply int) Value {
	if tt.maxNumberOfEntries == 0 {
		return ValueNone
	}

	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key != key || e.Depth() < depth {
		tt.Stats.numberOfMisses++
		return ValueNone
	}

	e.decreaseAge()
	tt.Stats.numberOfHits++
	value := denormalizeMateScore(Value(e.value), ply)

	switch e.Bound() {
	case Exact:
		return value
	case Alpha:
		if value <= alpha {
			return alpha
		}
	case Beta:
		if value >= beta {
			return beta
		}
	}
	return ValueNone
}

// ProbeBestMove returns the move stored for key, used for PV seeding
// and root-move reporting, or NoMove if key has no entry.
func (tt *Table) ProbeBestMove(key position.Key) Move {
	if tt.maxNumberOfEntries == 0 {
		return NoMove
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return Move(e.move)
	}
	return NoMove
}

// GetEntry returns a pointer to the slot for key if it is occupied by
// key, or nil otherwise. Unlike ProbeScore it does not touch age
// or statistics.
func (tt *Table) GetEntry(key position.Key) *Entry {
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Clear wipes all entries. Not safe to call concurrently with a
// running search.
func (tt *Table) Clear() {
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}
}

// Hashfull reports how full the table is, in permille, as UCI expects.
func (tt *Table) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a one-line summary of size and hit-rate statistics.
func (tt *Table) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied entries.
func (tt *Table) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries increases the age of every occupied entry by one (capped
// at 7), run once per search. Record's replacement policy does not
// read the age; only Entry.Age reports it.
func (tt *Table) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32)
		var wg sync.WaitGroup
		wg.Add(int(numberOfGoroutines))
		slice := tt.maxNumberOfEntries / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.maxNumberOfEntries
				}
				for n := start; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d in %d ms\n", tt.numberOfEntries, len(tt.data), elapsed.Milliseconds()))
}

func (tt *Table) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// normalizeMateScore rewrites a root-relative mate score into a
// distance-from-this-node score before it is stored, by ply plies.
func normalizeMateScore(v Value, ply int) Value {
	if v == ValueNone || !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// denormalizeMateScore reverses normalizeMateScore when a stored score
// is read back out at ply plies from the root.
func denormalizeMateScore(v Value, ply int) Value {
	if v == ValueNone || !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}
