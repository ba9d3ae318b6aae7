/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package attacks

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	. "github.com/kopfjager/chessforge/types"
)

var (
	bishopTable  []Bitboard
	rookTable    []Bitboard
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections   = [4]Direction{North, East, South, West}

	readySem  = semaphore.NewWeighted(1)
	initOnce  sync.Once
)

// Init acquires the readiness latch synchronously and launches table
// construction on a background goroutine, returning immediately. Callers
// (cmd/chessforge/main.go) call this once at process start; Ready blocks
// the UCI isready handler until the background goroutine releases the
// latch.
func Init() {
	initOnce.Do(func() {
		_ = readySem.Acquire(context.Background(), 1)
		go func() {
			defer readySem.Release(1)
			bishopTable = make([]Bitboard, 0x1480)
			rookTable = make([]Bitboard, 0x19000)
			initMagics(&bishopTable, &bishopMagics, &bishopDirections)
			initMagics(&rookTable, &rookMagics, &rookDirections)
		}()
	})
}

// Ready blocks until Init has completed constructing the magic tables.
// The latch is only held while Init is running, so a call made before Init
// has been launched returns at once without waiting.
func Ready() {
	_ = readySem.Acquire(context.Background(), 1)
	readySem.Release(1)
}

// AttacksBb returns every square attacked by a piece of type pt standing
// on s, given the full board occupancy. Pawn attacks are not handled
// here since they depend on color; see types.PawnAttacks.
func AttacksBb(pt PieceType, s Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[s]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[s]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[s]
		mr := &rookMagics[s]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	case Knight:
		return KnightAttacks[s]
	case King:
		return KingAttacks[s]
	default:
		return BbZero
	}
}
