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

package movegen

import (
	"sync"

	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

// PerftCounts breaks a perft node count down by move kind.
type PerftCounts struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Perft counts the number of leaf positions reachable from pos in exactly
// depth plies, recursing synchronously.
func Perft(pos position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		nodes += Perft(position.MakeMove(pos, moves.At(i)), depth-1)
	}
	return nodes
}

// PerftWithCounts behaves like Perft but additionally classifies every
// leaf-reaching move by kind and whether it leaves the opponent in check
// or checkmate, for perft(4)-style reference-table comparisons.
func PerftWithCounts(pos position.Position, depth int) PerftCounts {
	var counts PerftCounts
	perftCountsRec(pos, depth, &counts)
	return counts
}

func perftCountsRec(pos position.Position, depth int, counts *PerftCounts) {
	if depth == 0 {
		counts.Nodes++
		return
	}
	moves := LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if depth == 1 {
			next := position.MakeMove(pos, m)
			counts.Nodes++
			if m.IsCapture() {
				counts.Captures++
			}
			if m.Kind() == EnPassant {
				counts.EnPassant++
			}
			if m.Kind() == CastleKing || m.Kind() == CastleQueen {
				counts.Castles++
			}
			if m.Kind().IsPromotion() {
				counts.Promotions++
			}
			if position.InCheck(next, next.Turn()) {
				counts.Checks++
				if !HasLegalMove(next) {
					counts.CheckMates++
				}
			}
			continue
		}
		perftCountsRec(position.MakeMove(pos, m), depth-1, counts)
	}
}

// PerftParallel fans out one goroutine per root move and sums the results,
// the one concession to concurrency this kernel's move generator makes.
func PerftParallel(pos position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var total uint64

	for i := 0; i < moves.Len(); i++ {
		next := position.MakeMove(pos, moves.At(i))
		wg.Add(1)
		go func(p position.Position) {
			defer wg.Done()
			n := Perft(p, depth-1)
			mu.Lock()
			total += n
			mu.Unlock()
		}(next)
	}
	wg.Wait()
	return total
}
