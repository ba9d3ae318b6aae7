/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package search

import (
	"github.com/kopfjager/chessforge/logging"
	"github.com/kopfjager/chessforge/movegen"
	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

var log = logging.GetSearchLog()

// Search runs a fixed-depth alpha-beta negamax search from pos and
// returns the best move found together with its value and the number of
// nodes visited. depth must be >= 1; a depth of 0 has no best move to
// report and returns the static evaluation instead.
func Search(pos position.Position, depth int) Result {
	log.Debugf("search starting: depth=%d fen=%s", depth, pos.Fen())

	var nodesVisited int64

	if depth <= 0 {
		result := Result{BestMove: MoveNone, Value: Evaluate(pos), NodesVisited: 1}
		log.Debugf("search finished: %s", result)
		return result
	}

	moves := movegen.LegalMoves(pos)
	orderMoves(pos, &moves)

	alpha := -ValueInf
	beta := ValueInf
	best := MoveNone
	bestValue := ValueNA

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := position.MakeMove(pos, m)
		nodesVisited++
		value := -negamax(next, depth-1, -beta, -alpha, &nodesVisited)
		if best == MoveNone || value > bestValue {
			bestValue = value
			best = m
		}
		if value > alpha {
			alpha = value
		}
	}

	if best == MoveNone {
		// no legal move at the root: return the terminal evaluation
		bestValue = Evaluate(pos)
	}

	result := Result{BestMove: best, Value: bestValue, NodesVisited: nodesVisited}
	log.Debugf("search finished: %s", result)
	return result
}

// negamax searches pos to depth plies using alpha-beta pruning, returning
// a value relative to the side to move. No quiescence extension is
// performed at depth 0, so captures hanging right past the horizon are a
// known blind spot.
func negamax(pos position.Position, depth int, alpha Value, beta Value, nodesVisited *int64) Value {
	if depth == 0 {
		return Evaluate(pos)
	}

	moves := movegen.LegalMoves(pos)
	if moves.Len() == 0 {
		return Evaluate(pos)
	}
	orderMoves(pos, &moves)

	best := -ValueInf
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		next := position.MakeMove(pos, m)
		*nodesVisited++
		value := -negamax(next, depth-1, -beta, -alpha, nodesVisited)
		if value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
