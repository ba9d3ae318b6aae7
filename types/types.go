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

// Package types contains the small value types shared by every other package:
// squares, files, ranks, colors, pieces, moves, castling rights and bitboards.
// Many of these would be enum candidates in other languages but Go has none.
package types

import (
	"github.com/kopfjager/chessforge/logging"
)

var log = logging.GetLog()

var initialized = false

// init precomputes non-sliding attack masks (knight, king, pawn) exactly once.
func init() {
	if initialized {
		return
	}
	log.Debug("Initializing data types")
	initNonSlidingAttacks()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxDepth max search depth
	MaxDepth = 128

	// MaxMoves max number of pseudo legal moves that can occur in any position
	MaxMoves = 256

	// GamePhaseMax maximum game phase value: the sum of GamePhaseValue over
	// the full starting set of minor and major pieces (4 + 4 + 8 + 8).
	GamePhaseMax = 24
)
