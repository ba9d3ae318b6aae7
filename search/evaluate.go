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
	"github.com/kopfjager/chessforge/movegen"
	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

// centipawnValue holds this kernel's own material weights, indexed by
// PieceType. King is never counted - checkmate is scored separately.
var centipawnValue = [PtLength]Value{
	PtNone: 0,
	King:   0,
	Pawn:   100,
	Knight: 300,
	Bishop: 320,
	Rook:   500,
	Queen:  900,
}

// Evaluate scores pos from the perspective of the side to move: positive
// is good for the mover, negative is good for the opponent. A position
// with no legal move is scored as checkmate or stalemate; everything else
// falls back to material balance.
func Evaluate(pos position.Position) Value {
	if !movegen.HasLegalMove(pos) {
		if position.InCheck(pos, pos.Turn()) {
			return -ValueCheckMate
		}
		return ValueDraw
	}
	return materialBalance(pos)
}

// materialBalance sums centipawn weights across the board, relative to
// the side to move.
func materialBalance(pos position.Position) Value {
	side := pos.Turn()
	other := side.Flip()
	var balance Value
	for pt := Pawn; pt <= Queen; pt++ {
		count := Value(pos.PiecesBb(side, pt).PopCount())
		oppCount := Value(pos.PiecesBb(other, pt).PopCount())
		balance += (count - oppCount) * centipawnValue[pt]
	}
	return balance
}
