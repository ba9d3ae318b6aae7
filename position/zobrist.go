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

package position

import (
	"math/rand"

	. "github.com/kopfjager/chessforge/types"
)

// zobrist holds the random key table a future transposition table would
// XOR together to hash a Position incrementally. Nothing in this package
// reads zobristBase yet - MakeMove does not maintain a running key, since
// no component of this kernel consumes one.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [FileLength]Key
	nextPlayer     Key
}

var zobristBase = zobrist{}

func init() {
	r := rand.New(rand.NewSource(1070372))
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.Uint64())
		}
	}
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Uint64())
	}
	for f := FileA; f < FileLength; f++ {
		zobristBase.enPassantFile[f] = Key(r.Uint64())
	}
	zobristBase.nextPlayer = Key(r.Uint64())
}
