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

package types

// Pseudo attack tables for the pieces whose moves don't depend on
// blockers. Indexed by origin square. PawnAttacks is indexed by color
// then square since pawns capture in only one direction per side.
var (
	KnightAttacks [SqLength]Bitboard
	KingAttacks   [SqLength]Bitboard
	PawnAttacks   [ColorLength][SqLength]Bitboard
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func initNonSlidingAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())

		var knight Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		KnightAttacks[sq] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				king.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		KingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if r+1 < 8 {
			if f-1 >= 0 {
				whitePawn.PushSquare(SquareOf(File(f-1), Rank(r+1)))
			}
			if f+1 < 8 {
				whitePawn.PushSquare(SquareOf(File(f+1), Rank(r+1)))
			}
		}
		if r-1 >= 0 {
			if f-1 >= 0 {
				blackPawn.PushSquare(SquareOf(File(f-1), Rank(r-1)))
			}
			if f+1 < 8 {
				blackPawn.PushSquare(SquareOf(File(f+1), Rank(r-1)))
			}
		}
		PawnAttacks[White][sq] = whitePawn
		PawnAttacks[Black][sq] = blackPawn
	}
}
