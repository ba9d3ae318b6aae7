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

package position

import (
	"fmt"

	"github.com/kopfjager/chessforge/attacks"
	. "github.com/kopfjager/chessforge/types"
)

// castlingLoss maps a square to the castling rights lost when a piece
// leaves from, or is captured on, that square - a king or rook departing
// its home square, or a rook being captured on its home square. A rook
// square strips that one right; a king square strips both of its side's.
var castlingLoss = map[Square]CastlingRights{
	SqE1: CastlingWhite,
	SqA1: CastlingWhiteOOO,
	SqH1: CastlingWhiteOO,
	SqE8: CastlingBlack,
	SqA8: CastlingBlackOOO,
	SqH8: CastlingBlackOO,
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func IsAttacked(pos Position, sq Square, by Color) bool {
	occupied := pos.Occupied()

	if attacks.AttacksBb(Knight, sq, occupied)&pos.PiecesBb(by, Knight) != BbZero {
		return true
	}
	if attacks.AttacksBb(King, sq, occupied)&pos.PiecesBb(by, King) != BbZero {
		return true
	}
	bishopLike := pos.PiecesBb(by, Bishop) | pos.PiecesBb(by, Queen)
	if attacks.AttacksBb(Bishop, sq, occupied)&bishopLike != BbZero {
		return true
	}
	rookLike := pos.PiecesBb(by, Rook) | pos.PiecesBb(by, Queen)
	if attacks.AttacksBb(Rook, sq, occupied)&rookLike != BbZero {
		return true
	}
	// Pawn attacks are color-relative: a white pawn attacks northeast and
	// northwest, so we look from sq using the *opposing* color's attack
	// pattern, mirroring the standard "attacked-by" trick.
	if PawnAttacks[by.Flip()][sq]&pos.PiecesBb(by, Pawn) != BbZero {
		return true
	}
	return false
}

// InCheck reports whether side's king currently stands on an attacked square.
func InCheck(pos Position, side Color) bool {
	return IsAttacked(pos, pos.KingSquare(side), side.Flip())
}

// MakeMove returns the position resulting from playing m on pos. pos is
// taken by value and never mutated; MakeMove always returns a new,
// independent Position, which is what lets the search walk a game tree
// without any make/unmake bookkeeping.
func MakeMove(pos Position, m Move) Position {
	next := pos

	from := m.From()
	to := m.To()
	piece := m.Piece()
	color := piece.ColorOf()
	kind := m.Kind()

	switch {
	case (kind == DoublePawnPush || kind == EnPassant || kind.IsPromotion()) && piece.TypeOf() != Pawn,
		(kind == CastleKing || kind == CastleQueen) && piece.TypeOf() != King:
		panic(fmt.Sprintf("MakeMove: move %s of kind %d does not fit piece %s in %s", m.String(), kind, piece, pos.Fen()))
	}

	next.epTarget = SqNone

	isPawnMove := piece.TypeOf() == Pawn
	isCapture := kind.IsCapture()

	switch kind {
	case EnPassant:
		capturedSq := SquareOf(to.FileOf(), from.RankOf())
		next.removePiece(capturedSq)
		next.movePiece(from, to)
	case CastleKing:
		next.movePiece(from, to)
		rookFrom, rookTo := castleRookSquares(color, CastleKing)
		next.movePiece(rookFrom, rookTo)
	case CastleQueen:
		next.movePiece(from, to)
		rookFrom, rookTo := castleRookSquares(color, CastleQueen)
		next.movePiece(rookFrom, rookTo)
	default:
		if kind.IsPromotion() {
			next.removePiece(from)
			next.removePiece(to)
			next.putPiece(MakePiece(color, m.PromotionType()), to)
		} else {
			next.movePiece(from, to)
		}
		if kind == DoublePawnPush {
			next.epTarget = SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		}
	}

	if loss, ok := castlingLoss[from]; ok {
		next.castling.Remove(loss)
	}
	if loss, ok := castlingLoss[to]; ok {
		next.castling.Remove(loss)
	}

	if isPawnMove || isCapture {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock = pos.halfmoveClock + 1
	}

	if color == Black {
		next.fullmoveNumber = pos.fullmoveNumber + 1
	}

	next.turn = pos.turn.Flip()

	return next
}

// castleRookSquares returns the rook's from/to squares for a castling move.
func castleRookSquares(c Color, kind MoveKind) (from, to Square) {
	if c == White {
		if kind == CastleKing {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kind == CastleKing {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}
