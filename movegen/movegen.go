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

// Package movegen generates pseudo-legal and fully legal moves for a
// position, and carries the perft correctness harness.
package movegen

import (
	"github.com/kopfjager/chessforge/attacks"
	"github.com/kopfjager/chessforge/moveslice"
	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

// between returns the bitboard of squares strictly between from and to,
// walking in direction dir. Used only for the castling king/rook path,
// where from and to are always aligned along dir by construction.
func between(from, to Square, dir Direction) Bitboard {
	var bb Bitboard
	sq := from.To(dir)
	for sq != SqNone && sq != to {
		bb.PushSquare(sq)
		sq = sq.To(dir)
	}
	return bb
}

// PseudoLegalMoves generates every move available to pos's side to move
// without checking whether it leaves that side's own king in check.
func PseudoLegalMoves(pos position.Position) moveslice.MoveSlice {
	ml := moveslice.MoveSlice{}
	side := pos.Turn()
	genPawnMoves(pos, side, &ml)
	genPieceMoves(pos, side, Knight, &ml)
	genPieceMoves(pos, side, Bishop, &ml)
	genPieceMoves(pos, side, Rook, &ml)
	genPieceMoves(pos, side, Queen, &ml)
	genKingMoves(pos, side, &ml)
	genCastling(pos, side, &ml)
	return ml
}

// LegalMoves generates every fully legal move for pos's side to move:
// pseudo-legal candidates are played out with position.MakeMove and kept
// only if the mover's own king is not left in check.
func LegalMoves(pos position.Position) moveslice.MoveSlice {
	side := pos.Turn()
	pseudo := PseudoLegalMoves(pos)
	legal := moveslice.MoveSlice{}
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		next := position.MakeMove(pos, m)
		if !position.InCheck(next, side) {
			legal.PushBack(m)
		}
	}
	return legal
}

// HasLegalMove reports whether pos's side to move has any legal move at
// all, without materializing the full move list - used to tell
// stalemate/checkmate apart from an ordinary node cheaply.
func HasLegalMove(pos position.Position) bool {
	side := pos.Turn()
	pseudo := PseudoLegalMoves(pos)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		next := position.MakeMove(pos, m)
		if !position.InCheck(next, side) {
			return true
		}
	}
	return false
}

func genPawnMoves(pos position.Position, side Color, ml *moveslice.MoveSlice) {
	myPawns := pos.PiecesBb(side, Pawn)
	occupied := pos.Occupied()
	oppPieces := pos.OccupiedBy(side.Flip())
	piece := MakePiece(side, Pawn)
	forward := Direction(side.MoveDirection()) * North

	promoRank := RankBb[Rank8]
	if side == Black {
		promoRank = RankBb[Rank1]
	}

	pushOne := ShiftBitboard(myPawns, forward) &^ occupied
	doubleRank := RankBb[Rank3]
	if side == Black {
		doubleRank = RankBb[Rank6]
	}
	pushTwo := ShiftBitboard(pushOne&doubleRank, forward) &^ occupied

	promos := pushOne & promoRank
	for promos != BbZero {
		to := promos.PopLsb()
		from := to.To(-forward)
		addPromotions(ml, from, to, piece, false)
	}
	quiet := pushOne &^ promoRank
	for quiet != BbZero {
		to := quiet.PopLsb()
		from := to.To(-forward)
		ml.PushBack(NewMove(from, to, piece, Quiet))
	}
	for pushTwo != BbZero {
		to := pushTwo.PopLsb()
		from := to.To(-forward).To(-forward)
		ml.PushBack(NewMove(from, to, piece, DoublePawnPush))
	}

	for _, dir := range []Direction{West, East} {
		captures := ShiftBitboard(myPawns, forward+dir) & oppPieces
		promoCaptures := captures & promoRank
		for promoCaptures != BbZero {
			to := promoCaptures.PopLsb()
			from := to.To(-(forward + dir))
			addPromotions(ml, from, to, piece, true)
		}
		plain := captures &^ promoRank
		for plain != BbZero {
			to := plain.PopLsb()
			from := to.To(-(forward + dir))
			ml.PushBack(NewMove(from, to, piece, Capture))
		}
	}

	ep := pos.EpTarget()
	if ep != SqNone {
		for _, dir := range []Direction{West, East} {
			candidates := ShiftBitboard(ep.SquareBb(), -(forward + dir)) & myPawns
			if candidates != BbZero {
				from := candidates.PopLsb()
				ml.PushBack(NewMove(from, ep, piece, EnPassant))
			}
		}
	}
}

func addPromotions(ml *moveslice.MoveSlice, from, to Square, piece Piece, capture bool) {
	kinds := []MoveKind{PromoQueen, PromoKnight, PromoRook, PromoBishop}
	if capture {
		kinds = []MoveKind{PromoCapQueen, PromoCapKnight, PromoCapRook, PromoCapBishop}
	}
	for _, k := range kinds {
		ml.PushBack(NewMove(from, to, piece, k))
	}
}

func genPieceMoves(pos position.Position, side Color, pt PieceType, ml *moveslice.MoveSlice) {
	occupied := pos.Occupied()
	ownPieces := pos.OccupiedBy(side)
	piece := MakePiece(side, pt)
	pieces := pos.PiecesBb(side, pt)
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := attacks.AttacksBb(pt, from, occupied) &^ ownPieces
		for targets != BbZero {
			to := targets.PopLsb()
			if pos.PieceOn(to) != PieceNone {
				ml.PushBack(NewMove(from, to, piece, Capture))
			} else {
				ml.PushBack(NewMove(from, to, piece, Quiet))
			}
		}
	}
}

func genKingMoves(pos position.Position, side Color, ml *moveslice.MoveSlice) {
	from := pos.KingSquare(side)
	ownPieces := pos.OccupiedBy(side)
	piece := MakePiece(side, King)
	targets := KingAttacks[from] &^ ownPieces
	for targets != BbZero {
		to := targets.PopLsb()
		if pos.PieceOn(to) != PieceNone {
			ml.PushBack(NewMove(from, to, piece, Capture))
		} else {
			ml.PushBack(NewMove(from, to, piece, Quiet))
		}
	}
}

func genCastling(pos position.Position, side Color, ml *moveslice.MoveSlice) {
	cr := pos.Castling()
	if cr == CastlingNone {
		return
	}
	occupied := pos.Occupied()
	opp := side.Flip()

	kingSide, queenSide := CastlingWhiteOO, CastlingWhiteOOO
	kingFrom, kingTo, queenTo := SqE1, SqG1, SqC1
	kingPath, queenPath := []Square{SqE1, SqF1, SqG1}, []Square{SqE1, SqD1, SqC1}
	piece := MakePiece(side, King)
	if side == Black {
		kingSide, queenSide = CastlingBlackOO, CastlingBlackOOO
		kingFrom, kingTo, queenTo = SqE8, SqG8, SqC8
		kingPath, queenPath = []Square{SqE8, SqF8, SqG8}, []Square{SqE8, SqD8, SqC8}
	}

	rookFromKingSide := kingFrom.To(East).To(East).To(East)
	rookFromQueenSide := kingFrom.To(West).To(West).To(West).To(West)

	if cr.Has(kingSide) && between(kingFrom, rookFromKingSide, East)&occupied == BbZero {
		if squaresSafe(pos, kingPath, opp) {
			ml.PushBack(NewMove(kingFrom, kingTo, piece, CastleKing))
		}
	}
	if cr.Has(queenSide) && between(kingFrom, rookFromQueenSide, West)&occupied == BbZero {
		if squaresSafe(pos, queenPath, opp) {
			ml.PushBack(NewMove(kingFrom, queenTo, piece, CastleQueen))
		}
	}
}

func squaresSafe(pos position.Position, squares []Square, by Color) bool {
	for _, sq := range squares {
		if position.IsAttacked(pos, sq, by) {
			return false
		}
	}
	return true
}
