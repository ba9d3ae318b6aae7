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
	"github.com/kopfjager/chessforge/moveslice"
	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

// openingPhasePly is how many full moves this kernel still considers the
// opening, for the development-off-back-rank ordering key.
const openingPhasePly = 10

// backRank returns the home rank pieces of c start the game on.
func backRank(c Color) Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// advancement reports how far square sq lies from c's own back rank,
// counted in ranks (0 on the back rank, 7 on the opponent's).
func advancement(c Color, sq Square) int {
	if c == White {
		return int(sq.RankOf())
	}
	return int(Rank8 - sq.RankOf())
}

// fileCentrality measures how close a file is to the board's center
// files (d and e); 0 is most central.
func fileCentrality(f File) int {
	d := int(f) - int(FileD)
	if d < 0 {
		d = -d
	}
	e := int(f) - int(FileE)
	if e < 0 {
		e = -e
	}
	if d < e {
		return d
	}
	return e
}

// developsOffBackRank reports whether a move, made early in the game,
// brings a non-pawn, non-king piece off its starting rank.
func developsOffBackRank(pos position.Position, m Move) bool {
	if pos.FullmoveNumber() > openingPhasePly {
		return false
	}
	pt := m.Piece().TypeOf()
	if pt == Pawn || pt == King {
		return false
	}
	return m.From().RankOf() == backRank(pos.Turn()) && m.To().RankOf() != backRank(pos.Turn())
}

// orderMoves sorts ms in place using the five-key cascade: cheaper
// movers first, more central destinations first, development moves
// first during the opening, deeper advances into enemy territory first,
// and finally higher move-kind codes (captures, promotions) first.
func orderMoves(pos position.Position, ms *moveslice.MoveSlice) {
	ms.SortBy(func(a, b Move) bool {
		if va, vb := a.Piece().TypeOf().ValueOf(), b.Piece().TypeOf().ValueOf(); va != vb {
			return va < vb
		}
		if ca, cb := fileCentrality(a.To().FileOf()), fileCentrality(b.To().FileOf()); ca != cb {
			return ca < cb
		}
		if da, db := developsOffBackRank(pos, a), developsOffBackRank(pos, b); da != db {
			return da
		}
		if aa, ab := advancement(pos.Turn(), a.To()), advancement(pos.Turn(), b.To()); aa != ab {
			return aa > ab
		}
		return a.Kind() > b.Kind()
	})
}
