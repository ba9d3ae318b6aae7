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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopfjager/chessforge/attacks"
	. "github.com/kopfjager/chessforge/types"
)

func TestMain(m *testing.M) {
	attacks.Init()
	attacks.Ready()
	m.Run()
}

func TestNew_StartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.Turn())
	assert.Equal(t, CastlingAny, p.Castling())
	assert.Equal(t, SqNone, p.EpTarget())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, WhiteRook, p.PieceOn(SqA1))
	assert.Equal(t, BlackQueen, p.PieceOn(SqD8))
	assert.Equal(t, 32, p.Occupied().PopCount())
}

func TestFen_RoundTrip(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.Fen())
}

func TestFromFEN_RejectsMalformed(t *testing.T) {
	_, err := FromFEN("not a fen string")
	assert.Error(t, err)

	_, err = FromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "a position with no kings must be rejected")
}

func TestFromFEN_CastlingAndEnPassant(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	assert.Equal(t, SqD6, p.EpTarget())
	assert.True(t, p.Castling().Has(CastlingWhiteOO))
	assert.True(t, p.Castling().Has(CastlingBlackOOO))
}

func TestMakeMove_QuietMoveAdvancesClocksAndTurn(t *testing.T) {
	p := New()
	m := NewMove(SqG1, SqF3, WhiteKnight, Quiet)
	next := MakeMove(p, m)
	assert.Equal(t, Black, next.Turn())
	assert.Equal(t, 1, next.HalfmoveClock())
	assert.Equal(t, 1, next.FullmoveNumber())
	assert.Equal(t, WhiteKnight, next.PieceOn(SqF3))
	assert.Equal(t, PieceNone, next.PieceOn(SqG1))
	// the original position is untouched
	assert.Equal(t, WhiteKnight, p.PieceOn(SqG1))
}

func TestMakeMove_PawnDoublePushSetsEnPassantTarget(t *testing.T) {
	p := New()
	m := NewMove(SqE2, SqE4, WhitePawn, DoublePawnPush)
	next := MakeMove(p, m)
	assert.Equal(t, SqE3, next.EpTarget())
	assert.Equal(t, 0, next.HalfmoveClock())
}

func TestMakeMove_EnPassantCaptureRemovesCapturedPawn(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	m := NewMove(SqE5, SqD6, WhitePawn, EnPassant)
	next := MakeMove(p, m)
	assert.Equal(t, WhitePawn, next.PieceOn(SqD6))
	assert.Equal(t, PieceNone, next.PieceOn(SqD5))
	assert.Equal(t, 0, next.HalfmoveClock())
}

func TestMakeMove_CastlingMovesBothPieces(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	next := MakeMove(p, NewMove(SqE1, SqG1, WhiteKing, CastleKing))
	assert.Equal(t, WhiteKing, next.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, next.PieceOn(SqF1))
	assert.Equal(t, PieceNone, next.PieceOn(SqE1))
	assert.Equal(t, PieceNone, next.PieceOn(SqH1))
	assert.False(t, next.Castling().Has(CastlingWhiteOO))
	assert.False(t, next.Castling().Has(CastlingWhiteOOO))
	assert.True(t, next.Castling().Has(CastlingBlackOO))
}

func TestMakeMove_RookMoveLosesCastlingRight(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	next := MakeMove(p, NewMove(SqA1, SqB1, WhiteRook, Quiet))
	assert.False(t, next.Castling().Has(CastlingWhiteOOO))
	assert.True(t, next.Castling().Has(CastlingWhiteOO))
}

func TestMakeMove_PromotionReplacesThePawn(t *testing.T) {
	p, err := FromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	next := MakeMove(p, NewMove(SqA7, SqA8, WhitePawn, PromoQueen))
	assert.Equal(t, WhiteQueen, next.PieceOn(SqA8))
	assert.Equal(t, PieceNone, next.PieceOn(SqA7))
}

func TestInCheck_DetectsRookCheck(t *testing.T) {
	p, err := FromFEN("R3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InCheck(p, Black))
	assert.False(t, InCheck(p, White))
}

func TestIsAttacked_PawnAttack(t *testing.T) {
	p, err := FromFEN("4k3/8/8/3p4/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsAttacked(p, SqC4, Black))
	assert.True(t, IsAttacked(p, SqE4, Black))
	assert.False(t, IsAttacked(p, SqD4, Black))
}
