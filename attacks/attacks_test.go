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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopfjager/chessforge/types"
)

func TestMain(m *testing.M) {
	Init()
	Ready()
	m.Run()
}

func TestRookAttacks_EmptyBoardCenter(t *testing.T) {
	att := AttacksBb(Rook, SqD4, BbZero)
	assert.Equal(t, 14, att.PopCount())
}

func TestBishopAttacks_EmptyBoardCenter(t *testing.T) {
	att := AttacksBb(Bishop, SqD4, BbZero)
	assert.Equal(t, 13, att.PopCount())
}

func TestQueenAttacks_IsUnionOfRookAndBishop(t *testing.T) {
	occ := BbZero
	rook := AttacksBb(Rook, SqD4, occ)
	bishop := AttacksBb(Bishop, SqD4, occ)
	queen := AttacksBb(Queen, SqD4, occ)
	assert.Equal(t, rook|bishop, queen)
}

func TestRookAttacks_BlockedByOccupant(t *testing.T) {
	occ := SqD4.SquareBb() | SqD6.SquareBb()
	att := AttacksBb(Rook, SqD4, occ)
	assert.True(t, att.Has(SqD5))
	assert.True(t, att.Has(SqD6))
	assert.False(t, att.Has(SqD7))
}

func TestAttacksBb_KnightAndKing(t *testing.T) {
	assert.Equal(t, KnightAttacks[SqD4], AttacksBb(Knight, SqD4, BbZero))
	assert.Equal(t, KingAttacks[SqD4], AttacksBb(King, SqD4, BbZero))
}

func TestReady_DoesNotBlockForever(t *testing.T) {
	Ready()
}
