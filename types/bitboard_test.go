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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboard_PopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 1, Bitboard(128).PopCount())
	assert.Equal(t, 3, Bitboard(7).PopCount())
}

func TestBitboard_PushPopSquare(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.Equal(t, 1, b.PopCount())
	assert.NotEqual(t, BbZero, b&SqE4.SquareBb())
	b.PopSquare(SqE4)
	assert.Equal(t, BbZero, b)
}

func TestBitboard_LsbMsbPopLsb(t *testing.T) {
	b := SqA1.SquareBb() | SqH8.SquareBb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	assert.Equal(t, SqH8, b.Lsb())
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
}

func TestShiftBitboard_NoWrap(t *testing.T) {
	b := SqH4.SquareBb()
	assert.Equal(t, BbZero, ShiftBitboard(b, East))
	b = SqA4.SquareBb()
	assert.Equal(t, BbZero, ShiftBitboard(b, West))
}

func TestFileRankBb(t *testing.T) {
	assert.Equal(t, 8, FileBb[FileA].PopCount())
	assert.Equal(t, 8, RankBb[Rank1].PopCount())
	assert.NotEqual(t, BbZero, FileBb[FileA]&SqA1.SquareBb())
	assert.Equal(t, BbZero, FileBb[FileA]&SqB1.SquareBb())
}
