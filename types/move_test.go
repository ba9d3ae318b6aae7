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

func TestNewMove_RoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, DoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, DoublePawnPush, m.Kind())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMove_Promotion(t *testing.T) {
	m := NewMove(SqA7, SqA8, WhitePawn, PromoQueen)
	assert.True(t, m.Kind().IsPromotion())
	assert.False(t, m.Kind().IsCapture())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestMove_PromotionCapture(t *testing.T) {
	m := NewMove(SqB7, SqA8, WhitePawn, PromoCapRook)
	assert.True(t, m.Kind().IsPromotion())
	assert.True(t, m.Kind().IsCapture())
	assert.Equal(t, Rook, m.PromotionType())
}

func TestMove_SetValue(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, Quiet)
	m.SetValue(123)
	assert.Equal(t, Value(123), m.ValueOf())
	m.SetValue(ValueMin)
	assert.Equal(t, ValueMin, m.ValueOf())
}

func TestMove_IsValid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.True(t, NewMove(SqE2, SqE4, WhitePawn, Quiet).IsValid())
}

func TestMoveKind_Capture(t *testing.T) {
	assert.True(t, Capture.IsCapture())
	assert.True(t, EnPassant.IsCapture())
	assert.False(t, Quiet.IsCapture())
	assert.False(t, DoublePawnPush.IsCapture())
	assert.False(t, CastleKing.IsCapture())
}
