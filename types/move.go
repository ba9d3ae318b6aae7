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

package types

import (
	"fmt"
	"strings"
)

// Move is a 64bit unsigned int encoding a chess move plus a sort value
// the generator and search use for move ordering.
//
//  BITMAP (low 40 bits used, stored in a 64-bit word)
//  |-- sort value --|-- piece --|-kind-|--from--|--to--|
//  39             24 23       16 15  12 11     6 5    0
//
// kind is a 4-bit nibble distinguishing quiet moves, double pawn pushes,
// both castling sides, captures, en passant, and the four promotion
// kinds both quiet and capturing.
type Move uint64

// MoveKind identifies what a move does beyond changing from/to squares.
type MoveKind uint8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	Quiet          MoveKind = 0x0
	DoublePawnPush MoveKind = 0x1
	CastleKing     MoveKind = 0x2
	CastleQueen    MoveKind = 0x3
	Capture        MoveKind = 0x4
	EnPassant      MoveKind = 0x5
	// bit 3 set marks a promotion; bits 0-1 select the promoted piece type
	// (0=Knight 1=Bishop 2=Rook 3=Queen); bit 2 additionally set marks a
	// promotion-capture.
	PromoKnight    MoveKind = 0x8
	PromoBishop    MoveKind = 0x9
	PromoRook      MoveKind = 0xA
	PromoQueen     MoveKind = 0xB
	PromoCapKnight MoveKind = 0xC
	PromoCapBishop MoveKind = 0xD
	PromoCapRook   MoveKind = 0xE
	PromoCapQueen  MoveKind = 0xF
)

const (
	toShift    uint64 = 0
	fromShift  uint64 = 6
	kindShift  uint64 = 12
	pieceShift uint64 = 16
	valueShift uint64 = 24

	toMask    Move = 0x3F
	fromMask  Move = 0x3F << fromShift
	kindMask  Move = 0xF << kindShift
	pieceMask Move = 0xFF << pieceShift
	valueMask Move = 0xFFFF << valueShift

	// MoveNone is the zero value, never a legal move (to==from==a1).
	MoveNone Move = 0
)

// promoTypeOf maps a promotion MoveKind to the promoted piece type.
var promoTypeOf = map[MoveKind]PieceType{
	PromoKnight: Knight, PromoCapKnight: Knight,
	PromoBishop: Bishop, PromoCapBishop: Bishop,
	PromoRook: Rook, PromoCapRook: Rook,
	PromoQueen: Queen, PromoCapQueen: Queen,
}

// IsPromotion reports whether k promotes a pawn, with or without a capture.
func (k MoveKind) IsPromotion() bool {
	return k&0x8 != 0
}

// IsCapture reports whether k removes an enemy piece from the board.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || (k.IsPromotion() && k&0x4 != 0)
}

// NewMove packs a move with no sort value attached.
func NewMove(from, to Square, piece Piece, kind MoveKind) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(kind)<<kindShift |
		Move(piece)<<pieceShift
}

// NewMoveValue packs a move together with a move-ordering sort value.
func NewMoveValue(from, to Square, piece Piece, kind MoveKind, value Value) Move {
	m := NewMove(from, to, piece, kind)
	m.SetValue(value)
	return m
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// Kind returns the move's kind nibble.
func (m Move) Kind() MoveKind {
	return MoveKind((m & kindMask) >> kindShift)
}

// Piece returns the piece that is moving.
func (m Move) Piece() Piece {
	return Piece((m & pieceMask) >> pieceShift)
}

// PromotionType returns the piece type a pawn promotes to. Only
// meaningful when Kind().IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return promoTypeOf[m.Kind()]
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind().IsCapture()
}

// ValueOf returns the move's sort value, biased back from its stored
// unsigned offset (ValueNA maps to the stored zero).
func (m Move) ValueOf() Value {
	return Value(int32((m&valueMask)>>valueShift)) + ValueNA
}

// SetValue stores a sort value into the move's high 16 bits.
func (m *Move) SetValue(v Value) {
	if *m == MoveNone {
		return
	}
	*m = *m&^valueMask | Move(uint64(int32(v-ValueNA)))<<valueShift
}

// WithoutValue returns the move with its sort value cleared, useful for
// equality comparisons between moves produced by different generator
// passes.
func (m Move) WithoutValue() Move {
	return m &^ valueMask
}

// IsValid reports whether the move has valid squares and a non-none piece.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Piece().IsValid()
}

// StringUci returns the move in UCI long algebraic notation, e.g. "e2e4"
// or "a7a8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Kind().IsPromotion() {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

// String returns a descriptive representation of the move for logging.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s piece:%s kind:%d value:%d}", m.StringUci(), m.Piece().String(), m.Kind(), m.ValueOf())
}
