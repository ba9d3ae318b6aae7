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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard holds one bit per square, bit 0 is a1, bit 63 is h8.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// File and rank masks, precomputed once below.
var (
	FileBb [8]Bitboard
	RankBb [8]Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= Bitboard(1) << uint(SquareOf(f, r))
		}
		FileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= Bitboard(1) << uint(SquareOf(f, r))
		}
		RankBb[r] = bb
	}
}

// SquareBb returns the single-bit bitboard for sq.
func (sq Square) SquareBb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// PushSquare sets the bit for s in b.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.SquareBb()
}

// PushSquare sets the bit for s, mutating b.
func (b *Bitboard) PushSquare(s Square) {
	*b |= s.SquareBb()
}

// PopSquare clears the bit for s in b.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.SquareBb()
}

// PopSquare clears the bit for s, mutating b.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.SquareBb()
}

// ShiftBitboard moves every set bit one step in direction d, clearing
// bits that would wrap around the a/h file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileBb[FileH]) << 1
	case West:
		return (b &^ FileBb[FileA]) >> 1
	case Northeast:
		return (b &^ FileBb[FileH]) << 9
	case Southeast:
		return (b &^ FileBb[FileH]) >> 7
	case Southwest:
		return (b &^ FileBb[FileA]) >> 9
	case Northwest:
		return (b &^ FileBb[FileA]) << 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Lsb returns the least significant set bit as a Square, or SqNone if b
// is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b
// is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and clears it from b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// Has reports whether the square's bit is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&s.SquareBb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Str returns the raw 64 character bit string, msb (h8) first.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ascii board, rank 8 at the top.
func (b Bitboard) StrBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			if b&SquareOf(f, Rank(r)).SquareBb() != 0 {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}
