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

// Package attacks builds and serves the magic-bitboard sliding attack
// tables for bishops and rooks (queens reuse both). Construction happens
// once, off the hot path; AttacksBb is the only query entry point and is
// safe to call concurrently once Init has completed.
package attacks

import (
	. "github.com/kopfjager/chessforge/types"
)

// Magic holds the per-square lookup needed to turn a blocker occupancy
// into an index into a precomputed attack table. Derived from the
// well known Stockfish "fancy magic" layout.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ = occ * m.Number
	occ = occ >> m.Shift
	return uint(occ)
}

// initMagics computes magic numbers and attack tables for all 64 squares
// along the given ray directions (diagonals for bishops, files/ranks for
// rooks), storing results into table/magics.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Seeds picked (as in Stockfish) to find valid magics quickly per rank.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler: enumerate every subset of the relevant blocker mask.
		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		for i := 0; i < size; {
			for m.Number = 0; ; {
				m.Number = Bitboard(rng.sparseRand())
				if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			// A good magic maps every occupancy subset to a distinct slot
			// holding the correct reference attack. epoch[] lets us reuse
			// the attacks table across failed attempts without zeroing it.
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack ray-casts along directions from sq until the board edge
// or an occupied square; the first blocker is included and the ray stops
// there. Only used
// during table construction, never on the search hot path.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is the xorshift64star generator Stockfish uses to search for
// magic numbers. Deterministic per seed so table construction is
// reproducible across runs.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three independent draws together so roughly 1/8th of
// the bits end up set on average, which is what makes a candidate a
// plausible magic number.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
