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

// Package moveslice provides the move container used by the generator and
// the search: a deque-backed list of moves with cheap front/back access and
// a stable, repeated-criteria sort used for move ordering.
package moveslice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gammazero/deque"

	. "github.com/kopfjager/chessforge/types"
)

// MoveSlice is a list of moves backed by a deque so both ends are O(1).
// The move generator only appends at the back.
type MoveSlice struct {
	deque.Deque
}

// New creates an empty MoveSlice. The capacity hint is accepted for
// backward compatible call sites but the deque grows on demand regardless.
func New(cap int) *MoveSlice {
	return &MoveSlice{}
}

// PushBack appends a move at the end of the list.
func (ms *MoveSlice) PushBack(m Move) {
	ms.Deque.PushBack(m)
}

// PushFront prepends a move at the front of the list, used to place a
// known-good move (e.g. a principal variation move) first.
func (ms *MoveSlice) PushFront(m Move) {
	ms.Deque.PushFront(m)
}

// At returns the move at index i without removing it.
func (ms *MoveSlice) At(i int) Move {
	return ms.Deque.At(i).(Move)
}

// Set overwrites the move at index i.
func (ms *MoveSlice) Set(i int, m Move) {
	ms.Deque.Set(i, m)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return ms.Deque.Len()
}

// ForEach calls f once per index in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := 0; i < ms.Deque.Len(); i++ {
		f(i)
	}
}

// Sort orders moves by descending sort value using a stable sort, so that
// moves with equal sort values keep their stored order.
func (ms *MoveSlice) Sort() {
	ms.SortBy(func(a, b Move) bool { return a.ValueOf() > b.ValueOf() })
}

// SortBy orders moves using a caller supplied less function, stably. The
// deque has no in-place sort, so this extracts a plain slice, sorts it,
// then writes the new order back.
func (ms *MoveSlice) SortBy(less func(a, b Move) bool) {
	data := ms.Data()
	sort.SliceStable(data, func(i, j int) bool { return less(data[i], data[j]) })
	for i, m := range data {
		ms.Set(i, m)
	}
}

// Data copies all moves into a plain slice, useful for callers (e.g.
// perft fan-out) that want to range over moves without deque overhead.
func (ms *MoveSlice) Data() []Move {
	out := make([]Move, ms.Deque.Len())
	for i := range out {
		out[i] = ms.At(i)
	}
	return out
}

// Clear empties the list, retaining its backing storage.
func (ms *MoveSlice) Clear() {
	for ms.Deque.Len() > 0 {
		ms.Deque.PopBack()
	}
}

// String returns a human readable representation of every move.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	n := ms.Deque.Len()
	fmt.Fprintf(&sb, "MoveSlice: [%d] { ", n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ms.At(i).String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns a space separated list of moves in UCI notation.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	n := ms.Deque.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ms.At(i).StringUci())
	}
	return sb.String()
}
