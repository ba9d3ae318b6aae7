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

package moveslice

import (
	"math/rand"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kopfjager/chessforge/config"
	myLogging "github.com/kopfjager/chessforge/logging"
	. "github.com/kopfjager/chessforge/types"
)

var logTest *logging.Logger

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup("")
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

var (
	e2e4 = NewMoveValue(SqE2, SqE4, WhitePawn, Quiet, 111)
	d7d5 = NewMoveValue(SqD7, SqD5, BlackPawn, Quiet, 222)
	e4d5 = NewMoveValue(SqE4, SqD5, WhitePawn, Capture, 333)
	d8d5 = NewMoveValue(SqD8, SqD5, BlackQueen, Capture, 444)
	b1c3 = NewMoveValue(SqB1, SqC3, WhiteKnight, Quiet, 555)
)

func fill(ms *MoveSlice) {
	ms.PushBack(e2e4)
	ms.PushBack(d7d5)
	ms.PushBack(e4d5)
	ms.PushBack(d8d5)
	ms.PushBack(b1c3)
}

func TestNew(t *testing.T) {
	ms := New(0)
	assert.Equal(t, 0, ms.Len())
}

func TestPushBack(t *testing.T) {
	ms := New(0)
	fill(ms)
	assert.Equal(t, 5, ms.Len())
	assert.Equal(t, e2e4, ms.At(0))
	assert.Equal(t, b1c3, ms.At(4))
}

func TestPushFront(t *testing.T) {
	ms := New(0)
	ms.PushFront(e2e4)
	ms.PushFront(d7d5)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, d7d5, ms.At(0))
	assert.Equal(t, e2e4, ms.At(1))
}

func TestSet(t *testing.T) {
	ms := New(0)
	fill(ms)
	ms.Set(0, b1c3)
	assert.Equal(t, b1c3, ms.At(0))
}

func TestClear(t *testing.T) {
	ms := New(0)
	fill(ms)
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestStringUci(t *testing.T) {
	ms := New(0)
	fill(ms)
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ms.StringUci())
}

func TestSort(t *testing.T) {
	ms := New(0)
	fill(ms)
	ms.Sort()
	tmp := ms.At(0)
	for i := 1; i < ms.Len(); i++ {
		assert.True(t, tmp.ValueOf() >= ms.At(i).ValueOf())
		tmp = ms.At(i)
	}
}

func TestSortByRandom(t *testing.T) {
	ms := New(0)
	items := 1_000

	for i := 0; i < items; i++ {
		ms.PushBack(Move(rand.Int31()))
	}

	ms.SortBy(func(a, b Move) bool { return a > b })

	tmp := ms.At(0)
	for i := 0; i < items; i++ {
		assert.True(t, tmp >= ms.At(i))
		tmp = ms.At(i)
	}
}

func TestData(t *testing.T) {
	ms := New(0)
	fill(ms)
	data := ms.Data()
	assert.Equal(t, 5, len(data))
	assert.Equal(t, e2e4, data[0])
	assert.Equal(t, b1c3, data[4])
}

func TestForEach(t *testing.T) {
	ms := New(0)
	noOfItems := 1_000
	for i := 0; i < noOfItems; i++ {
		ms.PushBack(e2e4)
	}

	counter := 0
	ms.ForEach(func(i int) {
		m := ms.At(i)
		ms.Set(i, NewMoveValue(m.From(), m.To(), m.Piece(), m.Kind(), 999))
		counter++
	})

	assert.Equal(t, noOfItems, counter)
	assert.Equal(t, Value(999), ms.At(0).ValueOf())
	assert.Equal(t, Value(999), ms.At(noOfItems-1).ValueOf())
}
