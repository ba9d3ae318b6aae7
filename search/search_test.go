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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopfjager/chessforge/attacks"
	"github.com/kopfjager/chessforge/position"
	. "github.com/kopfjager/chessforge/types"
)

func TestMain(m *testing.M) {
	attacks.Init()
	attacks.Ready()
	m.Run()
}

func TestEvaluate_StartPositionIsBalanced(t *testing.T) {
	pos := position.New()
	assert.Equal(t, ValueZero, Evaluate(pos))
}

func TestEvaluate_MaterialAdvantageFavorsSideUp(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, Evaluate(pos) > ValueZero)
}

func TestEvaluate_StalemateIsDraw(t *testing.T) {
	pos, err := position.FromFEN("k7/8/1Q6/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, ValueDraw, Evaluate(pos))
}

func TestEvaluate_CheckmateIsMinusCheckMate(t *testing.T) {
	pos, err := position.FromFEN("R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, -ValueCheckMate, Evaluate(pos))
}

func TestSearch_FindsMateInOne(t *testing.T) {
	// White rook to a8 delivers back rank mate.
	pos, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	result := Search(pos, 2)
	assert.Equal(t, SqA1, result.BestMove.From())
	assert.Equal(t, SqA8, result.BestMove.To())
	assert.True(t, result.Value.IsCheckMateValue())
}

func TestSearch_PrefersWinningACapture(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/3q4/4B3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	result := Search(pos, 2)
	assert.Equal(t, SqE4, result.BestMove.From())
	assert.Equal(t, SqD5, result.BestMove.To())
	assert.True(t, result.Value > ValueZero)
}

func TestSearch_ReportsNodesVisited(t *testing.T) {
	pos := position.New()
	result := Search(pos, 2)
	assert.True(t, result.NodesVisited > 0)
}
