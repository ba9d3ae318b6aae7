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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopfjager/chessforge/attacks"
	"github.com/kopfjager/chessforge/position"
)

func TestMain(m *testing.M) {
	attacks.Init()
	attacks.Ready()
	m.Run()
}

func TestUciCommand_SendsUciOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name chessforge")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyCommand_SendsReadyOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("isready")
	assert.Contains(t, out, "readyok")
}

func TestPositionCommand_Startpos(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	assert.Equal(t, position.StartFen, h.position.Fen())
}

func TestPositionCommand_StartposWithMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5 g1f3")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", h.position.Fen())
}

func TestPositionCommand_Fen(t *testing.T) {
	h := NewHandler()
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.position.Fen())
}

func TestPositionCommand_RejectsIllegalMove(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "Invalid move")
}

func TestGoCommand_ReturnsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 2")
	assert.Contains(t, out, "bestmove")
}

func TestPerftCommand_ReportsNodeCount(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("perft 3")
	assert.Contains(t, out, "nodes 8,902")
}

func TestQuitCommand_EndsHandling(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.handleReceivedCommand("quit"))
}

func TestMoveFromUci_FindsLegalMove(t *testing.T) {
	pos := position.New()
	m, found := moveFromUci(pos, "e2e4")
	assert.True(t, found)
	assert.Equal(t, "e2e4", m.StringUci())
	_, found = moveFromUci(pos, "e2e5")
	assert.False(t, found)
}

func TestHandlerCommand_UnknownCommandIsLogged(t *testing.T) {
	h := NewHandler()
	assert.False(t, strings.Contains(h.Command("bogus"), "panic"))
}
