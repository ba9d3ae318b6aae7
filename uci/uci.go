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

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine, plus a small interactive play loop.
package uci

import (
	"bufio"
	"bytes"
	golog "log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	logging2 "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopfjager/chessforge/attacks"
	"github.com/kopfjager/chessforge/config"
	"github.com/kopfjager/chessforge/logging"
	"github.com/kopfjager/chessforge/movegen"
	"github.com/kopfjager/chessforge/position"
	"github.com/kopfjager/chessforge/search"
	. "github.com/kopfjager/chessforge/types"
	"github.com/kopfjager/chessforge/util"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// Handler handles all communication with the chess ui via UCI and holds
// the position this engine is currently searching from.
// Create an instance with NewHandler().
type Handler struct {
	InIo     *bufio.Scanner
	OutIo    *bufio.Writer
	position position.Position
	uciLog   *logging2.Logger
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewHandler creates a new Handler instance, ready at the starting
// position. Input/output io can be replaced by changing InIo and OutIo.
func NewHandler() *Handler {
	return &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		position: position.New(),
		uciLog:   getUciLog(),
	}
}

// Loop starts the main loop reading commands from InIo until "quit".
func (h *Handler) Loop() {
	log.Debugf("Waiting for command:")
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
		log.Debugf("Waiting for command:")
	}
	if err := h.InIo.Err(); err != nil {
		golog.Fatalf("reading stdin: %v", err)
	}
}

// Command handles a single line of UCI protocol and returns whatever was
// written to OutIo while handling it. Mostly useful for testing.
func (h *Handler) Command(cmd string) string {
	tmp := h.OutIo
	buffer := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buffer)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buffer.String()
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (h *Handler) handleReceivedCommand(cmd string) bool {
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	h.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.isReadyCommand()
	case "ucinewgame":
		h.position = position.New()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "perft":
		h.perftCommand(tokens)
	case "play":
		h.playCommand()
	case "noop":
	default:
		log.Warningf("Error: Unknown command: %s", cmd)
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name chessforge")
	h.send("id author the chessforge authors")
	h.send("uciok")
}

// isReadyCommand waits for the magic-bitboard tables to be ready before
// telling the UI the engine can accept further commands.
func (h *Handler) isReadyCommand() {
	attacks.Ready()
	h.send("readyok")
}

// positionCommand sets the current position from either "startpos" or
// "fen <fen>", optionally followed by "moves <uci> <uci> ...".
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.malformed("position", tokens)
		return
	}
	var pos position.Position
	i := 1
	switch tokens[i] {
	case "startpos":
		pos = position.New()
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen := strings.TrimSpace(fenb.String())
		p, err := position.FromFEN(fen)
		if err != nil {
			h.sendInfoString(out.Sprintf("Command 'position' malformed fen '%s': %v", fen, err))
			return
		}
		pos = p
	default:
		h.malformed("position", tokens)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, found := moveFromUci(pos, tokens[i])
			if !found {
				h.sendInfoString(out.Sprintf("Command 'position' malformed. Invalid move '%s'", tokens[i]))
				return
			}
			pos = position.MakeMove(pos, m)
		}
	}

	h.position = pos
	log.Debugf("New position: %s", h.position.Fen())
}

// goCommand runs a fixed-depth search on the current position and sends
// the resulting best move. "depth N" selects the depth; with no depth
// token the configured default depth is used.
func (h *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.Depth
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == "depth" && i+1 < len(tokens) {
			d, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				h.sendInfoString(out.Sprintf("Command 'go' malformed. Depth value not a number: %s", tokens[i+1]))
				return
			}
			depth = d
		}
	}
	depth = util.Max(1, depth)
	result := search.Search(h.position, depth)
	h.send(out.Sprintf("info depth %d score %s nodes %d", depth, result.Value.String(), result.NodesVisited))
	h.send("bestmove " + result.BestMove.StringUci())
}

// perftCommand runs the perft correctness harness on the current
// position and reports the node count and wall time.
func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			h.sendInfoString(out.Sprintf("Command 'perft' malformed. Depth value not a number: %s", tokens[1]))
			return
		}
		depth = d
	}
	depth = util.Max(1, depth)
	start := time.Now()
	var nodes uint64
	if config.Settings.Search.UseParallelPerft {
		nodes = movegen.PerftParallel(h.position, depth)
	} else {
		nodes = movegen.Perft(h.position, depth)
	}
	elapsed := time.Since(start)
	h.send(out.Sprintf("info string perft depth %d nodes %d time %d ms", depth, nodes, elapsed.Milliseconds()))
}

// playCommand enters an interactive loop: it prompts for the user's
// color and a search depth, then alternates user moves (read as UCI long
// algebraic notation) with engine replies until "quit" is entered.
func (h *Handler) playCommand() {
	h.send("Play against chessforge. Enter 'white' or 'black', then a search depth.")
	h.send("color:")
	if !h.InIo.Scan() {
		return
	}
	userColor := White
	if strings.TrimSpace(strings.ToLower(h.InIo.Text())) == "black" {
		userColor = Black
	}

	h.send("depth:")
	depth := config.Settings.Search.Depth
	if h.InIo.Scan() {
		if d, err := strconv.Atoi(strings.TrimSpace(h.InIo.Text())); err == nil && d > 0 {
			depth = d
		}
	}

	pos := position.New()
	for {
		if !movegen.HasLegalMove(pos) {
			h.send(pos.Fen())
			if position.InCheck(pos, pos.Turn()) {
				h.send("checkmate")
			} else {
				h.send("stalemate")
			}
			return
		}

		h.send(pos.Fen())
		if pos.Turn() == userColor {
			h.send("your move:")
			if !h.InIo.Scan() {
				return
			}
			txt := strings.TrimSpace(h.InIo.Text())
			if txt == "quit" {
				return
			}
			m, found := moveFromUci(pos, txt)
			if !found {
				h.sendInfoString(out.Sprintf("Invalid move '%s'", txt))
				continue
			}
			pos = position.MakeMove(pos, m)
		} else {
			result := search.Search(pos, depth)
			h.send("chessforge plays " + result.BestMove.StringUci())
			pos = position.MakeMove(pos, result.BestMove)
		}
	}
}

func (h *Handler) malformed(command string, tokens []string) {
	msg := out.Sprintf("Command '%s' malformed: %v", command, tokens)
	h.sendInfoString(msg)
	log.Warning(msg)
}

func (h *Handler) sendInfoString(s string) {
	h.send(out.Sprintf("info string %s", s))
	log.Warning(s)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// moveFromUci finds the legal move from pos matching UCI long algebraic
// notation such as "e2e4" or "a7a8q".
func moveFromUci(pos position.Position, uciStr string) (Move, bool) {
	moves := movegen.LegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == uciStr {
			return m, true
		}
	}
	return MoveNone, false
}

// getUciLog returns a Logger preconfigured for logging all UCI protocol
// communication to os.Stdout and, if available, an append only log file.
// Format is simple: "time UCI <uci command>".
func getUciLog() *logging2.Logger {
	uciLog := logging2.MustGetLogger("UCI ")

	uciFormat := logging2.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend1 := logging2.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging2.NewBackendFormatter(backend1, uciFormat)
	uciBackEnd1 := logging2.AddModuleLevel(backend1Formatter)
	uciBackEnd1.SetLevel(logging2.DEBUG, "")

	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath := filepath.Clean(exePath + "/../logs/" + exeName + "_ucilog.log")

	uciLogFile, err := os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		uciLog.SetBackend(uciBackEnd1)
	} else {
		backend2 := logging2.NewLogBackend(uciLogFile, "", golog.Lmsgprefix)
		backend2Formatter := logging2.NewBackendFormatter(backend2, uciFormat)
		uciBackEnd2 := logging2.AddModuleLevel(backend2Formatter)
		uciBackEnd2.SetLevel(logging2.DEBUG, "")
		uciLog.SetBackend(logging2.MultiLogger(uciBackEnd1, uciBackEnd2))
		uciLog.Infof("Log %s started at %s:", uciLogFile.Name(), time.Now().String())
	}

	return uciLog
}
