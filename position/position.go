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

// Package position holds the board representation, FEN parsing/printing,
// the functional MakeMove transition and the in-check predicate the move
// generator relies on to filter candidates down to legal moves.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/kopfjager/chessforge/types"
)

// Key is a placeholder hash key type, kept for a future transposition
// table. zobrist.go fills its key table with Key values at init; nothing
// else in this engine reads or writes it.
type Key uint64

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the complete, self-contained state of a chess game at one
// point in time. All fields are fixed size, so a Position copies by
// value cheaply and correctly - the property MakeMove depends on to
// stay a pure function of (Position, Move).
type Position struct {
	piecesBb [ColorLength][PtLength]Bitboard
	occupied [ColorLength]Bitboard
	board    [SqLength]Piece

	turn            Color
	castling        CastlingRights
	epTarget        Square
	halfmoveClock   int
	fullmoveNumber  int
	kingSquare      [ColorLength]Square
}

// New returns the standard chess starting position.
func New() Position {
	pos, err := FromFEN(StartFen)
	if err != nil {
		panic("invalid built-in start FEN: " + err.Error())
	}
	return pos
}

// Turn returns the color to move.
func (p Position) Turn() Color { return p.turn }

// Castling returns the current castling rights.
func (p Position) Castling() CastlingRights { return p.castling }

// EpTarget returns the en passant target square, or SqNone.
func (p Position) EpTarget() Square { return p.epTarget }

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (p Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the 1-based full move counter.
func (p Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the square of c's king.
func (p Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// PieceOn returns the piece on sq, or PieceNone.
func (p Position) PieceOn(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of color c's pieces of type pt.
func (p Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBy returns the bitboard of all of color c's pieces.
func (p Position) OccupiedBy(c Color) Bitboard { return p.occupied[c] }

// Occupied returns the bitboard of every occupied square.
func (p Position) Occupied() Bitboard { return p.occupied[White] | p.occupied[Black] }

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupied[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupied[c].PopSquare(sq)
	p.board[sq] = PieceNone
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	p.removePiece(from)
	p.removePiece(to)
	p.putPiece(pc, to)
}

var fenPieceRe = regexp.MustCompile(`^[pnbrqkPNBRQK1-8]+$`)

// FromFEN parses a Forsyth-Edwards Notation string into a Position. It
// never panics on malformed input; the caller gets a descriptive error
// instead, per the engine's policy of leaving the running position
// untouched on bad external input.
func FromFEN(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	var pos Position
	pos.epTarget = SqNone

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		if !fenPieceRe.MatchString(rankStr) {
			return Position{}, fmt.Errorf("fen: invalid rank field %q", rankStr)
		}
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f > FileH {
				return Position{}, fmt.Errorf("fen: rank %q overflows the board", rankStr)
			}
			pc := pieceFromFenChar(ch)
			if pc == PieceNone {
				return Position{}, fmt.Errorf("fen: unknown piece char %q", ch)
			}
			pos.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileNone {
			return Position{}, fmt.Errorf("fen: rank %q does not cover 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return Position{}, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			pos.castling.Add(CastlingWhiteOO)
		case 'Q':
			pos.castling.Add(CastlingWhiteOOO)
		case 'k':
			pos.castling.Add(CastlingBlackOO)
		case 'q':
			pos.castling.Add(CastlingBlackOOO)
		case '-':
		default:
			return Position{}, fmt.Errorf("fen: invalid castling field %q", fields[2])
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return Position{}, fmt.Errorf("fen: invalid en passant square %q", fields[3])
		}
		pos.epTarget = sq
	}

	pos.halfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		pos.halfmoveClock = n
	}

	pos.fullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		pos.fullmoveNumber = n
	}

	if !pos.kingSquare[White].IsValid() || !pos.kingSquare[Black].IsValid() {
		return Position{}, errors.New("fen: both kings must be present")
	}

	return pos, nil
}

func pieceFromFenChar(ch rune) Piece {
	switch ch {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	default:
		return PieceNone
	}
}

var pieceToFenChar = [PieceLength]byte{
	PieceNone:   '?',
	WhiteKing:   'K',
	WhitePawn:   'P',
	WhiteKnight: 'N',
	WhiteBishop: 'B',
	WhiteRook:   'R',
	WhiteQueen:  'Q',
	BlackKing:   'k',
	BlackPawn:   'p',
	BlackKnight: 'n',
	BlackBishop: 'b',
	BlackRook:   'r',
	BlackQueen:  'q',
}

// Fen returns the FEN string representation of the position.
func (p Position) Fen() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceToFenChar[pc])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.turn.Str())

	sb.WriteByte(' ')
	if p.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		if p.castling.Has(CastlingWhiteOO) {
			sb.WriteByte('K')
		}
		if p.castling.Has(CastlingWhiteOOO) {
			sb.WriteByte('Q')
		}
		if p.castling.Has(CastlingBlackOO) {
			sb.WriteByte('k')
		}
		if p.castling.Has(CastlingBlackOOO) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)

	return sb.String()
}

// String renders the board as ASCII art followed by its FEN, for logging.
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for r := int(Rank8); r >= int(Rank1); r-- {
		fmt.Fprintf(&sb, "%d |", r+1)
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank(r))]
			if pc == PieceNone {
				sb.WriteString("   |")
			} else {
				fmt.Fprintf(&sb, " %s |", pc.String())
			}
		}
		sb.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	sb.WriteString(p.Fen())
	return sb.String()
}
