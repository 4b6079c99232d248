package board

import (
	"fmt"
	"strings"

	"gomoku/internal/errors"
)

// Size is the fixed side length of the playing grid.
const Size = 15

// WinLength is how many stones in a row end the game.
const WinLength = 5

type Cell int8

const (
	Empty Cell = iota
	BlackCell
	WhiteCell
)

type Player int8

const (
	Black Player = iota + 1
	White
)

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) Cell() Cell {
	if p == Black {
		return BlackCell
	}
	return WhiteCell
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return 0, fmt.Errorf("unknown player %q", s)
	}
}

// Owner reports which player holds the cell.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case BlackCell:
		return Black, true
	case WhiteCell:
		return White, true
	default:
		return 0, false
	}
}

type Move struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < Size && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is a value type: assigning it copies the whole grid.
type Board struct {
	cells   [Size][Size]Cell
	stones  int
	last    Move
	hasLast bool
}

func New() Board {
	return Board{}
}

func (b *Board) At(m Move) Cell {
	return b.cells[m.Row][m.Col]
}

func (b *Board) Empty(m Move) bool {
	return b.cells[m.Row][m.Col] == Empty
}

func (b *Board) IsLegal(m Move) bool {
	return m.InBounds() && b.cells[m.Row][m.Col] == Empty
}

func (b *Board) Stones() int {
	return b.stones
}

func (b *Board) Full() bool {
	return b.stones == Size*Size
}

// LastMove returns the most recent placement, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.last, b.hasLast
}

func (b *Board) Clone() Board {
	return *b
}

// Place puts a stone for player at m. Callers must check IsLegal first;
// an illegal placement is reported as ErrInvalidMove and leaves the board untouched.
func (b *Board) Place(m Move, player Player) error {
	if !b.IsLegal(m) {
		return fmt.Errorf("place %s for %s: %w", m, player, errors.ErrInvalidMove)
	}
	b.Try(m, player)
	return nil
}

// Checkpoint holds everything Try changes so Rollback can restore it.
type Checkpoint struct {
	move    Move
	last    Move
	hasLast bool
}

// Try places a stone without legality checks.
func (b *Board) Try(m Move, player Player) Checkpoint {
	cp := Checkpoint{move: m, last: b.last, hasLast: b.hasLast}
	b.cells[m.Row][m.Col] = player.Cell()
	b.stones++
	b.last = m
	b.hasLast = true
	return cp
}

func (b *Board) Rollback(cp Checkpoint) {
	b.cells[cp.move.Row][cp.move.Col] = Empty
	b.stones--
	b.last = cp.last
	b.hasLast = cp.hasLast
}

// EmptyCells lists free cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size-b.stones)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Rows encodes the grid as Size strings of '.', 'B' and 'W'.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		sb.Reset()
		for c := 0; c < Size; c++ {
			sb.WriteByte(cellRune(b.cells[r][c]))
		}
		rows[r] = sb.String()
	}
	return rows
}

// ParseRows is the inverse of Rows. The last move is not part of the encoding;
// use SetLastMove to restore it.
func ParseRows(rows []string) (Board, error) {
	b := New()
	if len(rows) != Size {
		return b, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", r, Size, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case '.':
			case 'B', 'X':
				b.cells[r][c] = BlackCell
				b.stones++
			case 'W', 'O':
				b.cells[r][c] = WhiteCell
				b.stones++
			default:
				return b, fmt.Errorf("row %d col %d: unknown cell %q", r, c, row[c])
			}
		}
	}
	return b, nil
}

func (b *Board) SetLastMove(m Move) {
	if !m.InBounds() {
		return
	}
	b.last = m
	b.hasLast = true
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

func cellRune(c Cell) byte {
	switch c {
	case BlackCell:
		return 'B'
	case WhiteCell:
		return 'W'
	default:
		return '.'
	}
}
