package board

import (
	"errors"
	"testing"

	errs "gomoku/internal/errors"
)

// drawRows is a full grid without any five in a row.
func drawRows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		row := make([]byte, Size)
		for c := 0; c < Size; c++ {
			if ((c/2)+r)%2 == 0 {
				row[c] = 'B'
			} else {
				row[c] = 'W'
			}
		}
		rows[r] = string(row)
	}
	return rows
}

func TestIsLegal(t *testing.T) {
	b := New()
	if !b.IsLegal(Move{Row: 0, Col: 0}) || !b.IsLegal(Move{Row: 14, Col: 14}) {
		t.Fatalf("expected corners to be legal on an empty board")
	}
	for _, m := range []Move{{-1, 0}, {0, -1}, {15, 0}, {0, 15}} {
		if b.IsLegal(m) {
			t.Fatalf("expected %s to be out of bounds", m)
		}
	}
	if err := b.Place(Move{Row: 7, Col: 7}, Black); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IsLegal(Move{Row: 7, Col: 7}) {
		t.Fatalf("expected occupied cell to be illegal")
	}
}

func TestPlaceRejectsIllegalMove(t *testing.T) {
	b := New()
	if err := b.Place(Move{Row: 3, Col: 3}, Black); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.Place(Move{Row: 3, Col: 3}, White)
	if !errors.Is(err, errs.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove for occupied cell, got %v", err)
	}
	err = b.Place(Move{Row: 20, Col: 3}, White)
	if !errors.Is(err, errs.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove for out of bounds, got %v", err)
	}
	if b.At(Move{Row: 3, Col: 3}) != BlackCell || b.Stones() != 1 {
		t.Fatalf("illegal placement must not change the board")
	}
}

func TestCheckWinAllAxes(t *testing.T) {
	cases := []struct {
		name  string
		moves []Move
	}{
		{"horizontal", []Move{{4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}}},
		{"vertical", []Move{{2, 9}, {3, 9}, {4, 9}, {5, 9}, {6, 9}}},
		{"diagonal", []Move{{10, 10}, {11, 11}, {12, 12}, {13, 13}, {14, 14}}},
		{"anti-diagonal", []Move{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}}},
	}
	for _, tc := range cases {
		b := New()
		for i, m := range tc.moves[:4] {
			if err := b.Place(m, White); err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if b.CheckWin(m, White) {
				t.Fatalf("%s: unexpected win after %d stones", tc.name, i+1)
			}
		}
		// the winning stone goes in the middle of the line
		b = New()
		for i, m := range tc.moves {
			if i == 2 {
				continue
			}
			_ = b.Place(m, White)
		}
		mid := tc.moves[2]
		_ = b.Place(mid, White)
		if !b.CheckWin(mid, White) {
			t.Fatalf("%s: expected win when the gap is filled", tc.name)
		}
	}
}

func TestCheckWinBrokenLine(t *testing.T) {
	b := New()
	for _, c := range []int{0, 1, 2, 4, 5} {
		_ = b.Place(Move{Row: 6, Col: c}, Black)
	}
	_ = b.Place(Move{Row: 6, Col: 3}, White)
	if b.CheckWin(Move{Row: 6, Col: 2}, Black) || b.CheckWin(Move{Row: 6, Col: 4}, Black) {
		t.Fatalf("a line interrupted by the opponent is not a win")
	}
}

func TestCheckWinOverline(t *testing.T) {
	b := New()
	for c := 0; c < 6; c++ {
		_ = b.Place(Move{Row: 0, Col: c}, Black)
	}
	if !b.CheckWin(Move{Row: 0, Col: 5}, Black) {
		t.Fatalf("six in a row counts as a win")
	}
}

func TestCheckWinUsesActingPlayer(t *testing.T) {
	b := New()
	for c := 0; c < 5; c++ {
		_ = b.Place(Move{Row: 0, Col: c}, Black)
		if c < 4 {
			_ = b.Place(Move{Row: 5, Col: c}, White)
		}
	}
	last := Move{Row: 0, Col: 4}
	if !b.CheckWin(last, Black) {
		t.Fatalf("expected black to win")
	}
	if b.CheckWin(last, White) {
		t.Fatalf("win must not be credited to the player who did not move")
	}
}

func TestCheckDraw(t *testing.T) {
	b, err := ParseRows(drawRows())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b.Full() {
		t.Fatalf("expected full board, got %d stones", b.Stones())
	}
	if !b.CheckDraw() {
		t.Fatalf("expected draw on a full board without five")
	}

	rows := drawRows()
	rows[0] = "BBBBBWWBBWWBBWW"
	b, err = ParseRows(rows)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.CheckDraw() {
		t.Fatalf("a full board with five in a row is not a draw")
	}

	empty := New()
	if empty.CheckDraw() {
		t.Fatalf("empty board is not a draw")
	}
}

func TestTryRollbackRestoresBoard(t *testing.T) {
	b := New()
	_ = b.Place(Move{Row: 7, Col: 7}, Black)
	before := b

	cp := b.Try(Move{Row: 7, Col: 8}, White)
	if b.Stones() != 2 {
		t.Fatalf("expected 2 stones, got %d", b.Stones())
	}
	if last, _ := b.LastMove(); last != (Move{Row: 7, Col: 8}) {
		t.Fatalf("expected last move to follow Try, got %s", last)
	}
	b.Rollback(cp)

	if b != before {
		t.Fatalf("rollback must restore the board exactly")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	b := New()
	_ = b.Place(Move{Row: 0, Col: 14}, Black)
	_ = b.Place(Move{Row: 14, Col: 0}, White)
	parsed, err := ParseRows(b.Rows())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	parsed.SetLastMove(Move{Row: 14, Col: 0})
	if parsed != b {
		t.Fatalf("expected identical board after Rows/ParseRows")
	}
	if _, err := ParseRows([]string{"..."}); err == nil {
		t.Fatalf("expected error for short input")
	}
}

func TestParsePlayer(t *testing.T) {
	for in, want := range map[string]Player{"black": Black, "W": White, " White ": White} {
		got, err := ParsePlayer(in)
		if err != nil || got != want {
			t.Fatalf("ParsePlayer(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePlayer("red"); err == nil {
		t.Fatalf("expected error for unknown player")
	}
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Fatalf("opponent mapping is broken")
	}
}
