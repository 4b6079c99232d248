package engine

import (
	"testing"

	"gomoku/internal/domain/board"
)

func place(t *testing.T, b *board.Board, p board.Player, moves ...board.Move) {
	t.Helper()
	for _, m := range moves {
		if err := b.Place(m, p); err != nil {
			t.Fatalf("place %s: %v", m, err)
		}
	}
}

func fullBoard(t *testing.T) board.Board {
	t.Helper()
	rows := make([]string, board.Size)
	for r := 0; r < board.Size; r++ {
		row := make([]byte, board.Size)
		for c := 0; c < board.Size; c++ {
			if ((c/2)+r)%2 == 0 {
				row[c] = 'B'
			} else {
				row[c] = 'W'
			}
		}
		rows[r] = string(row)
	}
	b, err := board.ParseRows(rows)
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	return b
}

type fixedRand struct {
	values []float64
	i      int
}

func (f *fixedRand) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}
