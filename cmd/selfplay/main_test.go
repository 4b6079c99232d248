package main

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"gomoku/internal/domain/board"
	"gomoku/internal/engine"
)

func TestPlayGameFinishes(t *testing.T) {
	eng := engine.New(engine.Options{Depth: 1, UseBook: true}, rand.New(rand.NewSource(1)), nil)
	res, err := playGame(context.Background(), eng, 1)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Moves != res.Board.Stones() || res.Moves == 0 {
		t.Fatalf("unexpected move count %d", res.Moves)
	}
	if !res.Draw {
		last, ok := res.Board.LastMove()
		if !ok || !res.Board.CheckWin(last, res.Winner) {
			t.Fatalf("winner %s has no five through %s", res.Winner, last)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	b := board.New()
	if err := b.Place(board.Move{Row: 7, Col: 7}, board.Black); err != nil {
		t.Fatalf("place: %v", err)
	}
	out := renderBoard(&b)
	if strings.Count(out, "\n") != board.Size || !strings.Contains(out, "X") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}
