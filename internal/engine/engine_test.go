package engine

import (
	"context"
	"errors"
	"testing"

	"gomoku/internal/domain/board"
	errs "gomoku/internal/errors"
)

func TestBestMoveUsesBook(t *testing.T) {
	eng := New(DefaultOptions(), nil, nil)
	b := board.New()

	ans, err := eng.BestMove(context.Background(), b, board.Black, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Source != SourceBook || ans.Move != mv(7, 7) {
		t.Fatalf("expected book move (7,7), got %+v", ans)
	}
}

func TestBestMoveSkipsBookForWrongSide(t *testing.T) {
	eng := New(Options{Depth: 1, UseBook: true}, nil, nil)
	b := board.New()

	ans, err := eng.BestMove(context.Background(), b, board.White, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Source != SourceSearch {
		t.Fatalf("expected search when white moves first, got %s", ans.Source)
	}
}

func TestBestMoveSearchesWithoutBook(t *testing.T) {
	eng := New(Options{Depth: 2, Workers: 2}, nil, nil)
	b := board.New()
	place(t, &b, board.Black, mv(3, 2), mv(10, 10), mv(11, 12), mv(12, 8))
	place(t, &b, board.White, mv(3, 3), mv(3, 4), mv(3, 5), mv(3, 6))
	before := b

	ans, err := eng.BestMove(context.Background(), b, board.Black, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Source != SourceSearch || ans.Move != mv(3, 7) {
		t.Fatalf("expected search to block at (3,7), got %+v", ans)
	}
	if ans.Depth != 2 || ans.Nodes == 0 {
		t.Fatalf("expected depth 2 and a node count, got %+v", ans)
	}
	if b != before {
		t.Fatalf("caller board changed")
	}
}

func TestBestMoveFullBoard(t *testing.T) {
	eng := New(DefaultOptions(), nil, nil)
	_, err := eng.BestMove(context.Background(), fullBoard(t), board.Black, 2)
	if !errors.Is(err, errs.ErrNoMoves) {
		t.Fatalf("expected ErrNoMoves, got %v", err)
	}
}

func TestNewClampsDepth(t *testing.T) {
	eng := New(Options{Depth: -3}, nil, nil)
	if eng.Options().Depth != 1 {
		t.Fatalf("expected depth 1, got %d", eng.Options().Depth)
	}
}

func TestBestMoveDefaultsToConfiguredDepth(t *testing.T) {
	for _, depth := range []int{0, -2} {
		eng := New(Options{Depth: 2}, nil, nil)
		ans, err := eng.BestMove(context.Background(), openingPosition(t), board.Black, depth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ans.Depth != 2 {
			t.Fatalf("depth %d: expected configured depth 2, got %d", depth, ans.Depth)
		}
	}
}

func TestBestMoveZeroDepthWithClampedOptions(t *testing.T) {
	eng := New(Options{}, nil, nil)
	ans, err := eng.BestMove(context.Background(), openingPosition(t), board.Black, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Depth != 1 {
		t.Fatalf("expected depth 1, got %d", ans.Depth)
	}
}
