package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"gomoku/internal/domain/board"
	"gomoku/internal/domain/game"
	gameErrors "gomoku/internal/errors"
)

func TestGameMapStorage(t *testing.T) {
	ctx := context.Background()
	store := NewGameMapStorage()
	b := board.New()
	session := &game.Session{ID: "g1", Rows: b.Rows()}

	if err := store.CreateGame(ctx, session); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.CreateGame(ctx, session); !errors.Is(err, gameErrors.ErrCreateGameFailed) {
		t.Fatalf("expected duplicate create to fail, got %v", err)
	}

	got, err := store.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Rows[0] = "B.............."
	again, _ := store.GetGame(ctx, "g1")
	if again.Rows[0] != b.Rows()[0] {
		t.Fatalf("stored session was mutated through a returned copy")
	}

	got.Stones = 1
	if err := store.UpdateGame(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ = store.GetGame(ctx, "g1")
	if again.Stones != 1 {
		t.Fatalf("expected update to persist")
	}

	if _, err := store.GetGame(ctx, "missing"); !errors.Is(err, gameErrors.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if err := store.UpdateGame(ctx, &game.Session{ID: "missing"}); !errors.Is(err, gameErrors.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestMoveMapCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache := NewMoveMapCache(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	want := game.AIMove{Move: board.Move{Row: 7, Col: 7}, Score: 12, Source: "search"}
	cache.StoreMove(ctx, 42, want)

	got, ok := cache.GetMove(ctx, 42)
	if !ok || got != want {
		t.Fatalf("expected cached move, got %+v ok=%v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.GetMove(ctx, 42); ok {
		t.Fatalf("expected the entry to expire")
	}
}

func TestMoveKeyFormat(t *testing.T) {
	if got := moveKey(0xabc); got != "gomoku:move:0000000000000abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
