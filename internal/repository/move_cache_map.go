package repo

import (
	"context"
	"sync"
	"time"

	"gomoku/internal/domain/game"
)

type cachedMove struct {
	move    game.AIMove
	expires time.Time
}

type MoveMapCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	moves map[uint64]cachedMove
	now   func() time.Time
}

func NewMoveMapCache(ttl time.Duration) *MoveMapCache {
	return &MoveMapCache{
		ttl:   ttl,
		moves: make(map[uint64]cachedMove),
		now:   time.Now,
	}
}

func (c *MoveMapCache) GetMove(_ context.Context, key uint64) (game.AIMove, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.moves[key]
	if !found {
		return game.AIMove{}, false
	}
	if c.ttl > 0 && c.now().After(entry.expires) {
		delete(c.moves, key)
		return game.AIMove{}, false
	}
	return entry.move, true
}

func (c *MoveMapCache) StoreMove(_ context.Context, key uint64, move game.AIMove) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.moves[key] = cachedMove{move: move, expires: c.now().Add(c.ttl)}
}
