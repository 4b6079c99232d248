package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gomoku/internal/domain/game"
)

// MoveRedisCache stores engine answers by position key.
type MoveRedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

func NewMoveRedisCache(client *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *MoveRedisCache {
	return &MoveRedisCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func moveKey(key uint64) string {
	return fmt.Sprintf("gomoku:move:%016x", key)
}

func (r *MoveRedisCache) GetMove(ctx context.Context, key uint64) (game.AIMove, bool) {
	v, err := r.client.Get(ctx, moveKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnf("move cache read failed: %v", err)
		}
		return game.AIMove{}, false
	}

	var move game.AIMove
	if err = sonic.UnmarshalString(v, &move); err != nil {
		r.log.Warnf("move cache entry %s is corrupt: %v", moveKey(key), err)
		return game.AIMove{}, false
	}
	return move, true
}

func (r *MoveRedisCache) StoreMove(ctx context.Context, key uint64, move game.AIMove) {
	str, err := sonic.MarshalString(move)
	if err != nil {
		r.log.Warnf("encode move for cache: %v", err)
		return
	}
	if err = r.client.Set(ctx, moveKey(key), str, r.ttl).Err(); err != nil {
		r.log.Warnf("move cache write failed: %v", err)
	}
}
