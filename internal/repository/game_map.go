package repo

import (
	"context"
	"fmt"
	"sync"

	"gomoku/internal/domain/game"
	gameErrors "gomoku/internal/errors"
)

// GameMapStorage keeps sessions in memory when no MongoDB is configured.
type GameMapStorage struct {
	mu    sync.RWMutex
	games map[string]game.Session
}

func NewGameMapStorage() *GameMapStorage {
	return &GameMapStorage{games: make(map[string]game.Session)}
}

func (s *GameMapStorage) CreateGame(_ context.Context, session *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.games[session.ID]; found {
		return fmt.Errorf("game %s already exists: %w", session.ID, gameErrors.ErrCreateGameFailed)
	}
	s.games[session.ID] = copySession(session)
	return nil
}

func (s *GameMapStorage) GetGame(_ context.Context, id string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, found := s.games[id]
	if !found {
		return nil, fmt.Errorf("game %s: %w", id, gameErrors.ErrGameNotFound)
	}
	out := copySession(&session)
	return &out, nil
}

func (s *GameMapStorage) UpdateGame(_ context.Context, session *game.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.games[session.ID]; !found {
		return fmt.Errorf("game %s: %w", session.ID, gameErrors.ErrGameNotFound)
	}
	s.games[session.ID] = copySession(session)
	return nil
}

// copySession detaches the board rows and last move so callers cannot mutate stored state.
func copySession(s *game.Session) game.Session {
	out := *s
	out.Rows = append([]string(nil), s.Rows...)
	if s.LastMove != nil {
		last := *s.LastMove
		out.LastMove = &last
	}
	return out
}
