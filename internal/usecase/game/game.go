package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomoku/internal/domain/board"
	"gomoku/internal/domain/game"
	"gomoku/internal/engine"
	gameErrors "gomoku/internal/errors"
	"gomoku/internal/statuses"
)

// MaxDepth caps the search depth a client may ask for.
const MaxDepth = 4

type GameStore interface {
	CreateGame(ctx context.Context, session *game.Session) error
	GetGame(ctx context.Context, id string) (*game.Session, error)
	UpdateGame(ctx context.Context, session *game.Session) error
}

// MoveCache remembers engine answers by position key. Misses and write
// failures are never fatal.
type MoveCache interface {
	GetMove(ctx context.Context, key uint64) (game.AIMove, bool)
	StoreMove(ctx context.Context, key uint64, move game.AIMove)
}

type MovePicker interface {
	BestMove(ctx context.Context, b board.Board, side board.Player, depth int) (engine.Answer, error)
}

type GameUseCase struct {
	store        GameStore
	cache        MoveCache
	engine       MovePicker
	defaultDepth int
	log          *zap.SugaredLogger
	locks        *gameLocks
	now          func() time.Time
}

func NewGameUseCase(store GameStore, cache MoveCache, eng MovePicker, defaultDepth int, log *zap.SugaredLogger) *GameUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &GameUseCase{
		store:        store,
		cache:        cache,
		engine:       eng,
		defaultDepth: max(defaultDepth, 1),
		log:          log,
		locks:        newGameLocks(),
		now:          time.Now,
	}
}

// NewGame starts a session. When the engine plays Black its opening move is
// already on the board in the response.
func (g *GameUseCase) NewGame(ctx context.Context, req game.CreateGameRequest) (*game.MoveResponse, error) {
	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = statuses.ModeVsAI
	}
	if mode != statuses.ModeVsAI && mode != statuses.ModeHotSeat {
		return nil, fmt.Errorf("unknown mode %q: %w", req.Mode, gameErrors.ErrInvalidRequest)
	}

	human := board.Black
	if req.HumanSide != "" {
		side, err := board.ParsePlayer(req.HumanSide)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, gameErrors.ErrInvalidRequest)
		}
		human = side
	}

	depth := req.Depth
	if depth < 1 {
		depth = g.defaultDepth
	}
	depth = min(depth, MaxDepth)

	b := board.New()
	now := g.now()
	session := &game.Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		HumanSide: human,
		Depth:     depth,
		Status:    statuses.StatusRunning,
		ToMove:    board.Black,
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Store(&b)

	resp := &game.MoveResponse{Game: session}
	if session.AITurn() {
		ai, err := g.playAI(ctx, session, &b)
		if err != nil {
			return nil, err
		}
		resp.AI = ai
	}

	if err := g.store.CreateGame(ctx, session); err != nil {
		return nil, err
	}

	g.log.Infow("game created", "id", session.ID, "mode", mode, "human", human, "depth", depth)
	return resp, nil
}

func (g *GameUseCase) GetGame(ctx context.Context, id string) (*game.Session, error) {
	return g.store.GetGame(ctx, id)
}

// ApplyMove plays the requested cell for the side to move. When req names a
// player it must be that side. In vs_ai games the engine answers right away
// unless the human move ended the game.
func (g *GameUseCase) ApplyMove(ctx context.Context, id string, req game.MoveRequest) (*game.MoveResponse, error) {
	m := board.Move{Row: req.Row, Col: req.Col}

	unlock := g.locks.lock(id)
	defer unlock()

	session, err := g.store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Finished() {
		return nil, fmt.Errorf("game %s is %s: %w", id, session.Status, gameErrors.ErrGameFinished)
	}
	if session.AITurn() || (req.Player != nil && *req.Player != session.ToMove) {
		return nil, fmt.Errorf("game %s waits for %s: %w", id, session.ToMove, gameErrors.ErrNotYourTurn)
	}

	b, err := session.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("game %s has a broken board: %v: %w", id, err, gameErrors.ErrInternal)
	}

	player := session.ToMove
	if err = b.Place(m, player); err != nil {
		return nil, err
	}
	g.resolve(session, &b, m, player)

	resp := &game.MoveResponse{Game: session}
	if session.AITurn() {
		ai, err := g.playAI(ctx, session, &b)
		if err != nil {
			return nil, err
		}
		resp.AI = ai
	}

	session.UpdatedAt = g.now()
	if err = g.store.UpdateGame(ctx, session); err != nil {
		return nil, err
	}
	return resp, nil
}

// Hint suggests a move for the side to move without playing it.
func (g *GameUseCase) Hint(ctx context.Context, id string) (*game.AIMove, error) {
	session, err := g.store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Finished() {
		return nil, fmt.Errorf("game %s is %s: %w", id, session.Status, gameErrors.ErrGameFinished)
	}

	b, err := session.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("game %s has a broken board: %v: %w", id, err, gameErrors.ErrInternal)
	}

	ai, err := g.bestMove(ctx, b, session.ToMove, session.Depth)
	if err != nil {
		return nil, err
	}
	return &ai, nil
}

func (g *GameUseCase) playAI(ctx context.Context, session *game.Session, b *board.Board) (*game.AIMove, error) {
	side := session.ToMove
	ai, err := g.bestMove(ctx, *b, side, session.Depth)
	if errors.Is(err, gameErrors.ErrNoMoves) {
		session.Status = statuses.StatusDraw
		session.Store(b)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = b.Place(ai.Move, side); err != nil {
		return nil, fmt.Errorf("engine move %s: %v: %w", ai.Move, err, gameErrors.ErrInternal)
	}
	g.resolve(session, b, ai.Move, side)
	return &ai, nil
}

// bestMove asks the engine, going through the cache for searched positions.
// Book answers are random, so they are never cached.
func (g *GameUseCase) bestMove(ctx context.Context, b board.Board, side board.Player, depth int) (game.AIMove, error) {
	key := engine.PositionKey(&b, side, depth)
	if cached, ok := g.cache.GetMove(ctx, key); ok && b.IsLegal(cached.Move) {
		cached.Cached = true
		return cached, nil
	}

	answer, err := g.engine.BestMove(ctx, b, side, depth)
	if err != nil {
		return game.AIMove{}, err
	}

	ai := game.AIMove{
		Move:      answer.Move,
		Score:     answer.Score,
		Source:    answer.Source,
		Depth:     answer.Depth,
		Nodes:     answer.Nodes,
		Truncated: answer.Truncated,
	}
	if answer.Source == engine.SourceSearch && !answer.Truncated {
		g.cache.StoreMove(ctx, key, ai)
	}
	return ai, nil
}

// resolve updates status and turn after player placed m.
func (g *GameUseCase) resolve(session *game.Session, b *board.Board, m board.Move, player board.Player) {
	session.Store(b)
	switch {
	case b.CheckWin(m, player):
		session.Status = statuses.WonBy(player.String())
		session.Winner = player.String()
		g.log.Infow("game won", "id", session.ID, "winner", player, "stones", b.Stones())
	case b.CheckDraw():
		session.Status = statuses.StatusDraw
		g.log.Infow("game drawn", "id", session.ID)
	default:
		session.ToMove = player.Opponent()
	}
}
