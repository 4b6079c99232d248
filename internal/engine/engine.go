package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gomoku/internal/domain/board"
	"gomoku/internal/errors"
)

const (
	SourceBook   = "book"
	SourceSearch = "search"
)

type Options struct {
	Depth    int
	MaxNodes int64
	Timeout  time.Duration
	Workers  int
	UseBook  bool
}

func DefaultOptions() Options {
	return Options{
		Depth:   2,
		Workers: 1,
		UseBook: true,
	}
}

// Answer is the engine's chosen move plus diagnostics for display.
type Answer struct {
	Move      board.Move `json:"move"`
	Score     int        `json:"score"`
	Source    string     `json:"source"`
	Depth     int        `json:"depth"`
	Nodes     int64      `json:"nodes"`
	Truncated bool       `json:"truncated"`
}

type Engine struct {
	opts Options
	book *Book
	log  *zap.SugaredLogger
}

func New(opts Options, rng RandSource, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	return &Engine{
		opts: opts,
		book: NewBook(rng),
		log:  log,
	}
}

func (e *Engine) Options() Options {
	return e.opts
}

// BestMove picks a move for side. The book is tried first; search covers the
// rest of the game. A depth below 1 means the configured depth. The caller's
// board is never modified. ErrNoMoves means the board is full.
func (e *Engine) BestMove(ctx context.Context, b board.Board, side board.Player, depth int) (Answer, error) {
	if depth < 1 {
		depth = e.opts.Depth
	}
	if b.Full() {
		return Answer{}, fmt.Errorf("best move for %s: %w", side, errors.ErrNoMoves)
	}

	if e.opts.UseBook && sideToMove(&b) == side {
		if m, score, ok := e.book.Lookup(&b); ok {
			e.log.Debugw("book move", "side", side, "move", m, "stones", b.Stones())
			return Answer{Move: m, Score: int(score), Source: SourceBook}, nil
		}
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, stats := SearchWithLimits(ctx, &b, side, depth, -Infinity, Infinity, Limits{
		MaxNodes: e.opts.MaxNodes,
		Workers:  e.opts.Workers,
	})
	if !res.HasMove {
		// search always expands the root, so this only happens on a full board
		return Answer{}, fmt.Errorf("best move for %s: %w", side, errors.ErrNoMoves)
	}

	e.log.Debugw("search move",
		"side", side,
		"move", res.Move,
		"score", res.Score,
		"depth", depth,
		"nodes", stats.Nodes,
		"truncated", stats.Truncated,
		"elapsed", time.Since(start),
	)

	return Answer{
		Move:      res.Move,
		Score:     res.Score,
		Source:    SourceSearch,
		Depth:     depth,
		Nodes:     stats.Nodes,
		Truncated: stats.Truncated,
	}, nil
}

// sideToMove follows from the stone count since Black always opens.
func sideToMove(b *board.Board) board.Player {
	if b.Stones()%2 == 0 {
		return board.Black
	}
	return board.White
}
