package engine

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gomoku/internal/domain/board"
)

const (
	// WinScore is what a node reports when the side to move can finish a five.
	WinScore = 10000

	Infinity = math.MaxInt32
)

type Result struct {
	Move    board.Move
	HasMove bool
	Score   int
}

// Limits bound a single search. Zero values mean unlimited.
type Limits struct {
	MaxNodes int64
	Workers  int
}

type Stats struct {
	Nodes     int64
	Truncated bool
}

type searcher struct {
	ctx       context.Context
	maxNodes  int64
	rootDepth int

	nodes     atomic.Int64
	truncated atomic.Bool
}

// Search runs minimax with alpha-beta pruning. White maximizes, Black
// minimizes, and leaf scores are always taken from White's side. The board is
// restored before Search returns.
func Search(b *board.Board, side board.Player, depth, alpha, beta int) Result {
	res, _ := SearchWithLimits(context.Background(), b, side, depth, alpha, beta, Limits{})
	return res
}

// SearchWithLimits is Search with a node budget, cancellation and optional
// parallel evaluation of root moves. Once the budget runs out the remaining
// nodes are scored as leaves, so a move is still returned.
func SearchWithLimits(ctx context.Context, b *board.Board, side board.Player, depth, alpha, beta int, limits Limits) (Result, Stats) {
	s := &searcher{ctx: ctx, maxNodes: limits.MaxNodes, rootDepth: depth}
	var res Result
	if limits.Workers > 1 && depth > 1 {
		res = s.parallelRoot(b, side, depth, limits.Workers)
	} else {
		res = s.search(b, side, depth, alpha, beta)
	}
	return res, Stats{Nodes: s.nodes.Load(), Truncated: s.truncated.Load()}
}

func (s *searcher) search(b *board.Board, side board.Player, depth, alpha, beta int) Result {
	n := s.nodes.Add(1)
	if depth <= 0 || (depth < s.rootDepth && s.exhausted(n)) {
		return Result{Score: Evaluate(b, board.White)}
	}

	candidates := Prioritize(b, lastMoveOf(b))
	if len(candidates) == 0 {
		return Result{Score: Evaluate(b, board.White)}
	}
	if m, ok := immediateWin(b, candidates, side); ok {
		return Result{Move: m, HasMove: true, Score: winScore(side)}
	}

	best := Result{Score: worstScore(side)}
	for _, m := range candidates {
		score := s.child(b, m, side, depth, alpha, beta)
		if !best.HasMove || improves(side, score, best.Score) {
			best = Result{Move: m, HasMove: true, Score: score}
		}
		if side == board.White {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

func (s *searcher) child(b *board.Board, m board.Move, side board.Player, depth, alpha, beta int) int {
	cp := b.Try(m, side)
	defer b.Rollback(cp)
	return s.search(b, side.Opponent(), depth-1, alpha, beta).Score
}

// parallelRoot scores every root move on its own copy of the board with a
// full window, then keeps the first best one in candidate order.
func (s *searcher) parallelRoot(b *board.Board, side board.Player, depth, workers int) Result {
	s.nodes.Add(1)
	candidates := Prioritize(b, lastMoveOf(b))
	if len(candidates) == 0 {
		return Result{Score: Evaluate(b, board.White)}
	}
	if m, ok := immediateWin(b, candidates, side); ok {
		return Result{Move: m, HasMove: true, Score: winScore(side)}
	}

	scores := make([]int, len(candidates))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, m := range candidates {
		i, m := i, m
		local := b.Clone()
		g.Go(func() error {
			local.Try(m, side)
			scores[i] = s.search(&local, side.Opponent(), depth-1, -Infinity, Infinity).Score
			return nil
		})
	}
	_ = g.Wait()

	best := Result{Move: candidates[0], HasMove: true, Score: scores[0]}
	for i := 1; i < len(candidates); i++ {
		if improves(side, scores[i], best.Score) {
			best = Result{Move: candidates[i], HasMove: true, Score: scores[i]}
		}
	}
	return best
}

func (s *searcher) exhausted(n int64) bool {
	if s.truncated.Load() {
		return true
	}
	if s.maxNodes > 0 && n > s.maxNodes {
		s.truncated.Store(true)
		return true
	}
	select {
	case <-s.ctx.Done():
		s.truncated.Store(true)
		return true
	default:
		return false
	}
}

// immediateWin returns the first candidate that completes five for side.
func immediateWin(b *board.Board, candidates []board.Move, side board.Player) (board.Move, bool) {
	for _, m := range candidates {
		cp := b.Try(m, side)
		won := b.CheckWin(m, side)
		b.Rollback(cp)
		if won {
			return m, true
		}
	}
	return board.Move{}, false
}

func winScore(side board.Player) int {
	if side == board.White {
		return WinScore
	}
	return -WinScore
}

func worstScore(side board.Player) int {
	if side == board.White {
		return -Infinity
	}
	return Infinity
}

func improves(side board.Player, score, best int) bool {
	if side == board.White {
		return score > best
	}
	return score < best
}
