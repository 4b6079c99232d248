package engine

import (
	"sort"

	"gomoku/internal/domain/board"
)

const (
	centerWeight = 2
	recentWeight = 3
)

type rankedMove struct {
	move  board.Move
	score int
}

// Prioritize orders every empty cell so that moves near the center and near
// the opponent's last stone come first. Equal scores keep row-major order.
func Prioritize(b *board.Board, last *board.Move) []board.Move {
	cells := b.EmptyCells()
	ranked := make([]rankedMove, len(cells))
	for i, m := range cells {
		score := -centerWeight * chebyshev(m, centerMove)
		if last != nil {
			score -= recentWeight * chebyshev(m, *last)
		}
		ranked[i] = rankedMove{move: m, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i := range ranked {
		cells[i] = ranked[i].move
	}
	return cells
}

func lastMoveOf(b *board.Board) *board.Move {
	if m, ok := b.LastMove(); ok {
		return &m
	}
	return nil
}
