package engine

import (
	"sync"

	"gomoku/internal/domain/board"
)

// jitterRange bounds the random bonus added to each matching entry.
const jitterRange = 5.0

// RandSource is the part of *rand.Rand the book needs.
type RandSource interface {
	Float64() float64
}

type OpeningEntry struct {
	Name  string
	Moves []board.Move
	Score int
}

// Book matches the current position against a fixed catalog of openings.
type Book struct {
	entries []OpeningEntry

	mu  sync.Mutex
	rng RandSource
}

func NewBook(rng RandSource) *Book {
	return &Book{entries: openingCatalog, rng: rng}
}

func (bk *Book) Entries() []OpeningEntry {
	return bk.entries
}

// Lookup returns the next book move for the position. An entry matches when
// each of its first N moves is either still empty or held by the side that
// would have played it (even index Black, odd index White), and its N-th move
// is free. N is the number of stones on the board.
func (bk *Book) Lookup(b *board.Board) (board.Move, float64, bool) {
	n := b.Stones()
	var (
		best      board.Move
		bestScore float64
		found     bool
	)
	for _, entry := range bk.entries {
		if len(entry.Moves) <= n || !looselyMatches(b, entry.Moves[:n]) {
			continue
		}
		next := entry.Moves[n]
		if !b.IsLegal(next) {
			continue
		}
		score := float64(entry.Score) + bk.jitter()
		if !found || score > bestScore {
			best, bestScore, found = next, score, true
		}
	}
	return best, bestScore, found
}

func (bk *Book) jitter() float64 {
	if bk.rng == nil {
		return 0
	}
	bk.mu.Lock()
	defer bk.mu.Unlock()
	return bk.rng.Float64() * jitterRange
}

func looselyMatches(b *board.Board, prefix []board.Move) bool {
	for i, m := range prefix {
		side := board.Black
		if i%2 == 1 {
			side = board.White
		}
		cell := b.At(m)
		if cell != board.Empty && cell != side.Cell() {
			return false
		}
	}
	return true
}

func mv(row, col int) board.Move {
	return board.Move{Row: row, Col: col}
}

// The strongest replies share a score so the jitter picks between them.
var openingCatalog = []OpeningEntry{
	// white answers directly above the center stone
	{Name: "direct-diagonal", Score: 90, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(6, 8), mv(8, 6), mv(5, 8)}},
	{Name: "direct-diagonal-left", Score: 90, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(6, 6), mv(8, 8), mv(5, 6)}},
	{Name: "direct-knight", Score: 80, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(5, 8), mv(6, 8), mv(5, 7)}},
	{Name: "direct-knight-left", Score: 78, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(5, 6), mv(6, 6), mv(5, 7)}},
	{Name: "direct-side", Score: 75, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(7, 8), mv(8, 8), mv(6, 9)}},
	{Name: "direct-low-diagonal", Score: 72, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(8, 8), mv(6, 6)}},
	{Name: "direct-far", Score: 70, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(5, 7), mv(6, 6)}},
	{Name: "direct-low-left", Score: 68, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(8, 6), mv(6, 8)}},
	{Name: "direct-wide", Score: 60, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(7, 9), mv(6, 8)}},
	{Name: "direct-under", Score: 58, Moves: []board.Move{mv(7, 7), mv(6, 7), mv(8, 7), mv(5, 7)}},

	// white answers on the diagonal
	{Name: "indirect-cross", Score: 90, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(6, 6), mv(8, 8), mv(5, 5)}},
	{Name: "indirect-back", Score: 82, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(8, 8), mv(6, 6)}},
	{Name: "indirect-up", Score: 79, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(6, 7), mv(5, 6)}},
	{Name: "indirect-side", Score: 77, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(7, 8), mv(8, 6)}},
	{Name: "indirect-low", Score: 70, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(8, 7), mv(6, 6)}},
	{Name: "indirect-high", Score: 66, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(5, 8), mv(6, 7)}},
	{Name: "indirect-left", Score: 64, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(7, 6), mv(6, 6)}},
	{Name: "indirect-anti", Score: 62, Moves: []board.Move{mv(7, 7), mv(6, 8), mv(8, 6), mv(5, 9)}},

	// other white replies around the center
	{Name: "below-diagonal", Score: 90, Moves: []board.Move{mv(7, 7), mv(8, 7), mv(8, 6), mv(6, 8), mv(9, 5)}},
	{Name: "right-diagonal", Score: 81, Moves: []board.Move{mv(7, 7), mv(7, 8), mv(6, 8), mv(8, 6)}},
	{Name: "left-diagonal", Score: 80, Moves: []board.Move{mv(7, 7), mv(7, 6), mv(8, 6), mv(6, 8)}},
	{Name: "low-right-anti", Score: 76, Moves: []board.Move{mv(7, 7), mv(8, 8), mv(8, 6), mv(6, 8)}},
	{Name: "low-left-block", Score: 74, Moves: []board.Move{mv(7, 7), mv(8, 6), mv(8, 8), mv(6, 6)}},
	{Name: "high-left-anti", Score: 73, Moves: []board.Move{mv(7, 7), mv(6, 6), mv(8, 6), mv(6, 8)}},
	{Name: "right-row", Score: 60, Moves: []board.Move{mv(7, 7), mv(7, 8), mv(7, 6), mv(7, 9)}},

	// black starts next to the center
	{Name: "offset-left", Score: 55, Moves: []board.Move{mv(7, 6), mv(7, 7), mv(6, 7), mv(8, 8)}},
	{Name: "offset-right", Score: 54, Moves: []board.Move{mv(7, 8), mv(7, 7), mv(8, 7), mv(6, 6)}},
	{Name: "offset-up", Score: 52, Moves: []board.Move{mv(6, 7), mv(7, 7), mv(7, 6), mv(8, 8)}},
	{Name: "offset-down", Score: 51, Moves: []board.Move{mv(8, 7), mv(7, 7), mv(7, 8), mv(6, 6)}},
	{Name: "offset-left-knight", Score: 50, Moves: []board.Move{mv(7, 6), mv(6, 6), mv(8, 7), mv(9, 8)}},
}
