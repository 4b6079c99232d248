package engine

import "gomoku/internal/domain/board"

const maxDepthKeys = 16

type zobristTable struct {
	stones [board.Size * board.Size * 2]uint64
	last   [board.Size * board.Size]uint64
	side   uint64
	depth  [maxDepthKeys]uint64
}

var zobrist = newZobristTable()

func newZobristTable() *zobristTable {
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(board.Size)}
	table := &zobristTable{}
	for i := range table.stones {
		table.stones[i] = rng.next()
	}
	for i := range table.last {
		table.last[i] = rng.next()
	}
	table.side = rng.next()
	for i := range table.depth {
		table.depth[i] = rng.next()
	}
	return table
}

// PositionKey hashes everything that can change the engine's answer: stones,
// the last move (it drives move ordering), the side to move and the depth.
func PositionKey(b *board.Board, side board.Player, depth int) uint64 {
	var hash uint64
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			idx := (r*board.Size + c) * 2
			switch b.At(board.Move{Row: r, Col: c}) {
			case board.BlackCell:
				hash ^= zobrist.stones[idx]
			case board.WhiteCell:
				hash ^= zobrist.stones[idx+1]
			}
		}
	}
	if last, ok := b.LastMove(); ok {
		hash ^= zobrist.last[last.Row*board.Size+last.Col]
	}
	if side == board.White {
		hash ^= zobrist.side
	}
	hash ^= zobrist.depth[min(max(depth, 0), maxDepthKeys-1)]
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
