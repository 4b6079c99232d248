package board

// Axes are the four undirected line directions as (dRow, dCol).
var Axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether the stone player has at m completes five in a row.
// The acting player is always explicit; a cell held by anyone else never wins.
func (b *Board) CheckWin(m Move, player Player) bool {
	if !m.InBounds() || b.At(m) != player.Cell() {
		return false
	}
	for _, axis := range Axes {
		count := 1
		count += b.countDirection(m, axis[0], axis[1], player.Cell())
		count += b.countDirection(m, -axis[0], -axis[1], player.Cell())
		if count >= WinLength {
			return true
		}
	}
	return false
}

// CheckDraw is true when the grid is full and nobody has five in a row.
func (b *Board) CheckDraw() bool {
	if !b.Full() {
		return false
	}
	return !b.hasAnyFive()
}

func (b *Board) countDirection(m Move, dr, dc int, cell Cell) int {
	count := 0
	r, c := m.Row+dr, m.Col+dc
	for r >= 0 && r < Size && c >= 0 && c < Size && b.cells[r][c] == cell {
		count++
		r += dr
		c += dc
	}
	return count
}

func (b *Board) hasAnyFive() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			player, ok := b.cells[r][c].Owner()
			if !ok {
				continue
			}
			if b.CheckWin(Move{Row: r, Col: c}, player) {
				return true
			}
		}
	}
	return false
}
