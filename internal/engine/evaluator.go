package engine

import "gomoku/internal/domain/board"

const (
	fiveScore      = 100000
	openFourScore  = 10000
	halfFourScore  = 1000
	openThreeScore = 500
	halfThreeScore = 100
	openTwoScore   = 50
	halfTwoScore   = 10
	singleScore    = 1

	// positional weight decays to this floor once the board fills up
	positionalBase  = 10
	positionalDecay = 20
	positionalFloor = 1
)

var centerMove = board.Move{Row: board.Size / 2, Col: board.Size / 2}

// Evaluate scores the position for perspective. The sum is built from
// White's point of view and negated for Black.
func Evaluate(b *board.Board, perspective board.Player) int {
	weight := max(positionalFloor, positionalDecay-b.Stones())
	total := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			m := board.Move{Row: r, Col: c}
			owner, ok := b.At(m).Owner()
			if !ok {
				continue
			}
			score := stoneScore(b, m, owner.Cell())
			score += (positionalBase - chebyshev(m, centerMove)) * weight
			if owner == board.White {
				total += score
			} else {
				total -= score
			}
		}
	}
	if perspective == board.Black {
		return -total
	}
	return total
}

func stoneScore(b *board.Board, m board.Move, cell board.Cell) int {
	score := 0
	for _, axis := range board.Axes {
		run, open := linePattern(b, m, axis[0], axis[1], cell)
		score += lineScore(run, open)
	}
	return score
}

// linePattern measures the run through m along one axis and how many of its
// two ends are free.
func linePattern(b *board.Board, m board.Move, dr, dc int, cell board.Cell) (run, open int) {
	run = 1
	for _, sign := range [2]int{1, -1} {
		next := board.Move{Row: m.Row + sign*dr, Col: m.Col + sign*dc}
		for next.InBounds() && b.At(next) == cell {
			run++
			next.Row += sign * dr
			next.Col += sign * dc
		}
		if next.InBounds() && b.At(next) == board.Empty {
			open++
		}
	}
	return run, open
}

func lineScore(run, open int) int {
	if run >= board.WinLength {
		return fiveScore
	}
	if open == 0 {
		return 0
	}
	switch run {
	case 4:
		if open == 2 {
			return openFourScore
		}
		return halfFourScore
	case 3:
		if open == 2 {
			return openThreeScore
		}
		return halfThreeScore
	case 2:
		if open == 2 {
			return openTwoScore
		}
		return halfTwoScore
	default:
		return singleScore
	}
}

func chebyshev(a, b board.Move) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
