package game

import (
	"context"
	"fmt"
	"strconv"

	"gomoku/internal/domain/board"
	"gomoku/internal/domain/game"
	"gomoku/internal/domain/sgf"
	gameErrors "gomoku/internal/errors"
	"gomoku/internal/statuses"
)

// Record exports the current position as an SGF setup record (GM[4] is gomoku).
func (g *GameUseCase) Record(ctx context.Context, id string) (string, error) {
	session, err := g.store.GetGame(ctx, id)
	if err != nil {
		return "", err
	}
	record, err := PrepareSgfFile(session)
	if err != nil {
		return "", fmt.Errorf("game %s has a broken board: %v: %w", id, err, gameErrors.ErrInternal)
	}
	return record.String(), nil
}

func PrepareSgfFile(session *game.Session) (sgf.SGF, error) {
	b, err := session.Snapshot()
	if err != nil {
		return sgf.SGF{}, err
	}
	root := sgf.Node{
		Properties: map[string][]string{
			"FF": {"4"},
			"GM": {"4"},
			"SZ": {strconv.Itoa(board.Size)},
			"PB": {playerName(session, board.Black)},
			"PW": {playerName(session, board.White)},
			"DT": {session.CreatedAt.Format("2006-01-02")},
			"RE": {result(session)},
			"C":  {session.Mode + " depth " + strconv.Itoa(session.Depth)},
		},
	}
	AddStonesToSgf(&root, &b)
	if !session.Finished() {
		root.Properties["PL"] = []string{sideLetter(session.ToMove)}
	}
	return sgf.SGF{Root: &sgf.GameTree{Nodes: []sgf.Node{root}}}, nil
}

// AddStonesToSgf lists every stone as AB/AW setup points in row-major order.
func AddStonesToSgf(node *sgf.Node, b *board.Board) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			owner, ok := b.At(board.Move{Row: r, Col: c}).Owner()
			if !ok {
				continue
			}
			key := "A" + sideLetter(owner)
			node.Properties[key] = append(node.Properties[key], sgf.Point(r, c))
		}
	}
}

func sideLetter(side board.Player) string {
	if side == board.White {
		return "W"
	}
	return "B"
}

func playerName(session *game.Session, side board.Player) string {
	if session.Mode == statuses.ModeVsAI && session.HumanSide != side {
		return "engine"
	}
	return "human"
}

func result(session *game.Session) string {
	switch session.Status {
	case statuses.StatusBlackWon:
		return "B+"
	case statuses.StatusWhiteWon:
		return "W+"
	case statuses.StatusDraw:
		return "0"
	default:
		return "?"
	}
}
