package game

import (
	"time"

	"gomoku/internal/domain/board"
	"gomoku/internal/statuses"
)

type Session struct {
	ID        string       `json:"id" bson:"_id"`
	Mode      string       `json:"mode" bson:"mode"`
	HumanSide board.Player `json:"human_side" bson:"human_side"`
	Depth     int          `json:"depth" bson:"depth"`
	Status    string       `json:"status" bson:"status"`
	Winner    string       `json:"winner,omitempty" bson:"winner,omitempty"`
	ToMove    board.Player `json:"to_move" bson:"to_move"`
	Rows      []string     `json:"board" bson:"board"`
	LastMove  *board.Move  `json:"last_move,omitempty" bson:"last_move,omitempty"`
	Stones    int          `json:"stones" bson:"stones"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// Snapshot rebuilds the board from the stored rows.
func (s *Session) Snapshot() (board.Board, error) {
	b, err := board.ParseRows(s.Rows)
	if err != nil {
		return board.Board{}, err
	}
	if s.LastMove != nil {
		b.SetLastMove(*s.LastMove)
	}
	return b, nil
}

// Store writes the board back into the session.
func (s *Session) Store(b *board.Board) {
	s.Rows = b.Rows()
	s.Stones = b.Stones()
	if last, ok := b.LastMove(); ok {
		s.LastMove = &last
	} else {
		s.LastMove = nil
	}
}

func (s *Session) Finished() bool {
	return s.Status != statuses.StatusRunning
}

// AITurn reports whether the engine should play the side to move.
func (s *Session) AITurn() bool {
	return s.Mode == statuses.ModeVsAI && !s.Finished() && s.ToMove != s.HumanSide
}

type CreateGameRequest struct {
	Mode      string `json:"mode"`
	HumanSide string `json:"human_side"`
	Depth     int    `json:"depth"`
}

type MoveRequest struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Player *board.Player `json:"player,omitempty"`
}

// AIMove is an engine answer as shown to clients.
type AIMove struct {
	Move      board.Move `json:"move"`
	Score     int        `json:"score"`
	Source    string     `json:"source"`
	Depth     int        `json:"depth,omitempty"`
	Nodes     int64      `json:"nodes,omitempty"`
	Truncated bool       `json:"truncated,omitempty"`
	Cached    bool       `json:"cached,omitempty"`
}

type MoveResponse struct {
	Game *Session `json:"game"`
	AI   *AIMove  `json:"ai,omitempty"`
}

type RecordResponse struct {
	SGF string `json:"sgf"`
}
