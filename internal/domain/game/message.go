package game

import (
	"github.com/bytedance/sonic"

	"gomoku/internal/domain/board"
)

const (
	MessageMove  = "move"
	MessageHint  = "hint"
	MessageState = "state"
	MessageError = "error"
)

// Message is the websocket frame in both directions. Clients fill Type and,
// for moves, Row and Col.
type Message struct {
	Type   string        `json:"type"`
	Row    int           `json:"row,omitempty"`
	Col    int           `json:"col,omitempty"`
	Player *board.Player `json:"player,omitempty"`
	Game   *Session      `json:"game,omitempty"`
	AI     *AIMove       `json:"ai,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func NewMessage(str string) (msg Message, err error) {
	err = sonic.UnmarshalString(str, &msg)
	return
}

func (m Message) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
