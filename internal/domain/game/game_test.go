package game

import (
	"testing"

	"gomoku/internal/domain/board"
	"gomoku/internal/statuses"
)

func TestSessionSnapshotRoundTrip(t *testing.T) {
	b := board.New()
	if err := b.Place(board.Move{Row: 7, Col: 7}, board.Black); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := b.Place(board.Move{Row: 6, Col: 8}, board.White); err != nil {
		t.Fatalf("place: %v", err)
	}

	s := &Session{Status: statuses.StatusRunning}
	s.Store(&b)
	if s.Stones != 2 || s.LastMove == nil || *s.LastMove != (board.Move{Row: 6, Col: 8}) {
		t.Fatalf("unexpected stored session: %+v", s)
	}

	restored, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if restored != b {
		t.Fatalf("snapshot differs from stored board")
	}
}

func TestSessionAITurn(t *testing.T) {
	s := &Session{Mode: statuses.ModeVsAI, Status: statuses.StatusRunning, HumanSide: board.Black, ToMove: board.White}
	if !s.AITurn() {
		t.Fatalf("expected the engine to move for white")
	}
	s.ToMove = board.Black
	if s.AITurn() {
		t.Fatalf("expected the human to move")
	}
	s.Mode = statuses.ModeHotSeat
	s.ToMove = board.White
	if s.AITurn() {
		t.Fatalf("hot seat games never call the engine")
	}
}

func TestMessageDecode(t *testing.T) {
	msg, err := NewMessage(`{"type":"move","row":3,"col":4}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Type != MessageMove || msg.Row != 3 || msg.Col != 4 {
		t.Fatalf("unexpected message: %+v", msg)
	}

	if _, err := NewMessage(`{"type":`); err == nil {
		t.Fatalf("expected an error for broken json")
	}
}

func TestMessageEncodesPlayerNames(t *testing.T) {
	out := Message{Type: MessageState, Game: &Session{ToMove: board.White}}.String()
	decoded, err := NewMessage(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Game == nil || decoded.Game.ToMove != board.White {
		t.Fatalf("unexpected round trip: %s", out)
	}
}
