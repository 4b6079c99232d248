package game

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"gomoku/internal/domain/game"
)

const (
	wsIdlePingInterval = 30 * time.Second
	wsSendBuffer       = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandlePlay
// @Summary Play over a websocket
// @Description Client frames: {"type":"move","row":r,"col":c}, {"type":"hint"}, {"type":"state"}. The server answers with state, hint or error frames and pings when idle.
// @Param id path string true "game id"
// @Router /games/{id}/ws [get]
func (g *GameHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := g.gameUC.GetGame(r.Context(), id)
	if err != nil {
		g.writeError(w, "play", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Errorf("upgrade error: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan []byte, wsSendBuffer)
	writerDone := make(chan error, 1)
	go func() {
		writerDone <- writeWithHeartbeat(conn, send, wsIdlePingInterval)
	}()

	send <- []byte(game.Message{Type: game.MessageState, Game: session}.String())

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.log.Warnf("read error in game %s: %v", id, err)
			}
			break
		}

		reply := g.dispatch(ctx, id, string(data))
		select {
		case send <- []byte(reply.String()):
		case err = <-writerDone:
			g.log.Warnf("write error in game %s: %v", id, err)
			return
		}
	}

	close(send)
	<-writerDone
}

func (g *GameHandler) dispatch(ctx context.Context, id, data string) game.Message {
	msg, err := game.NewMessage(data)
	if err != nil {
		return game.Message{Type: game.MessageError, Error: "malformed message"}
	}

	switch msg.Type {
	case game.MessageMove:
		resp, err := g.gameUC.ApplyMove(ctx, id, game.MoveRequest{Row: msg.Row, Col: msg.Col, Player: msg.Player})
		if err != nil {
			return g.errorMessage("move", err)
		}
		return game.Message{Type: game.MessageState, Game: resp.Game, AI: resp.AI}
	case game.MessageHint:
		hint, err := g.gameUC.Hint(ctx, id)
		if err != nil {
			return g.errorMessage("hint", err)
		}
		return game.Message{Type: game.MessageHint, AI: hint}
	case game.MessageState:
		session, err := g.gameUC.GetGame(ctx, id)
		if err != nil {
			return g.errorMessage("state", err)
		}
		return game.Message{Type: game.MessageState, Game: session}
	default:
		return game.Message{Type: game.MessageError, Error: "unknown message type " + msg.Type}
	}
}

func (g *GameHandler) errorMessage(op string, err error) game.Message {
	if errorStatus(err) == http.StatusInternalServerError {
		g.log.Errorf("%s: %v", op, err)
		return game.Message{Type: game.MessageError, Error: "internal error"}
	}
	return game.Message{Type: game.MessageError, Error: err.Error()}
}

// writeWithHeartbeat owns all writes to conn. It pings when nothing was sent
// for a full interval and returns once send is closed.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
