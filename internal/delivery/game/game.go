package game

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gomoku/internal/domain/game"
	gameErrors "gomoku/internal/errors"
	"gomoku/internal/httpresponse"
	"gomoku/internal/utils"
)

type GameService interface {
	NewGame(ctx context.Context, req game.CreateGameRequest) (*game.MoveResponse, error)
	GetGame(ctx context.Context, id string) (*game.Session, error)
	ApplyMove(ctx context.Context, id string, req game.MoveRequest) (*game.MoveResponse, error)
	Hint(ctx context.Context, id string) (*game.AIMove, error)
	Record(ctx context.Context, id string) (string, error)
}

type GameHandler struct {
	log    *zap.SugaredLogger
	gameUC GameService
}

func NewGameHandler(log *zap.SugaredLogger, gameUC GameService) *GameHandler {
	return &GameHandler{
		log:    log,
		gameUC: gameUC,
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Post("/games", g.HandleNewGame)
	r.Get("/games/{id}", g.HandleGetGame)
	r.Post("/games/{id}/moves", g.HandleMove)
	r.Get("/games/{id}/hint", g.HandleHint)
	r.Get("/games/{id}/sgf", g.HandleRecord)
	r.Get("/games/{id}/ws", g.HandlePlay)
}

// HandleNewGame
// @Summary Start a game
// @Description Creates a vs_ai or hot_seat session. When the engine plays black its first move is already applied.
// @Accept json
// @Produce json
// @Param request body game.CreateGameRequest false "mode, human side and depth"
// @Success 200 {object} game.MoveResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Router /games [post]
func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req game.CreateGameRequest
	if err := utils.DecodeOptionalJSONRequest(r, &req); err != nil {
		g.log.Warnf("new game: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	resp, err := g.gameUC.NewGame(r.Context(), req)
	if err != nil {
		g.writeError(w, "new game", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleGetGame
// @Summary Game state
// @Produce json
// @Param id path string true "game id"
// @Success 200 {object} game.Session
// @Failure 404 {object} httpresponse.ErrorResponse
// @Router /games/{id} [get]
func (g *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := g.gameUC.GetGame(r.Context(), id)
	if err != nil {
		g.writeError(w, "get game", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, session)
}

// HandleMove
// @Summary Play a move
// @Description Applies the move for the side to move. In vs_ai games the engine reply is applied too.
// @Accept json
// @Produce json
// @Param id path string true "game id"
// @Param request body game.MoveRequest true "row and col"
// @Success 200 {object} game.MoveResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 404 {object} httpresponse.ErrorResponse
// @Failure 409 {object} httpresponse.ErrorResponse
// @Router /games/{id}/moves [post]
func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Warnf("move in %s: %v", id, err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	resp, err := g.gameUC.ApplyMove(r.Context(), id, req)
	if err != nil {
		g.writeError(w, "move", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleHint
// @Summary Suggest a move
// @Description Returns the engine's choice for the side to move without playing it.
// @Produce json
// @Param id path string true "game id"
// @Success 200 {object} game.AIMove
// @Failure 404 {object} httpresponse.ErrorResponse
// @Failure 409 {object} httpresponse.ErrorResponse
// @Router /games/{id}/hint [get]
func (g *GameHandler) HandleHint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hint, err := g.gameUC.Hint(r.Context(), id)
	if err != nil {
		g.writeError(w, "hint", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, hint)
}

// HandleRecord
// @Summary Export the game as SGF
// @Produce json
// @Param id path string true "game id"
// @Success 200 {object} game.RecordResponse
// @Failure 404 {object} httpresponse.ErrorResponse
// @Router /games/{id}/sgf [get]
func (g *GameHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := g.gameUC.Record(r.Context(), id)
	if err != nil {
		g.writeError(w, "record", err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.RecordResponse{SGF: record})
}

func (g *GameHandler) writeError(w http.ResponseWriter, op string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		g.log.Errorf("%s: %v", op, err)
		httpresponse.WriteErrorResponse(w, status, gameErrors.ErrInternal.Error())
		return
	}
	g.log.Infof("%s rejected: %v", op, err)
	httpresponse.WriteErrorResponse(w, status, err.Error())
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, gameErrors.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, gameErrors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, gameErrors.ErrInvalidMove),
		errors.Is(err, gameErrors.ErrNotYourTurn),
		errors.Is(err, gameErrors.ErrGameFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
