package main

import (
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

type watchFrame struct {
	Move   *player.Move   `json:"move,omitempty"`
	Result *player.Result `json:"result,omitempty"`
}

// handleWatch streams one playthrough over a websocket, one frame per
// move followed by a final result frame.
func (app *application) handleWatch(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeNewGame(r.URL.Query())
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	rnd := gameRand(dto.Seed)
	board, err := game.New(dto.Height, dto.Width, dto.MineCount, rnd)
	if err != nil {
		app.badRequest(w, err.Error())
		return
	}

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("failed to upgrade connection", slog.Any("error", err))
		return
	}
	defer conn.Close()

	var writeErr error
	result, err := player.New(board, rnd).Play(func(m player.Move) {
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(watchFrame{Move: &m})
	})
	if err != nil {
		app.logger.Error("playthrough failed", slog.Any("error", err))
		return
	}
	if writeErr != nil {
		app.logger.Debug("watcher went away", slog.Any("error", writeErr))
		return
	}

	if err := conn.WriteJSON(watchFrame{Result: result}); err != nil {
		app.logger.Debug("failed to send result", slog.Any("error", err))
	}
}
