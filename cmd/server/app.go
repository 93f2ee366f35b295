package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/config"
)

type application struct {
	logger *slog.Logger
	ws     *config.WebSocket
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /games/solve", app.handleSolve)
	mux.HandleFunc("GET /games/watch", app.handleWatch)
	return mux
}

func (app *application) badRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(msg))
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("internal error"))
	app.logger.Error(msg, args...)
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		app.logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}
