package main

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

// gameRand returns the random source for one playthrough. A non-zero
// seed makes the run reproducible.
func gameRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return createRand()
}

func (app *application) handleSolve(w http.ResponseWriter, r *http.Request) {
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

	result, err := player.New(board, rnd).Play(nil)
	if err != nil {
		app.internalError(w, "playthrough failed", slog.Any("error", err))
		return
	}

	app.replyWith(w, result)
}
