package main

import (
	"context"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/middleware"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	ws, err := config.NewWebSocket()
	if err != nil {
		logger.Error("failed to read ws config", "error", err)
		return
	}

	app := &application{
		logger: logger,
		ws:     ws,
	}

	port := config.Port()
	server := &http.Server{
		Addr: port,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Cors(),
			middleware.Logging(logger),
		),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	logger.Info("agent online", slog.String("port", port))

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Info("exiting", slog.Any("reason", err))
	}
}
