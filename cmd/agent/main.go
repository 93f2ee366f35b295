package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

var log = logrus.New()

var (
	height    int
	width     int
	mineCount int
	games     int
	seed      uint64
	logFile   string
	verbose   bool
)

func init() {
	flag.IntVar(&height, "height", game.DefaultHeight, "board height")
	flag.IntVar(&width, "width", game.DefaultWidth, "board width")
	flag.IntVar(&mineCount, "mines", 8, "number of mines")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	flag.StringVar(&logFile, "log-file", "", "write logs to a rotated file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	player.Log = log

	if logFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to set up log file: %w", err)
	}
	log.AddHook(hook)
	return nil
}

func playOne(gameSeed uint64) (*player.Result, error) {
	r := rand.New(rand.NewPCG(gameSeed, gameSeed^0x9e3779b97f4a7c15))
	board, err := game.New(height, width, mineCount, r)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Debug("board:\n", board)
	}
	return player.New(board, r).Play(nil)
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	log.WithFields(logrus.Fields{
		"height": height, "width": width, "mines": mineCount,
		"games": games, "seed": seed,
	}).Info("starting up")

	results := make([]*player.Result, games)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range games {
		g.Go(func() error {
			result, err := playOne(seed + uint64(i))
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var won, lost, stuck, moves int
	for _, result := range results {
		switch result.Outcome {
		case player.OutcomeWon:
			won++
		case player.OutcomeLost:
			lost++
		case player.OutcomeStuck:
			stuck++
		}
		moves += len(result.Moves)
	}

	log.WithFields(logrus.Fields{
		"won":       won,
		"lost":      lost,
		"stuck":     stuck,
		"avg moves": float64(moves) / float64(games),
	}).Info("done")

	if verbose && games == 1 {
		for i, move := range results[0].Moves {
			log.Debugf("%3d %-7s %s", i, move.Strategy, move.Cell)
		}
	}

	if lost > 0 && games == 1 {
		os.Exit(1)
	}
}
