package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/game"
)

var Log = logrus.New()

type Strategy string

const (
	StrategyOpening Strategy = "opening"
	StrategySafe    Strategy = "safe"
	StrategyRandom  Strategy = "random"
)

// Move is one step of a playthrough: which cell was opened, how the
// agent picked it, and what the board answered.
type Move struct {
	Cell        game.Cell `json:"cell"`
	Strategy    Strategy  `json:"strategy"`
	Mine        bool      `json:"mine"`
	NearbyMines int       `json:"nearby_mines"`
}

type Outcome string

const (
	OutcomeWon   Outcome = "won"
	OutcomeLost  Outcome = "lost"
	OutcomeStuck Outcome = "stuck"
)

type Result struct {
	Outcome Outcome     `json:"outcome"`
	Moves   []Move      `json:"moves"`
	Mines   []game.Cell `json:"mines"`
	Safes   int         `json:"safes"`
}

// Player drives one Agent against one Board until the game ends.
type Player struct {
	board *game.Board
	agent *agent.Agent
}

func New(b *game.Board, r *rand.Rand) *Player {
	return &Player{
		board: b,
		agent: agent.New(b.Height(), b.Width(), r),
	}
}

/*
Play runs the game to completion. The first reveal is the privileged
opening move; after that the agent plays any proven-safe cell and only
falls back to a random one when deduction has nothing to offer. Mines
the agent proves are flagged on the board as they are found.

observe, when not nil, is called with every move as it is made.
*/
func (p *Player) Play(observe func(Move)) (*Result, error) {
	result := &Result{Outcome: OutcomeStuck}

	for turn := 0; ; turn++ {
		cell, strategy, ok := p.next(turn)
		if !ok {
			Log.WithField("turn", turn).Debug("no move available")
			break
		}

		move := Move{Cell: cell, Strategy: strategy}
		if p.board.IsMine(cell) {
			move.Mine = true
			result.Moves = append(result.Moves, move)
			result.Outcome = OutcomeLost
			if observe != nil {
				observe(move)
			}
			Log.WithFields(logrus.Fields{
				"cell": cell.String(), "strategy": strategy, "turn": turn,
			}).Debug("stepped on a mine")
			break
		}

		move.NearbyMines = p.board.NearbyMines(cell)
		result.Moves = append(result.Moves, move)
		if observe != nil {
			observe(move)
		}

		if err := p.agent.AddKnowledge(cell, move.NearbyMines); err != nil {
			return nil, fmt.Errorf("knowledge base rejected reveal %s: %w", cell, err)
		}

		for _, mine := range p.agent.Mines() {
			p.board.Flag(mine)
		}
		if p.board.Won() {
			result.Outcome = OutcomeWon
			break
		}
	}

	result.Mines = p.agent.Mines()
	result.Safes = len(p.agent.Safes())
	return result, nil
}

func (p *Player) next(turn int) (game.Cell, Strategy, bool) {
	if turn == 0 {
		if c, ok := p.agent.OpeningMove(p.board); ok {
			return c, StrategyOpening, true
		}
		/* Boards with no clear opening fall through to the usual policy. */
	}
	if c, ok := p.agent.SafeMove(); ok {
		return c, StrategySafe, true
	}
	if c, ok := p.agent.RandomMove(); ok {
		return c, StrategyRandom, true
	}
	return game.Cell{}, "", false
}

func (p *Player) Agent() *agent.Agent {
	return p.agent
}
