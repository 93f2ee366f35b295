package player

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

func TestPlayClearBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.New(2, 2, 0, r)
	require.NoError(t, err)

	result, err := New(board, r).Play(nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeWon, result.Outcome)
	assert.Len(t, result.Moves, 1)
	assert.Equal(t, StrategyOpening, result.Moves[0].Strategy)
	assert.Empty(t, result.Mines)
}

func TestPlayFullBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.New(2, 2, 4, r)
	require.NoError(t, err)

	result, err := New(board, r).Play(nil)
	require.NoError(t, err)

	assert.Equal(t, OutcomeLost, result.Outcome)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, StrategyRandom, result.Moves[0].Strategy)
	assert.True(t, result.Moves[0].Mine)
}

func TestPlaySeededGame(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	board, err := game.New(9, 9, 10, r)
	require.NoError(t, err)

	p := New(board, r)
	result, err := p.Play(nil)
	require.NoError(t, err)

	assert.Contains(t,
		[]Outcome{OutcomeWon, OutcomeLost, OutcomeStuck}, result.Outcome)
	assert.NotEmpty(t, result.Moves)

	seen := make(map[game.Cell]bool)
	for i, move := range result.Moves {
		assert.False(t, seen[move.Cell], "cell %s opened twice", move.Cell)
		seen[move.Cell] = true
		if move.Mine {
			assert.Equal(t, len(result.Moves)-1, i, "a mine ends the game")
			assert.Equal(t, OutcomeLost, result.Outcome)
		}
	}

	for _, mine := range p.Agent().Mines() {
		assert.NotContains(t, p.Agent().Safes(), mine)
		assert.True(t, board.IsMine(mine), "inferred mine %s is real", mine)
	}

	if result.Outcome == OutcomeWon {
		assert.True(t, board.Won())
		assert.Len(t, result.Mines, board.MineCount())
	}
}

func TestPlayObserver(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	board, err := game.New(4, 4, 2, r)
	require.NoError(t, err)

	var observed []Move
	result, err := New(board, r).Play(func(m Move) {
		observed = append(observed, m)
	})
	require.NoError(t, err)

	assert.Equal(t, result.Moves, observed)
}

func TestPlayManySeeds(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	var won int
	for seed := range uint64(100) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		board, err := game.New(8, 8, 8, r)
		require.NoError(t, err)

		result, err := New(board, r).Play(nil)
		require.NoError(t, err)

		switch result.Outcome {
		case OutcomeWon:
			won++
			assert.True(t, board.Won())
		case OutcomeLost:
			assert.True(t, result.Moves[len(result.Moves)-1].Mine)
		case OutcomeStuck:
			assert.NotEmpty(t, result.Moves)
		default:
			t.Fatalf("unexpected outcome %q", result.Outcome)
		}
	}
	t.Logf("won %d of 100", won)
}
