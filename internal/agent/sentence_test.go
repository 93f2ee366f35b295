package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

func cells(pairs ...[2]int) []game.Cell {
	cs := make([]game.Cell, len(pairs))
	for i, p := range pairs {
		cs[i] = game.Cell{Row: p[0], Col: p[1]}
	}
	return cs
}

func TestNewSentenceValidation(t *testing.T) {
	_, err := NewSentence(cells([2]int{0, 0}), -1)
	assert.Error(t, err)
	_, err = NewSentence(cells([2]int{0, 0}), 2)
	assert.Error(t, err)

	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())
}

func TestKnownMines(t *testing.T) {
	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, cells([2]int{0, 0}, [2]int{0, 1}), s.KnownMines())
	assert.Empty(t, s.KnownSafes())

	s, err = NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1)
	require.NoError(t, err)
	assert.Empty(t, s.KnownMines())
	assert.Empty(t, s.KnownSafes())
}

func TestKnownSafes(t *testing.T) {
	s, err := NewSentence(cells([2]int{1, 1}, [2]int{1, 2}), 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, cells([2]int{1, 1}, [2]int{1, 2}), s.KnownSafes())
	assert.Empty(t, s.KnownMines())
}

func TestMarkMine(t *testing.T) {
	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 1)
	require.NoError(t, err)

	s.MarkMine(game.Cell{Row: 0, Col: 1})
	assert.Equal(t, 0, s.Count())
	assert.ElementsMatch(t, cells([2]int{0, 0}, [2]int{0, 2}), s.KnownSafes())

	/* marking a cell outside the sentence changes nothing */
	s.MarkMine(game.Cell{Row: 5, Col: 5})
	s.MarkMine(game.Cell{Row: 0, Col: 1})
	assert.Equal(t, 0, s.Count())
	assert.Len(t, s.Cells(), 2)
}

func TestMarkSafe(t *testing.T) {
	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 1)
	require.NoError(t, err)

	s.MarkSafe(game.Cell{Row: 0, Col: 0})
	assert.Equal(t, 1, s.Count())
	assert.Len(t, s.Cells(), 2)

	s.MarkSafe(game.Cell{Row: 0, Col: 0})
	s.MarkSafe(game.Cell{Row: 9, Col: 9})
	assert.Equal(t, 1, s.Count())
	assert.Len(t, s.Cells(), 2)

	s.MarkSafe(game.Cell{Row: 0, Col: 1})
	assert.ElementsMatch(t, cells([2]int{0, 2}), s.KnownMines())
}

func TestMarkKeepsInvariant(t *testing.T) {
	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}), 2)
	require.NoError(t, err)

	s.MarkMine(game.Cell{Row: 0, Col: 0})
	s.MarkSafe(game.Cell{Row: 0, Col: 1})
	s.MarkMine(game.Cell{Row: 1, Col: 0})

	assert.GreaterOrEqual(t, s.Count(), 0)
	assert.LessOrEqual(t, s.Count(), len(s.Cells()))
}

func TestMarkContradictionPanics(t *testing.T) {
	s, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 0)
	require.NoError(t, err)
	assert.Panics(t, func() { s.MarkMine(game.Cell{Row: 0, Col: 0}) })

	s, err = NewSentence(cells([2]int{0, 0}), 1)
	require.NoError(t, err)
	assert.Panics(t, func() { s.MarkSafe(game.Cell{Row: 0, Col: 0}) })
}

func TestSentenceEqual(t *testing.T) {
	a, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 1)
	require.NoError(t, err)
	b, err := NewSentence(cells([2]int{0, 1}, [2]int{0, 0}), 1)
	require.NoError(t, err)
	c, err := NewSentence(cells([2]int{0, 0}, [2]int{0, 1}), 2)
	require.NoError(t, err)
	d, err := NewSentence(cells([2]int{0, 0}), 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestSentenceString(t *testing.T) {
	s, err := NewSentence(cells([2]int{1, 0}, [2]int{0, 1}), 1)
	require.NoError(t, err)
	assert.Equal(t, "{(0,1) (1,0)} = 1", s.String())
}
