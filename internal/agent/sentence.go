package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

/*
A Sentence is an atomic clause about the board: exactly `count` of
`cells` are mines. The knowledge base owns every sentence it holds;
sentences are never shared or aliased outside the agent.

Invariant: 0 <= count <= len(cells) after every mutation. A mutation
that would break it means the caller fed the knowledge base
contradictory facts, which is a bug, so it panics [AssertionError].
*/
type Sentence struct {
	cells set[game.Cell]
	count int
}

func NewSentence(cells []game.Cell, count int) (*Sentence, error) {
	s := &Sentence{cells: newSet(cells...), count: count}
	if count < 0 || count > len(s.cells) {
		return nil, fmt.Errorf(
			"invalid sentence: count %d over %d cells", count, len(s.cells),
		)
	}
	return s, nil
}

// newSentence is the internal constructor for derived sentences; a
// derivation that breaks the count invariant is an inference bug.
func newSentence(cells set[game.Cell], count int) *Sentence {
	if count < 0 || count > len(cells) {
		panic(AssertionError{fmt.Sprintf(
			"derived contradictory sentence: count %d over %d cells",
			count, len(cells),
		)})
	}
	return &Sentence{cells: cells, count: count}
}

// KnownMines returns every cell of the sentence when all of them must
// be mines, i.e. the count equals the number of remaining cells.
func (s *Sentence) KnownMines() []game.Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.cells.Items()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when none of them can
// be a mine, i.e. the count is zero.
func (s *Sentence) KnownSafes() []game.Cell {
	if len(s.cells) > 0 && s.count == 0 {
		return s.cells.Items()
	}
	return nil
}

// MarkMine removes a cell known to be a mine, accounting for it in the
// count. No-op when the cell is not part of the sentence.
func (s *Sentence) MarkMine(c game.Cell) {
	if !s.cells.Has(c) {
		return
	}
	if s.count == 0 {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as mine in an all-safe sentence %s", c, s,
		)})
	}
	s.cells.Delete(c)
	s.count--
}

// MarkSafe removes a cell known to be safe; a safe cell contributes
// nothing to the count. No-op when the cell is not part of the
// sentence.
func (s *Sentence) MarkSafe(c game.Cell) {
	if !s.cells.Has(c) {
		return
	}
	if s.count == len(s.cells) {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as safe in an all-mine sentence %s", c, s,
		)})
	}
	s.cells.Delete(c)
}

// Equal compares by value: same cell set, same count.
func (s *Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

// Empty sentences carry no information and are pruned by the knowledge
// base.
func (s *Sentence) Empty() bool {
	return len(s.cells) == 0
}

func (s *Sentence) Count() int {
	return s.count
}

func (s *Sentence) Cells() []game.Cell {
	cells := s.cells.Items()
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

func (s *Sentence) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, c := range s.Cells() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
	}
	fmt.Fprintf(&sb, "} = %d", s.count)
	return sb.String()
}
