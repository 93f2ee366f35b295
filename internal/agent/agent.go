package agent

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/gammazero/deque"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

var Log *slog.Logger = slog.Default()

// randomMoveAttempts bounds the rejection sampling in RandomMove and
// OpeningMove. Enough attempts that coming up empty effectively means
// the board has no candidate cells left.
const randomMoveAttempts = 500

// fact is a deduced certainty about a single cell, queued for
// application to the knowledge base.
type fact struct {
	cell game.Cell
	mine bool
}

/*
An Agent accumulates sentences about an unobserved minefield and runs
set-based deduction over them to find provably safe cells and mines.

One Agent plays one game; it is not safe for concurrent use.
*/
type Agent struct {
	height, width int
	movesMade     set[game.Cell]
	safes         set[game.Cell]
	mines         set[game.Cell]
	knowledge     []*Sentence
	rnd           *rand.Rand
}

func New(height, width int, r *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		movesMade: newSet[game.Cell](),
		safes:     newSet[game.Cell](),
		mines:     newSet[game.Cell](),
		rnd:       r,
	}
}

// MarkMine records a cell as a proven mine and folds that fact into
// every sentence. It does not rerun inference; AddKnowledge does.
func (a *Agent) MarkMine(c game.Cell) {
	if a.safes.Has(c) {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as both mine and safe", c,
		)})
	}
	a.mines.Add(c)
	for _, s := range a.knowledge {
		s.MarkMine(c)
	}
}

// MarkSafe records a cell as proven safe and folds that fact into
// every sentence. It does not rerun inference; AddKnowledge does.
func (a *Agent) MarkSafe(c game.Cell) {
	if a.mines.Has(c) {
		panic(AssertionError{fmt.Sprintf(
			"cell %s marked as both safe and mine", c,
		)})
	}
	a.safes.Add(c)
	for _, s := range a.knowledge {
		s.MarkSafe(c)
	}
}

/*
AddKnowledge is the central transition of the knowledge base, invoked
once per opened cell with the board's nearby-mine count for it. It
records the move, folds the reveal into a new sentence over the still
unknown neighbors, and then runs deduction to a fixed point.

A contradiction discovered during deduction means the inputs were
inconsistent and is returned as an [AssertionError].
*/
func (a *Agent) AddKnowledge(c game.Cell, count int) (err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = ae
			} else {
				panic(r)
			}
		}
	}()

	if c.Row < 0 || c.Row >= a.height || c.Col < 0 || c.Col >= a.width {
		return fmt.Errorf("cell %s out of %dx%d bounds", c, a.height, a.width)
	}
	if count < 0 || count > 8 {
		return fmt.Errorf("invalid nearby mine count %d for cell %s", count, c)
	}

	a.movesMade.Add(c)
	a.MarkSafe(c)

	/*
	 * Build a sentence over the neighbors whose status is still
	 * unknown. Neighbors already proven to be mines are accounted
	 * for by decrementing the count; proven safe ones carry no
	 * information and are left out.
	 */
	unknown := newSet[game.Cell]()
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := game.Cell{Row: row, Col: col}
			if n == c || row < 0 || row >= a.height || col < 0 || col >= a.width {
				continue
			}
			if a.mines.Has(n) {
				count--
				continue
			}
			if !a.safes.Has(n) {
				unknown.Add(n)
			}
		}
	}
	if len(unknown) > 0 {
		a.knowledge = append(a.knowledge, newSentence(unknown, count))
	}

	a.infer()

	Log.Debug("knowledge added",
		slog.Any("cell", c),
		slog.Int("count", count),
		slog.Int("knowledge", len(a.knowledge)),
		slog.Int("safes", len(a.safes)),
		slog.Int("mines", len(a.mines)),
	)
	return nil
}

/*
infer runs the simplification loop until a full pass discovers no new
fact, prunes no sentence and derives no new sentence. A single sweep is
not enough: marking one cell safe can expose a trivial sentence, which
exposes a mine, which unlocks another subset resolution, and so on.
*/
func (a *Agent) infer() {
	var pending deque.Deque[fact]

	for {
		changed := false

		/*
		 * Collect every cell some sentence now fully determines,
		 * then apply them. Applying a fact mutates all sentences
		 * and may produce new trivial deductions, which the next
		 * pass picks up.
		 */
		for _, s := range a.knowledge {
			for _, c := range s.KnownSafes() {
				pending.PushBack(fact{cell: c})
			}
			for _, c := range s.KnownMines() {
				pending.PushBack(fact{cell: c, mine: true})
			}
		}
		for pending.Len() > 0 {
			f := pending.PopFront()
			if f.mine && !a.mines.Has(f.cell) {
				a.MarkMine(f.cell)
				changed = true
			} else if !f.mine && !a.safes.Has(f.cell) {
				a.MarkSafe(f.cell)
				changed = true
			}
		}

		/* Drop fully resolved sentences and exact duplicates. */
		kept := make([]*Sentence, 0, len(a.knowledge))
		for _, s := range a.knowledge {
			if s.Empty() {
				changed = true
				continue
			}
			dup := false
			for _, k := range kept {
				if k.Equal(s) {
					dup = true
					break
				}
			}
			if dup {
				changed = true
				continue
			}
			kept = append(kept, s)
		}
		a.knowledge = kept

		/*
		 * Subset resolution: when one sentence's cells are a strict
		 * subset of another's, the superset splits into the subset
		 * and a remainder with the count difference.
		 */
		var derived []*Sentence
		for i, s := range a.knowledge {
			for _, t := range a.knowledge[i+1:] {
				var sub, super *Sentence
				if t.cells.Subset(s.cells) && !t.cells.Equal(s.cells) {
					sub, super = t, s
				} else if s.cells.Subset(t.cells) && !s.cells.Equal(t.cells) {
					sub, super = s, t
				} else {
					continue
				}
				remainder := newSentence(
					super.cells.Difference(sub.cells),
					super.count-sub.count,
				)
				if !a.knows(remainder) && !containsSentence(derived, remainder) {
					derived = append(derived, remainder)
				}
			}
		}
		if len(derived) > 0 {
			a.knowledge = append(a.knowledge, derived...)
			changed = true
		}

		if !changed {
			return
		}
	}
}

func (a *Agent) knows(s *Sentence) bool {
	return containsSentence(a.knowledge, s)
}

func containsSentence(knowledge []*Sentence, s *Sentence) bool {
	for _, k := range knowledge {
		if k.Equal(s) {
			return true
		}
	}
	return false
}

// SafeMove returns a cell proven safe that has not been played yet.
// The scan is row-major, so repeated calls with unchanged state return
// the same cell.
func (a *Agent) SafeMove() (game.Cell, bool) {
	for row := range a.height {
		for col := range a.width {
			c := game.Cell{Row: row, Col: col}
			if a.safes.Has(c) && !a.movesMade.Has(c) && !a.mines.Has(c) {
				return c, true
			}
		}
	}
	return game.Cell{}, false
}

// RandomMove samples a cell that is not a known mine and has not been
// played, by rejection within a fixed attempt budget. Failing the
// budget means "no move found", not an error.
func (a *Agent) RandomMove() (game.Cell, bool) {
	for range randomMoveAttempts {
		c := game.Cell{Row: a.rnd.IntN(a.height), Col: a.rnd.IntN(a.width)}
		if !a.mines.Has(c) && !a.movesMade.Has(c) {
			return c, true
		}
	}
	return game.Cell{}, false
}

// OpeningMove samples a cell that is a true non-mine with no adjacent
// mines, peeking at the board's ground truth. It exists only to
// guarantee a clean first reveal and must not be used once the agent
// has any knowledge.
func (a *Agent) OpeningMove(b *game.Board) (game.Cell, bool) {
	for range randomMoveAttempts {
		c := game.Cell{Row: a.rnd.IntN(a.height), Col: a.rnd.IntN(a.width)}
		if !b.IsMine(c) && b.NearbyMines(c) == 0 {
			return c, true
		}
	}
	return game.Cell{}, false
}

func (a *Agent) MovesMade() []game.Cell {
	return sortedCells(a.movesMade)
}

func (a *Agent) Safes() []game.Cell {
	return sortedCells(a.safes)
}

func (a *Agent) Mines() []game.Cell {
	return sortedCells(a.mines)
}

func (a *Agent) KnowledgeSize() int {
	return len(a.knowledge)
}

func sortedCells(s set[game.Cell]) []game.Cell {
	cells := s.Items()
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}
