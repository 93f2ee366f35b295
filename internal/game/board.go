package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DefaultHeight = 8
	DefaultWidth  = 8
)

// Board holds the ground-truth mine placement for a single game. The
// playing agent never reads the grid directly; it only learns about the
// board through NearbyMines counts for the cells it opens.
type Board struct {
	height, width int
	grid          []bool /* real mine points, row-major */
	mineCount     int
	flagged       map[Cell]struct{}
}

func New(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf(
			"invalid mine count %d for a %dx%d board", mineCount, height, width,
		)
	}

	b := &Board{
		height:    height,
		width:     width,
		grid:      make([]bool, height*width),
		mineCount: mineCount,
		flagged:   make(map[Cell]struct{}),
	}

	/*
	 * Write down the list of possible mine locations, then pick
	 * mineCount off it at random.
	 */
	candidates := make([]int, height*width)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		b.grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return b, nil
}

func (b *Board) Height() int { return b.height }

func (b *Board) Width() int { return b.width }

func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < b.height && 0 <= c.Col && c.Col < b.width
}

func (b *Board) IsMine(c Cell) bool {
	return b.grid[c.Row*b.width+c.Col]
}

// NearbyMines returns the number of mines within one row and column of
// c, not counting c itself.
func (b *Board) NearbyMines(c Cell) int {
	count := 0
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: row, Col: col}
			if n == c || !b.InBounds(n) {
				continue
			}
			if b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

// Flag marks a cell as a found mine. Flagging is idempotent and does
// not verify the guess; Won only holds once the flags match the mines
// exactly.
func (b *Board) Flag(c Cell) {
	b.flagged[c] = struct{}{}
}

func (b *Board) Flagged() int {
	return len(b.flagged)
}

// Won reports whether the set of flagged cells is exactly the set of
// mines.
func (b *Board) Won() bool {
	if len(b.flagged) != b.mineCount {
		return false
	}
	for c := range b.flagged {
		if !b.IsMine(c) {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.grid[row*b.width+col] {
				sb.WriteString("* ")
			} else {
				sb.WriteString("- ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
