package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Empty marks a cell without a piece. Players are numbered from 1.
const Empty = 0

// Eight unit vectors around a cell
var directions = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// Position is a (row, col) cell on the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) step(dir [2]int) Position {
	return Position{Row: p.Row + dir[0], Col: p.Col + dir[1]}
}

// comparePositions orders positions row-major.
func comparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Grid is a row-major snapshot of the board: one owner id per cell, Empty if unowned.
type Grid [][]int

// Count returns the number of cells owned by player.
func (g Grid) Count(player int) int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == player {
				count++
			}
		}
	}
	return count
}

// Board stores cell ownership in a single flat slice indexed row-major.
type Board struct {
	side  int
	cells []int
}

func NewBoard(side int) *Board {
	return &Board{
		side:  side,
		cells: make([]int, side*side),
	}
}

func (b *Board) Side() int {
	return b.side
}

func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < b.side && pos.Col < b.side
}

func (b *Board) At(pos Position) int {
	return b.cells[pos.Row*b.side+pos.Col]
}

func (b *Board) Set(pos Position, owner int) {
	b.cells[pos.Row*b.side+pos.Col] = owner
}

// Copy returns a board with independent storage.
func (b *Board) Copy() *Board {
	cellsCopy := make([]int, len(b.cells))
	copy(cellsCopy, b.cells)
	return &Board{
		side:  b.side,
		cells: cellsCopy,
	}
}

// Grid returns a snapshot; mutating it never affects the board.
func (b *Board) Grid() Grid {
	grid := make(Grid, b.side)
	for row := range grid {
		grid[row] = make([]int, b.side)
		copy(grid[row], b.cells[row*b.side:(row+1)*b.side])
	}
	return grid
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	count := 0
	for _, owner := range b.cells {
		if owner != Empty {
			count++
		}
	}
	return count
}

// Tally counts cells per owner, indexed by player id (index 0 counts empty cells).
func (b *Board) Tally(players int) []int {
	counts := make([]int, players+1)
	for _, owner := range b.cells {
		counts[owner]++
	}
	return counts
}

// String renders the board one row per line, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.side; row++ {
		for col := 0; col < b.side; col++ {
			owner := b.cells[row*b.side+col]
			if owner == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(owner))
			}
		}
		if row < b.side-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
