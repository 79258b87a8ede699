package world

import (
	"fmt"
	"math"
)

// Cell symbols with a fixed meaning. Every other non-space symbol is a wall
// variant whose look is decided by the texture atlas.
const (
	Empty          rune = ' ' // passable
	Junction       rune = '+' // ambiguous corner piece, orientation inferred from neighbours
	VerticalWall   rune = '|'
	HorizontalWall rune = '-'
)

// Grid is an immutable rectangular map from (row, col) to a cell symbol.
type Grid struct {
	cells [][]rune
	cols  int
}

// NewGrid builds a grid from row strings. All rows must have the same rune
// count.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}

	g := &Grid{cells: make([][]rune, len(rows))}
	for i, row := range rows {
		runes := []rune(row)
		if i == 0 {
			g.cols = len(runes)
			if g.cols == 0 {
				return nil, fmt.Errorf("grid row 1 is empty")
			}
		}
		if len(runes) != g.cols {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", i+1, g.cols, len(runes))
		}
		g.cells[i] = runes
	}
	return g, nil
}

// MustGrid is NewGrid that panics on malformed input. Intended for fixtures.
func MustGrid(rows ...string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic("world: " + err.Error())
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.cols
}

// Cell returns the symbol at (row, col), or Empty outside the grid.
func (g *Grid) Cell(row, col int) rune {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// CellAt converts a world position into grid coordinates. ok is false when
// the position falls outside the grid (negative coordinates included).
func (g *Grid) CellAt(x, y, cellSize float64) (row, col int, ok bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor(x / cellSize))
	row = int(math.Floor(y / cellSize))
	return row, col, g.InBounds(row, col)
}

// Walkable reports whether a world position lies on an empty cell.
func (g *Grid) Walkable(x, y, cellSize float64) bool {
	row, col, ok := g.CellAt(x, y, cellSize)
	return ok && g.cells[row][col] == Empty
}

// String renders the grid back to its text form, one row per line.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.cols+1)*len(g.cells))
	for _, row := range g.cells {
		buf = append(buf, row...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
