package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid represents a toroidal game board: the last row and column are
// adjacent to the first
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Errorf("[NewGrid] dimensions must be positive, got %dx%d", rows, cols)
	}
	g := &Grid{}
	g.Reset(rows, cols)
	return g, nil
}

// NewRandomGrid creates a grid where each cell is independently alive with
// probability probabilityAlive. Cells are drawn from rng in row-major order.
func NewRandomGrid(rows, cols int, probabilityAlive float64, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid]")
	}
	g.Randomize(probabilityAlive, rng)
	return g, nil
}

// GetRows returns the number of rows of the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns of the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]Cell, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Set sets a cell; coordinates wrap around the board
func (g *Grid) Set(row, col int, c Cell) {
	r, k := g.wrap(row, col)
	g.cells[r][k] = c
}

// Get returns the state of a cell; coordinates wrap around the board
func (g *Grid) Get(row, col int) Cell {
	r, k := g.wrap(row, col)
	return g.cells[r][k]
}

func (g *Grid) wrap(row, col int) (int, int) {
	return (row%g.rows + g.rows) % g.rows, (col%g.cols + g.cols) % g.cols
}

// Neighbors returns the eight wrapped neighbors of (row, col) in the order
// left, up, down, right, up-left, up-right, down-left, down-right.
// On boards smaller than 3x3 a cell may appear several times, itself included.
func (g *Grid) Neighbors(row, col int) [8]Cell {
	return [8]Cell{
		g.Get(row, col-1),
		g.Get(row-1, col),
		g.Get(row+1, col),
		g.Get(row, col+1),
		g.Get(row-1, col-1),
		g.Get(row-1, col+1),
		g.Get(row+1, col-1),
		g.Get(row+1, col+1),
	}
}

// CountNeighbors counts living neighbors of (row, col)
func (g *Grid) CountNeighbors(row, col int) (count int) {
	for _, c := range g.Neighbors(row, col) {
		count += int(c)
	}
	return
}

// NextState returns the state of (row, col) in the next generation
func (g *Grid) NextState(row, col int) Cell {
	if rules.ApplySurvivalRules(g.CountNeighbors(row, col)) {
		return Alive
	}
	return Dead
}

// Advance replaces the grid with its next generation. Every cell is computed
// from the current generation before any of them is installed. The scratch
// buffer comes from pool when one is given.
func (g *Grid) Advance(pool *GridPool) {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.cols)
	} else {
		next = &Grid{}
		next.Reset(g.rows, g.cols)
	}

	for r := range g.rows {
		for c := range g.cols {
			next.cells[r][c] = g.NextState(r, c)
		}
	}

	g.cells, next.cells = next.cells, g.cells
	// next holds the previous generation now
	GridToPool(next, pool)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, c := range row {
			count += int(c)
		}
	}
	return
}

// Density returns the fraction of living cells, in [0, 1]
func (g *Grid) Density() float64 {
	return float64(g.CountLivingCells()) / float64(g.rows*g.cols)
}

// Randomize sets each cell alive with the given probability
func (g *Grid) Randomize(probabilityAlive float64, rng *rand.Rand) {
	for r := range g.rows {
		for c := range g.cols {
			if rng.Float64() < probabilityAlive {
				g.cells[r][c] = Alive
			} else {
				g.cells[r][c] = Dead
			}
		}
	}
}
