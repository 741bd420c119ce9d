package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

var (
	// ErrCellOutOfRange is returned by SetAlive for an index outside [1, rows*cols]
	ErrCellOutOfRange = errors.New("cell number out of range")
	// ErrInvalidDimensions is returned when a grid would have a non-positive side
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandomSource draws from the process-wide math/rand/v2 generator
var DefaultRandomSource RandomSource = globalSource{}

// Grid is a fixed-size, bounded (non-toroidal) board of live and dead cells
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
	}, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the number of cells, which is also the highest valid cell number
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// Clear sets every cell dead
func (g *Grid) Clear() {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell. Positions outside the grid are dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// SeedRandom sets every cell alive independently with probability p.
// A nil source falls back to DefaultRandomSource.
func (g *Grid) SeedRandom(p float64, src RandomSource) {
	if src == nil {
		src = DefaultRandomSource
	}
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = src.Float64() < p
		}
	}
}

// SetAlive marks the cell with the given 1-based, row-major number alive.
// An out-of-range number leaves the grid unchanged and returns ErrCellOutOfRange.
func (g *Grid) SetAlive(index int) error {
	if index < 1 || index > g.Size() {
		return errors.Wrapf(ErrCellOutOfRange, "[SetAlive] %d not in [1, %d]", index, g.Size())
	}
	g.cells[(index-1)/g.cols][(index-1)%g.cols] = true
	return nil
}

// CountAliveNeighbors counts live cells in the Moore neighborhood of (row, col).
// The cell itself is never counted and positions past the edge count as dead.
func (g *Grid) CountAliveNeighbors(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.cols-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Snapshot returns an immutable copy of the current cell state
func (g *Grid) Snapshot() Snapshot {
	return newSnapshot(g.cells)
}

// Clone returns an independent grid with the same dimensions and cells
func (g *Grid) Clone() *Grid {
	cells := newCells(g.rows, g.cols)
	for r := range g.rows {
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// replace swaps in new dimensions and contents in one step
func (g *Grid) replace(rows, cols int, cells [][]bool) {
	g.rows = rows
	g.cols = cols
	g.cells = cells
}
