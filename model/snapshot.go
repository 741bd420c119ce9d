package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	aliveGlyph = '*'
	deadGlyph  = '-'
)

// Snapshot is an immutable capture of a grid's cells at one generation
type Snapshot struct {
	rows  int
	cols  int
	cells [][]bool
}

func newSnapshot(src [][]bool) Snapshot {
	rows := len(src)
	cols := 0
	if rows > 0 {
		cols = len(src[0])
	}
	cells := newCells(rows, cols)
	for r := range rows {
		copy(cells[r], src[r])
	}
	return Snapshot{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows
func (s Snapshot) Rows() int {
	return s.rows
}

// Cols returns the number of columns
func (s Snapshot) Cols() int {
	return s.cols
}

// Alive returns the state of a cell. Positions outside the snapshot are dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row][col]
}

// Population returns the number of live cells
func (s Snapshot) Population() (count int) {
	for _, row := range s.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Matrix returns a copy of the cells, row-major
func (s Snapshot) Matrix() [][]bool {
	return newSnapshot(s.cells).cells
}

// Hash returns an MD5 digest of the cell state
func (s Snapshot) Hash() string {
	h := md5.New()
	for _, row := range s.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the snapshot as rows of '*' (alive) and '-' (dead)
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.rows * (s.cols + 1))
	for _, row := range s.cells {
		for _, alive := range row {
			if alive {
				b.WriteByte(aliveGlyph)
			} else {
				b.WriteByte(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
