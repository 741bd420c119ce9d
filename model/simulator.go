package model

import "github.com/sheikhrachel/go-life-console/rules"

// Simulator advances a grid one synchronous generation at a time. It owns a
// second buffer so that every cell of generation N+1 is computed from the
// unmodified cells of generation N, then the buffers swap.
type Simulator struct {
	grid *Grid
	next [][]bool

	// OnGeneration, when set, is called with the 1-based generation number and
	// the snapshot just captured, before the transition is applied
	OnGeneration func(generation int, s Snapshot)
}

// NewSimulator returns a simulator driving grid
func NewSimulator(grid *Grid) *Simulator {
	return &Simulator{grid: grid}
}

// Grid returns the live grid
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// Step applies the Conway transition once to the live grid
func (s *Simulator) Step() {
	g := s.grid
	if len(s.next) != g.rows || (g.rows > 0 && len(s.next[0]) != g.cols) {
		// the grid was resized by a pattern load since the last step
		s.next = newCells(g.rows, g.cols)
	}

	for r := range g.rows {
		for c := range g.cols {
			s.next[r][c] = rules.ApplyConwayRules(g.CountAliveNeighbors(r, c), g.cells[r][c])
		}
	}

	g.cells, s.next = s.next, g.cells
}

// Run drives generations transitions and returns one snapshot per transition,
// captured before that transition is applied. Snapshot i is therefore the state
// before the i-th step, and on return the live grid is one generation ahead of
// the last snapshot. Run(0) returns an empty history and leaves the grid as is.
func (s *Simulator) Run(generations int) History {
	history := make(History, 0, max(generations, 0))
	for i := 0; i < generations; i++ {
		snap := s.grid.Snapshot()
		history = append(history, snap)
		if s.OnGeneration != nil {
			s.OnGeneration(i+1, snap)
		}
		s.Step()
	}
	return history
}
