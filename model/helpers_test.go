package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seqSource replays fixed draws, cycling when exhausted
type seqSource struct {
	draws []float64
	i     int
}

func (s *seqSource) Float64() float64 {
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v
}

// gridFromRows builds a grid from '*'/'-' rows
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]))
	require.NoError(t, err)
	for r, line := range rows {
		require.Len(t, line, g.Cols(), "row %d", r)
		for c := range line {
			g.Set(r, c, line[c] == '*')
		}
	}
	return g
}

// matrix parses '*'/'-' rows into a cell matrix
func matrix(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for r, line := range rows {
		m[r] = make([]bool, len(line))
		for c := range line {
			m[r][c] = line[c] == '*'
		}
	}
	return m
}
